// Package testutil provides shared test doubles for use across package tests.
// All dummies implement the corresponding interfaces from the production code,
// allowing injection into components under test without real I/O or side effects.
package testutil

import (
	"context"
	"sync"

	"github.com/volkh4n/scandeck/internal/logging"
	"github.com/volkh4n/scandeck/internal/model"
)

// ─── Logger ────────────────────────────────────────────────────────────

// DummyLogger implements logging.Logger with in-memory recording.
type DummyLogger struct {
	mu     sync.Mutex
	Errors []string
	Infos  []string
	Debugs []string
	Warns  []string
}

func (l *DummyLogger) Debug(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Debugs = append(l.Debugs, msg)
}

func (l *DummyLogger) Info(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Infos = append(l.Infos, msg)
}

func (l *DummyLogger) Warn(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Warns = append(l.Warns, msg)
}

func (l *DummyLogger) Error(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Errors = append(l.Errors, msg)
}

func (l *DummyLogger) With(_ ...logging.Field) logging.Logger { return l }

// ─── Launcher ──────────────────────────────────────────────────────────

// DummyLauncher satisfies the registry's launcher seam without spawning
// real processes. Each Launch records its argv and delivers Outcome on the
// returned channel. When Release is set, delivery waits until it is closed,
// which lets tests observe scans in the running state.
type DummyLauncher struct {
	Outcome model.Outcome
	Release chan struct{}

	mu       sync.Mutex
	launches [][]string
}

func (l *DummyLauncher) Launch(_ context.Context, argv []string) <-chan model.Outcome {
	l.mu.Lock()
	l.launches = append(l.launches, append([]string(nil), argv...))
	out := l.Outcome
	release := l.Release
	l.mu.Unlock()

	ch := make(chan model.Outcome, 1)
	go func() {
		defer close(ch)
		if release != nil {
			<-release
		}
		ch <- out
	}()
	return ch
}

// Launches returns a copy of every argv passed to Launch so far.
func (l *DummyLauncher) Launches() [][]string {
	l.mu.Lock()
	defer l.mu.Unlock()
	cp := make([][]string, len(l.launches))
	copy(cp, l.launches)
	return cp
}

// ─── Publisher ─────────────────────────────────────────────────────────

// DummyPublisher implements the registry's event sink with in-memory recording.
type DummyPublisher struct {
	mu     sync.Mutex
	events []model.ScanEvent
}

func (p *DummyPublisher) Publish(ev model.ScanEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

// Events returns a copy of every event published so far.
func (p *DummyPublisher) Events() []model.ScanEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.ScanEvent(nil), p.events...)
}
