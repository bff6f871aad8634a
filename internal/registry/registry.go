package registry

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/volkh4n/scandeck/internal/logging"
	"github.com/volkh4n/scandeck/internal/model"
)

var ErrScanNotFound = errors.New("scan not found")

// Launcher starts an external tool process from an argument vector and
// delivers its outcome exactly once on the returned channel, then closes it.
type Launcher interface {
	Launch(ctx context.Context, argv []string) <-chan model.Outcome
}

// Publisher delivers scan lifecycle events to live subscribers.
// Publish must not block; it runs on the completion path.
type Publisher interface {
	Publish(ev model.ScanEvent)
}

// Registry owns every scan the process has accepted: identifier allocation,
// submission-ordered listing, status transitions, and the stored output of
// finished scans. All state is in memory and lives exactly as long as the
// process; a restart starts over at id "1".
//
// Completion flows as a message: the launcher hands back an outcome channel,
// a goroutine owned by the Registry receives from it, and the transition is
// applied under the registry lock. Nothing the launcher does can re-enter a
// caller's stack.
type Registry struct {
	mu     sync.Mutex
	nextID int
	order  []string
	byID   map[string]*model.ScanResult

	launcher Launcher
	events   Publisher
	logger   logging.Logger
}

func New(launcher Launcher, events Publisher, logger logging.Logger) *Registry {
	return &Registry{
		byID:     make(map[string]*model.ScanResult),
		launcher: launcher,
		events:   events,
		logger:   logger,
	}
}

// Submit records a new scan and starts its process. It returns as soon as
// the launch is handed off; it never waits for the process. IDs are decimal
// strings assigned in submission order starting at "1".
//
// The argument vector comes from the command builder; the registry treats it
// as opaque. The scan enters at running since the launch happens here.
func (r *Registry) Submit(tool model.Tool, target string, argv []string) model.Scan {
	r.mu.Lock()
	r.nextID++
	id := strconv.Itoa(r.nextID)
	scan := model.Scan{
		ID:        id,
		Tool:      tool,
		Target:    target,
		Status:    model.StatusRunning,
		StartedAt: time.Now().UTC(),
	}
	r.byID[id] = &model.ScanResult{Scan: scan}
	r.order = append(r.order, id)
	r.mu.Unlock()

	// Running is announced before the launch so subscribers never see a
	// terminal event for a scan they were not told about.
	r.events.Publish(model.ScanEvent{
		ScanID: id,
		Type:   model.EventStatus,
		Tool:   tool,
		Status: model.StatusRunning,
	})
	r.logger.Info("scan submitted",
		logging.Field{Key: "scan_id", Value: id},
		logging.Field{Key: "tool", Value: string(tool)},
		logging.Field{Key: "target", Value: target},
	)

	outcomes := r.launcher.Launch(context.Background(), argv)
	go r.awaitOutcome(id, outcomes)

	return scan
}

// awaitOutcome blocks on one launch's outcome channel and applies it.
func (r *Registry) awaitOutcome(id string, outcomes <-chan model.Outcome) {
	out, ok := <-outcomes
	if !ok {
		// The launcher contract is send-then-close. A bare close is a
		// programmer error; record it as a failure rather than leaving the
		// scan running forever.
		out = model.Outcome{
			Status: model.StatusFailed,
			Stderr: "error: launcher closed without an outcome\n",
			Error:  "launcher closed without an outcome",
		}
	}
	r.complete(id, out)
}

// complete applies the one-time terminal transition for id. If the scan is
// already terminal the call is ignored, so a misbehaving launcher cannot
// overwrite a finished result.
func (r *Registry) complete(id string, out model.Outcome) {
	r.mu.Lock()
	rec, ok := r.byID[id]
	if !ok {
		r.mu.Unlock()
		r.logger.Error("completion for unknown scan", logging.Field{Key: "scan_id", Value: id})
		return
	}
	if rec.Status.IsTerminal() {
		r.mu.Unlock()
		r.logger.Warn("duplicate completion ignored",
			logging.Field{Key: "scan_id", Value: id},
			logging.Field{Key: "status", Value: string(rec.Status)},
		)
		return
	}
	now := time.Now().UTC()
	rec.Status = out.Status
	rec.FinishedAt = &now
	rec.Output = model.Output{Stdout: out.Stdout, Stderr: out.Stderr}
	ev := model.ScanEvent{
		ScanID: id,
		Type:   model.EventStatus,
		Tool:   rec.Tool,
		Status: out.Status,
		Error:  out.Error,
	}
	r.mu.Unlock()

	r.events.Publish(ev)
	if out.Status == model.StatusFailed {
		r.logger.Warn("scan failed",
			logging.Field{Key: "scan_id", Value: id},
			logging.Field{Key: "error", Value: out.Error},
		)
		return
	}
	r.logger.Info("scan completed", logging.Field{Key: "scan_id", Value: id})
}

// List returns the header of every known scan in submission order.
func (r *Registry) List() []model.Scan {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Scan, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Scan)
	}
	return out
}

// Get returns the full result for one scan, including captured output.
func (r *Registry) Get(id string) (model.ScanResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok {
		return model.ScanResult{}, ErrScanNotFound
	}
	return cloneResult(rec), nil
}

// Results returns the full result of every known scan in submission order.
// Summary aggregation and exports fold over this snapshot.
func (r *Registry) Results() []model.ScanResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.ScanResult, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneResult(r.byID[id]))
	}
	return out
}

// cloneResult copies a record so callers never share memory with the
// registry's own state.
func cloneResult(rec *model.ScanResult) model.ScanResult {
	out := *rec
	if rec.FinishedAt != nil {
		t := *rec.FinishedAt
		out.FinishedAt = &t
	}
	return out
}
