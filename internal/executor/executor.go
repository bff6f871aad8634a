package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/volkh4n/scandeck/internal/logging"
	"github.com/volkh4n/scandeck/internal/model"
)

const (
	// DefaultTimeout is how long a tool process may run before it is killed.
	DefaultTimeout = 60 * time.Second

	// DefaultOutputCap is the per-stream retention limit in bytes.
	DefaultOutputCap = 10000
)

// Config bounds a single process run.
type Config struct {
	Timeout   time.Duration
	OutputCap int
}

// Executor launches external tool processes and reports their outcomes.
// It holds no per-run state; one Executor serves all scans concurrently.
type Executor struct {
	cfg    Config
	logger logging.Logger
}

func New(cfg Config, logger logging.Logger) *Executor {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.OutputCap <= 0 {
		cfg.OutputCap = DefaultOutputCap
	}
	return &Executor{cfg: cfg, logger: logger}
}

// Launch starts argv as an OS process and returns a channel that delivers
// exactly one Outcome when the run ends, then closes. The channel is
// buffered, so the outcome is delivered even if nobody is receiving yet.
// Cancelling ctx kills the process; the run is otherwise bounded by the
// configured timeout.
func (e *Executor) Launch(ctx context.Context, argv []string) <-chan model.Outcome {
	ch := make(chan model.Outcome, 1)
	go func() {
		defer close(ch)
		ch <- e.run(ctx, argv)
	}()
	return ch
}

func (e *Executor) run(ctx context.Context, argv []string) model.Outcome {
	if len(argv) == 0 {
		return failedOutcome("empty command", "", "", e.cfg.OutputCap)
	}

	runCtx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	stdout := &cappedBuffer{max: e.cfg.OutputCap}
	stderr := &cappedBuffer{max: e.cfg.OutputCap}

	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	// Tools like sqlmap fork children that inherit the output pipes. Without
	// a wait delay, Wait would block on those pipes long after the kill.
	cmd.WaitDelay = time.Second

	e.logger.Debug("launching process", logging.Field{Key: "argv", Value: argv})
	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start).Round(time.Millisecond)

	if err == nil {
		e.logger.Debug("process completed",
			logging.Field{Key: "binary", Value: argv[0]},
			logging.Field{Key: "elapsed", Value: elapsed.String()},
		)
		return model.Outcome{
			Status: model.StatusCompleted,
			Stdout: stdout.String(),
			Stderr: stderr.String(),
		}
	}

	var diag string
	var exitErr *exec.ExitError
	switch {
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		diag = fmt.Sprintf("timed out after %s", e.cfg.Timeout)
	case errors.As(err, &exitErr):
		diag = fmt.Sprintf("exit status %d", exitErr.ExitCode())
	default:
		// Start failures: executable not found, permission denied, and so on.
		diag = err.Error()
	}

	e.logger.Warn("process failed",
		logging.Field{Key: "binary", Value: argv[0]},
		logging.Field{Key: "error", Value: diag},
		logging.Field{Key: "elapsed", Value: elapsed.String()},
	)
	return failedOutcome(diag, stdout.String(), stderr.String(), e.cfg.OutputCap)
}

// failedOutcome folds the diagnostic into the retained stderr text and
// re-truncates, so the per-stream cap holds even with the diagnostic added.
func failedOutcome(diag, stdout, stderr string, max int) model.Outcome {
	combined := "error: " + diag + "\n" + stderr
	if len(combined) > max {
		combined = combined[:max]
	}
	return model.Outcome{
		Status: model.StatusFailed,
		Stdout: stdout,
		Stderr: combined,
		Error:  diag,
	}
}

// cappedBuffer retains at most max bytes and discards the rest. Write always
// reports full success, so the child never sees a write error and its output
// pipe keeps draining no matter how much the tool prints.
type cappedBuffer struct {
	max int
	buf bytes.Buffer
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if room := b.max - b.buf.Len(); room > 0 {
		if len(p) > room {
			p = p[:room]
		}
		b.buf.Write(p)
	}
	return n, nil
}

func (b *cappedBuffer) String() string { return b.buf.String() }
