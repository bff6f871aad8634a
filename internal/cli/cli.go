package cli

import (
	"flag"
	"fmt"
	"time"
)

// CLIArgs are the command-line arguments that control a server run.
// Keep this small for now and add fields as modules need them.
type CLIArgs struct {
	// Addr is the address the HTTP server listens on.
	Addr string

	// ProcessTimeout bounds each scan process; 0 means "use the executor default".
	ProcessTimeout time.Duration

	// OutputCap is the number of bytes kept per captured output stream;
	// 0 means "use the executor default".
	OutputCap int

	// SubmitRate and SubmitBurst shape the scan submission limiter.
	// A rate of 0 disables limiting.
	SubmitRate  float64
	SubmitBurst int

	// EventBuffer is the per-subscriber event channel depth; 0 means "use the hub default".
	EventBuffer int

	// RawArgs is the original args slice (useful for debugging/tests).
	RawArgs []string
}

// ParseArgs parses a slice of args and returns CLIArgs. Use in tests by passing
// arbitrary slices. The function is deterministic and does not read os.Args.
func ParseArgs(args []string) (*CLIArgs, error) {
	fs := flag.NewFlagSet("scandeck", flag.ContinueOnError)
	var (
		addr        = fs.String("addr", ":8080", "HTTP listen address")
		timeout     = fs.Duration("process-timeout", 0, "Per-scan process timeout (0=use default)")
		outputCap   = fs.Int("output-cap", 0, "Bytes kept per captured output stream (0=use default)")
		submitRate  = fs.Float64("submit-rate", 10, "Scan submissions allowed per second (0=unlimited)")
		submitBurst = fs.Int("submit-burst", 20, "Scan submission burst size")
		eventBuffer = fs.Int("event-buffer", 0, "Per-subscriber event buffer (0=use default)")
	)

	if err := fs.Parse(args); err != nil {
		// Flag parsing errors are useful to return to caller
		return nil, err
	}

	if *outputCap < 0 {
		return nil, fmt.Errorf("-output-cap must not be negative")
	}
	if *submitRate < 0 {
		return nil, fmt.Errorf("-submit-rate must not be negative")
	}
	if *submitBurst < 0 {
		return nil, fmt.Errorf("-submit-burst must not be negative")
	}

	return &CLIArgs{
		Addr:           *addr,
		ProcessTimeout: *timeout,
		OutputCap:      *outputCap,
		SubmitRate:     *submitRate,
		SubmitBurst:    *submitBurst,
		EventBuffer:    *eventBuffer,
		RawArgs:        args,
	}, nil
}
