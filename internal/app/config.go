package app

import (
	"github.com/volkh4n/scandeck/internal/events"
	"github.com/volkh4n/scandeck/internal/executor"
)

// Config contains the runtime configuration for the scan subsystem. Knobs
// that belong to the HTTP layer (listen address, timeouts) live in the
// server package; this covers everything behind the facade.
type Config struct {
	// ExecutorCfg bounds each tool process run.
	ExecutorCfg executor.Config

	// EventBuffer is the per-subscriber buffer size on the live event
	// stream. Subscribers that fall further behind lose events.
	EventBuffer int

	// SubmitRate and SubmitBurst bound how fast new scans are accepted,
	// in scans per second. A rate of zero disables throttling.
	SubmitRate  float64
	SubmitBurst int
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ExecutorCfg: executor.Config{
			Timeout:   executor.DefaultTimeout,
			OutputCap: executor.DefaultOutputCap,
		},
		EventBuffer: events.DefaultBuffer,
		SubmitRate:  10,
		SubmitBurst: 20,
	}
}
