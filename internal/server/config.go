package server

import (
	"github.com/volkh4n/scandeck/internal/app"
	"github.com/volkh4n/scandeck/internal/logging"
	"github.com/volkh4n/scandeck/internal/registry"
)

type Config struct {
	// ListenAddr is the HTTP listen address for the API server.
	ListenAddr string

	// AppConfig configures the scan subsystem behind the API. Nil selects
	// the defaults.
	AppConfig *app.Config

	// Logger receives request and handler logs. Nil selects a stdout
	// JSON-lines logger.
	Logger logging.Logger

	// Launcher overrides the process executor. Tests inject a double here
	// so handlers can be exercised without spawning real tools; nil selects
	// the real executor.
	Launcher registry.Launcher
}
