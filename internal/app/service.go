package app

import (
	"errors"
	"fmt"

	"github.com/volkh4n/scandeck/internal/command"
	"github.com/volkh4n/scandeck/internal/events"
	"github.com/volkh4n/scandeck/internal/logging"
	"github.com/volkh4n/scandeck/internal/model"
	"github.com/volkh4n/scandeck/internal/registry"
)

var ErrUnknownTool = errors.New("unknown tool")

// ToolInfo describes one dispatchable tool and whether its executable is
// installed on this host.
type ToolInfo struct {
	Name      model.Tool `json:"name"`
	Binary    string     `json:"binary"`
	Available bool       `json:"available"`
	Path      string     `json:"path,omitempty"`
}

// Service is the facade the transport layer talks to. It owns nothing
// itself; it coordinates the command builder, the scan registry and the
// event hub so handlers never touch those directly.
type Service struct {
	registry *registry.Registry
	hub      *events.Hub
	logger   logging.Logger
}

// NewService ties together registry, hub and logger.
func NewService(reg *registry.Registry, hub *events.Hub, logger logging.Logger) *Service {
	return &Service{
		registry: reg,
		hub:      hub,
		logger:   logger,
	}
}

// Submit accepts a scan request, builds the tool invocation and hands it to
// the registry. It returns the scan header as soon as the process launch is
// under way. The only error is an unrecognized tool.
//
// Options are accepted for forward compatibility, recorded, and otherwise
// ignored: tool invocations are fixed templates, and caller input is never
// spliced into them.
func (s *Service) Submit(tool model.Tool, target string, options map[string]any) (model.Scan, error) {
	if !tool.IsValid() {
		return model.Scan{}, fmt.Errorf("%w: %q", ErrUnknownTool, tool)
	}
	argv, err := command.Build(tool, target)
	if err != nil {
		return model.Scan{}, err
	}
	if len(options) > 0 {
		s.logger.Debug("ignoring scan options",
			logging.Field{Key: "tool", Value: string(tool)},
			logging.Field{Key: "options", Value: options},
		)
	}
	return s.registry.Submit(tool, target, argv), nil
}

// ListScans returns the header of every scan in submission order.
func (s *Service) ListScans() []model.Scan {
	return s.registry.List()
}

// GetScan returns the full record for one scan, including captured output.
// Unknown ids yield registry.ErrScanNotFound.
func (s *Service) GetScan(id string) (model.ScanResult, error) {
	return s.registry.Get(id)
}

// Results returns the full record of every scan in submission order.
func (s *Service) Results() []model.ScanResult {
	return s.registry.Results()
}

// Summary recomputes the aggregate counters from the current registry state.
func (s *Service) Summary() model.SummaryStats {
	return Summarize(s.registry.Results())
}

// Tools lists the dispatchable tools with host availability.
func (s *Service) Tools() []ToolInfo {
	tools := model.Tools()
	out := make([]ToolInfo, 0, len(tools))
	for _, tool := range tools {
		bin, err := command.Binary(tool)
		if err != nil {
			continue
		}
		path, available := command.Lookup(tool)
		out = append(out, ToolInfo{Name: tool, Binary: bin, Available: available, Path: path})
	}
	return out
}

// Subscribe attaches a listener to the live scan event stream.
func (s *Service) Subscribe() (string, <-chan model.ScanEvent) {
	return s.hub.Subscribe()
}

// Unsubscribe detaches a listener and closes its channel.
func (s *Service) Unsubscribe(id string) {
	s.hub.Unsubscribe(id)
}

// Close shuts down the event hub. In-flight scans keep running to their
// terminal state; only live delivery stops.
func (s *Service) Close() {
	s.hub.Close()
}
