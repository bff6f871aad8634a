package model

import "time"

// Tool identifies one of the external security tools a scan dispatches to.
type Tool string

const (
	// ToolNetworkScan probes a host with the network scanner.
	ToolNetworkScan Tool = "network-scan"

	// ToolSQLInjectionScan tests a URL with the SQL-injection tool.
	ToolSQLInjectionScan Tool = "sql-injection-scan"

	// ToolOSINTLookup queries the registration-lookup tool for a domain.
	ToolOSINTLookup Tool = "osint-lookup"

	// ToolWebProbe fetches response headers for a URL with the HTTP client.
	ToolWebProbe Tool = "web-probe"
)

// Tools returns the closed set of tools in their canonical order.
// Summary output and exports iterate this so all four keys always appear.
func Tools() []Tool {
	return []Tool{ToolNetworkScan, ToolSQLInjectionScan, ToolOSINTLookup, ToolWebProbe}
}

// IsValid reports whether t is one of the four known tools.
func (t Tool) IsValid() bool {
	switch t {
	case ToolNetworkScan, ToolSQLInjectionScan, ToolOSINTLookup, ToolWebProbe:
		return true
	}
	return false
}

// Status is the lifecycle state of a scan. Transitions are monotone:
// pending -> running -> (completed | failed), never backwards.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// IsTerminal reports whether a scan in this status will never change again.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Scan is one request to run an external security tool against a target.
type Scan struct {
	// ID is the process-unique identifier, assigned in submission order
	// starting at "1". Never reused within a process lifetime.
	ID string `json:"id"`

	// Tool is the external tool this scan dispatches to.
	Tool Tool `json:"tool"`

	// Target is the scan's subject, as supplied by the caller. Treated as
	// opaque text everywhere; it is never interpreted by a shell.
	Target string `json:"target"`

	// Status is the current lifecycle state.
	Status Status `json:"status"`

	// StartedAt is when the scan was accepted and its process launched.
	StartedAt time.Time `json:"startedAt"`
}

// Output holds the captured process output. Each stream is independently
// truncated to the configured cap, regardless of how much the tool wrote.
type Output struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
}

// ScanResult is a Scan plus its captured output once finished.
type ScanResult struct {
	Scan

	// FinishedAt is when the scan reached a terminal status. Nil while the
	// process is still running.
	FinishedAt *time.Time `json:"finishedAt,omitempty"`

	// Output is the captured stdout/stderr. Empty until completion.
	Output Output `json:"output"`
}

// Outcome is the one-time completion notification a process launch delivers:
// the terminal status plus the capped output text. For failed runs Error
// holds the bare diagnostic (timeout, exit code, start failure) and the same
// text also leads Stderr so it survives into the stored result.
type Outcome struct {
	Status Status
	Stdout string
	Stderr string
	Error  string
}

// SummaryStats are aggregate counters derived from the registry's current
// contents. Always recomputed on demand, never cached.
type SummaryStats struct {
	Total     int          `json:"total"`
	Completed int          `json:"completed"`
	Running   int          `json:"running"`
	Failed    int          `json:"failed"`
	ByTool    map[Tool]int `json:"byTool"`
}

// EventType classifies scan lifecycle events on the live stream.
type EventType string

const (
	// EventStatus signals a status transition (running, completed, failed).
	EventStatus EventType = "status"
)

// ScanEvent is one entry on the live scan event stream.
type ScanEvent struct {
	ScanID string    `json:"scanId"`
	Type   EventType `json:"type"`
	Tool   Tool      `json:"tool"`
	Status Status    `json:"status"`
	Error  string    `json:"error,omitempty"`
}
