package server

import (
	"time"

	"github.com/volkh4n/scandeck/internal/model"
)

// SubmitScanRequest represents the payload required to start a scan.
// Options are free-form and reserved for future per-tool tuning; they never
// change the tool invocation today.
type SubmitScanRequest struct {
	Tool    string         `json:"tool" example:"network-scan"`
	Target  string         `json:"target" example:"203.0.113.7"`
	Options map[string]any `json:"options,omitempty"`
}

// SubmitScanResponse acknowledges an accepted scan with its assigned id.
type SubmitScanResponse struct {
	ScanID    string       `json:"scanId" example:"1"`
	Tool      model.Tool   `json:"tool" example:"network-scan"`
	Target    string       `json:"target" example:"203.0.113.7"`
	Status    model.Status `json:"status" example:"running"`
	StartedAt time.Time    `json:"startedAt"`
}

// ErrorResponse is a uniform error payload returned by the API.
type ErrorResponse struct {
	Error string `json:"error" example:"scan not found"`
}
