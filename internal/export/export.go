// Package export renders scan records for download. JSON carries the full
// records including captured output; CSV is the flat per-scan table for
// spreadsheets and keeps output text out of the rows.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/volkh4n/scandeck/internal/model"
)

var csvHeader = []string{"id", "tool", "target", "status", "startedAt", "finishedAt"}

// WriteJSON writes results as an indented JSON array. An empty registry
// exports as [] rather than null.
func WriteJSON(w io.Writer, results []model.ScanResult) error {
	if results == nil {
		results = []model.ScanResult{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// WriteCSV writes a header row plus one row per scan. The finish column is
// empty while a scan is still running.
func WriteCSV(w io.Writer, results []model.ScanResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, res := range results {
		finished := ""
		if res.FinishedAt != nil {
			finished = res.FinishedAt.Format(time.RFC3339)
		}
		row := []string{
			res.ID,
			string(res.Tool),
			res.Target,
			string(res.Status),
			res.StartedAt.Format(time.RFC3339),
			finished,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row for scan %s: %w", res.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
