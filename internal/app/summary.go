package app

import "github.com/volkh4n/scandeck/internal/model"

// Summarize folds scan records into the dashboard's aggregate counters.
// Every known tool appears in ByTool even at zero, so consumers can render
// a stable set of counters without probing for missing keys. Anything not
// terminal counts as running, which keeps completed+running+failed equal to
// the total.
func Summarize(results []model.ScanResult) model.SummaryStats {
	stats := model.SummaryStats{ByTool: make(map[model.Tool]int, len(model.Tools()))}
	for _, tool := range model.Tools() {
		stats.ByTool[tool] = 0
	}

	for _, res := range results {
		stats.Total++
		switch res.Status {
		case model.StatusCompleted:
			stats.Completed++
		case model.StatusFailed:
			stats.Failed++
		default:
			stats.Running++
		}
		stats.ByTool[res.Tool]++
	}
	return stats
}
