package app

import (
	"testing"
	"time"

	"github.com/volkh4n/scandeck/internal/model"
)

func result(tool model.Tool, status model.Status) model.ScanResult {
	res := model.ScanResult{Scan: model.Scan{
		Tool:      tool,
		Status:    status,
		StartedAt: time.Now().UTC(),
	}}
	if status.IsTerminal() {
		now := time.Now().UTC()
		res.FinishedAt = &now
	}
	return res
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	stats := Summarize(nil)
	if stats.Total != 0 || stats.Completed != 0 || stats.Running != 0 || stats.Failed != 0 {
		t.Errorf("empty fold produced %+v", stats)
	}
	if len(stats.ByTool) != 4 {
		t.Fatalf("ByTool has %d keys, want all 4 tools present", len(stats.ByTool))
	}
	for _, tool := range model.Tools() {
		if n, ok := stats.ByTool[tool]; !ok || n != 0 {
			t.Errorf("ByTool[%q] = %d (present=%v), want 0", tool, n, ok)
		}
	}
}

func TestSummarize_MixedStatuses(t *testing.T) {
	t.Parallel()

	results := []model.ScanResult{
		result(model.ToolNetworkScan, model.StatusCompleted),
		result(model.ToolNetworkScan, model.StatusRunning),
		result(model.ToolSQLInjectionScan, model.StatusFailed),
		result(model.ToolOSINTLookup, model.StatusCompleted),
		result(model.ToolWebProbe, model.StatusFailed),
		result(model.ToolWebProbe, model.StatusRunning),
	}

	stats := Summarize(results)
	if stats.Total != 6 {
		t.Errorf("Total = %d, want 6", stats.Total)
	}
	if stats.Completed != 2 || stats.Running != 2 || stats.Failed != 2 {
		t.Errorf("counters = %d/%d/%d, want 2/2/2", stats.Completed, stats.Running, stats.Failed)
	}
	if stats.Completed+stats.Running+stats.Failed != stats.Total {
		t.Error("status counters do not add up to the total")
	}

	byToolSum := 0
	for _, n := range stats.ByTool {
		byToolSum += n
	}
	if byToolSum != stats.Total {
		t.Errorf("ByTool sums to %d, want %d", byToolSum, stats.Total)
	}
	if stats.ByTool[model.ToolNetworkScan] != 2 || stats.ByTool[model.ToolWebProbe] != 2 {
		t.Errorf("ByTool = %v", stats.ByTool)
	}
	if stats.ByTool[model.ToolSQLInjectionScan] != 1 || stats.ByTool[model.ToolOSINTLookup] != 1 {
		t.Errorf("ByTool = %v", stats.ByTool)
	}
}

func TestSummarize_PendingCountsAsRunning(t *testing.T) {
	t.Parallel()

	stats := Summarize([]model.ScanResult{result(model.ToolWebProbe, model.StatusPending)})
	if stats.Running != 1 {
		t.Errorf("Running = %d, want a non-terminal scan counted as running", stats.Running)
	}
	if stats.Completed+stats.Running+stats.Failed != stats.Total {
		t.Error("status counters do not add up to the total")
	}
}
