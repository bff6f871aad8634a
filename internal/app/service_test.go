package app

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/volkh4n/scandeck/internal/events"
	"github.com/volkh4n/scandeck/internal/model"
	"github.com/volkh4n/scandeck/internal/registry"
	"github.com/volkh4n/scandeck/internal/testutil"
)

func newTestService(launcher *testutil.DummyLauncher) *Service {
	logger := &testutil.DummyLogger{}
	hub := events.NewHub(0, logger)
	reg := registry.New(launcher, hub, logger)
	return NewService(reg, hub, logger)
}

func waitTerminal(t *testing.T, svc *Service, id string) model.ScanResult {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		res, err := svc.GetScan(id)
		if err != nil {
			t.Fatalf("GetScan(%q): %v", id, err)
		}
		if res.Status.IsTerminal() {
			return res
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("scan %q never reached a terminal status", id)
	return model.ScanResult{}
}

func TestSubmit_UnknownToolRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(&testutil.DummyLauncher{})

	_, err := svc.Submit(model.Tool("port-knock"), "example.com", nil)
	if !errors.Is(err, ErrUnknownTool) {
		t.Errorf("Submit(unknown tool) error = %v, want ErrUnknownTool", err)
	}
	if got := len(svc.ListScans()); got != 0 {
		t.Errorf("rejected submission left %d scans behind", got)
	}
}

func TestSubmit_OptionsNeverReachArgv(t *testing.T) {
	t.Parallel()

	launcher := &testutil.DummyLauncher{Outcome: model.Outcome{Status: model.StatusCompleted}}
	svc := newTestService(launcher)

	scan, err := svc.Submit(model.ToolWebProbe, "https://example.com", map[string]any{
		"flags": "-X POST",
		"depth": 3,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	waitTerminal(t, svc, scan.ID)

	launches := launcher.Launches()
	if len(launches) != 1 {
		t.Fatalf("launch count = %d, want 1", len(launches))
	}
	want := []string{"curl", "-sIL", "https://example.com"}
	if !reflect.DeepEqual(launches[0], want) {
		t.Errorf("argv = %v, want the fixed template %v", launches[0], want)
	}
}

func TestSubmit_GetRoundtrip(t *testing.T) {
	t.Parallel()

	launcher := &testutil.DummyLauncher{Outcome: model.Outcome{
		Status: model.StatusCompleted,
		Stdout: "HTTP/2 200\n",
	}}
	svc := newTestService(launcher)

	scan, err := svc.Submit(model.ToolWebProbe, "https://example.com", nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if scan.ID != "1" {
		t.Errorf("first scan id = %q, want %q", scan.ID, "1")
	}

	res := waitTerminal(t, svc, scan.ID)
	if res.Status != model.StatusCompleted {
		t.Errorf("status = %q, want %q", res.Status, model.StatusCompleted)
	}
	if res.Output.Stdout != "HTTP/2 200\n" {
		t.Errorf("stdout = %q", res.Output.Stdout)
	}
}

func TestGetScan_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(&testutil.DummyLauncher{})
	if _, err := svc.GetScan("7"); !errors.Is(err, registry.ErrScanNotFound) {
		t.Errorf("GetScan(unknown) error = %v, want ErrScanNotFound", err)
	}
}

func TestSummary_TracksRegistryState(t *testing.T) {
	t.Parallel()

	launcher := &testutil.DummyLauncher{
		Outcome: model.Outcome{Status: model.StatusCompleted},
		Release: make(chan struct{}),
	}
	svc := newTestService(launcher)

	svc.Submit(model.ToolNetworkScan, "203.0.113.7", nil)
	svc.Submit(model.ToolNetworkScan, "203.0.113.8", nil)
	svc.Submit(model.ToolOSINTLookup, "example.com", nil)

	stats := svc.Summary()
	if stats.Total != 3 || stats.Running != 3 || stats.Completed != 0 || stats.Failed != 0 {
		t.Errorf("while held: %+v, want 3 running of 3", stats)
	}
	if stats.ByTool[model.ToolNetworkScan] != 2 || stats.ByTool[model.ToolOSINTLookup] != 1 {
		t.Errorf("byTool = %v", stats.ByTool)
	}

	close(launcher.Release)
	for _, id := range []string{"1", "2", "3"} {
		waitTerminal(t, svc, id)
	}

	stats = svc.Summary()
	if stats.Total != 3 || stats.Completed != 3 || stats.Running != 0 {
		t.Errorf("after release: %+v, want 3 completed of 3", stats)
	}
}

func TestTools_ListsClosedSet(t *testing.T) {
	t.Parallel()

	svc := newTestService(&testutil.DummyLauncher{})

	infos := svc.Tools()
	if len(infos) != 4 {
		t.Fatalf("Tools returned %d entries, want 4", len(infos))
	}

	wantBinaries := map[model.Tool]string{
		model.ToolNetworkScan:      "nmap",
		model.ToolSQLInjectionScan: "sqlmap",
		model.ToolOSINTLookup:      "whois",
		model.ToolWebProbe:         "curl",
	}
	for i, tool := range model.Tools() {
		if infos[i].Name != tool {
			t.Errorf("position %d holds %q, want %q", i, infos[i].Name, tool)
		}
		if infos[i].Binary != wantBinaries[tool] {
			t.Errorf("%q binary = %q, want %q", tool, infos[i].Binary, wantBinaries[tool])
		}
	}
}

func TestSubscribe_DeliversLifecycle(t *testing.T) {
	t.Parallel()

	launcher := &testutil.DummyLauncher{Outcome: model.Outcome{Status: model.StatusCompleted}}
	svc := newTestService(launcher)

	subID, ch := svc.Subscribe()
	defer svc.Unsubscribe(subID)

	scan, err := svc.Submit(model.ToolOSINTLookup, "example.com", nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	var got []model.ScanEvent
	timeout := time.After(5 * time.Second)
	for len(got) < 2 {
		select {
		case ev := <-ch:
			got = append(got, ev)
		case <-timeout:
			t.Fatalf("received %d events, want 2", len(got))
		}
	}

	if got[0].ScanID != scan.ID || got[0].Status != model.StatusRunning {
		t.Errorf("first event = %+v, want running for %q", got[0], scan.ID)
	}
	if got[1].Status != model.StatusCompleted {
		t.Errorf("second event = %+v, want completed", got[1])
	}
}
