package command

import (
	"reflect"
	"testing"

	"github.com/volkh4n/scandeck/internal/model"
)

func TestBuild_KnownTools(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tool   model.Tool
		target string
		want   []string
	}{
		{model.ToolNetworkScan, "203.0.113.7", []string{"nmap", "-Pn", "203.0.113.7"}},
		{model.ToolSQLInjectionScan, "http://testphp.vulnweb.com", []string{"sqlmap", "-u", "http://testphp.vulnweb.com", "--batch", "--crawl=0", "--level=1", "--risk=1"}},
		{model.ToolOSINTLookup, "example.com", []string{"whois", "example.com"}},
		{model.ToolWebProbe, "https://example.com", []string{"curl", "-sIL", "https://example.com"}},
	}

	for _, tc := range cases {
		argv, err := Build(tc.tool, tc.target)
		if err != nil {
			t.Fatalf("Build(%q, %q) returned error: %v", tc.tool, tc.target, err)
		}
		if !reflect.DeepEqual(argv, tc.want) {
			t.Errorf("Build(%q, %q) = %v, want %v", tc.tool, tc.target, argv, tc.want)
		}
	}
}

func TestBuild_TargetStaysSingleElement(t *testing.T) {
	t.Parallel()

	// A hostile target must land in argv as one literal element. No shell is
	// involved anywhere downstream, so this is the whole injection story.
	target := "example.com; rm -rf /"
	argv, err := Build(model.ToolNetworkScan, target)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(argv) != 3 {
		t.Fatalf("argv has %d elements, want 3: %v", len(argv), argv)
	}
	if argv[2] != target {
		t.Errorf("target element = %q, want %q", argv[2], target)
	}
}

func TestBuild_UnknownTool(t *testing.T) {
	t.Parallel()

	if _, err := Build(model.Tool("port-knock"), "example.com"); err == nil {
		t.Error("Build with unknown tool did not return an error")
	}
}

func TestBinary(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tool model.Tool
		want string
	}{
		{model.ToolNetworkScan, "nmap"},
		{model.ToolSQLInjectionScan, "sqlmap"},
		{model.ToolOSINTLookup, "whois"},
		{model.ToolWebProbe, "curl"},
	}
	for _, tc := range cases {
		got, err := Binary(tc.tool)
		if err != nil {
			t.Fatalf("Binary(%q) returned error: %v", tc.tool, err)
		}
		if got != tc.want {
			t.Errorf("Binary(%q) = %q, want %q", tc.tool, got, tc.want)
		}
	}

	if _, err := Binary(model.Tool("nope")); err == nil {
		t.Error("Binary with unknown tool did not return an error")
	}
}

func TestLookup_UnknownTool(t *testing.T) {
	t.Parallel()

	// Whether nmap and friends are installed depends on the host, so only the
	// unknown-tool path has a stable answer.
	if path, ok := Lookup(model.Tool("nope")); ok || path != "" {
		t.Errorf("Lookup(unknown) = (%q, %v), want (\"\", false)", path, ok)
	}
}
