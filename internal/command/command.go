package command

import (
	"fmt"
	"os/exec"

	"github.com/volkh4n/scandeck/internal/model"
)

// template is one fixed external-tool invocation. The target is inserted as
// a single discrete argv element between pre and post; it is never joined
// into a shell string, so shell metacharacters in the target stay literal.
type template struct {
	bin  string
	pre  []string
	post []string
}

// templates is the closed tool table. Adding a tool means adding a row here
// and a constant in the model package; there is no dynamic dispatch.
var templates = map[model.Tool]template{
	model.ToolNetworkScan:      {bin: "nmap", pre: []string{"-Pn"}},
	model.ToolSQLInjectionScan: {bin: "sqlmap", pre: []string{"-u"}, post: []string{"--batch", "--crawl=0", "--level=1", "--risk=1"}},
	model.ToolOSINTLookup:      {bin: "whois"},
	model.ToolWebProbe:         {bin: "curl", pre: []string{"-sIL"}},
}

// Build maps (tool, target) to the exact argument vector for that tool.
// The target is passed through as one opaque element. Unknown tools are
// rejected with an error; callers validate the tool before reaching here.
func Build(tool model.Tool, target string) ([]string, error) {
	tpl, ok := templates[tool]
	if !ok {
		return nil, fmt.Errorf("command: unknown tool %q", tool)
	}

	argv := make([]string, 0, 2+len(tpl.pre)+len(tpl.post))
	argv = append(argv, tpl.bin)
	argv = append(argv, tpl.pre...)
	argv = append(argv, target)
	argv = append(argv, tpl.post...)
	return argv, nil
}

// Binary returns the executable name a tool dispatches to.
func Binary(tool model.Tool) (string, error) {
	tpl, ok := templates[tool]
	if !ok {
		return "", fmt.Errorf("command: unknown tool %q", tool)
	}
	return tpl.bin, nil
}

// Lookup reports whether the tool's executable is present on PATH, and where.
// Used by the tool listing endpoint so the dashboard can grey out missing tools.
func Lookup(tool model.Tool) (path string, available bool) {
	bin, err := Binary(tool)
	if err != nil {
		return "", false
	}
	p, err := exec.LookPath(bin)
	if err != nil {
		return "", false
	}
	return p, true
}
