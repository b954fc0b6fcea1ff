package catalog

import (
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"

	"github.com/psrun/psrun/internal/models"
)

// goBuiltins are the standard toolchain entries offered for a Go module.
var goBuiltins = []struct {
	name        string
	command     string
	description string
}{
	{"build", "go build ./...", "Compile the module"},
	{"run", "go run .", "Run the main package"},
	{"test", "go test ./...", "Run package tests"},
	{"lint", "golangci-lint run", "Run linters"},
	{"fmt", "go fmt ./...", "Format code"},
	{"tidy", "go mod tidy", "Clean up module dependencies"},
}

// parseGoProject offers the fixed toolchain entries plus make:<target>
// entries parsed from a sibling Makefile. The module path from go.mod only
// feeds the project display name.
func (b *Builder) parseGoProject(project *models.Project) ([]models.ScriptEntry, error) {
	goModPath := filepath.Join(project.Root, "go.mod")
	if data, err := b.fs.ReadFile(goModPath); err == nil {
		if mod, err := modfile.Parse(goModPath, data, nil); err != nil {
			return nil, &ParseError{Path: goModPath, Err: err}
		} else if mod.Module != nil {
			if parts := strings.Split(mod.Module.Mod.Path, "/"); len(parts) > 0 {
				project.Name = parts[len(parts)-1]
			}
		}
	}

	var entries []models.ScriptEntry
	for _, builtin := range goBuiltins {
		entries = append(entries, newEntry(builtin.name, builtin.command, "", builtin.description))
	}

	entries = append(entries, b.makefileTargets(project.Root)...)
	return entries, nil
}

// makefileTargets extracts simple targets from a Makefile: non-dot,
// single-word rule names. Pattern rules and special targets are skipped.
func (b *Builder) makefileTargets(root string) []models.ScriptEntry {
	data, err := b.fs.ReadFile(filepath.Join(root, "Makefile"))
	if err != nil {
		return nil
	}

	var entries []models.ScriptEntry
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		target, ok := strings.CutSuffix(trimmed, ":")
		if !ok || target == "" {
			continue
		}
		if strings.HasPrefix(target, ".") || strings.ContainsAny(target, " \t=%$") {
			continue
		}
		entries = append(entries, newEntry(
			"make:"+target,
			"make "+target,
			"",
			"Run make target: "+target,
		))
	}
	return entries
}
