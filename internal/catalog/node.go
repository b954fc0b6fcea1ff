package catalog

import (
	"encoding/json"
	"path/filepath"

	"github.com/psrun/psrun/internal/models"
)

// packageJSON is the subset of package.json the builder consumes. The
// non-standard "descriptions" object supplies optional per-script help text.
type packageJSON struct {
	Name         string            `json:"name"`
	Scripts      map[string]string `json:"scripts"`
	Descriptions map[string]string `json:"descriptions"`
}

// parsePackageJSON handles the npm/yarn/pnpm/bun family: one scripts object,
// command text verbatim. Duplicate keys keep the later declaration, matching
// the manifest's own JSON object semantics. The package name, when present,
// replaces the directory-derived display name.
func (b *Builder) parsePackageJSON(project *models.Project) ([]models.ScriptEntry, error) {
	path := filepath.Join(project.Root, "package.json")
	data, err := b.fs.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if pkg.Name != "" {
		project.Name = pkg.Name
	}

	entries := make([]models.ScriptEntry, 0, len(pkg.Scripts))
	for name, command := range pkg.Scripts {
		entries = append(entries, newEntry(
			name,
			command,
			managerInvoke(project.Type, name),
			pkg.Descriptions[name],
		))
	}
	return entries, nil
}

// denoConfig is the subset of deno.json(c) the builder consumes.
type denoConfig struct {
	Tasks map[string]string `json:"tasks"`
}

func (b *Builder) parseDenoConfig(project models.Project) ([]models.ScriptEntry, error) {
	path := filepath.Join(project.Root, "deno.json")
	if !b.fs.Exists(path) {
		path = filepath.Join(project.Root, "deno.jsonc")
	}
	data, err := b.fs.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	var cfg denoConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	entries := make([]models.ScriptEntry, 0, len(cfg.Tasks))
	for name, command := range cfg.Tasks {
		entries = append(entries, newEntry(
			name,
			command,
			managerInvoke(project.Type, name),
			"",
		))
	}
	return entries, nil
}
