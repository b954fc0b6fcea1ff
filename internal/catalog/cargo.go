package catalog

import (
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/psrun/psrun/internal/models"
)

// cargoManifest is the subset of Cargo.toml the builder consumes: the
// metadata scripts table plus declared binary targets.
type cargoManifest struct {
	Package struct {
		Name     string `toml:"name"`
		Metadata struct {
			Scripts map[string]string `toml:"scripts"`
		} `toml:"metadata"`
	} `toml:"package"`
	Bin []struct {
		Name string `toml:"name"`
	} `toml:"bin"`
}

// cargoBuiltins are always offered for a cargo project, whether or not the
// manifest declares anything beyond them.
var cargoBuiltins = []struct {
	name        string
	command     string
	description string
}{
	{"build", "cargo build", "Compile the current package"},
	{"run", "cargo run", "Run the main binary of the current package"},
	{"test", "cargo test", "Run the tests"},
	{"check", "cargo check", "Analyze the package without building object files"},
	{"lint", "cargo clippy", "Run the Rust linter"},
	{"fix", "cargo clippy --fix", "Automatically fix lint findings"},
	{"install", "cargo install --path .", "Install the current package"},
	{"publish", "cargo publish", "Publish the current package"},
}

func (b *Builder) parseCargo(project models.Project) ([]models.ScriptEntry, error) {
	path := filepath.Join(project.Root, "Cargo.toml")
	data, err := b.fs.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	var manifest cargoManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	var entries []models.ScriptEntry
	for _, builtin := range cargoBuiltins {
		entries = append(entries, newEntry(builtin.name, builtin.command, "", builtin.description))
	}

	for name, command := range manifest.Package.Metadata.Scripts {
		entries = append(entries, newEntry(name, command, "", ""))
	}

	for _, bin := range manifest.Bin {
		if bin.Name == "" {
			continue
		}
		entries = append(entries, newEntry(
			"run:"+bin.Name,
			"cargo run --bin "+bin.Name,
			"",
			"Run the "+bin.Name+" binary",
		))
	}
	return entries, nil
}
