package catalog

import (
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/psrun/psrun/internal/models"
)

// linters recognized in Python dependency lists, checked in order; the first
// one present decides the synthesized lint entry.
var pythonLinters = []struct {
	pkg     string
	command string
}{
	{"ruff", "ruff check ."},
	{"flake8", "flake8"},
	{"pylint", "pylint **/*.py"},
}

// parseRequirements synthesizes entries for a plain-pip project: an install
// entry, plus a lint entry when a known linter is listed.
func (b *Builder) parseRequirements(project models.Project) ([]models.ScriptEntry, error) {
	path := filepath.Join(project.Root, "requirements.txt")
	data, err := b.fs.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	var entries []models.ScriptEntry
	entries = append(entries, newEntry(
		"install",
		"pip install -r requirements.txt",
		"",
		"Install dependencies from requirements.txt",
	))

	for _, linter := range pythonLinters {
		if hasRequirement(string(data), linter.pkg) {
			entries = append(entries, newEntry("lint", linter.command, "", "Run "+linter.pkg))
			break
		}
	}
	return entries, nil
}

func hasRequirement(requirements, pkg string) bool {
	for _, line := range strings.Split(requirements, "\n") {
		name := strings.TrimSpace(line)
		// Strip version specifiers: "ruff==0.4.0" or "ruff>=0.1".
		for _, sep := range []string{"==", ">=", "<=", "~=", "!=", ">", "<", "[", ";", " "} {
			if i := strings.Index(name, sep); i >= 0 {
				name = name[:i]
			}
		}
		if strings.EqualFold(name, pkg) {
			return true
		}
	}
	return false
}

// pyproject is the subset of pyproject.toml the builder consumes, covering
// both the poetry table and PEP 621 project scripts.
type pyproject struct {
	Project struct {
		Scripts map[string]string `toml:"scripts"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Scripts         map[string]string      `toml:"scripts"`
			Dependencies    map[string]interface{} `toml:"dependencies"`
			DevDependencies map[string]interface{} `toml:"dev-dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

func (b *Builder) readPyproject(project models.Project) (pyproject, string, error) {
	path := filepath.Join(project.Root, "pyproject.toml")
	data, err := b.fs.ReadFile(path)
	if err != nil {
		return pyproject{}, path, &ParseError{Path: path, Err: err}
	}
	var py pyproject
	if err := toml.Unmarshal(data, &py); err != nil {
		return pyproject{}, path, &ParseError{Path: path, Err: err}
	}
	return py, path, nil
}

// parsePoetry reads [tool.poetry.scripts] and synthesizes a lint entry from
// the dependency tables.
func (b *Builder) parsePoetry(project models.Project) ([]models.ScriptEntry, error) {
	py, _, err := b.readPyproject(project)
	if err != nil {
		return nil, err
	}

	var entries []models.ScriptEntry
	for name, target := range py.Tool.Poetry.Scripts {
		entries = append(entries, newEntry(
			name,
			target,
			managerInvoke(project.Type, name),
			"",
		))
	}

	for _, linter := range pythonLinters {
		if hasPoetryDependency(py, linter.pkg) {
			entries = append(entries, newEntry("lint", "poetry run "+linter.command, "", "Run "+linter.pkg))
			break
		}
	}
	return entries, nil
}

func hasPoetryDependency(py pyproject, pkg string) bool {
	if _, ok := py.Tool.Poetry.Dependencies[pkg]; ok {
		return true
	}
	_, ok := py.Tool.Poetry.DevDependencies[pkg]
	return ok
}

// parseUv reads PEP 621 [project.scripts]; every entry runs through
// "uv run".
func (b *Builder) parseUv(project models.Project) ([]models.ScriptEntry, error) {
	py, _, err := b.readPyproject(project)
	if err != nil {
		return nil, err
	}

	entries := make([]models.ScriptEntry, 0, len(py.Project.Scripts))
	for name, target := range py.Project.Scripts {
		entries = append(entries, newEntry(
			name,
			target,
			managerInvoke(project.Type, name),
			"",
		))
	}
	return entries, nil
}
