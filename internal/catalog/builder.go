// Package catalog normalizes heterogeneous project manifests into one typed,
// shortcut-assigned set of script entries.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/psrun/psrun/internal/filesystem"
	"github.com/psrun/psrun/internal/models"
)

// Builder parses the manifest of a detected project into a Catalog.
type Builder struct {
	fs filesystem.FileSystem
}

// NewBuilder creates a Builder backed by the given filesystem.
func NewBuilder(fs filesystem.FileSystem) *Builder {
	return &Builder{fs: fs}
}

// Build produces the catalog for a detected project. It fails with a
// ParseError for malformed manifests and ErrNoScripts when the manifest is
// valid but declares nothing runnable. Each project type has its own
// manifest shape; the per-type parsers all hand back the same normalized
// entry slice.
func (b *Builder) Build(project models.Project) (*models.Catalog, error) {
	var (
		entries []models.ScriptEntry
		err     error
	)

	switch project.Type {
	case models.ProjectTypeNpm, models.ProjectTypeYarn, models.ProjectTypePnpm, models.ProjectTypeBun:
		entries, err = b.parsePackageJSON(&project)
	case models.ProjectTypeDeno:
		entries, err = b.parseDenoConfig(project)
	case models.ProjectTypePip:
		entries, err = b.parseRequirements(project)
	case models.ProjectTypePoetry:
		entries, err = b.parsePoetry(project)
	case models.ProjectTypeUv:
		entries, err = b.parseUv(project)
	case models.ProjectTypeCargo:
		entries, err = b.parseCargo(project)
	case models.ProjectTypeGo:
		entries, err = b.parseGoProject(&project)
	case models.ProjectTypeTask:
		entries, err = b.parseTaskfile(project)
	default:
		return nil, fmt.Errorf("unsupported project type %q", project.Type)
	}
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoScripts
	}

	entries = dedupeEntries(entries)
	sortEntries(entries)
	entries = AssignShortcuts(entries)
	log.Debug("catalog built", "type", project.Type, "scripts", len(entries))

	return models.NewCatalog(project, entries), nil
}

// dedupeEntries enforces name uniqueness with last-write-wins, mirroring
// how the source manifests treat duplicate keys themselves.
func dedupeEntries(entries []models.ScriptEntry) []models.ScriptEntry {
	byName := make(map[string]int, len(entries))
	out := entries[:0]
	for _, e := range entries {
		if i, seen := byName[e.Name]; seen {
			out[i] = e
			continue
		}
		byName[e.Name] = len(out)
		out = append(out, e)
	}
	return out
}

// sortEntries fixes the catalog order: categorized entries first, each group
// sorted by name. Manifest key order is not relied on, so the order is
// deterministic for every manifest shape.
func sortEntries(entries []models.ScriptEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		iOther := entries[i].Category == models.CategoryOther
		jOther := entries[j].Category == models.CategoryOther
		if iOther != jOther {
			return jOther
		}
		return entries[i].Name < entries[j].Name
	})
}

// newEntry builds one normalized entry. The command text is carried through
// verbatim; invoke defaults to the command when the caller passes "".
func newEntry(name, command, invoke, description string) models.ScriptEntry {
	if invoke == "" {
		invoke = command
	}
	return models.ScriptEntry{
		Name:        name,
		Command:     command,
		Invoke:      invoke,
		Description: description,
		Category:    InferCategory(name),
	}
}

// managerInvoke renders the invocation line for a script run through the
// project's package manager, e.g. "npm run test".
func managerInvoke(t models.ProjectType, name string) string {
	args := t.RunnerArgs()
	if args == nil {
		return name
	}
	return strings.Join(append(args, name), " ")
}
