package detect

import "github.com/psrun/psrun/internal/models"

// RuleClass ranks detection evidence. A lockfile is generated by exactly one
// package manager, so lockfile matches outrank config matches anywhere in
// the ancestor chain.
type RuleClass int

const (
	ClassLockfile RuleClass = iota
	ClassConfigFallback
)

// Rule maps signature filenames to a project type. Rules are static and
// evaluated in declared order; the first match within a pass wins.
type Rule struct {
	Type      models.ProjectType
	Class     RuleClass
	Filenames []string
}

var lockfileRules = []Rule{
	{Type: models.ProjectTypeNpm, Class: ClassLockfile, Filenames: []string{"package-lock.json"}},
	{Type: models.ProjectTypeYarn, Class: ClassLockfile, Filenames: []string{"yarn.lock"}},
	{Type: models.ProjectTypePnpm, Class: ClassLockfile, Filenames: []string{"pnpm-lock.yaml"}},
	{Type: models.ProjectTypeBun, Class: ClassLockfile, Filenames: []string{"bun.lockb", "bun.lock"}},
	{Type: models.ProjectTypeDeno, Class: ClassLockfile, Filenames: []string{"deno.lock"}},
	{Type: models.ProjectTypePoetry, Class: ClassLockfile, Filenames: []string{"poetry.lock"}},
	{Type: models.ProjectTypeUv, Class: ClassLockfile, Filenames: []string{"uv.lock"}},
	{Type: models.ProjectTypeCargo, Class: ClassLockfile, Filenames: []string{"Cargo.lock"}},
	{Type: models.ProjectTypeGo, Class: ClassLockfile, Filenames: []string{"go.sum"}},
}

// Config-fallback order is load-bearing: requirements.txt outranks
// pyproject.toml, and Taskfile.yml outranks both Python rules. Changing it
// changes which type wins in mixed directories.
var configFallbackRules = []Rule{
	{Type: models.ProjectTypeNpm, Class: ClassConfigFallback, Filenames: []string{"package.json"}},
	{Type: models.ProjectTypeDeno, Class: ClassConfigFallback, Filenames: []string{"deno.json", "deno.jsonc"}},
	{Type: models.ProjectTypeTask, Class: ClassConfigFallback, Filenames: []string{"Taskfile.yml", "Taskfile.yaml"}},
	{Type: models.ProjectTypePip, Class: ClassConfigFallback, Filenames: []string{"requirements.txt"}},
	{Type: models.ProjectTypePoetry, Class: ClassConfigFallback, Filenames: []string{"pyproject.toml"}},
	{Type: models.ProjectTypeUv, Class: ClassConfigFallback, Filenames: []string{"uv.toml"}},
	{Type: models.ProjectTypeCargo, Class: ClassConfigFallback, Filenames: []string{"Cargo.toml"}},
	{Type: models.ProjectTypeGo, Class: ClassConfigFallback, Filenames: []string{"go.mod"}},
}
