package models

import "fmt"

// ProjectType identifies the package manager or build tool that owns a project.
type ProjectType string

const (
	ProjectTypeNpm    ProjectType = "npm"
	ProjectTypeYarn   ProjectType = "yarn"
	ProjectTypePnpm   ProjectType = "pnpm"
	ProjectTypeBun    ProjectType = "bun"
	ProjectTypeDeno   ProjectType = "deno"
	ProjectTypePip    ProjectType = "pip"
	ProjectTypePoetry ProjectType = "poetry"
	ProjectTypeUv     ProjectType = "uv"
	ProjectTypeCargo  ProjectType = "cargo"
	ProjectTypeGo     ProjectType = "go"
	ProjectTypeTask   ProjectType = "task"
)

// Project is a detected project: its type and the directory where the
// matching manifest or lockfile was found. Immutable once detected.
type Project struct {
	Type ProjectType
	Root string
	// Name is a display name for the project, e.g. the package name from
	// its manifest or the root directory basename.
	Name string
}

func (p Project) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Type)
}

// RunnerArgs returns the command-line prefix the project's package manager
// uses to invoke a named script, or nil for types whose catalog entries
// carry a complete command line already (cargo, go, pip, task tasks run
// through their own invocation text).
func (t ProjectType) RunnerArgs() []string {
	switch t {
	case ProjectTypeNpm:
		return []string{"npm", "run"}
	case ProjectTypeYarn:
		return []string{"yarn", "run"}
	case ProjectTypePnpm:
		return []string{"pnpm", "run"}
	case ProjectTypeBun:
		return []string{"bun", "run"}
	case ProjectTypeDeno:
		return []string{"deno", "task"}
	case ProjectTypePoetry:
		return []string{"poetry", "run"}
	case ProjectTypeUv:
		return []string{"uv", "run"}
	default:
		return nil
	}
}
