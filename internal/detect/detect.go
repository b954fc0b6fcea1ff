// Package detect locates the project that owns a directory by walking the
// ancestor chain for known manifest and lockfile signatures.
package detect

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/psrun/psrun/internal/filesystem"
	"github.com/psrun/psrun/internal/models"
)

// Detector finds the project type and root for a starting directory.
type Detector struct {
	fs filesystem.FileSystem
}

// New creates a Detector backed by the given filesystem.
func New(fs filesystem.FileSystem) *Detector {
	return &Detector{fs: fs}
}

// Detect walks from startDir upward to (and including) the user's home
// directory and returns the first project matched by the detection rules.
// Lockfile rules are evaluated across the whole chain before any
// config-fallback rule: a lockfile in a shallower ancestor beats a config
// file in a closer one. Within a pass, closer directories win, and within
// one directory the declared rule order wins.
func (d *Detector) Detect(startDir string) (models.Project, error) {
	chain, err := d.ancestorChain(startDir)
	if err != nil {
		return models.Project{}, err
	}

	// Two explicit passes keep the precedence invariant auditable.
	for _, rules := range [][]Rule{lockfileRules, configFallbackRules} {
		for _, dir := range chain {
			for _, rule := range rules {
				matched, err := d.matches(dir, rule)
				if err != nil {
					return models.Project{}, err
				}
				if matched {
					log.Debug("project detected", "type", rule.Type, "root", dir)
					return models.Project{
						Type: rule.Type,
						Root: dir,
						Name: filepath.Base(dir),
					}, nil
				}
			}
		}
	}

	boundary := startDir
	if len(chain) > 0 {
		boundary = chain[len(chain)-1]
	}
	return models.Project{}, &NotFoundError{StartDir: startDir, Boundary: boundary}
}

// ancestorChain lists startDir and its ancestors closest-first, stopping at
// the home directory when it is on the chain, otherwise at the filesystem
// root. Directories above home are never visited.
func (d *Detector) ancestorChain(startDir string) ([]string, error) {
	home, err := d.fs.UserHomeDir()
	if err != nil {
		return nil, &IOError{Dir: startDir, Err: err}
	}
	home = filepath.Clean(home)

	var chain []string
	dir := filepath.Clean(startDir)
	for {
		chain = append(chain, dir)
		if dir == home {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return chain, nil
}

// matches reports whether any of the rule's signature files exists in dir.
// Stat failures other than "not exists" are surfaced as IOError.
func (d *Detector) matches(dir string, rule Rule) (bool, error) {
	for _, name := range rule.Filenames {
		_, err := d.fs.Stat(filepath.Join(dir, name))
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return false, &IOError{Dir: dir, Err: err}
		}
	}
	return false, nil
}
