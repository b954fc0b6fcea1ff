package filesystem

import (
	"io/fs"
)

// FileSystem provides an abstraction over file operations for testability.
// The detector and catalog builder only ever read from the project tree.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) bool

	Getwd() (string, error)
	UserHomeDir() (string, error)
}
