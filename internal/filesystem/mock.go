package filesystem

import (
	"io/fs"
	"path/filepath"
	"time"
)

// MockFileSystem provides an in-memory filesystem for testing. Paths are
// cleaned on insert so lookups with trailing separators still hit.
type MockFileSystem struct {
	files      map[string]*MockFile
	statErrors map[string]error
	currentDir string
	homeDir    string
}

// MockFile represents a file in the mock filesystem
type MockFile struct {
	Content []byte
	Mode    fs.FileMode
	ModTime time.Time
	IsDir   bool
}

// mockFileInfo implements fs.FileInfo
type mockFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return m.modTime }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

// NewMockFileSystem creates a new MockFileSystem rooted at a fake home.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:      make(map[string]*MockFile),
		statErrors: make(map[string]error),
		currentDir: "/home/user/workspace",
		homeDir:    "/home/user",
	}
}

// AddFile adds a file to the mock filesystem
func (mfs *MockFileSystem) AddFile(path string, content []byte) {
	cleanPath := filepath.Clean(path)
	mfs.files[cleanPath] = &MockFile{
		Content: content,
		Mode:    0644,
		ModTime: time.Now(),
		IsDir:   false,
	}

	// Ensure parent directories exist
	dir := filepath.Dir(cleanPath)
	for dir != "." && dir != "/" && dir != cleanPath {
		if _, exists := mfs.files[dir]; !exists {
			mfs.AddDir(dir)
		}
		dir = filepath.Dir(dir)
	}
}

// AddDir adds a directory to the mock filesystem
func (mfs *MockFileSystem) AddDir(path string) {
	cleanPath := filepath.Clean(path)
	mfs.files[cleanPath] = &MockFile{
		Mode:    0755 | fs.ModeDir,
		ModTime: time.Now(),
		IsDir:   true,
	}
}

// AddStatError makes Stat on the given path fail with err, simulating an
// unreadable directory.
func (mfs *MockFileSystem) AddStatError(path string, err error) {
	mfs.statErrors[filepath.Clean(path)] = err
}

// SetCurrentDir sets the working directory returned by Getwd.
func (mfs *MockFileSystem) SetCurrentDir(path string) {
	mfs.currentDir = filepath.Clean(path)
}

// SetHomeDir sets the home directory returned by UserHomeDir.
func (mfs *MockFileSystem) SetHomeDir(path string) {
	mfs.homeDir = filepath.Clean(path)
}

func (mfs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	cleanPath := filepath.Clean(path)
	if err, ok := mfs.statErrors[cleanPath]; ok {
		return nil, err
	}
	file, exists := mfs.files[cleanPath]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if file.IsDir {
		return nil, &fs.PathError{Op: "read", Path: path, Err: fs.ErrInvalid}
	}
	return file.Content, nil
}

func (mfs *MockFileSystem) Stat(path string) (fs.FileInfo, error) {
	cleanPath := filepath.Clean(path)
	if err, ok := mfs.statErrors[cleanPath]; ok {
		return nil, err
	}
	file, exists := mfs.files[cleanPath]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return &mockFileInfo{
		name:    filepath.Base(cleanPath),
		size:    int64(len(file.Content)),
		mode:    file.Mode,
		modTime: file.ModTime,
		isDir:   file.IsDir,
	}, nil
}

func (mfs *MockFileSystem) Exists(path string) bool {
	_, err := mfs.Stat(path)
	return err == nil
}

func (mfs *MockFileSystem) Getwd() (string, error) {
	return mfs.currentDir, nil
}

func (mfs *MockFileSystem) UserHomeDir() (string, error) {
	return mfs.homeDir, nil
}
