package detect

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psrun/psrun/internal/filesystem"
	"github.com/psrun/psrun/internal/models"
)

func TestDetect_LockfileWins(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/home/user/app/package-lock.json", []byte("{}"))
	fs.AddFile("/home/user/app/package.json", []byte("{}"))

	project, err := New(fs).Detect("/home/user/app")
	require.NoError(t, err)
	assert.Equal(t, models.ProjectTypeNpm, project.Type)
	assert.Equal(t, "/home/user/app", project.Root)
	assert.Equal(t, "app", project.Name)
}

func TestDetect_LockfileOutranksCloserFallback(t *testing.T) {
	// A yarn.lock two levels up must beat a package.json right here.
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/home/user/mono/yarn.lock", []byte(""))
	fs.AddFile("/home/user/mono/packages/www/package.json", []byte("{}"))

	project, err := New(fs).Detect("/home/user/mono/packages/www")
	require.NoError(t, err)
	assert.Equal(t, models.ProjectTypeYarn, project.Type)
	assert.Equal(t, "/home/user/mono", project.Root)
}

func TestDetect_CloserLockfileWinsWithinPass(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/home/user/mono/yarn.lock", []byte(""))
	fs.AddFile("/home/user/mono/services/api/Cargo.lock", []byte(""))

	project, err := New(fs).Detect("/home/user/mono/services/api")
	require.NoError(t, err)
	assert.Equal(t, models.ProjectTypeCargo, project.Type)
	assert.Equal(t, "/home/user/mono/services/api", project.Root)
}

func TestDetect_DeclaredOrderBreaksTiesInOneDirectory(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/home/user/app/pnpm-lock.yaml", []byte(""))
	fs.AddFile("/home/user/app/yarn.lock", []byte(""))

	project, err := New(fs).Detect("/home/user/app")
	require.NoError(t, err)
	assert.Equal(t, models.ProjectTypeYarn, project.Type)
}

func TestDetect_PythonFallbackOrdering(t *testing.T) {
	// requirements.txt outranks pyproject.toml when neither has a lockfile.
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/home/user/py/pyproject.toml", []byte(""))
	fs.AddFile("/home/user/py/requirements.txt", []byte(""))

	project, err := New(fs).Detect("/home/user/py")
	require.NoError(t, err)
	assert.Equal(t, models.ProjectTypePip, project.Type)
}

func TestDetect_PoetryLockWinsOverRequirements(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/home/user/py/pyproject.toml", []byte(""))
	fs.AddFile("/home/user/py/requirements.txt", []byte(""))
	fs.AddFile("/home/user/py/poetry.lock", []byte(""))

	project, err := New(fs).Detect("/home/user/py")
	require.NoError(t, err)
	assert.Equal(t, models.ProjectTypePoetry, project.Type)
}

func TestDetect_StopsAtHomeBoundary(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/home/user/deep/nested")
	// A manifest above the home directory must never be considered.
	fs.AddFile("/home/package.json", []byte("{}"))
	fs.AddFile("/package.json", []byte("{}"))

	_, err := New(fs).Detect("/home/user/deep/nested")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoProjectFound)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "/home/user/deep/nested", notFound.StartDir)
	assert.Equal(t, "/home/user", notFound.Boundary)
}

func TestDetect_HomeItselfIsSearched(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/home/user/somewhere")
	fs.AddFile("/home/user/go.mod", []byte("module example.com/home"))

	project, err := New(fs).Detect("/home/user/somewhere")
	require.NoError(t, err)
	assert.Equal(t, models.ProjectTypeGo, project.Type)
	assert.Equal(t, "/home/user", project.Root)
}

func TestDetect_UnreadableDirectorySurfaced(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	permErr := errors.New("permission denied")
	fs.AddStatError("/home/user/app/package-lock.json", permErr)

	_, err := New(fs).Detect("/home/user/app")
	require.Error(t, err)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "/home/user/app", ioErr.Dir)
	assert.ErrorIs(t, err, permErr)
}

func TestDetect_NoProjectFound(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/home/user/empty")

	_, err := New(fs).Detect("/home/user/empty")
	assert.ErrorIs(t, err, ErrNoProjectFound)
}

func TestDetect_TaskfileFallback(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/home/user/infra/Taskfile.yml", []byte("version: '3'"))

	project, err := New(fs).Detect("/home/user/infra")
	require.NoError(t, err)
	assert.Equal(t, models.ProjectTypeTask, project.Type)
}
