package execution

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("script execution tests require a POSIX shell")
	}
}

func TestRun_ZeroExit(t *testing.T) {
	skipOnWindows(t)

	code, err := New().Run(context.Background(), Request{Command: "true"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestRun_NonZeroExitIsNotAnError(t *testing.T) {
	skipOnWindows(t)

	code, err := New().Run(context.Background(), Request{Command: "exit 2"})
	require.NoError(t, err)
	assert.Equal(t, 2, code)
}

func TestRun_AppendedArgsArePositional(t *testing.T) {
	skipOnWindows(t)

	code, err := New().Run(context.Background(), Request{
		Command: `test "$1" = "hello"`,
		Args:    []string{"hello"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestRun_EnvOverridesReachChild(t *testing.T) {
	skipOnWindows(t)

	code, err := New().Run(context.Background(), Request{
		Command: `test "$NODE_ENV" = "dev"`,
		Env:     map[string]string{"NODE_ENV": "dev"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestRun_WorkingDirectory(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker"), []byte("x"), 0o644))

	code, err := New().Run(context.Background(), Request{
		Command: "test -f marker",
		Dir:     dir,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestBuildEnv(t *testing.T) {
	base := []string{"PATH=/bin"}

	assert.Equal(t, base, BuildEnv(base, nil))

	env := BuildEnv(base, map[string]string{"NODE_ENV": "dev"})
	assert.Contains(t, env, "PATH=/bin")
	assert.Contains(t, env, "NODE_ENV=dev")
}
