package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settingsForTest(t *testing.T) *Settings {
	t.Helper()
	return &Settings{
		Theme:     string(ThemeDark),
		ShowEmoji: true,
		Projects:  make(map[string]string),
		path:      filepath.Join(t.TempDir(), ".psrun.toml"),
	}
}

func TestParseTheme(t *testing.T) {
	theme, err := ParseTheme("Light")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)

	_, err = ParseTheme("solarized")
	assert.Error(t, err)
}

func TestEffectiveTheme_Priority(t *testing.T) {
	s := settingsForTest(t)
	s.Theme = string(ThemeLight)

	t.Setenv("PSRUN_THEME", "")
	os.Unsetenv("PSRUN_THEME")
	t.Setenv("NO_COLOR", "")
	os.Unsetenv("NO_COLOR")

	// Config file value applies when nothing overrides it.
	assert.Equal(t, ThemeLight, s.EffectiveTheme(""))

	// Environment theme beats config.
	t.Setenv("PSRUN_THEME", "dark")
	assert.Equal(t, ThemeDark, s.EffectiveTheme(""))

	// NO_COLOR beats the environment theme.
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ThemeNoColor, s.EffectiveTheme(""))

	// A CLI flag beats everything.
	assert.Equal(t, ThemeLight, s.EffectiveTheme("light"))
}

func TestProjectAliases(t *testing.T) {
	s := settingsForTest(t)

	require.NoError(t, s.AddProject("api", "/home/user/api"))
	require.Error(t, s.AddProject("api", "/elsewhere"))

	path, ok := s.ProjectPath("api")
	require.True(t, ok)
	assert.Equal(t, "/home/user/api", path)

	require.NoError(t, s.RenameProject("api", "backend"))
	_, ok = s.ProjectPath("api")
	assert.False(t, ok)

	assert.Equal(t, []string{"backend"}, s.ProjectNames())

	require.NoError(t, s.RemoveProject("backend"))
	assert.Empty(t, s.ProjectNames())

	assert.Error(t, s.RemoveProject("backend"))
}

func TestSaveAndReload(t *testing.T) {
	s := settingsForTest(t)
	s.Theme = string(ThemeLight)
	require.NoError(t, s.AddProject("api", "/home/user/api"))

	data, err := os.ReadFile(s.path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "light")
	assert.Contains(t, string(data), "api")
}
