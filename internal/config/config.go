// Package config loads and persists psrun settings: the color theme, emoji
// toggle, and the saved-project alias store.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const configFileName = ".psrun.toml"

// Theme is the resolved presentation theme. The core components never read
// it; only rendering does.
type Theme string

const (
	ThemeDark    Theme = "dark"
	ThemeLight   Theme = "light"
	ThemeNoColor Theme = "nocolor"
)

// ParseTheme maps a user-supplied theme name to a Theme.
func ParseTheme(value string) (Theme, error) {
	switch strings.ToLower(value) {
	case "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	case "nocolor", "no-color", "none":
		return ThemeNoColor, nil
	default:
		return "", fmt.Errorf("unknown theme %q (valid: dark, light, nocolor)", value)
	}
}

// Settings is the persisted configuration. Projects maps saved alias names
// to project directories; a resolved alias supplies the detector's starting
// directory in place of the working directory.
type Settings struct {
	Theme     string            `mapstructure:"theme"`
	ShowEmoji bool              `mapstructure:"show_emoji"`
	Projects  map[string]string `mapstructure:"projects"`

	path string
}

// Load reads settings from .psrun.toml in the working directory, falling
// back to the home directory, falling back to defaults when neither exists.
func Load() (*Settings, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetDefault("theme", string(ThemeDark))
	v.SetDefault("show_emoji", true)

	if fileExists(path) {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if settings.Projects == nil {
		settings.Projects = make(map[string]string)
	}
	settings.path = path
	return &settings, nil
}

// resolveConfigPath prefers a config file in the working directory and falls
// back to the home directory. A missing file resolves to the home path so
// first-time saves land there.
func resolveConfigPath() (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, configFileName)
		if fileExists(local) {
			return local, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, configFileName), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Save writes the settings back to the file they were loaded from.
func (s *Settings) Save() error {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("toml")
	v.Set("theme", s.Theme)
	v.Set("show_emoji", s.ShowEmoji)
	v.Set("projects", s.Projects)

	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", s.path, err)
	}
	return nil
}

// EffectiveTheme resolves the active theme. Priority: CLI flag, NO_COLOR,
// PSRUN_THEME, config file, dark.
func (s *Settings) EffectiveTheme(cliTheme string) Theme {
	if cliTheme != "" {
		if theme, err := ParseTheme(cliTheme); err == nil {
			return theme
		}
	}

	if _, set := os.LookupEnv("NO_COLOR"); set {
		return ThemeNoColor
	}

	if env := os.Getenv("PSRUN_THEME"); env != "" {
		if theme, err := ParseTheme(env); err == nil {
			return theme
		}
	}

	if theme, err := ParseTheme(s.Theme); err == nil {
		return theme
	}
	return ThemeDark
}
