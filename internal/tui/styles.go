package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/psrun/psrun/internal/config"
	"github.com/psrun/psrun/internal/models"
)

// Styles is the resolved style set for one theme.
type Styles struct {
	Title    lipgloss.Style
	Project  lipgloss.Style
	Selected lipgloss.Style
	Item     lipgloss.Style
	Shortcut lipgloss.Style
	Command  lipgloss.Style
	Desc     lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	Splash   lipgloss.Style
	Search   lipgloss.Style
}

// NewStyles resolves a theme into concrete styles. NoColor keeps every
// style empty so output degrades to plain text.
func NewStyles(theme config.Theme) *Styles {
	if theme == config.ThemeNoColor {
		return &Styles{}
	}

	accent := lipgloss.Color("#7D56F4")
	muted := lipgloss.Color("#888888")
	text := lipgloss.Color("#FFFFFF")
	errColor := lipgloss.Color("#FF5555")
	if theme == config.ThemeLight {
		accent = lipgloss.Color("#5B3CC4")
		muted = lipgloss.Color("#666666")
		text = lipgloss.Color("#1A1A1A")
		errColor = lipgloss.Color("#C4302B")
	}

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			MarginBottom(1),
		Project: lipgloss.NewStyle().
			Foreground(muted),
		Selected: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		Item: lipgloss.NewStyle().
			Foreground(text),
		Shortcut: lipgloss.NewStyle().
			Foreground(accent),
		Command: lipgloss.NewStyle().
			Foreground(muted),
		Desc: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
		Help: lipgloss.NewStyle().
			Foreground(muted).
			MarginTop(1),
		Error: lipgloss.NewStyle().
			Foreground(errColor).
			Bold(true),
		Splash: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(errColor).
			Padding(1, 2),
		Search: lipgloss.NewStyle().
			Foreground(accent),
	}
}

// CategoryIcon returns the emoji marker for a category. Other gets none.
func CategoryIcon(c models.Category) string {
	switch c {
	case models.CategoryDev, models.CategoryStart:
		return "🚀"
	case models.CategoryBuild:
		return "🔨"
	case models.CategoryTest:
		return "🧪"
	case models.CategoryLint:
		return "🔍"
	case models.CategoryFormat:
		return "✨"
	case models.CategoryWatch:
		return "👀"
	case models.CategoryClean:
		return "🧹"
	case models.CategoryDeploy:
		return "📦"
	default:
		return ""
	}
}
