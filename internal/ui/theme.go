package ui

import (
	"codeberg.org/mutker/filterdash/internal/config"
	"codeberg.org/mutker/filterdash/internal/errors"
	"codeberg.org/mutker/filterdash/internal/health"
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette a dashboard is rendered with. It is passed
// to the renderer explicitly; nothing in this package keeps a current theme.
type Theme struct {
	Name string

	Good    lipgloss.Color
	Info    lipgloss.Color
	Warn    lipgloss.Color
	Bad     lipgloss.Color
	Neutral lipgloss.Color

	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Border lipgloss.Color
}

var (
	darkTheme = Theme{
		Name:    config.ThemeDark,
		Good:    lipgloss.Color("#5DE89D"),
		Info:    lipgloss.Color("#3A7EBF"),
		Warn:    lipgloss.Color("#F2B94A"),
		Bad:     lipgloss.Color("#E85D5D"),
		Neutral: lipgloss.Color("#808080"),
		Text:    lipgloss.Color("#F8F8F2"),
		Muted:   lipgloss.Color("#8A8A8A"),
		Accent:  lipgloss.Color("#3A7EBF"),
		Border:  lipgloss.Color("#4A4A4A"),
	}

	lightTheme = Theme{
		Name:    config.ThemeLight,
		Good:    lipgloss.Color("#1E8E4E"),
		Info:    lipgloss.Color("#1F5F99"),
		Warn:    lipgloss.Color("#B7791F"),
		Bad:     lipgloss.Color("#C53030"),
		Neutral: lipgloss.Color("#6B6B6B"),
		Text:    lipgloss.Color("#1A1A1A"),
		Muted:   lipgloss.Color("#6B6B6B"),
		Accent:  lipgloss.Color("#1F5F99"),
		Border:  lipgloss.Color("#C8C8C8"),
	}
)

// NewTheme returns the named theme.
func NewTheme(name string) (Theme, error) {
	switch name {
	case config.ThemeDark:
		return darkTheme, nil
	case config.ThemeLight:
		return lightTheme, nil
	default:
		return Theme{}, errors.New().WithData(errors.ErrInvalidTheme, name)
	}
}

// Color returns the colour for a tag.
func (t Theme) Color(tag health.ColorTag) lipgloss.Color {
	switch tag {
	case health.TagGood:
		return t.Good
	case health.TagInfo:
		return t.Info
	case health.TagWarn:
		return t.Warn
	case health.TagBad:
		return t.Bad
	default:
		return t.Neutral
	}
}

// Tag returns a bold style in the colour of tag.
func (t Theme) Tag(tag health.ColorTag) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Color(tag)).Bold(true)
}

func (t Theme) panel() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}

func (t Theme) title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Text)
}

func (t Theme) label() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

func (t Theme) value() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Text)
}

func (t Theme) activeTab() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Text).Background(t.Accent).Padding(0, 1)
}

func (t Theme) tab() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 1)
}
