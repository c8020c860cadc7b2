package theme

import "github.com/charmbracelet/lipgloss"

// Listing styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	CategoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCategory).
			MarginTop(1)

	NameStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	DescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	ShortcutStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Scheme list markers
var (
	CurrentMarkerStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	FactoryTagStyle = lipgloss.NewStyle().
			Foreground(ColorFactory)
)

// Result styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)
