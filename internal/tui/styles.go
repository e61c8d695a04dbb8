package tui

import "github.com/charmbracelet/lipgloss"

// palette is one colour theme.
type palette struct {
	primary   lipgloss.TerminalColor
	secondary lipgloss.TerminalColor
	muted     lipgloss.TerminalColor
	danger    lipgloss.TerminalColor
	warn      lipgloss.TerminalColor
	text      lipgloss.TerminalColor
	titleText lipgloss.TerminalColor
}

var (
	darkPalette = palette{
		primary:   lipgloss.Color("#7C3AED"), // purple
		secondary: lipgloss.Color("#10B981"), // green
		muted:     lipgloss.Color("#6B7280"), // gray
		danger:    lipgloss.Color("#EF4444"), // red
		warn:      lipgloss.Color("#F59E0B"), // yellow
		text:      lipgloss.Color("#E5E7EB"),
		titleText: lipgloss.Color("#FFFFFF"),
	}

	lightPalette = palette{
		primary:   lipgloss.Color("#5B21B6"),
		secondary: lipgloss.Color("#047857"),
		muted:     lipgloss.Color("#6B7280"),
		danger:    lipgloss.Color("#B91C1C"),
		warn:      lipgloss.Color("#B45309"),
		text:      lipgloss.Color("#111827"),
		titleText: lipgloss.Color("#FFFFFF"),
	}

	// systemPalette follows the terminal background.
	systemPalette = palette{
		primary:   lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: "#7C3AED"},
		secondary: lipgloss.AdaptiveColor{Light: "#047857", Dark: "#10B981"},
		muted:     lipgloss.Color("#6B7280"),
		danger:    lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#EF4444"},
		warn:      lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"},
		text:      lipgloss.AdaptiveColor{Light: "#111827", Dark: "#E5E7EB"},
		titleText: lipgloss.Color("#FFFFFF"),
	}
)

func paletteFor(theme string) palette {
	switch theme {
	case "light":
		return lightPalette
	case "dark":
		return darkPalette
	default:
		return systemPalette
	}
}

type styles struct {
	theme string

	app         lipgloss.Style
	title       lipgloss.Style
	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style
	card        lipgloss.Style
	heading     lipgloss.Style
	label       lipgloss.Style
	value       lipgloss.Style
	muted       lipgloss.Style
	ok          lipgloss.Style
	warn        lipgloss.Style
	err         lipgloss.Style
	help        lipgloss.Style
	hint        lipgloss.Style
	selected    lipgloss.Style
	dialog      lipgloss.Style
	dialogError lipgloss.Style
	spinner     lipgloss.Style
}

func newStyles(theme string) styles {
	p := paletteFor(theme)
	return styles{
		theme: theme,

		app: lipgloss.NewStyle().Padding(1, 2),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.titleText).
			Background(p.primary).
			Padding(0, 1),
		activeTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			Underline(true),
		inactiveTab: lipgloss.NewStyle().
			Foreground(p.muted),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(0, 2),
		heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary),
		label: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary),
		value: lipgloss.NewStyle().
			Foreground(p.text),
		muted: lipgloss.NewStyle().
			Foreground(p.muted),
		ok: lipgloss.NewStyle().
			Foreground(p.secondary),
		warn: lipgloss.NewStyle().
			Foreground(p.warn),
		err: lipgloss.NewStyle().
			Foreground(p.danger),
		help: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(1, 0, 0, 0),
		hint: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true),
		selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.secondary),
		dialog: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.primary).
			Padding(1, 3),
		dialogError: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.danger).
			Padding(1, 3),
		spinner: lipgloss.NewStyle().
			Foreground(p.primary),
	}
}
