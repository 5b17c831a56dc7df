package tui

import "github.com/charmbracelet/lipgloss"

type palette struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Accent  lipgloss.Color
	Active  lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
}

var (
	lightPalette = palette{
		Text:    lipgloss.Color("#4c4f69"),
		Muted:   lipgloss.Color("#6c6f85"),
		Border:  lipgloss.Color("#bcc0cc"),
		Accent:  lipgloss.Color("#1e66f5"),
		Active:  lipgloss.Color("#7287fd"),
		Error:   lipgloss.Color("#d20f39"),
		Success: lipgloss.Color("#40a02b"),
	}
	darkPalette = palette{
		Text:    lipgloss.Color("#cdd6f4"),
		Muted:   lipgloss.Color("#a6adc8"),
		Border:  lipgloss.Color("#45475a"),
		Accent:  lipgloss.Color("#74c7ec"),
		Active:  lipgloss.Color("#b4befe"),
		Error:   lipgloss.Color("#f38ba8"),
		Success: lipgloss.Color("#a6e3a1"),
	}
)

// styles is the set of lipgloss styles for one theme
type styles struct {
	App        lipgloss.Style
	Title      lipgloss.Style
	Label      lipgloss.Style
	Muted      lipgloss.Style
	Pane       lipgloss.Style
	PaneActive lipgloss.Style
	Error      lipgloss.Style
	Selected   lipgloss.Style
	Button     lipgloss.Style
	Disabled   lipgloss.Style
}

func newStyles(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	pane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Foreground(p.Text).
		Padding(0, 1)

	return styles{
		App:        lipgloss.NewStyle().Foreground(p.Text).Padding(1, 2),
		Title:      lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Label:      lipgloss.NewStyle().Foreground(p.Accent),
		Muted:      lipgloss.NewStyle().Foreground(p.Muted),
		Pane:       pane,
		PaneActive: pane.BorderForeground(p.Active),
		Error:      lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		Selected:   lipgloss.NewStyle().Foreground(p.Active).Bold(true),
		Button:     lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		Disabled:   lipgloss.NewStyle().Foreground(p.Muted).Faint(true),
	}
}
