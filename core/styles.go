package core

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/uikit/widgets"
)

// styles is the chrome of the app frame, rebuilt whenever the palette changes.
type styles struct {
	app         lipgloss.Style
	headerApp   lipgloss.Style
	headerBar   lipgloss.Style
	tabSep      lipgloss.Style
	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style
	statusBar   lipgloss.Style
	statusErr   lipgloss.Style
	footer      lipgloss.Style
	footerKey   lipgloss.Style
	footerDesc  lipgloss.Style
	barBg       lipgloss.Color
	statusBg    lipgloss.Color
}

func newStyles(p widgets.Palette) styles {
	return styles{
		app:       lipgloss.NewStyle().Foreground(p.Text),
		headerApp: lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Background(p.Mantle),
		headerBar: lipgloss.NewStyle().
			Background(p.Mantle).
			Foreground(p.Text),
		tabSep: lipgloss.NewStyle().
			Foreground(p.Border).
			Background(p.Mantle),
		activeTab: lipgloss.NewStyle().
			Background(p.Surface).
			Foreground(p.Accent).
			Bold(true).
			Padding(0, 1),
		inactiveTab: lipgloss.NewStyle().
			Background(p.Mantle).
			Foreground(p.Muted).
			Padding(0, 1),
		statusBar: lipgloss.NewStyle().
			Foreground(p.Success).
			Background(p.Surface),
		statusErr: lipgloss.NewStyle().
			Foreground(p.Error).
			Background(p.Surface),
		footer:     lipgloss.NewStyle().Background(p.Mantle),
		footerKey:  lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Background(p.Mantle),
		footerDesc: lipgloss.NewStyle().Foreground(p.Muted).Background(p.Mantle),
		barBg:      p.Mantle,
		statusBg:   p.Surface,
	}
}
