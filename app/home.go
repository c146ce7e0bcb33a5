package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/uikit/core"
	"github.com/jask/uikit/widgets"
)

const (
	homeTitle       = "Component Kit"
	homeDescription = "This project contains two reusable components: InputField and DataTable."
	homeAction      = "View Components ›"
)

type homePane struct{}

func (p homePane) ID() string       { return "home" }
func (p homePane) Title() string    { return "Home" }
func (p homePane) Scope() string    { return "pane:home:intro" }
func (p homePane) Focusable() bool  { return true }
func (p homePane) Captures() bool   { return false }
func (p homePane) Init() tea.Cmd    { return nil }
func (p homePane) OnFocus() tea.Cmd { return nil }
func (p homePane) OnBlur() tea.Cmd  { return nil }

func (p homePane) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "enter" {
		return core.SwitchTabCmd("demo")
	}
	return nil
}

func (p homePane) View(width, height int, focused bool, palette widgets.Palette) string {
	title := lipgloss.NewStyle().Foreground(palette.Accent).Bold(true).Render(homeTitle)
	desc := lipgloss.NewStyle().Foreground(palette.Muted).Width(max(1, width-4)).Render(homeDescription)
	button := lipgloss.NewStyle().Background(palette.Accent).Foreground(palette.Base).Bold(true).Padding(0, 2).Render(homeAction)
	hint := lipgloss.NewStyle().Foreground(palette.Muted).Render("enter: open the demo · 3: browse stories")
	content := strings.Join([]string{"", title, desc, "", button, "", hint}, "\n")
	return widgets.Pane{Title: "Home", Height: height, Content: content, Focused: focused, Palette: palette}.Render(width, height)
}

func NewHomeTab() core.Tab {
	specs := []core.PaneSpec{
		{ID: "home", Factory: func(core.PaneSpec) core.Pane { return homePane{} }},
	}
	layout := func(host *core.PaneHost, m *core.Model) widgets.Widget {
		return host.BuildPane("home", m)
	}
	return core.NewGeneratedTab("home", "Home", specs, layout)
}
