package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/uikit/components"
	"github.com/jask/uikit/core"
	"github.com/jask/uikit/widgets"
)

// inputPane hosts an InputField inside a pane host. It captures keys while
// focused so typing "q" or "1" edits the value.
type inputPane struct {
	id      string
	title   string
	field   *components.InputField
	sized   bool
	onEnter func(m *core.Model, value string) tea.Cmd
}

func (p *inputPane) ID() string                    { return p.id }
func (p *inputPane) Title() string                 { return p.title }
func (p *inputPane) Scope() string                 { return "pane:demo:" + p.id }
func (p *inputPane) Focusable() bool               { return p.field.Field().Editable() }
func (p *inputPane) Captures() bool                { return true }
func (p *inputPane) Init() tea.Cmd                 { return p.field.Init() }
func (p *inputPane) OnFocus() tea.Cmd              { return p.field.Focus() }
func (p *inputPane) OnBlur() tea.Cmd               { p.field.Blur(); return nil }
func (p *inputPane) Field() *components.InputField { return p.field }

func (p *inputPane) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.PrefsChangedMsg:
		p.field.SetPalette(widgets.PaletteFor(msg.Prefs.DarkMode))
		if p.sized {
			p.field.SetSize(msg.Prefs.Size)
		}
		return nil
	case tea.KeyMsg:
		if msg.String() == "enter" && p.onEnter != nil {
			return p.onEnter(m, p.field.Value())
		}
	}
	return p.field.Update(msg)
}

func (p *inputPane) View(width, height int, focused bool, palette widgets.Palette) string {
	return p.field.View(width, height)
}
