package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/uikit/core"
	"github.com/jask/uikit/widgets"
)

type CommandOption struct {
	ID       string
	Name     string
	Desc     string
	Disabled bool
	Reason   string
}

func (i CommandOption) Title() string {
	if i.Disabled && i.Reason != "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.Reason)
	}
	return i.Name
}
func (i CommandOption) Description() string { return i.Desc }
func (i CommandOption) FilterValue() string { return i.Name + " " + i.Desc + " " + i.ID }

// CommandScreen is the ctrl+k palette: a query box over the commands
// available in the scope it was opened from.
type CommandScreen struct {
	scope    string
	search   func(query string) []CommandOption
	onSelect func(id string) tea.Msg
	input    textinput.Model
	list     list.Model
	palette  widgets.Palette
}

func NewCommandScreen(scope string, palette widgets.Palette, search func(query string) []CommandOption, onSelect func(id string) tea.Msg) *CommandScreen {
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "› "
	inp.Focus()
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(palette.Accent).BorderForeground(palette.Accent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(palette.Muted).BorderForeground(palette.Accent)
	lst := list.New(nil, delegate, 64, 14)
	lst.SetShowTitle(false)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	s := &CommandScreen{scope: scope, search: search, onSelect: onSelect, input: inp, list: lst, palette: palette}
	s.refresh()
	return s
}

func (s *CommandScreen) Title() string { return "Commands" }
func (s *CommandScreen) Scope() string { return "screen:command" }

func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, nil, true
		case "enter":
			it, ok := s.list.SelectedItem().(CommandOption)
			if !ok {
				return s, nil, false
			}
			if it.Disabled {
				return s, core.StatusCmd(it.Reason), true
			}
			if s.onSelect != nil {
				return s, func() tea.Msg { return s.onSelect(it.ID) }, true
			}
			return s, nil, true
		case "up", "down", "ctrl+p", "ctrl+n":
			var cmd tea.Cmd
			s.list, cmd = s.list.Update(navKey(msg))
			return s, cmd, false
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		s.refresh()
		return s, cmd, false
	case core.PrefsChangedMsg:
		s.palette = widgets.PaletteFor(msg.Prefs.DarkMode)
		return s, nil, false
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, false
}

// navKey maps the emacs-style keys onto the arrows the list understands.
func navKey(msg tea.KeyMsg) tea.KeyMsg {
	switch msg.String() {
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return msg
}

func (s *CommandScreen) refresh() {
	query := strings.TrimSpace(s.input.Value())
	items := s.search(query)
	ls := make([]list.Item, 0, len(items))
	for _, it := range items {
		ls = append(ls, it)
	}
	_ = s.list.SetItems(ls)
}

func (s *CommandScreen) Selected() (CommandOption, bool) {
	it, ok := s.list.SelectedItem().(CommandOption)
	return it, ok
}

func (s *CommandScreen) View(width, height int) string {
	title := lipgloss.NewStyle().Foreground(s.palette.Accent).Bold(true).Render("Commands")
	scope := lipgloss.NewStyle().Foreground(s.palette.Muted).Render(" (" + s.scope + ")")
	if len(s.list.Items()) == 0 {
		empty := lipgloss.NewStyle().Foreground(s.palette.Muted).Render("No matching commands")
		return title + scope + "\n" + s.input.View() + "\n\n" + empty
	}
	s.list.SetWidth(width)
	s.list.SetHeight(max(4, height-3))
	return title + scope + "\n" + s.input.View() + "\n" + s.list.View()
}
