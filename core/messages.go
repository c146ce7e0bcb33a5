package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

// TabSwitchMsg activates a tab by ID, or by Index when ID is empty.
type TabSwitchMsg struct {
	Index int
	ID    string
}

// PrefsChangedMsg is delivered to every tab and the open screen.
type PrefsChangedMsg struct {
	Prefs Prefs
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

func SwitchTabCmd(id string) tea.Cmd {
	return func() tea.Msg { return TabSwitchMsg{ID: id} }
}
