package components

import "github.com/charmbracelet/bubbles/key"

type TableKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Sort      key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
}

func DefaultTableKeyMap() TableKeyMap {
	return TableKeyMap{
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "row up")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "row down")),
		Left:      key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "prev column")),
		Right:     key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "next column")),
		Sort:      key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "sort column")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "select row")),
		ToggleAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
	}
}

func (k TableKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Sort, k.Toggle, k.ToggleAll}
}

type InputKeyMap struct {
	Clear          key.Binding
	TogglePassword key.Binding
}

func DefaultInputKeyMap() InputKeyMap {
	return InputKeyMap{
		Clear:          key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		TogglePassword: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "show/hide password")),
	}
}

func (k InputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Clear, k.TogglePassword}
}
