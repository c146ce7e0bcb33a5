package core

import tea "github.com/charmbracelet/bubbletea"

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{"tab:*", "pane:*"}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{"*"}},
		{Keys: []string{"t"}, Action: "toggle-theme", Description: "theme", Scopes: []string{"tab:*", "pane:*"}},
		{Keys: []string{"1"}, Action: "switch-tab-1", Description: "home", Scopes: []string{"tab:*", "pane:*"}},
		{Keys: []string{"2"}, Action: "switch-tab-2", Description: "demo", Scopes: []string{"tab:*", "pane:*"}},
		{Keys: []string{"3"}, Action: "switch-tab-3", Description: "catalog", Scopes: []string{"tab:*", "pane:*"}},
		{Keys: []string{"tab"}, Action: "pane-next", Description: "next", Scopes: []string{"pane:demo:*"}},
		{Keys: []string{"shift+tab"}, Action: "pane-prev", Description: "prev", Scopes: []string{"pane:demo:*"}},
		{Keys: []string{"enter"}, Action: "open-demo", Description: "view components", Scopes: []string{"pane:home:*"}},
		{Keys: []string{"←/→"}, Action: "size", Description: "input size", Scopes: []string{"pane:demo:controls"}},
		{Keys: []string{"enter"}, Action: "add-user", Description: "add row", Scopes: []string{"pane:demo:name"}},
		{Keys: []string{"ctrl+l"}, Action: "input-clear", Description: "clear", Scopes: []string{"pane:demo:name", "pane:demo:search", "pane:demo:variant-*", "screen:story"}},
		{Keys: []string{"ctrl+t"}, Action: "input-password", Description: "show/hide", Scopes: []string{"pane:demo:variant-password", "screen:story"}},
		{Keys: []string{"j/k"}, Action: "table-rows", Description: "rows", Scopes: []string{"pane:demo:table", "screen:story"}},
		{Keys: []string{"h/l"}, Action: "table-columns", Description: "columns", Scopes: []string{"pane:demo:table", "screen:story"}},
		{Keys: []string{"s"}, Action: "table-sort", Description: "sort", Scopes: []string{"pane:demo:table", "screen:story"}},
		{Keys: []string{"space"}, Action: "table-select", Description: "select", Scopes: []string{"pane:demo:table", "screen:story"}},
		{Keys: []string{"a"}, Action: "table-select-all", Description: "select all", Scopes: []string{"pane:demo:table", "screen:story"}},
		{Keys: []string{"/"}, Action: "catalog-filter", Description: "filter", Scopes: []string{"pane:catalog:*"}},
		{Keys: []string{"enter"}, Action: "open-story", Description: "open story", Scopes: []string{"pane:catalog:*"}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{"screen:story", "screen:command"}},
		{Keys: []string{"enter"}, Action: "select", Description: "run", Scopes: []string{"screen:command"}},
	}
}

// DefaultCommands are the palette entries available on every tab.
func DefaultCommands() []Command {
	return []Command{
		{
			ID:          "theme.toggle",
			Name:        "Toggle dark mode",
			Description: "Switch between the light and dark palette",
			Scopes:      []string{"*"},
			Execute: func(m *Model) tea.Cmd {
				return m.SetDarkMode(!m.prefs.DarkMode)
			},
		},
		{
			ID:          "prefs.save",
			Name:        "Save preferences",
			Description: "Write theme and input size to the config file",
			Scopes:      []string{"*"},
			Execute:     func(m *Model) tea.Cmd { return m.Save() },
			Disabled: func(m *Model) (bool, string) {
				if m.SavePrefs == nil {
					return true, "no config file"
				}
				return false, ""
			},
		},
		{
			ID:          "app.quit",
			Name:        "Quit",
			Description: "Leave uikit",
			Scopes:      []string{"*"},
			Execute:     func(*Model) tea.Cmd { return tea.Quit },
		},
	}
}
