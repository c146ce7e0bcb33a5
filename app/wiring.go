package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jask/uikit/core"
	"github.com/jask/uikit/core/datatable"
	"github.com/jask/uikit/screens"
)

// Deps carries what the tabs need from config and the command line.
type Deps struct {
	Users         []datatable.Record
	Prefs         core.Prefs
	EmptyMessage  string
	SelectionMode datatable.SelectionMode
	Comparator    *datatable.Comparator
	Logger        *log.Logger
}

func Tabs(deps Deps) []core.Tab {
	return []core.Tab{
		NewHomeTab(),
		NewDemoTab(DemoOptions{
			Users:         deps.Users,
			Prefs:         deps.Prefs,
			EmptyMessage:  deps.EmptyMessage,
			SelectionMode: deps.SelectionMode,
			Comparator:    deps.Comparator,
			Logger:        deps.Logger,
		}),
		NewCatalogTab(),
	}
}

// NewModel assembles the full application model.
func NewModel(deps Deps) core.Model {
	m := core.NewModel(
		Tabs(deps),
		core.NewKeyRegistry(core.DefaultKeyBindings()),
		core.NewCommandRegistry(core.DefaultCommands()),
		deps.Prefs,
		deps.Logger,
	)
	ConfigureModel(&m)
	return m
}

func ConfigureModel(m *core.Model) {
	if m == nil {
		return
	}
	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		return screens.NewCommandScreen(scope, model.Palette(),
			func(query string) []screens.CommandOption {
				results := model.CommandRegistry().Search(query, scope, model)
				out := make([]screens.CommandOption, 0, len(results))
				for _, r := range results {
					out = append(out, screens.CommandOption{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Disabled: r.Disabled, Reason: r.Reason})
				}
				return out
			},
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}
	RegisterCommands(m.CommandRegistry())
}

func RegisterCommands(reg *core.CommandRegistry) {
	for _, tab := range []struct{ id, name, desc string }{
		{"home", "Go to home", "Show the landing page"},
		{"demo", "Go to components", "Show the InputField and DataTable demo"},
		{"catalog", "Go to catalog", "Browse component stories"},
	} {
		id := tab.id
		reg.Register(core.Command{
			ID:          "switch-" + id,
			Name:        tab.name,
			Description: tab.desc,
			Scopes:      []string{"*"},
			Execute: func(m *core.Model) tea.Cmd {
				m.SwitchTabID(id)
				return core.StatusCmd(tab.name)
			},
		})
	}
}
