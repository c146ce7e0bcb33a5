package app

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/jask/uikit/components"
	"github.com/jask/uikit/core"
	"github.com/jask/uikit/core/datatable"
	"github.com/jask/uikit/core/inputfield"
	"github.com/jask/uikit/internal/sample"
	"github.com/jask/uikit/widgets"
)

const (
	demoTableID  = "demo-table"
	demoSearchID = "search"
	demoNameID   = "name"
)

var errEmptyName = errors.New("enter a name first")

var searchFields = []string{"name", "email", "role"}

// userAddedMsg carries a row typed into the name field to the table pane.
type userAddedMsg struct {
	Row datatable.Record
}

// controlsPane is the size switcher and theme indicator.
type controlsPane struct {
	prefs core.Prefs
}

var sizes = []inputfield.Size{inputfield.Small, inputfield.Medium, inputfield.Large}

func (p *controlsPane) ID() string       { return "controls" }
func (p *controlsPane) Title() string    { return "Controls" }
func (p *controlsPane) Scope() string    { return "pane:demo:controls" }
func (p *controlsPane) Focusable() bool  { return true }
func (p *controlsPane) Captures() bool   { return false }
func (p *controlsPane) Init() tea.Cmd    { return nil }
func (p *controlsPane) OnFocus() tea.Cmd { return nil }
func (p *controlsPane) OnBlur() tea.Cmd  { return nil }

func (p *controlsPane) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.PrefsChangedMsg:
		p.prefs = msg.Prefs
	case tea.KeyMsg:
		idx := sizeIndex(p.prefs.Size)
		switch msg.String() {
		case "left", "h":
			idx = max(0, idx-1)
		case "right", "l":
			idx = min(len(sizes)-1, idx+1)
		default:
			return nil
		}
		if sizes[idx] == p.prefs.Size {
			return nil
		}
		p.prefs.Size = sizes[idx]
		m.SetStatus("Input size: " + strings.ToUpper(sizes[idx].String()))
		return m.SetInputSize(sizes[idx])
	}
	return nil
}

func sizeIndex(s inputfield.Size) int {
	for i, v := range sizes {
		if v == s {
			return i
		}
	}
	return 1
}

func (p *controlsPane) View(width, height int, focused bool, palette widgets.Palette) string {
	on := lipgloss.NewStyle().Background(palette.Accent).Foreground(palette.Base).Bold(true).Padding(0, 1)
	off := lipgloss.NewStyle().Background(palette.Surface).Foreground(palette.Text).Padding(0, 1)
	buttons := make([]string, 0, len(sizes))
	for _, s := range sizes {
		label := strings.ToUpper(s.String())
		if s == p.prefs.Size {
			buttons = append(buttons, on.Render(label))
		} else {
			buttons = append(buttons, off.Render(label))
		}
	}
	mode := "Dark Mode"
	if p.prefs.DarkMode {
		mode = "Light Mode"
	}
	line := "Size " + strings.Join(buttons, " ") + "   t: " + mode
	return widgets.Pane{Title: "Change Input Size", Height: 3, Content: line, Focused: focused, Palette: palette}.Render(width, height)
}

// tablePane owns the demo dataset. It applies the search query upstream of
// the table and reports the current selection under it.
type tablePane struct {
	table *components.DataTable[datatable.Record]
	all   []datatable.Record
	query string
}

func (p *tablePane) ID() string       { return "table" }
func (p *tablePane) Title() string    { return "DataTable" }
func (p *tablePane) Scope() string    { return "pane:demo:table" }
func (p *tablePane) Focusable() bool  { return true }
func (p *tablePane) Captures() bool   { return false }
func (p *tablePane) Init() tea.Cmd    { return p.table.Init() }
func (p *tablePane) OnFocus() tea.Cmd { p.table.Focus(); return nil }
func (p *tablePane) OnBlur() tea.Cmd  { p.table.Blur(); return nil }

func (p *tablePane) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.PrefsChangedMsg:
		p.table.SetPalette(widgets.PaletteFor(msg.Prefs.DarkMode))
		return nil
	case components.ValueChangedMsg:
		if msg.ID == demoSearchID {
			p.query = msg.Value
			p.refilter()
		}
		return nil
	case userAddedMsg:
		p.all = append(p.all, msg.Row)
		p.refilter()
		return nil
	case components.RowsSelectedMsg[datatable.Record]:
		if msg.ID == demoTableID {
			m.SetStatus("Selected rows: " + sample.Names(msg.Rows))
		}
		return nil
	}
	return p.table.Update(msg)
}

func (p *tablePane) refilter() {
	p.table.SetData(sample.Filter(p.all, p.query, searchFields...))
}

func (p *tablePane) View(width, height int, focused bool, palette widgets.Palette) string {
	body := p.table.View(max(1, width-4), max(1, height-3))
	selected := lipgloss.NewStyle().Foreground(palette.Muted).Render("Selected rows: " + sample.Names(p.table.SelectedRows()))
	content := body + "\n" + selected
	return widgets.Pane{Title: p.title(), Height: height, Content: content, Focused: focused, Palette: palette}.Render(width, height)
}

func (p *tablePane) title() string {
	shown := len(p.table.Table().Rows())
	if shown == len(p.all) {
		return fmt.Sprintf("DataTable (%d)", shown)
	}
	return fmt.Sprintf("DataTable (%d of %d)", shown, len(p.all))
}

// DemoOptions seeds the demo tab.
type DemoOptions struct {
	Users         []datatable.Record
	Prefs         core.Prefs
	EmptyMessage  string
	SelectionMode datatable.SelectionMode
	Comparator    *datatable.Comparator
	Logger        *log.Logger
}

func NewDemoTab(opts DemoOptions) core.Tab {
	palette := widgets.PaletteFor(opts.Prefs.DarkMode)
	input := func(id, title string, fo inputfield.Options) func(core.PaneSpec) core.Pane {
		return func(core.PaneSpec) core.Pane {
			f := components.NewInputField(id, fo)
			f.SetPalette(palette)
			return &inputPane{id: id, title: title, field: f}
		}
	}
	users := opts.Users
	if users == nil {
		users = sample.DemoUsers()
	}

	specs := []core.PaneSpec{
		{ID: "controls", Factory: func(core.PaneSpec) core.Pane { return &controlsPane{prefs: opts.Prefs} }},
		{ID: demoNameID, Factory: func(core.PaneSpec) core.Pane {
			f := components.NewInputField(demoNameID, inputfield.Options{
				Label:       "Your name",
				Placeholder: "Enter your name",
				HelperText:  "Enter valid input",
				Variant:     inputfield.Outlined,
				Size:        opts.Prefs.Size,
				Clearable:   true,
			})
			f.SetPalette(palette)
			return &inputPane{id: demoNameID, title: "Your name", field: f, sized: true, onEnter: addUser(f)}
		}},
		{ID: demoSearchID, Factory: input(demoSearchID, "Search", inputfield.Options{
			Label:       "Search users",
			Placeholder: "name, email or role",
			Variant:     inputfield.Ghost,
			Clearable:   true,
		})},
		{ID: "variant-filled", Factory: input("variant-filled", "Filled", inputfield.Options{
			Label: "Filled", Placeholder: "Filled", Variant: inputfield.Filled, Clearable: true,
		})},
		{ID: "variant-ghost", Factory: input("variant-ghost", "Ghost", inputfield.Options{
			Label: "Ghost", Placeholder: "Ghost", Variant: inputfield.Ghost, Clearable: true,
		})},
		{ID: "variant-password", Factory: input("variant-password", "Password", inputfield.Options{
			Label: "Password", Placeholder: "Enter password", Type: inputfield.TypePassword,
			HelperText: "Use 8+ characters.", PasswordToggle: true,
		})},
		{ID: "variant-invalid", Factory: input("variant-invalid", "Invalid", inputfield.Options{
			Label: "Invalid", Placeholder: "Invalid", Invalid: true, ErrorMessage: "This field is required.",
		})},
		{ID: "variant-disabled", Factory: input("variant-disabled", "Disabled", inputfield.Options{
			Label: "Disabled", Placeholder: "Disabled", Disabled: true,
		})},
		{ID: "variant-loading", Factory: input("variant-loading", "Loading", inputfield.Options{
			Label: "Loading", Placeholder: "Loading...", Loading: true,
		})},
		{ID: "table", Factory: func(core.PaneSpec) core.Pane {
			t := components.NewDataTable(demoTableID, datatable.Options[datatable.Record]{
				Data:          users,
				Columns:       sample.Columns(),
				Selectable:    true,
				SelectionMode: opts.SelectionMode,
				RowKey:        datatable.RecordKey("id"),
				EmptyMessage:  opts.EmptyMessage,
				Comparator:    opts.Comparator,
			}, opts.Logger)
			t.SetPalette(palette)
			return &tablePane{table: t, all: users}
		}},
	}
	return core.NewGeneratedTab("demo", "Components", specs, demoLayout)
}

func addUser(f *components.InputField) func(m *core.Model, value string) tea.Cmd {
	return func(m *core.Model, value string) tea.Cmd {
		name := strings.TrimSpace(value)
		if name == "" {
			return core.ErrorCmd(errEmptyName)
		}
		f.SetValue("")
		row := sample.NewUser(name)
		m.Logger.Info("add user", "id", row["id"], "name", name)
		return tea.Batch(
			func() tea.Msg { return userAddedMsg{Row: row} },
			core.StatusCmd("Added "+name),
		)
	}
}

func demoLayout(host *core.PaneHost, m *core.Model) widgets.Widget {
	left := widgets.VStack{
		Widgets: []widgets.Widget{
			host.BuildPane("controls", m),
			host.BuildPane(demoNameID, m),
			host.BuildPane(demoSearchID, m),
			host.BuildPane("table", m),
		},
		Fixed: []int{3, nameHeight(m.Prefs().Size), 4, 0},
	}
	row := func(a, b string) widgets.Widget {
		return widgets.HStack{Widgets: []widgets.Widget{host.BuildPane(a, m), host.BuildPane(b, m)}, Gap: 1}
	}
	variants := widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Text(lipgloss.NewStyle().Foreground(m.Palette().Accent).Bold(true).Render("Variants & States")),
			row("variant-filled", "variant-ghost"),
			row("variant-password", "variant-invalid"),
			row("variant-disabled", "variant-loading"),
		},
		Fixed: []int{1, 5, 5, 5},
	}
	return widgets.HStack{
		Widgets: []widgets.Widget{left, variants},
		Ratios:  []float64{0.6, 0.4},
		Gap:     2,
	}
}

// nameHeight is label, framed input and helper at the given size.
func nameHeight(s inputfield.Size) int {
	switch s {
	case inputfield.Large:
		return 7
	default:
		return 5
	}
}
