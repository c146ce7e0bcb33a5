package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/uikit/core"
	"github.com/jask/uikit/screens"
	"github.com/jask/uikit/stories"
	"github.com/jask/uikit/widgets"
)

type storyItem struct {
	story stories.Story
}

func (i storyItem) Title() string       { return i.story.Title() }
func (i storyItem) Description() string { return strings.Join(i.story.Args, " · ") }
func (i storyItem) FilterValue() string { return i.story.Component + " " + i.story.Name }

// catalogPane lists the stories. enter opens the selected one in a popup.
type catalogPane struct {
	list list.Model
}

func newCatalogPane() *catalogPane {
	all := stories.All()
	items := make([]list.Item, 0, len(all))
	for _, s := range all {
		items = append(items, storyItem{story: s})
	}
	lst := list.New(items, list.NewDefaultDelegate(), 40, 20)
	lst.SetShowTitle(false)
	lst.SetShowHelp(false)
	lst.SetShowStatusBar(false)
	return &catalogPane{list: lst}
}

func (p *catalogPane) ID() string       { return "stories" }
func (p *catalogPane) Title() string    { return "Stories" }
func (p *catalogPane) Scope() string    { return "pane:catalog:stories" }
func (p *catalogPane) Focusable() bool  { return true }
func (p *catalogPane) Init() tea.Cmd    { return nil }
func (p *catalogPane) OnFocus() tea.Cmd { return nil }
func (p *catalogPane) OnBlur() tea.Cmd  { return nil }

// Captures while the list filter is being typed.
func (p *catalogPane) Captures() bool {
	return p.list.FilterState() == list.Filtering
}

func (p *catalogPane) Selected() (stories.Story, bool) {
	it, ok := p.list.SelectedItem().(storyItem)
	return it.story, ok
}

func (p *catalogPane) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "enter" && p.list.FilterState() != list.Filtering {
		return p.open(m)
	}
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return cmd
}

func (p *catalogPane) open(m *core.Model) tea.Cmd {
	story, ok := p.Selected()
	if !ok {
		return nil
	}
	screen, initCmd, err := screens.OpenStory(story, m.Palette(), m.Logger)
	if err != nil {
		m.SetError(err)
		return nil
	}
	m.PushScreen(screen)
	m.SetStatus("Story: " + story.Title())
	return initCmd
}

func (p *catalogPane) View(width, height int, focused bool, palette widgets.Palette) string {
	listW := max(20, width*2/5)
	p.list.SetSize(max(1, listW-4), max(1, height-2))
	left := widgets.Pane{Title: "Stories", Height: height, Content: p.list.View(), Focused: focused, Palette: palette}.Render(listW, height)

	detail := "No story selected"
	if s, ok := p.Selected(); ok {
		heading := lipgloss.NewStyle().Foreground(palette.Accent).Bold(true).Render(s.Title())
		lines := []string{heading, "", "id: " + s.ID}
		for _, a := range s.Args {
			lines = append(lines, "  "+a)
		}
		lines = append(lines, "", lipgloss.NewStyle().Foreground(palette.Muted).Render("enter: open · esc: close"))
		detail = strings.Join(lines, "\n")
	}
	right := widgets.Pane{Title: "Args", Height: height, Content: detail, Palette: palette}
	return widgets.HStack{
		Widgets: []widgets.Widget{widgets.Text(left), right},
		Ratios:  []float64{float64(listW), float64(max(1, width-listW-1))},
		Gap:     1,
	}.Render(width, height)
}

func NewCatalogTab() core.Tab {
	specs := []core.PaneSpec{
		{ID: "stories", Factory: func(core.PaneSpec) core.Pane { return newCatalogPane() }},
	}
	layout := func(host *core.PaneHost, m *core.Model) widgets.Widget {
		return host.BuildPane("stories", m)
	}
	return core.NewGeneratedTab("catalog", "Catalog", specs, layout)
}
