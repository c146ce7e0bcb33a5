package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/uikit/widgets"
)

type Pane interface {
	ID() string
	Title() string
	Scope() string
	Focusable() bool
	// Captures reports whether the pane takes every key while focused.
	Captures() bool
	Init() tea.Cmd
	Update(m *Model, msg tea.Msg) tea.Cmd
	View(width, height int, focused bool, palette widgets.Palette) string
	OnFocus() tea.Cmd
	OnBlur() tea.Cmd
}

type StaticPane struct {
	id     string
	title  string
	scope  string
	text   string
	height int
}

func NewStaticPane(id, title, scope, text string, height int) *StaticPane {
	return &StaticPane{id: id, title: title, scope: scope, text: text, height: height}
}

func (p *StaticPane) ID() string                           { return p.id }
func (p *StaticPane) Title() string                        { return p.title }
func (p *StaticPane) Scope() string                        { return p.scope }
func (p *StaticPane) Focusable() bool                      { return false }
func (p *StaticPane) Captures() bool                       { return false }
func (p *StaticPane) Init() tea.Cmd                        { return nil }
func (p *StaticPane) Update(m *Model, msg tea.Msg) tea.Cmd { return nil }
func (p *StaticPane) View(width, height int, focused bool, palette widgets.Palette) string {
	return widgets.Pane{Title: p.title, Height: p.height, Content: p.text, Focused: focused, Palette: palette}.Render(width, height)
}
func (p *StaticPane) OnFocus() tea.Cmd { return nil }
func (p *StaticPane) OnBlur() tea.Cmd  { return nil }

// PaneHost keeps one focusable pane focused and cycles focus with
// tab/shift+tab.
type PaneHost struct {
	panes   []Pane
	focused int
}

func NewPaneHost(panes ...Pane) PaneHost {
	h := PaneHost{panes: panes, focused: -1}
	h.focused = h.next(-1, 1)
	return h
}

func (h *PaneHost) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(h.panes)+1)
	for _, p := range h.panes {
		if cmd := p.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if p := h.Focused(); p != nil {
		cmds = append(cmds, p.OnFocus())
	}
	return tea.Batch(cmds...)
}

func (h *PaneHost) Focused() Pane {
	if h.focused < 0 || h.focused >= len(h.panes) {
		return nil
	}
	return h.panes[h.focused]
}

func (h *PaneHost) Pane(id string) Pane {
	for _, p := range h.panes {
		if p.ID() == id {
			return p
		}
	}
	return nil
}

func (h *PaneHost) Scope() string {
	if p := h.Focused(); p != nil {
		return p.Scope()
	}
	if len(h.panes) > 0 {
		return h.panes[0].Scope()
	}
	return ""
}

func (h *PaneHost) ActivePaneTitle() string {
	if p := h.Focused(); p != nil {
		return p.Title()
	}
	return ""
}

// next finds the next focusable pane after from in direction dir, wrapping.
// It returns -1 when nothing is focusable.
func (h *PaneHost) next(from, dir int) int {
	n := len(h.panes)
	for step := 1; step <= n; step++ {
		idx := ((from+dir*step)%n + n) % n
		if h.panes[idx].Focusable() {
			return idx
		}
	}
	return -1
}

func (h *PaneHost) HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if len(h.panes) == 0 {
		return false, nil
	}
	switch msg.String() {
	case "tab":
		return true, h.move(m, 1)
	case "shift+tab":
		return true, h.move(m, -1)
	}
	if p := h.Focused(); p != nil && p.Captures() {
		return true, p.Update(m, msg)
	}
	return false, nil
}

func (h *PaneHost) move(m *Model, dir int) tea.Cmd {
	target := h.next(h.focused, dir)
	if target < 0 || target == h.focused {
		return nil
	}
	return h.FocusIndex(m, target)
}

// FocusID moves focus to the pane with the given id.
func (h *PaneHost) FocusID(m *Model, id string) tea.Cmd {
	for i, p := range h.panes {
		if p.ID() == id && p.Focusable() {
			return h.FocusIndex(m, i)
		}
	}
	return nil
}

func (h *PaneHost) FocusIndex(m *Model, idx int) tea.Cmd {
	if idx < 0 || idx >= len(h.panes) || idx == h.focused {
		return nil
	}
	cmds := make([]tea.Cmd, 0, 2)
	if prev := h.Focused(); prev != nil {
		cmds = append(cmds, prev.OnBlur())
	}
	h.focused = idx
	m.SetStatus("Focused: " + h.panes[idx].Title())
	cmds = append(cmds, h.panes[idx].OnFocus())
	return tea.Batch(cmds...)
}

// Update sends keys to the focused pane and everything else to all panes.
func (h *PaneHost) Update(m *Model, msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		if p := h.Focused(); p != nil {
			return p.Update(m, msg)
		}
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(h.panes))
	for _, p := range h.panes {
		cmds = append(cmds, p.Update(m, msg))
	}
	return tea.Batch(cmds...)
}

type paneWidget struct {
	pane    Pane
	focused bool
	palette widgets.Palette
}

func (w paneWidget) Render(width, height int) string {
	return w.pane.View(width, height, w.focused, w.palette)
}

func (h *PaneHost) BuildPane(id string, m *Model) widgets.Widget {
	for idx, p := range h.panes {
		if p.ID() == id {
			return paneWidget{pane: p, focused: idx == h.focused, palette: m.Palette()}
		}
	}
	return widgets.Pane{Title: "Missing Pane", Height: 3, Content: id, Palette: m.Palette()}
}

type PaneSpec struct {
	ID      string
	Title   string
	Scope   string
	Text    string
	Height  int
	Factory func(spec PaneSpec) Pane
}

type LayoutBuilder func(host *PaneHost, m *Model) widgets.Widget

type GeneratedTab struct {
	id     string
	title  string
	host   PaneHost
	layout LayoutBuilder
}

func NewGeneratedTab(id, title string, specs []PaneSpec, layout LayoutBuilder) *GeneratedTab {
	panes := make([]Pane, 0, len(specs))
	for _, spec := range specs {
		if spec.Factory != nil {
			panes = append(panes, spec.Factory(spec))
			continue
		}
		panes = append(panes, NewStaticPane(spec.ID, spec.Title, spec.Scope, spec.Text, spec.Height))
	}
	return &GeneratedTab{id: id, title: title, host: NewPaneHost(panes...), layout: layout}
}

func (t *GeneratedTab) ID() string    { return t.id }
func (t *GeneratedTab) Title() string { return t.title }
func (t *GeneratedTab) Scope() string {
	if s := t.host.Scope(); s != "" {
		return s
	}
	return "tab:" + t.id
}
func (t *GeneratedTab) Host() *PaneHost         { return &t.host }
func (t *GeneratedTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *GeneratedTab) InitTab(m *Model) tea.Cmd {
	return t.host.Init()
}
func (t *GeneratedTab) HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}
func (t *GeneratedTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	return t.host.Update(m, msg)
}
func (t *GeneratedTab) Build(m *Model) widgets.Widget {
	if t.layout == nil {
		return widgets.Pane{Title: t.title, Height: 3, Palette: m.Palette()}
	}
	return t.layout(&t.host, m)
}
