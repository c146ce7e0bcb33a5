package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/uikit/widgets"
)

type testPane struct {
	id        string
	focusable bool
	captures  bool
	keys      []string
	focusHits int
	blurHits  int
}

func (p *testPane) ID() string       { return p.id }
func (p *testPane) Title() string    { return p.id }
func (p *testPane) Scope() string    { return "pane:test:" + p.id }
func (p *testPane) Focusable() bool  { return p.focusable }
func (p *testPane) Captures() bool   { return p.captures }
func (p *testPane) Init() tea.Cmd    { return nil }
func (p *testPane) OnFocus() tea.Cmd { p.focusHits++; return nil }
func (p *testPane) OnBlur() tea.Cmd  { p.blurHits++; return nil }
func (p *testPane) View(width, height int, focused bool, palette widgets.Palette) string {
	if focused {
		return "[" + p.id + "]"
	}
	return p.id
}
func (p *testPane) Update(m *Model, msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok {
		p.keys = append(p.keys, km.String())
	}
	return nil
}

func TestPaneHostSkipsUnfocusable(t *testing.T) {
	a := &testPane{id: "a"}
	b := &testPane{id: "b", focusable: true}
	c := &testPane{id: "c", focusable: true}
	host := NewPaneHost(a, b, c)
	m := newTestModel()

	if host.Focused() != b {
		t.Fatalf("expected first focusable pane focused")
	}
	host.HandlePaneKey(&m, tea.KeyMsg{Type: tea.KeyTab})
	if host.Focused() != c || b.blurHits != 1 || c.focusHits != 1 {
		t.Fatalf("expected focus on c after tab")
	}
	host.HandlePaneKey(&m, tea.KeyMsg{Type: tea.KeyTab})
	if host.Focused() != b {
		t.Fatalf("expected wrap to b, skipping static a")
	}
	host.HandlePaneKey(&m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if host.Focused() != c {
		t.Fatalf("expected shift+tab back to c")
	}
	if got, _ := m.Status(); got != "Focused: c" {
		t.Fatalf("unexpected status %q", got)
	}
}

func TestCapturingPaneTakesAllKeys(t *testing.T) {
	input := &testPane{id: "input", focusable: true, captures: true}
	host := NewPaneHost(input)
	m := newTestModel()
	handled, _ := host.HandlePaneKey(&m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !handled || len(input.keys) != 1 || input.keys[0] != "q" {
		t.Fatalf("expected capturing pane to take q, got %v", input.keys)
	}

	table := &testPane{id: "table", focusable: true}
	host = NewPaneHost(table)
	handled, _ = host.HandlePaneKey(&m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if handled {
		t.Fatalf("non-capturing pane should let global keys through")
	}
}

func TestPaneHostBroadcastsNonKeys(t *testing.T) {
	type ping struct{}
	seen := 0
	a := &countingPane{testPane: testPane{id: "a", focusable: true}, seen: &seen}
	b := &countingPane{testPane: testPane{id: "b"}, seen: &seen}
	host := NewPaneHost(a, b)
	m := newTestModel()
	host.Update(&m, ping{})
	if seen != 2 {
		t.Fatalf("expected both panes to see the message, got %d", seen)
	}
	host.Update(&m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if len(a.keys) != 1 || len(b.keys) != 0 {
		t.Fatalf("keys should only reach the focused pane")
	}
}

type countingPane struct {
	testPane
	seen *int
}

func (p *countingPane) Update(m *Model, msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); !ok {
		*p.seen++
	}
	return p.testPane.Update(m, msg)
}

func TestGeneratedTabLayout(t *testing.T) {
	tab := NewGeneratedTab("demo", "Demo", []PaneSpec{
		{ID: "intro", Title: "Intro", Scope: "pane:demo:intro", Text: "hello"},
		{ID: "x", Factory: func(spec PaneSpec) Pane { return &testPane{id: spec.ID, focusable: true} }},
	}, func(host *PaneHost, m *Model) widgets.Widget {
		return widgets.VStack{Widgets: []widgets.Widget{host.BuildPane("x", m), host.BuildPane("missing", m)}}
	})
	m := newTestModel(tab)
	if tab.Scope() != "pane:test:x" {
		t.Fatalf("expected focused pane scope, got %s", tab.Scope())
	}
	out := tab.Build(&m).Render(30, 6)
	if !containsPlain(out, "[x]") || !containsPlain(out, "Missing Pane") {
		t.Fatalf("unexpected layout:\n%s", out)
	}

	static := NewGeneratedTab("home", "Home", []PaneSpec{{ID: "intro", Scope: "", Text: "hi"}}, nil)
	if static.Scope() != "tab:home" {
		t.Fatalf("expected fallback scope, got %s", static.Scope())
	}
}

func TestPaneHostLooksUpByID(t *testing.T) {
	a := &testPane{id: "a", focusable: true}
	host := NewPaneHost(a, &testPane{id: "b"})
	if host.Pane("a") != Pane(a) {
		t.Fatalf("expected pane a")
	}
	if host.Pane("missing") != nil {
		t.Fatalf("unknown id should return nil")
	}
}
