package core

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jask/uikit/core/inputfield"
	"github.com/jask/uikit/widgets"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

// PaneKeyHandler sees keys before the global bindings, so a focused text
// input can claim "q" or a digit.
type PaneKeyHandler interface {
	HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd)
	ActivePaneTitle() string
}

type TabInitializer interface {
	InitTab(m *Model) tea.Cmd
}

// Prefs are the user-facing display preferences shared by every tab.
type Prefs struct {
	DarkMode bool
	Size     inputfield.Size
}

type Model struct {
	width     int
	height    int
	tabs      []Tab
	activeTab int
	screens   ScreenStack
	keys      *KeyRegistry
	commands  *CommandRegistry
	status    string
	statusErr bool
	quitting  bool
	prefs     Prefs
	palette   widgets.Palette
	styles    styles

	Logger           *log.Logger
	SavePrefs        func(Prefs) error
	OpenCommandModal func(m *Model, scope string) Screen
}

func NewModel(tabs []Tab, keys *KeyRegistry, commands *CommandRegistry, prefs Prefs, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	palette := widgets.PaletteFor(prefs.DarkMode)
	return Model{
		tabs:      tabs,
		keys:      keys,
		commands:  commands,
		prefs:     prefs,
		palette:   palette,
		styles:    newStyles(palette),
		Logger:    logger,
		status:    "Ready",
		activeTab: 0,
		width:     100,
		height:    32,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, t := range m.tabs {
		if initTab, ok := t.(TabInitializer); ok {
			if cmd := initTab.InitTab(&m); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) Status() (string, bool) { return m.status, m.statusErr }

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if len(m.tabs) == 0 {
		return "app"
	}
	return m.tabs[m.activeTab].Scope()
}

func (m Model) ActiveTab() Tab {
	if len(m.tabs) == 0 {
		return nil
	}
	return m.tabs[m.activeTab]
}

func (m *Model) SwitchTab(index int) {
	if index < 0 || index >= len(m.tabs) {
		return
	}
	m.activeTab = index
}

// SwitchTabID activates the tab with the given id and reports whether it exists.
func (m *Model) SwitchTabID(id string) bool {
	for i, t := range m.tabs {
		if t.ID() == id {
			m.activeTab = i
			return true
		}
	}
	return false
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m Model) Screens() int { return m.screens.Len() }

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m Model) Prefs() Prefs             { return m.prefs }
func (m Model) Palette() widgets.Palette { return m.palette }
func (m Model) Size() (int, int)         { return m.width, m.height }

// SetDarkMode switches the palette and tells every tab about it.
func (m *Model) SetDarkMode(dark bool) tea.Cmd {
	m.prefs.DarkMode = dark
	m.palette = widgets.PaletteFor(dark)
	m.styles = newStyles(m.palette)
	m.Logger.Debug("theme", "palette", m.palette.Name)
	return prefsChanged(m.prefs)
}

func (m *Model) SetInputSize(size inputfield.Size) tea.Cmd {
	m.prefs.Size = size
	return prefsChanged(m.prefs)
}

// Save hands the current preferences to SavePrefs.
func (m *Model) Save() tea.Cmd {
	if m.SavePrefs == nil {
		return StatusCmd("Preferences are not persisted in this session")
	}
	if err := m.SavePrefs(m.prefs); err != nil {
		m.Logger.Error("save prefs", "err", err)
		return ErrorCmd(err)
	}
	return StatusCmd("Preferences saved")
}

func prefsChanged(p Prefs) tea.Cmd {
	return func() tea.Msg { return PrefsChangedMsg{Prefs: p} }
}

type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

// Replace swaps the top screen for next. A nil next keeps the current one.
func (s *ScreenStack) Replace(next Screen) {
	if next == nil || len(s.items) == 0 {
		return
	}
	s.items[len(s.items)-1] = next
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s ScreenStack) Len() int {
	return len(s.items)
}
