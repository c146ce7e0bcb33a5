package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/jask/uikit/core"
	"github.com/jask/uikit/stories"
	"github.com/jask/uikit/widgets"
)

// StoryScreen shows one live story in a popup. Every key except esc goes to
// the component.
type StoryScreen struct {
	story     stories.Story
	component stories.Component
	palette   widgets.Palette
}

// OpenStory builds the story and returns the screen with the component's
// init command.
func OpenStory(story stories.Story, palette widgets.Palette, logger *log.Logger) (*StoryScreen, tea.Cmd, error) {
	c, err := stories.Build(story, logger)
	if err != nil {
		return nil, nil, err
	}
	c.SetPalette(palette)
	return &StoryScreen{story: story, component: c, palette: palette}, c.Init(), nil
}

func (s *StoryScreen) Title() string                { return s.story.Title() }
func (s *StoryScreen) Scope() string                { return "screen:story" }
func (s *StoryScreen) Component() stories.Component { return s.component }

func (s *StoryScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, nil, true
		}
	case core.PrefsChangedMsg:
		s.palette = widgets.PaletteFor(msg.Prefs.DarkMode)
		s.component.SetPalette(s.palette)
		return s, nil, false
	}
	return s, s.component.Update(msg), false
}

func (s *StoryScreen) View(width, height int) string {
	title := lipgloss.NewStyle().Foreground(s.palette.Accent).Bold(true).Render(s.story.Title())
	args := lipgloss.NewStyle().Foreground(s.palette.Muted).Render(strings.Join(s.story.Args, " · "))
	header := []string{title, args, ""}
	body := s.component.View(width, max(1, height-len(header)))
	return strings.Join(append(header, body), "\n")
}
