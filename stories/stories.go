// Package stories is the component catalog: named, preconfigured examples
// of each component that can be built into a live instance.
package stories

import (
	"errors"
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jask/uikit/components"
	"github.com/jask/uikit/core/datatable"
	"github.com/jask/uikit/core/inputfield"
	"github.com/jask/uikit/internal/sample"
	"github.com/jask/uikit/widgets"
)

var ErrUnknownStory = errors.New("unknown story")

// Component is what a built story exposes to its host screen.
type Component interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
	SetPalette(p widgets.Palette)
}

type Story struct {
	ID        string
	Component string
	Name      string
	// Args lists the configuration shown next to the story.
	Args  []string
	build func(logger *log.Logger) Component
}

func (s Story) Title() string { return s.Component + " / " + s.Name }

var registry = []Story{
	{
		ID:        "datatable/default",
		Component: "DataTable",
		Name:      "Default",
		Args:      []string{"data: 3 users", "selectable: true", "rowKey: id"},
		build: func(logger *log.Logger) Component {
			t := components.NewDataTable("story:datatable/default", datatable.Options[datatable.Record]{
				Data:       sample.StoryUsers(),
				Columns:    sample.Columns(),
				Selectable: true,
				RowKey:     datatable.RecordKey("id"),
			}, logger)
			t.Focus()
			return t
		},
	},
	{
		ID:        "datatable/loading",
		Component: "DataTable",
		Name:      "Loading",
		Args:      []string{"data: []", "loading: true"},
		build: func(logger *log.Logger) Component {
			t := components.NewDataTable("story:datatable/loading", datatable.Options[datatable.Record]{
				Columns: sample.Columns(),
				Loading: true,
			}, logger)
			t.Focus()
			return t
		},
	},
	{
		ID:        "datatable/empty",
		Component: "DataTable",
		Name:      "Empty",
		Args:      []string{"data: []", "emptyMessage: Nothing here yet"},
		build: func(logger *log.Logger) Component {
			t := components.NewDataTable("story:datatable/empty", datatable.Options[datatable.Record]{
				Columns:      sample.Columns(),
				EmptyMessage: "Nothing here yet",
			}, logger)
			t.Focus()
			return t
		},
	},
	{
		ID:        "inputfield/playground",
		Component: "InputField",
		Name:      "Playground",
		Args:      []string{"variant: outlined", "size: md", "clearable: true", "passwordToggle: true"},
		build: func(*log.Logger) Component {
			return focusedInput("story:inputfield/playground", inputfield.Options{
				Label:          "Label",
				Placeholder:    "Enter something...",
				HelperText:     "Helper text",
				Variant:        inputfield.Outlined,
				Size:           inputfield.Medium,
				Clearable:      true,
				PasswordToggle: true,
			})
		},
	},
	{
		ID:        "inputfield/invalid",
		Component: "InputField",
		Name:      "Invalid",
		Args:      []string{"invalid: true", "errorMessage: Please enter a valid email."},
		build: func(*log.Logger) Component {
			return focusedInput("story:inputfield/invalid", inputfield.Options{
				Label:        "Email",
				Placeholder:  "Enter email",
				Invalid:      true,
				ErrorMessage: "Please enter a valid email.",
			})
		},
	},
	{
		ID:        "inputfield/password",
		Component: "InputField",
		Name:      "Password",
		Args:      []string{"type: password", "helperText: Use at least 8 characters"},
		build: func(*log.Logger) Component {
			return focusedInput("story:inputfield/password", inputfield.Options{
				Label:       "Password",
				Placeholder: "Enter password",
				Type:        inputfield.TypePassword,
				HelperText:  "Use at least 8 characters",
			})
		},
	},
}

func focusedInput(id string, opts inputfield.Options) Component {
	c := components.NewInputField(id, opts)
	c.Focus()
	return c
}

// All returns every story in catalog order.
func All() []Story {
	return slices.Clone(registry)
}

func Lookup(id string) (Story, error) {
	for _, s := range registry {
		if s.ID == id {
			return s, nil
		}
	}
	return Story{}, fmt.Errorf("%w: %q", ErrUnknownStory, id)
}

// Build returns a fresh live component for the story. A nil logger discards.
func Build(s Story, logger *log.Logger) (Component, error) {
	if s.build == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStory, s.ID)
	}
	return s.build(logger), nil
}
