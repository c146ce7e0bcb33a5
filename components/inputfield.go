package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/uikit/core/inputfield"
	"github.com/jask/uikit/widgets"
)

// ValueChangedMsg reports a new value for the input identified by ID.
type ValueChangedMsg struct {
	ID    string
	Value string
}

type InputField struct {
	id      string
	field   *inputfield.Field
	input   textinput.Model
	spin    spinner.Model
	keys    InputKeyMap
	focused bool
	palette widgets.Palette

	changed bool
}

func NewInputField(id string, opts inputfield.Options) *InputField {
	c := &InputField{
		id:      id,
		keys:    DefaultInputKeyMap(),
		palette: widgets.Dark(),
		spin:    spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
	callback := opts.OnChange
	opts.OnChange = func(v string) {
		if callback != nil {
			callback(v)
		}
		c.changed = true
	}
	c.field = inputfield.New(opts)

	c.input = textinput.New()
	c.input.Prompt = ""
	c.input.Placeholder = opts.Placeholder
	c.input.SetValue(c.field.Value())
	c.syncEcho()
	return c
}

func (c *InputField) ID() string                   { return c.id }
func (c *InputField) Field() *inputfield.Field     { return c.field }
func (c *InputField) Value() string                { return c.field.Value() }
func (c *InputField) Focused() bool                { return c.focused }
func (c *InputField) KeyMap() InputKeyMap          { return c.keys }
func (c *InputField) SetPalette(p widgets.Palette) { c.palette = p }
func (c *InputField) SetSize(s inputfield.Size)    { c.field.SetSize(s) }

// Init starts the spinner for loading fields.
func (c *InputField) Init() tea.Cmd {
	if c.field.ShowSpinner() {
		return c.spin.Tick
	}
	return nil
}

func (c *InputField) Focus() tea.Cmd {
	c.focused = true
	if !c.field.Editable() {
		return nil
	}
	return c.input.Focus()
}

func (c *InputField) Blur() {
	c.focused = false
	c.input.Blur()
}

// SetValue replaces the value programmatically, as a controlled input would.
func (c *InputField) SetValue(v string) {
	c.field.Replace(v)
	c.input.SetValue(v)
}

func (c *InputField) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !c.field.ShowSpinner() {
			return nil
		}
		var cmd tea.Cmd
		c.spin, cmd = c.spin.Update(msg)
		return cmd
	case tea.KeyMsg:
		if !c.focused {
			return nil
		}
		switch {
		case key.Matches(msg, c.keys.Clear):
			if c.field.Clear() {
				c.input.SetValue("")
			}
			return c.flush()
		case key.Matches(msg, c.keys.TogglePassword):
			if c.field.TogglePassword() {
				c.syncEcho()
			}
			return nil
		}
		if !c.field.Editable() {
			return nil
		}
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		if v := c.input.Value(); v != c.field.Value() {
			c.field.SetValue(v)
		}
		return tea.Batch(cmd, c.flush())
	}
	if c.focused && c.field.Editable() {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return cmd
	}
	return nil
}

func (c *InputField) syncEcho() {
	if c.field.InputType() == inputfield.TypePassword {
		c.input.EchoMode = textinput.EchoPassword
		c.input.EchoCharacter = '•'
		return
	}
	c.input.EchoMode = textinput.EchoNormal
}

func (c *InputField) flush() tea.Cmd {
	if !c.changed {
		return nil
	}
	c.changed = false
	msg := ValueChangedMsg{ID: c.id, Value: c.field.Value()}
	return func() tea.Msg { return msg }
}

func (c *InputField) View(width, height int) string {
	opts := c.field.Options()
	helper, _ := c.field.Helper()
	errText, _ := c.field.Error()
	spin := ""
	if c.field.ShowSpinner() {
		spin = c.spin.View()
	}
	c.input.Width = max(1, width-8)
	return widgets.InputField{
		Label:           opts.Label,
		Input:           c.input.View(),
		Helper:          helper,
		Error:           errText,
		Variant:         opts.Variant,
		Size:            opts.Size,
		Disabled:        opts.Disabled,
		Invalid:         opts.Invalid,
		Focused:         c.focused,
		ShowClear:       c.field.ShowClearButton(),
		ShowToggle:      c.field.ShowPasswordToggle(),
		PasswordVisible: c.field.PasswordVisible(),
		Spinner:         spin,
		Palette:         c.palette,
	}.Render(width, height)
}
