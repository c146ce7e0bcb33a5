package components

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/uikit/core/inputfield"
)

func typeText(c *InputField, s string) []tea.Msg {
	var msgs []tea.Msg
	for _, r := range s {
		if cmd := c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}); cmd != nil {
			if msg := cmd(); msg != nil {
				msgs = append(msgs, msg)
			}
		}
	}
	return msgs
}

func changedValues(msgs []tea.Msg) []string {
	var out []string
	for _, m := range msgs {
		switch m := m.(type) {
		case ValueChangedMsg:
			out = append(out, m.Value)
		case tea.BatchMsg:
			for _, cmd := range m {
				if cmd == nil {
					continue
				}
				if v, ok := cmd().(ValueChangedMsg); ok {
					out = append(out, v.Value)
				}
			}
		}
	}
	return out
}

func TestInputFieldTypingReportsChanges(t *testing.T) {
	var seen []string
	c := NewInputField("name", inputfield.Options{Label: "Your name", OnChange: func(v string) { seen = append(seen, v) }})
	c.Focus()
	msgs := typeText(c, "ab")
	require.Equal(t, "ab", c.Value())
	require.Equal(t, []string{"a", "ab"}, seen)
	require.Equal(t, []string{"a", "ab"}, changedValues(msgs))
}

func TestInputFieldClear(t *testing.T) {
	c := NewInputField("name", inputfield.Options{Value: "hello", Clearable: true})
	c.Focus()
	require.Contains(t, c.View(30, 5), "✕")
	cmd := c.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	require.NotNil(t, cmd)
	require.Equal(t, ValueChangedMsg{ID: "name", Value: ""}, cmd())
	require.Equal(t, "", c.Value())
	require.NotContains(t, c.View(30, 5), "✕")
}

func TestInputFieldPasswordToggle(t *testing.T) {
	c := NewInputField("pw", inputfield.Options{Type: inputfield.TypePassword, PasswordToggle: true})
	require.Equal(t, textinput.EchoPassword, c.input.EchoMode)
	c.Focus()
	c.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	require.Equal(t, textinput.EchoNormal, c.input.EchoMode)
	require.Equal(t, inputfield.TypeText, c.Field().InputType())
}

func TestInputFieldDisabledIgnoresTyping(t *testing.T) {
	c := NewInputField("d", inputfield.Options{Disabled: true})
	require.Nil(t, c.Focus())
	typeText(c, "zz")
	require.Equal(t, "", c.Value())
}

func TestInputFieldSetValueIsSilent(t *testing.T) {
	calls := 0
	c := NewInputField("n", inputfield.Options{OnChange: func(string) { calls++ }})
	c.SetValue("pushed")
	require.Equal(t, "pushed", c.Value())
	require.Zero(t, calls)
}

func TestInputFieldLoadingStartsSpinner(t *testing.T) {
	c := NewInputField("l", inputfield.Options{Loading: true})
	require.NotNil(t, c.Init())
	require.Nil(t, NewInputField("n", inputfield.Options{}).Init())
}
