package inputfield

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetValueNotifies(t *testing.T) {
	var got []string
	f := New(Options{OnChange: func(v string) { got = append(got, v) }})
	require.Equal(t, TypeText, f.InputType())
	require.True(t, f.SetValue("ab"))
	require.False(t, f.SetValue("ab"))
	require.Equal(t, []string{"ab"}, got)
}

func TestDisabledRefusesChanges(t *testing.T) {
	f := New(Options{Value: "x", Disabled: true, Clearable: true})
	require.False(t, f.Editable())
	require.False(t, f.SetValue("y"))
	require.False(t, f.ShowClearButton())
	require.False(t, f.Clear())
	require.Equal(t, "x", f.Value())
}

func TestClear(t *testing.T) {
	var last string
	f := New(Options{Value: "hello", Clearable: true, OnChange: func(v string) { last = v }})
	require.True(t, f.ShowClearButton())
	require.True(t, f.Clear())
	require.Equal(t, "", f.Value())
	require.Equal(t, "", last)
	require.False(t, f.ShowClearButton(), "nothing to clear")

	loading := New(Options{Value: "hello", Clearable: true, Loading: true})
	require.False(t, loading.ShowClearButton())
	require.True(t, loading.ShowSpinner())
}

func TestPasswordToggle(t *testing.T) {
	f := New(Options{Type: TypePassword, PasswordToggle: true})
	require.True(t, f.ShowPasswordToggle())
	require.Equal(t, TypePassword, f.InputType())
	require.True(t, f.TogglePassword())
	require.Equal(t, TypeText, f.InputType())
	require.True(t, f.TogglePassword())
	require.Equal(t, TypePassword, f.InputType())

	plain := New(Options{Type: "email", PasswordToggle: true})
	require.False(t, plain.ShowPasswordToggle())
	require.False(t, plain.TogglePassword())
}

func TestHelperAndError(t *testing.T) {
	f := New(Options{HelperText: "help", ErrorMessage: "bad"})
	h, ok := f.Helper()
	require.True(t, ok)
	require.Equal(t, "help", h)
	_, ok = f.Error()
	require.False(t, ok)

	f.SetInvalid(true, "bad")
	_, ok = f.Helper()
	require.False(t, ok)
	e, ok := f.Error()
	require.True(t, ok)
	require.Equal(t, "bad", e)
}

func TestParseVariantAndSize(t *testing.T) {
	v, err := ParseVariant("ghost")
	require.NoError(t, err)
	require.Equal(t, Ghost, v)
	_, err = ParseVariant("neon")
	require.ErrorIs(t, err, ErrUnknownVariant)

	s, err := ParseSize("LG")
	require.NoError(t, err)
	require.Equal(t, Large, s)
	require.Equal(t, "lg", s.String())
	_, err = ParseSize("xl")
	require.ErrorIs(t, err, ErrUnknownSize)
}

func TestReplaceDoesNotNotify(t *testing.T) {
	calls := 0
	f := New(Options{OnChange: func(string) { calls++ }})
	f.Replace("pushed")
	require.Equal(t, "pushed", f.Value())
	require.Zero(t, calls)
}
