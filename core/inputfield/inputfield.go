// Package inputfield holds the state behind the text input component: its
// value, the clear action, password reveal and the flags deciding which
// adornments are shown. Rendering and key handling live elsewhere.
package inputfield

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownVariant = errors.New("unknown input variant")
	ErrUnknownSize    = errors.New("unknown input size")
)

type Variant int

const (
	Outlined Variant = iota
	Filled
	Ghost
)

func (v Variant) String() string {
	switch v {
	case Filled:
		return "filled"
	case Ghost:
		return "ghost"
	default:
		return "outlined"
	}
}

func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "outlined":
		return Outlined, nil
	case "filled":
		return Filled, nil
	case "ghost":
		return Ghost, nil
	default:
		return Outlined, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

type Size int

const (
	Medium Size = iota
	Small
	Large
)

func (s Size) String() string {
	switch s {
	case Small:
		return "sm"
	case Large:
		return "lg"
	default:
		return "md"
	}
}

func ParseSize(s string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "md", "medium":
		return Medium, nil
	case "sm", "small":
		return Small, nil
	case "lg", "large":
		return Large, nil
	default:
		return Medium, fmt.Errorf("%w: %q", ErrUnknownSize, s)
	}
}

const (
	TypeText     = "text"
	TypePassword = "password"
)

type Options struct {
	Value        string
	Label        string
	Placeholder  string
	HelperText   string
	ErrorMessage string
	Disabled     bool
	Invalid      bool
	Loading      bool
	Variant      Variant
	Size         Size
	// Type is the declared input type ("text", "password", "email", ...).
	Type           string
	Clearable      bool
	PasswordToggle bool
	OnChange       func(value string)
}

type Field struct {
	opts            Options
	value           string
	passwordVisible bool
}

func New(opts Options) *Field {
	if opts.Type == "" {
		opts.Type = TypeText
	}
	return &Field{opts: opts, value: opts.Value}
}

func (f *Field) Options() Options      { return f.opts }
func (f *Field) Value() string         { return f.value }
func (f *Field) PasswordVisible() bool { return f.passwordVisible }

// Editable reports whether the field accepts input. Loading fields stay
// editable; only disabled ones refuse changes.
func (f *Field) Editable() bool {
	return !f.opts.Disabled
}

// SetValue records a change event and forwards it to OnChange.
func (f *Field) SetValue(v string) bool {
	if !f.Editable() || v == f.value {
		return false
	}
	f.value = v
	f.notify()
	return true
}

// Replace sets the value without a change event, for values pushed in by
// the owner of the field.
func (f *Field) Replace(v string) {
	f.value = v
}

// Clear empties the value and reports the empty value to OnChange.
func (f *Field) Clear() bool {
	if !f.ShowClearButton() {
		return false
	}
	f.value = ""
	f.notify()
	return true
}

func (f *Field) TogglePassword() bool {
	if !f.ShowPasswordToggle() {
		return false
	}
	f.passwordVisible = !f.passwordVisible
	return true
}

func (f *Field) notify() {
	if f.opts.OnChange != nil {
		f.opts.OnChange(f.value)
	}
}

// InputType is the effective type: a revealed password reads as text.
func (f *Field) InputType() string {
	if f.opts.PasswordToggle && f.passwordVisible {
		return TypeText
	}
	return f.opts.Type
}

func (f *Field) ShowClearButton() bool {
	return !f.opts.Loading && f.opts.Clearable && f.value != "" && !f.opts.Disabled
}

func (f *Field) ShowPasswordToggle() bool {
	return !f.opts.Loading && f.opts.PasswordToggle && f.opts.Type == TypePassword
}

func (f *Field) ShowSpinner() bool {
	return f.opts.Loading
}

// Helper returns the helper text, hidden while the field is invalid.
func (f *Field) Helper() (string, bool) {
	if f.opts.HelperText == "" || f.opts.Invalid {
		return "", false
	}
	return f.opts.HelperText, true
}

// Error returns the error message, shown only while the field is invalid.
func (f *Field) Error() (string, bool) {
	if !f.opts.Invalid || f.opts.ErrorMessage == "" {
		return "", false
	}
	return f.opts.ErrorMessage, true
}

func (f *Field) SetSize(s Size)          { f.opts.Size = s }
func (f *Field) SetLoading(loading bool) { f.opts.Loading = loading }
func (f *Field) SetInvalid(invalid bool, message string) {
	f.opts.Invalid = invalid
	f.opts.ErrorMessage = message
}
