package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/uikit/core/inputfield"
)

// InputField draws a text input. Input is the already rendered editor line;
// the widget adds label, frame, adornments and the helper or error line.
type InputField struct {
	Label           string
	Input           string
	Helper          string
	Error           string
	Variant         inputfield.Variant
	Size            inputfield.Size
	Disabled        bool
	Invalid         bool
	Focused         bool
	ShowClear       bool
	ShowToggle      bool
	PasswordVisible bool
	Spinner         string
	Palette         Palette
}

func sizePadding(s inputfield.Size) (vertical, horizontal int) {
	switch s {
	case inputfield.Small:
		return 0, 0
	case inputfield.Large:
		return 1, 2
	default:
		return 0, 1
	}
}

func (f InputField) adornment() string {
	switch {
	case f.Spinner != "":
		return f.Spinner
	case f.ShowClear:
		return "✕"
	case f.ShowToggle && f.PasswordVisible:
		return "◎"
	case f.ShowToggle:
		return "◉"
	default:
		return ""
	}
}

func (f InputField) frameStyle() lipgloss.Style {
	border := f.Palette.Border
	switch {
	case f.Invalid:
		border = f.Palette.Error
	case f.Focused:
		border = f.Palette.Accent
	}
	style := lipgloss.NewStyle().Foreground(f.Palette.Text)
	switch f.Variant {
	case inputfield.Filled:
		style = style.Border(lipgloss.NormalBorder()).Background(f.Palette.Surface)
	case inputfield.Ghost:
		style = style.Border(lipgloss.NormalBorder(), false, false, true, false)
	default:
		style = style.Border(lipgloss.RoundedBorder())
	}
	if f.Disabled {
		style = style.Foreground(f.Palette.Muted).Faint(true)
	}
	return style.BorderForeground(border)
}

func (f InputField) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := make([]string, 0, 5)
	if f.Label != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(f.Palette.Text).Bold(true).Render(truncate(f.Label, width)))
	}

	vpad, hpad := sizePadding(f.Size)
	style := f.frameStyle().Padding(vpad, hpad)
	inner := max(1, width-style.GetHorizontalFrameSize())
	content := f.Input
	if adorn := f.adornment(); adorn != "" {
		avail := max(1, inner-ansi.StringWidth(adorn)-1)
		content = padRight(ansi.Truncate(content, avail, ""), avail) + " " + adorn
	}
	lines = append(lines, strings.Split(style.Width(inner+style.GetHorizontalPadding()).Render(content), "\n")...)

	switch {
	case f.Error != "":
		lines = append(lines, lipgloss.NewStyle().Foreground(f.Palette.Error).Render(truncate(f.Error, width)))
	case f.Helper != "":
		lines = append(lines, lipgloss.NewStyle().Foreground(f.Palette.Muted).Render(truncate(f.Helper, width)))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
