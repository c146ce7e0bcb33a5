package widgets

import "github.com/charmbracelet/lipgloss"

// Palette is the set of semantic colors a page renders with. Dark follows
// Catppuccin Mocha and Light follows Catppuccin Latte.
type Palette struct {
	Name    string
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Surface lipgloss.Color
	Base    lipgloss.Color
	Mantle  lipgloss.Color
	Accent  lipgloss.Color
	Focus   lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

func Dark() Palette {
	return Palette{
		Name:    "dark",
		Text:    "#cdd6f4",
		Muted:   "#a6adc8",
		Border:  "#6c7086",
		Surface: "#313244",
		Base:    "#1e1e2e",
		Mantle:  "#181825",
		Accent:  "#89b4fa",
		Focus:   "#b4befe",
		Success: "#a6e3a1",
		Error:   "#f38ba8",
	}
}

func Light() Palette {
	return Palette{
		Name:    "light",
		Text:    "#4c4f69",
		Muted:   "#6c6f85",
		Border:  "#9ca0b0",
		Surface: "#ccd0da",
		Base:    "#eff1f5",
		Mantle:  "#e6e9ef",
		Accent:  "#1e66f5",
		Focus:   "#7287fd",
		Success: "#40a02b",
		Error:   "#d20f39",
	}
}

func PaletteFor(dark bool) Palette {
	if dark {
		return Dark()
	}
	return Light()
}
