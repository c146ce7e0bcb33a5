package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func RenderFooter(m Model) string {
	s := m.styles
	space := lipgloss.NewStyle().Background(s.barBg).Render(" ")
	sep := lipgloss.NewStyle().Background(s.barBg).Render("  ")

	help := m.keys.Help(m.ActiveScope())
	parts := make([]string, 0, len(help))
	for _, h := range help {
		parts = append(parts, s.footerKey.Render(h.Key)+space+s.footerDesc.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = s.footerDesc.Render("No shortcuts")
	}
	return renderBar(s.footer, max(1, m.width), line, s.barBg)
}

func RenderStatusBar(m Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	if m.statusErr {
		return renderBar(m.styles.statusErr, max(1, m.width), msg, m.styles.statusBg)
	}
	return renderBar(m.styles.statusBar, max(1, m.width), msg, m.styles.statusBg)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}
