package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/uikit/core/datatable"
)

const (
	colGap        = 2
	selectColW    = 3
	skeletonCellW = 8
)

// DataTable draws a datatable.View. Cursor is the highlighted body row and
// HeaderCursor the highlighted header column; -1 hides either.
type DataTable struct {
	View         datatable.View
	Cursor       int
	HeaderCursor int
	Focused      bool
	Palette      Palette
}

func (t DataTable) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	widths := t.columnWidths()
	headerStyle := lipgloss.NewStyle().Foreground(t.Palette.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.Palette.Muted)
	ruleStyle := lipgloss.NewStyle().Foreground(t.Palette.Border)

	lines := []string{t.renderHeader(widths, headerStyle)}
	lines = append(lines, ruleStyle.Render(strings.Repeat("─", width)))

	var body []string
	switch t.View.Body {
	case datatable.BodySkeleton:
		body = t.renderSkeleton(widths, mutedStyle)
	case datatable.BodyEmpty:
		body = []string{lipgloss.PlaceHorizontal(width, lipgloss.Center, mutedStyle.Render(t.View.Message))}
	default:
		body = t.renderRows(widths)
	}
	body = windowRows(body, t.Cursor, max(0, height-len(lines)))
	lines = append(lines, body...)

	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], width, "")
	}
	return strings.Join(lines, "\n")
}

func (t DataTable) columnWidths() []int {
	widths := make([]int, len(t.View.Headers))
	for i, h := range t.View.Headers {
		widths[i] = ansi.StringWidth(headerLabel(h))
	}
	for _, r := range t.View.Rows {
		for i, c := range r.Cells {
			if i < len(widths) {
				widths[i] = max(widths[i], ansi.StringWidth(c))
			}
		}
	}
	if t.View.Body == datatable.BodySkeleton {
		for i := range widths {
			widths[i] = max(widths[i], skeletonCellW)
		}
	}
	return widths
}

func headerLabel(h datatable.Header) string {
	if !h.Sortable {
		return h.Title
	}
	return h.Title + " " + SortMarker(h.Sort)
}

// SortMarker is the glyph a sortable header shows for its sort state.
func SortMarker(state string) string {
	switch state {
	case "ascending":
		return "▲"
	case "descending":
		return "▼"
	default:
		return "↕"
	}
}

func (t DataTable) renderHeader(widths []int, style lipgloss.Style) string {
	cells := make([]string, 0, len(widths)+1)
	if t.View.Selectable {
		ctl := strings.Repeat(" ", selectColW)
		if t.View.Mode == datatable.Multiple {
			ctl = Checkbox(t.View.AllSelected)
		}
		cells = append(cells, ctl)
	}
	for i, h := range t.View.Headers {
		label := padRight(headerLabel(h), widths[i])
		s := style
		if i == t.HeaderCursor && t.Focused {
			s = s.Underline(true).Foreground(t.Palette.Focus)
		}
		cells = append(cells, s.Render(label))
	}
	return strings.Join(cells, strings.Repeat(" ", colGap))
}

func (t DataTable) renderSkeleton(widths []int, style lipgloss.Style) []string {
	out := make([]string, 0, t.View.Skeleton)
	for i := 0; i < t.View.Skeleton; i++ {
		cells := make([]string, 0, len(widths)+1)
		if t.View.Selectable {
			cells = append(cells, style.Render("░"+strings.Repeat(" ", selectColW-1)))
		}
		for _, w := range widths {
			cells = append(cells, style.Render(padRight(strings.Repeat("░", min(w, skeletonCellW)), w)))
		}
		out = append(out, strings.Join(cells, strings.Repeat(" ", colGap)))
	}
	return out
}

func (t DataTable) renderRows(widths []int) []string {
	base := lipgloss.NewStyle().Foreground(t.Palette.Text)
	out := make([]string, 0, len(t.View.Rows))
	for i, r := range t.View.Rows {
		style := base
		if r.Selected {
			style = style.Background(t.Palette.Surface)
		}
		if i == t.Cursor && t.Focused {
			style = style.Foreground(t.Palette.Focus).Bold(true)
		}
		cells := make([]string, 0, len(widths)+1)
		if t.View.Selectable {
			if t.View.Mode == datatable.Single {
				cells = append(cells, Radio(r.Selected))
			} else {
				cells = append(cells, Checkbox(r.Selected))
			}
		}
		for j, w := range widths {
			cell := ""
			if j < len(r.Cells) {
				cell = r.Cells[j]
			}
			cells = append(cells, padRight(cell, w))
		}
		out = append(out, style.Render(strings.Join(cells, strings.Repeat(" ", colGap))))
	}
	return out
}

func Checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func Radio(checked bool) string {
	if checked {
		return "(•)"
	}
	return "( )"
}

// windowRows keeps at most height rows, scrolled so cursor stays visible.
func windowRows(rows []string, cursor, height int) []string {
	if len(rows) <= height {
		return rows
	}
	start := 0
	if cursor >= height {
		start = min(cursor-height+1, len(rows)-height)
	}
	return rows[start : start+height]
}
