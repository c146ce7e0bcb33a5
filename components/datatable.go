package components

import (
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jask/uikit/core/datatable"
	"github.com/jask/uikit/widgets"
)

// RowsSelectedMsg reports the resolved selected rows after a selection
// change in the table identified by ID.
type RowsSelectedMsg[R any] struct {
	ID   string
	Rows []R
}

type DataTable[R any] struct {
	id      string
	table   *datatable.Table[R]
	keys    TableKeyMap
	cursor  int
	header  int
	focused bool
	palette widgets.Palette
	logger  *log.Logger

	selected []R
	changed  bool
}

// NewDataTable builds a table component. opts.OnRowSelect still fires
// synchronously; the component additionally emits a RowsSelectedMsg.
func NewDataTable[R any](id string, opts datatable.Options[R], logger *log.Logger) *DataTable[R] {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &DataTable[R]{
		id:      id,
		keys:    DefaultTableKeyMap(),
		palette: widgets.Dark(),
		logger:  logger.WithPrefix(id),
	}
	callback := opts.OnRowSelect
	opts.OnRowSelect = func(rows []R) {
		if callback != nil {
			callback(rows)
		}
		c.selected = rows
		c.changed = true
	}
	c.table = datatable.New(opts)
	c.header = firstSortable(c.table.Columns())
	return c
}

func firstSortable[R any](cols []datatable.Column[R]) int {
	for i, col := range cols {
		if col.Sortable {
			return i
		}
	}
	return 0
}

func (c *DataTable[R]) ID() string                   { return c.id }
func (c *DataTable[R]) Table() *datatable.Table[R]   { return c.table }
func (c *DataTable[R]) KeyMap() TableKeyMap          { return c.keys }
func (c *DataTable[R]) Cursor() int                  { return c.cursor }
func (c *DataTable[R]) HeaderCursor() int            { return c.header }
func (c *DataTable[R]) Focused() bool                { return c.focused }
func (c *DataTable[R]) Focus()                       { c.focused = true }
func (c *DataTable[R]) Blur()                        { c.focused = false }
func (c *DataTable[R]) SetPalette(p widgets.Palette) { c.palette = p }
func (c *DataTable[R]) SetLoading(loading bool)      { c.table.SetLoading(loading) }
func (c *DataTable[R]) SetKeyMap(keys TableKeyMap)   { c.keys = keys }
func (c *DataTable[R]) SelectedRows() []R            { return c.table.SelectedRows() }
func (c *DataTable[R]) Init() tea.Cmd                { return nil }

// SetData swaps the caller rows and keeps the cursor in range.
func (c *DataTable[R]) SetData(rows []R) {
	c.table.SetData(rows)
	c.clampCursor()
}

func (c *DataTable[R]) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !c.focused {
		return nil
	}
	switch {
	case key.Matches(km, c.keys.Up):
		c.cursor--
		c.clampCursor()
	case key.Matches(km, c.keys.Down):
		c.cursor++
		c.clampCursor()
	case key.Matches(km, c.keys.Left):
		c.header = max(0, c.header-1)
	case key.Matches(km, c.keys.Right):
		c.header = min(max(0, len(c.table.Columns())-1), c.header+1)
	case key.Matches(km, c.keys.Sort):
		c.sortFocusedColumn()
	case key.Matches(km, c.keys.Toggle):
		c.toggleCursorRow()
	case key.Matches(km, c.keys.ToggleAll):
		if c.table.ToggleAllVisible() {
			c.logger.Debug("toggle all visible", "selected", c.table.Selection().Len())
		}
	}
	return c.flush()
}

func (c *DataTable[R]) sortFocusedColumn() {
	cols := c.table.Columns()
	if c.header < 0 || c.header >= len(cols) {
		return
	}
	if c.table.ClickHeader(cols[c.header].Key) {
		s := c.table.Sort()
		c.logger.Debug("sort", "column", s.ColumnKey, "direction", s.Direction)
	}
}

func (c *DataTable[R]) toggleCursorRow() {
	keys := c.table.VisibleKeys()
	if c.cursor < 0 || c.cursor >= len(keys) {
		return
	}
	if c.table.ToggleRow(keys[c.cursor]) {
		c.logger.Debug("toggle row", "key", keys[c.cursor], "selected", c.table.Selection().Len())
	}
}

func (c *DataTable[R]) flush() tea.Cmd {
	if !c.changed {
		return nil
	}
	c.changed = false
	msg := RowsSelectedMsg[R]{ID: c.id, Rows: c.selected}
	return func() tea.Msg { return msg }
}

func (c *DataTable[R]) clampCursor() {
	n := len(c.table.Rows())
	if c.table.Loading() || n == 0 {
		c.cursor = 0
		return
	}
	c.cursor = min(max(0, c.cursor), n-1)
}

func (c *DataTable[R]) View(width, height int) string {
	return widgets.DataTable{
		View:         c.table.View(),
		Cursor:       c.cursor,
		HeaderCursor: c.header,
		Focused:      c.focused,
		Palette:      c.palette,
	}.Render(width, height)
}
