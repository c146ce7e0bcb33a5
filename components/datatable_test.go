package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/uikit/core/datatable"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newUserTable(t *testing.T, onSelect func([]datatable.Record)) *DataTable[datatable.Record] {
	t.Helper()
	c := NewDataTable("users", datatable.Options[datatable.Record]{
		Data: []datatable.Record{
			{"id": 1, "name": "Nayan", "age": 40},
			{"id": 2, "name": "Nishikant", "age": 25},
			{"id": 3, "name": "Abhijeet", "age": 30},
		},
		Columns: []datatable.Column[datatable.Record]{
			{Key: "name", Title: "Name", Field: datatable.Field("name"), Sortable: true},
			{Key: "age", Title: "Age", Field: datatable.Field("age"), Sortable: true},
		},
		Selectable:  true,
		RowKey:      datatable.RecordKey("id"),
		OnRowSelect: onSelect,
	}, nil)
	c.Focus()
	return c
}

func TestDataTableSortKeyOrdersRows(t *testing.T) {
	c := newUserTable(t, nil)
	require.Nil(t, c.Update(runeKey('s')))
	lines := strings.Split(ansi.Strip(c.View(60, 10)), "\n")
	require.Contains(t, lines[0], "Name ▲")
	require.Contains(t, lines[2], "Abhijeet")

	c.Update(runeKey('l'))
	c.Update(runeKey('s'))
	require.Equal(t, datatable.SortDirective{ColumnKey: "age"}, c.Table().Sort())
	require.Equal(t, 25, c.Table().Rows()[0]["age"])
}

func TestDataTableToggleRowEmitsSelection(t *testing.T) {
	var got []datatable.Record
	c := newUserTable(t, func(rows []datatable.Record) { got = rows })

	c.Update(tea.KeyMsg{Type: tea.KeyDown})
	cmd := c.Update(runeKey('x'))
	require.NotNil(t, cmd)
	msg, ok := cmd().(RowsSelectedMsg[datatable.Record])
	require.True(t, ok)
	require.Equal(t, "users", msg.ID)
	require.Equal(t, []datatable.Record{{"id": 2, "name": "Nishikant", "age": 25}}, msg.Rows)
	require.Equal(t, msg.Rows, got)
}

func TestDataTableToggleAll(t *testing.T) {
	c := newUserTable(t, nil)
	cmd := c.Update(runeKey('a'))
	require.NotNil(t, cmd)
	require.Len(t, cmd().(RowsSelectedMsg[datatable.Record]).Rows, 3)
	require.True(t, c.Table().AllVisibleSelected())
	require.Contains(t, strings.Split(ansi.Strip(c.View(60, 10)), "\n")[0], "[x]")
}

func TestDataTableIgnoresKeysWhenBlurred(t *testing.T) {
	c := newUserTable(t, nil)
	c.Blur()
	require.Nil(t, c.Update(runeKey('a')))
	require.Zero(t, c.Table().Selection().Len())
}

func TestDataTableCursorClamps(t *testing.T) {
	c := newUserTable(t, nil)
	for i := 0; i < 5; i++ {
		c.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	require.Equal(t, 2, c.Cursor())
	c.SetData(c.Table().Rows()[:1])
	require.Equal(t, 0, c.Cursor())
	c.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, c.Cursor())
}

func TestDataTableLoadingSuppressesSelection(t *testing.T) {
	c := newUserTable(t, nil)
	c.SetLoading(true)
	require.Nil(t, c.Update(runeKey('x')))
	require.Nil(t, c.Update(runeKey('a')))
	lines := strings.Split(ansi.Strip(c.View(60, 10)), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines[2:] {
		require.True(t, strings.HasPrefix(line, "░"))
	}
}
