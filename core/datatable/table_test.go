package datatable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleUsers() []Record {
	return []Record{
		{"id": 1, "name": "Charlie"},
		{"id": 2, "name": "Alice"},
		{"id": 3, "name": "Bob"},
	}
}

var userColumns = []Column[Record]{
	{Key: "name", Title: "Name", Field: Field("name"), Sortable: true},
	{Key: "id", Title: "ID", Field: Field("id")},
}

func TestTableHeaderClicksSortByName(t *testing.T) {
	tbl := New(Options[Record]{Data: sampleUsers(), Columns: userColumns, RowKey: RecordKey("id")})

	require.True(t, tbl.ClickHeader("name"))
	require.Equal(t, []string{"Alice", "Bob", "Charlie"}, names(tbl.Rows()))

	require.True(t, tbl.ClickHeader("name"))
	require.Equal(t, []string{"Charlie", "Bob", "Alice"}, names(tbl.Rows()))

	require.False(t, tbl.ClickHeader("id"), "non-sortable column")
	require.False(t, tbl.ClickHeader("nope"))
	require.Equal(t, SortDirective{ColumnKey: "name", Direction: Descending}, tbl.Sort())
}

func TestTableMultipleSelectionNotifiesResolvedRows(t *testing.T) {
	var calls [][]Record
	tbl := New(Options[Record]{
		Data:          sampleUsers(),
		Columns:       userColumns,
		Selectable:    true,
		SelectionMode: Multiple,
		RowKey:        RecordKey("id"),
		OnRowSelect:   func(rows []Record) { calls = append(calls, rows) },
	})

	require.True(t, tbl.ToggleRow("1"))
	require.True(t, tbl.ToggleRow("3"))
	require.Len(t, calls, 2)
	require.ElementsMatch(t, []Record{{"id": 1, "name": "Charlie"}, {"id": 3, "name": "Bob"}}, calls[1])
	require.Equal(t, calls[1], tbl.SelectedRows())
}

func TestTableSingleSelection(t *testing.T) {
	var last []Record
	calls := 0
	tbl := New(Options[Record]{
		Data:          sampleUsers(),
		Columns:       userColumns,
		Selectable:    true,
		SelectionMode: Single,
		RowKey:        RecordKey("id"),
		OnRowSelect: func(rows []Record) {
			calls++
			last = rows
		},
	})
	tbl.ToggleRow("1")
	tbl.ToggleRow("2")
	require.Equal(t, []string{"2"}, tbl.Selection().Keys())
	require.Equal(t, []Record{{"id": 2, "name": "Alice"}}, last)

	require.False(t, tbl.ToggleRow("2"), "re-click leaves selection unchanged")
	require.Equal(t, 2, calls)
	require.False(t, tbl.ToggleAllVisible())
}

func TestTableSelectAllAndUpstreamFilter(t *testing.T) {
	var last []Record
	tbl := New(Options[Record]{
		Data:        sampleUsers(),
		Columns:     userColumns,
		Selectable:  true,
		RowKey:      RecordKey("id"),
		OnRowSelect: func(rows []Record) { last = rows },
	})
	require.False(t, tbl.AllVisibleSelected())
	require.True(t, tbl.ToggleAllVisible())
	require.True(t, tbl.AllVisibleSelected())
	require.Len(t, last, 3)

	// Rows filtered out upstream stay selected but drop out of notifications.
	tbl.SetData(sampleUsers()[:1])
	require.True(t, tbl.AllVisibleSelected())
	require.True(t, tbl.ToggleAllVisible())
	require.Equal(t, []string{"2", "3"}, tbl.Selection().Keys())
	require.Empty(t, last)
}

func TestTableSelectionDisabled(t *testing.T) {
	tbl := New(Options[Record]{Data: sampleUsers(), Columns: userColumns, RowKey: RecordKey("id")})
	require.False(t, tbl.ToggleRow("1"))
	require.False(t, tbl.ToggleAllVisible())
	require.False(t, tbl.AllVisibleSelected())
	require.Equal(t, 2, tbl.ColumnSpan())
}

func TestTableViewLoadingShowsThreeSkeletonRows(t *testing.T) {
	tbl := New(Options[Record]{
		Columns: []Column[Record]{
			{Key: "name", Title: "Name", Field: Field("name"), Sortable: true},
			{Key: "email", Title: "Email", Field: Field("email")},
		},
		Loading:    true,
		Selectable: true,
	})
	v := tbl.View()
	require.Equal(t, BodySkeleton, v.Body)
	require.Equal(t, 3, v.Skeleton)
	require.Empty(t, v.Rows)
	require.Len(t, v.Headers, 2)

	require.False(t, tbl.ClickHeader("name"), "interaction suppressed while loading")
	require.False(t, tbl.ToggleRow("0"))

	tbl.SetData(sampleUsers())
	require.Equal(t, BodySkeleton, tbl.View().Body, "row count does not matter while loading")
}

func TestTableViewEmptyMessage(t *testing.T) {
	tbl := New(Options[Record]{Columns: userColumns, EmptyMessage: "Nothing here yet", Selectable: true})
	v := tbl.View()
	require.Equal(t, BodyEmpty, v.Body)
	require.Equal(t, "Nothing here yet", v.Message)
	require.Equal(t, 3, v.Span)
	require.Empty(t, v.Rows)

	def := New(Options[Record]{Columns: userColumns}).View()
	require.Equal(t, DefaultEmptyMessage, def.Message)
	require.Equal(t, 2, def.Span)
}

func TestTableViewRows(t *testing.T) {
	data := append(sampleUsers(), Record{"id": 4})
	tbl := New(Options[Record]{Data: data, Columns: userColumns, Selectable: true, RowKey: RecordKey("id")})
	tbl.ClickHeader("name")
	tbl.ToggleRow("2")

	v := tbl.View()
	require.Equal(t, BodyRows, v.Body)
	require.Equal(t, "ascending", v.Headers[0].Sort)
	require.Equal(t, "none", v.Headers[1].Sort)
	require.Equal(t, []string{"", "4"}, v.Rows[0].Cells, "null name renders empty and sorts first")
	require.Equal(t, ViewRow{Key: "2", Cells: []string{"Alice", "2"}, Selected: true}, v.Rows[1])
	require.False(t, v.AllSelected)
	require.Equal(t, v, tbl.View(), "view is a pure function of state")
}

func TestTableIndexKeysFollowDisplayPosition(t *testing.T) {
	tbl := New(Options[Record]{Data: sampleUsers(), Columns: userColumns, Selectable: true})
	tbl.ClickHeader("name")
	tbl.ToggleRow("0")
	require.Equal(t, []Record{{"id": 2, "name": "Alice"}}, tbl.SelectedRows())
}

func TestTableDoesNotMutateCallerData(t *testing.T) {
	data := sampleUsers()
	tbl := New(Options[Record]{Data: data, Columns: userColumns, Selectable: true, RowKey: RecordKey("id")})
	tbl.ClickHeader("name")
	tbl.ToggleAllVisible()
	require.Equal(t, []string{"Charlie", "Alice", "Bob"}, names(data))
}
