package datatable

type BodyKind int

const (
	BodyRows BodyKind = iota
	BodySkeleton
	BodyEmpty
)

func (k BodyKind) String() string {
	switch k {
	case BodySkeleton:
		return "skeleton"
	case BodyEmpty:
		return "empty"
	default:
		return "rows"
	}
}

type Header struct {
	Key      string
	Title    string
	Sortable bool
	// Sort is "ascending", "descending" or "none".
	Sort string
}

type ViewRow struct {
	Key      string
	Cells    []string
	Selected bool
}

// View is everything a renderer needs to draw the table. It is a pure
// function of data, columns, sort directive and selection.
type View struct {
	Headers    []Header
	Selectable bool
	Mode       SelectionMode
	// AllSelected is the state of the select-all control.
	AllSelected bool

	Body BodyKind
	Rows []ViewRow
	// Skeleton is the number of placeholder rows when Body is BodySkeleton.
	Skeleton int
	// Message and Span describe the single informational row of BodyEmpty.
	Message string
	Span    int
}

func (t *Table[R]) View() View {
	v := View{
		Headers:    make([]Header, 0, len(t.columns)),
		Selectable: t.selectable,
		Mode:       t.mode,
	}
	for _, c := range t.columns {
		v.Headers = append(v.Headers, Header{
			Key:      c.Key,
			Title:    c.Title,
			Sortable: c.Sortable,
			Sort:     t.sort.State(c.Key),
		})
	}
	if t.loading {
		v.Body = BodySkeleton
		v.Skeleton = SkeletonRows
		return v
	}

	rows := t.Rows()
	if len(rows) == 0 {
		v.Body = BodyEmpty
		v.Message = t.emptyMsg
		v.Span = t.ColumnSpan()
		return v
	}

	keys := keysOf(rows, t.rowKey)
	v.Body = BodyRows
	v.AllSelected = AllVisibleSelected(t.selectable, t.selected, keys)
	v.Rows = make([]ViewRow, len(rows))
	for i, row := range rows {
		cells := make([]string, len(t.columns))
		for j, c := range t.columns {
			cells[j] = Stringify(c.Value(row))
		}
		v.Rows[i] = ViewRow{Key: keys[i], Cells: cells, Selected: t.selected.Has(keys[i])}
	}
	return v
}

// ColumnSpan counts the data columns plus the selection column when present.
func (t *Table[R]) ColumnSpan() int {
	if t.selectable {
		return len(t.columns) + 1
	}
	return len(t.columns)
}
