package datatable

import "slices"

const (
	// SkeletonRows is the fixed number of placeholder rows shown while loading.
	SkeletonRows = 3

	DefaultEmptyMessage = "No data to display"
)

// Options is the construction surface of a Table. Data and Columns belong to
// the caller and are never mutated.
type Options[R any] struct {
	Data          []R
	Columns       []Column[R]
	Loading       bool
	Selectable    bool
	SelectionMode SelectionMode
	RowKey        KeyFunc[R]
	EmptyMessage  string
	// OnRowSelect receives the selected rows, in display order, every time a
	// transition changes the selection set.
	OnRowSelect func(rows []R)
	Comparator  *Comparator
}

// Table owns the sort directive and selection set for one table instance.
type Table[R any] struct {
	data       []R
	columns    []Column[R]
	loading    bool
	selectable bool
	mode       SelectionMode
	rowKey     KeyFunc[R]
	emptyMsg   string
	onSelect   func([]R)
	cmp        *Comparator

	sort     SortDirective
	selected Selection
}

func New[R any](opts Options[R]) *Table[R] {
	t := &Table[R]{
		data:       opts.Data,
		columns:    slices.Clone(opts.Columns),
		loading:    opts.Loading,
		selectable: opts.Selectable,
		mode:       opts.SelectionMode,
		rowKey:     opts.RowKey,
		emptyMsg:   opts.EmptyMessage,
		onSelect:   opts.OnRowSelect,
		cmp:        opts.Comparator,
	}
	if t.rowKey == nil {
		t.rowKey = IndexKey[R]()
	}
	if t.emptyMsg == "" {
		t.emptyMsg = DefaultEmptyMessage
	}
	if t.cmp == nil {
		t.cmp = NewComparator(defaultLocale)
	}
	return t
}

func (t *Table[R]) Columns() []Column[R] { return slices.Clone(t.columns) }
func (t *Table[R]) Sort() SortDirective   { return t.sort }
func (t *Table[R]) Selection() Selection  { return t.selected }
func (t *Table[R]) Loading() bool         { return t.loading }
func (t *Table[R]) Selectable() bool      { return t.selectable }
func (t *Table[R]) Mode() SelectionMode   { return t.mode }
func (t *Table[R]) EmptyMessage() string  { return t.emptyMsg }

// SetData replaces the caller's rows, for example after upstream filtering.
// Sort directive and selection are kept.
func (t *Table[R]) SetData(rows []R) {
	t.data = rows
}

func (t *Table[R]) SetLoading(loading bool) {
	t.loading = loading
}

// Rows returns the visible rows in display order.
func (t *Table[R]) Rows() []R {
	return DisplayOrder(t.data, t.columns, t.sort, t.cmp)
}

// VisibleKeys returns the keys of Rows, keyed by display position.
func (t *Table[R]) VisibleKeys() []string {
	return keysOf(t.Rows(), t.rowKey)
}

func (t *Table[R]) IsSelected(key string) bool {
	return t.selected.Has(key)
}

func (t *Table[R]) AllVisibleSelected() bool {
	return AllVisibleSelected(t.selectable, t.selected, t.VisibleKeys())
}

func (t *Table[R]) SelectedRows() []R {
	return ResolveRows(t.selected, t.Rows(), t.rowKey)
}

// ClickHeader applies a header click and reports whether the directive
// changed. Clicks are ignored while loading.
func (t *Table[R]) ClickHeader(columnKey string) bool {
	if t.loading {
		return false
	}
	col, ok := findColumn(t.columns, columnKey)
	if !ok {
		return false
	}
	next := t.sort.Toggle(col.Key, col.Sortable)
	if next == t.sort {
		return false
	}
	t.sort = next
	return true
}

// ToggleRow applies a row selection click and reports whether the selection
// changed.
func (t *Table[R]) ToggleRow(key string) bool {
	if !t.selectable || t.loading {
		return false
	}
	return t.update(ToggleRow(t.selected, key, t.mode))
}

// ToggleAllVisible applies a select-all click and reports whether the
// selection changed.
func (t *Table[R]) ToggleAllVisible() bool {
	if !t.selectable || t.loading {
		return false
	}
	return t.update(ToggleAllVisible(t.selected, t.VisibleKeys(), t.mode))
}

func (t *Table[R]) update(next Selection) bool {
	if next.Equal(t.selected) {
		return false
	}
	t.selected = next
	if t.onSelect != nil {
		t.onSelect(t.SelectedRows())
	}
	return true
}
