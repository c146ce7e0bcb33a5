package datatable

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSelectionMode = errors.New("unknown selection mode")

type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

func (d SortDirection) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return fmt.Sprintf("unknown(%d)", int(d))
	}
}

func (d SortDirection) Reverse() SortDirection {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// SortDirective names the column driving display order. An empty ColumnKey
// means the rows keep their original order.
type SortDirective struct {
	ColumnKey string
	Direction SortDirection
}

func (s SortDirective) IsSorted() bool {
	return s.ColumnKey != ""
}

// Toggle applies a header click. Non-sortable headers leave the directive
// untouched, a new column starts ascending, and the active column flips
// between ascending and descending without ever returning to unsorted.
func (s SortDirective) Toggle(columnKey string, sortable bool) SortDirective {
	if !sortable || columnKey == "" {
		return s
	}
	if s.ColumnKey == columnKey {
		return SortDirective{ColumnKey: columnKey, Direction: s.Direction.Reverse()}
	}
	return SortDirective{ColumnKey: columnKey, Direction: Ascending}
}

// State reports how a header should announce itself: "ascending",
// "descending" or "none".
func (s SortDirective) State(columnKey string) string {
	if !s.IsSorted() || s.ColumnKey != columnKey {
		return "none"
	}
	return s.Direction.String()
}

type SelectionMode int

const (
	Multiple SelectionMode = iota
	Single
)

func (m SelectionMode) String() string {
	switch m {
	case Single:
		return "single"
	case Multiple:
		return "multiple"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

func ParseSelectionMode(s string) (SelectionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "multiple", "multi":
		return Multiple, nil
	case "single":
		return Single, nil
	default:
		return Multiple, fmt.Errorf("%w: %q", ErrUnknownSelectionMode, s)
	}
}

// Column describes one table column. Field reads the cell value from a row;
// a nil Field reads every cell as null.
type Column[R any] struct {
	Key      string
	Title    string
	Field    func(R) any
	Sortable bool
}

func (c Column[R]) Value(row R) any {
	if c.Field == nil {
		return nil
	}
	return c.Field(row)
}

func findColumn[R any](columns []Column[R], key string) (Column[R], bool) {
	for _, c := range columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column[R]{}, false
}

// Record is a row with no fixed shape. Missing fields read as nil.
type Record map[string]any

func (r Record) Get(field string) any {
	if r == nil {
		return nil
	}
	return r[field]
}

// Field returns a column accessor reading one Record field.
func Field(name string) func(Record) any {
	return func(r Record) any { return r.Get(name) }
}
