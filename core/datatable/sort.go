package datatable

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator orders cell values. Strings compare by locale collation; a
// Comparator wraps a collate.Collator and is not safe for concurrent use.
type Comparator struct {
	collator *collate.Collator
}

func NewComparator(tag language.Tag) *Comparator {
	return &Comparator{collator: collate.New(tag)}
}

// Compare is a three-way comparison in the given direction. Descending is
// the negation of ascending, null handling included: nulls sort first when
// ascending and last when descending.
func (c *Comparator) Compare(a, b any, dir SortDirection) int {
	cmp := c.compareAscending(a, b)
	if dir == Descending {
		return -cmp
	}
	return cmp
}

func (c *Comparator) compareAscending(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if na, ok := asNumber(a); ok {
		if nb, ok := asNumber(b); ok {
			return compareFloat(na, nb)
		}
	}
	return c.collator.CompareString(Stringify(a), Stringify(b))
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// DisplayOrder returns rows in the order the directive asks for. When the
// directive names no known column the input slice is returned as is;
// otherwise a sorted copy is returned and rows is left untouched. A nil
// comparator uses the root collation.
func DisplayOrder[R any](rows []R, columns []Column[R], directive SortDirective, cmp *Comparator) []R {
	if !directive.IsSorted() {
		return rows
	}
	col, ok := findColumn(columns, directive.ColumnKey)
	if !ok {
		return rows
	}
	if cmp == nil {
		cmp = NewComparator(defaultLocale)
	}
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b R) int {
		return cmp.Compare(col.Value(a), col.Value(b), directive.Direction)
	})
	return out
}
