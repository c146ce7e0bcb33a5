package datatable

import (
	"maps"
	"slices"
)

// Selection is an immutable set of row keys. The zero value is empty.
type Selection struct {
	keys map[string]struct{}
}

func NewSelection(keys ...string) Selection {
	if len(keys) == 0 {
		return Selection{}
	}
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return Selection{keys: set}
}

func (s Selection) Has(key string) bool {
	_, ok := s.keys[key]
	return ok
}

func (s Selection) Len() int {
	return len(s.keys)
}

// Keys returns the selected keys sorted for stable output.
func (s Selection) Keys() []string {
	return slices.Sorted(maps.Keys(s.keys))
}

func (s Selection) Equal(other Selection) bool {
	if len(s.keys) != len(other.keys) {
		return false
	}
	for k := range s.keys {
		if !other.Has(k) {
			return false
		}
	}
	return true
}

func (s Selection) clone(extra int) map[string]struct{} {
	out := make(map[string]struct{}, len(s.keys)+extra)
	for k := range s.keys {
		out[k] = struct{}{}
	}
	return out
}

// ToggleRow applies a row checkbox click. Single mode always replaces the
// set with {key}, so clicking the selected row keeps it selected. Multiple
// mode flips membership of key.
func ToggleRow(sel Selection, key string, mode SelectionMode) Selection {
	if mode == Single {
		return NewSelection(key)
	}
	next := sel.clone(1)
	if _, ok := next[key]; ok {
		delete(next, key)
	} else {
		next[key] = struct{}{}
	}
	return Selection{keys: next}
}

// ToggleAllVisible applies a select-all click. It is a no-op in single mode.
// When every visible key is already selected they are all removed; otherwise
// all visible keys are added. Keys outside the visible set are kept either way.
func ToggleAllVisible(sel Selection, visible []string, mode SelectionMode) Selection {
	if mode == Single {
		return sel
	}
	next := sel.clone(len(visible))
	if allSelected(sel, visible) {
		for _, k := range visible {
			delete(next, k)
		}
	} else {
		for _, k := range visible {
			next[k] = struct{}{}
		}
	}
	return Selection{keys: next}
}

// AllVisibleSelected drives the select-all control: selection must be
// enabled, at least one row visible, and every visible key selected.
func AllVisibleSelected(selectable bool, sel Selection, visible []string) bool {
	return selectable && len(visible) > 0 && allSelected(sel, visible)
}

func allSelected(sel Selection, visible []string) bool {
	for _, k := range visible {
		if !sel.Has(k) {
			return false
		}
	}
	return true
}

// ResolveRows maps selected keys back to row values by scanning rows, which
// should be the displayed sequence. Selected keys with no matching row are
// dropped; the result follows the order of rows.
func ResolveRows[R any](sel Selection, rows []R, key KeyFunc[R]) []R {
	if key == nil {
		key = IndexKey[R]()
	}
	out := make([]R, 0, sel.Len())
	if sel.Len() == 0 {
		return out
	}
	for i, row := range rows {
		if sel.Has(key(row, i)) {
			out = append(out, row)
		}
	}
	return out
}
