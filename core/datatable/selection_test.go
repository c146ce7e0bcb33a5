package datatable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToggleRowMultipleIsItsOwnInverse(t *testing.T) {
	start := NewSelection("1", "4")
	once := ToggleRow(start, "2", Multiple)
	require.True(t, once.Has("2"))
	twice := ToggleRow(once, "2", Multiple)
	require.True(t, twice.Equal(start))

	removed := ToggleRow(start, "4", Multiple)
	require.Equal(t, []string{"1"}, removed.Keys())
	require.Equal(t, []string{"1", "4"}, start.Keys(), "input selection is not modified")
}

func TestToggleRowSingleReplaces(t *testing.T) {
	sel := ToggleRow(NewSelection("1", "2", "3"), "7", Single)
	sel = ToggleRow(sel, "9", Single)
	require.Equal(t, []string{"9"}, sel.Keys())

	again := ToggleRow(sel, "9", Single)
	require.Equal(t, []string{"9"}, again.Keys(), "re-click keeps the row selected")
}

func TestToggleAllVisibleRoundTrip(t *testing.T) {
	visible := []string{"1", "2", "3"}
	start := NewSelection("2", "outside")

	all := ToggleAllVisible(start, visible, Multiple)
	require.Equal(t, []string{"1", "2", "3", "outside"}, all.Keys())
	require.True(t, AllVisibleSelected(true, all, visible))

	back := ToggleAllVisible(all, visible, Multiple)
	require.Equal(t, []string{"outside"}, back.Keys())

	fromEmpty := ToggleAllVisible(ToggleAllVisible(Selection{}, visible, Multiple), visible, Multiple)
	require.Equal(t, 0, fromEmpty.Len())
}

func TestToggleAllVisibleSingleIsNoop(t *testing.T) {
	start := NewSelection("1")
	got := ToggleAllVisible(start, []string{"1", "2"}, Single)
	require.True(t, got.Equal(start))
}

func TestAllVisibleSelected(t *testing.T) {
	sel := NewSelection("1", "2")
	require.True(t, AllVisibleSelected(true, sel, []string{"1", "2"}))
	require.False(t, AllVisibleSelected(false, sel, []string{"1", "2"}), "selection disabled")
	require.False(t, AllVisibleSelected(true, sel, nil), "no visible rows")
	require.False(t, AllVisibleSelected(true, sel, []string{"1", "3"}))
}

func TestResolveRowsDropsMissingAndFollowsDisplayOrder(t *testing.T) {
	rows := []Record{{"id": 3}, {"id": 1}, {"id": 2}}
	sel := NewSelection("1", "3", "99")
	got := ResolveRows(sel, rows, RecordKey("id"))
	require.Equal(t, []Record{{"id": 3}, {"id": 1}}, got)
}

func TestRecordKeyFallbacks(t *testing.T) {
	key := RecordKey("email")
	require.Equal(t, "a@x", key(Record{"email": "a@x", "id": 1}, 0))
	require.Equal(t, "7", key(Record{"id": 7}, 0))
	require.Equal(t, "5", key(Record{"name": "n"}, 5))
	require.Equal(t, "2", RecordKey("")(Record{}, 2))
}

func TestParseSelectionMode(t *testing.T) {
	m, err := ParseSelectionMode("single")
	require.NoError(t, err)
	require.Equal(t, Single, m)

	m, err = ParseSelectionMode("")
	require.NoError(t, err)
	require.Equal(t, Multiple, m)

	_, err = ParseSelectionMode("many")
	require.ErrorIs(t, err, ErrUnknownSelectionMode)
}
