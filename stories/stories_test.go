package stories

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/uikit/components"
	"github.com/jask/uikit/core/datatable"
)

func build(t *testing.T, id string) Component {
	t.Helper()
	s, err := Lookup(id)
	require.NoError(t, err)
	c, err := Build(s, nil)
	require.NoError(t, err)
	return c
}

func TestCatalogOrder(t *testing.T) {
	ids := make([]string, 0, len(All()))
	for _, s := range All() {
		ids = append(ids, s.ID)
	}
	require.Equal(t, []string{
		"datatable/default", "datatable/loading", "datatable/empty",
		"inputfield/playground", "inputfield/invalid", "inputfield/password",
	}, ids)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("button/primary")
	require.ErrorIs(t, err, ErrUnknownStory)
	_, err = Build(Story{ID: "x"}, nil)
	require.ErrorIs(t, err, ErrUnknownStory)
}

func TestBuildReturnsFreshInstances(t *testing.T) {
	a := build(t, "datatable/default").(*components.DataTable[datatable.Record])
	b := build(t, "datatable/default").(*components.DataTable[datatable.Record])
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	require.Equal(t, 3, a.Table().Selection().Len())
	require.Zero(t, b.Table().Selection().Len())
}

func TestEmptyStoryShowsMessage(t *testing.T) {
	view := ansi.Strip(build(t, "datatable/empty").View(60, 6))
	require.Contains(t, view, "Nothing here yet")
}

func TestLoadingStoryShowsSkeleton(t *testing.T) {
	c := build(t, "datatable/loading").(*components.DataTable[datatable.Record])
	require.True(t, c.Table().Loading())
	view := ansi.Strip(c.View(60, 8))
	require.Equal(t, 3, strings.Count(view, "\n░"))
}

func TestInputStories(t *testing.T) {
	invalid := ansi.Strip(build(t, "inputfield/invalid").View(40, 6))
	require.Contains(t, invalid, "Email")
	require.Contains(t, invalid, "Please enter a valid email.")

	pw := build(t, "inputfield/password").(*components.InputField)
	require.False(t, pw.Field().ShowPasswordToggle())
	pw.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("secret")})
	require.Equal(t, "secret", pw.Value())
	require.NotContains(t, ansi.Strip(pw.View(40, 6)), "secret")

	play := build(t, "inputfield/playground").(*components.InputField)
	require.Contains(t, ansi.Strip(play.View(40, 6)), "Helper text")
}
