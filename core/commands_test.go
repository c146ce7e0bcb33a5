package core

import "testing"

func TestSearchFiltersByScopeAndDisabled(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Alpha", Scopes: []string{"tab:a"}},
		{ID: "b", Name: "Beta", Scopes: []string{"tab:b"}, Disabled: func(m *Model) (bool, string) { return true, "blocked" }},
	})
	m := NewModel(nil, NewKeyRegistry(nil), reg, Prefs{}, nil)
	resA := reg.Search("", "tab:a", &m)
	if len(resA) != 1 || resA[0].CommandID != "a" {
		t.Fatalf("expected only command a in tab:a, got %+v", resA)
	}
	resB := reg.Search("", "tab:b", &m)
	if len(resB) != 1 || !resB[0].Disabled || resB[0].Reason != "blocked" {
		t.Fatalf("expected disabled command in tab:b, got %+v", resB)
	}
}

func TestSearchRanksNamePrefixFirst(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "x", Name: "Alpha", Description: "save the theme"},
		{ID: "y", Name: "Theme toggle"},
	})
	m := NewModel(nil, NewKeyRegistry(nil), reg, Prefs{}, nil)
	res := reg.Search("the", "tab:a", &m)
	if len(res) != 2 || res[0].CommandID != "y" {
		t.Fatalf("expected prefix match first, got %+v", res)
	}
}

func TestDefaultCommands(t *testing.T) {
	reg := NewCommandRegistry(DefaultCommands())
	m := NewModel(nil, NewKeyRegistry(nil), reg, Prefs{DarkMode: true}, nil)

	res := reg.Search("save", "tab:demo", &m)
	if len(res) != 1 || !res[0].Disabled {
		t.Fatalf("expected save disabled without a config hook, got %+v", res)
	}
	if msg := reg.Execute("prefs.save", &m)().(StatusMsg); msg.Text != "no config file" {
		t.Fatalf("expected disabled reason, got %#v", msg)
	}

	reg.Execute("theme.toggle", &m)
	if m.Prefs().DarkMode {
		t.Fatalf("expected theme toggle to switch to light")
	}
	if msg := reg.Execute("missing", &m)().(StatusMsg); msg.Text != "Unknown command: missing" {
		t.Fatalf("unexpected status %#v", msg)
	}
}

func TestRankCommand(t *testing.T) {
	c := Command{ID: "prefs.save", Name: "Save preferences", Description: "Write theme to the config file"}
	cases := []struct {
		query string
		want  MatchRank
	}{
		{"", TextMatch},
		{"save", NameMatch},
		{"pref", WordMatch},
		{"config", TextMatch},
		{"prefs.", TextMatch},
		{"quit", NoMatch},
	}
	for _, tc := range cases {
		if got := rankCommand(c, tc.query); got != tc.want {
			t.Fatalf("rank %q: got %d want %d", tc.query, got, tc.want)
		}
	}
}

func TestSearchRanksWordMatchBeforeText(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Open catalog", Description: "browse the theme stories"},
		{ID: "b", Name: "Toggle theme"},
		{ID: "c", Name: "Theme reset", Disabled: func(*Model) (bool, string) { return true, "" }},
	})
	m := NewModel(nil, NewKeyRegistry(nil), reg, Prefs{}, nil)
	res := reg.Search("theme", "tab:a", &m)
	if len(res) != 3 {
		t.Fatalf("expected three results, got %+v", res)
	}
	got := []string{res[0].CommandID, res[1].CommandID, res[2].CommandID}
	if got[0] != "c" || got[1] != "b" || got[2] != "a" {
		t.Fatalf("unexpected order %v", got)
	}
	if res[0].Reason != "command is disabled" {
		t.Fatalf("expected default reason, got %q", res[0].Reason)
	}
}
