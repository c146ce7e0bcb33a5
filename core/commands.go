package core

import (
	"cmp"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Command is a palette entry. Scopes limit where it shows up; Disabled may
// explain why it cannot run right now.
type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

func (c Command) availability(m *Model) (bool, string) {
	if c.Disabled == nil {
		return true, ""
	}
	disabled, reason := c.Disabled(m)
	if disabled && reason == "" {
		reason = "command is disabled"
	}
	return !disabled, reason
}

// MatchRank says how well a query matched a command. Higher is better.
type MatchRank int

const (
	NoMatch MatchRank = iota
	TextMatch
	WordMatch
	NameMatch
)

// rankCommand matches q against the command name first, then the start of
// any name word, then the name, description and id as plain text. An empty
// query matches everything at TextMatch.
func rankCommand(c Command, q string) MatchRank {
	if q == "" {
		return TextMatch
	}
	name := strings.ToLower(c.Name)
	if strings.HasPrefix(name, q) {
		return NameMatch
	}
	for _, w := range strings.Fields(name) {
		if strings.HasPrefix(w, q) {
			return WordMatch
		}
	}
	haystack := name + " " + strings.ToLower(c.Description) + " " + strings.ToLower(c.ID)
	if strings.Contains(haystack, q) {
		return TextMatch
	}
	return NoMatch
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
	Rank      MatchRank
}

// compareResults puts better matches first, runnable commands before
// disabled ones, then sorts by name.
func compareResults(a, b CommandResult) int {
	if c := cmp.Compare(b.Rank, a.Rank); c != 0 {
		return c
	}
	if a.Disabled != b.Disabled {
		if a.Disabled {
			return 1
		}
		return -1
	}
	return cmp.Compare(a.Name, b.Name)
}

type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: make(map[string]Command, len(cmds))}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

// Register adds c, replacing any command with the same ID. Commands without
// an ID are ignored.
func (r *CommandRegistry) Register(c Command) {
	if c.ID != "" {
		r.commands[c.ID] = c
	}
}

func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]CommandResult, 0, len(r.commands))
	for _, c := range r.commands {
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		rank := rankCommand(c, q)
		if rank == NoMatch {
			continue
		}
		ok, reason := c.availability(m)
		results = append(results, CommandResult{
			CommandID: c.ID,
			Name:      c.Name,
			Desc:      c.Description,
			Disabled:  !ok,
			Reason:    reason,
			Rank:      rank,
		})
	}
	slices.SortFunc(results, compareResults)
	return results
}

// Execute runs the command, or reports why it cannot.
func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, found := r.commands[id]
	if !found {
		return StatusCmd("Unknown command: " + id)
	}
	ok, reason := c.availability(m)
	m.Logger.Debug("command", "id", id, "runnable", ok)
	switch {
	case !ok:
		return StatusCmd(reason)
	case c.Execute == nil:
		return nil
	default:
		return c.Execute(m)
	}
}
