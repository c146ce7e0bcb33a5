package core

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding ties keys to an action within scopes. A scope ending in "*"
// matches by prefix and a bare "*" (or no scopes) matches everywhere.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

func (b KeyBinding) binding() key.Binding {
	keys := make([]string, 0, len(b.Keys))
	for _, k := range b.Keys {
		keys = append(keys, normalizeKey(k))
	}
	opts := []key.BindingOpt{key.WithKeys(keys...)}
	if len(b.Keys) > 0 && b.Description != "" {
		opts = append(opts, key.WithHelp(b.Keys[0], b.Description))
	}
	return key.NewBinding(opts...)
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// Help lists one entry per action for the footer, most specific scope first.
func (r *KeyRegistry) Help(scope string) []key.Help {
	bindings := r.BindingsForScope(scope)
	slices.SortStableFunc(bindings, func(a, b KeyBinding) int {
		return wildcardScopes(a) - wildcardScopes(b)
	})
	seen := make(map[string]bool, len(bindings))
	out := make([]key.Help, 0, len(bindings))
	for _, b := range bindings {
		if seen[b.Action] || b.Description == "" || len(b.Keys) == 0 {
			continue
		}
		seen[b.Action] = true
		out = append(out, b.binding().Help())
	}
	return out
}

func wildcardScopes(b KeyBinding) int {
	if len(b.Scopes) == 0 || slices.Contains(b.Scopes, "*") {
		return 1
	}
	return 0
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		if key.Matches(normalizedMsg{msg}, b.binding()) {
			return true
		}
	}
	return false
}

// normalizedMsg lowercases the pressed key so bindings are case-insensitive.
type normalizedMsg struct {
	tea.KeyMsg
}

func (n normalizedMsg) String() string { return normalizeKey(n.KeyMsg.String()) }

func normalizeKey(k string) string {
	if strings.TrimSpace(k) == "" {
		return k
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
		if prefix, ok := strings.CutSuffix(s, "*"); ok && strings.HasPrefix(scope, prefix) {
			return true
		}
	}
	return false
}
