// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, popup overlay compositor)
// - drawing the data table and input field from a precomputed view
//
// Not allowed here:
// - key handling, selection or sort transitions, or page policy
package widgets
