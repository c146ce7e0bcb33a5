// Package components binds the datatable and inputfield state engines to
// bubbletea. Components translate key presses into engine transitions,
// report changes as messages and draw through package widgets.
package components
