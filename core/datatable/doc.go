// Package datatable holds the state engine behind the selectable, sortable data table.
//
// Allowed here:
// - deriving display order from a sort directive
// - selection set transitions and the select-all derived state
// - the render-independent view projection consumed by widgets
//
// Not allowed here:
// - key handling, styling, or any bubbletea types
//
// A Table is owned by a single event loop. Transitions are synchronous and the
// package does no locking.
package datatable
