// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing, message contracts, command and key registries
// - display preferences (theme, input size) shared by every tab
// - tab and pane policy (pane host focus cycling, generated tab layouts)
//
// Not allowed here:
// - concrete screen/modal rendering implementations
// - low-level widget rendering primitives
// - component state machines (see core/datatable and core/inputfield)
package core
