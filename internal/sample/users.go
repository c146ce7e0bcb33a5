// Package sample holds the user dataset behind the demo and stories, plus
// loading and filtering helpers for it.
package sample

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jask/uikit/core/datatable"
)

// Columns are the name/email/role columns used across the demo and stories.
func Columns() []datatable.Column[datatable.Record] {
	return []datatable.Column[datatable.Record]{
		{Key: "name", Title: "Name", Field: datatable.Field("name"), Sortable: true},
		{Key: "email", Title: "Email", Field: datatable.Field("email"), Sortable: true},
		{Key: "role", Title: "Role", Field: datatable.Field("role")},
	}
}

func StoryUsers() []datatable.Record {
	return []datatable.Record{
		{"id": 1, "name": "Nishikant", "email": "Nishikantk12@.com", "role": "Admin"},
		{"id": 2, "name": "Abhijeet", "email": "abhijeett18@.com", "role": "Editor"},
		{"id": 3, "name": "Nayan Kshirsagar", "email": "nayankshirsagar911@.com", "role": "Viewer"},
	}
}

func DemoUsers() []datatable.Record {
	return []datatable.Record{
		{"id": 1, "name": "Nishikant K", "email": "nishikant123@.com", "role": "Admin"},
		{"id": 2, "name": "Abhijeet D", "email": "abhijeet18@.com", "role": "Editor"},
		{"id": 3, "name": "Nayan K", "email": "nayankshirsagar111@.com", "role": "Viewer"},
	}
}

// NewUser builds a guest row with a fresh id. It has no email, so it shows
// an empty cell and sorts as a null.
func NewUser(name string) datatable.Record {
	return datatable.Record{
		"id":   uuid.NewString(),
		"name": strings.TrimSpace(name),
		"role": "Guest",
	}
}

// Names joins the name field of rows, or "None" when rows is empty.
func Names(rows []datatable.Record) string {
	if len(rows) == 0 {
		return "None"
	}
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, datatable.Stringify(r.Get("name")))
	}
	return strings.Join(names, ", ")
}
