package sample

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/jask/uikit/core/datatable"
)

var (
	firstNames = []string{"Nishikant", "Abhijeet", "Nayan", "Ada", "Émile", "Zoë", "Örjan", "Priya", "Tomás", "Ingrid", "Kenji", "Lucía"}
	lastNames  = []string{"Kshirsagar", "Deshmukh", "Lovelace", "Zola", "Åberg", "Nakamura", "Ortiz", "Shah"}
	roles      = []string{"Admin", "Editor", "Viewer", "Guest"}
)

// Generate builds n users from seed. Roughly one in ten has no email, so
// the table has nulls to sort.
func Generate(n int, seed uint64) []datatable.Record {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	rows := make([]datatable.Record, 0, n)
	for i := 0; i < n; i++ {
		first := firstNames[r.IntN(len(firstNames))]
		last := lastNames[r.IntN(len(lastNames))]
		id, _ := uuid.NewRandomFromReader(seededReader{r})
		row := datatable.Record{
			"id":   id.String(),
			"name": first + " " + last,
			"role": roles[r.IntN(len(roles))],
		}
		if r.IntN(10) > 0 {
			row["email"] = fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), r.IntN(1000))
		}
		rows = append(rows, row)
	}
	return rows
}

// seededReader feeds uuid from the seeded source so generated ids repeat
// across runs with the same seed.
type seededReader struct{ r *rand.Rand }

func (rr seededReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(rr.r.Uint32())
	}
	return len(p), nil
}
