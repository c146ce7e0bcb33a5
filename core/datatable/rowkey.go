package datatable

import "strconv"

// KeyFunc derives a row identity. index is the row's position in the
// sequence being keyed, which for visible rows is the display order.
// Keys must be unique within a dataset; collisions are not detected.
type KeyFunc[R any] func(row R, index int) string

func IndexKey[R any]() KeyFunc[R] {
	return func(_ R, index int) string { return strconv.Itoa(index) }
}

// RecordKey keys records by field, then by "id", then by position.
func RecordKey(field string) KeyFunc[Record] {
	return func(row Record, index int) string {
		if field != "" {
			if v, ok := row[field]; ok && v != nil {
				return Stringify(v)
			}
		}
		if v, ok := row["id"]; ok && v != nil {
			return Stringify(v)
		}
		return strconv.Itoa(index)
	}
}

func keysOf[R any](rows []R, key KeyFunc[R]) []string {
	if key == nil {
		key = IndexKey[R]()
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = key(row, i)
	}
	return out
}
