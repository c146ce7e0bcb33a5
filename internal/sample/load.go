package sample

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jask/uikit/core/datatable"
)

var ErrUnsupportedFormat = errors.New("unsupported data format")

// Load reads a user dataset from a .csv or .json file.
func Load(path string) ([]datatable.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err := ReadCSV(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return rows, nil
	case ".json":
		rows, err := ReadJSON(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// ReadCSV treats the first record as field names. Numeric cells become
// float64 and empty cells are left out of the row.
func ReadCSV(r io.Reader) ([]datatable.Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	var rows []datatable.Record
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		row := make(datatable.Record, len(header))
		for i, name := range header {
			if i >= len(rec) || rec[i] == "" {
				continue
			}
			row[name] = csvValue(rec[i])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func csvValue(s string) any {
	// ParseFloat also accepts "NaN" and "Inf", which are names here
	if strings.ContainsAny(s[:1], "0123456789+-.") {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n
		}
	}
	return s
}

// ReadJSON expects an array of objects. JSON null fields are dropped so they
// behave like missing cells.
func ReadJSON(r io.Reader) ([]datatable.Record, error) {
	var raw []map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	rows := make([]datatable.Record, 0, len(raw))
	for _, obj := range raw {
		row := make(datatable.Record, len(obj))
		for k, v := range obj {
			if v != nil {
				row[k] = v
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
