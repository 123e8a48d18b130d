package geom

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// CountsTable maps a feature key to raw (unscaled) values per category
// column, as read from the counts CSV.
type CountsTable struct {
	Columns []string
	Rows    map[string][]float64
}

// LoadCounts reads a CSV with one row per feature key. keyColumn names the
// join key; valueColumns name the numeric columns to keep. Missing or
// unparsable cells become 0, matching how the upstream data treats
// suppressed values.
func LoadCounts(path, keyColumn string, valueColumns []string) (*CountsTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	header := recs[0]
	idxKey := -1
	idxVals := make([]int, len(valueColumns))
	for i := range idxVals {
		idxVals[i] = -1
	}
	for i, h := range header {
		h = strings.TrimSpace(h)
		if strings.EqualFold(h, keyColumn) && idxKey == -1 {
			idxKey = i
		}
		for j, vc := range valueColumns {
			if strings.EqualFold(h, vc) && idxVals[j] == -1 {
				idxVals[j] = i
			}
		}
	}
	if idxKey == -1 {
		return nil, fmt.Errorf("csv: key column %q not found", keyColumn)
	}
	for j, idx := range idxVals {
		if idx == -1 {
			return nil, fmt.Errorf("csv: value column %q not found", valueColumns[j])
		}
	}
	t := &CountsTable{
		Columns: append([]string(nil), valueColumns...),
		Rows:    make(map[string][]float64, len(recs)-1),
	}
	for _, row := range recs[1:] {
		if idxKey >= len(row) {
			continue
		}
		key := strings.TrimSpace(row[idxKey])
		if key == "" {
			continue
		}
		vals := make([]float64, len(idxVals))
		for j, idx := range idxVals {
			if idx >= len(row) {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
			if err != nil || math.IsNaN(v) {
				continue
			}
			vals[j] = v
		}
		t.Rows[key] = vals
	}
	if len(t.Rows) == 0 {
		return nil, errors.New("csv: no usable rows")
	}
	return t, nil
}

// JoinCounts matches table rows to features by Feature.ID and fills
// Feature.Counts with floor(raw/unitPerDot), clamped at zero. It returns
// how many features had no row and how many rows had no feature; neither
// is fatal.
func JoinCounts(features []*Feature, table *CountsTable, unitPerDot float64) (unmatchedFeatures, unmatchedRows int, err error) {
	if unitPerDot <= 0 {
		return 0, 0, fmt.Errorf("unit per dot must be positive, got %g", unitPerDot)
	}
	used := make(map[string]bool, len(table.Rows))
	for _, ft := range features {
		vals, ok := table.Rows[ft.ID]
		if !ok {
			unmatchedFeatures++
			continue
		}
		used[ft.ID] = true
		if ft.Counts == nil {
			ft.Counts = make(map[string]int, len(table.Columns))
		}
		for j, col := range table.Columns {
			n := int(math.Floor(vals[j] / unitPerDot))
			if n < 0 {
				n = 0
			}
			ft.Counts[col] = n
		}
	}
	for key := range table.Rows {
		if !used[key] {
			unmatchedRows++
		}
	}
	return unmatchedFeatures, unmatchedRows, nil
}
