package tui

import (
	"fmt"
	"sort"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshCountsTable rebuilds the per-feature dot count table shown by the
// 'a' key, sorted by descending total so the heaviest units come first.
func (m *Model) refreshCountsTable() {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "name", Width: 24},
	}
	for _, l := range m.layers {
		w := len(l.cat.Label) + 2
		if w < 8 {
			w = 8
		}
		if w > 24 {
			w = 24
		}
		cols = append(cols, table.Column{Title: l.cat.Label, Width: w})
	}
	cols = append(cols, table.Column{Title: "total", Width: 8})

	type entry struct {
		name   string
		counts []int
		total  int
	}
	entries := make([]entry, 0, len(m.features))
	for _, ft := range m.features {
		e := entry{name: ft.Name}
		for _, l := range m.layers {
			n := ft.Counts[l.cat.Column]
			e.counts = append(e.counts, n)
			e.total += n
		}
		entries = append(entries, e)
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].total > entries[j].total })

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		row := table.Row{fmt.Sprintf("%d", i+1), e.name}
		for _, n := range e.counts {
			row = append(row, fmt.Sprintf("%d", n))
		}
		row = append(row, fmt.Sprintf("%d", e.total))
		rows = append(rows, row)
	}
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
