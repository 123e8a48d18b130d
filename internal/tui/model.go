package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mikeasilva/dot-density-map/internal/dots"
	"github.com/mikeasilva/dot-density-map/internal/geom"
)

// Category describes one dot layer: the counts column it came from, the
// label shown in the legend, and the dot color.
type Category struct {
	Column string
	Label  string
	Color  string
}

// layer holds the drawable state for one category.
type layer struct {
	cat     Category
	style   lipgloss.Style
	dots    [][2]float64
	visible bool
}

type Model struct {
	width  int
	height int

	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// Data
	features []*geom.Feature
	index    *geom.Index
	layers   []layer
	bbox     geom.BBox

	// regeneration inputs (r key, random method only)
	method  dots.Method
	seed    int64
	workers int

	// last rendered map size (for inspect)
	mapW int
	mapH int

	// layer visibility
	showPolys bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64
	hoverName   string

	// per-feature counts table
	showCounts bool
	tbl        table.Model
}

// New builds the viewer over an already-generated batch. Results must be in
// feature order (as GenerateAll returns them).
func New(features []*geom.Feature, results []dots.Result, cats []Category, method dots.Method, seed int64, workers int) Model {
	m := Model{
		helpVisible: true,
		zoom:        1.0,
		status:      "dotmap ready",
		features:    features,
		index:       geom.NewIndex(features),
		method:      method,
		seed:        seed,
		workers:     workers,
		showPolys:   true,
	}
	for _, c := range cats {
		m.layers = append(m.layers, layer{
			cat:     c,
			style:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)),
			visible: true,
		})
	}
	m.setResults(results)
	if len(features) > 0 {
		m.bbox = features[0].Geometry.BBox()
		for _, ft := range features[1:] {
			m.bbox.Extend(ft.Geometry.BBox())
		}
	}
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshCountsTable()
	return m
}

// setResults rebins generated dots into the category layers.
func (m *Model) setResults(results []dots.Result) {
	byCat := make(map[string][][2]float64)
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		for _, d := range r.Dots {
			byCat[d.Category] = append(byCat[d.Category], [2]float64{d.X, d.Y})
		}
	}
	for i := range m.layers {
		m.layers[i].dots = byCat[m.layers[i].cat.Column]
	}
	if failed > 0 {
		m.status = fmt.Sprintf("%d feature(s) failed generation", failed)
	}
}

func (m Model) Init() tea.Cmd { return nil }
