package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikeasilva/dot-density-map/internal/dots"
	"github.com/mikeasilva/dot-density-map/internal/geom"
)

func fixtureModel(t *testing.T) Model {
	t.Helper()
	features := []*geom.Feature{
		{
			ID:       "37001",
			Name:     "Alamance",
			Geometry: geom.MultiPolygon{{geom.Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}}}},
			Counts:   map[string]int{"jobs": 12, "homes": 6},
		},
	}
	results := dots.GenerateAll(features, []string{"jobs", "homes"}, dots.Regular, 0, 1)
	require.NoError(t, results[0].Err)
	cats := []Category{
		{Column: "jobs", Label: "Jobs", Color: "#E24A33"},
		{Column: "homes", Label: "Homes", Color: "#348ABD"},
	}
	return New(features, results, cats, dots.Regular, 0, 1)
}

func TestNewBinsDotsIntoLayers(t *testing.T) {
	m := fixtureModel(t)
	require.Len(t, m.layers, 2)
	assert.Len(t, m.layers[0].dots, 12)
	assert.Len(t, m.layers[1].dots, 6)
	assert.Equal(t, geom.BBox{MinX: 0, MinY: 0, MaxX: 4, MaxY: 4}, m.bbox)
}

func TestRenderMapShape(t *testing.T) {
	m := fixtureModel(t)
	out := m.renderMap(40, 12)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 12)
	// something must have been drawn
	assert.NotEqual(t, strings.Repeat(" ", 40), lines[6])
}

func TestCoordinateRoundTrip(t *testing.T) {
	m := fixtureModel(t)
	lon, lat, ok := m.cellToLonLat(20, 6, 40, 12)
	require.True(t, ok)
	assert.InDelta(t, 2.0, lon, 0.2)
	assert.InDelta(t, 2.0, lat, 0.5)
}
