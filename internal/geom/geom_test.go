package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func square(x0, y0, x1, y1 float64) Ring {
	return Ring{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func TestRingArea(t *testing.T) {
	tests := []struct {
		name string
		ring Ring
		want float64
	}{
		{"unit square ccw", square(0, 0, 1, 1), 1},
		{"unit square cw", Ring{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, -1},
		{"closed ring", Ring{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 0}}, 4},
		{"degenerate line", Ring{{0, 0}, {1, 0}, {2, 0}}, 0},
		{"too few vertices", Ring{{0, 0}, {1, 1}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.ring.Area(), 1e-12)
		})
	}
}

func TestPolygonArea(t *testing.T) {
	holed := Polygon{square(0, 0, 4, 4), square(1, 1, 3, 3)}
	assert.InDelta(t, 12.0, holed.Area(), 1e-12)

	// hole winding direction must not matter
	cwHole := Polygon{square(0, 0, 4, 4), Ring{{1, 1}, {1, 3}, {3, 3}, {3, 1}}}
	assert.InDelta(t, 12.0, cwHole.Area(), 1e-12)

	assert.Equal(t, 0.0, Polygon{}.Area())
}

func TestMultiPolygonArea(t *testing.T) {
	m := MultiPolygon{
		{square(0, 0, 1, 1)},
		{square(10, 10, 12, 12)},
	}
	assert.InDelta(t, 5.0, m.Area(), 1e-12)
}

func TestPolygonContains(t *testing.T) {
	p := Polygon{square(0, 0, 4, 4), square(1, 1, 3, 3)}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside outer outside hole", 0.5, 0.5, true},
		{"inside hole", 2, 2, false},
		{"outside", 5, 5, false},
		{"on outer edge", 2, 0, true},
		{"on outer corner", 0, 0, true},
		{"on hole edge counts as inside", 1, 2, true},
		{"just inside outer edge", 3.999999, 2e-7, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Contains(tt.x, tt.y))
		})
	}
}

func TestContainsDeterministic(t *testing.T) {
	// same point, same polygon: answer may not flip between calls
	p := Polygon{Ring{{0, 0}, {3, 1}, {1, 4}}}
	for i := 0; i < 100; i++ {
		assert.True(t, p.Contains(1.5, 1.5))
		assert.False(t, p.Contains(2.9, 3.9))
	}
}

func TestMultiPolygonContains(t *testing.T) {
	m := MultiPolygon{
		{square(0, 0, 1, 1)},
		{square(10, 10, 12, 12)},
	}
	assert.True(t, m.Contains(0.5, 0.5))
	assert.True(t, m.Contains(11, 11))
	assert.False(t, m.Contains(5, 5))
}

func TestBBox(t *testing.T) {
	m := MultiPolygon{
		{square(0, 0, 1, 1)},
		{square(10, 10, 12, 12)},
	}
	b := m.BBox()
	assert.Equal(t, BBox{MinX: 0, MinY: 0, MaxX: 12, MaxY: 12}, b)
	assert.True(t, b.Contains(6, 6))
	assert.False(t, b.Contains(13, 6))
	assert.Equal(t, 12.0, b.Width())
}
