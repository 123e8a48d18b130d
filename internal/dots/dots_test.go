package dots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikeasilva/dot-density-map/internal/geom"
)

func square(x0, y0, x1, y1 float64) geom.Ring {
	return geom.Ring{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func unitSquare() geom.MultiPolygon {
	return geom.MultiPolygon{{square(0, 0, 1, 1)}}
}

func TestGenerateCountExact(t *testing.T) {
	g := unitSquare()
	for _, method := range []Method{Regular, Random} {
		for _, count := range []int{1, 2, 5, 17, 100, 333} {
			d, err := Generate(g, count, method, Options{Seed: 42})
			require.NoError(t, err, "method=%s count=%d", method, count)
			assert.Len(t, d, count, "method=%s count=%d", method, count)
		}
	}
}

func TestGenerateDotsInsidePolygon(t *testing.T) {
	// outer square with a hole: no dot may land in the hole
	g := geom.MultiPolygon{{square(0, 0, 4, 4), square(1, 1, 3, 3)}}
	for _, method := range []Method{Regular, Random} {
		d, err := Generate(g, 200, method, Options{Seed: 7})
		require.NoError(t, err)
		require.Len(t, d, 200)
		for _, dot := range d {
			assert.True(t, g.Contains(dot.X, dot.Y),
				"method=%s dot (%g, %g) outside geometry", method, dot.X, dot.Y)
		}
	}
}

func TestGenerateZeroCount(t *testing.T) {
	for _, method := range []Method{Regular, Random} {
		d, err := Generate(unitSquare(), 0, method, Options{})
		require.NoError(t, err)
		assert.Empty(t, d)
	}
}

func TestGenerateDegeneratePolygon(t *testing.T) {
	// three collinear vertices: valid ring shape, zero area
	flat := geom.MultiPolygon{{geom.Ring{{0, 0}, {1, 0}, {2, 0}}}}
	for _, method := range []Method{Regular, Random} {
		d, err := Generate(flat, 50, method, Options{Seed: 3})
		require.NoError(t, err)
		assert.Empty(t, d)
	}
}

func TestGenerateInvalidArguments(t *testing.T) {
	_, err := Generate(unitSquare(), -1, Regular, Options{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	twoVertex := geom.MultiPolygon{{geom.Ring{{0, 0}, {1, 1}}}}
	_, err = Generate(twoVertex, 5, Random, Options{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// a duplicated closing vertex does not count toward the minimum
	closedPair := geom.MultiPolygon{{geom.Ring{{0, 0}, {1, 1}, {0, 0}}}}
	_, err = Generate(closedPair, 5, Random, Options{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRandomSeededDeterminism(t *testing.T) {
	g := geom.MultiPolygon{{square(0, 0, 3, 2)}}
	a, err := Generate(g, 64, Random, Options{Seed: 1234})
	require.NoError(t, err)
	b, err := Generate(g, 64, Random, Options{Seed: 1234})
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Generate(g, 64, Random, Options{Seed: 1235})
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestRegularDeterminism(t *testing.T) {
	g := geom.MultiPolygon{{geom.Ring{{0, 0}, {5, 1}, {4, 6}, {1, 4}}}}
	a, err := Generate(g, 40, Regular, Options{Seed: 1})
	require.NoError(t, err)
	b, err := Generate(g, 40, Regular, Options{Seed: 99})
	require.NoError(t, err)
	// the grid method ignores the seed entirely
	assert.Equal(t, a, b)
}

func TestGenerateCategoryLabel(t *testing.T) {
	d, err := Generate(unitSquare(), 10, Random, Options{Seed: 5, Category: "retail"})
	require.NoError(t, err)
	for _, dot := range d {
		assert.Equal(t, "retail", dot.Category)
	}
}

func TestMultiPolygonDistribution(t *testing.T) {
	// 1x1 and 2x2 squares: dots should land in both, summing exactly
	g := geom.MultiPolygon{
		{square(0, 0, 1, 1)},
		{square(10, 10, 12, 12)},
	}
	for _, method := range []Method{Regular, Random} {
		d, err := Generate(g, 25, method, Options{Seed: 9})
		require.NoError(t, err)
		require.Len(t, d, 25)
		small, large := 0, 0
		for _, dot := range d {
			if dot.X <= 1 {
				small++
			} else {
				large++
			}
		}
		// area shares are 1/5 and 4/5
		assert.Equal(t, 5, small, "method=%s", method)
		assert.Equal(t, 20, large, "method=%s", method)
	}
}

func TestMultiPolygonZeroAreaPart(t *testing.T) {
	g := geom.MultiPolygon{
		{square(0, 0, 2, 2)},
		{geom.Ring{{5, 5}, {6, 5}, {7, 5}}}, // zero-area sliver
	}
	d, err := Generate(g, 30, Random, Options{Seed: 2})
	require.NoError(t, err)
	assert.Len(t, d, 30)
	for _, dot := range d {
		assert.True(t, dot.X <= 2, "dot (%g, %g) placed in the sliver", dot.X, dot.Y)
	}
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("regular")
	require.NoError(t, err)
	assert.Equal(t, Regular, m)
	m, err = ParseMethod("random")
	require.NoError(t, err)
	assert.Equal(t, Random, m)
	_, err = ParseMethod("hexbin")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
