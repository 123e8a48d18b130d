package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexFixture() ([]*Feature, *Index) {
	features := []*Feature{
		{ID: "a", Geometry: MultiPolygon{{square(0, 0, 2, 2)}}},
		{ID: "b", Geometry: MultiPolygon{{square(3, 0, 5, 2)}}},
		// triangle whose bbox overlaps b's but whose shape does not
		{ID: "c", Geometry: MultiPolygon{{Ring{{4, 3}, {6, 3}, {5, 5}}}}},
	}
	return features, NewIndex(features)
}

func TestIndexAt(t *testing.T) {
	_, idx := indexFixture()
	require.Equal(t, 3, idx.Len())

	ft := idx.At(1, 1)
	require.NotNil(t, ft)
	assert.Equal(t, "a", ft.ID)

	ft = idx.At(4, 1)
	require.NotNil(t, ft)
	assert.Equal(t, "b", ft.ID)

	// inside c's bbox but outside the triangle
	assert.Nil(t, idx.At(4.05, 4.9))

	assert.Nil(t, idx.At(10, 10))
}

func TestIndexSearch(t *testing.T) {
	_, idx := indexFixture()
	hits := idx.Search(BBox{MinX: 1, MinY: 1, MaxX: 4, MaxY: 1.5})
	ids := make([]string, 0, len(hits))
	for _, ft := range hits {
		ids = append(ids, ft.ID)
	}
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}
