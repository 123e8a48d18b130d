package geom

import "github.com/tidwall/rtree"

// Index is a spatial index over feature bounding boxes, used for
// point-and-ask lookups from the TUI hover and the HTTP feature endpoint.
type Index struct {
	tree rtree.RTreeG[*Feature]
}

func NewIndex(features []*Feature) *Index {
	idx := &Index{}
	for _, ft := range features {
		b := ft.Geometry.BBox()
		idx.tree.Insert([2]float64{b.MinX, b.MinY}, [2]float64{b.MaxX, b.MaxY}, ft)
	}
	return idx
}

// Search returns all features whose bounding boxes intersect the query box.
func (idx *Index) Search(b BBox) []*Feature {
	var out []*Feature
	idx.tree.Search(
		[2]float64{b.MinX, b.MinY},
		[2]float64{b.MaxX, b.MaxY},
		func(min, max [2]float64, ft *Feature) bool {
			out = append(out, ft)
			return true
		},
	)
	return out
}

// At returns the feature containing the point, refining the bbox candidates
// with the exact point-in-polygon test. Returns nil when no feature matches.
func (idx *Index) At(x, y float64) *Feature {
	var hit *Feature
	idx.tree.Search(
		[2]float64{x, y},
		[2]float64{x, y},
		func(min, max [2]float64, ft *Feature) bool {
			if ft.Geometry.Contains(x, y) {
				hit = ft
				return false
			}
			return true
		},
	)
	return hit
}

func (idx *Index) Len() int { return idx.tree.Len() }
