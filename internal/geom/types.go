package geom

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Ring is a closed sequence of vertices. The closing edge from the last
// vertex back to the first is implicit; a duplicated closing vertex is
// tolerated and dropped on normalization.
type Ring [][2]float64

// Polygon holds the rings of one polygon (first outer, following holes).
type Polygon []Ring

// MultiPolygon is a disjoint union of polygons sharing one attribute record.
type MultiPolygon []Polygon

// Feature is one mapped unit: geometry plus its attribute record. Counts
// holds the already-scaled dot count per category, filled by JoinCounts.
type Feature struct {
	ID       string
	Name     string
	Geometry MultiPolygon
	Props    map[string]any
	Counts   map[string]int
}

func (b *BBox) ExtendPoint(x, y float64) {
	if x < b.MinX {
		b.MinX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

func (b *BBox) Extend(o BBox) {
	b.ExtendPoint(o.MinX, o.MinY)
	b.ExtendPoint(o.MaxX, o.MaxY)
}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

func (b BBox) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}
