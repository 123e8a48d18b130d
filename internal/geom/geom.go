package geom

import "math"

// onEdgeEps merges a point onto a ring segment when the perpendicular
// cross product is closer to zero than this. Coordinates are assumed to be
// in degrees or projected units of comparable magnitude.
const onEdgeEps = 1e-12

// normalized returns the ring without a duplicated closing vertex.
func (r Ring) normalized() Ring {
	if n := len(r); n > 1 && r[0] == r[n-1] {
		return r[:n-1]
	}
	return r
}

// Area returns the signed shoelace area of the ring: positive for
// counter-clockwise winding, negative for clockwise.
func (r Ring) Area() float64 {
	pts := r.normalized()
	n := len(pts)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += pts[i][0]*pts[j][1] - pts[j][0]*pts[i][1]
	}
	return sum / 2
}

func (r Ring) BBox() BBox {
	if len(r) == 0 {
		return BBox{}
	}
	b := BBox{MinX: r[0][0], MinY: r[0][1], MaxX: r[0][0], MaxY: r[0][1]}
	for _, p := range r[1:] {
		b.ExtendPoint(p[0], p[1])
	}
	return b
}

// Area returns the absolute area of the outer ring minus its holes,
// clamped at zero.
func (p Polygon) Area() float64 {
	if len(p) == 0 {
		return 0
	}
	a := math.Abs(p[0].Area())
	for _, hole := range p[1:] {
		a -= math.Abs(hole.Area())
	}
	if a < 0 {
		return 0
	}
	return a
}

func (p Polygon) BBox() BBox {
	if len(p) == 0 {
		return BBox{}
	}
	return p[0].BBox()
}

func (m MultiPolygon) Area() float64 {
	a := 0.0
	for _, p := range m {
		a += p.Area()
	}
	return a
}

func (m MultiPolygon) BBox() BBox {
	if len(m) == 0 {
		return BBox{}
	}
	b := m[0].BBox()
	for _, p := range m[1:] {
		b.Extend(p.BBox())
	}
	return b
}

// contains reports whether (x, y) is strictly inside the ring by the
// even-odd rule. Edges are treated half-open in y, so a ray passing
// through a shared vertex counts exactly one crossing.
func (r Ring) contains(x, y float64) bool {
	pts := r.normalized()
	n := len(pts)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := pts[i][0], pts[i][1]
		xj, yj := pts[j][0], pts[j][1]
		if (yi > y) != (yj > y) &&
			x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// onEdge reports whether (x, y) lies on one of the ring's segments.
func (r Ring) onEdge(x, y float64) bool {
	pts := r.normalized()
	n := len(pts)
	if n < 2 {
		return false
	}
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		ax, ay := pts[j][0], pts[j][1]
		bx, by := pts[i][0], pts[i][1]
		if x < math.Min(ax, bx) || x > math.Max(ax, bx) ||
			y < math.Min(ay, by) || y > math.Max(ay, by) {
			continue
		}
		cross := (bx-ax)*(y-ay) - (by-ay)*(x-ax)
		if math.Abs(cross) <= onEdgeEps {
			return true
		}
	}
	return false
}

// Contains reports whether the point is inside the polygon. The boundary is
// inclusive: points on the outer ring or on a hole ring count as inside, so
// repeated calls with the same inputs always agree.
func (p Polygon) Contains(x, y float64) bool {
	if len(p) == 0 {
		return false
	}
	outer := p[0]
	if !outer.contains(x, y) && !outer.onEdge(x, y) {
		return false
	}
	for _, hole := range p[1:] {
		if hole.contains(x, y) && !hole.onEdge(x, y) {
			return false
		}
	}
	return true
}

func (m MultiPolygon) Contains(x, y float64) bool {
	for _, p := range m {
		if p.Contains(x, y) {
			return true
		}
	}
	return false
}
