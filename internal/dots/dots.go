// Package dots converts per-polygon counts into point clouds for dot
// density rendering. One dot stands for a fixed unit of the underlying
// quantity; the caller scales raw values into counts before generating.
package dots

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/mikeasilva/dot-density-map/internal/geom"
)

// ErrInvalidArgument marks a call that cannot be generated from: a negative
// count or a malformed outer ring. It is scoped to the single call; batch
// runs record it per feature and keep going.
var ErrInvalidArgument = errors.New("invalid argument")

// degenerateArea is the area below which a polygon is treated as a
// zero-area sliver: it yields an empty dot set instead of an error, since
// imprecise source geometry produces these routinely.
const degenerateArea = 1e-12

// shrinkFactor is the step reduction applied when a regular grid pass
// leaves fewer surviving points than requested.
const shrinkFactor = 0.8

const maxGridPasses = 64

// maxGridCells bounds one grid pass; a sliver taking a vanishing share of
// its own bounding box would otherwise shrink the step into an enormous
// allocation before the pass limit trips.
const maxGridCells = 1 << 26

type Method int

const (
	// Regular lays dots on a fixed-step grid clipped to the polygon.
	Regular Method = iota
	// Random draws dots by uniform rejection sampling inside the polygon.
	Random
)

func ParseMethod(s string) (Method, error) {
	switch s {
	case "regular":
		return Regular, nil
	case "random":
		return Random, nil
	}
	return 0, fmt.Errorf("%w: unknown method %q", ErrInvalidArgument, s)
}

func (m Method) String() string {
	if m == Random {
		return "random"
	}
	return "regular"
}

// Dot is one placed point. Dots carry no identity beyond their coordinates
// and category label.
type Dot struct {
	X        float64
	Y        float64
	Category string
}

type Options struct {
	// Seed drives the Random method. The same seed and inputs always
	// reproduce the same dot set; Regular ignores it.
	Seed int64
	// Category is stamped on every generated dot.
	Category string
}

// Generate places exactly count dots inside g. A degenerate (zero-area)
// geometry yields an empty set with no error; a negative count or an outer
// ring with fewer than 3 vertices fails with ErrInvalidArgument.
func Generate(g geom.MultiPolygon, count int, method Method, opts Options) ([]Dot, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrInvalidArgument, count)
	}
	if err := validate(g); err != nil {
		return nil, err
	}
	if count == 0 {
		return []Dot{}, nil
	}

	areas := make([]float64, len(g))
	total := 0.0
	for i, p := range g {
		areas[i] = p.Area()
		total += areas[i]
	}
	if total <= degenerateArea {
		return []Dot{}, nil
	}

	// One source for the whole call: sub-polygons consume draws in order,
	// so the output is a pure function of (geometry, count, seed).
	rng := rand.New(rand.NewSource(opts.Seed))

	quotas := apportion(areas, count)
	out := make([]Dot, 0, count)
	for i, p := range g {
		if quotas[i] == 0 {
			continue
		}
		var pts [][2]float64
		var err error
		switch method {
		case Random:
			pts, err = randomDots(p, quotas[i], rng)
		default:
			pts, err = regularDots(p, quotas[i])
		}
		if err != nil {
			return nil, err
		}
		for _, pt := range pts {
			out = append(out, Dot{X: pt[0], Y: pt[1], Category: opts.Category})
		}
	}
	return out, nil
}

func validate(g geom.MultiPolygon) error {
	for _, p := range g {
		if len(p) == 0 {
			return fmt.Errorf("%w: polygon without rings", ErrInvalidArgument)
		}
		if n := ringVertexCount(p[0]); n < 3 {
			return fmt.Errorf("%w: outer ring has %d vertices, need at least 3", ErrInvalidArgument, n)
		}
	}
	return nil
}

func ringVertexCount(r geom.Ring) int {
	n := len(r)
	if n > 1 && r[0] == r[n-1] {
		n--
	}
	return n
}

// regularDots overlays a grid on the polygon's bounding box with the step
// solved from the area ratio, keeps the points that fall inside, and
// reconciles the count: shrink the step and resample while too few points
// survive, then truncate the tail of the raster-scan sequence. The result
// is deterministic for a given polygon and count.
func regularDots(p geom.Polygon, count int) ([][2]float64, error) {
	area := p.Area()
	if area <= degenerateArea {
		return nil, nil
	}
	b := p.BBox()
	step := math.Sqrt(area / float64(count))
	for pass := 0; pass < maxGridPasses; pass++ {
		if cells := (b.Width()/step + 1) * (b.Height()/step + 1); cells > maxGridCells {
			return nil, fmt.Errorf("grid sampling needs %.0f cells for %d dots; geometry too thin for its bounding box", cells, count)
		}
		pts := gridInside(p, b, step)
		if len(pts) >= count {
			return pts[:count], nil
		}
		step *= shrinkFactor
	}
	return nil, fmt.Errorf("grid sampling failed to reach %d dots after %d passes", count, maxGridPasses)
}

// gridInside walks the grid in raster-scan order: rows south to north,
// columns west to east, offset half a step from the corner.
func gridInside(p geom.Polygon, b geom.BBox, step float64) [][2]float64 {
	var pts [][2]float64
	for y := b.MinY + step/2; y <= b.MaxY; y += step {
		for x := b.MinX + step/2; x <= b.MaxX; x += step {
			if p.Contains(x, y) {
				pts = append(pts, [2]float64{x, y})
			}
		}
	}
	return pts
}

// randomDots draws points uniformly in the bounding box and rejects those
// outside the polygon until count are accepted. The attempt cap only
// trips on geometry so thin the bbox acceptance rate is effectively zero;
// such a polygon is better reported than spun on.
func randomDots(p geom.Polygon, count int, rng *rand.Rand) ([][2]float64, error) {
	if p.Area() <= degenerateArea {
		return nil, nil
	}
	b := p.BBox()
	w, h := b.Width(), b.Height()
	maxAttempts := 100000 + 1000*count
	pts := make([][2]float64, 0, count)
	for attempts := 0; len(pts) < count; attempts++ {
		if attempts >= maxAttempts {
			return nil, fmt.Errorf("rejection sampling stalled after %d attempts (%d/%d dots placed)",
				attempts, len(pts), count)
		}
		x := b.MinX + rng.Float64()*w
		y := b.MinY + rng.Float64()*h
		if p.Contains(x, y) {
			pts = append(pts, [2]float64{x, y})
		}
	}
	return pts, nil
}
