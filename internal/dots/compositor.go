package dots

import (
	"fmt"
	"hash/fnv"

	"github.com/mikeasilva/dot-density-map/internal/geom"
)

// CategoryCount pairs a category label with its dot count for one feature.
type CategoryCount struct {
	Category string
	Count    int
}

// Composite generates one dot set per category over the same geometry and
// concatenates them in the given order, so the combined cloud overlays all
// categories on one polygon. Each category draws from its own sub-seed:
// adding or removing a category does not disturb the placement of the
// others.
func Composite(g geom.MultiPolygon, method Method, seed int64, categories []CategoryCount) ([]Dot, error) {
	out := []Dot{}
	for _, cc := range categories {
		d, err := Generate(g, cc.Count, method, Options{
			Seed:     SubSeed(seed, cc.Category),
			Category: cc.Category,
		})
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", cc.Category, err)
		}
		out = append(out, d...)
	}
	return out, nil
}

// SubSeed folds an identifier into a base seed. Deriving per-feature and
// per-category seeds this way keeps a fixed base seed reproducible no
// matter what order the work actually runs in.
func SubSeed(base int64, id string) int64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	return base ^ int64(h.Sum64())
}
