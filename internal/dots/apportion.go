package dots

import "sort"

// apportion splits count across sub-polygons in proportion to area share
// using the largest remainder method: floor each quota, then hand the
// leftover dots out by descending fractional part, ties going to the larger
// area and then the lower index. The assigned counts always sum to count.
func apportion(areas []float64, count int) []int {
	n := len(areas)
	out := make([]int, n)
	if n == 0 || count == 0 {
		return out
	}
	total := 0.0
	for _, a := range areas {
		total += a
	}
	if total <= 0 {
		return out
	}

	type share struct {
		idx  int
		frac float64
	}
	rem := count
	shares := make([]share, 0, n)
	for i, a := range areas {
		q := float64(count) * a / total
		base := int(q)
		out[i] = base
		rem -= base
		shares = append(shares, share{idx: i, frac: q - float64(base)})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		a, b := shares[i], shares[j]
		if a.frac != b.frac {
			return a.frac > b.frac
		}
		if areas[a.idx] != areas[b.idx] {
			return areas[a.idx] > areas[b.idx]
		}
		return a.idx < b.idx
	})
	for i := 0; i < rem; i++ {
		out[shares[i%n].idx]++
	}
	return out
}
