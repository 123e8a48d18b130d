package dots

import (
	"runtime"
	"sync"

	"github.com/mikeasilva/dot-density-map/internal/geom"
)

// Result is the outcome for one feature in a batch run. Err is scoped to
// its feature: a malformed polygon never aborts the rest of the map.
type Result struct {
	Feature *geom.Feature
	Dots    []Dot
	Err     error
}

// GenerateAll runs the compositor over every feature on a worker pool.
// Results come back indexed by input position, so the output order is the
// caller's feature order regardless of scheduling, and each feature's seed
// is derived from its ID, so a fixed baseSeed reproduces the same map at
// any worker count.
func GenerateAll(features []*geom.Feature, categories []string, method Method, baseSeed int64, workers int) []Result {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(features))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				ft := features[i]
				cats := make([]CategoryCount, 0, len(categories))
				for _, c := range categories {
					cats = append(cats, CategoryCount{Category: c, Count: ft.Counts[c]})
				}
				d, err := Composite(ft.Geometry, method, SubSeed(baseSeed, ft.ID), cats)
				results[i] = Result{Feature: ft, Dots: d, Err: err}
			}
		}()
	}
	for i := range features {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

// Collect flattens batch results into one dot sequence, dropping failed
// features (the caller logs them from the Result slice).
func Collect(results []Result) []Dot {
	var out []Dot
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		out = append(out, r.Dots...)
	}
	return out
}
