package dots

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sum(xs []int) int {
	t := 0
	for _, x := range xs {
		t += x
	}
	return t
}

func TestApportion(t *testing.T) {
	tests := []struct {
		name  string
		areas []float64
		count int
		want  []int
	}{
		{"exact split", []float64{3, 1}, 4, []int{3, 1}},
		{"largest remainder wins", []float64{2, 1}, 4, []int{3, 1}},
		{"single polygon", []float64{7}, 13, []int{13}},
		{"zero count", []float64{1, 2, 3}, 0, []int{0, 0, 0}},
		{"near-zero share gets nothing", []float64{1, 1e-12}, 5, []int{5, 0}},
		{"equal shares tie broken by index", []float64{1, 1}, 3, []int{2, 1}},
		{"zero area part", []float64{2, 0}, 9, []int{9, 0}},
		{"all zero areas", []float64{0, 0}, 4, []int{0, 0}},
		{"empty", nil, 5, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apportion(tt.areas, tt.count)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApportionTotalAlwaysExact(t *testing.T) {
	cases := [][]float64{
		{1, 1, 1},
		{0.1, 0.2, 0.3, 0.4},
		{1e-9, 1, 1e9},
		{5, 3, 3, 3, 3, 3},
	}
	for _, areas := range cases {
		for count := 0; count <= 50; count++ {
			got := apportion(areas, count)
			assert.Equal(t, count, sum(got), "areas=%v count=%d", areas, count)
			for i, n := range got {
				assert.GreaterOrEqual(t, n, 0, "areas=%v count=%d part=%d", areas, count, i)
			}
		}
	}
}
