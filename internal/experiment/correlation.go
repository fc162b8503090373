package experiment

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// correlations returns the Pearson, Spearman and Kendall coefficients of
// x against y. Kendall is tau-a. A constant series has no defined
// coefficients and yields an empty map.
func correlations(x, y []float64) map[string]float64 {
	out := make(map[string]float64, 3)
	if len(x) < 2 || len(x) != len(y) || constant(x) || constant(y) {
		return out
	}
	set := func(name string, v float64) {
		if !math.IsNaN(v) {
			out[name] = v
		}
	}
	set("pearson", stat.Correlation(x, y, nil))
	set("spearman", stat.Correlation(ranks(x), ranks(y), nil))
	set("kendall", stat.Kendall(x, y, nil))
	return out
}

func constant(x []float64) bool {
	return floats.Min(x) == floats.Max(x)
}

// ranks assigns 1-based ranks, ties sharing their mean rank.
func ranks(x []float64) []float64 {
	sorted := make([]float64, len(x))
	copy(sorted, x)
	idx := make([]int, len(x))
	floats.Argsort(sorted, idx)

	r := make([]float64, len(x))
	for i := 0; i < len(sorted); {
		j := i
		for j+1 < len(sorted) && sorted[j+1] == sorted[i] {
			j++
		}
		mean := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			r[idx[k]] = mean
		}
		i = j + 1
	}
	return r
}
