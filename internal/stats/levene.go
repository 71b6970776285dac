package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// Levene runs Levene's test for equality of variances between two
// independent samples, centered on the median (the Brown-Forsythe
// variant, which is robust for skewed score distributions). Returns the
// NaN sentinel when the statistic is undefined: an empty sample, fewer
// than three total observations, or zero spread in both groups.
func Levene(a, b []float64) Float {
	n1, n2 := len(a), len(b)
	if n1 == 0 || n2 == 0 {
		return NotComputable()
	}
	const k = 2
	n := n1 + n2
	if n-k <= 0 {
		return NotComputable()
	}

	za := absDeviations(a, median(a))
	zb := absDeviations(b, median(b))

	ma, mb := Mean(za), Mean(zb)
	grand := (ma*float64(n1) + mb*float64(n2)) / float64(n)

	between := float64(n1)*(ma-grand)*(ma-grand) + float64(n2)*(mb-grand)*(mb-grand)
	within := 0.0
	for _, z := range za {
		within += (z - ma) * (z - ma)
	}
	for _, z := range zb {
		within += (z - mb) * (z - mb)
	}
	if within == 0 {
		return NotComputable()
	}

	w := float64(n-k) / float64(k-1) * between / within

	f := distuv.F{D1: float64(k - 1), D2: float64(n - k)}
	p := f.Survival(w)
	if p > 1 {
		p = 1
	}
	if p < 0 {
		p = 0
	}
	return Float(p)
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func absDeviations(values []float64, center float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		d := v - center
		if d < 0 {
			d = -d
		}
		out[i] = d
	}
	return out
}
