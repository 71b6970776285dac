package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// ranks assigns 1-based ranks to values, averaging ranks within ties.
func ranks(values []float64) []float64 {
	n := len(values)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

	r := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j < n && values[idx[j]] == values[idx[i]] {
			j++
		}
		// Tied run [i, j): every member gets the average rank.
		avg := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			r[idx[k]] = avg
		}
		i = j
	}
	return r
}

// tieSum computes Σ(t³ - t) over all tied groups, the shared correction
// term of the rank-test variance formulas.
func tieSum(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		t := float64(j - i)
		sum += t*t*t - t
		i = j
	}
	return sum
}

// MannWhitneyU runs the two-sided Mann-Whitney U test on two independent
// samples using the normal approximation with tie and continuity
// corrections. Degenerate input (an empty sample, or all values
// identical so the rank variance collapses) yields the NaN sentinel.
func MannWhitneyU(a, b []float64) Float {
	n1, n2 := len(a), len(b)
	if n1 == 0 || n2 == 0 {
		return NotComputable()
	}

	combined := make([]float64, 0, n1+n2)
	combined = append(combined, a...)
	combined = append(combined, b...)
	r := ranks(combined)

	r1 := 0.0
	for i := 0; i < n1; i++ {
		r1 += r[i]
	}
	u1 := r1 - float64(n1)*float64(n1+1)/2

	n := float64(n1 + n2)
	variance := float64(n1) * float64(n2) / 12 * ((n + 1) - tieSum(combined)/(n*(n-1)))
	if variance <= 0 {
		return NotComputable()
	}

	mu := float64(n1) * float64(n2) / 2
	num := math.Abs(u1-mu) - 0.5
	if num < 0 {
		num = 0
	}
	z := num / math.Sqrt(variance)

	p := 2 * distuv.UnitNormal.Survival(z)
	if p > 1 {
		p = 1
	}
	return Float(p)
}

// Wilcoxon runs the two-sided Wilcoxon signed-rank test on paired
// samples. If every paired difference is exactly zero the distributions
// are identical and p = 1.0 is reported directly; the rank statistic is
// undefined in that case. Zero differences are otherwise discarded.
// Any other degenerate input yields the NaN sentinel.
func Wilcoxon(x, y []float64) Float {
	if len(x) == 0 || len(x) != len(y) {
		return NotComputable()
	}

	diffs := make([]float64, 0, len(x))
	for i := range x {
		if d := x[i] - y[i]; d != 0 {
			diffs = append(diffs, d)
		}
	}
	if len(diffs) == 0 {
		return 1.0
	}

	abs := make([]float64, len(diffs))
	for i, d := range diffs {
		abs[i] = math.Abs(d)
	}
	r := ranks(abs)

	wPlus := 0.0
	for i, d := range diffs {
		if d > 0 {
			wPlus += r[i]
		}
	}

	n := float64(len(diffs))
	mu := n * (n + 1) / 4
	variance := n*(n+1)*(2*n+1)/24 - tieSum(abs)/48
	if variance <= 0 {
		return NotComputable()
	}

	z := math.Abs(wPlus-mu) / math.Sqrt(variance)
	p := 2 * distuv.UnitNormal.Survival(z)
	if p > 1 {
		p = 1
	}
	return Float(p)
}
