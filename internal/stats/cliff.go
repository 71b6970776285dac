package stats

import "sort"

// CliffsDelta computes Cliff's Delta effect size between two independent
// samples. The result is in [-1, 1]: positive when values in a tend to
// exceed values in b, negative for the reverse. Returns 0 when either
// sample is empty.
//
// The implementation sorts both samples and advances two pointers over b
// for each value of a, counting elements strictly below and strictly
// above. This is O(n log n) and produces exactly the same result as the
// brute-force pairwise sign count.
func CliffsDelta(a, b []float64) float64 {
	m, n := len(a), len(b)
	if m*n == 0 {
		return 0
	}

	sa := make([]float64, m)
	copy(sa, a)
	sort.Float64s(sa)
	sb := make([]float64, n)
	copy(sb, b)
	sort.Float64s(sb)

	var less, more int64
	j, k := 0, 0
	for _, x := range sa {
		for j < n && sb[j] < x {
			j++
		}
		for k < n && sb[k] <= x {
			k++
		}
		less += int64(j)
		more += int64(n - k)
	}

	return float64(more-less) / float64(int64(m)*int64(n))
}
