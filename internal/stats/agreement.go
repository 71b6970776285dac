package stats

import "math"

// MinAgreementOverlap is the smallest number of shared observations two
// raters must have before an agreement coefficient is considered stable.
// Pairs at or below this overlap report the NaN sentinel.
const MinAgreementOverlap = 5

// RoundScores discretizes continuous scores to integer categories in
// [1, categories]. Both agreement coefficients require discrete ordinal
// categories even when normalization produced fractional scores.
func RoundScores(values []float64, categories int) []int {
	out := make([]int, len(values))
	for i, v := range values {
		c := int(math.Round(v))
		if c < 1 {
			c = 1
		}
		if c > categories {
			c = categories
		}
		out[i] = c
	}
	return out
}

// linearWeight is the ordinal agreement weight for categories i and j on
// a scale with k categories: 1 on the diagonal, decaying linearly to 0
// at maximal disagreement.
func linearWeight(i, j, k int) float64 {
	d := i - j
	if d < 0 {
		d = -d
	}
	return 1 - float64(d)/float64(k-1)
}

// observedAgreement is the linear-weighted proportion of agreement
// between two equally long category sequences.
func observedAgreement(a, b []int, categories int) float64 {
	sum := 0.0
	for i := range a {
		sum += linearWeight(a[i], b[i], categories)
	}
	return sum / float64(len(a))
}

// categoryCounts tallies how often each category 1..categories appears.
func categoryCounts(ratings []int, categories int) []float64 {
	counts := make([]float64, categories+1)
	for _, c := range ratings {
		counts[c]++
	}
	return counts
}

// WeightedKappa computes Cohen's Kappa with linear ordinal weights
// between two raters' category sequences. Chance agreement uses each
// rater's own marginal distribution (Cohen style). Returns the NaN
// sentinel for mismatched or empty input, or when chance agreement is
// total and the coefficient is undefined.
func WeightedKappa(a, b []int, categories int) Float {
	if len(a) == 0 || len(a) != len(b) {
		return NotComputable()
	}
	n := float64(len(a))
	po := observedAgreement(a, b, categories)

	ca := categoryCounts(a, categories)
	cb := categoryCounts(b, categories)
	pe := 0.0
	for i := 1; i <= categories; i++ {
		for j := 1; j <= categories; j++ {
			pe += linearWeight(i, j, categories) * (ca[i] / n) * (cb[j] / n)
		}
	}

	if 1-pe == 0 {
		return NotComputable()
	}
	return Float((po - pe) / (1 - pe))
}

// GwetAC2 computes Gwet's AC2 agreement coefficient with the same linear
// weights as WeightedKappa. Chance agreement is computed from the
// average category marginals across both raters, which makes AC2 robust
// to prevalence imbalance where Kappa collapses. When chance agreement
// is total the coefficient is 1.0 by convention.
func GwetAC2(a, b []int, categories int) Float {
	if len(a) == 0 || len(a) != len(b) {
		return NotComputable()
	}
	n := float64(len(a))
	po := observedAgreement(a, b, categories)

	ca := categoryCounts(a, categories)
	cb := categoryCounts(b, categories)
	pe := 0.0
	for i := 1; i <= categories; i++ {
		for j := 1; j <= categories; j++ {
			pi := (ca[i] + cb[i]) / (2 * n)
			pj := (ca[j] + cb[j]) / (2 * n)
			pe += linearWeight(i, j, categories) * pi * pj
		}
	}

	if 1-pe == 0 {
		return 1.0
	}
	return Float((po - pe) / (1 - pe))
}
