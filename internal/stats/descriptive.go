// Package stats implements the pure statistical functions of the
// evaluation engine: descriptive statistics, effect sizes, non-parametric
// hypothesis tests, chance-corrected agreement coefficients, and
// confusion-matrix detection metrics. All functions are side-effect free
// and operate on in-memory slices.
package stats

import "math"

// Summary holds basic descriptive statistics for a score collection.
// An empty input produces the zero value rather than an error, which
// keeps downstream aggregation simple.
type Summary struct {
	N    int     `json:"N"`
	Min  float64 `json:"Min"`
	Max  float64 `json:"Max"`
	Mean float64 `json:"Mean"`
	Std  float64 `json:"Std"`
}

// Describe computes count, min, max, mean, and population standard
// deviation for the given scores.
func Describe(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return Summary{
		N:    len(values),
		Min:  min,
		Max:  max,
		Mean: Mean(values),
		Std:  StdDev(values),
	}
}

// Mean computes the arithmetic mean of a float64 slice.
// Returns 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Variance computes the population variance of a float64 slice.
// Returns 0 for empty input.
func Variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := Mean(values)
	sumSq := 0.0
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return sumSq / float64(len(values))
}

// StdDev computes the population standard deviation.
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}
