package review

// minMax holds the observed score range for one normalization bucket.
type minMax struct {
	min, max float64
}

// meanStd holds the mean and standard deviation for one bucket. A zero
// standard deviation is stored as 1 to avoid division by zero.
type meanStd struct {
	mean, std float64
}

// rescale min-max normalizes v from [m.min, m.max] into the configured
// scale. A degenerate range maps everything to the scale origin plus
// zero offset, matching a range width of 1.
func (cfg Config) rescale(v float64, m minMax) float64 {
	rng := m.max - m.min
	if rng == 0 {
		rng = 1
	}
	return (v-m.min)/rng*(cfg.ScaleMax-cfg.ScaleMin) + cfg.ScaleMin
}

// recenter z-scores v against m, shifts it to the target mean with unit
// scale, and clamps to the scale bounds.
func (cfg Config) recenter(v float64, m meanStd) float64 {
	z := (v - m.mean) / m.std
	out := z + cfg.TargetMean
	if out < cfg.ScaleMin {
		out = cfg.ScaleMin
	}
	if out > cfg.ScaleMax {
		out = cfg.ScaleMax
	}
	return out
}
