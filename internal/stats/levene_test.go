package stats

import "testing"

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		input  []float64
		expect float64
	}{
		{"odd", []float64{3, 1, 2}, 2},
		{"even", []float64{4, 1, 3, 2}, 2.5},
		{"single", []float64{7}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := median(tt.input); !approxEqual(got, tt.expect) {
				t.Errorf("median(%v) = %f, want %f", tt.input, got, tt.expect)
			}
		})
	}
}

func TestLevene(t *testing.T) {
	t.Run("empty_sample", func(t *testing.T) {
		if Levene(nil, []float64{1, 2}).Valid() {
			t.Error("expected NaN sentinel for empty sample")
		}
	})

	t.Run("constant_groups", func(t *testing.T) {
		// Zero spread in both groups: within-group variance is zero.
		if Levene([]float64{2, 2, 2}, []float64{5, 5, 5}).Valid() {
			t.Error("expected NaN sentinel for zero within-group spread")
		}
	})

	t.Run("identical_groups", func(t *testing.T) {
		a := []float64{1, 2, 3, 4, 5}
		p := Levene(a, a)
		if !p.Valid() || !approxEqual(float64(p), 1.0) {
			t.Errorf("identical groups should give p = 1.0, got %v", p)
		}
	})

	t.Run("unequal_spread_more_significant", func(t *testing.T) {
		narrow := []float64{3.0, 3.1, 2.9, 3.0, 3.1, 2.9, 3.0, 3.1}
		wide := []float64{1, 5, 1, 5, 1, 5, 1, 5}
		similar := []float64{2.9, 3.2, 2.8, 3.1, 3.0, 2.9, 3.1, 3.0}

		pUnequal := Levene(narrow, wide)
		pEqual := Levene(narrow, similar)
		if !pUnequal.Valid() || !pEqual.Valid() {
			t.Fatal("expected computable p-values")
		}
		if float64(pUnequal) >= float64(pEqual) {
			t.Errorf("unequal spread p = %f should be below equal spread p = %f", pUnequal, pEqual)
		}
		if p := float64(pUnequal); p > 0.05 {
			t.Errorf("strongly unequal variances should be significant, got p = %f", p)
		}
	})

	t.Run("p_in_unit_interval", func(t *testing.T) {
		p := Levene([]float64{1, 2, 3}, []float64{2, 4, 6})
		if v := float64(p); v < 0 || v > 1 {
			t.Errorf("p = %f out of [0, 1]", v)
		}
	})
}
