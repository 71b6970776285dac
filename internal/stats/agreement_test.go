package stats

import "testing"

func TestRoundScores(t *testing.T) {
	tests := []struct {
		name   string
		input  []float64
		expect []int
	}{
		{"integers", []float64{1, 3, 5}, []int{1, 3, 5}},
		{"rounding", []float64{1.4, 2.5, 3.6}, []int{1, 3, 4}},
		{"clamped_low", []float64{-2.0, 0.3}, []int{1, 1}},
		{"clamped_high", []float64{5.7, 9.0}, []int{5, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundScores(tt.input, 5)
			for i := range got {
				if got[i] != tt.expect[i] {
					t.Fatalf("RoundScores(%v) = %v, want %v", tt.input, got, tt.expect)
				}
			}
		})
	}
}

func TestLinearWeight(t *testing.T) {
	tests := []struct {
		i, j   int
		expect float64
	}{
		{3, 3, 1.0},
		{1, 5, 0.0},
		{5, 1, 0.0},
		{2, 3, 0.75},
		{1, 3, 0.5},
	}
	for _, tt := range tests {
		if got := linearWeight(tt.i, tt.j, 5); !approxEqual(got, tt.expect) {
			t.Errorf("linearWeight(%d, %d, 5) = %f, want %f", tt.i, tt.j, got, tt.expect)
		}
	}
}

func TestWeightedKappa(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if WeightedKappa(nil, nil, 5).Valid() {
			t.Error("expected NaN sentinel for empty input")
		}
	})

	t.Run("mismatched_lengths", func(t *testing.T) {
		if WeightedKappa([]int{1, 2}, []int{1}, 5).Valid() {
			t.Error("expected NaN sentinel for mismatched lengths")
		}
	})

	t.Run("perfect_agreement", func(t *testing.T) {
		a := []int{1, 2, 3, 4, 5, 2, 3}
		k := WeightedKappa(a, a, 5)
		if !k.Valid() || !approxEqual(float64(k), 1.0) {
			t.Errorf("perfect agreement should give kappa = 1, got %v", k)
		}
	})

	t.Run("single_category_undefined", func(t *testing.T) {
		// Both raters always answer 3: chance agreement is total and
		// the coefficient has a zero denominator.
		a := []int{3, 3, 3, 3, 3, 3}
		if WeightedKappa(a, a, 5).Valid() {
			t.Error("expected NaN sentinel when chance agreement is total")
		}
	})

	t.Run("in_range", func(t *testing.T) {
		a := []int{1, 2, 3, 4, 5, 1, 2}
		b := []int{2, 2, 4, 3, 5, 1, 3}
		k := WeightedKappa(a, b, 5)
		if !k.Valid() {
			t.Fatal("expected computable kappa")
		}
		if v := float64(k); v < -1 || v > 1 {
			t.Errorf("kappa = %f out of [-1, 1]", v)
		}
	})
}

func TestGwetAC2(t *testing.T) {
	t.Run("perfect_agreement", func(t *testing.T) {
		a := []int{1, 2, 3, 4, 5, 2}
		ac := GwetAC2(a, a, 5)
		if !ac.Valid() || !approxEqual(float64(ac), 1.0) {
			t.Errorf("perfect agreement should give AC2 = 1, got %v", ac)
		}
	})

	t.Run("single_category_is_one", func(t *testing.T) {
		// Unlike Kappa, AC2 reports full agreement by convention when
		// both raters always use the same category.
		a := []int{3, 3, 3, 3, 3, 3}
		ac := GwetAC2(a, a, 5)
		if !ac.Valid() || !approxEqual(float64(ac), 1.0) {
			t.Errorf("single shared category should give AC2 = 1, got %v", ac)
		}
	})

	t.Run("diverges_from_kappa_under_skewed_marginals", func(t *testing.T) {
		// One rater overwhelmingly picks category 5 while the other is
		// spread out. The averaged-marginal chance agreement of AC2
		// then differs from Kappa's independent-marginal one.
		a := []int{5, 5, 5, 5, 5, 5, 5, 5, 5, 4}
		b := []int{5, 4, 5, 3, 5, 4, 5, 3, 5, 4}
		k := WeightedKappa(a, b, 5)
		ac := GwetAC2(a, b, 5)
		if !k.Valid() || !ac.Valid() {
			t.Fatal("expected computable coefficients")
		}
		if approxEqual(float64(ac), float64(k)) {
			t.Errorf("AC2 = %f should differ from Kappa = %f under skewed marginals", ac, k)
		}
		for _, v := range []float64{float64(k), float64(ac)} {
			if v < -1 || v > 1 {
				t.Errorf("coefficient %f out of [-1, 1]", v)
			}
		}
	})

	t.Run("mismatched_lengths", func(t *testing.T) {
		if GwetAC2([]int{1}, []int{1, 2}, 5).Valid() {
			t.Error("expected NaN sentinel for mismatched lengths")
		}
	})
}
