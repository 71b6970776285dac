package review

import "testing"

func TestCanonicalDecision(t *testing.T) {
	tests := []struct {
		raw    string
		expect string
	}{
		{"Accept", DecisionAccept},
		{"Accept (poster)", DecisionAccept},
		{"accept (oral)", DecisionAccept},
		{"Reject", DecisionReject},
		{"Strong reject", DecisionReject},
		{"Withdrawn", DecisionOther},
		{"", DecisionOther},
		{"desk-rejected", DecisionReject},
	}
	for _, tt := range tests {
		if got := CanonicalDecision(tt.raw); got != tt.expect {
			t.Errorf("CanonicalDecision(%q) = %q, want %q", tt.raw, got, tt.expect)
		}
	}
}

func TestCleanModelName(t *testing.T) {
	tests := []struct {
		raw    string
		expect string
	}{
		{"ai/gpt-4", "gpt-4"},
		{"ai/claude-3", "claude-3"},
		{"human", "human"},
		{"gpt-4", "gpt-4"},
	}
	for _, tt := range tests {
		if got := CleanModelName(tt.raw); got != tt.expect {
			t.Errorf("CleanModelName(%q) = %q, want %q", tt.raw, got, tt.expect)
		}
	}
}

func TestParseNormalizationMode(t *testing.T) {
	tests := []struct {
		input   string
		expect  NormalizationMode
		wantErr bool
	}{
		{"none", NormNone, false},
		{"evaluator", NormEvaluator, false},
		{"EVALUATOR_METRIC", NormEvaluatorMetric, false},
		{" evaluator_metric_target ", NormEvaluatorMetricTarget, false},
		{"bogus", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseNormalizationMode(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseNormalizationMode(%q) should fail", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseNormalizationMode(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.expect {
			t.Errorf("ParseNormalizationMode(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

func TestDecodeMetrics(t *testing.T) {
	t.Run("mixed_numeric_types", func(t *testing.T) {
		raw := map[string]any{
			"coverage":    3,   // JSON integer
			"specificity": 4.5, // JSON float
			"source":      "ai",
			"comment":     "terse",
		}
		m, err := DecodeMetrics(raw)
		if err != nil {
			t.Fatalf("DecodeMetrics error: %v", err)
		}
		if m.Coverage != 3 || m.Specificity != 4.5 {
			t.Errorf("scores = %.1f/%.1f, want 3/4.5", m.Coverage, m.Specificity)
		}
		if m.Source != "ai" || m.Comment != "terse" {
			t.Errorf("annotations = %q/%q", m.Source, m.Comment)
		}
	})

	t.Run("missing_fields_zero", func(t *testing.T) {
		m, err := DecodeMetrics(map[string]any{"coverage": 2})
		if err != nil {
			t.Fatalf("DecodeMetrics error: %v", err)
		}
		if m.Stance != 0 || m.Source != "" {
			t.Errorf("missing fields should stay zero, got %+v", m)
		}
	})
}

func TestReviewMetrics_Score(t *testing.T) {
	m := ReviewMetrics{Coverage: 1, Specificity: 2, Correctness: 3, Constructiveness: 4, Stance: 5}
	for i, name := range DefaultConfig().Metrics {
		if got := m.Score(name); got != float64(i+1) {
			t.Errorf("Score(%q) = %f, want %d", name, got, i+1)
		}
	}
	if m.Score("unknown") != 0 {
		t.Error("Score of unknown metric should be 0")
	}
}
