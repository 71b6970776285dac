package stats

import "testing"

func TestDetectionStats(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s := DetectionStats(nil)
		if s != (ConfusionStats{}) {
			t.Errorf("DetectionStats(nil) = %+v, want zero value", s)
		}
	})

	t.Run("mixed", func(t *testing.T) {
		events := []Detection{
			{ActualAI: true, PredictedAI: true},   // TP
			{ActualAI: false, PredictedAI: false}, // TN
			{ActualAI: false, PredictedAI: true},  // FP
		}
		s := DetectionStats(events)
		if s.TP != 1 || s.TN != 1 || s.FP != 1 || s.FN != 0 {
			t.Fatalf("confusion counts = TP %d TN %d FP %d FN %d", s.TP, s.TN, s.FP, s.FN)
		}
		if s.Total != 3 {
			t.Errorf("Total = %d, want 3", s.Total)
		}
		if !approxEqual(s.Accuracy, 2.0/3.0) {
			t.Errorf("Accuracy = %f, want 2/3", s.Accuracy)
		}
		if !approxEqual(s.Precision, 0.5) {
			t.Errorf("Precision = %f, want 0.5", s.Precision)
		}
		if !approxEqual(s.Recall, 1.0) {
			t.Errorf("Recall = %f, want 1.0", s.Recall)
		}
		if !approxEqual(s.F1, 2.0/3.0) {
			t.Errorf("F1 = %f, want 2/3", s.F1)
		}
	})

	t.Run("no_positive_predictions", func(t *testing.T) {
		// Zero denominators report 0, not NaN.
		events := []Detection{
			{ActualAI: false, PredictedAI: false},
			{ActualAI: false, PredictedAI: false},
		}
		s := DetectionStats(events)
		if s.Precision != 0 || s.Recall != 0 || s.F1 != 0 {
			t.Errorf("expected zero precision/recall/F1, got %+v", s)
		}
		if !approxEqual(s.Accuracy, 1.0) {
			t.Errorf("Accuracy = %f, want 1.0", s.Accuracy)
		}
	})

	t.Run("all_missed", func(t *testing.T) {
		events := []Detection{
			{ActualAI: true, PredictedAI: false},
			{ActualAI: true, PredictedAI: false},
		}
		s := DetectionStats(events)
		if s.FN != 2 || s.Accuracy != 0 || s.Recall != 0 {
			t.Errorf("all missed should zero out, got %+v", s)
		}
	})
}
