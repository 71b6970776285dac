package stats

// Detection is a single authorship-detection observation: whether the
// reviewed artifact was actually AI-authored, and whether the evaluator
// guessed AI. AI is the positive class.
type Detection struct {
	ActualAI    bool
	PredictedAI bool
}

// ConfusionStats holds the binary confusion matrix and derived detection
// metrics for a set of authorship guesses.
type ConfusionStats struct {
	TP        int     `json:"TP"`
	TN        int     `json:"TN"`
	FP        int     `json:"FP"`
	FN        int     `json:"FN"`
	Accuracy  float64 `json:"Accuracy"`
	Precision float64 `json:"Precision"`
	Recall    float64 `json:"Recall"`
	F1        float64 `json:"F1"`
	Total     int     `json:"Total"`
}

// DetectionStats computes the confusion matrix and accuracy, precision,
// recall, and F1 over the given detections. Any ratio with a zero
// denominator evaluates to 0: no positive predictions means a zero
// score, not an undefined one.
func DetectionStats(events []Detection) ConfusionStats {
	var s ConfusionStats
	for _, e := range events {
		switch {
		case e.ActualAI && e.PredictedAI:
			s.TP++
		case !e.ActualAI && !e.PredictedAI:
			s.TN++
		case !e.ActualAI && e.PredictedAI:
			s.FP++
		default:
			s.FN++
		}
	}

	s.Total = s.TP + s.TN + s.FP + s.FN
	if s.Total > 0 {
		s.Accuracy = float64(s.TP+s.TN) / float64(s.Total)
	}
	if s.TP+s.FP > 0 {
		s.Precision = float64(s.TP) / float64(s.TP+s.FP)
	}
	if s.TP+s.FN > 0 {
		s.Recall = float64(s.TP) / float64(s.TP+s.FN)
	}
	if s.Precision+s.Recall > 0 {
		s.F1 = 2 * s.Precision * s.Recall / (s.Precision + s.Recall)
	}
	return s
}
