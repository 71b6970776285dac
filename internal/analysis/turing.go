package analysis

import (
	"github.com/reviewbench/reviewbench/internal/review"
	"github.com/reviewbench/reviewbench/internal/stats"
)

func computeTuringTests(ds *review.Dataset) TuringTests {
	out := TuringTests{PerEvaluator: map[string]stats.ConfusionStats{}}
	if len(ds.Detections) == 0 {
		return out
	}

	overall := stats.DetectionStats(toDetections(ds.Detections))
	out.Overall = &overall

	byEvaluator := map[string][]review.DetectionEvent{}
	for _, e := range ds.Detections {
		byEvaluator[e.Evaluator] = append(byEvaluator[e.Evaluator], e)
	}
	for evaluator, events := range byEvaluator {
		out.PerEvaluator[evaluator] = stats.DetectionStats(toDetections(events))
	}
	return out
}

func toDetections(events []review.DetectionEvent) []stats.Detection {
	out := make([]stats.Detection, len(events))
	for i, e := range events {
		out[i] = stats.Detection{ActualAI: e.ActualAI, PredictedAI: e.PredictedAI}
	}
	return out
}
