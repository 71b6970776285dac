package analysis

import (
	"github.com/reviewbench/reviewbench/internal/review"
	"github.com/reviewbench/reviewbench/internal/stats"
)

// MeanStd is a mean and population standard deviation pair. Missing
// combinations stay at the zero value rather than raising.
type MeanStd struct {
	Mean float64 `json:"Mean"`
	Std  float64 `json:"Std"`
}

// GroupMeanStd pairs human and AI score moments for one metric within a
// decision bucket.
type GroupMeanStd struct {
	Human MeanStd `json:"human"`
	AI    MeanStd `json:"ai"`
}

// BucketCounts are the population counts of one decision bucket. Review
// counts are estimated by dividing the flat score-record count by the
// fixed metric count, which assumes a review scored on any metric is
// scored on all of them; ScoredReviews intentionally shares that
// approximation.
type BucketCounts struct {
	Papers        int `json:"Papers"`
	Reviews       int `json:"Reviews"`
	HumanReviews  int `json:"HumanReviews"`
	AIReviews     int `json:"AIReviews"`
	ScoredReviews int `json:"ScoredReviews"`
}

// DecisionBucket is the analysis of one accept/reject outcome group.
type DecisionBucket struct {
	Scores map[string]GroupMeanStd `json:"scores"`
	Turing stats.ConfusionStats    `json:"turing"`
	Counts BucketCounts            `json:"counts"`
}

// DecisionStats maps canonical decisions (Accept, Reject) to their
// bucket analysis. Papers with decision Other are excluded entirely.
type DecisionStats map[string]DecisionBucket

// ComputeDecisionStats re-runs score and detection analyses split by
// paper outcome. Buckets with no data produce zero-valued stats.
func ComputeDecisionStats(cfg review.Config, ds *review.Dataset) DecisionStats {
	out := DecisionStats{}
	for _, decision := range []string{review.DecisionAccept, review.DecisionReject} {
		out[decision] = computeBucket(cfg, ds, decision)
	}
	return out
}

func computeBucket(cfg review.Config, ds *review.Dataset, decision string) DecisionBucket {
	var records []review.ScoreRecord
	for _, r := range ds.Records {
		if r.Decision == decision {
			records = append(records, r)
		}
	}
	var events []review.DetectionEvent
	for _, e := range ds.Detections {
		if e.Decision == decision {
			events = append(events, e)
		}
	}

	bucket := DecisionBucket{
		Scores: map[string]GroupMeanStd{},
		Turing: stats.DetectionStats(toDetections(events)),
	}

	for _, metric := range cfg.Metrics {
		human := collect(records, func(r review.ScoreRecord) bool {
			return r.IsHuman && r.Metric == metric
		})
		ai := collect(records, func(r review.ScoreRecord) bool {
			return !r.IsHuman && r.Metric == metric
		})
		bucket.Scores[metric] = GroupMeanStd{
			Human: MeanStd{Mean: stats.Mean(human), Std: stats.StdDev(human)},
			AI:    MeanStd{Mean: stats.Mean(ai), Std: stats.StdDev(ai)},
		}
	}

	titles := map[string]bool{}
	humanRecords, aiRecords := 0, 0
	for _, r := range records {
		titles[r.PaperTitle] = true
		if r.IsHuman {
			humanRecords++
		} else {
			aiRecords++
		}
	}
	metricCount := len(cfg.Metrics)
	bucket.Counts = BucketCounts{
		Papers:        len(titles),
		Reviews:       len(records) / metricCount,
		HumanReviews:  humanRecords / metricCount,
		AIReviews:     aiRecords / metricCount,
		ScoredReviews: len(records) / metricCount,
	}
	return bucket
}
