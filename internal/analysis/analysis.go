// Package analysis assembles the statistics library and the loaded
// Dataset into the nested result bundles consumed by the report layer:
// descriptive statistics, significance tests, inter-evaluator agreement,
// and Turing-test detection performance, plus the decision-conditioned
// breakdown.
package analysis

import (
	"errors"
	"fmt"

	"github.com/reviewbench/reviewbench/internal/review"
	"github.com/reviewbench/reviewbench/internal/stats"
)

// ErrNoData marks a run against a dataset with no score records at all.
// Emitting empty statistics would make every downstream report
// meaningless, so the run fails instead.
var ErrNoData = errors.New("no evaluation scores found")

// GroupStats pairs human and AI descriptive statistics for one slice of
// the dataset.
type GroupStats struct {
	Human stats.Summary `json:"human"`
	AI    stats.Summary `json:"ai"`
}

// MetricStats is the descriptive-statistics bundle: pooled human vs AI,
// per-metric human vs AI, and per-metric human vs each AI model. The
// human baseline in PerMetricModel is always the global human population
// for that metric, never a per-model reslice, so every model is compared
// against the same reference group.
type MetricStats struct {
	Overall          GroupStats                          `json:"overall"`
	PerMetricOverall map[string]GroupStats               `json:"per_metric_overall"`
	PerMetricModel   map[string]map[string]stats.Summary `json:"per_metric_model"`
}

// TestBattery is the full set of hypothesis tests for one human-vs-AI
// comparison. Uncomputable tests carry the NaN sentinel and serialize
// as null.
type TestBattery struct {
	MannWhitneyP stats.Float `json:"mwu_p"`
	WilcoxonP    stats.Float `json:"wilcoxon_p"`
	LeveneP      stats.Float `json:"levene_p"`
	CliffsDelta  float64     `json:"cliffs_delta"`
}

// Significance holds the test batteries per metric, against the pooled
// AI population and per AI model.
type Significance struct {
	Aggregated map[string]TestBattery            `json:"aggregated"`
	PerModel   map[string]map[string]TestBattery `json:"per_model"`
}

// Matrix is a symmetric evaluator-by-evaluator coefficient matrix. The
// diagonal is undefined and serializes as null.
type Matrix map[string]map[string]stats.Float

// Agreement holds both pairwise agreement matrices.
type Agreement struct {
	CohenKappa Matrix `json:"cohen_kappa"`
	GwetAC2    Matrix `json:"gwet_ac2"`
}

// TuringTests holds detection performance overall and per evaluator.
// Overall is null when no detection events exist.
type TuringTests struct {
	Overall      *stats.ConfusionStats           `json:"overall"`
	PerEvaluator map[string]stats.ConfusionStats `json:"per_evaluator"`
}

// Results is the complete output bundle of one pipeline run. The four
// top-level JSON keys and their nesting are a stable contract with the
// external rendering layer.
type Results struct {
	Statistics   MetricStats  `json:"statistics"`
	Significance Significance `json:"significance"`
	Agreement    Agreement    `json:"agreement"`
	Turing       TuringTests  `json:"turing"`
}

// Run executes the full analysis over a loaded dataset. It fails fast
// with ErrNoData when the dataset has no score records; every other
// numerical failure is confined to a NaN cell in the result structure.
func Run(cfg review.Config, ds *review.Dataset) (*Results, error) {
	if ds.Empty() {
		return nil, fmt.Errorf("%w: check the data directory path and JSON content", ErrNoData)
	}
	return &Results{
		Statistics:   computeMetricStats(cfg, ds),
		Significance: computeStatisticalTests(cfg, ds),
		Agreement:    computeAgreement(cfg, ds),
		Turing:       computeTuringTests(ds),
	}, nil
}

// collect gathers the scores of every record matching pred, in record
// order.
func collect(records []review.ScoreRecord, pred func(review.ScoreRecord) bool) []float64 {
	var out []float64
	for _, r := range records {
		if pred(r) {
			out = append(out, r.Score)
		}
	}
	return out
}
