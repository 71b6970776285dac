package analysis

import (
	"github.com/reviewbench/reviewbench/internal/review"
	"github.com/reviewbench/reviewbench/internal/stats"
)

func computeMetricStats(cfg review.Config, ds *review.Dataset) MetricStats {
	out := MetricStats{
		Overall: GroupStats{
			Human: stats.Describe(collect(ds.Records, func(r review.ScoreRecord) bool { return r.IsHuman })),
			AI:    stats.Describe(collect(ds.Records, func(r review.ScoreRecord) bool { return !r.IsHuman })),
		},
		PerMetricOverall: map[string]GroupStats{},
		PerMetricModel:   map[string]map[string]stats.Summary{},
	}

	for _, metric := range cfg.Metrics {
		human := stats.Describe(collect(ds.Records, func(r review.ScoreRecord) bool {
			return r.IsHuman && r.Metric == metric
		}))
		ai := stats.Describe(collect(ds.Records, func(r review.ScoreRecord) bool {
			return !r.IsHuman && r.Metric == metric
		}))
		out.PerMetricOverall[metric] = GroupStats{Human: human, AI: ai}

		byModel := map[string]stats.Summary{"human": human}
		for _, model := range ds.Models {
			byModel[model] = stats.Describe(collect(ds.Records, func(r review.ScoreRecord) bool {
				return !r.IsHuman && r.Model == model && r.Metric == metric
			}))
		}
		out.PerMetricModel[metric] = byModel
	}

	return out
}
