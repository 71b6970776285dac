package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reviewbench/reviewbench/internal/analysis"
	"github.com/reviewbench/reviewbench/internal/review"
	"github.com/reviewbench/reviewbench/internal/stats"
)

func TestFormatPValue(t *testing.T) {
	tests := []struct {
		name   string
		p      stats.Float
		expect string
	}{
		{"not_computable", stats.NotComputable(), "-"},
		{"not_significant", 0.2, "0.2000"},
		{"one_star", 0.03, "0.0300*"},
		{"two_stars", 0.005, "0.0050**"},
		{"three_stars", 0.0002, "0.0002***"},
		{"boundary_005", 0.05, "0.0500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, FormatPValue(tt.p))
		})
	}
}

func TestFormatDelta(t *testing.T) {
	assert.Equal(t, "+0.300", FormatDelta(0.3))
	assert.Equal(t, "-0.125", FormatDelta(-0.125))
	assert.Equal(t, "+0.000", FormatDelta(0))
}

func TestFormatCoefficient(t *testing.T) {
	assert.Equal(t, "-", FormatCoefficient(stats.NotComputable()))
	assert.Equal(t, "0.74", FormatCoefficient(0.74))
}

func sampleResults() *analysis.Results {
	overall := stats.ConfusionStats{TP: 2, TN: 1, FP: 1, Accuracy: 0.75, Precision: 2.0 / 3, Recall: 1, F1: 0.8, Total: 4}
	return &analysis.Results{
		Statistics: analysis.MetricStats{
			Overall: analysis.GroupStats{
				Human: stats.Summary{N: 10, Min: 1, Max: 5, Mean: 3.1, Std: 0.9},
				AI:    stats.Summary{N: 8, Min: 2, Max: 5, Mean: 3.8, Std: 0.6},
			},
			PerMetricOverall: map[string]analysis.GroupStats{
				"coverage": {
					Human: stats.Summary{N: 10, Mean: 3.1},
					AI:    stats.Summary{N: 8, Mean: 3.8},
				},
			},
			PerMetricModel: map[string]map[string]stats.Summary{
				"coverage": {
					"human": {N: 10, Mean: 3.1},
					"gpt-4": {N: 8, Mean: 3.8},
				},
			},
		},
		Significance: analysis.Significance{
			Aggregated: map[string]analysis.TestBattery{
				"coverage": {MannWhitneyP: 0.03, WilcoxonP: stats.NotComputable(), LeveneP: 0.4, CliffsDelta: -0.25},
			},
			PerModel: map[string]map[string]analysis.TestBattery{
				"gpt-4": {
					"coverage": {MannWhitneyP: 0.03, WilcoxonP: 0.2, LeveneP: 0.4, CliffsDelta: -0.25},
				},
			},
		},
		Agreement: analysis.Agreement{
			CohenKappa: analysis.Matrix{
				"Alice": {"Alice": stats.NotComputable(), "Bob": 0.42},
				"Bob":   {"Alice": 0.42, "Bob": stats.NotComputable()},
			},
			GwetAC2: analysis.Matrix{
				"Alice": {"Alice": stats.NotComputable(), "Bob": 0.61},
				"Bob":   {"Alice": 0.61, "Bob": stats.NotComputable()},
			},
		},
		Turing: analysis.TuringTests{
			Overall: &overall,
			PerEvaluator: map[string]stats.ConfusionStats{
				"Alice": overall,
			},
		},
	}
}

func oneMetricConfig() review.Config {
	cfg := review.DefaultConfig()
	cfg.Metrics = []string{review.MetricCoverage}
	return cfg
}

func TestMarkdown(t *testing.T) {
	decisions := analysis.DecisionStats{
		review.DecisionAccept: {
			Scores: map[string]analysis.GroupMeanStd{
				"coverage": {
					Human: analysis.MeanStd{Mean: 3.2, Std: 0.5},
					AI:    analysis.MeanStd{Mean: 3.9, Std: 0.4},
				},
			},
			Counts: analysis.BucketCounts{Papers: 3, Reviews: 6, HumanReviews: 3, AIReviews: 3, ScoredReviews: 6},
		},
		review.DecisionReject: {
			Scores: map[string]analysis.GroupMeanStd{"coverage": {}},
		},
	}

	md := Markdown(oneMetricConfig(), sampleResults(), decisions)

	assert.Contains(t, md, "# AI Reviewer Evaluation Report")
	assert.Contains(t, md, "## Score Statistics")
	assert.Contains(t, md, "### Model: gpt-4")
	assert.Contains(t, md, "## Statistical Significance Tests")
	assert.Contains(t, md, "0.0300*")
	assert.Contains(t, md, "-0.250")
	assert.Contains(t, md, "## Turing Test Analysis")
	assert.Contains(t, md, "| Alice |")
	assert.Contains(t, md, "| Overall |")
	assert.Contains(t, md, "### Cohen's Kappa (linear weights)")
	assert.Contains(t, md, "0.42")
	assert.Contains(t, md, "### Gwet's AC2")
	assert.Contains(t, md, "## Accepted vs Rejected Papers")
	assert.Contains(t, md, "### Accept")
	assert.Contains(t, md, "3.200 ± 0.500")

	// Undefined cells render as "-", not NaN.
	assert.NotContains(t, md, "NaN")
}

func TestMarkdown_NoDetections(t *testing.T) {
	res := sampleResults()
	res.Turing = analysis.TuringTests{PerEvaluator: map[string]stats.ConfusionStats{}}

	md := Markdown(oneMetricConfig(), res, nil)
	assert.Contains(t, md, "No detection data found.")
	assert.NotContains(t, md, "## Accepted vs Rejected Papers")
}

func TestHTML(t *testing.T) {
	md := Markdown(oneMetricConfig(), sampleResults(), nil)
	html, err := HTML(md)
	require.NoError(t, err)

	s := string(html)
	assert.True(t, strings.HasPrefix(s, "<!DOCTYPE html>"))
	assert.Contains(t, s, "<table>")
	assert.Contains(t, s, "AI Reviewer Evaluation Report")
	assert.Contains(t, s, "</html>")
}
