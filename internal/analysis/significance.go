package analysis

import (
	"log/slog"

	"github.com/reviewbench/reviewbench/internal/review"
	"github.com/reviewbench/reviewbench/internal/stats"
)

// pairedSamples holds aligned human and AI score lists for one metric:
// element i of both slices belongs to the same (paper, evaluator) pair.
type pairedSamples struct {
	human []float64
	ai    []float64
}

func computeStatisticalTests(cfg review.Config, ds *review.Dataset) Significance {
	out := Significance{
		Aggregated: map[string]TestBattery{},
		PerModel:   map[string]map[string]TestBattery{},
	}

	humanByMetric := map[string][]float64{}
	for _, metric := range cfg.Metrics {
		humanByMetric[metric] = collect(ds.Records, func(r review.ScoreRecord) bool {
			return r.IsHuman && r.Metric == metric
		})
	}

	pairedAll := pairScores(cfg, ds, "")
	for _, metric := range cfg.Metrics {
		ai := collect(ds.Records, func(r review.ScoreRecord) bool {
			return !r.IsHuman && r.Metric == metric
		})
		out.Aggregated[metric] = runTestBattery(humanByMetric[metric], ai, pairedAll[metric], metric, "all")
	}

	for _, model := range ds.Models {
		pairedModel := pairScores(cfg, ds, model)
		perMetric := map[string]TestBattery{}
		for _, metric := range cfg.Metrics {
			ai := collect(ds.Records, func(r review.ScoreRecord) bool {
				return !r.IsHuman && r.Model == model && r.Metric == metric
			})
			perMetric[metric] = runTestBattery(humanByMetric[metric], ai, pairedModel[metric], metric, model)
		}
		out.PerModel[model] = perMetric
	}

	return out
}

func runTestBattery(human, ai []float64, paired pairedSamples, metric, model string) TestBattery {
	b := TestBattery{
		MannWhitneyP: stats.MannWhitneyU(human, ai),
		LeveneP:      stats.Levene(human, ai),
		CliffsDelta:  stats.CliffsDelta(human, ai),
		WilcoxonP:    stats.NotComputable(),
	}
	if len(paired.human) > 0 {
		b.WilcoxonP = stats.Wilcoxon(paired.human, paired.ai)
	}

	for name, p := range map[string]stats.Float{
		"mwu": b.MannWhitneyP, "wilcoxon": b.WilcoxonP, "levene": b.LeveneP,
	} {
		if !p.Valid() {
			slog.Debug("test not computable", "test", name, "metric", metric, "model", model)
		}
	}
	return b
}

// pairKey identifies the pairing unit: one evaluator's view of one paper.
type pairKey struct {
	paper     string
	evaluator string
}

// pairCell accumulates, per metric, the human score and all AI scores an
// evaluator assigned for one paper. When the same key carries several
// human scores the last one wins; multiple AI scores are averaged into
// one representative value at flattening time.
type pairCell struct {
	human map[string]float64
	ai    map[string][]float64
}

// pairScores builds the paired samples for the Wilcoxon test. A pair is
// formed for a (paper, evaluator, metric) triple only when both a human
// score and at least one AI score exist; modelFilter restricts the AI
// side to one model when non-empty.
func pairScores(cfg review.Config, ds *review.Dataset, modelFilter string) map[string]pairedSamples {
	cells := map[pairKey]*pairCell{}
	var order []pairKey

	for _, r := range ds.Records {
		if modelFilter != "" && !r.IsHuman && r.Model != modelFilter {
			continue
		}
		key := pairKey{r.PaperTitle, r.Evaluator}
		cell, ok := cells[key]
		if !ok {
			cell = &pairCell{human: map[string]float64{}, ai: map[string][]float64{}}
			cells[key] = cell
			order = append(order, key)
		}
		if r.IsHuman {
			cell.human[r.Metric] = r.Score
		} else {
			cell.ai[r.Metric] = append(cell.ai[r.Metric], r.Score)
		}
	}

	out := map[string]pairedSamples{}
	for _, key := range order {
		cell := cells[key]
		for _, metric := range cfg.Metrics {
			h, hasHuman := cell.human[metric]
			aiVals := cell.ai[metric]
			if !hasHuman || len(aiVals) == 0 {
				continue
			}
			p := out[metric]
			p.human = append(p.human, h)
			p.ai = append(p.ai, stats.Mean(aiVals))
			out[metric] = p
		}
	}
	return out
}
