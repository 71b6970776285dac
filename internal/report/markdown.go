// Package report renders analysis result bundles into human-readable
// documents. It consumes exactly the serialized result structure, so it
// can run against a bundle loaded back from disk.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/reviewbench/reviewbench/internal/analysis"
	"github.com/reviewbench/reviewbench/internal/review"
	"github.com/reviewbench/reviewbench/internal/stats"
)

// Markdown renders the full evaluation report.
func Markdown(cfg review.Config, res *analysis.Results, decisions analysis.DecisionStats) string {
	var b strings.Builder

	b.WriteString("# AI Reviewer Evaluation Report\n\n")
	b.WriteString(fmt.Sprintf("Normalization-aware comparison of human and AI peer reviews across %d metrics.\n\n", len(cfg.Metrics)))

	writeScoreStatistics(&b, cfg, res)
	writeSignificance(&b, cfg, res)
	writeTuring(&b, res)
	writeAgreement(&b, res)
	writeDecisions(&b, cfg, decisions)

	return b.String()
}

func writeScoreStatistics(b *strings.Builder, cfg review.Config, res *analysis.Results) {
	b.WriteString("## Score Statistics\n\n")

	b.WriteString("### Overall (Human vs AI)\n\n")
	writeTable(b,
		[]string{"Group", "N", "Min", "Max", "Mean", "Std"},
		[][]string{
			summaryRow("Human", res.Statistics.Overall.Human),
			summaryRow("AI", res.Statistics.Overall.AI),
		})

	b.WriteString("### Per Metric\n\n")
	rows := make([][]string, 0, len(cfg.Metrics)*2)
	for _, metric := range cfg.Metrics {
		g := res.Statistics.PerMetricOverall[metric]
		rows = append(rows,
			summaryRow(titleCase(metric)+" (Human)", g.Human),
			summaryRow(titleCase(metric)+" (AI)", g.AI))
	}
	writeTable(b, []string{"Metric", "N", "Min", "Max", "Mean", "Std"}, rows)

	for _, model := range modelNames(res) {
		b.WriteString(fmt.Sprintf("### Model: %s\n\n", model))
		rows = rows[:0]
		for _, metric := range cfg.Metrics {
			byModel := res.Statistics.PerMetricModel[metric]
			rows = append(rows, summaryRow(titleCase(metric), byModel[model]))
		}
		writeTable(b, []string{"Metric", "N", "Min", "Max", "Mean", "Std"}, rows)
	}
}

func writeSignificance(b *strings.Builder, cfg review.Config, res *analysis.Results) {
	b.WriteString("## Statistical Significance Tests\n\n")
	b.WriteString("Mann-Whitney U (unpaired), Wilcoxon signed-rank (paired), Levene's test\n")
	b.WriteString("(variance equality), and Cliff's Delta effect size.\n\n")

	b.WriteString("### Global (Human vs All AI)\n\n")
	writeBatteryTable(b, cfg, res.Significance.Aggregated)

	for _, model := range modelNames(res) {
		b.WriteString(fmt.Sprintf("### Human vs %s\n\n", model))
		writeBatteryTable(b, cfg, res.Significance.PerModel[model])
	}
}

func writeBatteryTable(b *strings.Builder, cfg review.Config, batteries map[string]analysis.TestBattery) {
	rows := make([][]string, 0, len(cfg.Metrics))
	for _, metric := range cfg.Metrics {
		battery := batteries[metric]
		rows = append(rows, []string{
			titleCase(metric),
			FormatPValue(battery.MannWhitneyP),
			FormatPValue(battery.WilcoxonP),
			FormatPValue(battery.LeveneP),
			FormatDelta(battery.CliffsDelta),
		})
	}
	writeTable(b, []string{"Metric", "MW U (p)", "Wilcoxon (p)", "Levene (p)", "Cliff's δ"}, rows)
}

func writeTuring(b *strings.Builder, res *analysis.Results) {
	b.WriteString("## Turing Test Analysis (AI Detection)\n\n")
	if res.Turing.Overall == nil {
		b.WriteString("No detection data found.\n\n")
		return
	}

	evaluators := make([]string, 0, len(res.Turing.PerEvaluator))
	for e := range res.Turing.PerEvaluator {
		evaluators = append(evaluators, e)
	}
	sort.Strings(evaluators)

	rows := make([][]string, 0, len(evaluators)+1)
	for _, e := range evaluators {
		rows = append(rows, confusionRow(e, res.Turing.PerEvaluator[e]))
	}
	rows = append(rows, confusionRow("Overall", *res.Turing.Overall))
	writeTable(b, []string{"Evaluator", "Accuracy", "Precision", "Recall", "F1", "Total"}, rows)
}

func writeAgreement(b *strings.Builder, res *analysis.Results) {
	b.WriteString("## Inter-Evaluator Agreement\n\n")
	b.WriteString("Pairwise agreement on discretized scores. Gwet's AC2 is more robust\n")
	b.WriteString("to marginal imbalance than Cohen's Kappa.\n\n")

	b.WriteString("### Cohen's Kappa (linear weights)\n\n")
	writeMatrix(b, res.Agreement.CohenKappa)
	b.WriteString("### Gwet's AC2\n\n")
	writeMatrix(b, res.Agreement.GwetAC2)
}

func writeMatrix(b *strings.Builder, m analysis.Matrix) {
	evaluators := make([]string, 0, len(m))
	for e := range m {
		evaluators = append(evaluators, e)
	}
	sort.Strings(evaluators)

	headers := append([]string{"Evaluator"}, evaluators...)
	rows := make([][]string, 0, len(evaluators))
	for _, e1 := range evaluators {
		row := []string{e1}
		for _, e2 := range evaluators {
			row = append(row, FormatCoefficient(m[e1][e2]))
		}
		rows = append(rows, row)
	}
	writeTable(b, headers, rows)
}

func writeDecisions(b *strings.Builder, cfg review.Config, decisions analysis.DecisionStats) {
	if len(decisions) == 0 {
		return
	}
	b.WriteString("## Accepted vs Rejected Papers\n\n")

	for _, decision := range []string{review.DecisionAccept, review.DecisionReject} {
		bucket, ok := decisions[decision]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("### %s\n\n", decision))

		rows := make([][]string, 0, len(cfg.Metrics))
		for _, metric := range cfg.Metrics {
			g := bucket.Scores[metric]
			rows = append(rows, []string{
				titleCase(metric),
				fmt.Sprintf("%.3f ± %.3f", g.Human.Mean, g.Human.Std),
				fmt.Sprintf("%.3f ± %.3f", g.AI.Mean, g.AI.Std),
			})
		}
		writeTable(b, []string{"Metric", "Human", "AI"}, rows)

		writeTable(b,
			[]string{"Detection", "Accuracy", "Precision", "Recall", "F1", "Total"},
			[][]string{confusionRow(decision, bucket.Turing)})

		writeTable(b,
			[]string{"Papers", "Reviews", "Human Reviews", "AI Reviews", "Scored Reviews"},
			[][]string{{
				fmt.Sprintf("%d", bucket.Counts.Papers),
				fmt.Sprintf("%d", bucket.Counts.Reviews),
				fmt.Sprintf("%d", bucket.Counts.HumanReviews),
				fmt.Sprintf("%d", bucket.Counts.AIReviews),
				fmt.Sprintf("%d", bucket.Counts.ScoredReviews),
			}})
	}
}

// FormatPValue renders a p-value with significance stars, "-" when not
// computable.
func FormatPValue(p stats.Float) string {
	if !p.Valid() {
		return "-"
	}
	stars := ""
	switch v := float64(p); {
	case v < 0.001:
		stars = "***"
	case v < 0.01:
		stars = "**"
	case v < 0.05:
		stars = "*"
	}
	return fmt.Sprintf("%.4f%s", float64(p), stars)
}

// FormatDelta renders a signed effect size.
func FormatDelta(d float64) string {
	return fmt.Sprintf("%+.3f", d)
}

// FormatCoefficient renders an agreement coefficient, "-" when
// undefined.
func FormatCoefficient(c stats.Float) string {
	if !c.Valid() {
		return "-"
	}
	return fmt.Sprintf("%.2f", float64(c))
}

func summaryRow(label string, s stats.Summary) []string {
	return []string{
		label,
		fmt.Sprintf("%d", s.N),
		fmt.Sprintf("%.2f", s.Min),
		fmt.Sprintf("%.2f", s.Max),
		fmt.Sprintf("%.3f", s.Mean),
		fmt.Sprintf("%.3f", s.Std),
	}
}

func confusionRow(label string, c stats.ConfusionStats) []string {
	return []string{
		label,
		fmt.Sprintf("%.3f", c.Accuracy),
		fmt.Sprintf("%.3f", c.Precision),
		fmt.Sprintf("%.3f", c.Recall),
		fmt.Sprintf("%.3f", c.F1),
		fmt.Sprintf("%d", c.Total),
	}
}

func modelNames(res *analysis.Results) []string {
	models := make([]string, 0, len(res.Significance.PerModel))
	for m := range res.Significance.PerModel {
		models = append(models, m)
	}
	sort.Strings(models)
	return models
}

func writeTable(b *strings.Builder, headers []string, rows [][]string) {
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	b.WriteString("| " + strings.Join(sep, " | ") + " |\n")
	for _, row := range rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
	b.WriteString("\n")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
