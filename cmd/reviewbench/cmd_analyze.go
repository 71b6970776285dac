package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/reviewbench/reviewbench/internal/analysis"
	"github.com/reviewbench/reviewbench/internal/projectconfig"
	"github.com/reviewbench/reviewbench/internal/results"
	"github.com/reviewbench/reviewbench/internal/review"
)

type analyzeOptions struct {
	dataDir       string
	resultsDir    string
	normalization string
	compress      bool
}

func newAnalyzeCommand() *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full statistical analysis",
		Long: `Run the full statistical analysis over a directory of evaluation data.

Loads every JSON data file in the data directory, normalizes scores
according to the selected mode, and writes metrics.json and
decision_stats.json to the results directory.

Flags override values from .reviewbench.yaml when both are present.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return analyzeCommandE(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.dataDir, "data", "", "Directory containing evaluation data files")
	cmd.Flags().StringVar(&opts.resultsDir, "results", "", "Directory to write analysis output")
	cmd.Flags().StringVar(&opts.normalization, "normalization", "", "Score normalization mode (none, evaluator, evaluator_metric, evaluator_metric_target)")
	cmd.Flags().BoolVar(&opts.compress, "compress", false, "Gzip-compress output files")

	return cmd
}

func analyzeCommandE(cmd *cobra.Command, opts analyzeOptions) error {
	projCfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}
	resolveAnalyzeOptions(cmd, &opts, projCfg)

	mode, err := review.ParseNormalizationMode(opts.normalization)
	if err != nil {
		return err
	}

	cfg := review.DefaultConfig()
	ds, err := review.Load(cfg, opts.dataDir, mode)
	if err != nil {
		return err
	}

	printOverview(cmd, ds)

	res, err := analysis.Run(cfg, ds)
	if err != nil {
		return err
	}
	decisions := analysis.ComputeDecisionStats(cfg, ds)

	metricsPath, err := results.WriteJSON(filepath.Join(opts.resultsDir, "metrics.json"), res, opts.compress)
	if err != nil {
		return err
	}
	decisionsPath, err := results.WriteJSON(filepath.Join(opts.resultsDir, "decision_stats.json"), decisions, opts.compress)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", metricsPath)   //nolint:errcheck
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", decisionsPath) //nolint:errcheck
	return nil
}

// resolveAnalyzeOptions fills unset flags from project config.
func resolveAnalyzeOptions(cmd *cobra.Command, opts *analyzeOptions, projCfg *projectconfig.ProjectConfig) {
	if opts.dataDir == "" {
		opts.dataDir = projCfg.Paths.Data
	}
	if opts.resultsDir == "" {
		opts.resultsDir = projCfg.Paths.Results
	}
	if opts.normalization == "" {
		opts.normalization = projCfg.Analysis.Normalization
	}
	if !cmd.Flags().Changed("compress") && projCfg.Report.Compress != nil {
		opts.compress = *projCfg.Report.Compress
	}
}

func printOverview(cmd *cobra.Command, ds *review.Dataset) {
	w := cmd.OutOrStdout()
	o := ds.Overview

	const labelWidth = 16
	fmt.Fprintf(w, "\nDataset overview (normalization: %s)\n\n", ds.Mode) //nolint:errcheck
	rows := []struct {
		label string
		value int
	}{
		{"Papers", o.Papers},
		{"Reviews", o.Reviews},
		{"Human reviews", o.HumanReviews},
		{"AI reviews", o.AIReviews},
		{"Scored reviews", o.ScoredReviews},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %s %d\n", padRight(r.label, labelWidth), r.value) //nolint:errcheck
	}

	if len(o.Decisions) > 0 {
		fmt.Fprintf(w, "\n  Decisions:\n") //nolint:errcheck
		for _, d := range sortedCountKeys(o.Decisions) {
			fmt.Fprintf(w, "    %s %d\n", padRight(d, labelWidth-2), o.Decisions[d]) //nolint:errcheck
		}
	}
	if len(o.ModelPapers) > 0 {
		fmt.Fprintf(w, "\n  Papers per model:\n") //nolint:errcheck
		for _, m := range sortedCountKeys(o.ModelPapers) {
			fmt.Fprintf(w, "    %s %d\n", padRight(m, labelWidth-2), o.ModelPapers[m]) //nolint:errcheck
		}
	}
	fmt.Fprintln(w) //nolint:errcheck
}

func sortedCountKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
