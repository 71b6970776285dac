package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/reviewbench/reviewbench/internal/analysis"
	"github.com/reviewbench/reviewbench/internal/projectconfig"
	"github.com/reviewbench/reviewbench/internal/results"
	"github.com/reviewbench/reviewbench/internal/review"
)

func newSweepCommand() *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the analysis under every normalization mode",
		Long: `Run the full analysis once per normalization mode.

Each mode writes its output under <results>/norm_<mode>/ so the effect
of normalization on the statistics can be compared side by side.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return sweepCommandE(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.dataDir, "data", "", "Directory containing evaluation data files")
	cmd.Flags().StringVar(&opts.resultsDir, "results", "", "Directory to write analysis output")
	cmd.Flags().BoolVar(&opts.compress, "compress", false, "Gzip-compress output files")

	return cmd
}

func sweepCommandE(cmd *cobra.Command, opts analyzeOptions) error {
	projCfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}
	resolveAnalyzeOptions(cmd, &opts, projCfg)

	cfg := review.DefaultConfig()

	var mu sync.Mutex // guards command output ordering
	eg := errgroup.Group{}

	for _, mode := range review.AllNormalizationModes() {
		eg.Go(func() error {
			slog.Debug("sweep: running analysis", "mode", mode)

			ds, err := review.Load(cfg, opts.dataDir, mode)
			if err != nil {
				return fmt.Errorf("mode %s: %w", mode, err)
			}
			res, err := analysis.Run(cfg, ds)
			if err != nil {
				return fmt.Errorf("mode %s: %w", mode, err)
			}
			decisions := analysis.ComputeDecisionStats(cfg, ds)

			outDir := filepath.Join(opts.resultsDir, "norm_"+string(mode))
			metricsPath, err := results.WriteJSON(filepath.Join(outDir, "metrics.json"), res, opts.compress)
			if err != nil {
				return err
			}
			decisionsPath, err := results.WriteJSON(filepath.Join(outDir, "decision_stats.json"), decisions, opts.compress)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", metricsPath)   //nolint:errcheck
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", decisionsPath) //nolint:errcheck
			return nil
		})
	}

	return eg.Wait()
}
