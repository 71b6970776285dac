package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/reviewbench/reviewbench/internal/analysis"
	"github.com/reviewbench/reviewbench/internal/projectconfig"
	"github.com/reviewbench/reviewbench/internal/report"
	"github.com/reviewbench/reviewbench/internal/results"
	"github.com/reviewbench/reviewbench/internal/review"
)

type reportOptions struct {
	resultsDir string
	html       bool
}

func newReportCommand() *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render analysis output as a Markdown report",
		Long: `Render a previously written analysis bundle as a Markdown report.

Reads metrics.json (and decision_stats.json when present) from the
results directory and writes report.md next to them. With --html a
standalone report.html is written as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportCommandE(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.resultsDir, "results", "", "Directory containing analysis output")
	cmd.Flags().BoolVar(&opts.html, "html", false, "Also write a standalone HTML report")

	return cmd
}

func reportCommandE(cmd *cobra.Command, opts reportOptions) error {
	projCfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}
	if opts.resultsDir == "" {
		opts.resultsDir = projCfg.Paths.Results
	}
	if !cmd.Flags().Changed("html") && projCfg.Report.HTML != nil {
		opts.html = *projCfg.Report.HTML
	}

	var res analysis.Results
	if err := readArtifact(opts.resultsDir, "metrics.json", &res); err != nil {
		return fmt.Errorf("reading metrics.json: %w", err)
	}

	// decision_stats.json is optional; older bundles may not have it.
	var decisions analysis.DecisionStats
	if err := readArtifact(opts.resultsDir, "decision_stats.json", &decisions); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("reading decision_stats.json: %w", err)
		}
		slog.Debug("no decision_stats.json found, skipping decision section")
	}

	cfg := review.DefaultConfig()
	markdown := report.Markdown(cfg, &res, decisions)

	mdPath := filepath.Join(opts.resultsDir, "report.md")
	if err := os.WriteFile(mdPath, []byte(markdown), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", mdPath) //nolint:errcheck

	if opts.html {
		html, err := report.HTML(markdown)
		if err != nil {
			return err
		}
		htmlPath := filepath.Join(opts.resultsDir, "report.html")
		if err := os.WriteFile(htmlPath, html, 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", htmlPath) //nolint:errcheck
	}

	return nil
}

// readArtifact loads a result file, falling back to its gzip-compressed
// variant when only that exists.
func readArtifact(dir, name string, v any) error {
	path := filepath.Join(dir, name)
	err := results.ReadJSON(path, v)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if gzErr := results.ReadJSON(path+".gz", v); gzErr == nil {
		return nil
	}
	return err
}
