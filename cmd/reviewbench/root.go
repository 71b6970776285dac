package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviewbench",
		Short: "reviewbench - statistical comparison of human and AI peer reviews",
		Long: `reviewbench compares AI-generated peer reviews against human reviews.

It loads per-evaluator scoring data, applies configurable score
normalization, and produces descriptive statistics, significance tests,
inter-evaluator agreement coefficients, and AI-detection (Turing test)
analysis.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newAnalyzeCommand())
	cmd.AddCommand(newSweepCommand())
	cmd.AddCommand(newReportCommand())
	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newInitCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
