package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/reviewbench/reviewbench/internal/projectconfig"
	"github.com/reviewbench/reviewbench/internal/review"
	"github.com/reviewbench/reviewbench/internal/wizard"
)

func newInitCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new analysis project",
		Long: `Initialize a new analysis project directory.

Creates a .reviewbench.yaml configuration file plus empty data/ and
results/ directories.

Use --interactive to run a guided wizard that collects the data
location and normalization settings.

If no directory is specified, the current directory is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return initCommandE(cmd, args, interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Run guided project setup wizard")

	return cmd
}

func initCommandE(cmd *cobra.Command, args []string, interactive bool) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	// Create the root directory if it doesn't exist
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	spec := &wizard.ProjectSpec{
		DataDir:       projectconfig.DefaultDataDir,
		ResultsDir:    projectconfig.DefaultResultsDir,
		Normalization: review.NormEvaluatorMetricTarget,
	}

	if interactive {
		var err error
		spec, err = wizard.RunProjectWizard(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	content, err := wizard.GenerateConfigYAML(spec)
	if err != nil {
		return fmt.Errorf("failed to generate %s: %w", projectconfig.ConfigFileName, err)
	}

	configPath := filepath.Join(dir, projectconfig.ConfigFileName)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	dataDir := filepath.Join(dir, spec.DataDir)
	resultsDir := filepath.Join(dir, spec.ResultsDir)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.MkdirAll(resultsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create results directory: %w", err)
	}

	// Print summary
	fmt.Fprintln(cmd.OutOrStdout(), "Initialized analysis project:") //nolint:errcheck
	fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", configPath)             //nolint:errcheck
	fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", dataDir)                //nolint:errcheck
	fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", resultsDir)             //nolint:errcheck

	return nil
}
