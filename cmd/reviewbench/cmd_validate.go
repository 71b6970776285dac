package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/reviewbench/reviewbench/internal/projectconfig"
	"github.com/reviewbench/reviewbench/internal/validation"
)

func newValidateCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "validate [files...]",
		Short: "Validate evaluation data files against the schema",
		Long: `Validate evaluation data files against the expected JSON schema.

With file arguments, only those files are checked. Without arguments,
every *.json file under the data directory is checked.

Exits with code 1 when any file fails validation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateCommandE(cmd, args, dataDir)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", "", "Directory containing evaluation data files")

	return cmd
}

func validateCommandE(cmd *cobra.Command, args []string, dataDir string) error {
	files := args
	if len(files) == 0 {
		projCfg, err := projectconfig.Load(".")
		if err != nil {
			return err
		}
		if dataDir == "" {
			dataDir = projCfg.Paths.Data
		}
		files, err = filepath.Glob(filepath.Join(dataDir, "*.json"))
		if err != nil {
			return fmt.Errorf("globbing data files: %w", err)
		}
		sort.Strings(files)
	}
	if len(files) == 0 {
		return fmt.Errorf("no data files found in %s", dataDir)
	}

	failed := 0
	for _, file := range files {
		findings, err := validation.ValidateDataFile(file)
		if err != nil {
			return err
		}
		if len(findings) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s\n", file) //nolint:errcheck
			continue
		}
		failed++
		fmt.Fprintf(cmd.OutOrStdout(), "❌ %s\n", file) //nolint:errcheck
		for _, finding := range findings {
			fmt.Fprintf(cmd.OutOrStdout(), "   - %s\n", finding) //nolint:errcheck
		}
	}

	if failed > 0 {
		return &ValidationFailureError{
			Message: fmt.Sprintf("%d of %d data files failed validation", failed, len(files)),
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "All %d data files are valid\n", len(files)) //nolint:errcheck
	return nil
}
