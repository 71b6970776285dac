// Package wizard implements the interactive project setup flow behind
// the init command.
package wizard

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/reviewbench/reviewbench/internal/review"
)

// ProjectSpec holds all fields collected during the interactive wizard.
type ProjectSpec struct {
	DataDir       string
	ResultsDir    string
	Normalization review.NormalizationMode
	HTML          bool
}

const configTemplate = `paths:
  data: {{ .DataDir }}
  results: {{ .ResultsDir }}
analysis:
  normalization: {{ .Normalization }}
report:
  html: {{ .HTML }}
`

// RunProjectWizard runs an interactive huh form to collect project
// configuration.
func RunProjectWizard(in io.Reader, out io.Writer) (*ProjectSpec, error) {
	var (
		dataDir       = "data/"
		resultsDir    = "results/"
		normalization = string(review.NormEvaluatorMetricTarget)
		html          bool
	)

	modeOptions := make([]huh.Option[string], 0, len(review.AllNormalizationModes()))
	for _, mode := range review.AllNormalizationModes() {
		modeOptions = append(modeOptions, huh.NewOption(string(mode), string(mode)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Data directory").
				Description("Directory containing per-evaluator JSON data files").
				Placeholder("data/").
				Value(&dataDir).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("data directory is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Results directory").
				Description("Where analysis output is written").
				Placeholder("results/").
				Value(&resultsDir).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("results directory is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Score normalization").
				Description("How raw scores are rescaled before analysis").
				Options(modeOptions...).
				Value(&normalization),
			huh.NewConfirm().
				Title("Generate HTML reports?").
				Value(&html),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	mode, err := review.ParseNormalizationMode(normalization)
	if err != nil {
		return nil, err
	}

	return &ProjectSpec{
		DataDir:       strings.TrimSpace(dataDir),
		ResultsDir:    strings.TrimSpace(resultsDir),
		Normalization: mode,
		HTML:          html,
	}, nil
}

// GenerateConfigYAML renders a .reviewbench.yaml from the given spec.
func GenerateConfigYAML(spec *ProjectSpec) (string, error) {
	tmpl, err := template.New("config").Parse(configTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, spec); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}
