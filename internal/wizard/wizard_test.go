package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/yaml.v3"

	"github.com/reviewbench/reviewbench/internal/review"
)

func TestGenerateConfigYAML(t *testing.T) {
	spec := &ProjectSpec{
		DataDir:       "eval-data/",
		ResultsDir:    "out/",
		Normalization: review.NormEvaluator,
		HTML:          true,
	}

	result, err := GenerateConfigYAML(spec)
	require.NoError(t, err)

	assert.Contains(t, result, "data: eval-data/")
	assert.Contains(t, result, "results: out/")
	assert.Contains(t, result, "normalization: evaluator")
	assert.Contains(t, result, "html: true")
}

func TestGenerateConfigYAML_ParsesBack(t *testing.T) {
	spec := &ProjectSpec{
		DataDir:       "data/",
		ResultsDir:    "results/",
		Normalization: review.NormEvaluatorMetricTarget,
	}

	result, err := GenerateConfigYAML(spec)
	require.NoError(t, err)

	var parsed struct {
		Paths struct {
			Data    string `yaml:"data"`
			Results string `yaml:"results"`
		} `yaml:"paths"`
		Analysis struct {
			Normalization string `yaml:"normalization"`
		} `yaml:"analysis"`
		Report struct {
			HTML bool `yaml:"html"`
		} `yaml:"report"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(result), &parsed))

	assert.Equal(t, "data/", parsed.Paths.Data)
	assert.Equal(t, "results/", parsed.Paths.Results)
	assert.Equal(t, "evaluator_metric_target", parsed.Analysis.Normalization)
	assert.False(t, parsed.Report.HTML)
}
