// Package review defines the evaluation data model and the loader that
// turns per-evaluator JSON files into a normalized, in-memory Dataset.
package review

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Metric names, in canonical report order.
const (
	MetricCoverage         = "coverage"
	MetricSpecificity      = "specificity"
	MetricCorrectness      = "correctness"
	MetricConstructiveness = "constructiveness"
	MetricStance           = "stance"
)

// Canonical paper decisions.
const (
	DecisionAccept = "Accept"
	DecisionReject = "Reject"
	DecisionOther  = "Other"
)

// aiPrefix marks AI reviewer identities in the input files ("ai/<model>").
const aiPrefix = "ai/"

// Config carries the fixed parameters shared by the loader and the
// analysis pipeline. It is built once and passed explicitly; no package
// holds mutable global state.
type Config struct {
	// Metrics is the ordered list of score metrics every review may carry.
	Metrics []string
	// ScaleMin and ScaleMax bound the ordinal score scale.
	ScaleMin float64
	ScaleMax float64
	// TargetMean is the recentered mean for z-score normalization.
	TargetMean float64
	// Categories is the number of discrete categories used by the
	// agreement coefficients.
	Categories int
	// FilePrefix is stripped from input file stems when deriving the
	// evaluator name.
	FilePrefix string
}

// DefaultConfig returns the standard five-metric 1-5 scale configuration.
func DefaultConfig() Config {
	return Config{
		Metrics: []string{
			MetricCoverage,
			MetricSpecificity,
			MetricCorrectness,
			MetricConstructiveness,
			MetricStance,
		},
		ScaleMin:   1,
		ScaleMax:   5,
		TargetMean: 2.5,
		Categories: 5,
		FilePrefix: "evaluation-data-all-venues-",
	}
}

// NormalizationMode selects how raw scores are rescaled at load time.
type NormalizationMode string

const (
	// NormNone passes scores through unchanged.
	NormNone NormalizationMode = "none"
	// NormEvaluator min-max rescales each evaluator's pooled scores.
	NormEvaluator NormalizationMode = "evaluator"
	// NormEvaluatorMetric min-max rescales per (evaluator, metric) pair.
	NormEvaluatorMetric NormalizationMode = "evaluator_metric"
	// NormEvaluatorMetricTarget z-scores per (evaluator, metric) pair,
	// recentered to the target mean and clamped to the scale bounds.
	NormEvaluatorMetricTarget NormalizationMode = "evaluator_metric_target"
)

// AllNormalizationModes lists every mode, in sweep order.
func AllNormalizationModes() []NormalizationMode {
	return []NormalizationMode{
		NormNone,
		NormEvaluator,
		NormEvaluatorMetric,
		NormEvaluatorMetricTarget,
	}
}

// ParseNormalizationMode converts a flag value to a NormalizationMode.
func ParseNormalizationMode(s string) (NormalizationMode, error) {
	switch NormalizationMode(strings.ToLower(strings.TrimSpace(s))) {
	case NormNone:
		return NormNone, nil
	case NormEvaluator:
		return NormEvaluator, nil
	case NormEvaluatorMetric:
		return NormEvaluatorMetric, nil
	case NormEvaluatorMetricTarget:
		return NormEvaluatorMetricTarget, nil
	default:
		return NormNone, fmt.Errorf("invalid normalization mode %q: must be none, evaluator, evaluator_metric, or evaluator_metric_target", s)
	}
}

// ScoreRecord is one metric-bearing review observation. Records exist
// only for scores greater than zero; a zero means "unscored" and is
// dropped at ingestion.
type ScoreRecord struct {
	Evaluator  string
	PaperTitle string
	IsHuman    bool
	Model      string
	Metric     string
	Score      float64
	Decision   string
}

// DetectionEvent is one authorship guess an evaluator made about a
// review. Events exist only when the guess was a recognized value.
type DetectionEvent struct {
	Evaluator   string
	ActualAI    bool
	PredictedAI bool
	Decision    string
}

// Dataset is the full in-memory collection for one load: flat score
// records, detection events, and the distinct sorted evaluator and AI
// model names observed. It is immutable once built.
type Dataset struct {
	Mode       NormalizationMode
	Records    []ScoreRecord
	Detections []DetectionEvent
	Evaluators []string
	Models     []string
	Overview   Overview
}

// Empty reports whether no score records were loaded.
func (d *Dataset) Empty() bool {
	return len(d.Records) == 0
}

// Paper is one paper entry of an evaluator data file.
type Paper struct {
	Title    string   `json:"title"`
	Decision string   `json:"decision"`
	Reviews  []Review `json:"reviews"`
}

// Review is one review entry of a paper. Metrics is kept as a raw map
// because the field mixes numeric scores with string annotations.
type Review struct {
	Reviewer      string           `json:"reviewer"`
	Text          string           `json:"text"`
	Metrics       map[string]any   `json:"metrics"`
	Harmonization []HarmonizedText `json:"harmonization,omitempty"`
}

// HarmonizedText is an externally rewritten variant of a review's text.
// The engine carries it through untouched.
type HarmonizedText struct {
	Text  string `json:"text"`
	Model string `json:"model"`
}

// ReviewMetrics is the typed view of a review's metrics object.
type ReviewMetrics struct {
	Coverage         float64 `mapstructure:"coverage"`
	Specificity      float64 `mapstructure:"specificity"`
	Correctness      float64 `mapstructure:"correctness"`
	Constructiveness float64 `mapstructure:"constructiveness"`
	Stance           float64 `mapstructure:"stance"`
	Source           string  `mapstructure:"source"`
	Comment          string  `mapstructure:"comment"`
}

// Score returns the value of the named metric, 0 if unknown.
func (m ReviewMetrics) Score(name string) float64 {
	switch name {
	case MetricCoverage:
		return m.Coverage
	case MetricSpecificity:
		return m.Specificity
	case MetricCorrectness:
		return m.Correctness
	case MetricConstructiveness:
		return m.Constructiveness
	case MetricStance:
		return m.Stance
	default:
		return 0
	}
}

// DecodeMetrics converts the raw metrics map of a review into its typed
// form. Numeric values may arrive as JSON integers or floats; weak
// typing absorbs both.
func DecodeMetrics(raw map[string]any) (ReviewMetrics, error) {
	var m ReviewMetrics
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &m,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return m, fmt.Errorf("building metrics decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return m, fmt.Errorf("decoding review metrics: %w", err)
	}
	return m, nil
}

// CanonicalDecision maps a raw decision string to Accept, Reject, or
// Other by case-insensitive substring match.
func CanonicalDecision(raw string) string {
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "accept"):
		return DecisionAccept
	case strings.Contains(lower, "reject"):
		return DecisionReject
	default:
		return DecisionOther
	}
}

// CleanModelName strips the "ai/" prefix from a reviewer identity.
func CleanModelName(name string) string {
	return strings.TrimPrefix(name, aiPrefix)
}
