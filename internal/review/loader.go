package review

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// fileData is one parsed evaluator file with its metrics pre-decoded.
type fileData struct {
	evaluator string
	papers    []Paper
	metrics   [][]ReviewMetrics
}

// Load reads every evaluator JSON file in dir and builds the Dataset for
// the given normalization mode. Normalization statistics are computed in
// a first pass over all files before any record is emitted, so every
// score of an evaluator is rescaled against that evaluator's complete
// distribution. Only scores greater than zero participate, both in the
// normalization statistics and in the emitted records.
func Load(cfg Config, dir string, mode NormalizationMode) (*Dataset, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("data directory %s: %w", dir, err)
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("listing data files in %s: %w", dir, err)
	}
	sort.Strings(paths)

	files := make([]fileData, 0, len(paths))
	for _, p := range paths {
		fd, err := parseFile(cfg, p)
		if err != nil {
			return nil, err
		}
		files = append(files, fd)
	}

	norm := buildNormalizer(cfg, mode, files)

	ds := &Dataset{Mode: mode}
	evaluators := map[string]bool{}
	models := map[string]bool{}
	ov := newOverview()

	for _, fd := range files {
		evaluators[fd.evaluator] = true
		for pi, paper := range fd.papers {
			decision := CanonicalDecision(paper.Decision)
			ov.addPaper(paper.Title, decision)

			for ri, rev := range paper.Reviews {
				isHuman := rev.Reviewer == "human"
				model := CleanModelName(rev.Reviewer)
				if !isHuman {
					models[model] = true
					ov.addModelPaper(model, paper.Title)
				}
				m := fd.metrics[pi][ri]

				// Detection events are independent of score validity.
				if m.Source == "human" || m.Source == "ai" {
					ds.Detections = append(ds.Detections, DetectionEvent{
						Evaluator:   fd.evaluator,
						ActualAI:    !isHuman,
						PredictedAI: m.Source == "ai",
						Decision:    decision,
					})
				}

				scored := false
				for _, name := range cfg.Metrics {
					val := m.Score(name)
					if val <= 0 {
						continue
					}
					scored = true
					ds.Records = append(ds.Records, ScoreRecord{
						Evaluator:  fd.evaluator,
						PaperTitle: paper.Title,
						IsHuman:    isHuman,
						Model:      model,
						Metric:     name,
						Score:      norm(fd.evaluator, name, val),
						Decision:   decision,
					})
				}
				ov.addReview(isHuman, scored)
			}
		}
	}

	ds.Evaluators = sortedKeys(evaluators)
	ds.Models = sortedKeys(models)
	ds.Overview = ov.finish()
	return ds, nil
}

func parseFile(cfg Config, path string) (fileData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileData{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var papers []Paper
	if err := json.Unmarshal(data, &papers); err != nil {
		return fileData{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	fd := fileData{
		evaluator: evaluatorName(cfg, path),
		papers:    papers,
		metrics:   make([][]ReviewMetrics, len(papers)),
	}
	for pi, paper := range papers {
		fd.metrics[pi] = make([]ReviewMetrics, len(paper.Reviews))
		for ri, rev := range paper.Reviews {
			m, err := DecodeMetrics(rev.Metrics)
			if err != nil {
				// A malformed metrics object loses its scores, not the run.
				slog.Warn("skipping unreadable review metrics",
					"file", path, "paper", paper.Title, "error", err)
				continue
			}
			fd.metrics[pi][ri] = m
		}
	}
	return fd, nil
}

// evaluatorName derives the evaluator identity from the file name: the
// stem with the configured prefix stripped, capitalized.
func evaluatorName(cfg Config, path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), ".json")
	stem = strings.TrimPrefix(stem, cfg.FilePrefix)
	return capitalize(stem)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// buildNormalizer runs the first pass over all files and returns the
// score transform for the chosen mode.
func buildNormalizer(cfg Config, mode NormalizationMode, files []fileData) func(evaluator, metric string, v float64) float64 {
	switch mode {
	case NormEvaluator:
		pooled := map[string][]float64{}
		collectScores(cfg, files, func(ev, _ string, v float64) {
			pooled[ev] = append(pooled[ev], v)
		})
		ranges := map[string]minMax{}
		for ev, vals := range pooled {
			ranges[ev] = observedRange(vals)
		}
		return func(ev, _ string, v float64) float64 {
			r, ok := ranges[ev]
			if !ok {
				r = minMax{cfg.ScaleMin, cfg.ScaleMax}
			}
			return cfg.rescale(v, r)
		}

	case NormEvaluatorMetric:
		perMetric := map[string]map[string][]float64{}
		collectScores(cfg, files, func(ev, metric string, v float64) {
			if perMetric[ev] == nil {
				perMetric[ev] = map[string][]float64{}
			}
			perMetric[ev][metric] = append(perMetric[ev][metric], v)
		})
		ranges := map[string]map[string]minMax{}
		for ev, byMetric := range perMetric {
			ranges[ev] = map[string]minMax{}
			for metric, vals := range byMetric {
				ranges[ev][metric] = observedRange(vals)
			}
		}
		return func(ev, metric string, v float64) float64 {
			r, ok := ranges[ev][metric]
			if !ok {
				r = minMax{cfg.ScaleMin, cfg.ScaleMax}
			}
			return cfg.rescale(v, r)
		}

	case NormEvaluatorMetricTarget:
		perMetric := map[string]map[string][]float64{}
		collectScores(cfg, files, func(ev, metric string, v float64) {
			if perMetric[ev] == nil {
				perMetric[ev] = map[string][]float64{}
			}
			perMetric[ev][metric] = append(perMetric[ev][metric], v)
		})
		centers := map[string]map[string]meanStd{}
		for ev, byMetric := range perMetric {
			centers[ev] = map[string]meanStd{}
			for metric, vals := range byMetric {
				centers[ev][metric] = observedCenter(vals)
			}
		}
		return func(ev, metric string, v float64) float64 {
			c, ok := centers[ev][metric]
			if !ok {
				c = meanStd{cfg.TargetMean, 1}
			}
			return cfg.recenter(v, c)
		}

	default:
		return func(_, _ string, v float64) float64 { return v }
	}
}

// collectScores invokes fn for every valid (> 0) score in every file.
func collectScores(cfg Config, files []fileData, fn func(evaluator, metric string, v float64)) {
	for _, fd := range files {
		for pi, paper := range fd.papers {
			for ri := range paper.Reviews {
				m := fd.metrics[pi][ri]
				for _, name := range cfg.Metrics {
					if v := m.Score(name); v > 0 {
						fn(fd.evaluator, name, v)
					}
				}
			}
		}
	}
}

func observedRange(vals []float64) minMax {
	r := minMax{vals[0], vals[0]}
	for _, v := range vals {
		if v < r.min {
			r.min = v
		}
		if v > r.max {
			r.max = v
		}
	}
	return r
}

func observedCenter(vals []float64) meanStd {
	mean := 0.0
	for _, v := range vals {
		mean += v
	}
	mean /= float64(len(vals))

	variance := 0.0
	for _, v := range vals {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(vals))

	std := 1.0
	if variance > 0 {
		std = math.Sqrt(variance)
	}
	return meanStd{mean, std}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
