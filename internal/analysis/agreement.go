package analysis

import (
	"github.com/reviewbench/reviewbench/internal/review"
	"github.com/reviewbench/reviewbench/internal/stats"
)

// ratingKey identifies the object two evaluators can agree on: one
// metric of one reviewed artifact, where the artifact is the paper
// together with the reviewer identity (human, or a specific AI model).
type ratingKey struct {
	paper   string
	isHuman bool
	model   string
	metric  string
}

func computeAgreement(cfg review.Config, ds *review.Dataset) Agreement {
	ratings := map[ratingKey]map[string]float64{}
	var order []ratingKey
	for _, r := range ds.Records {
		key := ratingKey{r.PaperTitle, r.IsHuman, r.Model, r.Metric}
		if ratings[key] == nil {
			ratings[key] = map[string]float64{}
			order = append(order, key)
		}
		ratings[key][r.Evaluator] = r.Score
	}

	kappa := newMatrix(ds.Evaluators)
	ac2 := newMatrix(ds.Evaluators)

	for i := 0; i < len(ds.Evaluators); i++ {
		for j := i + 1; j < len(ds.Evaluators); j++ {
			e1, e2 := ds.Evaluators[i], ds.Evaluators[j]

			var s1, s2 []float64
			for _, key := range order {
				byEval := ratings[key]
				v1, ok1 := byEval[e1]
				v2, ok2 := byEval[e2]
				if ok1 && ok2 {
					s1 = append(s1, v1)
					s2 = append(s2, v2)
				}
			}

			// Coefficients from tiny overlaps are unstable; leave them
			// undefined below the threshold.
			k, a := stats.NotComputable(), stats.NotComputable()
			if len(s1) > stats.MinAgreementOverlap {
				r1 := stats.RoundScores(s1, cfg.Categories)
				r2 := stats.RoundScores(s2, cfg.Categories)
				k = stats.WeightedKappa(r1, r2, cfg.Categories)
				a = stats.GwetAC2(r1, r2, cfg.Categories)
			}

			kappa[e1][e2], kappa[e2][e1] = k, k
			ac2[e1][e2], ac2[e2][e1] = a, a
		}
	}

	return Agreement{CohenKappa: kappa, GwetAC2: ac2}
}

// newMatrix pre-fills an evaluator matrix with the undefined sentinel,
// including the diagonal.
func newMatrix(evaluators []string) Matrix {
	m := Matrix{}
	for _, e1 := range evaluators {
		m[e1] = map[string]stats.Float{}
		for _, e2 := range evaluators {
			m[e1][e2] = stats.NotComputable()
		}
	}
	return m
}
