package review

// Overview summarizes the raw input corpus: exact review counts taken
// while parsing, before any flattening. It feeds the terminal summary
// table after a load.
type Overview struct {
	Papers        int            `json:"papers"`
	Reviews       int            `json:"reviews"`
	HumanReviews  int            `json:"human_reviews"`
	AIReviews     int            `json:"ai_reviews"`
	ScoredReviews int            `json:"scored_reviews"`
	Decisions     map[string]int `json:"decisions"`
	ModelPapers   map[string]int `json:"model_papers"`
}

// overviewBuilder accumulates Overview counts during a load. Papers are
// deduplicated by title because the same paper appears in every
// evaluator file that covers it.
type overviewBuilder struct {
	titles      map[string]bool
	decisions   map[string]int
	modelPapers map[string]map[string]bool
	ov          Overview
}

func newOverview() *overviewBuilder {
	return &overviewBuilder{
		titles:      map[string]bool{},
		decisions:   map[string]int{},
		modelPapers: map[string]map[string]bool{},
	}
}

func (b *overviewBuilder) addPaper(title, decision string) {
	if b.titles[title] {
		return
	}
	b.titles[title] = true
	b.decisions[decision]++
}

func (b *overviewBuilder) addReview(isHuman, scored bool) {
	b.ov.Reviews++
	if isHuman {
		b.ov.HumanReviews++
	} else {
		b.ov.AIReviews++
	}
	if scored {
		b.ov.ScoredReviews++
	}
}

func (b *overviewBuilder) addModelPaper(model, title string) {
	if b.modelPapers[model] == nil {
		b.modelPapers[model] = map[string]bool{}
	}
	b.modelPapers[model][title] = true
}

func (b *overviewBuilder) finish() Overview {
	b.ov.Papers = len(b.titles)
	b.ov.Decisions = b.decisions
	b.ov.ModelPapers = map[string]int{}
	for model, titles := range b.modelPapers {
		b.ov.ModelPapers[model] = len(titles)
	}
	return b.ov
}
