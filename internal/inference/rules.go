package inference

import "github.com/mzurbriggen/alpinequery/internal/fuzzy"

// ConfidenceRules maps text-similarity bands monotonically onto confidence
// bands: the better the match, the higher the interpretation confidence.
func ConfidenceRules() []Rule {
	return []Rule{
		{
			ID:         "conf_r1",
			Antecedent: []Condition{{Variable: fuzzy.VarSimilarity, Set: "exact_match"}},
			Consequent: Consequent{Variable: fuzzy.VarConfidence, Set: "very_high"},
		},
		{
			ID:         "conf_r2",
			Antecedent: []Condition{{Variable: fuzzy.VarSimilarity, Set: "strong"}},
			Consequent: Consequent{Variable: fuzzy.VarConfidence, Set: "high"},
		},
		{
			ID:         "conf_r3",
			Antecedent: []Condition{{Variable: fuzzy.VarSimilarity, Set: "moderate"}},
			Consequent: Consequent{Variable: fuzzy.VarConfidence, Set: "medium"},
		},
		{
			ID:         "conf_r4",
			Antecedent: []Condition{{Variable: fuzzy.VarSimilarity, Set: "weak"}},
			Consequent: Consequent{Variable: fuzzy.VarConfidence, Set: "low"},
		},
		{
			ID:         "conf_r5",
			Antecedent: []Condition{{Variable: fuzzy.VarSimilarity, Set: "no_match"}},
			Consequent: Consequent{Variable: fuzzy.VarConfidence, Set: "very_low"},
		},
	}
}

// RelevanceRules combines similarity and confidence into a relevance band.
// rel_r6 and rel_r7 are the promotion rules: a weaker similarity match still
// earns a higher relevance band when confidence in the interpretation is
// very high.
func RelevanceRules() []Rule {
	return []Rule{
		{
			ID: "rel_r1",
			Antecedent: []Condition{
				{Variable: fuzzy.VarSimilarity, Set: "exact_match"},
				{Variable: fuzzy.VarConfidence, Set: "very_high"},
			},
			Consequent: Consequent{Variable: fuzzy.VarRelevance, Set: "highly_relevant"},
		},
		{
			ID: "rel_r2",
			Antecedent: []Condition{
				{Variable: fuzzy.VarSimilarity, Set: "strong"},
				{Variable: fuzzy.VarConfidence, Set: "high"},
			},
			Consequent: Consequent{Variable: fuzzy.VarRelevance, Set: "highly_relevant"},
		},
		{
			ID: "rel_r3",
			Antecedent: []Condition{
				{Variable: fuzzy.VarSimilarity, Set: "moderate"},
				{Variable: fuzzy.VarConfidence, Set: "medium"},
			},
			Consequent: Consequent{Variable: fuzzy.VarRelevance, Set: "relevant"},
		},
		{
			ID:         "rel_r4",
			Antecedent: []Condition{{Variable: fuzzy.VarSimilarity, Set: "weak"}},
			Consequent: Consequent{Variable: fuzzy.VarRelevance, Set: "marginal"},
		},
		{
			ID:         "rel_r5",
			Antecedent: []Condition{{Variable: fuzzy.VarSimilarity, Set: "no_match"}},
			Consequent: Consequent{Variable: fuzzy.VarRelevance, Set: "irrelevant"},
		},
		{
			ID: "rel_r6",
			Antecedent: []Condition{
				{Variable: fuzzy.VarSimilarity, Set: "moderate"},
				{Variable: fuzzy.VarConfidence, Set: "very_high"},
			},
			Consequent: Consequent{Variable: fuzzy.VarRelevance, Set: "highly_relevant"},
		},
		{
			ID: "rel_r7",
			Antecedent: []Condition{
				{Variable: fuzzy.VarSimilarity, Set: "weak"},
				{Variable: fuzzy.VarConfidence, Set: "very_high"},
			},
			Consequent: Consequent{Variable: fuzzy.VarRelevance, Set: "relevant"},
		},
	}
}

// NewConfidenceEngine builds the engine that maps similarity scores to
// interpretation confidence.
func NewConfidenceEngine() *Engine {
	return mustEngine(
		[]*fuzzy.Variable{fuzzy.SimilarityVariable(), fuzzy.ConfidenceVariable()},
		ConfidenceRules(),
	)
}

// NewRelevanceEngine builds the engine that maps similarity and confidence
// to search-result relevance.
func NewRelevanceEngine() *Engine {
	return mustEngine(
		[]*fuzzy.Variable{fuzzy.SimilarityVariable(), fuzzy.ConfidenceVariable(), fuzzy.RelevanceVariable()},
		RelevanceRules(),
	)
}

// mustEngine wires static fixtures; any failure is a programming error in
// the fixture definitions, so it panics at startup rather than limping on.
func mustEngine(variables []*fuzzy.Variable, rules []Rule) *Engine {
	e := New(DefaultConfig())
	for _, v := range variables {
		if err := e.RegisterVariable(v); err != nil {
			panic(err)
		}
	}
	if err := e.AddRules(rules); err != nil {
		panic(err)
	}
	return e
}
