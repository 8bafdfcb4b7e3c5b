package fuzzy

// Standard variable names used across the interpreter
const (
	VarSimilarity = "similarity"
	VarConfidence = "confidence"
	VarDifficulty = "difficulty"
	VarTimeNeeded = "time_needed"
	VarSuitability = "suitability"
	VarRelevance  = "relevance"
)

// SimilarityVariable describes normalized string-similarity scores in [0,1]
func SimilarityVariable() *Variable {
	return MustVariable(VarSimilarity, 0, 1,
		Set{Name: "no_match", Membership: MustLeftShoulder(0.05, 0.15), DomainMin: 0, DomainMax: 1},
		Set{Name: "weak", Membership: MustTriangular(0.10, 0.25, 0.40), DomainMin: 0, DomainMax: 1},
		Set{Name: "moderate", Membership: MustTriangular(0.35, 0.50, 0.65), DomainMin: 0, DomainMax: 1},
		Set{Name: "strong", Membership: MustTriangular(0.60, 0.75, 0.90), DomainMin: 0, DomainMax: 1},
		Set{Name: "exact_match", Membership: MustRightShoulder(0.85, 0.95), DomainMin: 0, DomainMax: 1},
	)
}

// ConfidenceVariable describes interpretation confidence in [0,1]
func ConfidenceVariable() *Variable {
	return MustVariable(VarConfidence, 0, 1,
		Set{Name: "very_low", Membership: MustLeftShoulder(0.10, 0.25), DomainMin: 0, DomainMax: 1},
		Set{Name: "low", Membership: MustTriangular(0.15, 0.30, 0.45), DomainMin: 0, DomainMax: 1},
		Set{Name: "medium", Membership: MustTriangular(0.35, 0.50, 0.65), DomainMin: 0, DomainMax: 1},
		Set{Name: "high", Membership: MustTriangular(0.55, 0.70, 0.85), DomainMin: 0, DomainMax: 1},
		Set{Name: "very_high", Membership: MustTriangular(0.75, 0.85, 0.95), DomainMin: 0, DomainMax: 1},
	)
}

// DifficultyVariable describes normalized activity difficulty in [0,1]
func DifficultyVariable() *Variable {
	return MustVariable(VarDifficulty, 0, 1,
		Set{Name: "easy", Membership: MustLeftShoulder(0.20, 0.35), DomainMin: 0, DomainMax: 1},
		Set{Name: "moderate", Membership: MustTriangular(0.25, 0.45, 0.65), DomainMin: 0, DomainMax: 1},
		Set{Name: "demanding", Membership: MustTriangular(0.55, 0.70, 0.85), DomainMin: 0, DomainMax: 1},
		Set{Name: "extreme", Membership: MustRightShoulder(0.75, 0.90), DomainMin: 0, DomainMax: 1},
	)
}

// TimeNeededVariable describes normalized activity duration in [0,1],
// where 0 is a quick stop and 1 a multi-day undertaking
func TimeNeededVariable() *Variable {
	return MustVariable(VarTimeNeeded, 0, 1,
		Set{Name: "quick", Membership: MustLeftShoulder(0.15, 0.30), DomainMin: 0, DomainMax: 1},
		Set{Name: "half_day", Membership: MustTriangular(0.25, 0.40, 0.55), DomainMin: 0, DomainMax: 1},
		Set{Name: "full_day", Membership: MustTriangular(0.50, 0.70, 0.85), DomainMin: 0, DomainMax: 1},
		Set{Name: "multi_day", Membership: MustRightShoulder(0.80, 0.90), DomainMin: 0, DomainMax: 1},
	)
}

// SuitabilityVariable describes how well an activity suits a target audience
func SuitabilityVariable() *Variable {
	return MustVariable(VarSuitability, 0, 1,
		Set{Name: "unsuitable", Membership: MustLeftShoulder(0.15, 0.30), DomainMin: 0, DomainMax: 1},
		Set{Name: "marginal", Membership: MustTriangular(0.25, 0.40, 0.55), DomainMin: 0, DomainMax: 1},
		Set{Name: "suitable", Membership: MustTriangular(0.50, 0.65, 0.80), DomainMin: 0, DomainMax: 1},
		Set{Name: "ideal", Membership: MustRightShoulder(0.75, 0.90), DomainMin: 0, DomainMax: 1},
	)
}

// RelevanceVariable describes search-result relevance in [0,1]
func RelevanceVariable() *Variable {
	return MustVariable(VarRelevance, 0, 1,
		Set{Name: "irrelevant", Membership: MustLeftShoulder(0.15, 0.30), DomainMin: 0, DomainMax: 1},
		Set{Name: "marginal", Membership: MustTriangular(0.25, 0.375, 0.50), DomainMin: 0, DomainMax: 1},
		Set{Name: "relevant", Membership: MustTriangular(0.45, 0.625, 0.80), DomainMin: 0, DomainMax: 1},
		Set{Name: "highly_relevant", Membership: MustRightShoulder(0.75, 0.90), DomainMin: 0, DomainMax: 1},
	)
}

// RelevanceCenters maps each relevance category to its crisp center, used by
// the weighted-average step of the fuzzy confusion matrix.
func RelevanceCenters() map[string]float64 {
	return map[string]float64{
		"irrelevant":      0.100,
		"marginal":        0.375,
		"relevant":        0.625,
		"highly_relevant": 0.875,
	}
}

// StandardVariables returns the full set of variables the interpreter
// registers at startup.
func StandardVariables() []*Variable {
	return []*Variable{
		SimilarityVariable(),
		ConfidenceVariable(),
		DifficultyVariable(),
		TimeNeededVariable(),
		SuitabilityVariable(),
		RelevanceVariable(),
	}
}
