package model

// Filter categories recognized by the interpreter
const (
	CategoryExperience = "experience"
	CategoryDuration   = "duration"
	CategoryDifficulty = "difficulty"
	CategoryAudience   = "audience"
)

// FilterMatch records how one categorical filter was extracted from a query
type FilterMatch struct {
	Category   string  `json:"category"`             // experience, duration, difficulty, audience
	Label      string  `json:"label"`                // canonical filter value, e.g. "hiking"
	Term       string  `json:"term,omitempty"`       // query term that matched
	Similarity float64 `json:"similarity"`           // best lexicon similarity in [0,1]
	Confidence float64 `json:"confidence"`           // inferred interpretation confidence
	Bands      []string `json:"bands,omitempty"`     // linguistic confidence interpretation
}

// ActivityFilters is the structured interpretation of a free-text query
type ActivityFilters struct {
	Query      string        `json:"query"`
	Experience string        `json:"experience,omitempty"` // hiking, sightseeing, adventure, culture, wellness
	Duration   string        `json:"duration,omitempty"`   // short, half_day, full_day, multi_day
	Difficulty string        `json:"difficulty,omitempty"` // easy, moderate, hard, expert
	Audience   string        `json:"audience,omitempty"`   // families, seniors, experts, everyone
	Matches    []FilterMatch `json:"matches,omitempty"`    // per-filter extraction detail
	Confidence float64       `json:"confidence"`           // overall interpretation confidence
	Source     string        `json:"source,omitempty"`     // fuzzy or llm
}

// Match returns the extraction detail for a category, if any
func (f *ActivityFilters) Match(category string) (FilterMatch, bool) {
	for _, m := range f.Matches {
		if m.Category == category {
			return m, true
		}
	}
	return FilterMatch{}, false
}

// Value returns the filter value for a category name
func (f *ActivityFilters) Value(category string) string {
	switch category {
	case CategoryExperience:
		return f.Experience
	case CategoryDuration:
		return f.Duration
	case CategoryDifficulty:
		return f.Difficulty
	case CategoryAudience:
		return f.Audience
	default:
		return ""
	}
}
