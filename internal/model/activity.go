package model

// Activity is a tourism activity as returned by the catalog
type Activity struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Experience  string   `json:"experience"`           // hiking, sightseeing, adventure, culture, wellness
	Duration    string   `json:"duration"`             // short, half_day, full_day, multi_day
	Difficulty  string   `json:"difficulty"`           // easy, moderate, hard, expert
	Audiences   []string `json:"audiences,omitempty"`  // families, seniors, experts, everyone
	Region      string   `json:"region,omitempty"`
	Score       float64  `json:"score,omitempty"`      // relevance score attached by the search
}

// SuitableFor reports whether the activity targets the given audience.
// An activity with no audience list suits everyone.
func (a *Activity) SuitableFor(audience string) bool {
	if audience == "" || len(a.Audiences) == 0 {
		return true
	}
	for _, aud := range a.Audiences {
		if aud == audience || aud == "everyone" {
			return true
		}
	}
	return false
}

// Titles extracts the activity names from a result list
func Titles(activities []Activity) []string {
	titles := make([]string, 0, len(activities))
	for _, a := range activities {
		titles = append(titles, a.Name)
	}
	return titles
}
