package tourism

import "github.com/mzurbriggen/alpinequery/internal/model"

// MockCatalog returns the built-in activity catalog used when no API is
// configured. It mirrors the shape of real catalog responses closely enough
// for the evaluation harness.
func MockCatalog() []model.Activity {
	return []model.Activity{
		{
			ID: "act-001", Name: "Jungfraujoch",
			Description: "Rail excursion to the Top of Europe with glacier panorama",
			Experience:  "sightseeing", Duration: "full_day", Difficulty: "easy",
			Audiences: []string{"everyone", "families", "seniors"}, Region: "Bernese Oberland",
		},
		{
			ID: "act-002", Name: "Eiger Trail",
			Description: "Hike beneath the Eiger north face from Eigergletscher to Alpiglen",
			Experience:  "hiking", Duration: "half_day", Difficulty: "moderate",
			Audiences: []string{"everyone"}, Region: "Bernese Oberland",
		},
		{
			ID: "act-003", Name: "Lauterbrunnen Valley Walk",
			Description: "Gentle valley walk past waterfalls, stroller friendly",
			Experience:  "hiking", Duration: "half_day", Difficulty: "easy",
			Audiences: []string{"families", "seniors", "everyone"}, Region: "Bernese Oberland",
		},
		{
			ID: "act-004", Name: "Matterhorn Glacier Paradise",
			Description: "Cable car to the highest viewpoint in the Alps",
			Experience:  "sightseeing", Duration: "half_day", Difficulty: "easy",
			Audiences: []string{"everyone", "seniors"}, Region: "Valais",
		},
		{
			ID: "act-005", Name: "Hörnli Ridge Ascent",
			Description: "Guided Matterhorn climb via the Hörnli ridge",
			Experience:  "adventure", Duration: "multi_day", Difficulty: "expert",
			Audiences: []string{"experts"}, Region: "Valais",
		},
		{
			ID: "act-006", Name: "Five Lakes Walk Zermatt",
			Description: "Panoramic walk past five mountain lakes with Matterhorn views",
			Experience:  "hiking", Duration: "half_day", Difficulty: "easy",
			Audiences: []string{"families", "seniors", "everyone"}, Region: "Valais",
		},
		{
			ID: "act-007", Name: "Aletsch Glacier Trek",
			Description: "Full-day trek along the largest glacier in the Alps",
			Experience:  "hiking", Duration: "full_day", Difficulty: "hard",
			Audiences: []string{"experts", "everyone"}, Region: "Valais",
		},
		{
			ID: "act-008", Name: "Chillon Castle",
			Description: "Medieval island castle on Lake Geneva",
			Experience:  "culture", Duration: "short", Difficulty: "easy",
			Audiences: []string{"everyone", "families", "seniors"}, Region: "Lake Geneva",
		},
		{
			ID: "act-009", Name: "Interlaken Paragliding",
			Description: "Tandem paragliding over the lakes of Interlaken",
			Experience:  "adventure", Duration: "short", Difficulty: "moderate",
			Audiences: []string{"everyone"}, Region: "Bernese Oberland",
		},
		{
			ID: "act-010", Name: "Leukerbad Thermal Baths",
			Description: "Alpine thermal spa with mountain views",
			Experience:  "wellness", Duration: "half_day", Difficulty: "easy",
			Audiences: []string{"everyone", "seniors", "families"}, Region: "Valais",
		},
		{
			ID: "act-011", Name: "Creux du Van Rim Hike",
			Description: "Hike along the rim of the natural rock arena",
			Experience:  "hiking", Duration: "full_day", Difficulty: "moderate",
			Audiences: []string{"everyone"}, Region: "Jura",
		},
		{
			ID: "act-012", Name: "Swiss National Museum",
			Description: "Cultural history of Switzerland in Zurich",
			Experience:  "culture", Duration: "short", Difficulty: "easy",
			Audiences: []string{"everyone", "families", "seniors"}, Region: "Zurich",
		},
		{
			ID: "act-013", Name: "Via Ferrata Mürren",
			Description: "Protected climbing route above the Lauterbrunnen valley",
			Experience:  "adventure", Duration: "half_day", Difficulty: "hard",
			Audiences: []string{"experts"}, Region: "Bernese Oberland",
		},
		{
			ID: "act-014", Name: "Lake Lucerne Panorama Cruise",
			Description: "Relaxed boat cruise with alpine scenery",
			Experience:  "sightseeing", Duration: "half_day", Difficulty: "easy",
			Audiences: []string{"everyone", "seniors", "families"}, Region: "Central Switzerland",
		},
		{
			ID: "act-015", Name: "Haute Route Chamonix-Zermatt",
			Description: "Classic multi-day high alpine trek",
			Experience:  "hiking", Duration: "multi_day", Difficulty: "expert",
			Audiences: []string{"experts"}, Region: "Valais",
		},
	}
}
