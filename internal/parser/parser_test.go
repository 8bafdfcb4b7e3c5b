package parser

import (
	"testing"

	"github.com/mzurbriggen/alpinequery/internal/model"
)

func TestParse_FullQuery(t *testing.T) {
	p := New()

	filters := p.Parse("easy hike for seniors, half day")

	if filters.Experience != "hiking" {
		t.Errorf("experience = %q, want hiking", filters.Experience)
	}
	if filters.Duration != "half_day" {
		t.Errorf("duration = %q, want half_day", filters.Duration)
	}
	if filters.Difficulty != "easy" {
		t.Errorf("difficulty = %q, want easy", filters.Difficulty)
	}
	if filters.Audience != "seniors" {
		t.Errorf("audience = %q, want seniors", filters.Audience)
	}
	if len(filters.Matches) != 4 {
		t.Fatalf("matches = %d, want 4", len(filters.Matches))
	}
	for _, m := range filters.Matches {
		if m.Similarity != 1.0 {
			t.Errorf("%s match similarity = %v, want 1.0", m.Category, m.Similarity)
		}
		if m.Confidence < 0.7 {
			t.Errorf("%s match confidence = %v, want at least 0.7", m.Category, m.Confidence)
		}
		if len(m.Bands) == 0 {
			t.Errorf("%s match has no linguistic bands", m.Category)
		}
	}
	// Compensation keeps the overall confidence between product and mean
	if filters.Confidence < 0.5 || filters.Confidence > 0.85 {
		t.Errorf("overall confidence = %v, want in [0.5, 0.85]", filters.Confidence)
	}
	if filters.Source != "fuzzy" {
		t.Errorf("source = %q, want fuzzy", filters.Source)
	}
}

func TestParse_TypoTolerance(t *testing.T) {
	p := New()

	filters := p.Parse("hikng")
	if filters.Experience != "hiking" {
		t.Errorf("experience = %q, want hiking despite the typo", filters.Experience)
	}
	match, ok := filters.Match(model.CategoryExperience)
	if !ok {
		t.Fatal("expected an experience match")
	}
	if match.Similarity >= 1.0 || match.Similarity < 0.6 {
		t.Errorf("typo similarity = %v, want in [0.6, 1.0)", match.Similarity)
	}
}

func TestParse_NoRecognizableTerms(t *testing.T) {
	p := New()

	filters := p.Parse("zzzz qqqq")
	if len(filters.Matches) != 0 {
		t.Errorf("matches = %+v, want none", filters.Matches)
	}
	if filters.Confidence != 0 {
		t.Errorf("confidence = %v, want 0", filters.Confidence)
	}

	empty := p.Parse("")
	if len(empty.Matches) != 0 || empty.Confidence != 0 {
		t.Errorf("empty query = %+v, want empty filters", empty)
	}
}

func TestParse_PartialQuery(t *testing.T) {
	p := New()

	filters := p.Parse("museum visit")
	if filters.Experience != "culture" {
		t.Errorf("experience = %q, want culture", filters.Experience)
	}
	if filters.Duration != "" || filters.Difficulty != "" || filters.Audience != "" {
		t.Errorf("unmentioned categories should stay empty: %+v", filters)
	}
	if filters.Confidence <= 0 {
		t.Errorf("confidence = %v, want above 0", filters.Confidence)
	}
}

func TestParse_BigramMatching(t *testing.T) {
	p := New()

	filters := p.Parse("via ferrata tour")
	if filters.Experience != "adventure" {
		t.Errorf("experience = %q, want adventure via bigram match", filters.Experience)
	}
}

func TestWithMinSimilarity(t *testing.T) {
	strict := New(WithMinSimilarity(0.99))

	// The typo match scores below 0.99 and must be discarded
	filters := strict.Parse("hikng")
	if filters.Experience != "" {
		t.Errorf("strict parser accepted %q", filters.Experience)
	}

	exact := strict.Parse("hiking")
	if exact.Experience != "hiking" {
		t.Errorf("strict parser rejected an exact match: %+v", exact)
	}
}

func TestWithResolution(t *testing.T) {
	coarse := New(WithResolution(20))
	fine := New(WithResolution(400))

	a := coarse.Parse("easy hike")
	b := fine.Parse("easy hike")

	// Both resolutions agree on the interpretation; only rounding differs
	if a.Experience != b.Experience || a.Difficulty != b.Difficulty {
		t.Errorf("resolutions disagree on labels: %+v vs %+v", a, b)
	}
	if diff := a.Confidence - b.Confidence; diff > 0.05 || diff < -0.05 {
		t.Errorf("confidence drifted with resolution: %v vs %v", a.Confidence, b.Confidence)
	}
}

func TestCandidateTerms(t *testing.T) {
	terms := candidateTerms("Easy Hike, half-day!")
	want := map[string]bool{
		"easy": true, "hike": true, "half": true, "day": true,
		"easy hike": true, "hike half": true, "half day": true,
	}
	if len(terms) != len(want) {
		t.Fatalf("terms = %v, want %d entries", terms, len(want))
	}
	for _, term := range terms {
		if !want[term] {
			t.Errorf("unexpected term %q", term)
		}
	}

	if got := candidateTerms("  "); len(got) != 0 {
		t.Errorf("blank query produced terms %v", got)
	}
}

func TestMappingTables(t *testing.T) {
	cases := []struct {
		fn   func(string) float64
		in   string
		want float64
	}{
		{DifficultyValue, "easy", 0.20},
		{DifficultyValue, "moderate", 0.50},
		{DifficultyValue, "hard", 0.75},
		{DifficultyValue, "expert", 0.90},
		{DifficultyValue, " Easy ", 0.20}, // trimmed and folded
		{DifficultyValue, "unknown", DefaultMappedValue},
		{DurationValue, "half_day", 0.40},
		{DurationValue, "multi-day", 0.90},
		{DurationValue, "", DefaultMappedValue},
		{ExperienceValue, "hiking", 0.60},
		{ExperienceValue, "adventure", 0.85},
		{AudienceValue, "seniors", 0.30},
		{AudienceValue, "experts", 0.85},
	}
	for _, c := range cases {
		if got := c.fn(c.in); got != c.want {
			t.Errorf("mapping(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestMatchCategory_TieIsDeterministic(t *testing.T) {
	p := New()

	// "hasz" sits at edit distance 2 from both "easy" and "hard", so the two
	// labels tie at similarity 0.5; the alphabetically first label must win
	// on every call.
	for i := 0; i < 25; i++ {
		match, ok := p.matchCategory(model.CategoryDifficulty, []string{"hasz"})
		if !ok {
			t.Fatal("expected a match for the tied term")
		}
		if match.Label != "easy" {
			t.Fatalf("call %d resolved tie to %q, want easy", i, match.Label)
		}
		if match.Similarity != 0.5 {
			t.Fatalf("tie similarity = %v, want 0.5", match.Similarity)
		}
	}
}
