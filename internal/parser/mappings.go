package parser

import "strings"

// DefaultMappedValue is returned for strings no mapping table recognizes,
// pinning unknown inputs to the middle of the fuzzy domain.
const DefaultMappedValue = 0.5

var difficultyValues = map[string]float64{
	"easy":        0.20,
	"gentle":      0.20,
	"moderate":    0.50,
	"medium":      0.50,
	"hard":        0.75,
	"challenging": 0.75,
	"expert":      0.90,
	"extreme":     0.90,
}

var durationValues = map[string]float64{
	"short":     0.20,
	"quick":     0.20,
	"half_day":  0.40,
	"half-day":  0.40,
	"full_day":  0.70,
	"full-day":  0.70,
	"multi_day": 0.90,
	"multi-day": 0.90,
	"weekend":   0.90,
}

var experienceValues = map[string]float64{
	"sightseeing": 0.20,
	"culture":     0.30,
	"wellness":    0.40,
	"hiking":      0.60,
	"adventure":   0.85,
}

var audienceValues = map[string]float64{
	"everyone": 0.50,
	"families": 0.40,
	"seniors":  0.30,
	"experts":  0.85,
}

// DifficultyValue maps a difficulty label to its normalized fuzzy-domain
// input in [0,1]
func DifficultyValue(s string) float64 {
	return lookup(difficultyValues, s)
}

// DurationValue maps a duration label to its normalized fuzzy-domain input
func DurationValue(s string) float64 {
	return lookup(durationValues, s)
}

// ExperienceValue maps an experience-type label to its normalized
// fuzzy-domain input
func ExperienceValue(s string) float64 {
	return lookup(experienceValues, s)
}

// AudienceValue maps a target-audience label to its normalized fuzzy-domain
// input
func AudienceValue(s string) float64 {
	return lookup(audienceValues, s)
}

func lookup(table map[string]float64, s string) float64 {
	if v, ok := table[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v
	}
	return DefaultMappedValue
}
