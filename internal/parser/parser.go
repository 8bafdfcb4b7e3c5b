// Package parser turns free-text activity queries into structured
// categorical filters. Query terms are matched against per-category keyword
// lexicons with normalized string similarity; the best match per category is
// pushed through the fuzzy confidence engine so every extracted filter
// carries an interpretation confidence.
package parser

import (
	"sort"
	"strings"
	"unicode"

	"github.com/mzurbriggen/alpinequery/internal/fuzzy"
	"github.com/mzurbriggen/alpinequery/internal/inference"
	"github.com/mzurbriggen/alpinequery/internal/model"
	"github.com/mzurbriggen/alpinequery/internal/similarity"
)

// DefaultMinSimilarity is the floor below which a lexicon match is discarded
const DefaultMinSimilarity = 0.35

// compensationDegree blends the product T-norm with the mean when combining
// per-filter confidences into an overall confidence.
const compensationDegree = 0.5

// lexicon maps canonical filter labels to the query terms that suggest them
type lexicon map[string][]string

var experienceLexicon = lexicon{
	"hiking":      {"hike", "hiking", "trail", "trek", "trekking", "walk", "walking", "wandern"},
	"sightseeing": {"sightseeing", "viewpoint", "panorama", "scenic", "views", "lookout"},
	"adventure":   {"adventure", "climbing", "via ferrata", "paragliding", "rafting", "zipline", "canyoning"},
	"culture":     {"culture", "museum", "castle", "church", "historic", "old town", "heritage"},
	"wellness":    {"wellness", "spa", "thermal", "relax", "relaxing", "sauna"},
}

var durationLexicon = lexicon{
	"short":     {"short", "quick", "hour", "brief", "couple hours"},
	"half_day":  {"half day", "half-day", "morning", "afternoon", "few hours"},
	"full_day":  {"full day", "full-day", "whole day", "all day", "day trip"},
	"multi_day": {"multi day", "multi-day", "overnight", "weekend", "several days", "days"},
}

var difficultyLexicon = lexicon{
	"easy":     {"easy", "gentle", "beginner", "simple", "relaxed", "leisurely", "flat"},
	"moderate": {"moderate", "medium", "intermediate", "average"},
	"hard":     {"hard", "difficult", "challenging", "demanding", "steep", "strenuous"},
	"expert":   {"expert", "extreme", "alpine", "technical", "advanced"},
}

var audienceLexicon = lexicon{
	"families": {"family", "families", "kids", "children", "child", "stroller"},
	"seniors":  {"senior", "seniors", "elderly", "older", "retirees", "accessible"},
	"experts":  {"expert", "experts", "experienced", "pros", "mountaineers"},
	"everyone": {"everyone", "anybody", "all ages", "group", "groups"},
}

// Parser is the fuzzy-logic query interpreter. Build once at startup;
// Parse is read-only and safe for concurrent callers.
type Parser struct {
	engine        *inference.Engine
	confidence    *fuzzy.Variable
	minSimilarity float64
	lexicons      map[string]lexicon
}

// Option adjusts parser construction
type Option func(*Parser)

// WithMinSimilarity overrides the lexicon-match floor
func WithMinSimilarity(min float64) Option {
	return func(p *Parser) {
		if min > 0 {
			p.minSimilarity = min
		}
	}
}

// WithResolution overrides the defuzzification resolution of the embedded
// confidence engine.
func WithResolution(resolution int) Option {
	return func(p *Parser) {
		if resolution < 1 {
			return
		}
		cfg := inference.DefaultConfig()
		cfg.Resolution = resolution
		e := inference.New(cfg)
		if err := e.RegisterVariable(fuzzy.SimilarityVariable()); err != nil {
			panic(err)
		}
		if err := e.RegisterVariable(fuzzy.ConfidenceVariable()); err != nil {
			panic(err)
		}
		if err := e.AddRules(inference.ConfidenceRules()); err != nil {
			panic(err)
		}
		p.engine = e
	}
}

// New creates a parser with the standard lexicons and confidence rule base
func New(opts ...Option) *Parser {
	p := &Parser{
		engine:        inference.NewConfidenceEngine(),
		confidence:    fuzzy.ConfidenceVariable(),
		minSimilarity: DefaultMinSimilarity,
		lexicons: map[string]lexicon{
			model.CategoryExperience: experienceLexicon,
			model.CategoryDuration:   durationLexicon,
			model.CategoryDifficulty: difficultyLexicon,
			model.CategoryAudience:   audienceLexicon,
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse interprets a free-text query into categorical filters. It never
// fails: a query with no recognizable terms yields empty filters with zero
// confidence.
func (p *Parser) Parse(query string) model.ActivityFilters {
	filters := model.ActivityFilters{Query: query, Source: "fuzzy"}
	terms := candidateTerms(query)
	if len(terms) == 0 {
		return filters
	}

	var confidences []float64
	for _, category := range []string{
		model.CategoryExperience,
		model.CategoryDuration,
		model.CategoryDifficulty,
		model.CategoryAudience,
	} {
		match, ok := p.matchCategory(category, terms)
		if !ok {
			continue
		}
		filters.Matches = append(filters.Matches, match)
		confidences = append(confidences, match.Confidence)
		switch category {
		case model.CategoryExperience:
			filters.Experience = match.Label
		case model.CategoryDuration:
			filters.Duration = match.Label
		case model.CategoryDifficulty:
			filters.Difficulty = match.Label
		case model.CategoryAudience:
			filters.Audience = match.Label
		}
	}

	filters.Confidence = fuzzy.CompensatoryAnd(confidences, compensationDegree)
	if len(confidences) == 0 {
		filters.Confidence = 0
	}
	return filters
}

// matchCategory finds the best lexicon match for a category across the
// candidate terms and attaches its inferred confidence.
func (p *Parser) matchCategory(category string, terms []string) (model.FilterMatch, bool) {
	lex := p.lexicons[category]

	// Labels are visited in sorted order so similarity ties resolve the
	// same way on every run
	labels := make([]string, 0, len(lex))
	for label := range lex {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	best := model.FilterMatch{Category: category}
	for _, label := range labels {
		for _, syn := range lex[label] {
			for _, term := range terms {
				if sim := similarity.Normalized(term, syn); sim > best.Similarity {
					best.Similarity = sim
					best.Label = label
					best.Term = term
				}
			}
		}
	}
	if best.Similarity < p.minSimilarity {
		return model.FilterMatch{}, false
	}

	result, err := p.engine.Infer(
		map[string]float64{fuzzy.VarSimilarity: best.Similarity},
		fuzzy.VarConfidence,
	)
	if err != nil {
		// The confidence variable is registered by construction; treat a
		// failure as zero confidence rather than dropping the match.
		return best, true
	}
	best.Confidence = result.CrispOutput
	best.Bands = p.confidence.LinguisticInterpretation(result.CrispOutput, 0)
	return best, true
}

// candidateTerms produces lowercase unigrams and bigrams from the query
func candidateTerms(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	terms := make([]string, 0, len(fields)*2)
	for i, f := range fields {
		terms = append(terms, f)
		if i+1 < len(fields) {
			terms = append(terms, f+" "+fields[i+1])
		}
	}
	return terms
}
