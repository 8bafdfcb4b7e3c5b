// Package metrics implements the fuzzy precision/recall framework used to
// compare the fuzzy interpreter against the LLM-based alternative. Counts are
// continuous: membership degrees are summed instead of thresholded booleans.
package metrics

import (
	"github.com/mzurbriggen/alpinequery/internal/fuzzy"
	"github.com/mzurbriggen/alpinequery/internal/summary"
)

// SimilarityFunc scores two strings in [0,1]; the caller supplies the
// Levenshtein-based collaborator from internal/similarity.
type SimilarityFunc func(a, b string) float64

// ConfusionMatrix holds continuous-valued fuzzy counts
type ConfusionMatrix struct {
	FuzzyTP       float64 `json:"fuzzy_tp"`
	FuzzyFP       float64 `json:"fuzzy_fp"`
	FuzzyFN       float64 `json:"fuzzy_fn"`
	TotalReturned int     `json:"total_returned"`
	TotalExpected int     `json:"total_expected"`
}

// Result is a full fuzzy evaluation of returned vs expected result sets
type Result struct {
	Precision    float64         `json:"precision"`
	Recall       float64         `json:"recall"`
	F1           float64         `json:"f1"`
	Matrix       ConfusionMatrix `json:"matrix"`
	Unmeasurable bool            `json:"unmeasurable,omitempty"` // no expected names to compare against
	Note         string          `json:"note,omitempty"`
	Summary      summary.Summary `json:"summary"`
}

// Calculator computes fuzzy metrics against a fixed similarity primitive and
// the standard relevance variable. Build once, use from any goroutine.
type Calculator struct {
	sim         SimilarityFunc
	relevance   *fuzzy.Variable
	centers     map[string]float64
	quantifiers []fuzzy.Quantifier
}

// NewCalculator creates a calculator around the given similarity function
func NewCalculator(sim SimilarityFunc) *Calculator {
	return &Calculator{
		sim:         sim,
		relevance:   fuzzy.RelevanceVariable(),
		centers:     fuzzy.RelevanceCenters(),
		quantifiers: fuzzy.StandardQuantifiers(),
	}
}

// Calculate computes fuzzy precision, recall, F1 and the fuzzy confusion
// matrix for a list of returned titles against the expected names, and
// attaches a linguistic summary of the outcome.
//
// Edge policies are deliberate: with no expected names the comparison is
// undefined and reported as unmeasurable (never a false perfect score); with
// expected names but nothing returned, precision and recall are 0 while the
// statement "none of the results are relevant" is vacuously true.
func (c *Calculator) Calculate(returned, expected []string) Result {
	result := Result{
		Matrix: ConfusionMatrix{
			TotalReturned: len(returned),
			TotalExpected: len(expected),
		},
	}

	if len(expected) == 0 {
		result.Unmeasurable = true
		result.Note = "no expected names provided; comparison is undefined"
		result.Summary = c.vacuousSummary(len(returned) == 0)
		return result
	}

	if len(returned) == 0 {
		// Vacuous truth: with nothing returned, "none are relevant" holds.
		result.Matrix.FuzzyFN = float64(len(expected))
		result.Summary = c.vacuousSummary(true)
		return result
	}

	// Precision: average best similarity of each returned item to any
	// expected name, accumulating the confusion matrix on the way.
	var relevances []float64
	precisionSum := 0.0
	for _, title := range returned {
		best := c.bestSimilarity(title, expected)
		precisionSum += best

		degree := c.relevanceDegree(best)
		relevances = append(relevances, degree)
		result.Matrix.FuzzyTP += degree
		result.Matrix.FuzzyFP += 1 - degree
	}
	result.Precision = precisionSum / float64(len(returned))

	// Recall: average best similarity achieved for each expected name
	recallSum := 0.0
	for _, name := range expected {
		best := c.bestSimilarity(name, returned)
		recallSum += best
		result.Matrix.FuzzyFN += 1 - best
	}
	result.Recall = recallSum / float64(len(expected))

	if result.Precision+result.Recall > 0 {
		result.F1 = 2 * result.Precision * result.Recall / (result.Precision + result.Recall)
	}

	result.Summary = summary.GenerateBestSummary(
		summary.Summarizer{Name: "relevant", Memberships: relevances},
		c.quantifiers,
		"results",
	)
	return result
}

// bestSimilarity returns the highest similarity between s and any candidate
func (c *Calculator) bestSimilarity(s string, candidates []string) float64 {
	best := 0.0
	for _, cand := range candidates {
		if sim := fuzzy.Clamp(c.sim(s, cand)); sim > best {
			best = sim
		}
	}
	return best
}

// relevanceDegree converts a best-similarity score into a defuzzified
// relevance membership: the score is fuzzified against the relevance
// variable and the category centers are weighted-averaged by membership.
func (c *Calculator) relevanceDegree(similarity float64) float64 {
	memberships := c.relevance.Fuzzify(similarity)
	values := make([]float64, 0, len(c.relevance.Sets))
	weights := make([]float64, 0, len(c.relevance.Sets))
	for _, set := range c.relevance.Sets {
		values = append(values, c.centers[set.Name])
		weights = append(weights, memberships[set.Name])
	}
	// Fall back to the raw similarity when no category has membership
	return fuzzy.Clamp(fuzzy.WeightedAverage(values, weights, similarity))
}

// vacuousSummary builds the "none are relevant" statement; vacuouslyTrue is
// set when nothing was returned.
func (c *Calculator) vacuousSummary(vacuouslyTrue bool) summary.Summary {
	none, _ := fuzzy.QuantifierByName("none", c.quantifiers)
	s := summary.Summary{
		Quantifier: none.Name,
		Subject:    "results",
		Summarizer: "relevant",
	}
	if vacuouslyTrue {
		s.TruthValue = 1
	}
	s.Statement = "none of the results are relevant (support: 0.0%)"
	return s
}
