// Package summary computes truth values and quality measures for linguistic
// summaries of the form "Q of S are R" (e.g. "most of the results are
// relevant"), following the Yager/Kacprzyk truth-value calculus over
// sigma-counts.
package summary

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/mzurbriggen/alpinequery/internal/fuzzy"
)

// DefaultMinTruthValue is the truth-value floor for generated summaries
const DefaultMinTruthValue = 0.5

// DefaultSupportThreshold is the minimum membership that counts as support
// when deriving quality measures.
const DefaultSupportThreshold = 0.01

// Summarizer names a summarizer R together with the per-item membership
// degrees its evaluator produced over the population S.
type Summarizer struct {
	Name        string
	Memberships []float64
}

// Summary is a generated linguistic summary with its computed truth value
// and the raw proportion it was computed from.
type Summary struct {
	Quantifier string  `json:"quantifier"`
	Subject    string  `json:"subject"`
	Summarizer string  `json:"summarizer"`
	TruthValue float64 `json:"truth_value"`
	Support    float64 `json:"support"` // average membership the truth value was derived from
	Statement  string  `json:"statement"`
}

// Quality is the derived quality vector for a linguistic summary.
// Overall is a fixed weighted combination: 0.4 truth value plus 0.15 for each
// of the other four measures. A weighted sum is used deliberately so that one
// zero component cannot collapse the whole score the way a product would.
type Quality struct {
	TruthValue      float64 `json:"truth_value"`       // T1
	Imprecision     float64 `json:"imprecision"`       // T2
	Covering        float64 `json:"covering"`          // T3
	Appropriateness float64 `json:"appropriateness"`   // T4
	Length          float64 `json:"length"`            // T5
	Overall         float64 `json:"overall"`
}

// SimpleTruth computes the truth value of "Q of S are R": the quantifier's
// membership applied to the average membership (sigma-count over n).
// An empty membership array resolves to 0.
func SimpleTruth(q fuzzy.Quantifier, memberships []float64) float64 {
	if len(memberships) == 0 {
		return 0
	}
	return fuzzy.Clamp(q.Membership(Support(memberships)))
}

// QualifiedTruth computes the truth value of "Q of S which are W are R":
// the quantifier applied to sum(min(w_i, r_i)) / sum(w_i). A zero qualifier
// sum resolves to 0. Arrays are compared pointwise up to the shorter length.
func QualifiedTruth(q fuzzy.Quantifier, qualifier, memberships []float64) float64 {
	n := len(qualifier)
	if len(memberships) < n {
		n = len(memberships)
	}
	if n == 0 {
		return 0
	}
	num, den := 0.0, 0.0
	for i := 0; i < n; i++ {
		num += math.Min(fuzzy.Clamp(qualifier[i]), fuzzy.Clamp(memberships[i]))
		den += fuzzy.Clamp(qualifier[i])
	}
	if den == 0 {
		return 0
	}
	return fuzzy.Clamp(q.Membership(num / den))
}

// CompoundAndTruth combines multiple summarizer membership arrays pointwise
// with min before computing the simple truth value.
func CompoundAndTruth(q fuzzy.Quantifier, arrays ...[]float64) float64 {
	return SimpleTruth(q, combine(fuzzy.TNormMin, arrays...))
}

// CompoundOrTruth combines multiple summarizer membership arrays pointwise
// with max before computing the simple truth value.
func CompoundOrTruth(q fuzzy.Quantifier, arrays ...[]float64) float64 {
	return SimpleTruth(q, combine(fuzzy.TConormMax, arrays...))
}

func combine(op func(a, b float64) float64, arrays ...[]float64) []float64 {
	if len(arrays) == 0 {
		return nil
	}
	n := len(arrays[0])
	for _, a := range arrays[1:] {
		if len(a) < n {
			n = len(a)
		}
	}
	combined := make([]float64, n)
	for i := 0; i < n; i++ {
		v := fuzzy.Clamp(arrays[0][i])
		for _, a := range arrays[1:] {
			v = op(v, fuzzy.Clamp(a[i]))
		}
		combined[i] = v
	}
	return combined
}

// Support returns the average membership over the population (sigma-count/n),
// 0 for an empty population.
func Support(memberships []float64) float64 {
	if len(memberships) == 0 {
		return 0
	}
	sum := 0.0
	for _, m := range memberships {
		sum += fuzzy.Clamp(m)
	}
	return sum / float64(len(memberships))
}

// ComputeQuality derives the quality vector for a summary over the given
// membership array. numSummarizers counts the summarizer conjuncts in the
// statement; supportThreshold <= 0 uses DefaultSupportThreshold.
func ComputeQuality(truthValue float64, memberships []float64, numSummarizers int, supportThreshold float64) Quality {
	if supportThreshold <= 0 {
		supportThreshold = DefaultSupportThreshold
	}
	if numSummarizers < 1 {
		numSummarizers = 1
	}

	n := len(memberships)
	covered := 0
	avg := 0.0
	for _, m := range memberships {
		m = fuzzy.Clamp(m)
		if m >= supportThreshold {
			covered++
		}
		avg += m
	}
	if n > 0 {
		avg /= float64(n)
	}

	q := Quality{TruthValue: fuzzy.Clamp(truthValue)}
	if n > 0 {
		q.Imprecision = 1 - float64(covered)/float64(n)
		q.Covering = float64(covered) / float64(n)
	} else {
		q.Imprecision = 1
	}
	q.Appropriateness = 1 - math.Abs(avg-q.Covering)
	q.Length = math.Pow(2, -float64(numSummarizers-1))
	q.Overall = 0.4*q.TruthValue + 0.15*(q.Imprecision+q.Covering+q.Appropriateness+q.Length)
	return q
}

// GenerateSummaries evaluates every (quantifier, summarizer) pair and returns
// the summaries whose truth value meets minTruthValue (DefaultMinTruthValue
// when <= 0), sorted by truth value descending.
func GenerateSummaries(summarizers []Summarizer, quantifiers []fuzzy.Quantifier, subject string, minTruthValue float64) []Summary {
	if minTruthValue <= 0 {
		minTruthValue = DefaultMinTruthValue
	}
	var results []Summary
	for _, s := range summarizers {
		support := Support(s.Memberships)
		for _, q := range quantifiers {
			truth := SimpleTruth(q, s.Memberships)
			if truth < minTruthValue {
				continue
			}
			results = append(results, newSummary(q, subject, s.Name, truth, support))
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TruthValue > results[j].TruthValue
	})
	return results
}

// GenerateBestSummary picks, for a single summarizer, the quantifier that
// best fits the computed support value.
func GenerateBestSummary(s Summarizer, quantifiers []fuzzy.Quantifier, subject string) Summary {
	support := Support(s.Memberships)
	q := fuzzy.BestQuantifier(support, quantifiers)
	truth := SimpleTruth(q, s.Memberships)
	return newSummary(q, subject, s.Name, truth, support)
}

func newSummary(q fuzzy.Quantifier, subject, summarizer string, truth, support float64) Summary {
	return Summary{
		Quantifier: q.Name,
		Subject:    subject,
		Summarizer: summarizer,
		TruthValue: truth,
		Support:    support,
		Statement:  statement(q.Name, subject, summarizer, support),
	}
}

// statement renders "most of the results are relevant (support: 62.3%)"
func statement(quantifier, subject, summarizer string, support float64) string {
	q := strings.ReplaceAll(quantifier, "_", " ")
	return fmt.Sprintf("%s of the %s are %s (support: %.1f%%)", q, subject, summarizer, support*100)
}
