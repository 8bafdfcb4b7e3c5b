package fuzzy

import (
	"math"
	"sort"
)

// TNorm is a fuzzy AND over two degrees in [0,1]
type TNorm func(a, b float64) float64

// TConorm is a fuzzy OR over two degrees in [0,1]
type TConorm func(a, b float64) float64

// Implication combines a rule's firing strength with a consequent membership
type Implication func(strength, membership float64) float64

// T-norms

// TNormMin is the standard minimum T-norm
func TNormMin(a, b float64) float64 {
	return math.Min(a, b)
}

// TNormProduct is the algebraic product T-norm
func TNormProduct(a, b float64) float64 {
	return a * b
}

// TNormLukasiewicz is the Lukasiewicz T-norm max(0, a+b-1)
func TNormLukasiewicz(a, b float64) float64 {
	return math.Max(0, a+b-1)
}

// TNormDrastic is the drastic T-norm: min(a,b) if one operand is 1, else 0
func TNormDrastic(a, b float64) float64 {
	if a == 1 {
		return b
	}
	if b == 1 {
		return a
	}
	return 0
}

// NewTNormHamacher creates a Hamacher T-norm with parameter gamma >= 0:
// T(a,b) = ab / (gamma + (1-gamma)(a+b-ab))
func NewTNormHamacher(gamma float64) TNorm {
	if gamma < 0 {
		gamma = 0
	}
	return func(a, b float64) float64 {
		denom := gamma + (1-gamma)*(a+b-a*b)
		if denom == 0 {
			return 0
		}
		return Clamp(a * b / denom)
	}
}

// T-conorms

// TConormMax is the standard maximum T-conorm
func TConormMax(a, b float64) float64 {
	return math.Max(a, b)
}

// TConormProbabilistic is the probabilistic sum a+b-ab
func TConormProbabilistic(a, b float64) float64 {
	return Clamp(a + b - a*b)
}

// TConormBounded is the Lukasiewicz bounded sum min(1, a+b)
func TConormBounded(a, b float64) float64 {
	return math.Min(1, a+b)
}

// TConormDrastic is the drastic T-conorm: max(a,b) if one operand is 0, else 1
func TConormDrastic(a, b float64) float64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	return 1
}

// Negations

// Negate is the standard fuzzy negation 1-a
func Negate(a float64) float64 {
	return Clamp(1 - a)
}

// NewSugenoNegation creates a Sugeno negation (1-a)/(1+lambda*a) with
// lambda > -1. lambda = 0 reduces to the standard negation.
func NewSugenoNegation(lambda float64) func(a float64) float64 {
	if lambda <= -1 {
		lambda = 0
	}
	return func(a float64) float64 {
		return Clamp((1 - a) / (1 + lambda*a))
	}
}

// Implications

// ImplicationMamdani is the Mamdani (min) implication
func ImplicationMamdani(strength, membership float64) float64 {
	return math.Min(strength, membership)
}

// ImplicationLarsen is the Larsen (product) implication
func ImplicationLarsen(strength, membership float64) float64 {
	return strength * membership
}

// ImplicationKleeneDienes is the Kleene-Dienes implication max(1-a, b)
func ImplicationKleeneDienes(strength, membership float64) float64 {
	return math.Max(1-strength, membership)
}

// ImplicationLukasiewicz is the Lukasiewicz implication min(1, 1-a+b)
func ImplicationLukasiewicz(strength, membership float64) float64 {
	return math.Min(1, 1-strength+membership)
}

// Aggregation helpers

// AggregateAnd folds values through a T-norm starting from the neutral
// element 1; an empty list yields 1.
func AggregateAnd(values []float64, t TNorm) float64 {
	result := 1.0
	for _, v := range values {
		result = t(result, Clamp(v))
	}
	return result
}

// AggregateOr folds values through a T-conorm starting from the neutral
// element 0; an empty list yields 0.
func AggregateOr(values []float64, s TConorm) float64 {
	result := 0.0
	for _, v := range values {
		result = s(result, Clamp(v))
	}
	return result
}

// OWAKind selects the shape of an OWA weight vector
type OWAKind int

const (
	OWAUniform OWAKind = iota // all positions weighted equally
	OWAAndLike                // weight concentrated on the smallest values
	OWAOrLike                 // weight concentrated on the largest values
)

// OWAWeights generates a normalized weight vector of length n.
// And-like vectors emphasize low values, or-like vectors high values.
func OWAWeights(n int, kind OWAKind) []float64 {
	if n <= 0 {
		return nil
	}
	weights := make([]float64, n)
	switch kind {
	case OWAAndLike:
		// Linearly increasing toward the tail of the descending sort
		sum := 0.0
		for i := range weights {
			weights[i] = float64(i + 1)
			sum += weights[i]
		}
		for i := range weights {
			weights[i] /= sum
		}
	case OWAOrLike:
		sum := 0.0
		for i := range weights {
			weights[i] = float64(n - i)
			sum += weights[i]
		}
		for i := range weights {
			weights[i] /= sum
		}
	default:
		for i := range weights {
			weights[i] = 1 / float64(n)
		}
	}
	return weights
}

// OWA applies an ordered weighted average: values are sorted descending and
// combined with the weight vector. A length mismatch falls back to uniform
// weights rather than failing.
func OWA(values, weights []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if len(weights) != len(values) {
		weights = OWAWeights(len(values), OWAUniform)
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	result := 0.0
	for i, v := range sorted {
		result += weights[i] * Clamp(v)
	}
	return Clamp(result)
}

// CompensatoryAnd blends the algebraic-product T-norm with the arithmetic
// mean: result = product^(1-gamma) * mean^gamma. gamma = 0 is the pure
// T-norm, gamma = 1 the pure mean.
func CompensatoryAnd(values []float64, gamma float64) float64 {
	if len(values) == 0 {
		return 1
	}
	gamma = Clamp(gamma)

	product := 1.0
	sum := 0.0
	for _, v := range values {
		v = Clamp(v)
		product *= v
		sum += v
	}
	mean := sum / float64(len(values))

	if gamma == 0 {
		return product
	}
	if gamma == 1 {
		return mean
	}
	return Clamp(math.Pow(product, 1-gamma) * math.Pow(mean, gamma))
}
