package fuzzy

// DefaultResolution is the number of discretization steps used when sampling
// an output domain. It is a precision/performance trade-off; callers that
// care about defuzzification rounding can raise it.
const DefaultResolution = 100

// DefuzzMethod selects a defuzzification strategy
type DefuzzMethod int

const (
	DefuzzCentroid DefuzzMethod = iota // center of gravity of the profile
	DefuzzBisector                     // x splitting the area in half
	DefuzzMeanOfMaximum
	DefuzzLargestOfMaximum
	DefuzzSmallestOfMaximum
)

// SampleDomain discretizes [min,max] into resolution+1 evenly spaced points.
// A resolution below 1 falls back to DefaultResolution.
func SampleDomain(min, max float64, resolution int) []float64 {
	if resolution < 1 {
		resolution = DefaultResolution
	}
	xs := make([]float64, resolution+1)
	step := (max - min) / float64(resolution)
	for i := range xs {
		xs[i] = min + float64(i)*step
	}
	return xs
}

// Defuzzify converts a sampled membership profile to a crisp value using the
// given method. The fallback is returned for an empty or all-zero profile.
func Defuzzify(method DefuzzMethod, xs, mus []float64, fallback float64) float64 {
	switch method {
	case DefuzzBisector:
		return Bisector(xs, mus, fallback)
	case DefuzzMeanOfMaximum:
		return MeanOfMaximum(xs, mus, fallback)
	case DefuzzLargestOfMaximum:
		return LargestOfMaximum(xs, mus, fallback)
	case DefuzzSmallestOfMaximum:
		return SmallestOfMaximum(xs, mus, fallback)
	default:
		return Centroid(xs, mus, fallback)
	}
}

// Centroid computes sum(x*mu)/sum(mu) over the sampled profile, returning the
// fallback when the profile has no mass.
func Centroid(xs, mus []float64, fallback float64) float64 {
	num, den := 0.0, 0.0
	for i := range xs {
		if i >= len(mus) {
			break
		}
		num += xs[i] * mus[i]
		den += mus[i]
	}
	if den == 0 {
		return fallback
	}
	return num / den
}

// Bisector returns the smallest sampled x at which the cumulative membership
// mass reaches half of the total, or the fallback for an empty profile.
func Bisector(xs, mus []float64, fallback float64) float64 {
	total := 0.0
	n := len(xs)
	if len(mus) < n {
		n = len(mus)
	}
	for i := 0; i < n; i++ {
		total += mus[i]
	}
	if total == 0 {
		return fallback
	}
	half := total / 2
	acc := 0.0
	for i := 0; i < n; i++ {
		acc += mus[i]
		if acc >= half {
			return xs[i]
		}
	}
	return xs[n-1]
}

// MeanOfMaximum returns the mean x over the plateau of maximum membership
func MeanOfMaximum(xs, mus []float64, fallback float64) float64 {
	max, any := profileMax(mus)
	if !any || max == 0 {
		return fallback
	}
	sum, count := 0.0, 0
	for i := range xs {
		if i < len(mus) && mus[i] == max {
			sum += xs[i]
			count++
		}
	}
	return sum / float64(count)
}

// LargestOfMaximum returns the rightmost x attaining the maximum membership
func LargestOfMaximum(xs, mus []float64, fallback float64) float64 {
	max, any := profileMax(mus)
	if !any || max == 0 {
		return fallback
	}
	result := fallback
	for i := range xs {
		if i < len(mus) && mus[i] == max {
			result = xs[i]
		}
	}
	return result
}

// SmallestOfMaximum returns the leftmost x attaining the maximum membership
func SmallestOfMaximum(xs, mus []float64, fallback float64) float64 {
	max, any := profileMax(mus)
	if !any || max == 0 {
		return fallback
	}
	for i := range xs {
		if i < len(mus) && mus[i] == max {
			return xs[i]
		}
	}
	return fallback
}

// WeightedAverage computes sum(w*v)/sum(w), the Sugeno-style defuzzification
// of singleton outputs. A zero weight total yields the fallback.
func WeightedAverage(values, weights []float64, fallback float64) float64 {
	num, den := 0.0, 0.0
	for i := range values {
		if i >= len(weights) {
			break
		}
		num += weights[i] * values[i]
		den += weights[i]
	}
	if den == 0 {
		return fallback
	}
	return num / den
}

func profileMax(mus []float64) (float64, bool) {
	if len(mus) == 0 {
		return 0, false
	}
	max := mus[0]
	for _, m := range mus[1:] {
		if m > max {
			max = m
		}
	}
	return max, true
}
