package fuzzy

import "fmt"

// DefaultInterpretationThreshold is the minimum membership for a set to
// appear in a linguistic interpretation.
const DefaultInterpretationThreshold = 0.3

// Set is a named fuzzy set with a membership function over a domain.
// The domain is informational (used for resolution-based integration);
// it is not enforced on input values.
type Set struct {
	Name       string             // linguistic label, e.g. "very_high"
	Membership MembershipFunction // crisp value -> degree in [0,1]
	DomainMin  float64
	DomainMax  float64
}

// SetMembership pairs a set name with a membership degree
type SetMembership struct {
	Name       string
	Membership float64
}

// Variable is a named fuzzy variable: a domain plus a collection of
// overlapping named sets. Variables are built once and read-only afterwards,
// safe for concurrent readers.
type Variable struct {
	Name      string
	DomainMin float64
	DomainMax float64
	Sets      []Set
}

// NewVariable creates a fuzzy variable. Set names must be unique within the
// variable and the domain must be non-degenerate.
func NewVariable(name string, domainMin, domainMax float64, sets ...Set) (*Variable, error) {
	if name == "" {
		return nil, fmt.Errorf("variable name is required")
	}
	if !(domainMin < domainMax) {
		return nil, fmt.Errorf("variable %q: domain min %v must be below max %v", name, domainMin, domainMax)
	}
	seen := make(map[string]bool, len(sets))
	for _, s := range sets {
		if s.Name == "" {
			return nil, fmt.Errorf("variable %q: set name is required", name)
		}
		if s.Membership == nil {
			return nil, fmt.Errorf("variable %q: set %q has no membership function", name, s.Name)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("variable %q: duplicate set name %q", name, s.Name)
		}
		seen[s.Name] = true
	}
	return &Variable{
		Name:      name,
		DomainMin: domainMin,
		DomainMax: domainMax,
		Sets:      sets,
	}, nil
}

// MustVariable is NewVariable for static definitions; panics on invalid input.
func MustVariable(name string, domainMin, domainMax float64, sets ...Set) *Variable {
	v, err := NewVariable(name, domainMin, domainMax, sets...)
	if err != nil {
		panic(err)
	}
	return v
}

// Set returns the named set and whether it exists
func (v *Variable) Set(name string) (Set, bool) {
	for _, s := range v.Sets {
		if s.Name == name {
			return s, true
		}
	}
	return Set{}, false
}

// Midpoint returns the midpoint of the variable's domain, used as the
// defuzzification fallback when no rule fires.
func (v *Variable) Midpoint() float64 {
	return (v.DomainMin + v.DomainMax) / 2
}

// Fuzzify returns the membership degree of x in every set of the variable.
// The result always contains every set name; sets with no membership map to 0.
func (v *Variable) Fuzzify(x float64) map[string]float64 {
	result := make(map[string]float64, len(v.Sets))
	for _, s := range v.Sets {
		result[s.Name] = Clamp(s.Membership(x))
	}
	return result
}

// DominantSet returns the set with the highest membership at x. Ties go to
// the first set in definition order since strict comparison is used.
func (v *Variable) DominantSet(x float64) SetMembership {
	best := SetMembership{}
	for i, s := range v.Sets {
		degree := Clamp(s.Membership(x))
		if i == 0 || degree > best.Membership {
			best = SetMembership{Name: s.Name, Membership: degree}
		}
	}
	return best
}

// LinguisticInterpretation returns every set name whose membership at x is at
// or above the threshold (DefaultInterpretationThreshold when threshold <= 0),
// falling back to the dominant set if none clear it.
func (v *Variable) LinguisticInterpretation(x, threshold float64) []string {
	if threshold <= 0 {
		threshold = DefaultInterpretationThreshold
	}
	var names []string
	for _, s := range v.Sets {
		if Clamp(s.Membership(x)) >= threshold {
			names = append(names, s.Name)
		}
	}
	if len(names) == 0 {
		names = append(names, v.DominantSet(x).Name)
	}
	return names
}
