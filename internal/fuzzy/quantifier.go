package fuzzy

// QuantifierKind distinguishes quantifiers over absolute counts from
// quantifiers over relative proportions.
type QuantifierKind int

const (
	QuantifierRelative QuantifierKind = iota // defined over proportions in [0,1]
	QuantifierAbsolute                       // defined over raw counts
)

// Quantifier is a linguistic quantifier: a fuzzy set over proportions (or
// counts) such as "few" or "almost all".
type Quantifier struct {
	Name       string
	Membership MembershipFunction
	Kind       QuantifierKind
	Monotonic  bool // non-decreasing membership, e.g. "most", "all"
}

// FallbackQuantifierName is returned by BestQuantifier when no quantifier has
// any membership at the given proportion.
const FallbackQuantifierName = "some"

// StandardQuantifiers returns the relative quantifiers used for linguistic
// summaries, ordered from "none" to "all". The ordering matters: ties in
// BestQuantifier resolve to the first match.
func StandardQuantifiers() []Quantifier {
	return []Quantifier{
		{Name: "none", Membership: MustLeftShoulder(0.001, 0.05), Kind: QuantifierRelative},
		{Name: "almost_none", Membership: MustTriangular(0.001, 0.06, 0.15), Kind: QuantifierRelative},
		{Name: "few", Membership: MustTriangular(0.05, 0.15, 0.30), Kind: QuantifierRelative},
		{Name: "some", Membership: MustTrapezoidal(0.10, 0.25, 0.40, 0.55), Kind: QuantifierRelative},
		{Name: "about_half", Membership: MustTriangular(0.35, 0.50, 0.65), Kind: QuantifierRelative},
		{Name: "many", Membership: MustTriangular(0.50, 0.65, 0.80), Kind: QuantifierRelative},
		{Name: "most", Membership: MustTrapezoidal(0.60, 0.75, 0.90, 0.999), Kind: QuantifierRelative, Monotonic: true},
		{Name: "almost_all", Membership: MustTriangular(0.85, 0.95, 0.999), Kind: QuantifierRelative},
		{Name: "all", Membership: MustRightShoulder(0.95, 0.999), Kind: QuantifierRelative, Monotonic: true},
	}
}

// QuantifierByName looks up a quantifier in a list by name
func QuantifierByName(name string, quantifiers []Quantifier) (Quantifier, bool) {
	for _, q := range quantifiers {
		if q.Name == name {
			return q, true
		}
	}
	return Quantifier{}, false
}

// BestQuantifier returns the quantifier with the highest membership at the
// proportion p. Exact ties resolve to the first match in list order; if no
// quantifier has membership above zero, the "some" quantifier (or the first
// in the list) is returned as the documented fallback.
func BestQuantifier(p float64, quantifiers []Quantifier) Quantifier {
	if len(quantifiers) == 0 {
		return Quantifier{Name: FallbackQuantifierName}
	}
	p = Clamp(p)
	best := quantifiers[0]
	bestDegree := 0.0
	for i, q := range quantifiers {
		degree := Clamp(q.Membership(p))
		if i == 0 || degree > bestDegree {
			best = q
			bestDegree = degree
		}
	}
	if bestDegree == 0 {
		if fallback, ok := QuantifierByName(FallbackQuantifierName, quantifiers); ok {
			return fallback
		}
		return quantifiers[0]
	}
	return best
}
