package inference

import (
	"fmt"

	"github.com/mzurbriggen/alpinequery/internal/fuzzy"
)

// Connective joins the antecedent conditions of a rule
type Connective int

const (
	ConnectiveAnd Connective = iota
	ConnectiveOr
)

// TNormKind selects the T-norm used for AND connectives
type TNormKind int

const (
	TNormMin TNormKind = iota
	TNormProduct
	TNormLukasiewicz
	TNormDrastic
)

// TConormKind selects the T-conorm used for OR connectives
type TConormKind int

const (
	TConormMax TConormKind = iota
	TConormProbabilistic
	TConormBounded
	TConormDrastic
)

// ImplicationKind selects how a firing strength shapes the consequent set
type ImplicationKind int

const (
	ImplicationMamdani ImplicationKind = iota
	ImplicationLarsen
	ImplicationKleeneDienes
	ImplicationLukasiewicz
)

// AggregationKind selects how rule outputs combine at each sample point
type AggregationKind int

const (
	AggregationMax AggregationKind = iota
	AggregationSum    // bounded sum min(1, a+b)
	AggregationProbor // probabilistic sum a+b-ab
)

// Condition is a single antecedent clause: variable IS [NOT] set
type Condition struct {
	Variable string
	Set      string
	Negated  bool
}

// Consequent names the output set a rule asserts
type Consequent struct {
	Variable string
	Set      string
}

// Rule is a static fuzzy rule. Weight defaults to 1.0 when zero.
type Rule struct {
	ID         string
	Antecedent []Condition
	Consequent Consequent
	Weight     float64
	Connective Connective
}

// Config selects the operator family and defuzzification strategy of an
// engine. Operators are resolved to concrete functions once, at construction.
type Config struct {
	TNorm           TNormKind
	TConorm         TConormKind
	Implication     ImplicationKind
	Aggregation     AggregationKind
	Defuzzification fuzzy.DefuzzMethod
	Resolution      int // discretization steps; <1 uses fuzzy.DefaultResolution
}

// DefaultConfig returns the standard Mamdani setup: min/max operators,
// Mamdani implication, max aggregation, centroid defuzzification.
func DefaultConfig() Config {
	return Config{
		TNorm:           TNormMin,
		TConorm:         TConormMax,
		Implication:     ImplicationMamdani,
		Aggregation:     AggregationMax,
		Defuzzification: fuzzy.DefuzzCentroid,
		Resolution:      fuzzy.DefaultResolution,
	}
}

// FiredRule reports a rule that contributed to an inference, for
// explainability.
type FiredRule struct {
	RuleID         string
	FiringStrength float64
}

// Result is the outcome of a single inference
type Result struct {
	CrispOutput float64
	FiredRules  []FiredRule
}

// Engine is a Mamdani-style fuzzy inference engine: a registry of fuzzy
// variables, an ordered rule list and a fixed operator configuration.
// Registration happens at startup; Infer is read-only and safe for
// concurrent callers afterwards.
type Engine struct {
	config    Config
	variables map[string]*fuzzy.Variable
	rules     []Rule

	tNorm       fuzzy.TNorm
	tConorm     fuzzy.TConorm
	implication fuzzy.Implication
}

// New creates an engine with the given configuration, resolving the
// configured operator kinds to concrete functions up front.
func New(config Config) *Engine {
	if config.Resolution < 1 {
		config.Resolution = fuzzy.DefaultResolution
	}
	return &Engine{
		config:      config,
		variables:   make(map[string]*fuzzy.Variable),
		tNorm:       selectTNorm(config.TNorm),
		tConorm:     selectTConorm(config.TConorm),
		implication: selectImplication(config.Implication),
	}
}

// RegisterVariable adds a fuzzy variable to the engine registry
func (e *Engine) RegisterVariable(v *fuzzy.Variable) error {
	if v == nil {
		return fmt.Errorf("variable is nil")
	}
	if _, exists := e.variables[v.Name]; exists {
		return fmt.Errorf("variable %q already registered", v.Name)
	}
	e.variables[v.Name] = v
	return nil
}

// Variable returns a registered variable by name
func (e *Engine) Variable(name string) (*fuzzy.Variable, bool) {
	v, ok := e.variables[name]
	return v, ok
}

// AddRule appends a rule to the rule base after validating that every
// referenced variable and set is registered.
func (e *Engine) AddRule(r Rule) error {
	for _, cond := range r.Antecedent {
		if err := e.checkReference(cond.Variable, cond.Set); err != nil {
			return fmt.Errorf("rule %s: %w", r.ID, err)
		}
	}
	if err := e.checkReference(r.Consequent.Variable, r.Consequent.Set); err != nil {
		return fmt.Errorf("rule %s: %w", r.ID, err)
	}
	e.rules = append(e.rules, r)
	return nil
}

// AddRules appends multiple rules, stopping at the first invalid one
func (e *Engine) AddRules(rules []Rule) error {
	for _, r := range rules {
		if err := e.AddRule(r); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) checkReference(variable, set string) error {
	v, ok := e.variables[variable]
	if !ok {
		return fmt.Errorf("unknown variable %q", variable)
	}
	if _, ok := v.Set(set); !ok {
		return fmt.Errorf("variable %q has no set %q", variable, set)
	}
	return nil
}

// Infer runs the Mamdani cycle for the named output variable: fuzzify the
// crisp inputs, fire every rule targeting the output, aggregate the implied
// memberships over a discretized output domain and defuzzify.
//
// Inputs for variables a rule references but that are absent from the map
// contribute zero membership. When no rule fires the crisp output falls back
// to the output domain's midpoint; an unregistered output variable is the
// only error condition.
func (e *Engine) Infer(inputs map[string]float64, outputVariable string) (*Result, error) {
	out, ok := e.variables[outputVariable]
	if !ok {
		return nil, fmt.Errorf("output variable %q not registered", outputVariable)
	}

	// Fuzzify every supplied input against its registered variable
	fuzzified := make(map[string]map[string]float64, len(inputs))
	for name, value := range inputs {
		if v, ok := e.variables[name]; ok {
			fuzzified[name] = v.Fuzzify(value)
		}
	}

	// Fire rules targeting the output variable
	type firing struct {
		rule     Rule
		strength float64
	}
	var fired []firing
	var firedRules []FiredRule
	for _, r := range e.rules {
		if r.Consequent.Variable != outputVariable {
			continue
		}
		strength := e.firingStrength(r, fuzzified)
		if strength <= 0 {
			continue
		}
		fired = append(fired, firing{rule: r, strength: strength})
		firedRules = append(firedRules, FiredRule{RuleID: r.ID, FiringStrength: strength})
	}

	if len(fired) == 0 {
		return &Result{CrispOutput: out.Midpoint()}, nil
	}

	// Aggregate implied consequent memberships over the discretized domain
	xs := fuzzy.SampleDomain(out.DomainMin, out.DomainMax, e.config.Resolution)
	mus := make([]float64, len(xs))
	for _, f := range fired {
		set, _ := out.Set(f.rule.Consequent.Set)
		for i, x := range xs {
			implied := e.implication(f.strength, fuzzy.Clamp(set.Membership(x)))
			mus[i] = e.aggregate(mus[i], implied)
		}
	}

	crisp := fuzzy.Defuzzify(e.config.Defuzzification, xs, mus, out.Midpoint())
	return &Result{CrispOutput: crisp, FiredRules: firedRules}, nil
}

// firingStrength evaluates a rule's antecedent against fuzzified inputs
func (e *Engine) firingStrength(r Rule, fuzzified map[string]map[string]float64) float64 {
	memberships := make([]float64, 0, len(r.Antecedent))
	for _, cond := range r.Antecedent {
		degree := 0.0
		if sets, ok := fuzzified[cond.Variable]; ok {
			degree = sets[cond.Set]
		}
		if cond.Negated {
			degree = fuzzy.Negate(degree)
		}
		memberships = append(memberships, degree)
	}

	var strength float64
	if r.Connective == ConnectiveOr {
		strength = fuzzy.AggregateOr(memberships, e.tConorm)
	} else {
		strength = fuzzy.AggregateAnd(memberships, e.tNorm)
	}

	weight := r.Weight
	if weight == 0 {
		weight = 1
	}
	return fuzzy.Clamp(strength * weight)
}

func (e *Engine) aggregate(acc, v float64) float64 {
	switch e.config.Aggregation {
	case AggregationSum:
		return fuzzy.TConormBounded(acc, v)
	case AggregationProbor:
		return fuzzy.TConormProbabilistic(acc, v)
	default:
		return fuzzy.TConormMax(acc, v)
	}
}

func selectTNorm(kind TNormKind) fuzzy.TNorm {
	switch kind {
	case TNormProduct:
		return fuzzy.TNormProduct
	case TNormLukasiewicz:
		return fuzzy.TNormLukasiewicz
	case TNormDrastic:
		return fuzzy.TNormDrastic
	default:
		return fuzzy.TNormMin
	}
}

func selectTConorm(kind TConormKind) fuzzy.TConorm {
	switch kind {
	case TConormProbabilistic:
		return fuzzy.TConormProbabilistic
	case TConormBounded:
		return fuzzy.TConormBounded
	case TConormDrastic:
		return fuzzy.TConormDrastic
	default:
		return fuzzy.TConormMax
	}
}

func selectImplication(kind ImplicationKind) fuzzy.Implication {
	switch kind {
	case ImplicationLarsen:
		return fuzzy.ImplicationLarsen
	case ImplicationKleeneDienes:
		return fuzzy.ImplicationKleeneDienes
	case ImplicationLukasiewicz:
		return fuzzy.ImplicationLukasiewicz
	default:
		return fuzzy.ImplicationMamdani
	}
}
