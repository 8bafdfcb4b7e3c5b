package fuzzy

import (
	"testing"
)

func testVariable(t *testing.T) *Variable {
	t.Helper()
	v, err := NewVariable("quality", 0, 1,
		Set{Name: "low", Membership: MustLeftShoulder(0.2, 0.4), DomainMin: 0, DomainMax: 1},
		Set{Name: "medium", Membership: MustTriangular(0.3, 0.5, 0.7), DomainMin: 0, DomainMax: 1},
		Set{Name: "high", Membership: MustRightShoulder(0.6, 0.8), DomainMin: 0, DomainMax: 1},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return v
}

func TestNewVariable_Validation(t *testing.T) {
	mf := MustTriangular(0.1, 0.5, 0.9)

	if _, err := NewVariable("", 0, 1, Set{Name: "a", Membership: mf}); err == nil {
		t.Error("expected error for empty variable name")
	}
	if _, err := NewVariable("v", 1, 0, Set{Name: "a", Membership: mf}); err == nil {
		t.Error("expected error for inverted domain")
	}
	if _, err := NewVariable("v", 0, 1, Set{Name: "a", Membership: mf}, Set{Name: "a", Membership: mf}); err == nil {
		t.Error("expected error for duplicate set names")
	}
	if _, err := NewVariable("v", 0, 1, Set{Name: "a"}); err == nil {
		t.Error("expected error for a set without a membership function")
	}
}

func TestFuzzify_Totality(t *testing.T) {
	v := testVariable(t)
	for x := 0.0; x <= 1.0; x += 0.1 {
		degrees := v.Fuzzify(x)
		if len(degrees) != len(v.Sets) {
			t.Fatalf("Fuzzify(%v) returned %d entries, want %d", x, len(degrees), len(v.Sets))
		}
		for _, s := range v.Sets {
			d, ok := degrees[s.Name]
			if !ok {
				t.Errorf("Fuzzify(%v) missing set %q", x, s.Name)
			}
			if d < 0 || d > 1 {
				t.Errorf("Fuzzify(%v)[%q] = %v outside [0,1]", x, s.Name, d)
			}
		}
	}
}

func TestDominantSet(t *testing.T) {
	v := testVariable(t)

	cases := []struct {
		x    float64
		want string
	}{
		{0.1, "low"},
		{0.5, "medium"},
		{0.9, "high"},
	}
	for _, c := range cases {
		if got := v.DominantSet(c.x); got.Name != c.want {
			t.Errorf("DominantSet(%v) = %q, want %q", c.x, got.Name, c.want)
		}
	}

	// Exact tie goes to the earlier set in definition order
	tied := MustVariable("tie", 0, 1,
		Set{Name: "first", Membership: MustTriangular(0.0, 0.5, 1.0)},
		Set{Name: "second", Membership: MustTriangular(0.0, 0.5, 1.0)},
	)
	if got := tied.DominantSet(0.5); got.Name != "first" {
		t.Errorf("tied DominantSet = %q, want %q", got.Name, "first")
	}
}

func TestLinguisticInterpretation(t *testing.T) {
	v := testVariable(t)

	// 0.35 sits on both low's falling edge and medium's rising edge, each at 0.25
	names := v.LinguisticInterpretation(0.35, 0.2)
	if len(names) != 2 || names[0] != "low" || names[1] != "medium" {
		t.Errorf("interpretation at 0.35 = %v, want [low medium]", names)
	}

	// With the default threshold only clearly dominant labels survive
	names = v.LinguisticInterpretation(0.5, 0)
	if len(names) != 1 || names[0] != "medium" {
		t.Errorf("interpretation at 0.5 = %v, want [medium]", names)
	}

	// A high threshold that nothing clears falls back to the dominant set
	names = v.LinguisticInterpretation(0.35, 0.99)
	if len(names) != 1 {
		t.Fatalf("fallback interpretation = %v, want exactly one name", names)
	}
}

func TestMidpoint(t *testing.T) {
	v := MustVariable("range", 2, 8, Set{Name: "s", Membership: MustTriangular(2, 5, 8)})
	if got := v.Midpoint(); got != 5 {
		t.Errorf("Midpoint = %v, want 5", got)
	}
}

func TestStandardVariables(t *testing.T) {
	vars := StandardVariables()
	want := []string{VarSimilarity, VarConfidence, VarDifficulty, VarTimeNeeded, VarSuitability, VarRelevance}
	if len(vars) != len(want) {
		t.Fatalf("StandardVariables returned %d variables, want %d", len(vars), len(want))
	}
	for i, v := range vars {
		if v.Name != want[i] {
			t.Errorf("variable %d = %q, want %q", i, v.Name, want[i])
		}
		if v.DomainMin != 0 || v.DomainMax != 1 {
			t.Errorf("variable %q domain = [%v, %v], want [0, 1]", v.Name, v.DomainMin, v.DomainMax)
		}
	}

	sim := SimilarityVariable()
	if _, ok := sim.Set("exact_match"); !ok {
		t.Error("similarity variable missing exact_match set")
	}
	if got := sim.DominantSet(0.95); got.Name != "exact_match" || got.Membership != 1 {
		t.Errorf("similarity 0.95 dominant = %+v, want exact_match with full membership", got)
	}
	if got := sim.DominantSet(0.02); got.Name != "no_match" {
		t.Errorf("similarity 0.02 dominant = %q, want no_match", got.Name)
	}
}
