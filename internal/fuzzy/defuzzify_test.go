package fuzzy

import "testing"

func TestSampleDomain(t *testing.T) {
	xs := SampleDomain(0, 1, 100)
	if len(xs) != 101 {
		t.Fatalf("SampleDomain returned %d points, want 101", len(xs))
	}
	if xs[0] != 0 || !almostEqual(xs[100], 1, 1e-12) {
		t.Errorf("domain endpoints = (%v, %v), want (0, 1)", xs[0], xs[100])
	}
	if !almostEqual(xs[50], 0.5, 1e-12) {
		t.Errorf("midpoint sample = %v, want 0.5", xs[50])
	}

	// Invalid resolution falls back to the default
	if got := len(SampleDomain(0, 1, 0)); got != DefaultResolution+1 {
		t.Errorf("fallback sampling returned %d points, want %d", got, DefaultResolution+1)
	}
}

// A profile that is zero everywhere except a single spike at x must
// defuzzify back to exactly x under every method.
func TestDefuzzify_SpikeRoundTrip(t *testing.T) {
	xs := SampleDomain(0, 1, 100)
	mus := make([]float64, len(xs))
	mus[73] = 0.6

	methods := []DefuzzMethod{
		DefuzzCentroid, DefuzzBisector, DefuzzMeanOfMaximum,
		DefuzzLargestOfMaximum, DefuzzSmallestOfMaximum,
	}
	for _, m := range methods {
		if got := Defuzzify(m, xs, mus, 0.5); !almostEqual(got, xs[73], 1e-9) {
			t.Errorf("method %d: spike round-trip = %v, want %v", m, got, xs[73])
		}
	}
}

func TestDefuzzify_EmptyProfileFallback(t *testing.T) {
	xs := SampleDomain(0, 1, 10)
	zeros := make([]float64, len(xs))

	methods := []DefuzzMethod{
		DefuzzCentroid, DefuzzBisector, DefuzzMeanOfMaximum,
		DefuzzLargestOfMaximum, DefuzzSmallestOfMaximum,
	}
	for _, m := range methods {
		if got := Defuzzify(m, xs, zeros, 0.5); got != 0.5 {
			t.Errorf("method %d: all-zero profile = %v, want fallback 0.5", m, got)
		}
		if got := Defuzzify(m, nil, nil, 0.5); got != 0.5 {
			t.Errorf("method %d: empty profile = %v, want fallback 0.5", m, got)
		}
	}
}

func TestCentroid_SymmetricTriangle(t *testing.T) {
	tri := MustTriangular(0.3, 0.5, 0.7)
	xs := SampleDomain(0, 1, 200)
	mus := make([]float64, len(xs))
	for i, x := range xs {
		mus[i] = tri(x)
	}
	if got := Centroid(xs, mus, 0); !almostEqual(got, 0.5, 1e-6) {
		t.Errorf("centroid of symmetric triangle = %v, want 0.5", got)
	}
	if got := Bisector(xs, mus, 0); !almostEqual(got, 0.5, 0.01) {
		t.Errorf("bisector of symmetric triangle = %v, want ~0.5", got)
	}
}

func TestMaximumMethods_Plateau(t *testing.T) {
	trap := MustTrapezoidal(0.2, 0.4, 0.6, 0.8)
	xs := SampleDomain(0, 1, 100)
	mus := make([]float64, len(xs))
	for i, x := range xs {
		mus[i] = trap(x)
	}

	if got := SmallestOfMaximum(xs, mus, 0); !almostEqual(got, 0.4, 1e-9) {
		t.Errorf("SOM = %v, want 0.4", got)
	}
	if got := LargestOfMaximum(xs, mus, 0); !almostEqual(got, 0.6, 1e-9) {
		t.Errorf("LOM = %v, want 0.6", got)
	}
	if got := MeanOfMaximum(xs, mus, 0); !almostEqual(got, 0.5, 1e-9) {
		t.Errorf("MOM = %v, want 0.5", got)
	}
}

func TestWeightedAverage(t *testing.T) {
	got := WeightedAverage([]float64{0.2, 0.8}, []float64{1, 3}, 0.5)
	if want := (0.2 + 3*0.8) / 4; !almostEqual(got, want, 1e-9) {
		t.Errorf("WeightedAverage = %v, want %v", got, want)
	}
	if got := WeightedAverage([]float64{0.2, 0.8}, []float64{0, 0}, 0.5); got != 0.5 {
		t.Errorf("zero-weight WeightedAverage = %v, want fallback 0.5", got)
	}
}
