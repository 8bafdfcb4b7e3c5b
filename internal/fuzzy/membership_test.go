package fuzzy

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestTriangular_Breakpoints(t *testing.T) {
	tri, err := NewTriangular(0.2, 0.5, 0.8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		x    float64
		want float64
	}{
		{0.0, 0}, {0.2, 0}, {0.35, 0.5}, {0.5, 1}, {0.65, 0.5}, {0.8, 0}, {1.0, 0},
	}
	for _, c := range cases {
		if got := tri(c.x); !almostEqual(got, c.want, 1e-9) {
			t.Errorf("triangular(%v) = %v, want %v", c.x, got, c.want)
		}
	}

	// Outside the support the value is exactly 0
	for _, x := range []float64{-10, 0.1, 0.9, 10} {
		if got := tri(x); got != 0 {
			t.Errorf("triangular(%v) = %v, want exactly 0", x, got)
		}
	}
}

func TestTriangular_DegenerateShapesRejected(t *testing.T) {
	for _, params := range [][3]float64{
		{0.5, 0.5, 0.8}, // a == b
		{0.2, 0.8, 0.8}, // b == c
		{0.8, 0.5, 0.2}, // reversed
	} {
		if _, err := NewTriangular(params[0], params[1], params[2]); err == nil {
			t.Errorf("NewTriangular(%v) should reject degenerate shape", params)
		}
	}
}

func TestTrapezoidal(t *testing.T) {
	trap, err := NewTrapezoidal(0.1, 0.3, 0.6, 0.9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := trap(0.45); got != 1 {
		t.Errorf("expected plateau membership 1, got %v", got)
	}
	if got := trap(0.2); !almostEqual(got, 0.5, 1e-9) {
		t.Errorf("expected rising edge 0.5, got %v", got)
	}
	if got := trap(0.75); !almostEqual(got, 0.5, 1e-9) {
		t.Errorf("expected falling edge 0.5, got %v", got)
	}
	if got := trap(0.05); got != 0 {
		t.Errorf("expected 0 outside support, got %v", got)
	}

	if _, err := NewTrapezoidal(0.3, 0.1, 0.6, 0.9); err == nil {
		t.Error("expected error for unordered trapezoidal parameters")
	}
}

func TestGaussian(t *testing.T) {
	g, err := NewGaussian(0.5, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := g(0.5); got != 1 {
		t.Errorf("gaussian at center = %v, want 1", got)
	}
	// Never exactly 0 away from center
	if got := g(0.0); got <= 0 {
		t.Errorf("gaussian should stay above 0, got %v", got)
	}
	if got := g(0.0); got >= g(0.4) {
		t.Error("gaussian should decrease away from the center")
	}

	if _, err := NewGaussian(0.5, 0); err == nil {
		t.Error("expected error for zero sigma")
	}
}

func TestGeneralizedBell(t *testing.T) {
	bell, err := NewGeneralizedBell(0.2, 2, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := bell(0.5); got != 1 {
		t.Errorf("bell at center = %v, want 1", got)
	}
	if got := bell(0.7); !almostEqual(got, 0.5, 1e-9) {
		t.Errorf("bell at c+a = %v, want 0.5", got)
	}

	if _, err := NewGeneralizedBell(0, 2, 0.5); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestSigmoid(t *testing.T) {
	rising, err := NewSigmoid(10, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rising(0.5); !almostEqual(got, 0.5, 1e-9) {
		t.Errorf("sigmoid at center = %v, want 0.5", got)
	}
	if rising(0.9) <= rising(0.1) {
		t.Error("positive slope sigmoid should rise")
	}

	falling, _ := NewSigmoid(-10, 0.5)
	if falling(0.9) >= falling(0.1) {
		t.Error("negative slope sigmoid should fall")
	}

	if _, err := NewSigmoid(0, 0.5); err == nil {
		t.Error("expected error for zero slope")
	}
}

func TestShoulders(t *testing.T) {
	left, err := NewLeftShoulder(0.2, 0.6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := left(0.0); got != 1 {
		t.Errorf("left shoulder saturates to 1, got %v", got)
	}
	if got := left(0.4); !almostEqual(got, 0.5, 1e-9) {
		t.Errorf("left shoulder midpoint = %v, want 0.5", got)
	}
	if got := left(0.8); got != 0 {
		t.Errorf("left shoulder beyond b = %v, want 0", got)
	}

	right, err := NewRightShoulder(0.2, 0.6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := right(0.0); got != 0 {
		t.Errorf("right shoulder before a = %v, want 0", got)
	}
	if got := right(0.9); got != 1 {
		t.Errorf("right shoulder saturates to 1, got %v", got)
	}
}

func TestPiShaped(t *testing.T) {
	pi, err := NewPiShaped(0.1, 0.3, 0.6, 0.9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := pi(0.45); got != 1 {
		t.Errorf("pi plateau = %v, want 1", got)
	}
	if got := pi(0.2); !almostEqual(got, 0.5, 1e-9) {
		t.Errorf("pi rising edge = %v, want 0.5", got)
	}
	if got := pi(0.75); !almostEqual(got, 0.5, 1e-9) {
		t.Errorf("pi falling edge = %v, want 0.5", got)
	}
	if got := pi(0.05); got != 0 {
		t.Errorf("pi outside support = %v, want 0", got)
	}
}

func TestMembership_AlwaysInUnitInterval(t *testing.T) {
	funcs := map[string]MembershipFunction{
		"triangular":  MustTriangular(0.2, 0.5, 0.8),
		"trapezoidal": MustTrapezoidal(0.1, 0.3, 0.6, 0.9),
		"left":        MustLeftShoulder(0.2, 0.6),
		"right":       MustRightShoulder(0.2, 0.6),
	}
	for name, f := range funcs {
		for x := -2.0; x <= 3.0; x += 0.05 {
			got := f(x)
			if got < 0 || got > 1 {
				t.Errorf("%s(%v) = %v outside [0,1]", name, x, got)
			}
		}
	}
}
