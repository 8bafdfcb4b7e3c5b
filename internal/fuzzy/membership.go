package fuzzy

import (
	"fmt"
	"math"
)

// MembershipFunction maps a crisp value to a degree of membership in [0,1]
type MembershipFunction func(x float64) float64

// Clamp bounds a degree to [0,1]
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// NewTriangular creates a triangular membership function: 0 outside [a,c],
// linear rise a->b, linear fall b->c, peak 1 at b.
// Requires a < b < c; degenerate shapes are rejected to avoid division by zero.
func NewTriangular(a, b, c float64) (MembershipFunction, error) {
	if !(a < b && b < c) {
		return nil, fmt.Errorf("triangular requires a < b < c, got (%v, %v, %v)", a, b, c)
	}
	return func(x float64) float64 {
		switch {
		case x <= a || x >= c:
			return 0
		case x == b:
			return 1
		case x < b:
			return Clamp((x - a) / (b - a))
		default:
			return Clamp((c - x) / (c - b))
		}
	}, nil
}

// NewTrapezoidal creates a trapezoidal membership function: rise a->b,
// plateau 1 on [b,c], fall c->d. Requires a < b <= c < d.
func NewTrapezoidal(a, b, c, d float64) (MembershipFunction, error) {
	if !(a < b && b <= c && c < d) {
		return nil, fmt.Errorf("trapezoidal requires a < b <= c < d, got (%v, %v, %v, %v)", a, b, c, d)
	}
	return func(x float64) float64 {
		switch {
		case x <= a || x >= d:
			return 0
		case x >= b && x <= c:
			return 1
		case x < b:
			return Clamp((x - a) / (b - a))
		default:
			return Clamp((d - x) / (d - c))
		}
	}, nil
}

// NewGaussian creates a gaussian membership function centered at c with
// standard deviation sigma. Requires sigma > 0.
func NewGaussian(c, sigma float64) (MembershipFunction, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("gaussian requires sigma > 0, got %v", sigma)
	}
	return func(x float64) float64 {
		d := x - c
		return Clamp(math.Exp(-(d * d) / (2 * sigma * sigma)))
	}, nil
}

// NewGeneralizedBell creates a generalized bell function
// 1/(1+|((x-c)/a)|^(2b)) with width a, slope b and center c.
// Requires a > 0 and b > 0.
func NewGeneralizedBell(a, b, c float64) (MembershipFunction, error) {
	if a <= 0 {
		return nil, fmt.Errorf("generalized bell requires width a > 0, got %v", a)
	}
	if b <= 0 {
		return nil, fmt.Errorf("generalized bell requires slope b > 0, got %v", b)
	}
	return func(x float64) float64 {
		return Clamp(1 / (1 + math.Pow(math.Abs((x-c)/a), 2*b)))
	}, nil
}

// NewSigmoid creates a sigmoid membership function 1/(1+exp(-a(x-c))).
// The sign of a controls whether the curve rises or falls; a must be non-zero.
func NewSigmoid(a, c float64) (MembershipFunction, error) {
	if a == 0 {
		return nil, fmt.Errorf("sigmoid requires non-zero slope a")
	}
	return func(x float64) float64 {
		return Clamp(1 / (1 + math.Exp(-a*(x-c))))
	}, nil
}

// NewLeftShoulder creates a left shoulder: 1 for x <= a, linear fall to 0 at b,
// 0 beyond. Requires a < b.
func NewLeftShoulder(a, b float64) (MembershipFunction, error) {
	if !(a < b) {
		return nil, fmt.Errorf("left shoulder requires a < b, got (%v, %v)", a, b)
	}
	return func(x float64) float64 {
		switch {
		case x <= a:
			return 1
		case x >= b:
			return 0
		default:
			return Clamp((b - x) / (b - a))
		}
	}, nil
}

// NewRightShoulder creates a right shoulder: 0 for x <= a, linear rise to 1
// at b, 1 beyond. Requires a < b.
func NewRightShoulder(a, b float64) (MembershipFunction, error) {
	if !(a < b) {
		return nil, fmt.Errorf("right shoulder requires a < b, got (%v, %v)", a, b)
	}
	return func(x float64) float64 {
		switch {
		case x <= a:
			return 0
		case x >= b:
			return 1
		default:
			return Clamp((x - a) / (b - a))
		}
	}, nil
}

// NewPiShaped creates a pi-shaped function: rise a->b, plateau 1 on [b,c],
// fall c->d. Requires a < b <= c < d.
func NewPiShaped(a, b, c, d float64) (MembershipFunction, error) {
	if !(a < b && b <= c && c < d) {
		return nil, fmt.Errorf("pi-shaped requires a < b <= c < d, got (%v, %v, %v, %v)", a, b, c, d)
	}
	rise, _ := NewRightShoulder(a, b)
	fall, _ := NewLeftShoulder(c, d)
	return func(x float64) float64 {
		if x < b {
			return rise(x)
		}
		if x > c {
			return fall(x)
		}
		return 1
	}, nil
}

// MustTriangular is NewTriangular for static definitions; panics on bad shape.
func MustTriangular(a, b, c float64) MembershipFunction {
	mf, err := NewTriangular(a, b, c)
	if err != nil {
		panic(err)
	}
	return mf
}

// MustTrapezoidal is NewTrapezoidal for static definitions; panics on bad shape.
func MustTrapezoidal(a, b, c, d float64) MembershipFunction {
	mf, err := NewTrapezoidal(a, b, c, d)
	if err != nil {
		panic(err)
	}
	return mf
}

// MustLeftShoulder is NewLeftShoulder for static definitions; panics on bad shape.
func MustLeftShoulder(a, b float64) MembershipFunction {
	mf, err := NewLeftShoulder(a, b)
	if err != nil {
		panic(err)
	}
	return mf
}

// MustRightShoulder is NewRightShoulder for static definitions; panics on bad shape.
func MustRightShoulder(a, b float64) MembershipFunction {
	mf, err := NewRightShoulder(a, b)
	if err != nil {
		panic(err)
	}
	return mf
}
