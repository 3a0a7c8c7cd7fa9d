// Package numeric defines the scalar domain and dimension tags every other package in euclid is
// generic over.
package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the ordered field coordinates are drawn from.
type Scalar interface {
	constraints.Float
}

const (
	float64Epsilon = 1e-9
	float32Epsilon = 1e-5
)

// Epsilon returns the tolerance of the scalar domain S. Every approximate comparison in euclid is
// made against this value.
func Epsilon[S Scalar]() S {
	var probe S = 1
	// float32 cannot represent 1+1e-9, so the addition collapses back to 1.
	if probe+S(float64Epsilon) == probe {
		return S(float32Epsilon)
	}
	return S(float64Epsilon)
}

// AlmostEqual reports whether a and b are equal within the tolerance of S. The tolerance is
// absolute near zero and relative to the larger magnitude elsewhere. An infinity is only equal
// to itself.
func AlmostEqual[S Scalar](a, b S) bool {
	if a == b {
		return true
	}
	if IsInf(a) || IsInf(b) {
		return false
	}
	scale := Max(1, Max(Abs(a), Abs(b)))
	return Abs(a-b) <= Epsilon[S]()*scale
}

// AlmostZero reports whether a is zero within the tolerance of S.
func AlmostZero[S Scalar](a S) bool {
	return AlmostEqual(a, 0)
}

// AlmostEqualEps compares two values with an explicit absolute tolerance.
func AlmostEqualEps[S Scalar](a, b, eps S) bool {
	return Abs(a-b) <= eps
}

// Abs returns the absolute value of a.
func Abs[S Scalar](a S) S {
	if a < 0 {
		return -a
	}
	return a
}

// Sqrt returns the square root of a in the same scalar domain.
func Sqrt[S Scalar](a S) S {
	return S(math.Sqrt(float64(a)))
}

// Min returns the smaller of a and b.
func Min[S Scalar](a, b S) S {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[S Scalar](a, b S) S {
	if a > b {
		return a
	}
	return b
}

// Clamp restricts a to [lo, hi].
func Clamp[S Scalar](a, lo, hi S) S {
	return Max(lo, Min(a, hi))
}

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf[S Scalar](sign int) S {
	return S(math.Inf(sign))
}

// IsInf reports whether a is an infinity of either sign.
func IsInf[S Scalar](a S) bool {
	return math.IsInf(float64(a), 0)
}

// IsNaN reports whether a is not a number.
func IsNaN[S Scalar](a S) bool {
	return a != a
}
