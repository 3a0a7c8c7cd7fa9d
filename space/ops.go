package space

import (
	"math"

	"go.viam.com/euclid/adjunct"
	"go.viam.com/euclid/numeric"
)

// Zero returns the additive identity of V.
func Zero[S numeric.Scalar, V VectorSpace[S, V]]() V {
	return adjunct.Converged[S, V](0)
}

// Origin returns the origin of the space of P.
func Origin[S numeric.Scalar, P adjunct.Composite[S, P]]() P {
	return adjunct.Converged[S, P](0)
}

// SquaredMagnitude returns v·v.
func SquaredMagnitude[S numeric.Scalar, V InnerSpace[S, V]](v V) S {
	return v.Dot(v)
}

// Magnitude returns the Euclidean length of v.
func Magnitude[S numeric.Scalar, V InnerSpace[S, V]](v V) S {
	return numeric.Sqrt(v.Dot(v))
}

// Normalize scales v to unit length. It returns false if v is zero within tolerance.
func Normalize[S numeric.Scalar, V InnerSpace[S, V]](v V) (V, bool) {
	m := Magnitude[S](v)
	if numeric.AlmostZero(m) {
		return v, false
	}
	return v.Mul(1 / m), true
}

// Project returns the component of v along onto. Projecting onto the zero vector yields zero.
func Project[S numeric.Scalar, V InnerSpace[S, V]](v, onto V) V {
	d := onto.Dot(onto)
	if numeric.AlmostZero(d) {
		return Zero[S, V]()
	}
	return onto.Mul(v.Dot(onto) / d)
}

// Angle returns the angle between a and b in radians. It returns false if either is zero.
func Angle[S numeric.Scalar, V InnerSpace[S, V]](a, b V) (S, bool) {
	ma, mb := Magnitude[S](a), Magnitude[S](b)
	if numeric.AlmostZero(ma) || numeric.AlmostZero(mb) {
		return 0, false
	}
	c := numeric.Clamp(a.Dot(b)/(ma*mb), -1, 1)
	return S(math.Acos(float64(c))), true
}

// SquaredDistance returns the squared length of q - p.
func SquaredDistance[S numeric.Scalar, P EuclideanSpace[S, P, V], V InnerSpace[S, V]](p, q P) S {
	d := q.Sub(p)
	return d.Dot(d)
}

// Distance returns the length of q - p.
func Distance[S numeric.Scalar, P EuclideanSpace[S, P, V], V InnerSpace[S, V]](p, q P) S {
	return numeric.Sqrt(SquaredDistance[S, P, V](p, q))
}

// FromCoordinates returns the point at position v relative to the origin.
func FromCoordinates[S numeric.Scalar, P EuclideanSpace[S, P, V], V InnerSpace[S, V]](v V) P {
	return Origin[S, P]().Add(v)
}

// Centroid returns the pointwise mean of points. It returns false for an empty input.
func Centroid[S numeric.Scalar, P EuclideanSpace[S, P, V], V InnerSpace[S, V]](points []P) (P, bool) {
	if len(points) == 0 {
		return Origin[S, P](), false
	}
	sum := Zero[S, V]()
	for _, p := range points {
		sum = sum.Add(p.Coordinates())
	}
	return FromCoordinates[S, P](sum.Mul(1 / S(len(points)))), true
}

// Lerp interpolates linearly between a and b. f=0 yields a and f=1 yields b.
func Lerp[S numeric.Scalar, A adjunct.Composite[S, A]](a, b A, f S) A {
	return adjunct.ZipMap(a, b, func(x, y S) S { return x + (y-x)*f })
}

// Basis returns the canonical basis of V.
func Basis[S numeric.Scalar, V adjunct.Composite[S, V]]() []V {
	var zero V
	bases := make([]V, zero.Dim())
	for i := range bases {
		bases[i] = zero.WithComponent(i, 1)
	}
	return bases
}

// BasisComponent returns the i-th canonical basis vector. It returns false if i is out of range.
func BasisComponent[S numeric.Scalar, V adjunct.Composite[S, V]](i int) (V, bool) {
	var zero V
	if i < 0 || i >= zero.Dim() {
		return zero, false
	}
	return zero.WithComponent(i, 1), true
}

// FromXY builds a two dimensional value.
func FromXY[S numeric.Scalar, A adjunct.Composite[S, A]](x, y S) (A, error) {
	a, ok := adjunct.FromItems[S, A](x, y)
	if !ok {
		return a, newDimensionMismatchError(a.Dim(), 2)
	}
	return a, nil
}

// FromXYZ builds a three dimensional value.
func FromXYZ[S numeric.Scalar, A adjunct.Composite[S, A]](x, y, z S) (A, error) {
	a, ok := adjunct.FromItems[S, A](x, y, z)
	if !ok {
		return a, newDimensionMismatchError(a.Dim(), 3)
	}
	return a, nil
}
