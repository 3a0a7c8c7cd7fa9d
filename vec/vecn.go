package vec

import (
	"github.com/pkg/errors"

	"go.viam.com/euclid/numeric"
	"go.viam.com/euclid/space"
)

// VecN is a vector of any dimension. The dimension is carried by the tag type D, so vectors of
// different dimension cannot be mixed. Components live in a slice that is never shared between
// values: every operation returns fresh storage. The zero value is the zero vector.
type VecN[S numeric.Scalar, D numeric.Dimension] struct {
	c []S
}

// NewVecN builds a vector from exactly D.Dim() components.
func NewVecN[S numeric.Scalar, D numeric.Dimension](components ...S) (VecN[S, D], error) {
	c, err := checkedCopy[S, D](components)
	if err != nil {
		return VecN[S, D]{}, err
	}
	return VecN[S, D]{c: c}, nil
}

// Dim returns D.Dim().
func (v VecN[S, D]) Dim() int { return numeric.DimOf[D]() }

// Component returns the i-th coordinate.
func (v VecN[S, D]) Component(i int) S { return componentAt[S, D](v.c, i) }

// WithComponent returns a copy of v with the i-th coordinate replaced.
func (v VecN[S, D]) WithComponent(i int, s S) VecN[S, D] {
	c := materialize[S, D](v.c)
	c[i] = s
	return VecN[S, D]{c: c}
}

// Add returns v + other.
func (v VecN[S, D]) Add(other VecN[S, D]) VecN[S, D] {
	return VecN[S, D]{c: zip[S, D](v.c, other.c, func(a, b S) S { return a + b })}
}

// Sub returns v - other.
func (v VecN[S, D]) Sub(other VecN[S, D]) VecN[S, D] {
	return VecN[S, D]{c: zip[S, D](v.c, other.c, func(a, b S) S { return a - b })}
}

// Neg returns -v.
func (v VecN[S, D]) Neg() VecN[S, D] { return v.Mul(-1) }

// Mul scales v by s.
func (v VecN[S, D]) Mul(s S) VecN[S, D] {
	c := materialize[S, D](v.c)
	for i := range c {
		c[i] *= s
	}
	return VecN[S, D]{c: c}
}

// Dot returns the dot product of v and other.
func (v VecN[S, D]) Dot(other VecN[S, D]) S {
	var sum S
	for i := 0; i < v.Dim(); i++ {
		sum += v.Component(i) * other.Component(i)
	}
	return sum
}

// Norm returns the length of v.
func (v VecN[S, D]) Norm() S { return numeric.Sqrt(v.Dot(v)) }

func (v VecN[S, D]) String() string { return format[S](v) }

// PointN is a position in a space of any dimension. See VecN.
type PointN[S numeric.Scalar, D numeric.Dimension] struct {
	c []S
}

// NewPointN builds a point from exactly D.Dim() components.
func NewPointN[S numeric.Scalar, D numeric.Dimension](components ...S) (PointN[S, D], error) {
	c, err := checkedCopy[S, D](components)
	if err != nil {
		return PointN[S, D]{}, err
	}
	return PointN[S, D]{c: c}, nil
}

// Dim returns D.Dim().
func (p PointN[S, D]) Dim() int { return numeric.DimOf[D]() }

// Component returns the i-th coordinate.
func (p PointN[S, D]) Component(i int) S { return componentAt[S, D](p.c, i) }

// WithComponent returns a copy of p with the i-th coordinate replaced.
func (p PointN[S, D]) WithComponent(i int, s S) PointN[S, D] {
	c := materialize[S, D](p.c)
	c[i] = s
	return PointN[S, D]{c: c}
}

// Sub returns the vector from other to p.
func (p PointN[S, D]) Sub(other PointN[S, D]) VecN[S, D] {
	return VecN[S, D]{c: zip[S, D](p.c, other.c, func(a, b S) S { return a - b })}
}

// Add translates p by v.
func (p PointN[S, D]) Add(v VecN[S, D]) PointN[S, D] {
	return PointN[S, D]{c: zip[S, D](p.c, v.c, func(a, b S) S { return a + b })}
}

// Coordinates returns the position of p relative to the origin.
func (p PointN[S, D]) Coordinates() VecN[S, D] { return VecN[S, D]{c: materialize[S, D](p.c)} }

func (p PointN[S, D]) String() string { return format[S](p) }

func checkedCopy[S numeric.Scalar, D numeric.Dimension](components []S) ([]S, error) {
	if dim := numeric.DimOf[D](); len(components) != dim {
		return nil, errors.Wrapf(space.ErrDimensionMismatch, "expected %d coordinates but got %d", dim, len(components))
	}
	return materialize[S, D](components), nil
}

// materialize returns a fresh slice of length D.Dim() holding c. A nil c reads as all zeros.
func materialize[S numeric.Scalar, D numeric.Dimension](c []S) []S {
	out := make([]S, numeric.DimOf[D]())
	copy(out, c)
	return out
}

func componentAt[S numeric.Scalar, D numeric.Dimension](c []S, i int) S {
	if c == nil {
		if dim := numeric.DimOf[D](); i < 0 || i >= dim {
			panic(errors.Errorf("index %d out of range for dimension %d", i, dim))
		}
		return 0
	}
	return c[i]
}

func zip[S numeric.Scalar, D numeric.Dimension](a, b []S, f func(S, S) S) []S {
	out := make([]S, numeric.DimOf[D]())
	for i := range out {
		out[i] = f(componentAt[S, D](a, i), componentAt[S, D](b, i))
	}
	return out
}
