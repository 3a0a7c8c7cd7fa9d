package query

import (
	"github.com/pkg/errors"

	"go.viam.com/euclid/numeric"
	"go.viam.com/euclid/space"
)

// UnitVector is a direction: a vector whose magnitude is one within tolerance. The only way to
// obtain a non-zero UnitVector is through a normalizing constructor.
type UnitVector[S numeric.Scalar, V space.InnerSpace[S, V]] struct {
	v V
}

// NewUnitVector normalizes v. It fails with ErrDegenerateDirection when v has no direction.
func NewUnitVector[S numeric.Scalar, V space.InnerSpace[S, V]](v V) (UnitVector[S, V], error) {
	n, ok := space.Normalize[S](v)
	if !ok {
		return UnitVector[S, V]{}, errors.Wrapf(ErrDegenerateDirection, "cannot normalize %v", v)
	}
	return UnitVector[S, V]{v: n}, nil
}

// UnitAxis returns the canonical basis direction for axis i. It returns false if i is out of range.
func UnitAxis[S numeric.Scalar, V space.InnerSpace[S, V]](i int) (UnitVector[S, V], bool) {
	v, ok := space.BasisComponent[S, V](i)
	if !ok {
		return UnitVector[S, V]{}, false
	}
	return UnitVector[S, V]{v: v}, true
}

// Vector returns the underlying unit length vector.
func (u UnitVector[S, V]) Vector() V { return u.v }

// Neg returns the opposite direction.
func (u UnitVector[S, V]) Neg() UnitVector[S, V] { return UnitVector[S, V]{v: u.v.Neg()} }

// Dim returns the dimension of the direction.
func (u UnitVector[S, V]) Dim() int { return u.v.Dim() }

// Component returns the i-th component of the direction.
func (u UnitVector[S, V]) Component(i int) S { return u.v.Component(i) }

// Dot returns the dot product of the direction with v.
func (u UnitVector[S, V]) Dot(v V) S { return u.v.Dot(v) }
