package query

import (
	"fmt"

	"github.com/pkg/errors"

	"go.viam.com/euclid/adjunct"
	"go.viam.com/euclid/numeric"
	"go.viam.com/euclid/space"
)

// Aabb is an axis aligned box spanning [Origin, Origin+Extent] on every axis.
//
// A zero extent component makes the box flat on that axis; such boxes still take part in every
// query. A negative component makes the box empty. NewAabb rejects negative extents, but struct
// literals are not validated so that a box can be grown as an accumulator.
type Aabb[S numeric.Scalar, P space.EuclideanSpace[S, P, V], V space.InnerSpace[S, V]] struct {
	Origin P
	Extent V
}

// NewAabb returns the box spanning [origin, origin+extent].
func NewAabb[S numeric.Scalar, P space.EuclideanSpace[S, P, V], V space.InnerSpace[S, V]](
	origin P,
	extent V,
) (Aabb[S, P, V], error) {
	box := Aabb[S, P, V]{Origin: origin, Extent: extent}
	if box.IsEmpty() {
		return box, errors.Wrapf(ErrNegativeExtent, "extent %v", extent)
	}
	return box, nil
}

// NewAabbFromBounds returns the box with the given minimum and maximum corners. The corners are
// sorted per axis, so the result is never empty.
func NewAabbFromBounds[S numeric.Scalar, P space.EuclideanSpace[S, P, V], V space.InnerSpace[S, V]](a, b P) Aabb[S, P, V] {
	lo := adjunct.ZipMap(a, b, numeric.Min[S])
	hi := adjunct.ZipMap(a, b, numeric.Max[S])
	return Aabb[S, P, V]{Origin: lo, Extent: hi.Sub(lo)}
}

// FromPoints returns the smallest box containing every point.
func FromPoints[S numeric.Scalar, P space.EuclideanSpace[S, P, V], V space.InnerSpace[S, V]](points ...P) (Aabb[S, P, V], error) {
	if len(points) == 0 {
		return Aabb[S, P, V]{}, ErrEmptyPointSet
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = adjunct.ZipMap(lo, p, numeric.Min[S])
		hi = adjunct.ZipMap(hi, p, numeric.Max[S])
	}
	return Aabb[S, P, V]{Origin: lo, Extent: hi.Sub(lo)}, nil
}

// Min returns the corner with the smallest coordinates.
func (b Aabb[S, P, V]) Min() P { return b.Origin }

// Max returns the corner with the largest coordinates.
func (b Aabb[S, P, V]) Max() P { return b.Origin.Add(b.Extent) }

// Center returns the midpoint of the box.
func (b Aabb[S, P, V]) Center() P { return b.Origin.Add(b.Extent.Mul(0.5)) }

// IsEmpty reports whether any extent component is negative.
func (b Aabb[S, P, V]) IsEmpty() bool {
	return adjunct.Any[S](b.Extent, func(e S) bool { return e < 0 && !numeric.AlmostZero(e) })
}

// IsDegenerate reports whether a non-empty box is flat on at least one axis.
func (b Aabb[S, P, V]) IsDegenerate() bool {
	return !b.IsEmpty() && adjunct.Any[S](b.Extent, numeric.AlmostZero[S])
}

// Volume returns the product of the extents, or zero for an empty box.
func (b Aabb[S, P, V]) Volume() S {
	if b.IsEmpty() {
		return 0
	}
	return adjunct.Fold(b.Extent, S(1), func(acc, e S) S { return acc * numeric.Max(e, 0) })
}

// Contains reports whether p lies inside or on the boundary of the box.
func (b Aabb[S, P, V]) Contains(p P) bool {
	if b.IsEmpty() {
		return false
	}
	lo, hi := b.Min(), b.Max()
	for i := 0; i < p.Dim(); i++ {
		if !within(p.Component(i), lo.Component(i), hi.Component(i)) {
			return false
		}
	}
	return true
}

// Union returns the smallest box containing both boxes. Empty boxes are ignored.
func (b Aabb[S, P, V]) Union(other Aabb[S, P, V]) Aabb[S, P, V] {
	switch {
	case b.IsEmpty():
		return other
	case other.IsEmpty():
		return b
	}
	lo := adjunct.ZipMap(b.Min(), other.Min(), numeric.Min[S])
	hi := adjunct.ZipMap(b.Max(), other.Max(), numeric.Max[S])
	return Aabb[S, P, V]{Origin: lo, Extent: hi.Sub(lo)}
}

// Extend returns the smallest box containing b and p. Extending an empty box yields the box
// holding only p.
func (b Aabb[S, P, V]) Extend(p P) Aabb[S, P, V] {
	return b.Union(Aabb[S, P, V]{Origin: p})
}

func (b Aabb[S, P, V]) String() string {
	return fmt.Sprintf("Aabb{Origin: %v, Extent: %v}", b.Origin, b.Extent)
}

// within reports whether lo <= x <= hi, allowing for the scalar tolerance at both ends.
func within[S numeric.Scalar](x, lo, hi S) bool {
	return (x >= lo || numeric.AlmostEqual(x, lo)) && (x <= hi || numeric.AlmostEqual(x, hi))
}
