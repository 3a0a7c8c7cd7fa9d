package query

import (
	"fmt"

	"go.viam.com/euclid/numeric"
	"go.viam.com/euclid/space"
)

// Plane is the set of points p with (p - Origin)·Normal = 0. In two dimensions it is a line, and
// in N dimensions a hyperplane.
type Plane[S numeric.Scalar, P space.EuclideanSpace[S, P, V], V space.InnerSpace[S, V]] struct {
	Origin P
	Normal UnitVector[S, V]
}

// NewPlane returns the plane through origin perpendicular to normal.
func NewPlane[S numeric.Scalar, P space.EuclideanSpace[S, P, V], V space.InnerSpace[S, V]](
	origin P,
	normal UnitVector[S, V],
) Plane[S, P, V] {
	return Plane[S, P, V]{Origin: origin, Normal: normal}
}

// SignedDistance returns the distance from the plane to p, positive on the side the normal
// points to.
func (pl Plane[S, P, V]) SignedDistance(p P) S {
	return pl.Normal.Dot(p.Sub(pl.Origin))
}

// Distance returns the unsigned distance from the plane to p.
func (pl Plane[S, P, V]) Distance(p P) S {
	return numeric.Abs(pl.SignedDistance(p))
}

// Project returns the point of the plane closest to p.
func (pl Plane[S, P, V]) Project(p P) P {
	return p.Add(pl.Normal.Vector().Mul(-pl.SignedDistance(p)))
}

// Contains reports whether p lies on the plane within tolerance.
func (pl Plane[S, P, V]) Contains(p P) bool {
	return numeric.AlmostZero(pl.SignedDistance(p))
}

// Flip returns the same plane with the normal reversed.
func (pl Plane[S, P, V]) Flip() Plane[S, P, V] {
	return Plane[S, P, V]{Origin: pl.Origin, Normal: pl.Normal.Neg()}
}

func (pl Plane[S, P, V]) String() string {
	return fmt.Sprintf("Plane{Origin: %v, Normal: %v}", pl.Origin, pl.Normal.Vector())
}
