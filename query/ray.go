package query

import (
	"fmt"

	"go.viam.com/euclid/numeric"
	"go.viam.com/euclid/space"
)

// Ray is the half line Origin + t*Direction for t >= 0.
type Ray[S numeric.Scalar, P space.EuclideanSpace[S, P, V], V space.InnerSpace[S, V]] struct {
	Origin    P
	Direction UnitVector[S, V]
}

// NewRay returns the ray starting at origin heading along direction.
func NewRay[S numeric.Scalar, P space.EuclideanSpace[S, P, V], V space.InnerSpace[S, V]](
	origin P,
	direction UnitVector[S, V],
) Ray[S, P, V] {
	return Ray[S, P, V]{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray.
func (r Ray[S, P, V]) At(t S) P {
	return r.Origin.Add(r.Direction.Vector().Mul(t))
}

// Reverse returns the ray with the same origin heading the opposite way.
func (r Ray[S, P, V]) Reverse() Ray[S, P, V] {
	return Ray[S, P, V]{Origin: r.Origin, Direction: r.Direction.Neg()}
}

func (r Ray[S, P, V]) String() string {
	return fmt.Sprintf("Ray{Origin: %v, Direction: %v}", r.Origin, r.Direction.Vector())
}
