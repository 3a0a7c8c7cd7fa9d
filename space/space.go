// Package space defines the contracts a coordinate type must satisfy to act as a vector or a point
// in a Euclidean space, along with the operations derived from those contracts.
//
// Capabilities are small independent interfaces. A type opts into more structure by satisfying
// more of them; there is no hierarchy to inherit from. Generic code names the capabilities it
// needs in its type parameters, for example
//
//	func Distance[S numeric.Scalar, P EuclideanSpace[S, P, V], V InnerSpace[S, V]](p, q P) S
//
// and works for any provider type, whether it is one of the vec types or an adapter around a
// third party math library.
package space

import (
	"go.viam.com/euclid/adjunct"
	"go.viam.com/euclid/numeric"
)

// VectorSpace is closed under addition and scalar multiplication. The zero value of a conforming
// type must be its zero vector.
type VectorSpace[S numeric.Scalar, V any] interface {
	adjunct.Composite[S, V]
	Add(V) V
	Sub(V) V
	Neg() V
	Mul(S) V
}

// InnerSpace is a VectorSpace with a dot product.
type InnerSpace[S numeric.Scalar, V any] interface {
	VectorSpace[S, V]
	Dot(V) S
}

// AffineSpace is a set of points P acted on by translations V. The difference of two points is
// a vector, and p.Add(q.Sub(p)) is q.
type AffineSpace[S numeric.Scalar, P, V any] interface {
	adjunct.Composite[S, P]
	Sub(P) V
	Add(V) P
}

// EuclideanSpace is an AffineSpace with a distinguished origin. The zero value of a conforming
// type must be the origin, and Coordinates returns the position vector relative to it.
type EuclideanSpace[S numeric.Scalar, P, V any] interface {
	AffineSpace[S, P, V]
	Coordinates() V
}

// Planar exposes named accessors for the first two coordinates.
type Planar[S numeric.Scalar] interface {
	X() S
	Y() S
}

// Spatial exposes named accessors for the first three coordinates.
type Spatial[S numeric.Scalar] interface {
	Planar[S]
	Z() S
}

// Crosser is implemented by three dimensional vectors.
type Crosser[V any] interface {
	Cross(V) V
}

// Extender builds a value one dimension higher by appending a coordinate.
type Extender[S numeric.Scalar, B any] interface {
	Extend(s S) B
}

// Truncater builds a value one dimension lower, returning the removed last coordinate.
type Truncater[S numeric.Scalar, B any] interface {
	Truncate() (B, S)
}

// AsPosition is implemented by types that carry a position, such as mesh vertices.
type AsPosition[P any] interface {
	Position() P
}
