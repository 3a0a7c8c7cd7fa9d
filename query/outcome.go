package query

import (
	"fmt"

	"go.viam.com/euclid/numeric"
	"go.viam.com/euclid/space"
)

// Kind discriminates the shapes an Intersection can take.
type Kind int

const (
	// Empty means the primitives do not meet.
	Empty Kind = iota
	// Point means the primitives meet at a single parameter value.
	Point
	// Interval means the primitives meet over a closed range of parameter values.
	Interval
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Point:
		return "point"
	case Interval:
		return "interval"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Intersection is the parametric outcome of a query. What the parameters measure depends on the
// query; for rays they are distances along the direction.
type Intersection[S numeric.Scalar] struct {
	kind   Kind
	t0, t1 S
}

// EmptyIntersection returns an outcome with no parameters.
func EmptyIntersection[S numeric.Scalar]() Intersection[S] {
	return Intersection[S]{kind: Empty}
}

// PointIntersection returns an outcome at the single parameter t.
func PointIntersection[S numeric.Scalar](t S) Intersection[S] {
	return Intersection[S]{kind: Point, t0: t, t1: t}
}

// IntervalIntersection returns an outcome spanning [t0, t1]. The bounds are ordered if needed.
func IntervalIntersection[S numeric.Scalar](t0, t1 S) Intersection[S] {
	if t1 < t0 {
		t0, t1 = t1, t0
	}
	return Intersection[S]{kind: Interval, t0: t0, t1: t1}
}

// Kind returns the shape of the outcome.
func (i Intersection[S]) Kind() Kind { return i.kind }

// IsEmpty reports whether the primitives do not meet.
func (i Intersection[S]) IsEmpty() bool { return i.kind == Empty }

// Param returns the first parameter of a non-empty outcome.
func (i Intersection[S]) Param() (S, bool) {
	if i.kind == Empty {
		return 0, false
	}
	return i.t0, true
}

// Bounds returns the parameter range of a non-empty outcome. A Point yields equal bounds.
func (i Intersection[S]) Bounds() (S, S, bool) {
	if i.kind == Empty {
		return 0, 0, false
	}
	return i.t0, i.t1, true
}

func (i Intersection[S]) String() string {
	switch i.kind {
	case Point:
		return fmt.Sprintf("point(%g)", i.t0)
	case Interval:
		return fmt.Sprintf("interval(%g, %g)", i.t0, i.t1)
	default:
		return "empty"
	}
}

// OverlapKind discriminates the outcomes of a box/box query.
type OverlapKind int

const (
	// Disjoint boxes share no point.
	Disjoint OverlapKind = iota
	// Touching boxes share only boundary: the overlap is flat on an axis where neither box is, or
	// where one box is flat and lies on a min or max face of the other.
	Touching
	// Overlapping boxes share interior.
	Overlapping
)

func (k OverlapKind) String() string {
	switch k {
	case Disjoint:
		return "disjoint"
	case Touching:
		return "touching"
	case Overlapping:
		return "overlapping"
	default:
		return fmt.Sprintf("OverlapKind(%d)", int(k))
	}
}

// Overlap is the outcome of intersecting two boxes. Box is the shared region and is only
// meaningful when Kind is not Disjoint.
type Overlap[S numeric.Scalar, P space.EuclideanSpace[S, P, V], V space.InnerSpace[S, V]] struct {
	Kind OverlapKind
	Box  Aabb[S, P, V]
}
