package query

import (
	"go.viam.com/euclid/adjunct"
	"go.viam.com/euclid/numeric"
	"go.viam.com/euclid/space"
)

// IntersectAabb intersects the ray with box using the slab method. The result is an Interval of
// ray parameters [enter, exit] clamped to t >= 0, a Point when the ray only grazes the box, or
// Empty when the box is missed or lies entirely behind the origin.
func (r Ray[S, P, V]) IntersectAabb(box Aabb[S, P, V]) Intersection[S] {
	if box.IsEmpty() {
		return EmptyIntersection[S]()
	}
	lo, hi := box.Min(), box.Max()
	enter, exit := numeric.Inf[S](-1), numeric.Inf[S](1)
	for i := 0; i < r.Origin.Dim(); i++ {
		o, d := r.Origin.Component(i), r.Direction.Component(i)
		l, h := lo.Component(i), hi.Component(i)
		if numeric.AlmostZero(d) {
			// Parallel to this slab: either inside it for every t or never.
			if !within(o, l, h) {
				return EmptyIntersection[S]()
			}
			continue
		}
		t0, t1 := (l-o)/d, (h-o)/d
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		enter = numeric.Max(enter, t0)
		exit = numeric.Min(exit, t1)
	}
	if enter > exit && !numeric.AlmostEqual(enter, exit) {
		return EmptyIntersection[S]()
	}
	if exit < 0 && !numeric.AlmostZero(exit) {
		return EmptyIntersection[S]()
	}
	enter = numeric.Max(enter, 0)
	exit = numeric.Max(exit, enter)
	if numeric.AlmostEqual(enter, exit) {
		return PointIntersection(enter)
	}
	return IntervalIntersection(enter, exit)
}

// IntersectRay is IntersectAabb with the arguments swapped.
func (b Aabb[S, P, V]) IntersectRay(r Ray[S, P, V]) Intersection[S] {
	return r.IntersectAabb(b)
}

// IntersectPlane returns the ray parameter at which the ray crosses the plane. A crossing behind
// the origin, or a ray parallel to and off the plane, is Empty. A ray lying in the plane meets it
// for every t, reported as the Interval [0, +Inf].
func (r Ray[S, P, V]) IntersectPlane(pl Plane[S, P, V]) Intersection[S] {
	denom := pl.Normal.Dot(r.Direction.Vector())
	dist := pl.SignedDistance(r.Origin)
	if numeric.AlmostZero(denom) {
		if numeric.AlmostZero(dist) {
			return IntervalIntersection(0, numeric.Inf[S](1))
		}
		return EmptyIntersection[S]()
	}
	t := -dist / denom
	if t < 0 && !numeric.AlmostZero(t) {
		return EmptyIntersection[S]()
	}
	return PointIntersection(numeric.Max(t, 0))
}

// IntersectRay is IntersectPlane with the arguments swapped.
func (pl Plane[S, P, V]) IntersectRay(r Ray[S, P, V]) Intersection[S] {
	return r.IntersectPlane(pl)
}

// IntersectAabb returns the range of signed distances from the plane covered by box. The result
// is Empty when the whole box lies on one side of the plane, a Point when the box is flat within
// the plane, and otherwise the Interval [dmin, dmax].
func (pl Plane[S, P, V]) IntersectAabb(box Aabb[S, P, V]) Intersection[S] {
	if box.IsEmpty() {
		return EmptyIntersection[S]()
	}
	center := pl.SignedDistance(box.Center())
	absNormal := adjunct.Map(pl.Normal.Vector(), numeric.Abs[S])
	radius := absNormal.Dot(box.Extent.Mul(0.5))
	dmin, dmax := center-radius, center+radius
	if (dmin > 0 && !numeric.AlmostZero(dmin)) || (dmax < 0 && !numeric.AlmostZero(dmax)) {
		return EmptyIntersection[S]()
	}
	if numeric.AlmostEqual(dmin, dmax) {
		return PointIntersection(center)
	}
	return IntervalIntersection(dmin, dmax)
}

// IntersectAabb intersects two boxes by overlapping their intervals on each axis.
func (b Aabb[S, P, V]) IntersectAabb(other Aabb[S, P, V]) Overlap[S, P, V] {
	if b.IsEmpty() || other.IsEmpty() {
		return Overlap[S, P, V]{Kind: Disjoint}
	}
	lo := adjunct.ZipMap(b.Min(), other.Min(), numeric.Max[S])
	hi := adjunct.ZipMap(b.Max(), other.Max(), numeric.Min[S])
	kind := Overlapping
	for i := 0; i < lo.Dim(); i++ {
		gap := hi.Component(i) - lo.Component(i)
		if gap < 0 && !numeric.AlmostZero(gap) {
			return Overlap[S, P, V]{Kind: Disjoint}
		}
		if numeric.AlmostZero(gap) && boundaryContact(b, other, i) {
			kind = Touching
		}
	}
	extent := adjunct.Map(hi.Sub(lo), func(e S) S { return numeric.Max(e, 0) })
	return Overlap[S, P, V]{Kind: kind, Box: Aabb[S, P, V]{Origin: lo, Extent: extent}}
}

// boundaryContact reports whether two boxes whose overlap has no width on axis i meet only on a
// boundary there. Boxes of full width meet face to face. A flat box meets the other on a boundary
// when it lies on the other's min or max face. Two flat boxes coincide on the axis and overlap.
func boundaryContact[S numeric.Scalar, P space.EuclideanSpace[S, P, V], V space.InnerSpace[S, V]](b, other Aabb[S, P, V], i int) bool {
	bFlat := numeric.AlmostZero(b.Extent.Component(i))
	otherFlat := numeric.AlmostZero(other.Extent.Component(i))
	switch {
	case bFlat && otherFlat:
		return false
	case bFlat:
		return onFace(b.Origin.Component(i), other, i)
	case otherFlat:
		return onFace(other.Origin.Component(i), b, i)
	default:
		return true
	}
}

func onFace[S numeric.Scalar, P space.EuclideanSpace[S, P, V], V space.InnerSpace[S, V]](c S, box Aabb[S, P, V], i int) bool {
	return numeric.AlmostEqual(c, box.Min().Component(i)) || numeric.AlmostEqual(c, box.Max().Component(i))
}

// Intersects reports whether the two boxes share at least one point.
func (b Aabb[S, P, V]) Intersects(other Aabb[S, P, V]) bool {
	return b.IntersectAabb(other).Kind != Disjoint
}
