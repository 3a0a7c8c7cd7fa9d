package query

import (
	"go.viam.com/euclid/numeric"
	"go.viam.com/euclid/vec"
)

// Shorthands over the native vec types.
type (
	UnitVector2[S numeric.Scalar] = UnitVector[S, vec.Vec2[S]]
	UnitVector3[S numeric.Scalar] = UnitVector[S, vec.Vec3[S]]
	Aabb2[S numeric.Scalar]       = Aabb[S, vec.Point2[S], vec.Vec2[S]]
	Aabb3[S numeric.Scalar]       = Aabb[S, vec.Point3[S], vec.Vec3[S]]
	Ray2[S numeric.Scalar]        = Ray[S, vec.Point2[S], vec.Vec2[S]]
	Ray3[S numeric.Scalar]        = Ray[S, vec.Point3[S], vec.Vec3[S]]
	Plane2[S numeric.Scalar]      = Plane[S, vec.Point2[S], vec.Vec2[S]]
	Plane3[S numeric.Scalar]      = Plane[S, vec.Point3[S], vec.Vec3[S]]
)
