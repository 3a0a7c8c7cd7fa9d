// Package sdfx adapts github.com/deadsy/sdfx vectors and bounding boxes to the euclid space
// traits and query boxes.
package sdfx

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"go.viam.com/euclid/query"
	"go.viam.com/euclid/space"
)

var (
	_ space.InnerSpace[float64, Vec2]             = Vec2{}
	_ space.InnerSpace[float64, Vec3]             = Vec3{}
	_ space.EuclideanSpace[float64, Point2, Vec2] = Point2{}
	_ space.EuclideanSpace[float64, Point3, Vec3] = Point3{}
)

type (
	// Aabb2 is a box over the v2 adapters.
	Aabb2 = query.Aabb[float64, Point2, Vec2]
	// Aabb3 is a box over the v3 adapters.
	Aabb3 = query.Aabb[float64, Point3, Vec3]
)

// Vec2 is a v2.Vec displacement.
type Vec2 v2.Vec

// Dim returns 2.
func (v Vec2) Dim() int { return 2 }

// Component returns X for 0 and Y for 1.
func (v Vec2) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(fmt.Sprintf("v2 component %d out of range", i))
}

// WithComponent returns a copy with component i replaced.
func (v Vec2) WithComponent(i int, s float64) Vec2 {
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	default:
		panic(fmt.Sprintf("v2 component %d out of range", i))
	}
	return v
}

// Add returns v+other.
func (v Vec2) Add(other Vec2) Vec2 { return Vec2(v2.Vec(v).Add(v2.Vec(other))) }

// Sub returns v-other.
func (v Vec2) Sub(other Vec2) Vec2 { return Vec2(v2.Vec(v).Sub(v2.Vec(other))) }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return v.Mul(-1) }

// Mul scales v by s.
func (v Vec2) Mul(s float64) Vec2 { return Vec2(v2.Vec(v).MulScalar(s)) }

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float64 { return v2.Vec(v).Dot(v2.Vec(other)) }

// Point2 is a v2.Vec position.
type Point2 v2.Vec

// Dim returns 2.
func (p Point2) Dim() int { return 2 }

// Component returns X for 0 and Y for 1.
func (p Point2) Component(i int) float64 { return Vec2(p).Component(i) }

// WithComponent returns a copy with component i replaced.
func (p Point2) WithComponent(i int, s float64) Point2 { return Point2(Vec2(p).WithComponent(i, s)) }

// Sub returns the displacement from other to p.
func (p Point2) Sub(other Point2) Vec2 { return Vec2(p).Sub(Vec2(other)) }

// Add translates p by v.
func (p Point2) Add(v Vec2) Point2 { return Point2(Vec2(p).Add(v)) }

// Coordinates returns the displacement from the origin to p.
func (p Point2) Coordinates() Vec2 { return Vec2(p) }

// Vec3 is a v3.Vec displacement.
type Vec3 v3.Vec

// Dim returns 3.
func (v Vec3) Dim() int { return 3 }

// Component returns X, Y or Z for 0, 1 or 2.
func (v Vec3) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("v3 component %d out of range", i))
}

// WithComponent returns a copy with component i replaced.
func (v Vec3) WithComponent(i int, s float64) Vec3 {
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	case 2:
		v.Z = s
	default:
		panic(fmt.Sprintf("v3 component %d out of range", i))
	}
	return v
}

// Add returns v+other.
func (v Vec3) Add(other Vec3) Vec3 { return Vec3(v3.Vec(v).Add(v3.Vec(other))) }

// Sub returns v-other.
func (v Vec3) Sub(other Vec3) Vec3 { return Vec3(v3.Vec(v).Sub(v3.Vec(other))) }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return v.Mul(-1) }

// Mul scales v by s.
func (v Vec3) Mul(s float64) Vec3 { return Vec3(v3.Vec(v).MulScalar(s)) }

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float64 { return v3.Vec(v).Dot(v3.Vec(other)) }

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 { return Vec3(v3.Vec(v).Cross(v3.Vec(other))) }

// Point3 is a v3.Vec position.
type Point3 v3.Vec

// Dim returns 3.
func (p Point3) Dim() int { return 3 }

// Component returns X, Y or Z for 0, 1 or 2.
func (p Point3) Component(i int) float64 { return Vec3(p).Component(i) }

// WithComponent returns a copy with component i replaced.
func (p Point3) WithComponent(i int, s float64) Point3 { return Point3(Vec3(p).WithComponent(i, s)) }

// Sub returns the displacement from other to p.
func (p Point3) Sub(other Point3) Vec3 { return Vec3(p).Sub(Vec3(other)) }

// Add translates p by v.
func (p Point3) Add(v Vec3) Point3 { return Point3(Vec3(p).Add(v)) }

// Coordinates returns the displacement from the origin to p.
func (p Point3) Coordinates() Vec3 { return Vec3(p) }

// FromBox2 converts an sdf.Box2.
func FromBox2(box sdf.Box2) Aabb2 {
	return query.NewAabbFromBounds[float64, Point2, Vec2](Point2(box.Min), Point2(box.Max))
}

// ToBox2 converts box to an sdf.Box2.
func ToBox2(box Aabb2) sdf.Box2 {
	return sdf.Box2{Min: v2.Vec(box.Min()), Max: v2.Vec(box.Max())}
}

// FromBox3 converts an sdf.Box3.
func FromBox3(box sdf.Box3) Aabb3 {
	return query.NewAabbFromBounds[float64, Point3, Vec3](Point3(box.Min), Point3(box.Max))
}

// ToBox3 converts box to an sdf.Box3.
func ToBox3(box Aabb3) sdf.Box3 {
	return sdf.Box3{Min: v3.Vec(box.Min()), Max: v3.Vec(box.Max())}
}

// Bounds returns the bounding box of a solid.
func Bounds(s sdf.SDF3) Aabb3 {
	return FromBox3(s.BoundingBox())
}
