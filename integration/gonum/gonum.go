// Package gonum adapts gonum.org/v1/gonum/spatial r2.Vec and r3.Vec to the euclid space traits.
package gonum

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"go.viam.com/euclid/query"
	"go.viam.com/euclid/space"
)

var (
	_ space.InnerSpace[float64, Vec2]             = Vec2{}
	_ space.InnerSpace[float64, Vec3]             = Vec3{}
	_ space.EuclideanSpace[float64, Point2, Vec2] = Point2{}
	_ space.EuclideanSpace[float64, Point3, Vec3] = Point3{}
)

// Vec2 is an r2.Vec displacement.
type Vec2 r2.Vec

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
	panic(fmt.Sprintf("r2 component %d out of range", i))
}

// WithComponent returns a copy with component i replaced.
func (v Vec2) WithComponent(i int, s float64) Vec2 {
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	default:
		panic(fmt.Sprintf("r2 component %d out of range", i))
	}
	return v
}

// Add returns v+other.
func (v Vec2) Add(other Vec2) Vec2 { return Vec2(r2.Add(r2.Vec(v), r2.Vec(other))) }

// Sub returns v-other.
func (v Vec2) Sub(other Vec2) Vec2 { return Vec2(r2.Sub(r2.Vec(v), r2.Vec(other))) }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return v.Mul(-1) }

// Mul scales v by s.
func (v Vec2) Mul(s float64) Vec2 { return Vec2(r2.Scale(s, r2.Vec(v))) }

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float64 { return r2.Dot(r2.Vec(v), r2.Vec(other)) }

// Point2 is an r2.Vec position.
type Point2 r2.Vec

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

// Vec3 is an r3.Vec displacement.
type Vec3 r3.Vec

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
	panic(fmt.Sprintf("r3 component %d out of range", i))
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
		panic(fmt.Sprintf("r3 component %d out of range", i))
	}
	return v
}

// Add returns v+other.
func (v Vec3) Add(other Vec3) Vec3 { return Vec3(r3.Add(r3.Vec(v), r3.Vec(other))) }

// Sub returns v-other.
func (v Vec3) Sub(other Vec3) Vec3 { return Vec3(r3.Sub(r3.Vec(v), r3.Vec(other))) }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return v.Mul(-1) }

// Mul scales v by s.
func (v Vec3) Mul(s float64) Vec3 { return Vec3(r3.Scale(s, r3.Vec(v))) }

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float64 { return r3.Dot(r3.Vec(v), r3.Vec(other)) }

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 { return Vec3(r3.Cross(r3.Vec(v), r3.Vec(other))) }

// Point3 is an r3.Vec position.
type Point3 r3.Vec

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

// Aabb3 is a box over the r3 adapters.
type Aabb3 = query.Aabb[float64, Point3, Vec3]

// ToBox converts box to gonum's corner representation.
func ToBox(box Aabb3) r3.Box {
	return r3.Box{Min: r3.Vec(box.Min()), Max: r3.Vec(box.Max())}
}

// FromBox converts an r3.Box. The corners are sorted per axis, so a box with swapped corners
// still yields a valid result.
func FromBox(box r3.Box) Aabb3 {
	return query.NewAabbFromBounds[float64, Point3, Vec3](Point3(box.Min), Point3(box.Max))
}
