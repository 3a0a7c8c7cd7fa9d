// Package mathgl adapts github.com/go-gl/mathgl vectors to the euclid space traits. The mgl64
// types cover two to four dimensions in float64 and Vec3f/Point3f cover the float32 mgl32.Vec3.
package mathgl

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"go.viam.com/euclid/space"
)

var (
	_ space.InnerSpace[float64, Vec2]  = Vec2{}
	_ space.InnerSpace[float64, Vec3]  = Vec3{}
	_ space.InnerSpace[float64, Vec4]  = Vec4{}
	_ space.InnerSpace[float32, Vec3f] = Vec3f{}

	_ space.EuclideanSpace[float64, Point2, Vec2]   = Point2{}
	_ space.EuclideanSpace[float64, Point3, Vec3]   = Point3{}
	_ space.EuclideanSpace[float64, Point4, Vec4]   = Point4{}
	_ space.EuclideanSpace[float32, Point3f, Vec3f] = Point3f{}
)

// Vec2 is an mgl64.Vec2 displacement.
type Vec2 mgl64.Vec2

// Dim returns 2.
func (v Vec2) Dim() int { return 2 }

// Component returns element i.
func (v Vec2) Component(i int) float64 { return v[i] }

// WithComponent returns a copy with element i replaced.
func (v Vec2) WithComponent(i int, s float64) Vec2 {
	v[i] = s
	return v
}

// Add returns v+other.
func (v Vec2) Add(other Vec2) Vec2 { return Vec2(mgl64.Vec2(v).Add(mgl64.Vec2(other))) }

// Sub returns v-other.
func (v Vec2) Sub(other Vec2) Vec2 { return Vec2(mgl64.Vec2(v).Sub(mgl64.Vec2(other))) }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return v.Mul(-1) }

// Mul scales v by s.
func (v Vec2) Mul(s float64) Vec2 { return Vec2(mgl64.Vec2(v).Mul(s)) }

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float64 { return mgl64.Vec2(v).Dot(mgl64.Vec2(other)) }

// Point2 is an mgl64.Vec2 position.
type Point2 mgl64.Vec2

// Dim returns 2.
func (p Point2) Dim() int { return 2 }

// Component returns element i.
func (p Point2) Component(i int) float64 { return p[i] }

// WithComponent returns a copy with element i replaced.
func (p Point2) WithComponent(i int, s float64) Point2 {
	p[i] = s
	return p
}

// Sub returns the displacement from other to p.
func (p Point2) Sub(other Point2) Vec2 { return Vec2(p).Sub(Vec2(other)) }

// Add translates p by v.
func (p Point2) Add(v Vec2) Point2 { return Point2(Vec2(p).Add(v)) }

// Coordinates returns the displacement from the origin to p.
func (p Point2) Coordinates() Vec2 { return Vec2(p) }

// Vec3 is an mgl64.Vec3 displacement.
type Vec3 mgl64.Vec3

// Dim returns 3.
func (v Vec3) Dim() int { return 3 }

// Component returns element i.
func (v Vec3) Component(i int) float64 { return v[i] }

// WithComponent returns a copy with element i replaced.
func (v Vec3) WithComponent(i int, s float64) Vec3 {
	v[i] = s
	return v
}

// Add returns v+other.
func (v Vec3) Add(other Vec3) Vec3 { return Vec3(mgl64.Vec3(v).Add(mgl64.Vec3(other))) }

// Sub returns v-other.
func (v Vec3) Sub(other Vec3) Vec3 { return Vec3(mgl64.Vec3(v).Sub(mgl64.Vec3(other))) }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return v.Mul(-1) }

// Mul scales v by s.
func (v Vec3) Mul(s float64) Vec3 { return Vec3(mgl64.Vec3(v).Mul(s)) }

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float64 { return mgl64.Vec3(v).Dot(mgl64.Vec3(other)) }

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 { return Vec3(mgl64.Vec3(v).Cross(mgl64.Vec3(other))) }

// Point3 is an mgl64.Vec3 position.
type Point3 mgl64.Vec3

// Dim returns 3.
func (p Point3) Dim() int { return 3 }

// Component returns element i.
func (p Point3) Component(i int) float64 { return p[i] }

// WithComponent returns a copy with element i replaced.
func (p Point3) WithComponent(i int, s float64) Point3 {
	p[i] = s
	return p
}

// Sub returns the displacement from other to p.
func (p Point3) Sub(other Point3) Vec3 { return Vec3(p).Sub(Vec3(other)) }

// Add translates p by v.
func (p Point3) Add(v Vec3) Point3 { return Point3(Vec3(p).Add(v)) }

// Coordinates returns the displacement from the origin to p.
func (p Point3) Coordinates() Vec3 { return Vec3(p) }

// Vec4 is an mgl64.Vec4 displacement.
type Vec4 mgl64.Vec4

// Dim returns 4.
func (v Vec4) Dim() int { return 4 }

// Component returns element i.
func (v Vec4) Component(i int) float64 { return v[i] }

// WithComponent returns a copy with element i replaced.
func (v Vec4) WithComponent(i int, s float64) Vec4 {
	v[i] = s
	return v
}

// Add returns v+other.
func (v Vec4) Add(other Vec4) Vec4 { return Vec4(mgl64.Vec4(v).Add(mgl64.Vec4(other))) }

// Sub returns v-other.
func (v Vec4) Sub(other Vec4) Vec4 { return Vec4(mgl64.Vec4(v).Sub(mgl64.Vec4(other))) }

// Neg returns -v.
func (v Vec4) Neg() Vec4 { return v.Mul(-1) }

// Mul scales v by s.
func (v Vec4) Mul(s float64) Vec4 { return Vec4(mgl64.Vec4(v).Mul(s)) }

// Dot returns the dot product.
func (v Vec4) Dot(other Vec4) float64 { return mgl64.Vec4(v).Dot(mgl64.Vec4(other)) }

// Point4 is an mgl64.Vec4 position. It is a point in four dimensional space, not a homogeneous
// coordinate.
type Point4 mgl64.Vec4

// Dim returns 4.
func (p Point4) Dim() int { return 4 }

// Component returns element i.
func (p Point4) Component(i int) float64 { return p[i] }

// WithComponent returns a copy with element i replaced.
func (p Point4) WithComponent(i int, s float64) Point4 {
	p[i] = s
	return p
}

// Sub returns the displacement from other to p.
func (p Point4) Sub(other Point4) Vec4 { return Vec4(p).Sub(Vec4(other)) }

// Add translates p by v.
func (p Point4) Add(v Vec4) Point4 { return Point4(Vec4(p).Add(v)) }

// Coordinates returns the displacement from the origin to p.
func (p Point4) Coordinates() Vec4 { return Vec4(p) }

// Vec3f is an mgl32.Vec3 displacement.
type Vec3f mgl32.Vec3

// Dim returns 3.
func (v Vec3f) Dim() int { return 3 }

// Component returns element i.
func (v Vec3f) Component(i int) float32 { return v[i] }

// WithComponent returns a copy with element i replaced.
func (v Vec3f) WithComponent(i int, s float32) Vec3f {
	v[i] = s
	return v
}

// Add returns v+other.
func (v Vec3f) Add(other Vec3f) Vec3f { return Vec3f(mgl32.Vec3(v).Add(mgl32.Vec3(other))) }

// Sub returns v-other.
func (v Vec3f) Sub(other Vec3f) Vec3f { return Vec3f(mgl32.Vec3(v).Sub(mgl32.Vec3(other))) }

// Neg returns -v.
func (v Vec3f) Neg() Vec3f { return v.Mul(-1) }

// Mul scales v by s.
func (v Vec3f) Mul(s float32) Vec3f { return Vec3f(mgl32.Vec3(v).Mul(s)) }

// Dot returns the dot product.
func (v Vec3f) Dot(other Vec3f) float32 { return mgl32.Vec3(v).Dot(mgl32.Vec3(other)) }

// Cross returns the cross product.
func (v Vec3f) Cross(other Vec3f) Vec3f { return Vec3f(mgl32.Vec3(v).Cross(mgl32.Vec3(other))) }

// Point3f is an mgl32.Vec3 position.
type Point3f mgl32.Vec3

// Dim returns 3.
func (p Point3f) Dim() int { return 3 }

// Component returns element i.
func (p Point3f) Component(i int) float32 { return p[i] }

// WithComponent returns a copy with element i replaced.
func (p Point3f) WithComponent(i int, s float32) Point3f {
	p[i] = s
	return p
}

// Sub returns the displacement from other to p.
func (p Point3f) Sub(other Point3f) Vec3f { return Vec3f(p).Sub(Vec3f(other)) }

// Add translates p by v.
func (p Point3f) Add(v Vec3f) Point3f { return Point3f(Vec3f(p).Add(v)) }

// Coordinates returns the displacement from the origin to p.
func (p Point3f) Coordinates() Vec3f { return Vec3f(p) }
