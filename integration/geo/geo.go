// Package geo adapts github.com/golang/geo r2 and r3 values to the euclid space traits so that
// they can be used directly as query and fit inputs.
package geo

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"

	"go.viam.com/euclid/space"
)

var (
	_ space.InnerSpace[float64, Vector2]             = Vector2{}
	_ space.EuclideanSpace[float64, Point2, Vector2] = Point2{}
	_ space.InnerSpace[float64, Vector3]             = Vector3{}
	_ space.EuclideanSpace[float64, Point3, Vector3] = Point3{}
	_ space.Crosser[Vector3]                         = Vector3{}
)

// Vector2 is an r2.Point used as a displacement.
type Vector2 r2.Point

// FromR2 wraps p as a displacement.
func FromR2(p r2.Point) Vector2 { return Vector2(p) }

// R2 returns the underlying r2.Point.
func (v Vector2) R2() r2.Point { return r2.Point(v) }

// Dim returns 2.
func (v Vector2) Dim() int { return 2 }

// Component returns X for 0 and Y for 1.
func (v Vector2) Component(i int) float64 { return component2(r2.Point(v), i) }

// WithComponent returns a copy with component i replaced.
func (v Vector2) WithComponent(i int, s float64) Vector2 {
	return Vector2(withComponent2(r2.Point(v), i, s))
}

// Add returns v+other.
func (v Vector2) Add(other Vector2) Vector2 { return Vector2(v.R2().Add(other.R2())) }

// Sub returns v-other.
func (v Vector2) Sub(other Vector2) Vector2 { return Vector2(v.R2().Sub(other.R2())) }

// Neg returns -v.
func (v Vector2) Neg() Vector2 { return Vector2(v.R2().Mul(-1)) }

// Mul scales v by s.
func (v Vector2) Mul(s float64) Vector2 { return Vector2(v.R2().Mul(s)) }

// Dot returns the dot product.
func (v Vector2) Dot(other Vector2) float64 { return v.R2().Dot(other.R2()) }

func (v Vector2) String() string { return v.R2().String() }

// Point2 is an r2.Point used as a position.
type Point2 r2.Point

// PointFromR2 wraps p as a position.
func PointFromR2(p r2.Point) Point2 { return Point2(p) }

// R2 returns the underlying r2.Point.
func (p Point2) R2() r2.Point { return r2.Point(p) }

// Dim returns 2.
func (p Point2) Dim() int { return 2 }

// Component returns X for 0 and Y for 1.
func (p Point2) Component(i int) float64 { return component2(r2.Point(p), i) }

// WithComponent returns a copy with component i replaced.
func (p Point2) WithComponent(i int, s float64) Point2 {
	return Point2(withComponent2(r2.Point(p), i, s))
}

// Sub returns the displacement from other to p.
func (p Point2) Sub(other Point2) Vector2 { return Vector2(p.R2().Sub(other.R2())) }

// Add translates p by v.
func (p Point2) Add(v Vector2) Point2 { return Point2(p.R2().Add(v.R2())) }

// Coordinates returns the displacement from the origin to p.
func (p Point2) Coordinates() Vector2 { return Vector2(p) }

func (p Point2) String() string { return p.R2().String() }

// Vector3 is an r3.Vector used as a displacement.
type Vector3 r3.Vector

// FromR3 wraps v as a displacement.
func FromR3(v r3.Vector) Vector3 { return Vector3(v) }

// R3 returns the underlying r3.Vector.
func (v Vector3) R3() r3.Vector { return r3.Vector(v) }

// Dim returns 3.
func (v Vector3) Dim() int { return 3 }

// Component returns X, Y or Z for 0, 1 or 2.
func (v Vector3) Component(i int) float64 { return component3(r3.Vector(v), i) }

// WithComponent returns a copy with component i replaced.
func (v Vector3) WithComponent(i int, s float64) Vector3 {
	return Vector3(withComponent3(r3.Vector(v), i, s))
}

// Add returns v+other.
func (v Vector3) Add(other Vector3) Vector3 { return Vector3(v.R3().Add(other.R3())) }

// Sub returns v-other.
func (v Vector3) Sub(other Vector3) Vector3 { return Vector3(v.R3().Sub(other.R3())) }

// Neg returns -v.
func (v Vector3) Neg() Vector3 { return Vector3(v.R3().Mul(-1)) }

// Mul scales v by s.
func (v Vector3) Mul(s float64) Vector3 { return Vector3(v.R3().Mul(s)) }

// Dot returns the dot product.
func (v Vector3) Dot(other Vector3) float64 { return v.R3().Dot(other.R3()) }

// Cross returns the cross product.
func (v Vector3) Cross(other Vector3) Vector3 { return Vector3(v.R3().Cross(other.R3())) }

func (v Vector3) String() string { return v.R3().String() }

// Point3 is an r3.Vector used as a position.
type Point3 r3.Vector

// PointFromR3 wraps v as a position.
func PointFromR3(v r3.Vector) Point3 { return Point3(v) }

// R3 returns the underlying r3.Vector.
func (p Point3) R3() r3.Vector { return r3.Vector(p) }

// Dim returns 3.
func (p Point3) Dim() int { return 3 }

// Component returns X, Y or Z for 0, 1 or 2.
func (p Point3) Component(i int) float64 { return component3(r3.Vector(p), i) }

// WithComponent returns a copy with component i replaced.
func (p Point3) WithComponent(i int, s float64) Point3 {
	return Point3(withComponent3(r3.Vector(p), i, s))
}

// Sub returns the displacement from other to p.
func (p Point3) Sub(other Point3) Vector3 { return Vector3(p.R3().Sub(other.R3())) }

// Add translates p by v.
func (p Point3) Add(v Vector3) Point3 { return Point3(p.R3().Add(v.R3())) }

// Coordinates returns the displacement from the origin to p.
func (p Point3) Coordinates() Vector3 { return Vector3(p) }

func (p Point3) String() string { return p.R3().String() }

func component2(p r2.Point, i int) float64 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	}
	panic(fmt.Sprintf("r2 component %d out of range", i))
}

func withComponent2(p r2.Point, i int, s float64) r2.Point {
	switch i {
	case 0:
		p.X = s
	case 1:
		p.Y = s
	default:
		panic(fmt.Sprintf("r2 component %d out of range", i))
	}
	return p
}

func component3(v r3.Vector, i int) float64 {
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

func withComponent3(v r3.Vector, i int, s float64) r3.Vector {
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
