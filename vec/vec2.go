package vec

import "go.viam.com/euclid/numeric"

// Vec2 is a two dimensional vector.
type Vec2[S numeric.Scalar] [2]S

// NewVec2 returns the vector (x, y).
func NewVec2[S numeric.Scalar](x, y S) Vec2[S] { return Vec2[S]{x, y} }

// Dim returns 2.
func (v Vec2[S]) Dim() int { return 2 }

// Component returns the i-th coordinate.
func (v Vec2[S]) Component(i int) S { return v[i] }

// WithComponent returns a copy of v with the i-th coordinate replaced.
func (v Vec2[S]) WithComponent(i int, s S) Vec2[S] {
	v[i] = s
	return v
}

// Add returns v + other.
func (v Vec2[S]) Add(other Vec2[S]) Vec2[S] { return Vec2[S]{v[0] + other[0], v[1] + other[1]} }

// Sub returns v - other.
func (v Vec2[S]) Sub(other Vec2[S]) Vec2[S] { return Vec2[S]{v[0] - other[0], v[1] - other[1]} }

// Neg returns -v.
func (v Vec2[S]) Neg() Vec2[S] { return Vec2[S]{-v[0], -v[1]} }

// Mul scales v by s.
func (v Vec2[S]) Mul(s S) Vec2[S] { return Vec2[S]{v[0] * s, v[1] * s} }

// Dot returns the dot product of v and other.
func (v Vec2[S]) Dot(other Vec2[S]) S { return v[0]*other[0] + v[1]*other[1] }

// Norm returns the length of v.
func (v Vec2[S]) Norm() S { return numeric.Sqrt(v.Dot(v)) }

// X returns the first coordinate.
func (v Vec2[S]) X() S { return v[0] }

// Y returns the second coordinate.
func (v Vec2[S]) Y() S { return v[1] }

// Perp returns v rotated a quarter turn counterclockwise.
func (v Vec2[S]) Perp() Vec2[S] { return Vec2[S]{-v[1], v[0]} }

// Extend appends z, producing a three dimensional vector.
func (v Vec2[S]) Extend(z S) Vec3[S] { return Vec3[S]{v[0], v[1], z} }

func (v Vec2[S]) String() string { return format[S](v) }

// Point2 is a position in two dimensional space.
type Point2[S numeric.Scalar] [2]S

// NewPoint2 returns the point (x, y).
func NewPoint2[S numeric.Scalar](x, y S) Point2[S] { return Point2[S]{x, y} }

// Dim returns 2.
func (p Point2[S]) Dim() int { return 2 }

// Component returns the i-th coordinate.
func (p Point2[S]) Component(i int) S { return p[i] }

// WithComponent returns a copy of p with the i-th coordinate replaced.
func (p Point2[S]) WithComponent(i int, s S) Point2[S] {
	p[i] = s
	return p
}

// Sub returns the vector from other to p.
func (p Point2[S]) Sub(other Point2[S]) Vec2[S] { return Vec2[S]{p[0] - other[0], p[1] - other[1]} }

// Add translates p by v.
func (p Point2[S]) Add(v Vec2[S]) Point2[S] { return Point2[S]{p[0] + v[0], p[1] + v[1]} }

// Coordinates returns the position of p relative to the origin.
func (p Point2[S]) Coordinates() Vec2[S] { return Vec2[S](p) }

// X returns the first coordinate.
func (p Point2[S]) X() S { return p[0] }

// Y returns the second coordinate.
func (p Point2[S]) Y() S { return p[1] }

// Extend appends z, producing a three dimensional point.
func (p Point2[S]) Extend(z S) Point3[S] { return Point3[S]{p[0], p[1], z} }

func (p Point2[S]) String() string { return format[S](p) }
