package vec

import "go.viam.com/euclid/numeric"

// Vec3 is a three dimensional vector.
type Vec3[S numeric.Scalar] [3]S

// NewVec3 returns the vector (x, y, z).
func NewVec3[S numeric.Scalar](x, y, z S) Vec3[S] { return Vec3[S]{x, y, z} }

// Dim returns 3.
func (v Vec3[S]) Dim() int { return 3 }

// Component returns the i-th coordinate.
func (v Vec3[S]) Component(i int) S { return v[i] }

// WithComponent returns a copy of v with the i-th coordinate replaced.
func (v Vec3[S]) WithComponent(i int, s S) Vec3[S] {
	v[i] = s
	return v
}

// Add returns v + other.
func (v Vec3[S]) Add(other Vec3[S]) Vec3[S] {
	return Vec3[S]{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

// Sub returns v - other.
func (v Vec3[S]) Sub(other Vec3[S]) Vec3[S] {
	return Vec3[S]{v[0] - other[0], v[1] - other[1], v[2] - other[2]}
}

// Neg returns -v.
func (v Vec3[S]) Neg() Vec3[S] { return Vec3[S]{-v[0], -v[1], -v[2]} }

// Mul scales v by s.
func (v Vec3[S]) Mul(s S) Vec3[S] { return Vec3[S]{v[0] * s, v[1] * s, v[2] * s} }

// Dot returns the dot product of v and other.
func (v Vec3[S]) Dot(other Vec3[S]) S { return v[0]*other[0] + v[1]*other[1] + v[2]*other[2] }

// Cross returns the cross product v × other.
func (v Vec3[S]) Cross(other Vec3[S]) Vec3[S] {
	return Vec3[S]{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
	}
}

// Norm returns the length of v.
func (v Vec3[S]) Norm() S { return numeric.Sqrt(v.Dot(v)) }

// X returns the first coordinate.
func (v Vec3[S]) X() S { return v[0] }

// Y returns the second coordinate.
func (v Vec3[S]) Y() S { return v[1] }

// Z returns the third coordinate.
func (v Vec3[S]) Z() S { return v[2] }

// Truncate drops the last coordinate.
func (v Vec3[S]) Truncate() (Vec2[S], S) { return Vec2[S]{v[0], v[1]}, v[2] }

// Extend appends w, producing a four dimensional vector.
func (v Vec3[S]) Extend(w S) VecN[S, numeric.D4] {
	return VecN[S, numeric.D4]{c: []S{v[0], v[1], v[2], w}}
}

func (v Vec3[S]) String() string { return format[S](v) }

// Point3 is a position in three dimensional space.
type Point3[S numeric.Scalar] [3]S

// NewPoint3 returns the point (x, y, z).
func NewPoint3[S numeric.Scalar](x, y, z S) Point3[S] { return Point3[S]{x, y, z} }

// Dim returns 3.
func (p Point3[S]) Dim() int { return 3 }

// Component returns the i-th coordinate.
func (p Point3[S]) Component(i int) S { return p[i] }

// WithComponent returns a copy of p with the i-th coordinate replaced.
func (p Point3[S]) WithComponent(i int, s S) Point3[S] {
	p[i] = s
	return p
}

// Sub returns the vector from other to p.
func (p Point3[S]) Sub(other Point3[S]) Vec3[S] {
	return Vec3[S]{p[0] - other[0], p[1] - other[1], p[2] - other[2]}
}

// Add translates p by v.
func (p Point3[S]) Add(v Vec3[S]) Point3[S] {
	return Point3[S]{p[0] + v[0], p[1] + v[1], p[2] + v[2]}
}

// Coordinates returns the position of p relative to the origin.
func (p Point3[S]) Coordinates() Vec3[S] { return Vec3[S](p) }

// X returns the first coordinate.
func (p Point3[S]) X() S { return p[0] }

// Y returns the second coordinate.
func (p Point3[S]) Y() S { return p[1] }

// Z returns the third coordinate.
func (p Point3[S]) Z() S { return p[2] }

// Truncate drops the last coordinate.
func (p Point3[S]) Truncate() (Point2[S], S) { return Point2[S]{p[0], p[1]}, p[2] }

func (p Point3[S]) String() string { return format[S](p) }
