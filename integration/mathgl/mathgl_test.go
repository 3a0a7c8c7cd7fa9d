package mathgl

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"go.viam.com/test"

	"go.viam.com/euclid/numeric"
	"go.viam.com/euclid/query"
	"go.viam.com/euclid/space"
)

func TestVec3(t *testing.T) {
	a, b := Vec3{1, 2, 3}, Vec3{0, 1, 0}
	test.That(t, mgl64.Vec3(a.Add(b)), test.ShouldResemble, mgl64.Vec3{1, 3, 3})
	test.That(t, a.Neg(), test.ShouldResemble, Vec3{-1, -2, -3})
	test.That(t, a.Dot(b), test.ShouldEqual, 2.0)
	test.That(t, mgl64.Vec3(b.Cross(a)), test.ShouldResemble, mgl64.Vec3(b).Cross(mgl64.Vec3(a)))
	test.That(t, space.Magnitude[float64](a), test.ShouldAlmostEqual, mgl64.Vec3(a).Len())

	n, ok := space.Normalize[float64](a)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, mgl64.Vec3(n).ApproxEqual(mgl64.Vec3(a).Normalize()), test.ShouldBeTrue)
}

func TestVec4RayBox(t *testing.T) {
	box, err := query.NewAabb[float64](Point4{0, 0, 0, 0}, Vec4{2, 2, 2, 2})
	test.That(t, err, test.ShouldBeNil)
	dir, err := query.NewUnitVector[float64](Vec4{0, 0, 0, -3})
	test.That(t, err, test.ShouldBeNil)

	hit := query.NewRay(Point4{1, 1, 1, 5}, dir).IntersectAabb(box)
	t0, t1, ok := hit.Bounds()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, t0, test.ShouldAlmostEqual, 3.0)
	test.That(t, t1, test.ShouldAlmostEqual, 5.0)

	test.That(t, box.Contains(Point4{1, 1, 1, 1}), test.ShouldBeTrue)
	test.That(t, box.Contains(Point4{1, 1, 1, 3}), test.ShouldBeFalse)
}

func TestVec2Plane(t *testing.T) {
	normal, err := query.NewUnitVector[float64](Vec2{0, 2})
	test.That(t, err, test.ShouldBeNil)
	line := query.NewPlane(Point2{0, 1}, normal)
	test.That(t, line.SignedDistance(Point2{5, 4}), test.ShouldAlmostEqual, 3.0)
	test.That(t, line.Project(Point2{5, 4}), test.ShouldResemble, Point2{5, 1})
}

func TestFloat32(t *testing.T) {
	test.That(t, numeric.Epsilon[float32](), test.ShouldEqual, float32(1e-5))

	v := Vec3f{3, 0, 4}
	test.That(t, space.Magnitude[float32](v), test.ShouldEqual, float32(5))
	test.That(t, mgl32.Vec3(v.Mul(2)), test.ShouldResemble, mgl32.Vec3{6, 0, 8})

	box, err := query.NewAabb[float32](Point3f{0, 0, 0}, Vec3f{1, 1, 1})
	test.That(t, err, test.ShouldBeNil)
	dir, err := query.NewUnitVector[float32](Vec3f{0, 1, 0})
	test.That(t, err, test.ShouldBeNil)
	t0, t1, ok := query.NewRay(Point3f{0.5, -1, 0.5}, dir).IntersectAabb(box).Bounds()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, t0, test.ShouldEqual, float32(1))
	test.That(t, t1, test.ShouldEqual, float32(2))

	_, err = query.NewUnitVector[float32](Vec3f{1e-6, 0, 0})
	test.That(t, err, test.ShouldNotBeNil)
}
