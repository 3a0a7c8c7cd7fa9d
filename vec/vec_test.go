package vec

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/euclid/adjunct"
	"go.viam.com/euclid/numeric"
	"go.viam.com/euclid/space"
)

type d5 struct{}

func (d5) Dim() int { return 5 }

func randomVec3(r *rand.Rand) Vec3[float64] {
	return NewVec3(r.Float64()*200-100, r.Float64()*200-100, r.Float64()*200-100)
}

func TestVectorSpaceLaws(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		u, v, w := randomVec3(r), randomVec3(r), randomVec3(r)
		test.That(t, adjunct.AlmostEqual[float64](u.Add(v).Add(w), u.Add(v.Add(w))), test.ShouldBeTrue)
		test.That(t, adjunct.AlmostEqual[float64](u.Add(v), v.Add(u)), test.ShouldBeTrue)

		s := r.Float64()*10 - 5
		test.That(t, adjunct.AlmostEqual[float64](u.Add(v).Mul(s), u.Mul(s).Add(v.Mul(s))), test.ShouldBeTrue)
		test.That(t, u.Dot(u) >= 0, test.ShouldBeTrue)
		test.That(t, adjunct.AlmostEqual[float64](u.Add(u.Neg()), Vec3[float64]{}), test.ShouldBeTrue)
	}
	var zero Vec3[float64]
	test.That(t, zero.Dot(zero), test.ShouldEqual, 0.0)
}

func TestAffineLaw(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		p := Point3[float64](randomVec3(r))
		q := Point3[float64](randomVec3(r))
		test.That(t, adjunct.AlmostEqual[float64](p.Add(q.Sub(p)), q), test.ShouldBeTrue)

		p2 := NewPoint2(p[0], p[1])
		q2 := NewPoint2(q[0], q[1])
		test.That(t, adjunct.AlmostEqual[float64](p2.Add(q2.Sub(p2)), q2), test.ShouldBeTrue)
	}
}

func TestVec3(t *testing.T) {
	x := NewVec3(1.0, 0, 0)
	y := NewVec3(0.0, 1, 0)
	test.That(t, x.Cross(y), test.ShouldResemble, NewVec3(0.0, 0, 1))
	test.That(t, y.Cross(x), test.ShouldResemble, NewVec3(0.0, 0, -1))
	test.That(t, NewVec3(3.0, 4, 0).Norm(), test.ShouldAlmostEqual, 5.0)

	v2, z := NewVec3(1.0, 2, 3).Truncate()
	test.That(t, v2, test.ShouldResemble, NewVec2(1.0, 2))
	test.That(t, z, test.ShouldEqual, 3.0)
	test.That(t, v2.Extend(3), test.ShouldResemble, NewVec3(1.0, 2, 3))

	h := NewVec3(1.0, 2, 3).Extend(1)
	test.That(t, h.Dim(), test.ShouldEqual, 4)
	test.That(t, h.Component(3), test.ShouldEqual, 1.0)

	p, w := NewPoint3(1.0, 2, 3).Truncate()
	test.That(t, p, test.ShouldResemble, NewPoint2(1.0, 2))
	test.That(t, w, test.ShouldEqual, 3.0)
	test.That(t, p.Extend(3), test.ShouldResemble, NewPoint3(1.0, 2, 3))
}

func TestVec2(t *testing.T) {
	v := NewVec2(3.0, 4)
	test.That(t, v.Norm(), test.ShouldAlmostEqual, 5.0)
	test.That(t, v.Perp(), test.ShouldResemble, NewVec2(-4.0, 3))
	test.That(t, v.Perp().Dot(v), test.ShouldEqual, 0.0)
	test.That(t, v.X(), test.ShouldEqual, 3.0)
	test.That(t, v.Y(), test.ShouldEqual, 4.0)
	test.That(t, v.String(), test.ShouldEqual, "(3, 4)")
	test.That(t, NewPoint2(float32(1.5), 2).String(), test.ShouldEqual, "(1.5, 2)")

	// WithComponent never mutates its receiver
	w := v.WithComponent(0, 10)
	test.That(t, v, test.ShouldResemble, NewVec2(3.0, 4))
	test.That(t, w, test.ShouldResemble, NewVec2(10.0, 4))
}

func TestVecN(t *testing.T) {
	_, err := NewVecN[float64, d5](1, 2, 3)
	test.That(t, errors.Is(err, space.ErrDimensionMismatch), test.ShouldBeTrue)
	_, err = NewPointN[float64, d5](1, 2, 3, 4, 5, 6)
	test.That(t, errors.Is(err, space.ErrDimensionMismatch), test.ShouldBeTrue)

	u, err := NewVecN[float64, d5](1, 2, 3, 4, 5)
	test.That(t, err, test.ShouldBeNil)
	v, err := NewVecN[float64, d5](5, 4, 3, 2, 1)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, u.Dim(), test.ShouldEqual, 5)
	test.That(t, u.Dot(v), test.ShouldEqual, 35.0)
	test.That(t, adjunct.IntoItems[float64](u.Add(v)), test.ShouldResemble, []float64{6, 6, 6, 6, 6})
	test.That(t, adjunct.IntoItems[float64](u.Sub(v)), test.ShouldResemble, []float64{-4, -2, 0, 2, 4})
	test.That(t, adjunct.IntoItems[float64](u.Neg()), test.ShouldResemble, []float64{-1, -2, -3, -4, -5})
	test.That(t, u.String(), test.ShouldEqual, "(1, 2, 3, 4, 5)")

	// the zero value is the zero vector of the tagged dimension
	var zero VecN[float64, d5]
	test.That(t, zero.Dim(), test.ShouldEqual, 5)
	test.That(t, adjunct.IntoItems[float64](zero.Add(u)), test.ShouldResemble, []float64{1, 2, 3, 4, 5})
	test.That(t, func() { zero.Component(5) }, test.ShouldPanic)

	// values never share storage
	w := u.WithComponent(0, 100)
	test.That(t, u.Component(0), test.ShouldEqual, 1.0)
	test.That(t, w.Component(0), test.ShouldEqual, 100.0)
	c := adjunct.Converged[float64, VecN[float64, d5]](7)
	test.That(t, adjunct.IntoItems[float64](c), test.ShouldResemble, []float64{7, 7, 7, 7, 7})
}

func TestPointN(t *testing.T) {
	p, err := NewPointN[float64, numeric.D4](1, 1, 1, 1)
	test.That(t, err, test.ShouldBeNil)
	q, err := NewPointN[float64, numeric.D4](2, 3, 4, 5)
	test.That(t, err, test.ShouldBeNil)

	d := q.Sub(p)
	test.That(t, adjunct.IntoItems[float64](d), test.ShouldResemble, []float64{1, 2, 3, 4})
	test.That(t, adjunct.AlmostEqual[float64](p.Add(d), q), test.ShouldBeTrue)
	test.That(t, adjunct.IntoItems[float64](q.Coordinates()), test.ShouldResemble, []float64{2, 3, 4, 5})

	var origin PointN[float64, numeric.D4]
	test.That(t, space.Distance[float64, PointN[float64, numeric.D4], VecN[float64, numeric.D4]](origin, q), test.ShouldAlmostEqual, 7.3484692283495345)
}
