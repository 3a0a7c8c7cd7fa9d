package adjunct

import (
	"testing"

	"go.viam.com/test"
)

// triple is a minimal Composite used to exercise the operations without depending on vec.
type triple [3]float64

func (t triple) Dim() int { return 3 }
func (t triple) Component(i int) float64 { return t[i] }

func (t triple) WithComponent(i int, s float64) triple {
	t[i] = s
	return t
}

func TestConverged(t *testing.T) {
	test.That(t, Converged[float64, triple](2.5), test.ShouldResemble, triple{2.5, 2.5, 2.5})
	test.That(t, Converged[float64, triple](0), test.ShouldResemble, triple{})
}

func TestZipMap(t *testing.T) {
	a := triple{1, 2, 3}
	b := triple{4, 5, 6}
	sum := ZipMap(a, b, func(x, y float64) float64 { return x + y })
	test.That(t, sum, test.ShouldResemble, triple{5, 7, 9})
	// inputs are values and must not be changed
	test.That(t, a, test.ShouldResemble, triple{1, 2, 3})
}

func TestFold(t *testing.T) {
	a := triple{1, 2, 3}
	test.That(t, Fold(a, 0.0, func(acc, s float64) float64 { return acc + s }), test.ShouldEqual, 6.0)
	order := Fold(a, "", func(acc string, s float64) string {
		return acc + string(rune('0'+int(s)))
	})
	test.That(t, order, test.ShouldEqual, "123")
}

func TestMap(t *testing.T) {
	a := triple{1, -2, 3}
	test.That(t, Map(a, func(s float64) float64 { return s * s }), test.ShouldResemble, triple{1, 4, 9})
}

func TestItems(t *testing.T) {
	a, ok := FromItems[float64, triple](1, 2, 3)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, a, test.ShouldResemble, triple{1, 2, 3})
	test.That(t, IntoItems[float64](a), test.ShouldResemble, []float64{1, 2, 3})

	_, ok = FromItems[float64, triple](1, 2)
	test.That(t, ok, test.ShouldBeFalse)
}

func TestPredicates(t *testing.T) {
	a := triple{1, 0, 3}
	positive := func(s float64) bool { return s > 0 }
	test.That(t, All[float64](a, positive), test.ShouldBeFalse)
	test.That(t, Any[float64](a, positive), test.ShouldBeTrue)
	test.That(t, All[float64](triple{1, 1, 1}, positive), test.ShouldBeTrue)

	test.That(t, AlmostEqual[float64](triple{1, 2, 3}, triple{1, 2, 3 + 1e-12}), test.ShouldBeTrue)
	test.That(t, AlmostEqual[float64](triple{1, 2, 3}, triple{1, 2, 3.1}), test.ShouldBeFalse)
}
