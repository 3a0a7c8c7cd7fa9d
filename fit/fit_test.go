package fit_test

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/euclid/fit"
	"go.viam.com/euclid/fit/gonumsvd"
	"go.viam.com/euclid/logging"
	"go.viam.com/euclid/vec"
)

type (
	p2 = vec.Point2[float64]
	v2 = vec.Vec2[float64]
	p3 = vec.Point3[float64]
	v3 = vec.Vec3[float64]
)

func newSolver(t *testing.T) fit.Solver {
	t.Helper()
	return gonumsvd.NewSolver(logging.NewTestLogger(t))
}

func TestBestFitPlaneExact(t *testing.T) {
	solver := newSolver(t)

	square := []p3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	plane, err := fit.BestFitPlane[float64, p3, v3](solver, square)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, plane.Origin, test.ShouldResemble, p3{0.5, 0.5, 0})
	n := plane.Normal.Vector()
	test.That(t, n[0], test.ShouldAlmostEqual, 0.0)
	test.That(t, n[1], test.ShouldAlmostEqual, 0.0)
	test.That(t, n[2], test.ShouldAlmostEqual, 1.0)

	// z = x + 2y + 1
	var tilted []p3
	for _, xy := range [][2]float64{{0, 0}, {1, 0}, {0, 1}, {2, 3}, {-1, 4}, {3, -2}} {
		tilted = append(tilted, p3{xy[0], xy[1], xy[0] + 2*xy[1] + 1})
	}
	res, err := fit.FitPlane[float64, p3, v3](solver, tilted)
	test.That(t, err, test.ShouldBeNil)
	n = res.Plane.Normal.Vector()
	test.That(t, n[0], test.ShouldAlmostEqual, 1/math.Sqrt(6))
	test.That(t, n[1], test.ShouldAlmostEqual, 2/math.Sqrt(6))
	test.That(t, n[2], test.ShouldAlmostEqual, -1/math.Sqrt(6))
	for _, p := range tilted {
		test.That(t, res.Plane.Contains(p), test.ShouldBeTrue)
	}
	test.That(t, res.ResidualSumSquares, test.ShouldAlmostEqual, 0.0)
	test.That(t, res.RMS, test.ShouldAlmostEqual, 0.0)
	test.That(t, res.MaxDeviation, test.ShouldAlmostEqual, 0.0)
	test.That(t, len(res.SingularValues), test.ShouldEqual, 3)
}

func TestFitPlaneResiduals(t *testing.T) {
	points := []p3{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}, {2, 2, 0}, {1, 1, 0.5}}
	res, err := fit.FitPlane[float64, p3, v3](newSolver(t), points)
	test.That(t, err, test.ShouldBeNil)

	var sumSquares, maxDev float64
	for _, p := range points {
		d := res.Plane.Distance(p)
		sumSquares += d * d
		maxDev = math.Max(maxDev, d)
	}
	test.That(t, res.ResidualSumSquares, test.ShouldAlmostEqual, sumSquares)
	test.That(t, res.RMS, test.ShouldAlmostEqual, math.Sqrt(sumSquares/float64(len(points))))
	test.That(t, res.MaxDeviation, test.ShouldAlmostEqual, maxDev)
	test.That(t, res.ResidualSumSquares > 0, test.ShouldBeTrue)
	test.That(t, res.MaxDeviation >= res.RMS, test.ShouldBeTrue)
	for i := 1; i < len(res.SingularValues); i++ {
		test.That(t, res.SingularValues[i-1] >= res.SingularValues[i], test.ShouldBeTrue)
	}
	// the lone raised point pulls the centroid up but the normal stays vertical
	test.That(t, res.Plane.Origin[2], test.ShouldAlmostEqual, 0.1)
	test.That(t, res.Plane.Normal.Vector()[2], test.ShouldAlmostEqual, 1.0)
}

func TestBestFitPlaneTwoDimensions(t *testing.T) {
	line := []p2{{0, 0}, {1, 2}, {2, 4}, {-1, -2}}
	plane, err := fit.BestFitPlane[float64, p2, v2](newSolver(t), line)
	test.That(t, err, test.ShouldBeNil)
	n := plane.Normal.Vector()
	test.That(t, n[0], test.ShouldAlmostEqual, 2/math.Sqrt(5))
	test.That(t, n[1], test.ShouldAlmostEqual, -1/math.Sqrt(5))
	for _, p := range line {
		test.That(t, plane.Distance(p), test.ShouldAlmostEqual, 0.0)
	}
}

func TestBestFitPlaneFloat32(t *testing.T) {
	points := []vec.Point3[float32]{{0, 0, 1}, {3, 0, 1}, {0, 3, 1}, {3, 3, 1}, {1, 2, 1}}
	plane, err := fit.BestFitPlane[float32, vec.Point3[float32], vec.Vec3[float32]](newSolver(t), points)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, plane.Normal.Vector()[2], test.ShouldAlmostEqual, float32(1), 1e-5)
	test.That(t, plane.Origin[2], test.ShouldAlmostEqual, float32(1), 1e-5)
}

func TestBestFitPlaneInsufficientData(t *testing.T) {
	solver := newSolver(t)

	_, err := fit.BestFitPlane[float64, p3, v3](solver, nil)
	test.That(t, errors.Is(err, fit.ErrInsufficientData), test.ShouldBeTrue)

	_, err = fit.BestFitPlane[float64, p3, v3](solver, []p3{{0, 0, 0}, {1, 0, 0}})
	test.That(t, errors.Is(err, fit.ErrInsufficientData), test.ShouldBeTrue)

	collinear := []p3{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}, {-3, -3, -3}}
	_, err = fit.BestFitPlane[float64, p3, v3](solver, collinear)
	test.That(t, errors.Is(err, fit.ErrInsufficientData), test.ShouldBeTrue)

	coincident := []p3{{1, 2, 3}, {1, 2, 3}, {1, 2, 3}}
	_, err = fit.BestFitPlane[float64, p3, v3](solver, coincident)
	test.That(t, errors.Is(err, fit.ErrInsufficientData), test.ShouldBeTrue)
}

func TestSolverFailure(t *testing.T) {
	points := []p3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	broken := fit.SolverFunc(func(fit.Matrix) (fit.Decomposition, error) {
		return fit.Decomposition{}, errors.New("no convergence")
	})
	_, err := fit.BestFitPlane[float64, p3, v3](broken, points)
	test.That(t, errors.Is(err, fit.ErrSolverFailure), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "no convergence")

	short := fit.SolverFunc(func(m fit.Matrix) (fit.Decomposition, error) {
		return fit.Decomposition{Values: []float64{1}, Right: fit.NewMatrix(m.Cols, 1)}, nil
	})
	_, err = fit.BestFitPlane[float64, p3, v3](short, points)
	test.That(t, errors.Is(err, fit.ErrSolverFailure), test.ShouldBeTrue)

	zero := fit.SolverFunc(func(m fit.Matrix) (fit.Decomposition, error) {
		return fit.Decomposition{Values: []float64{2, 1, 0}, Right: fit.NewMatrix(m.Cols, m.Cols)}, nil
	})
	_, err = fit.BestFitLine[float64, p3, v3](zero, points)
	test.That(t, errors.Is(err, fit.ErrSolverFailure), test.ShouldBeTrue)

	// the solver sees the points centered on their centroid
	var seen fit.Matrix
	spy := fit.SolverFunc(func(m fit.Matrix) (fit.Decomposition, error) {
		seen = m
		return gonumsvd.NewSolver(nil).Decompose(m)
	})
	_, err = fit.BestFitPlane[float64, p3, v3](spy, []p3{{1, 1, 1}, {3, 1, 1}, {1, 3, 1}, {3, 3, 1}})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, seen.Rows, test.ShouldEqual, 4)
	test.That(t, seen.Row(0), test.ShouldResemble, []float64{-1, -1, 0})
	test.That(t, seen.Row(3), test.ShouldResemble, []float64{1, 1, 0})
}

func TestNonFinitePoints(t *testing.T) {
	solver := newSolver(t)
	called := false
	guarded := fit.SolverFunc(func(m fit.Matrix) (fit.Decomposition, error) {
		called = true
		return solver.Decompose(m)
	})

	infinite := []p3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {math.Inf(1), 1, 1}}
	_, err := fit.BestFitPlane[float64, p3, v3](guarded, infinite)
	test.That(t, errors.Is(err, fit.ErrSolverFailure), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "non-finite")

	_, err = fit.BestFitLine[float64, p3, v3](guarded, infinite)
	test.That(t, errors.Is(err, fit.ErrSolverFailure), test.ShouldBeTrue)

	notANumber := []p3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {math.NaN(), 1, 1}}
	_, err = fit.BestFitPlane[float64, p3, v3](guarded, notANumber)
	test.That(t, errors.Is(err, fit.ErrSolverFailure), test.ShouldBeTrue)
	test.That(t, called, test.ShouldBeFalse)
}

func TestMatrixValidate(t *testing.T) {
	test.That(t, fit.NewMatrix(2, 2).Validate(), test.ShouldBeNil)

	err := fit.Matrix{Rows: 2, Cols: 2, Data: []float64{1}}.Validate()
	test.That(t, errors.Is(err, fit.ErrSolverFailure), test.ShouldBeTrue)

	m := fit.NewMatrix(2, 3)
	m.Set(1, 2, math.Inf(-1))
	err = m.Validate()
	test.That(t, errors.Is(err, fit.ErrSolverFailure), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "row 1, column 2")
}

func TestBestFitLine(t *testing.T) {
	solver := newSolver(t)

	var points []p3
	for _, s := range []float64{-2, -1, 0, 0.5, 3} {
		points = append(points, p3{1 + s, 1 + 2*s, 1 + 3*s})
	}
	ray, err := fit.BestFitLine[float64, p3, v3](solver, points)
	test.That(t, err, test.ShouldBeNil)
	d := ray.Direction.Vector()
	test.That(t, d[0], test.ShouldAlmostEqual, 1/math.Sqrt(14))
	test.That(t, d[1], test.ShouldAlmostEqual, 2/math.Sqrt(14))
	test.That(t, d[2], test.ShouldAlmostEqual, 3/math.Sqrt(14))
	test.That(t, ray.Origin[0], test.ShouldAlmostEqual, 1.1)

	pair, err := fit.BestFitLine[float64, p3, v3](solver, []p3{{0, 0, 0}, {0, -4, 0}})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pair.Direction.Vector()[1], test.ShouldAlmostEqual, 1.0)
	test.That(t, pair.Origin, test.ShouldResemble, p3{0, -2, 0})

	_, err = fit.BestFitLine[float64, p3, v3](solver, []p3{{1, 1, 1}})
	test.That(t, errors.Is(err, fit.ErrInsufficientData), test.ShouldBeTrue)
	_, err = fit.BestFitLine[float64, p3, v3](solver, []p3{{1, 1, 1}, {1, 1, 1}})
	test.That(t, errors.Is(err, fit.ErrInsufficientData), test.ShouldBeTrue)
}

type vertex struct {
	pos   p3
	label string
}

func (v vertex) Position() p3 { return v.pos }

func TestPositions(t *testing.T) {
	mesh := []vertex{{p3{0, 0, 0}, "a"}, {p3{1, 0, 0}, "b"}, {p3{0, 1, 0}, "c"}}
	points := fit.Positions[p3](mesh)
	test.That(t, points, test.ShouldResemble, []p3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})

	plane, err := fit.BestFitPlane[float64, p3, v3](newSolver(t), points)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, plane.Normal.Vector()[2], test.ShouldAlmostEqual, 1.0)
	test.That(t, fit.Positions[p3]([]vertex{}), test.ShouldBeEmpty)
}
