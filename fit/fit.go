// Package fit computes least squares planes and lines through point sets. The linear algebra is
// delegated to a Solver so that this package carries no matrix dependency of its own; see
// package gonumsvd for the gonum backed implementation.
package fit

import (
	"math"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"

	"go.viam.com/euclid/numeric"
	"go.viam.com/euclid/space"
)

// Positions extracts the position of every item, for example the vertices of a mesh.
func Positions[P any, T space.AsPosition[P]](items []T) []P {
	return lo.Map(items, func(item T, _ int) P { return item.Position() })
}

// offsets is the centered point cloud handed to the solver.
type offsets[S numeric.Scalar, P space.EuclideanSpace[S, P, V], V space.InnerSpace[S, V]] struct {
	centroid P
	dec      Decomposition
	rank     int
}

// decompose centers points on their centroid and factorizes the offsets.
func decompose[S numeric.Scalar, P space.EuclideanSpace[S, P, V], V space.InnerSpace[S, V]](
	solver Solver,
	points []P,
	minPoints int,
) (offsets[S, P, V], error) {
	var out offsets[S, P, V]
	if len(points) < minPoints {
		return out, errors.Wrapf(ErrInsufficientData, "need at least %d points but got %d", minPoints, len(points))
	}
	centroid, _ := space.Centroid[S, P, V](points)
	dim := centroid.Dim()

	// Zero rows leave the decomposition unchanged and keep the matrix at least as tall as it is
	// wide, so every axis gets a singular value.
	m := NewMatrix(max(len(points), dim), dim)
	for i, p := range points {
		off := p.Sub(centroid)
		for j := 0; j < dim; j++ {
			m.Set(i, j, float64(off.Component(j)))
		}
	}

	if err := m.Validate(); err != nil {
		return out, err
	}
	dec, err := solver.Decompose(m)
	if err != nil {
		if errors.Is(err, ErrSolverFailure) {
			return out, errors.Wrapf(err, "decomposing %v", m)
		}
		return out, errors.Wrapf(ErrSolverFailure, "decomposing %v: %v", m, err)
	}
	if len(dec.Values) < dim || dec.Right.Rows != dim || dec.Right.Cols < dim {
		return out, errors.Wrapf(ErrSolverFailure, "expected %d singular values and vectors but got %d values and %v",
			dim, len(dec.Values), dec.Right)
	}

	out.centroid = centroid
	out.dec = dec
	out.rank = rank(dec.Values, float64(numeric.Epsilon[S]()))
	return out, nil
}

// rank counts the singular values above eps relative to the largest one.
func rank(values []float64, eps float64) int {
	if len(values) == 0 {
		return 0
	}
	tol := eps * floats.Max(values)
	n := 0
	for _, v := range values {
		if v > tol {
			n++
		}
	}
	return n
}

// direction turns right singular vector i into a V with a canonical sign: the component of largest
// magnitude is positive.
func direction[S numeric.Scalar, P space.EuclideanSpace[S, P, V], V space.InnerSpace[S, V]](o offsets[S, P, V], i int) (V, error) {
	col := o.dec.V(i)
	if n := floats.Norm(col, 2); n == 0 || math.IsNaN(n) {
		return space.Zero[S, V](), errors.Wrapf(ErrSolverFailure, "singular vector %d has norm %v", i, n)
	}
	abs := make([]float64, len(col))
	for j, c := range col {
		abs[j] = math.Abs(c)
	}
	if col[floats.MaxIdx(abs)] < 0 {
		floats.Scale(-1, col)
	}
	v := space.Zero[S, V]()
	for j, c := range col {
		v = v.WithComponent(j, S(c))
	}
	return v, nil
}
