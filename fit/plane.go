package fit

import (
	"math"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"

	"go.viam.com/euclid/numeric"
	"go.viam.com/euclid/query"
	"go.viam.com/euclid/space"
)

// PlaneFit is a fitted plane together with how well it explains the input.
type PlaneFit[S numeric.Scalar, P space.EuclideanSpace[S, P, V], V space.InnerSpace[S, V]] struct {
	Plane query.Plane[S, P, V]
	// SingularValues of the centered points, descending.
	SingularValues []float64
	// ResidualSumSquares is the sum of squared distances from the points to the plane, which is
	// the square of the smallest singular value.
	ResidualSumSquares float64
	// RMS is the root mean square distance from the points to the plane.
	RMS float64
	// MaxDeviation is the largest distance from a point to the plane.
	MaxDeviation float64
}

// BestFitPlane returns the plane through the centroid of points that minimizes the sum of squared
// distances to them. In two dimensions the result is a line.
//
// At least Dim points spanning Dim-1 dimensions are required, otherwise ErrInsufficientData is
// returned.
func BestFitPlane[S numeric.Scalar, P space.EuclideanSpace[S, P, V], V space.InnerSpace[S, V]](
	solver Solver,
	points []P,
) (query.Plane[S, P, V], error) {
	fit, err := FitPlane[S, P, V](solver, points)
	if err != nil {
		return query.Plane[S, P, V]{}, err
	}
	return fit.Plane, nil
}

// FitPlane is BestFitPlane with residual statistics.
func FitPlane[S numeric.Scalar, P space.EuclideanSpace[S, P, V], V space.InnerSpace[S, V]](
	solver Solver,
	points []P,
) (PlaneFit[S, P, V], error) {
	var zero P
	dim := zero.Dim()
	o, err := decompose[S, P, V](solver, points, dim)
	if err != nil {
		return PlaneFit[S, P, V]{}, errors.Wrap(err, "fitting plane")
	}
	if o.rank < dim-1 {
		return PlaneFit[S, P, V]{}, errors.Wrapf(ErrInsufficientData,
			"fitting plane: points span %d dimensions but %d are needed", o.rank, dim-1)
	}

	n, err := direction(o, dim-1)
	if err != nil {
		return PlaneFit[S, P, V]{}, errors.Wrap(err, "fitting plane")
	}
	normal, err := query.NewUnitVector[S](n)
	if err != nil {
		return PlaneFit[S, P, V]{}, errors.Wrapf(ErrSolverFailure, "fitting plane: %v", err)
	}
	plane := query.NewPlane(o.centroid, normal)

	deviations := make([]float64, len(points))
	squares := make([]float64, len(points))
	for i, p := range points {
		d := float64(plane.Distance(p))
		deviations[i] = d
		squares[i] = d * d
	}
	meanSquare, err := stats.Mean(squares)
	if err != nil {
		return PlaneFit[S, P, V]{}, errors.Wrap(err, "fitting plane")
	}
	maxDeviation, err := stats.Max(deviations)
	if err != nil {
		return PlaneFit[S, P, V]{}, errors.Wrap(err, "fitting plane")
	}

	smallest := o.dec.Values[dim-1]
	return PlaneFit[S, P, V]{
		Plane:              plane,
		SingularValues:     append([]float64(nil), o.dec.Values[:dim]...),
		ResidualSumSquares: smallest * smallest,
		RMS:                math.Sqrt(meanSquare),
		MaxDeviation:       maxDeviation,
	}, nil
}
