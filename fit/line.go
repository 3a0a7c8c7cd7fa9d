package fit

import (
	"github.com/pkg/errors"

	"go.viam.com/euclid/numeric"
	"go.viam.com/euclid/query"
	"go.viam.com/euclid/space"
)

// BestFitLine returns the line through the centroid of points that minimizes the sum of squared
// distances to them, as a ray from the centroid along the principal direction. At least two
// distinct points are required.
func BestFitLine[S numeric.Scalar, P space.EuclideanSpace[S, P, V], V space.InnerSpace[S, V]](
	solver Solver,
	points []P,
) (query.Ray[S, P, V], error) {
	o, err := decompose[S, P, V](solver, points, 2)
	if err != nil {
		return query.Ray[S, P, V]{}, errors.Wrap(err, "fitting line")
	}
	if o.rank < 1 {
		return query.Ray[S, P, V]{}, errors.Wrap(ErrInsufficientData, "fitting line: points are coincident")
	}
	d, err := direction(o, 0)
	if err != nil {
		return query.Ray[S, P, V]{}, errors.Wrap(err, "fitting line")
	}
	dir, err := query.NewUnitVector[S](d)
	if err != nil {
		return query.Ray[S, P, V]{}, errors.Wrapf(ErrSolverFailure, "fitting line: %v", err)
	}
	return query.NewRay(o.centroid, dir), nil
}
