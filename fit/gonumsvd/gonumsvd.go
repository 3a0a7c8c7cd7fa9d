// Package gonumsvd implements fit.Solver with gonum's singular value decomposition.
package gonumsvd

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/euclid/fit"
	"go.viam.com/euclid/logging"
)

// Solver factorizes with mat.SVD.
type Solver struct {
	logger logging.Logger
}

var _ fit.Solver = (*Solver)(nil)

// NewSolver returns a Solver that logs each factorization at debug level.
func NewSolver(logger logging.Logger) *Solver {
	return &Solver{logger: logger}
}

// Decompose returns the singular values and right singular vectors of m.
func (s *Solver) Decompose(m fit.Matrix) (fit.Decomposition, error) {
	if err := m.Validate(); err != nil {
		return fit.Decomposition{}, err
	}
	a := mat.NewDense(m.Rows, m.Cols, append([]float64(nil), m.Data...))

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDFull); !ok {
		return fit.Decomposition{}, errors.Wrapf(fit.ErrSolverFailure, "failed to factorize %v", m)
	}
	values := svd.Values(nil)
	v := &mat.Dense{}
	svd.VTo(v)

	rows, cols := v.Dims()
	right := fit.NewMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			right.Set(i, j, v.At(i, j))
		}
	}
	if s.logger != nil {
		s.logger.Debugw("factorized", "rows", m.Rows, "cols", m.Cols, "singular_values", values)
	}
	return fit.Decomposition{Values: values, Right: right}, nil
}
