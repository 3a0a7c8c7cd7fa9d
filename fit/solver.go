package fit

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Matrix is a dense row-major matrix of float64 values.
type Matrix struct {
	Rows, Cols int
	Data       []float64
}

// NewMatrix returns a zeroed rows x cols matrix.
func NewMatrix(rows, cols int) Matrix {
	return Matrix{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) float64 { return m.Data[i*m.Cols+j] }

// Set stores v at row i, column j.
func (m Matrix) Set(i, j int, v float64) { m.Data[i*m.Cols+j] = v }

// Row returns a view of row i.
func (m Matrix) Row(i int) []float64 { return m.Data[i*m.Cols : (i+1)*m.Cols] }

// Validate checks that m is well formed and that every element is finite. A NaN or infinite
// element is reported as ErrSolverFailure.
func (m Matrix) Validate() error {
	if m.Rows <= 0 || m.Cols <= 0 || len(m.Data) != m.Rows*m.Cols {
		return errors.Wrapf(ErrSolverFailure, "malformed %v with %d elements", m, len(m.Data))
	}
	x, idx, found := lo.FindIndexOf(m.Data, func(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) })
	if found {
		return errors.Wrapf(ErrSolverFailure, "%v has non-finite element %v at row %d, column %d", m, x, idx/m.Cols, idx%m.Cols)
	}
	return nil
}

func (m Matrix) String() string {
	return fmt.Sprintf("Matrix(%dx%d)", m.Rows, m.Cols)
}

// Decomposition is the singular value decomposition of a Matrix, restricted to what plane and
// line fitting need.
type Decomposition struct {
	// Values holds the singular values in descending order.
	Values []float64
	// Right is the Cols x Cols matrix whose columns are the right singular vectors.
	Right Matrix
}

// V returns a copy of the right singular vector paired with Values[i].
func (d Decomposition) V(i int) []float64 {
	out := make([]float64, d.Right.Rows)
	for r := range out {
		out[r] = d.Right.At(r, i)
	}
	return out
}

// A Solver computes singular value decompositions.
type Solver interface {
	Decompose(m Matrix) (Decomposition, error)
}

// SolverFunc adapts a function to the Solver interface.
type SolverFunc func(m Matrix) (Decomposition, error)

// Decompose calls f(m).
func (f SolverFunc) Decompose(m Matrix) (Decomposition, error) { return f(m) }
