package fit

import "github.com/pkg/errors"

var (
	// ErrInsufficientData is returned when the points cannot determine the requested fit, either
	// because there are too few of them or because they span too few dimensions.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrSolverFailure is returned when the decomposition fails or returns unusable output.
	ErrSolverFailure = errors.New("solver failure")
)
