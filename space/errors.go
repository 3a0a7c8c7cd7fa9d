package space

import "github.com/pkg/errors"

// ErrDimensionMismatch is returned when a value is built from the wrong number of coordinates.
var ErrDimensionMismatch = errors.New("dimension mismatch")

func newDimensionMismatchError(want, got int) error {
	return errors.Wrapf(ErrDimensionMismatch, "expected %d coordinates but got %d", want, got)
}
