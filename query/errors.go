package query

import "github.com/pkg/errors"

var (
	// ErrDegenerateDirection is returned when a direction is derived from a zero length vector.
	ErrDegenerateDirection = errors.New("degenerate direction")
	// ErrNegativeExtent is returned when a box is constructed with a negative extent component.
	ErrNegativeExtent = errors.New("negative extent")
	// ErrEmptyPointSet is returned when a bounding box is requested for no points.
	ErrEmptyPointSet = errors.New("empty point set")
)
