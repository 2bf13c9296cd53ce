package flow

import "errors"

// Domain errors for flow evaluation.
var (
	// ErrShapeMismatch indicates coordinate slices that cannot be broadcast together.
	ErrShapeMismatch = errors.New("flow: coordinate slices cannot be broadcast together")

	// ErrInvalidGrid indicates a grid with fewer than one node along an axis.
	ErrInvalidGrid = errors.New("flow: grid needs at least one node per axis")
)
