package analysis

import "errors"

var (
	// ErrDegenerateBody indicates a body with fewer than three points or no enclosed area.
	ErrDegenerateBody = errors.New("analysis: body encloses no area")

	// ErrClockwiseBody indicates a body whose vertices wind clockwise, giving inward normals.
	ErrClockwiseBody = errors.New("analysis: body vertices wind clockwise")
)
