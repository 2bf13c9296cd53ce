package flow

import "math"

// DefaultStrength is the strength used when none is given.
const DefaultStrength = 1.0

const twoPi = 2 * math.Pi

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// Origin is the default element center.
var Origin = Point{}

// Element is a potential-flow field. The set of implementations is
// closed: Uniform, Source, Vortex, Doublet and Combined.
type Element interface {
	// Velocity returns the velocity components at (x, y).
	Velocity(x, y float64) (u, v float64)
	// StreamFunction returns psi at (x, y).
	StreamFunction(x, y float64) float64
	// PotentialFunction returns phi at (x, y).
	PotentialFunction(x, y float64) float64

	element()
}

func (c Point) offset(x, y float64) (dx, dy float64) {
	return x - c.X, y - c.Y
}
