package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/potflow/internal/flow"
)

// Body is a polygon approximating a body surface. The last vertex
// connects back to the first.
type Body []flow.Point

// Circle returns n points on a circle, counter-clockwise from angle 0.
func Circle(center flow.Point, radius float64, n int) Body {
	if n <= 0 {
		return Body{}
	}

	angles := make([]float64, n+1)
	floats.Span(angles, 0, 2*math.Pi)

	b := make(Body, n)
	for i := range b {
		sin, cos := math.Sincos(angles[i])
		b[i] = flow.Point{
			X: center.X + radius*cos,
			Y: center.Y + radius*sin,
		}
	}
	return b
}

// SignedArea returns the shoelace area, positive for counter-clockwise
// winding.
func (b Body) SignedArea() float64 {
	n := len(b)
	if n < 3 {
		return 0
	}

	cross := make([]float64, n)
	for i, p := range b {
		q := b[(i+1)%n]
		cross[i] = p.X*q.Y - q.X*p.Y
	}
	return 0.5 * floats.Sum(cross)
}

func (b Body) IsCounterClockwise() bool {
	return b.SignedArea() > 0
}

// Reversed returns a copy of b with the winding flipped.
func (b Body) Reversed() Body {
	out := make(Body, len(b))
	for i, p := range b {
		out[len(b)-1-i] = p
	}
	return out
}

// Validate reports whether b is usable for outward-normal integration.
func (b Body) Validate() error {
	if len(b) < 3 {
		return fmt.Errorf("%w: %d points", ErrDegenerateBody, len(b))
	}
	area := b.SignedArea()
	switch {
	case area == 0 || math.IsNaN(area):
		return ErrDegenerateBody
	case area < 0:
		return ErrClockwiseBody
	}
	return nil
}
