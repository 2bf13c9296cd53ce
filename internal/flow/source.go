package flow

import "math"

// Source is a point source of volumetric flow rate Strength per unit
// depth. A negative Strength makes it a sink.
type Source struct {
	Strength float64
	Center   Point
}

func NewSource(strength, xCenter, yCenter float64) Source {
	return Source{Strength: strength, Center: Point{xCenter, yCenter}}
}

// NewSink returns a Source that absorbs strength.
func NewSink(strength, xCenter, yCenter float64) Source {
	return NewSource(-strength, xCenter, yCenter)
}

func (f Source) Velocity(x, y float64) (float64, float64) {
	dx, dy := f.Center.offset(x, y)
	r2 := dx*dx + dy*dy
	k := f.Strength / twoPi

	return k * dx / r2, k * dy / r2
}

// StreamFunction has the same atan2 branch cut as Vortex.PotentialFunction.
func (f Source) StreamFunction(x, y float64) float64 {
	dx, dy := f.Center.offset(x, y)
	return f.Strength / twoPi * math.Atan2(dy, dx)
}

func (f Source) PotentialFunction(x, y float64) float64 {
	dx, dy := f.Center.offset(x, y)
	return f.Strength / twoPi * math.Log(math.Sqrt(dx*dx+dy*dy))
}

func (Source) element() {}
