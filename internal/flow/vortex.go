package flow

import "math"

// Vortex is a point vortex with circulation Strength.
type Vortex struct {
	Strength float64
	Center   Point
}

func NewVortex(strength, xCenter, yCenter float64) Vortex {
	return Vortex{Strength: strength, Center: Point{xCenter, yCenter}}
}

func (f Vortex) Velocity(x, y float64) (float64, float64) {
	dx, dy := f.Center.offset(x, y)
	r2 := dx*dx + dy*dy
	k := f.Strength / twoPi

	return -k * dy / r2, k * dx / r2
}

// StreamFunction returns Gamma/2pi * ln(r). Its level sets are the
// circular streamlines.
func (f Vortex) StreamFunction(x, y float64) float64 {
	dx, dy := f.Center.offset(x, y)
	return f.Strength / twoPi * math.Log(math.Sqrt(dx*dx+dy*dy))
}

// PotentialFunction returns Gamma/2pi * theta on the principal branch of
// atan2, so it jumps by Gamma across y == Center.Y for x < Center.X.
func (f Vortex) PotentialFunction(x, y float64) float64 {
	dx, dy := f.Center.offset(x, y)
	return f.Strength / twoPi * math.Atan2(dy, dx)
}

func (Vortex) element() {}
