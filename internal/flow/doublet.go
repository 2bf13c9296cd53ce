package flow

// Doublet is the limit of a source-sink pair with moment Strength.
type Doublet struct {
	Strength float64
	Center   Point
}

func NewDoublet(strength, xCenter, yCenter float64) Doublet {
	return Doublet{Strength: strength, Center: Point{xCenter, yCenter}}
}

func (f Doublet) Velocity(x, y float64) (float64, float64) {
	dx, dy := f.Center.offset(x, y)
	r2 := dx*dx + dy*dy
	r4 := r2 * r2
	k := f.Strength / twoPi

	u := -k * (dx*dx - dy*dy) / r4
	v := -k * 2 * dx * dy / r4
	return u, v
}

func (f Doublet) StreamFunction(x, y float64) float64 {
	dx, dy := f.Center.offset(x, y)
	return -(f.Strength / twoPi) * dy / (dx*dx + dy*dy)
}

func (f Doublet) PotentialFunction(x, y float64) float64 {
	dx, dy := f.Center.offset(x, y)
	return f.Strength / twoPi * dx / (dx*dx + dy*dy)
}

func (Doublet) element() {}
