package flow

// Uniform is a free stream with constant velocity (UInf, VInf). Center
// only offsets the stream and potential functions.
type Uniform struct {
	UInf   float64
	VInf   float64
	Center Point
}

func NewUniform(uInf, vInf, xCenter, yCenter float64) Uniform {
	return Uniform{UInf: uInf, VInf: vInf, Center: Point{xCenter, yCenter}}
}

// DefaultUniform is a unit stream along +x centered at the origin.
func DefaultUniform() Uniform {
	return Uniform{UInf: DefaultStrength}
}

func (f Uniform) Velocity(_, _ float64) (float64, float64) {
	return f.UInf, f.VInf
}

func (f Uniform) StreamFunction(x, y float64) float64 {
	dx, dy := f.Center.offset(x, y)
	return f.UInf*dy - f.VInf*dx
}

func (f Uniform) PotentialFunction(x, y float64) float64 {
	dx, dy := f.Center.offset(x, y)
	return f.UInf*dx + f.VInf*dy
}

func (Uniform) element() {}
