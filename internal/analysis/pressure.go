package analysis

import (
	"github.com/san-kum/potflow/internal/flow"
)

// PressureCoefficient returns 1 - (|V|/uInf)^2 at (x, y). uInf == 0 is
// not guarded.
func PressureCoefficient(f flow.Element, x, y, uInf float64) float64 {
	u, v := f.Velocity(x, y)
	return cp(u, v, uInf)
}

// PressureCoefficients evaluates the pressure coefficient over
// broadcast coordinate slices.
func PressureCoefficients(f flow.Element, xs, ys []float64, uInf float64) ([]float64, error) {
	us, vs, err := flow.Velocities(f, xs, ys)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(us))
	for i := range us {
		out[i] = cp(us[i], vs[i], uInf)
	}
	return out, nil
}

func cp(u, v, uInf float64) float64 {
	ratio := (u*u + v*v) / (uInf * uInf)
	return 1 - ratio
}
