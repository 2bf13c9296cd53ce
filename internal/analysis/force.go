package analysis

import (
	"math"

	"github.com/san-kum/potflow/internal/flow"
)

// DefaultDensity is the fluid density used when none is specified.
const DefaultDensity = 1.0

// CalculateForce integrates dynamic pressure over the edges of body and
// returns the net force. Each vertex contributes p*n*ds for the edge to
// the next vertex, wrapping to the first; zero-length edges contribute
// nothing. An empty body yields (0, 0).
func CalculateForce(f flow.Element, body Body, density float64) (fx, fy float64) {
	n := len(body)
	if n == 0 {
		return 0, 0
	}

	for i, p := range body {
		next := body[(i+1)%n]

		dx := next.X - p.X
		dy := next.Y - p.Y
		ds := math.Sqrt(dx*dx + dy*dy)
		if ds == 0 {
			continue
		}

		nx := dy / ds
		ny := -dx / ds

		u, v := f.Velocity(p.X, p.Y)
		pressure := 0.5 * density * (u*u + v*v)

		fx += pressure * nx * ds
		fy += pressure * ny * ds
	}

	return fx, fy
}

// CalculateForceStrict is CalculateForce for bodies known to have
// outward normals: body must enclose area and wind counter-clockwise.
func CalculateForceStrict(f flow.Element, body Body, density float64) (fx, fy float64, err error) {
	if err := body.Validate(); err != nil {
		return 0, 0, err
	}
	fx, fy = CalculateForce(f, body, density)
	return fx, fy, nil
}
