// Package analysis derives aerodynamic quantities from a flow field.
//
// The package works on any [flow.Element], including superpositions:
//
//   - [PressureCoefficient]: Cp = 1 - (|V|/U)^2 at a point
//   - [PressureCoefficients]: Cp over coordinate slices
//   - [CalculateForce]: net force by pressure integration over a body
//   - [Circle]: counter-clockwise polygon approximating a circle
//
// # Force Integration
//
// A [Body] is an implicitly closed polygon. The normal of each edge is
// its unit tangent rotated 90 degrees clockwise, so it points outward
// only for counter-clockwise bodies. [CalculateForce] trusts the caller;
// [CalculateForceStrict] rejects clockwise and degenerate bodies:
//
//	body := analysis.Circle(flow.Origin, 1, 360)
//	fx, fy := analysis.CalculateForce(cyl, body, analysis.DefaultDensity)
//
// The pressure at each vertex is the dynamic pressure 0.5*rho*|V|^2
// without a reference static pressure.
package analysis
