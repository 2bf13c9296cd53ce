// Package flow provides closed-form 2D potential-flow elements.
//
// Every element implements [Element], returning the velocity, stream
// function and velocity potential at a point:
//
//   - [Uniform]: free stream (UInf, VInf)
//   - [Source]: point source, or sink for negative strength
//   - [Vortex]: point vortex of circulation Gamma
//   - [Doublet]: doublet of moment mu
//   - [Combined]: superposition of any of the above
//
// # Example
//
//	cyl := flow.Combine(
//	    flow.NewUniform(1, 0, 0, 0),
//	    flow.NewDoublet(2*math.Pi, 0, 0),
//	)
//	u, v := cyl.Velocity(0, 1.5)
//
// # Singularities
//
// At an element's center the formulas divide by zero. The resulting NaN
// or Inf is returned as is; it is not treated as an error.
//
// # Batched Evaluation
//
// [Velocities], [StreamValues] and [PotentialValues] evaluate an element
// over coordinate slices. The slices must have equal length or one of
// them must have length 1, otherwise [ErrShapeMismatch] is returned.
package flow
