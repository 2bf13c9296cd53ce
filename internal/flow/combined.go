package flow

// Combined is the superposition of its constituents. Each field is the
// sum of the constituents' fields, taken in order.
type Combined struct {
	elems []Element
}

// Combine superposes elems. With no arguments the result is the zero
// flow: every field evaluates to 0.
func Combine(elems ...Element) Combined {
	c := Combined{elems: make([]Element, len(elems))}
	copy(c.elems, elems)
	return c
}

// Elements returns the constituents in summation order.
func (c Combined) Elements() []Element {
	out := make([]Element, len(c.elems))
	copy(out, c.elems)
	return out
}

func (c Combined) Len() int { return len(c.elems) }

func (c Combined) Velocity(x, y float64) (float64, float64) {
	var u, v float64
	for _, e := range c.elems {
		du, dv := e.Velocity(x, y)
		u += du
		v += dv
	}
	return u, v
}

func (c Combined) StreamFunction(x, y float64) float64 {
	psi := 0.0
	for _, e := range c.elems {
		psi += e.StreamFunction(x, y)
	}
	return psi
}

func (c Combined) PotentialFunction(x, y float64) float64 {
	phi := 0.0
	for _, e := range c.elems {
		phi += e.PotentialFunction(x, y)
	}
	return phi
}

func (Combined) element() {}
