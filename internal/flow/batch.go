package flow

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

type scalarField func(e Element, x, y float64) float64

// Velocities evaluates e at every broadcast (xs[i], ys[i]) pair.
func Velocities(e Element, xs, ys []float64) (us, vs []float64, err error) {
	n, err := broadcastLen(xs, ys)
	if err != nil {
		return nil, nil, err
	}

	us = make([]float64, n)
	vs = make([]float64, n)
	velocitiesInto(e, xs, ys, us, vs)
	return us, vs, nil
}

// StreamValues evaluates the stream function of e over xs, ys.
func StreamValues(e Element, xs, ys []float64) ([]float64, error) {
	return evalField(e, xs, ys, Element.StreamFunction)
}

// PotentialValues evaluates the velocity potential of e over xs, ys.
func PotentialValues(e Element, xs, ys []float64) ([]float64, error) {
	return evalField(e, xs, ys, Element.PotentialFunction)
}

func evalField(e Element, xs, ys []float64, field scalarField) ([]float64, error) {
	n, err := broadcastLen(xs, ys)
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	fieldInto(e, xs, ys, out, field)
	return out, nil
}

// broadcastLen returns the common length of xs and ys. A slice of length
// 1 stands in for a scalar.
func broadcastLen(xs, ys []float64) (int, error) {
	switch {
	case len(xs) == len(ys):
		return len(xs), nil
	case len(xs) == 1:
		return len(ys), nil
	case len(ys) == 1:
		return len(xs), nil
	}
	return 0, fmt.Errorf("%w: lengths %d and %d", ErrShapeMismatch, len(xs), len(ys))
}

func at(s []float64, i int) float64 {
	if len(s) == 1 {
		return s[0]
	}
	return s[i]
}

func velocitiesInto(e Element, xs, ys, us, vs []float64) {
	switch f := e.(type) {
	case Uniform:
		for i := range us {
			us[i] = f.UInf
			vs[i] = f.VInf
		}
	case Combined:
		zero(us)
		zero(vs)
		if len(f.elems) == 0 {
			return
		}
		bu := make([]float64, len(us))
		bv := make([]float64, len(vs))
		for _, c := range f.elems {
			velocitiesInto(c, xs, ys, bu, bv)
			floats.Add(us, bu)
			floats.Add(vs, bv)
		}
	default:
		ParallelFor(len(us), batchChunk, func(start, end int) {
			for i := start; i < end; i++ {
				us[i], vs[i] = e.Velocity(at(xs, i), at(ys, i))
			}
		})
	}
}

func fieldInto(e Element, xs, ys, out []float64, field scalarField) {
	if c, ok := e.(Combined); ok {
		zero(out)
		if len(c.elems) == 0 {
			return
		}
		buf := make([]float64, len(out))
		for _, sub := range c.elems {
			fieldInto(sub, xs, ys, buf, field)
			floats.Add(out, buf)
		}
		return
	}

	ParallelFor(len(out), batchChunk, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = field(e, at(xs, i), at(ys, i))
		}
	})
}

func zero(s []float64) {
	for i := range s {
		s[i] = 0
	}
}
