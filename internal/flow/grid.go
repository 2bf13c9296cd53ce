package flow

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Grid describes a rectangular NX x NY lattice of evaluation points.
type Grid struct {
	XMin, XMax float64
	YMin, YMax float64
	NX, NY     int
}

// Size returns the number of nodes.
func (g Grid) Size() int { return g.NX * g.NY }

// Mesh returns the node coordinates flattened row by row: node (i, j)
// sits at index j*NX + i.
func (g Grid) Mesh() (xs, ys []float64, err error) {
	if g.NX < 1 || g.NY < 1 {
		return nil, nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, g.NX, g.NY)
	}

	xAxis := span(g.NX, g.XMin, g.XMax)
	yAxis := span(g.NY, g.YMin, g.YMax)

	xs = make([]float64, 0, g.Size())
	ys = make([]float64, 0, g.Size())
	for _, y := range yAxis {
		xs = append(xs, xAxis...)
		for range xAxis {
			ys = append(ys, y)
		}
	}
	return xs, ys, nil
}

func span(n int, lo, hi float64) []float64 {
	if n == 1 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}
