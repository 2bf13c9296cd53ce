// Package export writes sampled flow fields as JSON documents.
package export

import (
	"encoding/json"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/san-kum/potflow/internal/analysis"
	"github.com/san-kum/potflow/internal/config"
	"github.com/san-kum/potflow/internal/flow"
)

// Values is a float slice whose non-finite entries encode as null.
type Values []float64

func (v Values) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	buf := make([]byte, 0, 2+len(v)*8)
	buf = append(buf, '[')
	for i, x := range v {
		if i > 0 {
			buf = append(buf, ',')
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			buf = append(buf, "null"...)
			continue
		}
		buf = strconv.AppendFloat(buf, x, 'g', -1, 64)
	}
	return append(buf, ']'), nil
}

type Force struct {
	Fx      float64 `json:"fx"`
	Fy      float64 `json:"fy"`
	Density float64 `json:"density"`
	Points  int     `json:"points"`
}

type FieldData struct {
	Name  string  `json:"name"`
	UInf  float64 `json:"u_inf"`
	NX    int     `json:"nx"`
	NY    int     `json:"ny"`
	X     Values  `json:"x"`
	Y     Values  `json:"y"`
	U     Values  `json:"u"`
	V     Values  `json:"v"`
	Psi   Values  `json:"psi"`
	Phi   Values  `json:"phi"`
	Cp    Values  `json:"cp"`
	Force *Force  `json:"force,omitempty"`
}

// Sample evaluates f on every node of g.
func Sample(name string, f flow.Element, g flow.Grid, uInf float64) (*FieldData, error) {
	xs, ys, err := g.Mesh()
	if err != nil {
		return nil, err
	}

	us, vs, err := flow.Velocities(f, xs, ys)
	if err != nil {
		return nil, err
	}
	psi, err := flow.StreamValues(f, xs, ys)
	if err != nil {
		return nil, err
	}
	phi, err := flow.PotentialValues(f, xs, ys)
	if err != nil {
		return nil, err
	}
	cp, err := analysis.PressureCoefficients(f, xs, ys, uInf)
	if err != nil {
		return nil, err
	}

	return &FieldData{
		Name: name,
		UInf: uInf,
		NX:   g.NX,
		NY:   g.NY,
		X:    xs,
		Y:    ys,
		U:    us,
		V:    vs,
		Psi:  psi,
		Phi:  phi,
		Cp:   cp,
	}, nil
}

// FromConfig samples the scenario's flow over its grid and integrates the
// force on its body.
func FromConfig(cfg *config.Config) (*FieldData, error) {
	f, err := cfg.Flow()
	if err != nil {
		return nil, err
	}

	data, err := Sample(cfg.Name, f, cfg.GetGrid(), cfg.UInf)
	if err != nil {
		return nil, err
	}

	body := cfg.GetBody()
	fx, fy := analysis.CalculateForce(f, body, cfg.Density)
	data.Force = &Force{Fx: fx, Fy: fy, Density: cfg.Density, Points: len(body)}
	return data, nil
}

func WriteJSON(w io.Writer, data *FieldData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path string, data *FieldData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, data)
}
