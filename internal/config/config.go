package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/potflow/internal/analysis"
	"github.com/san-kum/potflow/internal/flow"
)

const (
	DefaultUInf        = 1.0
	DefaultRadius      = 1.0
	DefaultBodyPoints  = 72
	DefaultGridExtent  = 2.0
	DefaultGridNodes   = 41
	DefaultElementType = "uniform"
)

var (
	ErrUnknownElement = errors.New("config: unknown element type")
	ErrUnknownPreset  = errors.New("config: unknown preset")
	ErrEmptyScenario  = errors.New("config: scenario has no elements")
)

type Config struct {
	Name     string          `yaml:"name"`
	UInf     float64         `yaml:"u_inf"`
	Density  float64         `yaml:"density"`
	Elements []ElementConfig `yaml:"elements"`
	Body     BodyConfig      `yaml:"body"`
	Grid     GridConfig      `yaml:"grid"`
}

// ElementConfig describes one flow element. Strength and U/V are
// pointers so an omitted key falls back to the element default.
type ElementConfig struct {
	Type     string   `yaml:"type"`
	Strength *float64 `yaml:"strength,omitempty"`
	UInf     *float64 `yaml:"u_inf,omitempty"`
	VInf     *float64 `yaml:"v_inf,omitempty"`
	X        float64  `yaml:"x"`
	Y        float64  `yaml:"y"`
}

type BodyConfig struct {
	Radius  float64      `yaml:"radius"`
	Count   int          `yaml:"points_count"`
	CenterX float64      `yaml:"x"`
	CenterY float64      `yaml:"y"`
	Points  [][2]float64 `yaml:"points,omitempty"`
}

type GridConfig struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
	NX   int     `yaml:"nx"`
	NY   int     `yaml:"ny"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:    "uniform",
		UInf:    DefaultUInf,
		Density: analysis.DefaultDensity,
		Elements: []ElementConfig{
			{Type: DefaultElementType},
		},
		Body: BodyConfig{
			Radius: DefaultRadius,
			Count:  DefaultBodyPoints,
		},
		Grid: GridConfig{
			XMin: -DefaultGridExtent,
			XMax: DefaultGridExtent,
			YMin: -DefaultGridExtent,
			YMax: DefaultGridExtent,
			NX:   DefaultGridNodes,
			NY:   DefaultGridNodes,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a scenario over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse scenario: %w", err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Flow builds the superposition of all configured elements.
func (c *Config) Flow() (flow.Combined, error) {
	if len(c.Elements) == 0 {
		return flow.Combined{}, ErrEmptyScenario
	}

	elems := make([]flow.Element, 0, len(c.Elements))
	for i, ec := range c.Elements {
		e, err := ec.Build()
		if err != nil {
			return flow.Combined{}, fmt.Errorf("element %d: %w", i, err)
		}
		elems = append(elems, e)
	}
	return flow.Combine(elems...), nil
}

func (e ElementConfig) Build() (flow.Element, error) {
	strength := valueOr(e.Strength, flow.DefaultStrength)

	switch e.Type {
	case "uniform":
		return flow.NewUniform(valueOr(e.UInf, DefaultUInf), valueOr(e.VInf, 0), e.X, e.Y), nil
	case "source":
		return flow.NewSource(strength, e.X, e.Y), nil
	case "sink":
		return flow.NewSink(strength, e.X, e.Y), nil
	case "vortex":
		return flow.NewVortex(strength, e.X, e.Y), nil
	case "doublet":
		return flow.NewDoublet(strength, e.X, e.Y), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownElement, e.Type)
	}
}

// GetBody returns the explicit points when given, otherwise a circle.
func (c *Config) GetBody() analysis.Body {
	if len(c.Body.Points) > 0 {
		b := make(analysis.Body, len(c.Body.Points))
		for i, p := range c.Body.Points {
			b[i] = flow.Point{X: p[0], Y: p[1]}
		}
		return b
	}
	center := flow.Point{X: c.Body.CenterX, Y: c.Body.CenterY}
	return analysis.Circle(center, c.Body.Radius, c.Body.Count)
}

func (c *Config) GetGrid() flow.Grid {
	return flow.Grid{
		XMin: c.Grid.XMin,
		XMax: c.Grid.XMax,
		YMin: c.Grid.YMin,
		YMax: c.Grid.YMax,
		NX:   c.Grid.NX,
		NY:   c.Grid.NY,
	}
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
