package config

import (
	"fmt"
	"math"
	"sort"
)

// Presets builds a fresh scenario per call so callers may modify the result.
var Presets = map[string]func() *Config{
	"uniform": DefaultConfig,
	"cylinder": func() *Config {
		return scenario("cylinder",
			ElementConfig{Type: "uniform"},
			ElementConfig{Type: "doublet", Strength: f64(2 * math.Pi * DefaultUInf * DefaultRadius * DefaultRadius)},
		)
	},
	"spinning_cylinder": func() *Config {
		return scenario("spinning_cylinder",
			ElementConfig{Type: "uniform"},
			ElementConfig{Type: "doublet", Strength: f64(2 * math.Pi * DefaultUInf * DefaultRadius * DefaultRadius)},
			ElementConfig{Type: "vortex", Strength: f64(2 * math.Pi)},
		)
	},
	"rankine_half_body": func() *Config {
		return scenario("rankine_half_body",
			ElementConfig{Type: "uniform"},
			ElementConfig{Type: "source", Strength: f64(2 * math.Pi)},
		)
	},
	"rankine_oval": func() *Config {
		return scenario("rankine_oval",
			ElementConfig{Type: "uniform"},
			ElementConfig{Type: "source", Strength: f64(2 * math.Pi), X: -1},
			ElementConfig{Type: "sink", Strength: f64(2 * math.Pi), X: 1},
		)
	},
	"vortex_pair": func() *Config {
		return scenario("vortex_pair",
			ElementConfig{Type: "vortex", Strength: f64(1), Y: 0.5},
			ElementConfig{Type: "vortex", Strength: f64(-1), Y: -0.5},
		)
	},
}

func GetPreset(name string) (*Config, error) {
	build, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return build(), nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func scenario(name string, elems ...ElementConfig) *Config {
	cfg := DefaultConfig()
	cfg.Name = name
	cfg.Elements = elems
	return cfg
}

func f64(v float64) *float64 { return &v }
