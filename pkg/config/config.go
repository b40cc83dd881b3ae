// Package config loads chaosgame settings from a TOML file.
//
// Every key is optional; anything left out keeps the reference value from
// [pipeline.DefaultOptions]. Unknown keys are rejected so a typo does not
// silently fall back to a default.
//
//	edges = 5
//	iterations = 2_000_000
//	radius = 10000.0
//	output = "pentagon.png"
//
//	[canvas]
//	width = 1280
//	height = 960
//	margin = 10
package config

import (
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/chaosgame/pkg/errors"
	"github.com/matzehuels/chaosgame/pkg/pipeline"
)

// Config mirrors the user-settable pipeline options.
type Config struct {
	Edges      int     `toml:"edges"`
	Iterations int     `toml:"iterations"`
	Radius     float64 `toml:"radius"`
	Seed       uint64  `toml:"seed"`
	Output     string  `toml:"output"`
	Canvas     Canvas  `toml:"canvas"`
}

// Canvas holds the image geometry.
type Canvas struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	Margin int `toml:"margin"`
}

// Default returns the reference configuration.
func Default() Config {
	d := pipeline.DefaultOptions()
	return Config{
		Edges:      d.Edges,
		Iterations: d.Iterations,
		Radius:     d.Radius,
		Output:     d.Output,
		Canvas: Canvas{
			Width:  d.Width,
			Height: d.Height,
			Margin: d.Margin,
		},
	}
}

// Load reads path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig,
			"unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Options converts the configuration into pipeline options. Validation is
// left to the pipeline.
func (c Config) Options() pipeline.Options {
	return pipeline.Options{
		Edges:      c.Edges,
		Radius:     c.Radius,
		Iterations: c.Iterations,
		Seed:       c.Seed,
		Width:      c.Canvas.Width,
		Height:     c.Canvas.Height,
		Margin:     c.Canvas.Margin,
		Output:     c.Output,
	}
}
