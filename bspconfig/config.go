// Package bspconfig resolves the tunable numeric policy shared by the
// geom and bsp packages: the classification epsilon and
// the default behavior of Build/Emit when a caller does not specify one
// explicitly.
//
// Epsilon is kept in exactly one place (Config.Epsilon) and injected into
// geom.NewDefaultSplitter, whose Classify and Split share it, so that a
// polygon classified SPANNING is always splittable — the two uses are
// tied by construction, never by convention. bsp.Build and the other bsp
// entry points accept a Config through bsp.WithConfig but read only its
// LogLevel.
package bspconfig

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DefaultEpsilon is the thickness epsilon used by Default(): small
// enough to treat genuinely coplanar polygons as coplanar, large enough
// to absorb accumulated float64 error across a handful of splits.
const DefaultEpsilon = 1e-5

// Config holds the numeric policy and default behavior flags shared
// across geom and bsp.
type Config struct {
	// Epsilon is the thickness used for FRONT/BACK/COPLANAR/SPANNING
	// classification. Must be > 0.
	Epsilon float64 `yaml:"epsilon"`

	// CopyOnBuild records a default for Build's `copy` flag. No function
	// in this module reads it: bsp.Build always takes `copy` explicitly.
	CopyOnBuild bool `yaml:"copy_on_build"`

	// Triangulate records a default for Emit's `make_triangles` flag. No
	// function in this module reads it: bsp.Emit always takes the flag
	// explicitly.
	Triangulate bool `yaml:"triangulate"`

	// LogLevel names a logrus level ("debug", "info", "warn", "error",
	// "panic"). Empty leaves the logger's level unchanged.
	LogLevel string `yaml:"log_level"`
}

// Default returns the Config used when callers pass nil.
func Default() *Config {
	return &Config{
		Epsilon:     DefaultEpsilon,
		CopyOnBuild: true,
		Triangulate: false,
		LogLevel:    "",
	}
}

// Or returns cfg if non-nil, else Default(). Every geom/bsp constructor
// that accepts a *Config funnels through this so nil is always a safe,
// documented default rather than a nil-pointer hazard.
func Or(cfg *Config) *Config {
	if cfg != nil {
		return cfg
	}
	return Default()
}

// LoadYAML parses a YAML document into a Config, filling any field left
// unset in the document from Default().
func LoadYAML(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("bspconfig: decode yaml: %w", err)
	}
	if cfg.Epsilon <= 0 {
		cfg.Epsilon = DefaultEpsilon
	}
	return cfg, nil
}
