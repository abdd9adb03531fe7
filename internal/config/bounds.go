// Package config loads ambient evaluator configuration — currently just
// numeric bounds — from a YAML file, so a host harness can parameterize
// minint/maxint/minreal/maxreal without a Go recompile.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/rljacobson/cps/internal/numeric"
)

// boundsFile is the on-disk shape of a bounds YAML document, e.g.:
//
//	minint: -1073741824
//	maxint: 1073741823
//	minreal: -1.7976931348623157e+308
//	maxreal: 1.7976931348623157e+308
type boundsFile struct {
	MinInt  *int64   `yaml:"minint"`
	MaxInt  *int64   `yaml:"maxint"`
	MinReal *float64 `yaml:"minreal"`
	MaxReal *float64 `yaml:"maxreal"`
}

// LoadBoundsFromYAML reads a bounds document from path, overlaying any
// fields it sets on top of numeric.DefaultBounds() — a document that
// specifies only maxint, for example, leaves the other three bounds at
// their default.
func LoadBoundsFromYAML(path string) (numeric.Bounds, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return numeric.Bounds{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var doc boundsFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return numeric.Bounds{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	b := numeric.DefaultBounds()
	if doc.MinInt != nil {
		b.MinInt = *doc.MinInt
	}
	if doc.MaxInt != nil {
		b.MaxInt = *doc.MaxInt
	}
	if doc.MinReal != nil {
		b.MinReal = *doc.MinReal
	}
	if doc.MaxReal != nil {
		b.MaxReal = *doc.MaxReal
	}
	return b, nil
}
