// Package pipeline provides the load → layout → export pipeline for
// graphforce.
//
// This package implements the shared orchestration used by the CLI and the
// HTTP service. By centralizing this logic, both entry points behave
// identically: the same defaults, the same validation, the same
// observability events.
//
// # Usage
//
// Create a Runner and execute the pipeline against a decoded graph:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{Iterations: 100, Seed: 7}
//	result, err := runner.Execute(ctx, g, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	positions := result.Positions
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphforce/pkg/errors"
	"github.com/matzehuels/graphforce/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default canvas width.
	DefaultWidth = 1.0

	// DefaultHeight is the default canvas height.
	DefaultHeight = 1.0

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = layout.DefaultSeed
)

// ValidModes is the set of supported temperature schedule modes.
var ValidModes = map[string]bool{
	string(layout.ScheduleQuadratic): true,
	string(layout.ScheduleLinear):    true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options
	K                  float64 `json:"k,omitempty"`
	InitialTemperature float64 `json:"initial_temperature,omitempty"`
	Iterations         int     `json:"iterations,omitempty"`
	Mode               string  `json:"mode,omitempty"` // "quadratic" (default) or "linear"
	NodeSize           float64 `json:"node_size,omitempty"`
	Seed               uint64  `json:"seed,omitempty"`

	// Canvas options
	OriginX float64 `json:"origin_x,omitempty"`
	OriginY float64 `json:"origin_y,omitempty"`
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`

	// Packing options for disconnected graphs
	Power float64 `json:"power,omitempty"`
	PadBy float64 `json:"pad_by,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "canvas extents must be positive, got %g x %g", o.Width, o.Height)
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Mode != "" && !ValidModes[o.Mode] {
		return errors.New(errors.ErrCodeInvalidSchedule, "invalid mode: %q (must be one of: quadratic, linear)", o.Mode)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// Origin returns the canvas origin as a vector.
func (o *Options) Origin() []float64 { return []float64{o.OriginX, o.OriginY} }

// Scale returns the canvas extents as a vector.
func (o *Options) Scale() []float64 { return []float64{o.Width, o.Height} }

// layoutOptions translates pipeline options into engine options.
func (o *Options) layoutOptions() layout.Options {
	return layout.Options{
		K:                  o.K,
		InitialTemperature: o.InitialTemperature,
		TotalIterations:    o.Iterations,
		Mode:               layout.ScheduleMode(o.Mode),
		NodeSize:           o.NodeSize,
		Seed:               o.Seed,
		Logger:             o.Logger,
	}
}
