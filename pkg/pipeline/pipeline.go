// Package pipeline provides the chaos game pipeline for chaosgame.
//
// # Architecture
//
// The pipeline consists of three stages, run strictly in order:
//
//  1. Polygon: build the vertex set of a regular N-gon
//  2. Sample: play the chaos game over the vertex set
//  3. Render: rasterize the point cloud into the output image
//
// Each sampled point depends on the previous one, so nothing runs
// concurrently. The vertex set and point cloud live only for the duration of
// a run; neither is cached or persisted.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Output)
//
// Run individual stages:
//
//	verts, err := runner.Polygon(ctx, opts)
//	points, err := runner.Sample(ctx, verts, opts)
//	err = runner.Render(ctx, points, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jbeda/geom"

	"github.com/matzehuels/chaosgame/pkg/chaos"
	"github.com/matzehuels/chaosgame/pkg/errors"
	"github.com/matzehuels/chaosgame/pkg/plot"
	"github.com/matzehuels/chaosgame/pkg/polygon"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Config
// =============================================================================

const (
	// DefaultEdges draws a Sierpinski triangle.
	DefaultEdges = 3

	// DefaultIterations is the number of points sampled per run.
	DefaultIterations = 1_000_000

	// DefaultRadius is the circumradius of the polygon. The plot domain is
	// [-radius, radius] on both axes.
	DefaultRadius = 10000.0

	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = plot.DefaultWidth

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = plot.DefaultHeight

	// DefaultMargin is the blank border around the plot area in pixels.
	DefaultMargin = plot.DefaultMargin

	// DefaultOutput is written relative to the working directory.
	DefaultOutput = "fractal.png"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Polygon options
	Edges  int
	Radius float64

	// Sample options
	Iterations int
	Seed       uint64 // 0 draws from the non-deterministic default source

	// Render options
	Width  int
	Height int
	Margin int
	Output string

	// Runtime options
	Logger *log.Logger
	Source chaos.Source // overrides Seed when set
}

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		Edges:      DefaultEdges,
		Radius:     DefaultRadius,
		Iterations: DefaultIterations,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Margin:     DefaultMargin,
		Output:     DefaultOutput,
	}
}

// SetDefaults installs a discard logger when none is set. Every other field
// is taken as given: start from DefaultOptions for the reference values, so
// an explicit zero width or empty output is rejected by Validate instead of
// being replaced.
func (o *Options) SetDefaults() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks every option before any stage runs.
func (o *Options) Validate() error {
	if o.Edges < polygon.MinEdges {
		return errors.Wrap(errors.ErrCodeInvalidInput, polygon.ErrTooFewEdges, "invalid edge count %d", o.Edges)
	}
	if err := errors.ValidateFinitePositive("radius", o.Radius); err != nil {
		return err
	}
	if o.Iterations < 0 || o.Iterations > chaos.MaxIterations {
		return errors.New(errors.ErrCodeInvalidInput,
			"iterations must be between 0 and %d, got %d", chaos.MaxIterations, o.Iterations)
	}
	if err := errors.ValidatePositive("width", o.Width); err != nil {
		return err
	}
	if err := errors.ValidatePositive("height", o.Height); err != nil {
		return err
	}
	if o.Margin < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "margin must be non-negative, got %d", o.Margin)
	}
	if o.Width-2*o.Margin <= 0 || o.Height-2*o.Margin <= 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"margin %d leaves no plot area on a %dx%d canvas", o.Margin, o.Width, o.Height)
	}
	if err := errors.ValidateOutputPath(o.Output); err != nil {
		return err
	}
	_, err := plot.FormatFromPath(o.Output)
	return err
}

// source picks the random source for the sample stage.
func (o *Options) source() chaos.Source {
	switch {
	case o.Source != nil:
		return o.Source
	case o.Seed != 0:
		return chaos.Seeded(o.Seed)
	default:
		return chaos.Default()
	}
}

// domain is the data range shown on the plot: [-Radius, Radius] on both axes.
func (o *Options) domain() geom.Rect {
	return geom.Rect{
		Min: geom.Coord{X: -o.Radius, Y: -o.Radius},
		Max: geom.Coord{X: o.Radius, Y: o.Radius},
	}
}

// plotOptions maps the render options onto the plot package.
func (o *Options) plotOptions() []plot.Option {
	return []plot.Option{
		plot.WithSize(o.Width, o.Height),
		plot.WithMargin(o.Margin),
		plot.WithDomain(o.domain()),
	}
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a pipeline run. The point cloud itself is
// not kept; it is discarded once the image is written.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// Vertices is the polygon the chaos game jumped toward.
	Vertices []geom.Coord

	// PointCount is the number of sampled points.
	PointCount int

	// Output is the path of the written image.
	Output string

	// Stats contains timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PolygonTime time.Duration
	SampleTime  time.Duration
	RenderTime  time.Duration
}

// Total returns the wall time of all stages.
func (s Stats) Total() time.Duration {
	return s.PolygonTime + s.SampleTime + s.RenderTime
}
