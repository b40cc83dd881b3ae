package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jbeda/geom"

	"github.com/matzehuels/chaosgame/pkg/errors"
	"github.com/matzehuels/chaosgame/pkg/observability"
)

// Runner executes the pipeline. It holds no run state, so one Runner can
// serve several runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete polygon → sample → render pipeline.
// The context is checked between stages; an interrupted run returns an
// error wrapping ctx.Err() and writes no image.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{RunID: uuid.NewString(), Output: opts.Output}
	opts.Logger = opts.Logger.With("run", result.RunID[:8])

	// Stage 1: Polygon
	start := time.Now()
	verts, err := r.Polygon(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("polygon: %w", err)
	}
	result.Vertices = verts
	result.Stats.PolygonTime = time.Since(start)

	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	// Stage 2: Sample
	start = time.Now()
	points, err := r.Sample(ctx, verts, opts)
	if err != nil {
		return nil, fmt.Errorf("sample: %w", err)
	}
	result.PointCount = len(points)
	result.Stats.SampleTime = time.Since(start)

	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	// Stage 3: Render
	start = time.Now()
	if err := r.Render(ctx, points, opts); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Stats.RenderTime = time.Since(start)

	opts.Logger.Debug("pipeline complete", "total", result.Stats.Total())
	return result, nil
}

// Polygon builds the vertex set.
func (r *Runner) Polygon(ctx context.Context, opts Options) ([]geom.Coord, error) {
	r.applyLogger(&opts)
	hooks := observability.Pipeline()
	hooks.OnPolygonStart(ctx, opts.Edges, opts.Radius)

	start := time.Now()
	verts, err := buildPolygon(opts)
	hooks.OnPolygonComplete(ctx, len(verts), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug("built polygon",
		"edges", opts.Edges,
		"radius", opts.Radius,
		"duration", time.Since(start))
	return verts, nil
}

// Sample plays the chaos game over verts.
func (r *Runner) Sample(ctx context.Context, verts []geom.Coord, opts Options) ([]geom.Coord, error) {
	r.applyLogger(&opts)
	hooks := observability.Pipeline()
	hooks.OnSampleStart(ctx, opts.Iterations)

	start := time.Now()
	points, err := samplePoints(verts, opts)
	hooks.OnSampleComplete(ctx, len(points), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	opts.Logger.Info("sampled points",
		"points", len(points),
		"duration", time.Since(start).Round(time.Millisecond))
	return points, nil
}

// Render writes points to opts.Output.
func (r *Runner) Render(ctx context.Context, points []geom.Coord, opts Options) error {
	r.applyLogger(&opts)
	opts.SetDefaults()
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Output)

	start := time.Now()
	err := renderPoints(points, opts)
	hooks.OnRenderComplete(ctx, opts.Output, time.Since(start), err)
	if err != nil {
		return err
	}

	opts.Logger.Info("rendered image",
		"output", opts.Output,
		"size", fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"duration", time.Since(start).Round(time.Millisecond))
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeCancelled, err, "run interrupted")
	}
	return nil
}
