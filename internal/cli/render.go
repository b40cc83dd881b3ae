package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chaosgame/pkg/config"
	"github.com/matzehuels/chaosgame/pkg/pipeline"
)

// renderFlags holds flag values for rendering. Only flags the user actually
// set override the configuration file.
type renderFlags struct {
	config     string
	edges      int
	iterations int
	radius     float64
	width      int
	height     int
	margin     int
	output     string
	seed       uint64
}

// defaultRenderFlags returns flags preset to the reference values so that
// --help shows them.
func defaultRenderFlags() renderFlags {
	d := pipeline.DefaultOptions()
	return renderFlags{
		edges:      d.Edges,
		iterations: d.Iterations,
		radius:     d.Radius,
		width:      d.Width,
		height:     d.Height,
		margin:     d.Margin,
		output:     d.Output,
	}
}

// register adds the render flags to cmd.
func (f *renderFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.config, "config", "c", "", "TOML configuration file")
	fs.IntVarP(&f.edges, "edges", "n", f.edges, "number of polygon edges (at least 3)")
	fs.IntVarP(&f.iterations, "iterations", "i", f.iterations, "number of points to sample")
	fs.Float64VarP(&f.radius, "radius", "r", f.radius, "polygon circumradius; the plot spans [-radius, radius]")
	fs.IntVar(&f.width, "width", f.width, "image width in pixels")
	fs.IntVar(&f.height, "height", f.height, "image height in pixels")
	fs.IntVar(&f.margin, "margin", f.margin, "blank border around the plot in pixels")
	fs.StringVarP(&f.output, "output", "o", f.output, "output file (.png, .jpg, .bmp, .tif)")
	fs.Uint64Var(&f.seed, "seed", 0, "seed for a reproducible run (0 picks a random sequence)")

	_ = cmd.MarkFlagFilename("config", "toml")
	_ = cmd.MarkFlagFilename("output", "png", "jpg", "jpeg", "bmp", "tif", "tiff")
}

// options resolves pipeline options with precedence flags > file > defaults.
func (f *renderFlags) options(cmd *cobra.Command) (pipeline.Options, error) {
	cfg := config.Default()
	if f.config != "" {
		loaded, err := config.Load(f.config)
		if err != nil {
			return pipeline.Options{}, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("edges") {
		cfg.Edges = f.edges
	}
	if changed("iterations") {
		cfg.Iterations = f.iterations
	}
	if changed("radius") {
		cfg.Radius = f.radius
	}
	if changed("width") {
		cfg.Canvas.Width = f.width
	}
	if changed("height") {
		cfg.Canvas.Height = f.height
	}
	if changed("margin") {
		cfg.Canvas.Margin = f.margin
	}
	if changed("output") {
		cfg.Output = f.output
	}
	if changed("seed") {
		cfg.Seed = f.seed
	}
	return cfg.Options(), nil
}

// renderCommand creates the render command. It behaves exactly like the
// root command and exists for scripts that prefer an explicit verb.
func (c *CLI) renderCommand() *cobra.Command {
	flags := defaultRenderFlags()

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chaos game fractal to an image file",
		Long: `Render builds a regular polygon, plays the chaos game over its vertices,
and plots every sampled point onto a white canvas with a light grid.

Settings come from the reference defaults, then the --config file, then flags.`,
		Example: `  # Reference Sierpinski triangle
  chaosgame render

  # Pentagon with two million points as a TIFF
  chaosgame render -n 5 -i 2000000 -o pentagon.tif

  # Reproducible run from a config file
  chaosgame render --config fractal.toml --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, &flags)
		},
	}

	flags.register(cmd)
	return cmd
}

// runRender executes the pipeline and prints a summary.
func (c *CLI) runRender(cmd *cobra.Command, flags *renderFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	opts, err := flags.options(cmd)
	if err != nil {
		return err
	}
	opts.Logger = logger

	logger.Debug("resolved options",
		"edges", opts.Edges,
		"iterations", opts.Iterations,
		"radius", opts.Radius,
		"size", fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"output", opts.Output)

	var spinner *Spinner
	if c.spinner && logger.GetLevel() > log.DebugLevel {
		spinner = newSpinnerWithContext(ctx, c.Err, fmt.Sprintf("Sampling %d points...", opts.Iterations))
		spinner.Start()
	}

	prog := newProgress(logger)
	result, err := c.newRunner().Execute(ctx, opts)
	if spinner != nil {
		switch {
		case err == nil, spinner.Cancelled():
			spinner.Stop()
		default:
			spinner.StopWithError("Render failed")
		}
	}
	if err != nil {
		return err
	}
	prog.done("Rendered " + result.Output)

	c.printResult(result, opts)
	return nil
}

// printResult writes the human-readable run summary to c.Out.
func (c *CLI) printResult(result *pipeline.Result, opts pipeline.Options) {
	printSuccess(c.Out, "Rendered %d-gon chaos game", len(result.Vertices))
	printFile(c.Out, result.Output)
	printStats(c.Out,
		fmt.Sprintf("%d edges", len(result.Vertices)),
		fmt.Sprintf("%d points", result.PointCount),
		fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		result.Stats.Total().Round(time.Millisecond).String())
	printKeyValue(c.Out, "Run", StyleNumber.Render(result.RunID))
	if opts.Seed != 0 {
		printKeyValue(c.Out, "Seed", StyleNumber.Render(strconv.FormatUint(opts.Seed, 10)))
	}
}
