// Package cli implements the chaosgame command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chaosgame/pkg/buildinfo"
	"github.com/matzehuels/chaosgame/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "chaosgame"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives the human-readable summary. Defaults to os.Stdout.
	Out io.Writer

	// Err receives the spinner. It is the writer passed to New.
	Err io.Writer

	// spinner enables the progress spinner on Err.
	spinner bool
}

// New creates a new CLI instance with a default logger writing to w.
// The spinner is shown only when w is an interactive terminal.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:  newLogger(w, level),
		Out:     os.Stdout,
		Err:     w,
		spinner: isTerminal(w),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command without arguments renders the reference image.
func (c *CLI) RootCommand() *cobra.Command {
	flags := defaultRenderFlags()

	root := &cobra.Command{
		Use:   appName,
		Short: "Chaosgame renders Sierpinski-like fractals with the chaos game",
		Long: `Chaosgame draws a point-set approximation of a Sierpinski-like attractor.
Starting at the first vertex of a regular polygon, it repeatedly jumps halfway
toward a randomly chosen vertex and plots every landing point.

Run without arguments to write the reference image (3 edges, 1,000,000 points,
640x480) to fractal.png.`,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, &flags)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	flags.register(root)

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// isTerminal reports whether w is a terminal. Only *os.File can be one.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
