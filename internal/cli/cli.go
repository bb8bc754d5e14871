// Package cli implements the gridstrategy command-line interface.
//
// # Commands
//
// The main commands are:
//   - layout: print the arrangement and placements for N subplots
//   - render: write the figure in one or more output formats
//   - preview: explore layouts interactively in the terminal
//   - serve: run the HTTP API
//   - config: print the effective configuration
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
//
// # Configuration
//
// Defaults are read from a TOML file (see package config); --config selects
// an explicit file. Flags given on the command line always win.
package cli

import (
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/PeterMinin/grid-strategy/pkg/config"
	"github.com/PeterMinin/grid-strategy/pkg/errors"
	"github.com/PeterMinin/grid-strategy/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "gridstrategy"

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

	// Config is loaded before any subcommand runs.
	Config config.Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseCount parses the subplot count argument.
func parseCount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidArgument, "subplot count must be an integer, got %q", arg)
	}
	if err := errors.ValidateCount(n); err != nil {
		return 0, err
	}
	return n, nil
}

// layoutFlags are the flags shared by every command that computes a layout.
type layoutFlags struct {
	alignment string
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.alignment, "align", "a", "", "alignment of short rows: center (default), left, right, justified")
}

// apply overrides opts with flags the user set explicitly.
func (f *layoutFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	if cmd.Flags().Changed("align") {
		opts.Alignment = f.alignment
	}
}
