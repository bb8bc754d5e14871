package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/PeterMinin/grid-strategy/pkg/grid"
	"github.com/PeterMinin/grid-strategy/pkg/observability"
	"github.com/PeterMinin/grid-strategy/pkg/render/canvas"
)

// Runner executes the pipeline.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
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

// Execute runs the complete layout → realise → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Layout
	layoutStart := time.Now()
	layout, err := r.Layout(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = layout
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Subplots = layout.N
	result.Stats.Rows = layout.Dimensions.Rows
	result.Stats.Cols = layout.Dimensions.Cols

	opts.Logger.Info("computed layout",
		"n", layout.N,
		"arrangement", layout.Arrangement,
		"grid", fmt.Sprintf("%dx%d", layout.Dimensions.Rows, layout.Dimensions.Cols),
		"duration", result.Stats.LayoutTime)

	// Stage 2: Realise
	fig, err := r.Realize(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("realize: %w", err)
	}
	result.Figure = fig

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, layout, fig, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Layout computes the placements for opts.N subplots.
func (r *Runner) Layout(ctx context.Context, opts Options) (grid.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return grid.Layout{}, err
	}
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.N, opts.Alignment)
	start := time.Now()

	s, err := grid.NewSquareStrategy(opts.Alignment)
	if err != nil {
		hooks.OnLayoutComplete(ctx, opts.N, time.Since(start), err)
		return grid.Layout{}, err
	}
	layout, err := s.Layout(opts.N)
	hooks.OnLayoutComplete(ctx, opts.N, time.Since(start), err)
	return layout, err
}

// Realize creates a canvas figure for opts and adds one axes per subplot.
func (r *Runner) Realize(ctx context.Context, opts Options) (*canvas.Figure, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s, err := grid.NewSquareStrategy(opts.Alignment)
	if err != nil {
		return nil, err
	}
	fig := canvas.NewFigure(opts.Width, opts.Height, true)
	fig.Title = opts.Title
	if err := canvas.Realize(s, fig, opts.N, opts.Labels); err != nil {
		return nil, err
	}
	return fig, nil
}

// Render generates every requested format. Cancellation is checked before
// each format.
func (r *Runner) Render(ctx context.Context, layout grid.Layout, fig *canvas.Figure, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := renderAll(ctx, layout, fig, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.logger()
	}
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.Default()
	}
	return r.Logger
}
