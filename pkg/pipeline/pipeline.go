// Package pipeline provides the layout → realise → render pipeline shared by
// the CLI and the HTTP API.
//
// By centralizing this logic, every entry point validates options the same
// way, applies the same defaults and produces byte-identical artifacts.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Layout: compute the arrangement and placements for N subplots
//  2. Realise: create a canvas figure and add one axes per placement
//  3. Render: serialise the figure (or layout) in each requested format
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    N:         7,
//	    Alignment: "center",
//	    Formats:   []string{"svg", "json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/PeterMinin/grid-strategy/pkg/errors"
	"github.com/PeterMinin/grid-strategy/pkg/grid"
	"github.com/PeterMinin/grid-strategy/pkg/render"
	"github.com/PeterMinin/grid-strategy/pkg/render/canvas"
	"github.com/PeterMinin/grid-strategy/pkg/render/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default figure width.
	DefaultWidth = canvas.DefaultWidth

	// DefaultHeight is the default figure height.
	DefaultHeight = canvas.DefaultHeight

	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0

	// DefaultEngine draws SVG and PNG output on the canvas backend.
	DefaultEngine = EngineCanvas
)

// DefaultStyle is the default visual style.
const DefaultStyle = sink.DefaultStyle

// Rendering engines for SVG and PNG output.
const (
	// EngineCanvas draws the realised figure directly.
	EngineCanvas = "canvas"
	// EngineGraphviz lays the grid out as a Graphviz table.
	EngineGraphviz = "graphviz"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options
	N         int    `json:"n"`
	Alignment string `json:"alignment,omitempty"`

	// Figure options
	Width  float64  `json:"width,omitempty"`
	Height float64  `json:"height,omitempty"`
	Title  string   `json:"title,omitempty"`
	Labels []string `json:"labels,omitempty"` // Axes labels by index; missing entries default to the 1-based index

	// Render options
	Formats   []string `json:"formats,omitempty"`
	Style     string   `json:"style,omitempty"`
	Engine    string   `json:"engine,omitempty"`
	Scale     float64  `json:"scale,omitempty"`      // PNG only
	TextWidth int      `json:"text_width,omitempty"` // txt only

	// Runtime options (not serialized). A nil Logger is replaced by the
	// runner's logger.
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the computed placement of every subplot.
	Layout grid.Layout

	// Figure is the canvas the layout was realised on.
	Figure *canvas.Figure

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Subplots   int
	Rows       int
	Cols       int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if _, err := render.ParseFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	_, err := sink.StyleByName(style)
	return err
}

// ValidateEngine checks that a rendering engine is valid.
func ValidateEngine(engine string) error {
	switch engine {
	case EngineCanvas, EngineGraphviz:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidArgument, "invalid engine: %q (must be one of: canvas, graphviz)", engine)
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLayout checks the subplot count and alignment.
func (o *Options) ValidateForLayout() error {
	if err := errors.ValidateCount(o.N); err != nil {
		return err
	}
	if o.Alignment == "" {
		o.Alignment = grid.DefaultAlignment.String()
	}
	a, err := grid.ParseAlignment(o.Alignment)
	if err != nil {
		return err
	}
	o.Alignment = a.String()
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{string(render.FormatSVG)}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.TextWidth == 0 {
		o.TextWidth = sink.DefaultTextWidth
	}
}

// ValidateForRender validates and sets defaults for rendering.
// Format names are normalised to lower case with duplicates dropped.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := canvas.ValidateSize(o.Width, o.Height, o.Title != ""); err != nil {
		return err
	}
	formats, err := render.ParseFormats(strings.Join(o.Formats, ","))
	if err != nil {
		return err
	}
	o.Formats = o.Formats[:0:0]
	for _, f := range formats {
		o.Formats = append(o.Formats, string(f))
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	return ValidateEngine(o.Engine)
}
