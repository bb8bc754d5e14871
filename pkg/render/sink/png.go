package sink

import (
	"context"

	"github.com/PeterMinin/grid-strategy/pkg/render"
	"github.com/PeterMinin/grid-strategy/pkg/render/canvas"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithPNGSVGOptions passes options through to the underlying SVG renderer.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG renders the figure as PNG via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, fig *canvas.Figure, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	// rsvg-convert has no background by default; PNG viewers show black.
	svgOpts := append([]SVGOption{WithBackground("white")}, r.svgOpts...)
	svg := RenderSVG(fig, svgOpts...)
	return render.ToPNG(ctx, svg, r.scale)
}
