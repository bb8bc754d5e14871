package sink

import (
	"bytes"
	"fmt"

	"github.com/PeterMinin/grid-strategy/pkg/render/canvas"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      Style
	background string
}

// WithStyle selects the visual style (default [StyleSimple]).
func WithStyle(s Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithBackground fills the figure with a solid colour before drawing.
func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }

// RenderSVG renders every axes of fig, in draw order.
func RenderSVG(fig *canvas.Figure, opts ...SVGOption) []byte {
	r := svgRenderer{style: simpleStyle{}}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		fig.Width, fig.Height, fig.Width, fig.Height)

	r.style.RenderDefs(&buf)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			fig.Width, fig.Height, escapeXML(r.background))
	}
	if fig.Title != "" {
		renderTitle(&buf, fig)
	}
	for _, a := range fig.Axes {
		r.style.RenderAxes(&buf, a)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderTitle(buf *bytes.Buffer, fig *canvas.Figure) {
	y := canvas.TitleHeight / 2
	if fig.AutoLayout {
		y += canvas.Margin
	}
	fmt.Fprintf(buf, `  <text class="figure-title" x="%.2f" y="%.2f" font-family="Helvetica, Arial, sans-serif" font-size="20" font-weight="bold" text-anchor="middle" dominant-baseline="central" fill="%s">%s</text>`+"\n",
		fig.Width/2, y, ink.Hex(), escapeXML(fig.Title))
}
