package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/PeterMinin/grid-strategy/pkg/errors"
	"github.com/PeterMinin/grid-strategy/pkg/render/canvas"
)

// Style names.
const (
	StyleSimple  = "simple"
	StyleOutline = "outline"
)

// DefaultStyle is used when no style is configured.
const DefaultStyle = StyleSimple

// Style defines the visual appearance of rendered axes.
type Style interface {
	// Name returns the style's identifier.
	Name() string
	// RenderDefs writes SVG <defs> content.
	RenderDefs(buf *bytes.Buffer)
	// RenderAxes writes the SVG for one axes frame and its label.
	RenderAxes(buf *bytes.Buffer, a *canvas.Axes)
	// Fill returns the fill colour for the i-th axes; ok is false for no fill.
	Fill(i int) (c RGB, ok bool)
	// Stroke returns the frame colour and whether the frame is dashed.
	Stroke() (c RGB, dashed bool)
}

// RGB is an 8-bit colour.
type RGB struct{ R, G, B int }

// Hex returns the colour as #rrggbb.
func (c RGB) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// palette mirrors common categorical plot colours.
var palette = []RGB{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// PaletteColor returns the palette entry for index i, cycling.
func PaletteColor(i int) RGB { return palette[i%len(palette)] }

var ink = RGB{R: 51, G: 51, B: 51}

// StyleByName returns the named style.
func StyleByName(name string) (Style, error) {
	switch name {
	case "", StyleSimple:
		return simpleStyle{}, nil
	case StyleOutline:
		return outlineStyle{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: simple, outline)", name)
}

type simpleStyle struct{}

func (simpleStyle) Name() string { return StyleSimple }

func (simpleStyle) Fill(i int) (RGB, bool) { return PaletteColor(i), true }

func (simpleStyle) Stroke() (RGB, bool) { return ink, false }

func (simpleStyle) RenderDefs(buf *bytes.Buffer) {}

func (s simpleStyle) RenderAxes(buf *bytes.Buffer, a *canvas.Axes) {
	fill, _ := s.Fill(a.Index)
	r := a.Rect
	fmt.Fprintf(buf, `  <rect id="axes-%d" class="axes" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="4" fill="%s" fill-opacity="0.35" stroke="%s" stroke-width="1.5"/>`+"\n",
		a.Index, r.Left, r.Top, r.Width(), r.Height(), fill.Hex(), ink.Hex())
	renderLabel(buf, a)
}

type outlineStyle struct{}

func (outlineStyle) Name() string { return StyleOutline }

func (outlineStyle) Fill(int) (RGB, bool) { return RGB{}, false }

func (outlineStyle) Stroke() (RGB, bool) { return ink, true }

func (outlineStyle) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs><style>.axes { stroke-dasharray: 6 4; }</style></defs>` + "\n")
}

func (outlineStyle) RenderAxes(buf *bytes.Buffer, a *canvas.Axes) {
	r := a.Rect
	fmt.Fprintf(buf, `  <rect id="axes-%d" class="axes" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n",
		a.Index, r.Left, r.Top, r.Width(), r.Height(), ink.Hex())
	renderLabel(buf, a)
}

func renderLabel(buf *bytes.Buffer, a *canvas.Axes) {
	r := a.Rect
	size := FontSize(r, a.Label)
	fmt.Fprintf(buf, `  <text class="axes-label" x="%.2f" y="%.2f" font-family="Helvetica, Arial, sans-serif" font-size="%.1f" text-anchor="middle" dominant-baseline="central" fill="%s">%s</text>`+"\n",
		r.CenterX(), r.CenterY(), size, ink.Hex(), escapeXML(a.Label))
}

const (
	fontHeightRatio = 0.3
	fontWidthRatio  = 0.85
	fontCharWidth   = 0.55
	fontSizeMin     = 8.0
	fontSizeMax     = 48.0
)

// FontSize picks a label size that fits inside r.
func FontSize(r canvas.Rect, label string) float64 {
	n := max(1, len(label))
	byHeight := r.Height() * fontHeightRatio
	byWidth := (r.Width() * fontWidthRatio) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byHeight, byWidth)))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
