package sink

import (
	"encoding/json"

	"github.com/PeterMinin/grid-strategy/pkg/grid"
	"github.com/PeterMinin/grid-strategy/pkg/render/canvas"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	layout *grid.Layout
	style  string
}

// WithJSONLayout embeds the arrangement and alignment the figure was built from.
func WithJSONLayout(l grid.Layout) JSONOption { return func(r *jsonRenderer) { r.layout = &l } }

// WithJSONStyle records the style name in the JSON output.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

type jsonOutput struct {
	Width      float64      `json:"width"`
	Height     float64      `json:"height"`
	AutoLayout bool         `json:"auto_layout"`
	Title      string       `json:"title,omitempty"`
	Style      string       `json:"style,omitempty"`
	Layout     *grid.Layout `json:"layout,omitempty"`
	Axes       []jsonAxes   `json:"axes"`
}

type jsonAxes struct {
	Index  int       `json:"index"`
	Label  string    `json:"label"`
	Row    int       `json:"row"`
	Span   grid.Span `json:"span"`
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
}

// RenderJSON encodes the figure geometry as indented JSON.
func RenderJSON(fig *canvas.Figure, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:      fig.Width,
		Height:     fig.Height,
		AutoLayout: fig.AutoLayout,
		Title:      fig.Title,
		Style:      r.style,
		Layout:     r.layout,
		Axes:       make([]jsonAxes, 0, len(fig.Axes)),
	}
	for _, a := range fig.Axes {
		out.Axes = append(out.Axes, jsonAxes{
			Index:  a.Index,
			Label:  a.Label,
			Row:    a.Spec.Row,
			Span:   a.Spec.Span,
			X:      a.Rect.Left,
			Y:      a.Rect.Top,
			Width:  a.Rect.Width(),
			Height: a.Rect.Height(),
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
