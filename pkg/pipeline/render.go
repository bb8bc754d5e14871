package pipeline

import (
	"context"
	"fmt"

	"github.com/PeterMinin/grid-strategy/pkg/errors"
	"github.com/PeterMinin/grid-strategy/pkg/grid"
	"github.com/PeterMinin/grid-strategy/pkg/render"
	"github.com/PeterMinin/grid-strategy/pkg/render/canvas"
	"github.com/PeterMinin/grid-strategy/pkg/render/sink"
)

// renderAll generates output artifacts in the requested formats.
func renderAll(ctx context.Context, l grid.Layout, fig *canvas.Figure, opts Options) (map[string][]byte, error) {
	if fig == nil {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "render needs a realised figure")
	}
	style, err := sink.StyleByName(opts.Style)
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, name := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		format, err := render.ParseFormat(name)
		if err != nil {
			return nil, err
		}

		data, err := renderFormat(ctx, format, l, fig, style, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		opts.Logger.Debug("rendered artifact", "format", format, "bytes", len(data))
		artifacts[string(format)] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, format render.Format, l grid.Layout, fig *canvas.Figure, style sink.Style, opts Options) ([]byte, error) {
	switch format {
	case render.FormatSVG:
		return renderSVG(ctx, l, fig, style, opts)
	case render.FormatPNG:
		if opts.Engine == EngineGraphviz {
			svg, err := renderSVG(ctx, l, fig, style, opts)
			if err != nil {
				return nil, err
			}
			return render.ToPNG(ctx, svg, opts.Scale)
		}
		return sink.RenderPNG(ctx, fig, sink.WithScale(opts.Scale), sink.WithPNGSVGOptions(sink.WithStyle(style)))
	case render.FormatPDF:
		return sink.RenderPDF(fig, sink.WithPDFStyle(style))
	case render.FormatJSON:
		return sink.RenderJSON(fig, sink.WithJSONLayout(l), sink.WithJSONStyle(style.Name()))
	case render.FormatDOT:
		return []byte(sink.ToDOT(l, opts.Labels)), nil
	case render.FormatXLSX:
		return sink.RenderXLSX(l, opts.Labels)
	case render.FormatText:
		return []byte(sink.RenderText(l, opts.Labels, opts.TextWidth) + "\n"), nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
}

func renderSVG(ctx context.Context, l grid.Layout, fig *canvas.Figure, style sink.Style, opts Options) ([]byte, error) {
	if opts.Engine == EngineGraphviz {
		return sink.RenderDOT(ctx, sink.ToDOT(l, opts.Labels))
	}
	return sink.RenderSVG(fig, sink.WithStyle(style)), nil
}
