// Package render provides output-format plumbing for grid figures.
//
// # Overview
//
// Figures are laid out on the in-memory [canvas] backend and serialised by
// the [sink] subpackage. This package holds what the sinks share:
//
//   - Format names and validation ([Format], [ParseFormat])
//   - SVG to PNG conversion via the external rsvg-convert tool ([ToPNG])
//
// # Format Conversion
//
// [ToPNG] shells out to rsvg-convert (from librsvg). It is only needed for
// PNG output; every other format is produced in-process.
//
//	svg := sink.RenderSVG(fig)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// Install librsvg with:
//
//	macOS:  brew install librsvg
//	Linux:  apt install librsvg2-bin
package render
