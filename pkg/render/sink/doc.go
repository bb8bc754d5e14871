// Package sink serialises grid figures into output formats.
//
// Figure-based sinks take a populated [canvas.Figure]:
//
//   - [RenderSVG]: standalone SVG markup, one rectangle per axes
//   - [RenderPNG]: SVG rasterised by rsvg-convert
//   - [RenderPDF]: vector PDF drawn directly with fpdf
//   - [RenderJSON]: figure geometry plus the layout it came from
//
// Layout-based sinks only need the cell structure of a [grid.Layout]:
//
//   - [ToDOT] / [RenderDOT]: a Graphviz HTML table whose COLSPANs mirror
//     the spans, rendered to SVG with go-graphviz
//   - [RenderXLSX]: a spreadsheet with one merged cell range per subplot
//   - [RenderText]: a terminal preview drawn with lipgloss borders
//
// Visual appearance of SVG and PDF output is selected with a [Style]
// ("simple" or "outline").
package sink
