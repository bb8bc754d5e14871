// Package canvas is an in-memory drawing backend for grid layouts.
//
// [Backend] implements [grid.Backend]: figures are plain rectangles of user
// units (pixels in SVG), grid specs divide them into rows and column units,
// and each [SubplotSpec] resolves to a [Rect]. Sinks in
// [github.com/PeterMinin/grid-strategy/pkg/render/sink] turn a populated
// [Figure] into SVG, PNG, PDF and other formats.
//
// Coordinates follow SVG conventions: the origin is the top-left corner and
// y grows downward.
//
// When a figure has AutoLayout enabled (the equivalent of a constrained
// layout), cells are inset from the figure edge by [Margin] and separated by
// [Gap]; a title, if present, reserves [TitleHeight] at the top. Without
// AutoLayout the cells tile the figure exactly.
package canvas
