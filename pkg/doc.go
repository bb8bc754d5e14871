// Package pkg provides the libraries behind gridstrategy, which lays out N
// subplots on a roughly square grid.
//
// # Overview
//
// A figure with N subplots is arranged in rows of nearly equal length. When
// the rows differ in length, the short rows are aligned to the center, the
// left or the right edge, or stretched across the full width (justified).
// The packages are organized into three areas:
//
//  1. [grid] - Layout logic (row arrangement, column spans, backend adapter)
//  2. [render] - Drawing (figure geometry, output sinks, format handling)
//  3. [pipeline] - Orchestration (layout → realize → render)
//
// # Architecture
//
// The typical data flow:
//
//	N, alignment
//	     ↓
//	[grid] package (arrangement + placements)
//	     ↓
//	[render/canvas] package (figure and axes geometry)
//	     ↓
//	[render/sink] package (SVG, PNG, PDF, JSON, DOT, XLSX, text)
//
// # Quick Start
//
// Compute where each subplot goes:
//
//	import "github.com/PeterMinin/grid-strategy/pkg/grid"
//
//	s, err := grid.NewSquareStrategy("center")
//	if err != nil {
//	    return err
//	}
//	layout, err := s.Layout(5)
//	// layout.Arrangement == [2 3]
//	// layout.Placements[0] == (0, [1,3))
//
// Render a figure end to end:
//
//	import "github.com/PeterMinin/grid-strategy/pkg/pipeline"
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    N:       7,
//	    Formats: []string{"svg", "pdf"},
//	})
//	svg := result.Artifacts["svg"]
//
// # Backends
//
// [grid.GetGrid] hands the computed layout to any plotting backend that can
// create a figure, a grid spec of a given shape and a subplot spanning a
// row and a column range. [render/canvas] is the built-in backend.
//
// # Supporting Packages
//
// [config] loads user defaults from TOML, [errors] defines the error codes
// shared by the CLI and HTTP API, [observability] exposes lifecycle hooks and
// [buildinfo] carries version metadata.
//
// [grid]: https://pkg.go.dev/github.com/PeterMinin/grid-strategy/pkg/grid
// [grid.GetGrid]: https://pkg.go.dev/github.com/PeterMinin/grid-strategy/pkg/grid#GetGrid
// [render]: https://pkg.go.dev/github.com/PeterMinin/grid-strategy/pkg/render
// [render/canvas]: https://pkg.go.dev/github.com/PeterMinin/grid-strategy/pkg/render/canvas
// [render/sink]: https://pkg.go.dev/github.com/PeterMinin/grid-strategy/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/PeterMinin/grid-strategy/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/PeterMinin/grid-strategy/pkg/config
// [errors]: https://pkg.go.dev/github.com/PeterMinin/grid-strategy/pkg/errors
// [observability]: https://pkg.go.dev/github.com/PeterMinin/grid-strategy/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/PeterMinin/grid-strategy/pkg/buildinfo
package pkg
