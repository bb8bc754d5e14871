package grid

// Figure is an opaque handle to a backend drawing surface.
type Figure any

// SubplotSpec is an opaque handle to one subplot position on a backend.
type SubplotSpec any

// FigureOptions configures a figure requested by [GetGrid].
type FigureOptions struct {
	// AutoLayout asks the backend to keep subplots clear of each other and of
	// the figure edge (constrained layout).
	AutoLayout bool
}

// Backend creates the drawing objects a layout is realised on.
type Backend interface {
	NewFigure(opts FigureOptions) (Figure, error)
	NewGridSpec(rows, cols int, fig Figure) (GridSpec, error)
}

// GridSpec is a rows x cols grid bound to a figure.
type GridSpec interface {
	// Subplot returns the position covering cols within row.
	Subplot(row int, cols Span) (SubplotSpec, error)
}

// GetGrid lays out n subplots with s and realises each placement on b, in
// row-major order.
//
// When fig is nil a single figure is requested with AutoLayout enabled;
// otherwise fig is handed to the grid spec unchanged and no figure is
// created. Only an untyped nil asks for a new figure: a nil pointer stored
// in fig, such as (*canvas.Figure)(nil), is forwarded like any other value. Input errors are reported before the backend is touched; backend
// errors are returned as-is.
func GetGrid(s Strategy, b Backend, n int, fig Figure) ([]SubplotSpec, error) {
	layout, err := LayoutFor(s, n)
	if err != nil {
		return nil, err
	}

	if fig == nil {
		fig, err = b.NewFigure(FigureOptions{AutoLayout: true})
		if err != nil {
			return nil, err
		}
	}

	gs, err := b.NewGridSpec(layout.Dimensions.Rows, layout.Dimensions.Cols, fig)
	if err != nil {
		return nil, err
	}

	specs := make([]SubplotSpec, 0, len(layout.Placements))
	for _, p := range layout.Placements {
		spec, err := gs.Subplot(p.Row, p.Span)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
