package canvas

import (
	"strconv"

	"github.com/PeterMinin/grid-strategy/pkg/errors"
	"github.com/PeterMinin/grid-strategy/pkg/grid"
)

const (
	// DefaultWidth is the default figure width in user units.
	DefaultWidth = 800.0

	// DefaultHeight is the default figure height in user units.
	DefaultHeight = 600.0

	// Margin is the inset from the figure edge under AutoLayout.
	Margin = 24.0

	// Gap is the space between neighbouring cells under AutoLayout.
	Gap = 16.0

	// TitleHeight is reserved above the grid for a figure title.
	TitleHeight = 36.0

	// MinAxesSize is the smallest width or height an axes may be drawn at.
	MinAxesSize = 4.0
)

// ValidateSize checks that a width x height figure leaves room for at least
// one axes under AutoLayout. titled reserves [TitleHeight].
func ValidateSize(width, height float64, titled bool) error {
	if err := errors.ValidateSize(width, height); err != nil {
		return err
	}
	minW := 2*Margin + Gap + MinAxesSize
	minH := minW
	if titled {
		minH += TitleHeight
	}
	if width < minW || height < minH {
		return errors.New(errors.ErrCodeInvalidArgument,
			"figure %gx%g too small (min %gx%g)", width, height, minW, minH)
	}
	return nil
}

// Figure is a drawing surface holding the axes added to it, in draw order.
type Figure struct {
	Width      float64
	Height     float64
	AutoLayout bool
	Title      string
	Axes       []*Axes
}

// NewFigure creates an empty figure. Non-positive sizes fall back to the
// defaults.
func NewFigure(width, height float64, autoLayout bool) *Figure {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Figure{Width: width, Height: height, AutoLayout: autoLayout}
}

// AddSubplot places a new axes at spec. An empty label is replaced by the
// axes' 1-based index.
func (f *Figure) AddSubplot(spec SubplotSpec, label string) *Axes {
	idx := len(f.Axes)
	if label == "" {
		label = strconv.Itoa(idx + 1)
	}
	ax := &Axes{Index: idx, Label: label, Spec: spec, Rect: spec.Rect()}
	f.Axes = append(f.Axes, ax)
	return ax
}

// plotArea returns the region the grid is laid out in.
func (f *Figure) plotArea() Rect {
	area := Rect{Left: 0, Right: f.Width, Top: 0, Bottom: f.Height}
	if !f.AutoLayout {
		return area
	}
	area.Left += Margin
	area.Right -= Margin
	area.Top += Margin
	area.Bottom -= Margin
	if f.Title != "" {
		area.Top += TitleHeight
	}
	return area
}

// Axes is one subplot placed on a figure.
type Axes struct {
	Index int
	Label string
	Spec  SubplotSpec
	Rect  Rect
}

// GridSpec divides a figure into Rows x Cols cells.
type GridSpec struct {
	Rows, Cols int
	Figure     *Figure
}

// NewGridSpec binds a rows x cols grid to fig.
func NewGridSpec(rows, cols int, fig *Figure) (*GridSpec, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "grid spec must be at least 1x1, got %dx%d", rows, cols)
	}
	if fig == nil {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "grid spec needs a figure")
	}
	return &GridSpec{Rows: rows, Cols: cols, Figure: fig}, nil
}

// Cell returns the position covering cols within row.
func (g *GridSpec) Cell(row int, cols grid.Span) (SubplotSpec, error) {
	if row < 0 || row >= g.Rows {
		return SubplotSpec{}, errors.New(errors.ErrCodeInvalidArgument, "row %d outside grid of %d rows", row, g.Rows)
	}
	if cols.Start < 0 || cols.End > g.Cols || cols.Width() < 1 {
		return SubplotSpec{}, errors.New(errors.ErrCodeInvalidArgument, "columns %s outside grid of %d columns", cols, g.Cols)
	}
	spec := SubplotSpec{Row: row, Span: cols, Grid: g}
	r := spec.Rect()
	// Negated comparisons also reject NaN.
	if !(r.Width() >= MinAxesSize) || !(r.Height() >= MinAxesSize) {
		return SubplotSpec{}, errors.New(errors.ErrCodeInvalidArgument,
			"subplot at row %d, columns %s would be %.1fx%.1f on a %gx%g figure; enlarge the figure",
			row, cols, r.Width(), r.Height(), g.Figure.Width, g.Figure.Height)
	}
	return spec, nil
}

// Subplot implements [grid.GridSpec].
func (g *GridSpec) Subplot(row int, cols grid.Span) (grid.SubplotSpec, error) {
	spec, err := g.Cell(row, cols)
	if err != nil {
		return nil, err
	}
	return spec, nil
}

// SubplotSpec is a cell range of a grid spec.
type SubplotSpec struct {
	Row  int
	Span grid.Span
	Grid *GridSpec
}

// Rect resolves the subplot position to figure coordinates.
func (s SubplotSpec) Rect() Rect {
	fig := s.Grid.Figure
	area := fig.plotArea()
	unitW := area.Width() / float64(s.Grid.Cols)
	unitH := area.Height() / float64(s.Grid.Rows)

	r := Rect{
		Left:   area.Left + float64(s.Span.Start)*unitW,
		Right:  area.Left + float64(s.Span.End)*unitW,
		Top:    area.Top + float64(s.Row)*unitH,
		Bottom: area.Top + float64(s.Row+1)*unitH,
	}
	if fig.AutoLayout {
		half := Gap / 2
		r.Left += half
		r.Right -= half
		r.Top += half
		r.Bottom -= half
	}
	return r
}

// Backend creates canvas figures. The zero value produces default-sized,
// untitled figures.
type Backend struct {
	Width  float64
	Height float64
	Title  string
}

// NewFigure implements [grid.Backend].
func (b Backend) NewFigure(opts grid.FigureOptions) (grid.Figure, error) {
	fig := NewFigure(b.Width, b.Height, opts.AutoLayout)
	fig.Title = b.Title
	return fig, nil
}

// NewGridSpec implements [grid.Backend]. fig must be a *Figure.
func (b Backend) NewGridSpec(rows, cols int, fig grid.Figure) (grid.GridSpec, error) {
	f, ok := fig.(*Figure)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupported, "canvas backend cannot draw on %T", fig)
	}
	if f == nil {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"canvas backend got a nil *canvas.Figure; pass an untyped nil to have a figure created")
	}
	gs, err := NewGridSpec(rows, cols, f)
	if err != nil {
		return nil, err
	}
	return gs, nil
}

// Realize lays out n subplots with s on fig and adds one axes per
// placement. labels[i] names the i-th axes; missing labels default to the
// index.
func Realize(s grid.Strategy, fig *Figure, n int, labels []string) error {
	if fig == nil {
		return errors.New(errors.ErrCodeInvalidArgument, "realize needs a figure")
	}
	specs, err := grid.GetGrid(s, Backend{}, n, fig)
	if err != nil {
		return err
	}
	for i, spec := range specs {
		var label string
		if i < len(labels) {
			label = labels[i]
		}
		fig.AddSubplot(spec.(SubplotSpec), label)
	}
	return nil
}
