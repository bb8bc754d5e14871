package canvas

import (
	"math"
	"strings"
	"testing"

	"github.com/PeterMinin/grid-strategy/pkg/errors"
	"github.com/PeterMinin/grid-strategy/pkg/grid"
)

func mustStrategy(t *testing.T, align string) *grid.SquareStrategy {
	t.Helper()
	s, err := grid.NewSquareStrategy(align)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewFigureDefaults(t *testing.T) {
	f := NewFigure(0, -5, true)
	if f.Width != DefaultWidth || f.Height != DefaultHeight {
		t.Errorf("size = %vx%v, want defaults", f.Width, f.Height)
	}
	if !f.AutoLayout {
		t.Error("AutoLayout not recorded")
	}
}

func TestBackendNewFigure(t *testing.T) {
	b := Backend{Width: 400, Height: 300, Title: "demo"}
	fig, err := b.NewFigure(grid.FigureOptions{AutoLayout: true})
	if err != nil {
		t.Fatal(err)
	}
	f, ok := fig.(*Figure)
	if !ok {
		t.Fatalf("NewFigure returned %T, want *Figure", fig)
	}
	if f.Width != 400 || f.Height != 300 || f.Title != "demo" || !f.AutoLayout {
		t.Errorf("figure = %+v", f)
	}
}

func TestBackendNewGridSpecRejectsForeignFigure(t *testing.T) {
	_, err := Backend{}.NewGridSpec(1, 1, "not a figure")
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("error = %v, want UNSUPPORTED", err)
	}
}

func TestGetGridTypedNilFigure(t *testing.T) {
	var fig *Figure
	_, err := grid.GetGrid(mustStrategy(t, "center"), Backend{}, 3, fig)
	if !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Fatalf("error = %v, want INVALID_ARGUMENT", err)
	}
	if !strings.Contains(err.Error(), "untyped nil") {
		t.Errorf("error should explain the typed nil: %v", err)
	}

	specs, err := grid.GetGrid(mustStrategy(t, "center"), Backend{}, 3, nil)
	if err != nil || len(specs) != 3 {
		t.Errorf("untyped nil figure: %d specs, error = %v", len(specs), err)
	}
}

func TestGridSpecCellBounds(t *testing.T) {
	gs, err := NewGridSpec(2, 4, NewFigure(100, 100, false))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		row     int
		span    grid.Span
		wantErr bool
	}{
		{"first cell", 0, grid.Span{Start: 0, End: 1}, false},
		{"full row", 1, grid.Span{Start: 0, End: 4}, false},
		{"row below grid", 2, grid.Span{Start: 0, End: 1}, true},
		{"negative row", -1, grid.Span{Start: 0, End: 1}, true},
		{"past right edge", 0, grid.Span{Start: 3, End: 5}, true},
		{"empty span", 0, grid.Span{Start: 2, End: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gs.Subplot(tt.row, tt.span)
			if (err != nil) != tt.wantErr {
				t.Errorf("Subplot(%d, %s) error = %v, wantErr %v", tt.row, tt.span, err, tt.wantErr)
			}
		})
	}

	if _, err := NewGridSpec(0, 3, NewFigure(1, 1, false)); err == nil {
		t.Error("NewGridSpec(0, 3) should fail")
	}
	if _, err := NewGridSpec(1, 1, nil); err == nil {
		t.Error("NewGridSpec without figure should fail")
	}
}

func TestSubplotRectTight(t *testing.T) {
	fig := NewFigure(400, 200, false)
	gs, _ := NewGridSpec(2, 4, fig)

	spec, err := gs.Cell(1, grid.Span{Start: 1, End: 3})
	if err != nil {
		t.Fatal(err)
	}
	want := Rect{Left: 100, Right: 300, Top: 100, Bottom: 200}
	if got := spec.Rect(); got != want {
		t.Errorf("Rect() = %+v, want %+v", got, want)
	}
}

func TestSubplotRectAutoLayout(t *testing.T) {
	fig := NewFigure(448, 248, true)
	gs, _ := NewGridSpec(2, 4, fig)

	spec, _ := gs.Cell(0, grid.Span{Start: 0, End: 2})
	// plot area is 400x200 starting at (24,24); half gap is 8.
	want := Rect{Left: 32, Right: 224 - 8, Top: 32, Bottom: 124 - 8}
	if got := spec.Rect(); got != want {
		t.Errorf("Rect() = %+v, want %+v", got, want)
	}

	fig.Title = "title"
	spec, _ = gs.Cell(0, grid.Span{Start: 0, End: 4})
	if got := spec.Rect(); got.Top <= TitleHeight {
		t.Errorf("title space not reserved: top = %v", got.Top)
	}
}

func TestRealize(t *testing.T) {
	for _, align := range []string{"center", "left", "right", "justified"} {
		t.Run(align, func(t *testing.T) {
			fig := NewFigure(800, 600, true)
			err := Realize(mustStrategy(t, align), fig, 8, []string{"a", "b"})
			if err != nil {
				t.Fatal(err)
			}
			if len(fig.Axes) != 8 {
				t.Fatalf("got %d axes, want 8", len(fig.Axes))
			}
			if fig.Axes[0].Label != "a" || fig.Axes[1].Label != "b" || fig.Axes[2].Label != "3" {
				t.Errorf("labels = %q %q %q", fig.Axes[0].Label, fig.Axes[1].Label, fig.Axes[2].Label)
			}
			for i, a := range fig.Axes {
				if a.Index != i {
					t.Errorf("axes %d has index %d", i, a.Index)
				}
				if a.Rect.Left < 0 || a.Rect.Right > fig.Width || a.Rect.Top < 0 || a.Rect.Bottom > fig.Height {
					t.Errorf("axes %d outside figure: %+v", i, a.Rect)
				}
				for _, b := range fig.Axes[i+1:] {
					if a.Rect.Intersects(b.Rect) {
						t.Errorf("axes %d and %d overlap", a.Index, b.Index)
					}
				}
			}
		})
	}
}

func TestRealizeErrors(t *testing.T) {
	if err := Realize(mustStrategy(t, "center"), nil, 3, nil); err == nil {
		t.Error("Realize without figure should fail")
	}
	fig := NewFigure(0, 0, true)
	if err := Realize(mustStrategy(t, "center"), fig, 0, nil); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("Realize(n=0) error = %v", err)
	}
	if len(fig.Axes) != 0 {
		t.Errorf("failed Realize added %d axes", len(fig.Axes))
	}
}

func TestGetGridCreatesCanvasFigure(t *testing.T) {
	specs, err := grid.GetGrid(mustStrategy(t, "center"), Backend{Width: 300, Height: 300}, 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	first := specs[0].(SubplotSpec)
	if !first.Grid.Figure.AutoLayout {
		t.Error("figure created by GetGrid should use AutoLayout")
	}
	for _, s := range specs[1:] {
		if s.(SubplotSpec).Grid != first.Grid {
			t.Error("all specs should share one grid spec")
		}
	}
}

func TestValidateSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		titled        bool
		wantErr       bool
	}{
		{"default", DefaultWidth, DefaultHeight, false, false},
		{"smallest", 68, 68, false, false},
		{"smallest titled", 68, 104, true, false},
		{"narrower than margins", 10, 600, false, true},
		{"shorter than margins", 800, 67, false, true},
		{"no room for title", 800, 80, true, true},
		{"nan", math.NaN(), 600, false, true},
		{"infinite", 800, math.Inf(1), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSize(tt.width, tt.height, tt.titled)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSize(%v, %v, %v) error = %v, wantErr %v", tt.width, tt.height, tt.titled, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidArgument) {
				t.Errorf("ValidateSize() code = %v, want INVALID_ARGUMENT", errors.GetCode(err))
			}
		})
	}
}

func TestGridSpecCellTooSmall(t *testing.T) {
	gs, err := NewGridSpec(4, 4, NewFigure(100, 100, true))
	if err != nil {
		t.Fatal(err)
	}
	// Each unit cell is 13 wide before the 16 unit gap.
	if _, err := gs.Cell(0, grid.Span{Start: 0, End: 1}); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("Cell() error = %v, want INVALID_ARGUMENT", err)
	}
	// Spanning two units leaves 10 x -3.
	if _, err := gs.Cell(0, grid.Span{Start: 0, End: 2}); err == nil {
		t.Error("Cell() should reject a subplot with negative height")
	}

	nan := &Figure{Width: math.NaN(), Height: 100}
	gs, _ = NewGridSpec(1, 1, nan)
	if _, err := gs.Cell(0, grid.Span{Start: 0, End: 1}); err == nil {
		t.Error("Cell() should reject a NaN-sized figure")
	}
}

func TestRealizeRejectsCrowdedFigure(t *testing.T) {
	fig := NewFigure(200, 200, true)
	err := Realize(mustStrategy(t, "center"), fig, 100, nil)
	if !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("Realize() error = %v, want INVALID_ARGUMENT", err)
	}
	if len(fig.Axes) != 0 {
		t.Errorf("failed Realize added %d axes", len(fig.Axes))
	}
}
