package grid

import (
	"fmt"
	"slices"
	"testing"

	"github.com/PeterMinin/grid-strategy/pkg/errors"
)

type fakeFigure struct{ name string }

type specValue struct {
	Row  int
	Span Span
	gs   *fakeGridSpec
}

type gridSpecCall struct {
	rows, cols int
	fig        Figure
}

type fakeGridSpec struct {
	rows, cols int
	subplotErr error
}

func (g *fakeGridSpec) Subplot(row int, cols Span) (SubplotSpec, error) {
	if g.subplotErr != nil {
		return nil, g.subplotErr
	}
	return specValue{Row: row, Span: cols, gs: g}, nil
}

// recordingBackend counts calls and remembers the arguments it received.
type recordingBackend struct {
	newFigure   *fakeFigure
	figureErr   error
	gridSpecErr error
	subplotErr  error

	figureCalls   []FigureOptions
	gridSpecCalls []gridSpecCall
}

func (b *recordingBackend) NewFigure(opts FigureOptions) (Figure, error) {
	b.figureCalls = append(b.figureCalls, opts)
	if b.figureErr != nil {
		return nil, b.figureErr
	}
	return b.newFigure, nil
}

func (b *recordingBackend) NewGridSpec(rows, cols int, fig Figure) (GridSpec, error) {
	b.gridSpecCalls = append(b.gridSpecCalls, gridSpecCall{rows: rows, cols: cols, fig: fig})
	if b.gridSpecErr != nil {
		return nil, b.gridSpecErr
	}
	return &fakeGridSpec{rows: rows, cols: cols, subplotErr: b.subplotErr}, nil
}

func TestNewSquareStrategy(t *testing.T) {
	tests := []struct {
		input   string
		want    Alignment
		wantErr bool
	}{
		{"", Center, false},
		{"center", Center, false},
		{"left", Left, false},
		{"Right", Right, false},
		{"justified", Justified, false},
		{"top", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, err := NewSquareStrategy(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSquareStrategy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidArgument) {
					t.Errorf("error code = %v, want INVALID_ARGUMENT", errors.GetCode(err))
				}
				return
			}
			if s.Alignment() != tt.want {
				t.Errorf("Alignment() = %s, want %s", s.Alignment(), tt.want)
			}
		})
	}
}

func TestSquareStrategyGetGrid(t *testing.T) {
	cases := []struct {
		align string
		n     int
		want  []Placement
	}{
		{"center", 1, []Placement{p(0, 0, 1)}},
		{"center", 2, []Placement{p(0, 0, 1), p(0, 1, 2)}},
		{"center", 3, []Placement{p(0, 0, 2), p(0, 2, 4), p(1, 1, 3)}},
		{"left", 3, []Placement{p(0, 0, 2), p(0, 2, 4), p(1, 0, 2)}},
		{"right", 3, []Placement{p(0, 0, 2), p(0, 2, 4), p(1, 2, 4)}},
		{"justified", 3, []Placement{p(0, 0, 1), p(0, 1, 2), p(1, 0, 2)}},
		{"center", 8, []Placement{
			p(0, 0, 2), p(0, 2, 4), p(0, 4, 6),
			p(1, 1, 3), p(1, 3, 5),
			p(2, 0, 2), p(2, 2, 4), p(2, 4, 6),
		}},
		{"left", 2, []Placement{p(0, 0, 1), p(0, 1, 2)}},
	}

	for _, tc := range cases {
		for _, figurePassed := range []bool{true, false} {
			name := fmt.Sprintf("%s/%d/figure=%v", tc.align, tc.n, figurePassed)
			t.Run(name, func(t *testing.T) {
				newFig := &fakeFigure{name: "new"}
				userFig := &fakeFigure{name: "user"}
				b := &recordingBackend{newFigure: newFig}

				var fig Figure
				if figurePassed {
					fig = userFig
				}

				s, err := NewSquareStrategy(tc.align)
				if err != nil {
					t.Fatal(err)
				}
				specs, err := s.GetGrid(b, tc.n, fig)
				if err != nil {
					t.Fatalf("GetGrid() error: %v", err)
				}

				got := make([]Placement, len(specs))
				for i, spec := range specs {
					v := spec.(specValue)
					got[i] = Placement{Row: v.Row, Span: v.Span}
				}
				if !slices.Equal(got, tc.want) {
					t.Errorf("GetGrid() = %v, want %v", got, tc.want)
				}

				if len(b.gridSpecCalls) != 1 {
					t.Fatalf("NewGridSpec called %d times, want 1", len(b.gridSpecCalls))
				}
				call := b.gridSpecCalls[0]
				if figurePassed {
					if len(b.figureCalls) != 0 {
						t.Errorf("NewFigure called %d times, want 0", len(b.figureCalls))
					}
					if call.fig != Figure(userFig) {
						t.Errorf("grid spec figure = %v, want the user figure", call.fig)
					}
				} else {
					if len(b.figureCalls) != 1 {
						t.Fatalf("NewFigure called %d times, want 1", len(b.figureCalls))
					}
					if b.figureCalls[0] != (FigureOptions{AutoLayout: true}) {
						t.Errorf("NewFigure options = %+v, want AutoLayout", b.figureCalls[0])
					}
					if call.fig != Figure(newFig) {
						t.Errorf("grid spec figure = %v, want the new figure", call.fig)
					}
				}

				layout, _ := s.Layout(tc.n)
				if call.rows != layout.Dimensions.Rows || call.cols != layout.Dimensions.Cols {
					t.Errorf("NewGridSpec(%d, %d), want (%d, %d)",
						call.rows, call.cols, layout.Dimensions.Rows, layout.Dimensions.Cols)
				}
				for _, spec := range specs {
					if spec.(specValue).gs == nil {
						t.Fatal("subplot spec not produced by the grid spec")
					}
				}
			})
		}
	}
}

func TestGetGridInvalidCountTouchesNoBackend(t *testing.T) {
	b := &recordingBackend{newFigure: &fakeFigure{}}
	s, _ := NewSquareStrategy("center")

	_, err := s.GetGrid(b, 0, nil)
	if !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Fatalf("GetGrid(0) error = %v, want INVALID_ARGUMENT", err)
	}
	if len(b.figureCalls) != 0 || len(b.gridSpecCalls) != 0 {
		t.Errorf("backend touched on invalid input: %d figures, %d grid specs",
			len(b.figureCalls), len(b.gridSpecCalls))
	}
}

func TestGetGridBackendErrorsPropagate(t *testing.T) {
	boom := fmt.Errorf("backend exploded")

	tests := []struct {
		name    string
		backend *recordingBackend
	}{
		{"figure", &recordingBackend{figureErr: boom}},
		{"grid spec", &recordingBackend{newFigure: &fakeFigure{}, gridSpecErr: boom}},
		{"subplot", &recordingBackend{newFigure: &fakeFigure{}, subplotErr: boom}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := NewSquareStrategy("left")
			specs, err := s.GetGrid(tt.backend, 3, nil)
			if err != boom {
				t.Errorf("GetGrid() error = %v, want the backend error unchanged", err)
			}
			if specs != nil {
				t.Errorf("GetGrid() returned partial result %v", specs)
			}
		})
	}
}
