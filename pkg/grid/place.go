package grid

import (
	"fmt"

	"github.com/PeterMinin/grid-strategy/pkg/errors"
)

// Span is a half-open interval [Start, End) of column units within a row.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Width returns the number of column units covered.
func (s Span) Width() int { return s.End - s.Start }

// Overlaps reports whether s and o share at least one column unit.
func (s Span) Overlaps(o Span) bool { return s.Start < o.End && o.Start < s.End }

func (s Span) String() string { return fmt.Sprintf("[%d,%d)", s.Start, s.End) }

// Placement is the position of one subplot: a row and the columns it spans.
type Placement struct {
	Row  int  `json:"row"`
	Span Span `json:"span"`
}

func (p Placement) String() string { return fmt.Sprintf("(%d, %s)", p.Row, p.Span) }

// Dimensions is the size of the grid spec a layout is drawn on, in rows and
// column units.
type Dimensions struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Layout is the complete result of a placement computation.
type Layout struct {
	N           int         `json:"n"`
	Alignment   Alignment   `json:"alignment"`
	Arrangement Arrangement `json:"arrangement"`
	Dimensions  Dimensions  `json:"dimensions"`
	Placements  []Placement `json:"placements"`
}

// Compute lays out n subplots on a square grid with the given alignment.
func Compute(n int, alignment Alignment) (Layout, error) {
	s, err := newSquare(alignment)
	if err != nil {
		return Layout{}, err
	}
	return LayoutFor(s, n)
}

// LayoutFor lays out n subplots using the arrangement chosen by s.
func LayoutFor(s Strategy, n int) (Layout, error) {
	if n < 1 {
		return Layout{}, errors.New(errors.ErrCodeInvalidArgument, "subplot count must be >= 1, got %d", n)
	}
	arr, err := s.Arrangement(n)
	if err != nil {
		return Layout{}, err
	}
	dims, placements, err := Place(arr, s.Alignment())
	if err != nil {
		return Layout{}, err
	}
	return Layout{
		N:           n,
		Alignment:   s.Alignment(),
		Arrangement: arr,
		Dimensions:  dims,
		Placements:  placements,
	}, nil
}

// Place assigns a row and column span to every slot of arr, row-major.
func Place(arr Arrangement, alignment Alignment) (Dimensions, []Placement, error) {
	if err := alignment.Validate(); err != nil {
		return Dimensions{}, nil, err
	}
	if err := arr.validate(); err != nil {
		return Dimensions{}, nil, err
	}
	if alignment == Justified {
		return placeJustified(arr)
	}
	return placeRagged(arr, alignment)
}

func placeJustified(arr Arrangement) (Dimensions, []Placement, error) {
	units, ok := lcm(arr)
	if !ok {
		return Dimensions{}, nil, errors.New(errors.ErrCodeInvalidArgument,
			"justified rows %v need more than %d column units", []int(arr), maxColumnUnits)
	}
	placements := make([]Placement, 0, arr.Total())
	for r, k := range arr {
		w := units / k
		for c := range k {
			placements = append(placements, Placement{Row: r, Span: Span{Start: c * w, End: (c + 1) * w}})
		}
	}
	return Dimensions{Rows: arr.Rows(), Cols: units}, placements, nil
}

func placeRagged(arr Arrangement, alignment Alignment) (Dimensions, []Placement, error) {
	// Double-width slots leave room for half-slot offsets on short rows.
	unit := 2
	if arr.Uniform() {
		unit = 1
	}
	maxCols := arr.MaxCols()

	placements := make([]Placement, 0, arr.Total())
	for r, k := range arr {
		missing := (maxCols - k) * unit
		var skip int
		switch alignment {
		case Left:
			skip = 0
		case Right:
			skip = missing
		default:
			skip = missing / 2
		}
		for c := range k {
			start := skip + c*unit
			placements = append(placements, Placement{Row: r, Span: Span{Start: start, End: start + unit}})
		}
	}
	return Dimensions{Rows: arr.Rows(), Cols: maxCols * unit}, placements, nil
}
