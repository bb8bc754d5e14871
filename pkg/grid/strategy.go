package grid

// Strategy chooses how many subplots each row of a figure holds.
type Strategy interface {
	// Alignment returns how short rows are positioned.
	Alignment() Alignment
	// Arrangement returns the row plan for n subplots.
	Arrangement(n int) (Arrangement, error)
}

// SquareStrategy arranges subplots into a grid as close to square as looks
// good. See [SquareArrangement].
type SquareStrategy struct {
	alignment Alignment
}

// NewSquareStrategy returns a SquareStrategy for the named alignment.
// An empty name selects [DefaultAlignment].
func NewSquareStrategy(alignment string) (*SquareStrategy, error) {
	if alignment == "" {
		return newSquare(DefaultAlignment)
	}
	a, err := ParseAlignment(alignment)
	if err != nil {
		return nil, err
	}
	return newSquare(a)
}

func newSquare(a Alignment) (*SquareStrategy, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &SquareStrategy{alignment: a}, nil
}

// Alignment implements [Strategy].
func (s *SquareStrategy) Alignment() Alignment { return s.alignment }

// Arrangement implements [Strategy].
func (s *SquareStrategy) Arrangement(n int) (Arrangement, error) {
	return SquareArrangement(n)
}

// Layout computes the placements for n subplots.
func (s *SquareStrategy) Layout(n int) (Layout, error) {
	return LayoutFor(s, n)
}

// GetGrid realises n subplot positions on b. See [GetGrid].
func (s *SquareStrategy) GetGrid(b Backend, n int, fig Figure) ([]SubplotSpec, error) {
	return GetGrid(s, b, n, fig)
}
