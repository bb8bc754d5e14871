package grid

import (
	"strings"

	"github.com/PeterMinin/grid-strategy/pkg/errors"
)

// Alignment controls where the subplots of a short row are placed.
type Alignment string

const (
	// Center splits the unused width evenly on both sides of a short row.
	Center Alignment = "center"
	// Left packs a short row against the left edge.
	Left Alignment = "left"
	// Right packs a short row against the right edge.
	Right Alignment = "right"
	// Justified stretches every row across the full width.
	Justified Alignment = "justified"
)

// DefaultAlignment is used when no alignment is configured.
const DefaultAlignment = Center

// Alignments returns every supported alignment in a stable order.
func Alignments() []Alignment {
	return []Alignment{Center, Left, Right, Justified}
}

// ParseAlignment converts a user-supplied name into an Alignment.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseAlignment(s string) (Alignment, error) {
	a := Alignment(strings.ToLower(strings.TrimSpace(s)))
	if err := a.Validate(); err != nil {
		return "", err
	}
	return a, nil
}

// Validate reports an INVALID_ARGUMENT error for unknown alignments.
func (a Alignment) Validate() error {
	switch a {
	case Center, Left, Right, Justified:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidArgument,
		"invalid alignment: %q (must be one of: center, left, right, justified)", string(a))
}

func (a Alignment) String() string { return string(a) }

// Next returns the alignment after a in [Alignments], wrapping around.
func (a Alignment) Next() Alignment {
	all := Alignments()
	for i, v := range all {
		if v == a {
			return all[(i+1)%len(all)]
		}
	}
	return DefaultAlignment
}

// Prev returns the alignment before a in [Alignments], wrapping around.
func (a Alignment) Prev() Alignment {
	all := Alignments()
	for i, v := range all {
		if v == a {
			return all[(i+len(all)-1)%len(all)]
		}
	}
	return DefaultAlignment
}
