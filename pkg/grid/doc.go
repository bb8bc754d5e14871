// Package grid arranges N subplots into a roughly square grid.
//
// # Overview
//
// Placing a handful of plots on one figure is mostly bookkeeping: how many
// rows, how many plots per row, and where a short row goes when N does not
// fill the grid. This package answers those questions with a small, pure
// placement algorithm and leaves drawing to a pluggable [Backend].
//
// # Arrangements
//
// An [Arrangement] lists how many subplots each row holds, top to bottom.
// [SquareArrangement] picks rows and columns close to sqrt(N) and never uses
// more rows than columns:
//
//	n=3  → (2, 1)
//	n=7  → (2, 3, 2)
//	n=8  → (3, 2, 3)
//	n=9  → (3, 3, 3)
//
// When some rows are short, they are striped through the full rows so the
// figure reads the same from the top and from the bottom.
//
// # Placements
//
// [Place] turns an arrangement into one [Placement] per subplot: a row index
// and a half-open [Span] of column units. When rows differ in length every
// slot is two units wide, so a short row can be shifted by half a slot
// without fractional arithmetic:
//
//	center, n=3:   row 0: [0,2) [2,4)    row 1:   [1,3)
//	left,   n=3:   row 0: [0,2) [2,4)    row 1: [0,2)
//	right,  n=3:   row 0: [0,2) [2,4)    row 1:       [2,4)
//
// [Justified] instead stretches every row across the full width, using the
// least common multiple of the row lengths as the column count.
//
// # Backends
//
// [GetGrid] realises a layout on a [Backend]: it creates a figure only when
// the caller did not supply one, builds exactly one grid spec sized to the
// layout's [Dimensions], and indexes it once per placement.
package grid
