package grid

import (
	"math"
	"slices"

	"github.com/PeterMinin/grid-strategy/pkg/errors"
)

// Arrangement is the number of subplots in each row, top to bottom.
type Arrangement []int

// Rows returns the number of rows.
func (a Arrangement) Rows() int { return len(a) }

// MaxCols returns the length of the longest row.
func (a Arrangement) MaxCols() int {
	if len(a) == 0 {
		return 0
	}
	return slices.Max(a)
}

// Total returns the number of subplots across all rows.
func (a Arrangement) Total() int {
	var n int
	for _, k := range a {
		n += k
	}
	return n
}

// Uniform reports whether every row holds the same number of subplots.
func (a Arrangement) Uniform() bool {
	for _, k := range a {
		if k != a[0] {
			return false
		}
	}
	return true
}

func (a Arrangement) validate() error {
	if len(a) == 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "arrangement has no rows")
	}
	for i, k := range a {
		if k < 1 {
			return errors.New(errors.ErrCodeInvalidArgument, "row %d holds %d subplots, want >= 1", i, k)
		}
		if k > maxColumnUnits/2 {
			return errors.New(errors.ErrCodeInvalidArgument, "row %d holds %d subplots (max %d)", i, k, maxColumnUnits/2)
		}
	}
	return nil
}

// squareSpecialCases override the general rule where it produces a visibly
// lopsided figure.
var squareSpecialCases = map[int]Arrangement{
	3: {2, 1},
	5: {2, 3},
}

// SquareArrangement returns the row plan for n subplots that is as close to
// square as looks good. Rows never outnumber columns; rows hold either the
// full column count or one less.
func SquareArrangement(n int) (Arrangement, error) {
	if n < 1 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "subplot count must be >= 1, got %d", n)
	}
	if special, ok := squareSpecialCases[n]; ok {
		return slices.Clone(special), nil
	}

	s := ceilSqrt(n)
	var cols, rows int
	switch {
	case s*s == n:
		cols, rows = s, s
	case n <= s*(s-1):
		// s x (s-1) is still close enough to square.
		cols, rows = s, s-1
	case s%2 == 0 && n%2 == 1:
		// Odd count on an even side: widen by one so short rows can sit
		// symmetrically around a middle row.
		cols, rows = s+1, s-1
	default:
		cols, rows = s, s
	}

	if cols*rows == n {
		return repeat(rows, cols), nil
	}

	short := cols*rows - n
	full := rows - short
	if full >= short {
		return stripe(full, cols, short, cols-1), nil
	}
	return stripe(short, cols-1, full, cols), nil
}

// stripe interleaves nLess rows of length less into nMore rows of length
// more. The result is a palindrome whenever one exists (an odd total, or an
// even number of less rows); otherwise the less rows are spaced evenly.
// Requires nLess <= nMore.
func stripe(nMore, more, nLess, less int) Arrangement {
	total := nMore + nLess
	rows := repeat(total, more)
	if nLess == 0 {
		return rows
	}

	if total%2 == 0 && nLess%2 == 1 {
		for k := range nLess {
			rows[(2*k+1)*total/(2*nLess)] = less
		}
		return rows
	}

	half := total / 2
	if nLess%2 == 1 {
		rows[half] = less
	}
	pairs := nLess / 2
	for k := range pairs {
		i := (2*k + 1) * half / (2 * pairs)
		rows[i] = less
		rows[total-1-i] = less
	}
	return rows
}

func repeat(count, value int) Arrangement {
	a := make(Arrangement, count)
	for i := range a {
		a[i] = value
	}
	return a
}

// ceilSqrt returns the smallest s with s*s >= n, corrected for float error.
func ceilSqrt(n int) int {
	s := int(math.Ceil(math.Sqrt(float64(n))))
	for s*s < n {
		s++
	}
	for s > 1 && (s-1)*(s-1) >= n {
		s--
	}
	return s
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// maxColumnUnits bounds the width of a grid spec in column units.
const maxColumnUnits = 1 << 30

// lcm returns the least common multiple of values, or false once it would
// exceed maxColumnUnits.
func lcm(values []int) (int, bool) {
	l := 1
	for _, v := range values {
		m := v / gcd(l, v)
		if l > maxColumnUnits/m {
			return 0, false
		}
		l *= m
	}
	return l, true
}
