package piece

import (
	"iter"
	"strings"
)

// Shape is the occupancy matrix of one piece orientation, indexed [row][col].
// Shapes are treated as values: operations return new matrices and never
// modify the receiver.
type Shape [][]bool

// ParseShape builds a shape from rows of '#' (occupied) and '.' (empty).
func ParseShape(rows ...string) Shape {
	shape := make(Shape, len(rows))
	for r, row := range rows {
		shape[r] = make([]bool, len(row))
		for c, ch := range row {
			shape[r][c] = ch == '#'
		}
	}
	return shape
}

// Height returns the number of rows of the bounding matrix.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the number of columns of the bounding matrix.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Square reports whether the bounding matrix is N×N.
func (s Shape) Square() bool {
	for _, row := range s {
		if len(row) != len(s) {
			return false
		}
	}
	return true
}

// Cells yields the (row, col) of every occupied cell in row-major order.
func (s Shape) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for r, row := range s {
			for c, occupied := range row {
				if !occupied {
					continue
				}
				if !yield(r, c) {
					return
				}
			}
		}
	}
}

// Count returns the number of occupied cells.
func (s Shape) Count() int {
	n := 0
	for range s.Cells() {
		n++
	}
	return n
}

// RotateClockwise returns the shape turned 90° clockwise: the transpose of
// the matrix with every resulting row reversed.
func (s Shape) RotateClockwise() Shape {
	rows, cols := s.Height(), s.Width()
	rotated := make(Shape, cols)
	for i := range rotated {
		rotated[i] = make([]bool, rows)
	}

	for r := range rows {
		for c := range cols {
			rotated[c][rows-1-r] = s[r][c]
		}
	}

	return rotated
}

// RotateCounterClockwise returns the shape turned 90° counter-clockwise.
func (s Shape) RotateCounterClockwise() Shape {
	rows, cols := s.Height(), s.Width()
	rotated := make(Shape, cols)
	for i := range rotated {
		rotated[i] = make([]bool, rows)
	}

	for r := range rows {
		for c := range cols {
			rotated[cols-1-c][r] = s[r][c]
		}
	}

	return rotated
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	for r, row := range s {
		clone[r] = make([]bool, len(row))
		copy(clone[r], row)
	}
	return clone
}

// Equal reports whether both matrices have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for r := range s {
		if len(s[r]) != len(other[r]) {
			return false
		}
		for c := range s[r] {
			if s[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// String renders the matrix with '#' and '.' separated by newlines.
func (s Shape) String() string {
	var b strings.Builder
	for r, row := range s {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, occupied := range row {
			if occupied {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
