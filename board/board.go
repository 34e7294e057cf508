// Package board holds the settled cells of a game and answers the collision
// questions every move, rotation and spawn depends on.
package board

import "github.com/plus3/blockfall/piece"

// Board is a fixed W×H grid of color tags indexed [row][col], row 0 at the
// top. Settled content is only ever written through Commit and removed
// through ClearFullRows.
type Board struct {
	width  int
	height int
	rows   [][]piece.Color
}

// New returns an empty board. It panics on non-positive dimensions.
func New(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic("board: dimensions must be positive")
	}

	rows := make([][]piece.Color, height)
	for y := range rows {
		rows[y] = make([]piece.Color, width)
	}

	return &Board{
		width:  width,
		height: height,
		rows:   rows,
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// At returns the cell at column x, row y. Coordinates outside the grid read
// as empty.
func (b *Board) At(x, y int) piece.Color {
	if !b.inside(x, y) {
		return piece.ColorNone
	}
	return b.rows[y][x]
}

func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Collides reports whether shape placed with its top-left corner at (x, y)
// leaves the board horizontally, reaches past the floor, or overlaps a
// settled cell. Cells above the top edge are exempt from the overlap test
// but not from the wall and floor tests, so pieces can spawn and rotate
// while partly above the visible area.
func (b *Board) Collides(shape piece.Shape, x, y int) bool {
	for r, c := range shape.Cells() {
		bx := x + c
		by := y + r

		if bx < 0 || bx >= b.width || by >= b.height {
			return true
		}

		if by >= 0 && !b.rows[by][bx].Empty() {
			return true
		}
	}

	return false
}

// Commit writes color into every occupied cell of shape at (x, y). Cells
// above the top edge are dropped. Callers check Collides first.
func (b *Board) Commit(shape piece.Shape, x, y int, color piece.Color) {
	for r, c := range shape.Cells() {
		bx := x + c
		by := y + r

		if !b.inside(bx, by) {
			continue
		}
		b.rows[by][bx] = color
	}
}

// RowFull reports whether row y has no empty cell.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	for _, cell := range b.rows[y] {
		if cell.Empty() {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row and returns how many were removed.
// Remaining rows keep their relative order and settle to the bottom; the
// same number of empty rows is inserted at the top.
func (b *Board) ClearFullRows() int {
	kept := make([][]piece.Color, 0, b.height)
	for y := range b.height {
		if !b.RowFull(y) {
			kept = append(kept, b.rows[y])
		}
	}

	cleared := b.height - len(kept)
	if cleared == 0 {
		return 0
	}

	rows := make([][]piece.Color, 0, b.height)
	for range cleared {
		rows = append(rows, make([]piece.Color, b.width))
	}
	b.rows = append(rows, kept...)

	return cleared
}

// Rows returns a deep copy of the grid, row 0 first.
func (b *Board) Rows() [][]piece.Color {
	rows := make([][]piece.Color, b.height)
	for y, row := range b.rows {
		rows[y] = make([]piece.Color, b.width)
		copy(rows[y], row)
	}
	return rows
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		width:  b.width,
		height: b.height,
		rows:   b.Rows(),
	}
}

// Filled returns the number of non-empty cells.
func (b *Board) Filled() int {
	n := 0
	for _, row := range b.rows {
		for _, cell := range row {
			if !cell.Empty() {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both boards have the same size and cells.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for y := range b.rows {
		for x := range b.rows[y] {
			if b.rows[y][x] != other.rows[y][x] {
				return false
			}
		}
	}
	return true
}
