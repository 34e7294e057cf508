package board_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
)

func allOrientations() map[string]piece.Shape {
	shapes := make(map[string]piece.Shape)
	for _, p := range piece.Catalog() {
		shape := p.Shape
		for rot := range 4 {
			shapes[fmt.Sprintf("%s/%d", p.Kind, rot)] = shape
			shape = shape.RotateClockwise()
		}
	}
	return shapes
}

func TestNew(t *testing.T) {
	b := board.New(10, 20)
	assert.Equal(t, 10, b.Width())
	assert.Equal(t, 20, b.Height())
	assert.Zero(t, b.Filled())

	assert.Panics(t, func() { board.New(0, 20) })
	assert.Panics(t, func() { board.New(10, -1) })
}

func TestCollidesBoundaryContainment(t *testing.T) {
	b := board.New(10, 20)

	for name, shape := range allOrientations() {
		for x := -5; x < b.Width()+5; x++ {
			for y := -5; y < b.Height()+5; y++ {
				if b.Collides(shape, x, y) {
					continue
				}
				for r, c := range shape.Cells() {
					bx, by := x+c, y+r
					require.Truef(t, bx >= 0 && bx < b.Width(), "%s at (%d,%d): column %d escaped", name, x, y, bx)
					require.Lessf(t, by, b.Height(), "%s at (%d,%d): row %d below floor", name, x, y, by)
				}
			}
		}
	}
}

func TestCollides(t *testing.T) {
	b := board.MustParse(`
		..........
		..........
		..........
		.....O....
	`)
	tee := piece.Lookup(piece.KindT).Shape

	t.Run("free space", func(t *testing.T) {
		assert.False(t, b.Collides(tee, 0, 0))
	})

	t.Run("left wall", func(t *testing.T) {
		assert.True(t, b.Collides(tee, -1, 0))
	})

	t.Run("right wall", func(t *testing.T) {
		assert.False(t, b.Collides(tee, 7, 0))
		assert.True(t, b.Collides(tee, 8, 0))
	})

	t.Run("floor", func(t *testing.T) {
		assert.False(t, b.Collides(tee, 0, 2))
		assert.True(t, b.Collides(tee, 0, 3))
	})

	t.Run("settled cell", func(t *testing.T) {
		assert.True(t, b.Collides(tee, 4, 2))
		assert.False(t, b.Collides(tee, 0, 2))
	})

	t.Run("empty rows of the matrix are ignored", func(t *testing.T) {
		// The bottom row of the T matrix is empty, so it may hang below the floor.
		assert.False(t, b.Collides(tee, 0, 2))
	})
}

func TestCollidesAboveBoard(t *testing.T) {
	b := board.MustParse(`
		IIIIIIIIII
		..........
		..........
	`)
	vertical := piece.Lookup(piece.KindI).Shape.RotateClockwise() // occupies column 2

	assert.False(t, b.Collides(vertical, 0, -4), "cells above the board skip the overlap test")
	assert.True(t, b.Collides(vertical, 0, -3), "the lowest cell reaches row 0")
	assert.True(t, b.Collides(vertical, -3, -4), "walls still apply above the board")
	assert.True(t, b.Collides(vertical, 8, -4), "walls still apply above the board")
}

func TestCommit(t *testing.T) {
	t.Run("only target cells change", func(t *testing.T) {
		b := board.MustParse(`
			..........
			..........
			..........
			Z........Z
		`)
		before := b.Clone()
		shape := piece.Lookup(piece.KindS).Shape

		require.False(t, b.Collides(shape, 3, 2))
		b.Commit(shape, 3, 2, piece.ColorGreen)

		targets := map[[2]int]bool{}
		for r, c := range shape.Cells() {
			targets[[2]int{3 + c, 2 + r}] = true
		}

		for y := range b.Height() {
			for x := range b.Width() {
				if targets[[2]int{x, y}] {
					assert.Equal(t, piece.ColorGreen, b.At(x, y), "(%d,%d)", x, y)
				} else {
					assert.Equal(t, before.At(x, y), b.At(x, y), "(%d,%d)", x, y)
				}
			}
		}
	})

	t.Run("rows above the board are skipped", func(t *testing.T) {
		b := board.New(10, 4)
		shape := piece.Lookup(piece.KindT).Shape

		require.False(t, b.Collides(shape, 0, -1))
		b.Commit(shape, 0, -1, piece.ColorPurple)

		assert.Equal(t, 3, b.Filled())
		assert.Equal(t, "TTT.......\n..........\n..........\n..........\n", b.String())
	})
}

func TestClearFullRows(t *testing.T) {
	t.Run("no full rows", func(t *testing.T) {
		b := board.MustParse(`
			..........
			IIIII.IIII
		`)
		before := b.Clone()
		assert.Zero(t, b.ClearFullRows())
		assert.True(t, before.Equal(b))
	})

	t.Run("non-contiguous rows 2, 5 and 7", func(t *testing.T) {
		full := map[int]bool{2: true, 5: true, 7: true}

		var sb strings.Builder
		for y := range 20 {
			row := []byte("..........")
			if full[y] {
				row = []byte("JJJJJJJJJJ")
			} else {
				row[y%10] = 'L'
				if y%3 == 0 {
					row[(y+4)%10] = 'S'
				}
			}
			sb.Write(row)
			sb.WriteByte('\n')
		}

		b := board.MustParse(sb.String())
		before := b.Rows()

		require.Equal(t, 3, b.ClearFullRows())
		after := b.Rows()

		for y := range 3 {
			for x := range 10 {
				assert.True(t, after[y][x].Empty(), "row %d must be empty", y)
			}
		}

		next := 3
		for y := range 20 {
			if full[y] {
				continue
			}
			assert.Equal(t, before[y], after[next], "row %d should land on %d", y, next)
			next++
		}
		assert.Equal(t, 20, next)

		for y := range 20 {
			assert.False(t, b.RowFull(y))
		}
	})

	t.Run("everything full", func(t *testing.T) {
		b := board.MustParse(`
			OOOO
			OOOO
		`)
		assert.Equal(t, 2, b.ClearFullRows())
		assert.Zero(t, b.Filled())
	})
}

func TestParse(t *testing.T) {
	_, err := board.Parse("")
	assert.Error(t, err)

	_, err = board.Parse("...\n....")
	assert.ErrorContains(t, err, "width")

	_, err = board.Parse("..X")
	assert.ErrorContains(t, err, "unknown cell")

	text := "..T.\nIIII\n"
	b, err := board.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, text, b.String())
	assert.Equal(t, piece.ColorPurple, b.At(2, 0))
	assert.Equal(t, piece.ColorNone, b.At(-1, 0))
	assert.Equal(t, piece.ColorNone, b.At(0, 9))
}

func TestRowsAreCopies(t *testing.T) {
	b := board.New(4, 2)
	rows := b.Rows()
	rows[0][0] = piece.ColorRed
	assert.True(t, b.At(0, 0).Empty())

	clone := b.Clone()
	clone.Commit(piece.ParseShape("#"), 0, 0, piece.ColorRed)
	assert.True(t, b.At(0, 0).Empty())
	assert.False(t, b.Equal(clone))
	assert.False(t, b.Equal(nil))
}

func TestGoldenCommitAndClear(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	b := board.New(10, 6)
	place := func(k piece.Kind, x, y int) {
		p := piece.Lookup(k)
		require.False(t, b.Collides(p.Shape, x, y), "%s at (%d,%d)", k, x, y)
		b.Commit(p.Shape, x, y, p.Color)
	}

	place(piece.KindI, 0, 4)
	place(piece.KindO, 4, 4)
	place(piece.KindI, 6, 4)
	place(piece.KindT, 0, 3)
	g.Assert(t, "before_clear", []byte(b.String()))

	require.Equal(t, 1, b.ClearFullRows())
	g.Assert(t, "after_clear", []byte(b.String()))
}

func ExampleBoard_ClearFullRows() {
	b := board.MustParse(`
		....
		.Z..
		IIII
		ZZ.Z
	`)
	fmt.Println(b.ClearFullRows())
	fmt.Print(b)
	// Output:
	// 1
	// ....
	// ....
	// .Z..
	// ZZ.Z
}
