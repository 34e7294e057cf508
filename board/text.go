package board

import (
	"fmt"
	"strings"

	"github.com/plus3/blockfall/piece"
)

const emptyRune = '.'

// String renders one line per row: '.' for an empty cell, otherwise the
// letter of the piece kind the color belongs to.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for _, row := range b.rows {
		for _, cell := range row {
			sb.WriteRune(cellRune(cell))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellRune(c piece.Color) rune {
	k, ok := c.Kind()
	if !ok {
		return emptyRune
	}
	return rune(k.String()[0])
}

// Parse builds a board from the text form produced by String. Blank lines
// and surrounding whitespace are ignored; every row must have the same
// width.
func Parse(text string) (*Board, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("board: no rows")
	}

	width := len(lines[0])
	b := New(width, len(lines))
	for y, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("board: row %d has width %d, want %d", y, len(line), width)
		}
		for x, ch := range line {
			if ch == emptyRune {
				continue
			}
			k, ok := piece.ParseKind(string(ch))
			if !ok {
				return nil, fmt.Errorf("board: row %d col %d: unknown cell %q", y, x, ch)
			}
			b.rows[y][x] = k.Color()
		}
	}

	return b, nil
}

// MustParse is like Parse but panics on error. It is intended for fixtures.
func MustParse(text string) *Board {
	b, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return b
}
