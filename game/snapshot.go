package game

import (
	"fmt"
	"strings"

	"github.com/plus3/blockfall/piece"
)

// PieceView is a read-only copy of the active piece. GhostY is the row the
// piece would land on if hard dropped.
type PieceView struct {
	Kind   piece.Kind
	Color  piece.Color
	Shape  piece.Shape
	X, Y   int
	GhostY int
}

// Snapshot is a copy of everything a frontend draws. It does not alias the
// game's state.
type Snapshot struct {
	Width, Height int
	Cells         [][]piece.Color
	Active        *PieceView
	Next          *piece.Piece
	Progress      Progress
	HighScore     int
	Phase         Phase
	Paused        bool
	Over          bool
	Spawned       map[piece.Kind]int
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	st := g.state
	snap := Snapshot{
		Width:     st.Board.Width(),
		Height:    st.Board.Height(),
		Cells:     st.Board.Rows(),
		Progress:  st.Progress,
		HighScore: st.HighScore,
		Phase:     st.Phase,
		Paused:    st.Paused,
		Over:      st.Over,
		Spawned:   make(map[piece.Kind]int, piece.KindCount),
	}

	if a := st.Active; a != nil {
		snap.Active = &PieceView{
			Kind:   a.Kind,
			Color:  a.Color,
			Shape:  a.Shape.Clone(),
			X:      a.X,
			Y:      a.Y,
			GhostY: a.Y,
		}
		if !st.Over {
			snap.Active.GhostY = a.DropRow(st.Board)
		}
	}
	if st.Next != nil {
		next := *st.Next
		next.Shape = next.Shape.Clone()
		snap.Next = &next
	}
	for _, k := range piece.Kinds() {
		if n := st.Spawned(k); n > 0 {
			snap.Spawned[k] = n
		}
	}
	return snap
}

// Occupied returns the color at (x, y) including the active piece, or
// ColorNone.
func (s Snapshot) Occupied(x, y int) piece.Color {
	if s.activeAt(x, y) {
		return s.Active.Color
	}
	if y < 0 || y >= s.Height || x < 0 || x >= s.Width {
		return piece.ColorNone
	}
	return s.Cells[y][x]
}

// String renders the board with the active piece drawn in lowercase,
// followed by a status line.
func (s Snapshot) String() string {
	var sb strings.Builder
	for y := range s.Height {
		for x := range s.Width {
			switch {
			case s.activeAt(x, y):
				sb.WriteString(strings.ToLower(s.Active.Kind.String()))
			case s.Cells[y][x].Empty():
				sb.WriteByte('.')
			default:
				k, _ := s.Cells[y][x].Kind()
				sb.WriteString(k.String())
			}
		}
		sb.WriteByte('\n')
	}

	status := "playing"
	switch {
	case s.Over:
		status = "over"
	case s.Paused:
		status = "paused"
	}
	fmt.Fprintf(&sb, "score=%d level=%d lines=%d high=%d %s\n",
		s.Progress.Score, s.Progress.Level, s.Progress.Lines, s.HighScore, status)
	return sb.String()
}

func (s Snapshot) activeAt(x, y int) bool {
	a := s.Active
	if a == nil {
		return false
	}
	r, c := y-a.Y, x-a.X
	return r >= 0 && r < a.Shape.Height() && c >= 0 && c < a.Shape.Width() && a.Shape[r][c]
}
