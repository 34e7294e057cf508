package game

import (
	"iter"

	"github.com/kamstrup/intmap"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
)

//go:generate go tool stringer -type=Phase -trimprefix=Phase

// Phase is where the spawn/fall/lock cycle currently is. Paused and Over are
// tracked separately on State.
type Phase uint8

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseClearing
)

// Progress is the score-keeping part of the state.
type Progress struct {
	Score        int
	Level        int
	Lines        int
	FallInterval float64
}

// ActivePiece is the falling piece: its current orientation and the board
// position of the top-left corner of its matrix. Y may be negative.
type ActivePiece struct {
	Kind     piece.Kind
	Color    piece.Color
	Shape    piece.Shape
	X, Y     int
	Rotation int
}

func spawnPiece(p piece.Piece, boardWidth int) *ActivePiece {
	return &ActivePiece{
		Kind:  p.Kind,
		Color: p.Color,
		Shape: p.Shape.Clone(),
		X:     boardWidth/2 - p.Shape.Width()/2,
		Y:     0,
	}
}

// Move shifts the piece by (dx, dy) if the target position is free.
func (a *ActivePiece) Move(b *board.Board, dx, dy int) bool {
	if b.Collides(a.Shape, a.X+dx, a.Y+dy) {
		return false
	}
	a.X += dx
	a.Y += dy
	return true
}

// Rotate turns the piece clockwise in place. A rotation that would collide
// is rejected and the piece keeps its previous orientation.
func (a *ActivePiece) Rotate(b *board.Board) bool {
	rotated := a.Shape.RotateClockwise()
	if b.Collides(rotated, a.X, a.Y) {
		return false
	}
	a.Shape = rotated
	a.Rotation = (a.Rotation + 1) % 4
	return true
}

// DropRow returns the Y the piece would land on if dropped straight down.
func (a *ActivePiece) DropRow(b *board.Board) int {
	y := a.Y
	for !b.Collides(a.Shape, a.X, y+1) {
		y++
	}
	return y
}

// Cells yields the board coordinates (x, y) of every occupied cell.
func (a *ActivePiece) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for r, c := range a.Shape.Cells() {
			if !yield(a.X+c, a.Y+r) {
				return
			}
		}
	}
}

// State is the whole mutable game aggregate. It is owned by one Game and
// only touched from its tick.
type State struct {
	Rules     Rules
	Board     *board.Board
	Active    *ActivePiece
	Next      *piece.Piece
	Progress  Progress
	HighScore int
	Phase     Phase
	Paused    bool
	Over      bool

	fallTimer float64
	spawned   *intmap.Map[piece.Kind, int]
}

func newState(rules Rules, b *board.Board) *State {
	if b == nil {
		b = board.New(rules.Width, rules.Height)
	}
	st := &State{
		Rules:   rules,
		Board:   b,
		spawned: intmap.New[piece.Kind, int](piece.KindCount),
	}
	st.resetProgress()
	return st
}

func (st *State) resetProgress() {
	st.Progress = Progress{
		Level:        1,
		FallInterval: st.Rules.FallInterval(1),
	}
	st.Phase = PhaseSpawning
	st.fallTimer = 0
}

// reset starts a new game on an empty board. The high score survives.
func (st *State) reset() {
	st.Board = board.New(st.Rules.Width, st.Rules.Height)
	st.Active = nil
	st.Next = nil
	st.Paused = false
	st.Over = false
	st.spawned.Clear()
	st.resetProgress()
}

// award applies the score and level changes for n rows cleared by a single
// lock. It reports whether the level went up.
func (st *State) award(n int) bool {
	if n <= 0 {
		return false
	}

	p := &st.Progress
	p.Score += n * st.Rules.PointsPerLine
	p.Lines += n

	if p.Lines < p.Level*st.Rules.LinesPerLevel {
		return false
	}
	p.Level++
	p.FallInterval = st.Rules.FallInterval(p.Level)
	return true
}

// Spawned returns how many pieces of kind k were spawned this game.
func (st *State) Spawned(k piece.Kind) int {
	n, _ := st.spawned.Get(k)
	return n
}

func (st *State) countSpawn(k piece.Kind) {
	st.spawned.Put(k, st.Spawned(k)+1)
}

// result summarises the current progress.
func (st *State) result() Result {
	return Result{
		Score: st.Progress.Score,
		Level: st.Progress.Level,
		Lines: st.Progress.Lines,
	}
}
