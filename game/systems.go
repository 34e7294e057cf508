package game

import (
	"github.com/rs/zerolog"

	"github.com/plus3/blockfall/piece"
)

// SpawnSystem puts the next piece on the board whenever the state is in
// PhaseSpawning. A spawn that collides ends the game.
type SpawnSystem struct {
	Source piece.Source
	Keeper ScoreKeeper
	Logger zerolog.Logger
}

func (s *SpawnSystem) Execute(frame *Frame) {
	st := frame.State
	if st.Over || st.Paused || st.Phase != PhaseSpawning {
		return
	}

	if st.Next == nil {
		first := s.Source.Draw()
		st.Next = &first
	}
	current := *st.Next
	next := s.Source.Draw()
	st.Next = &next

	active := spawnPiece(current, st.Board.Width())
	st.Active = active
	st.fallTimer = 0

	if st.Board.Collides(active.Shape, active.X, active.Y) {
		s.gameOver(frame)
		return
	}

	st.countSpawn(active.Kind)
	st.Phase = PhaseFalling

	s.Logger.Debug().
		Stringer("kind", active.Kind).
		Stringer("next", next.Kind).
		Int("x", active.X).
		Msg("spawned piece")
}

func (s *SpawnSystem) gameOver(frame *Frame) {
	st := frame.State
	st.Over = true
	result := st.result()

	beaten := result.Score > st.HighScore
	if beaten {
		st.HighScore = result.Score
	}

	s.Logger.Info().
		Int("score", result.Score).
		Int("level", result.Level).
		Int("lines", result.Lines).
		Bool("high_score", beaten).
		Msg("game over")

	keeper := s.Keeper
	if keeper == nil {
		keeper = noKeeper{}
	}
	logger := s.Logger
	frame.Commands.Defer(func() {
		if beaten {
			if err := keeper.SaveHighScore(result.Score); err != nil {
				logger.Warn().Err(err).Int("score", result.Score).Msg("failed to save high score")
			}
		}
		if recorder, ok := keeper.(ResultRecorder); ok {
			if err := recorder.RecordResult(result); err != nil {
				logger.Warn().Err(err).Msg("failed to record result")
			}
		}
	})

	frame.Commands.Emit(Event{Kind: EventGameOver, Result: result, Level: result.Level})
}

// InputSystem applies queued player commands in arrival order.
type InputSystem struct {
	Logger zerolog.Logger
}

func (s *InputSystem) Execute(frame *Frame) {
	st := frame.State

	for _, cmd := range frame.Commands.drain() {
		switch {
		case cmd == CommandRestart:
			wasPaused := st.Paused
			st.reset()
			s.Logger.Debug().Msg("restarted")
			if wasPaused {
				frame.Commands.Emit(Event{Kind: EventResumed})
			}
			frame.Commands.Emit(Event{Kind: EventRestarted})

		case cmd == CommandTogglePause:
			if st.Over {
				continue
			}
			st.Paused = !st.Paused
			if st.Paused {
				frame.Commands.Emit(Event{Kind: EventPaused})
			} else {
				frame.Commands.Emit(Event{Kind: EventResumed})
			}

		case cmd.moves():
			if st.Over || st.Paused || st.Phase != PhaseFalling || st.Active == nil {
				continue
			}
			s.move(st, cmd)
		}
	}
}

func (s *InputSystem) move(st *State, cmd Command) {
	active := st.Active
	switch cmd {
	case CommandMoveLeft:
		active.Move(st.Board, -1, 0)
	case CommandMoveRight:
		active.Move(st.Board, 1, 0)
	case CommandRotate:
		active.Rotate(st.Board)
	case CommandSoftDrop:
		if !active.Move(st.Board, 0, 1) {
			st.Phase = PhaseLocking
		}
	case CommandHardDrop:
		active.Y = active.DropRow(st.Board)
		st.Phase = PhaseLocking
	}
}

// GravitySystem moves the active piece down one row each time the
// accumulated delta time reaches the fall interval. At most one row per tick.
type GravitySystem struct{}

func (s *GravitySystem) Execute(frame *Frame) {
	st := frame.State
	if st.Over || st.Paused || st.Phase != PhaseFalling || st.Active == nil {
		return
	}

	st.fallTimer += frame.DeltaTime
	if st.fallTimer < st.Progress.FallInterval {
		return
	}
	st.fallTimer = 0

	if !st.Active.Move(st.Board, 0, 1) {
		st.Phase = PhaseLocking
	}
}

// LockSystem commits a piece that can no longer fall, clears full rows and
// updates score, lines and level.
type LockSystem struct {
	Logger zerolog.Logger
}

func (s *LockSystem) Execute(frame *Frame) {
	st := frame.State
	if st.Over || st.Paused || st.Phase != PhaseLocking || st.Active == nil {
		return
	}

	active := st.Active
	st.Board.Commit(active.Shape, active.X, active.Y, active.Color)
	st.Active = nil
	frame.Commands.Emit(Event{Kind: EventLanded})

	st.Phase = PhaseClearing
	n := st.Board.ClearFullRows()
	if n > 0 {
		frame.Commands.Emit(Event{Kind: EventLinesCleared, Lines: n})
	}

	s.Logger.Debug().
		Stringer("kind", active.Kind).
		Int("x", active.X).
		Int("y", active.Y).
		Int("cleared", n).
		Msg("locked piece")

	if st.award(n) {
		s.Logger.Info().
			Int("level", st.Progress.Level).
			Float64("interval", st.Progress.FallInterval).
			Msg("level up")
		frame.Commands.Emit(Event{Kind: EventLevelUp, Level: st.Progress.Level})
	}

	st.Phase = PhaseSpawning
}
