package term

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
)

func newModel(t *testing.T, opts ...game.Option) (*Model, *game.Game) {
	t.Helper()
	m := New(zerolog.Nop())
	opts = append(opts, game.WithListener(m.HandleEvent))
	g, err := game.New(opts...)
	require.NoError(t, err)
	m.SetGame(g)
	return m, g
}

func TestKeysMoveThePiece(t *testing.T) {
	m, g := newModel(t, game.WithSource(piece.NewSequence(piece.KindT)))

	_, cmd := m.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd, "ticks keep coming")
	require.NotNil(t, g.Snapshot().Active)
	assert.Equal(t, 4, g.Snapshot().Active.X)

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 3, g.Snapshot().Active.X, "keys apply without waiting for the next frame")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	assert.Equal(t, 5, g.Snapshot().Active.X)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	assert.True(t, g.Paused())
}

func TestCommandFor(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want game.Command
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, game.CommandMoveRight},
		{tea.KeyMsg{Type: tea.KeyDown}, game.CommandSoftDrop},
		{tea.KeyMsg{Type: tea.KeyUp}, game.CommandRotate},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, game.CommandRestart},
	}
	for _, c := range cases {
		got, ok := keys.commandFor(c.msg)
		require.True(t, ok, c.msg.String())
		assert.Equal(t, c.want, got, c.msg.String())
	}

	_, ok := keys.commandFor(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})
	assert.False(t, ok)
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestRenderWell(t *testing.T) {
	b := board.MustParse(strings.Repeat("..........\n", 19) + "IIII..IIII")
	m, g := newModel(t, game.WithBoard(b), game.WithSource(piece.NewSequence(piece.KindO)))
	m.Update(tickMsg(time.Now()))

	rows := strings.Split(renderWell(g.Snapshot()), "\n")
	require.Len(t, rows, 20)
	assert.Equal(t, 2, strings.Count(rows[0], cellText), "active piece")
	assert.Equal(t, 2, strings.Count(rows[18], cellText), "ghost piece")
	assert.Equal(t, 10, strings.Count(rows[19], cellText), "settled row plus ghost")
	assert.Equal(t, 10, strings.Count(rows[5], strings.TrimSpace(emptyText)))
}

func TestViewShowsProgressAndBanners(t *testing.T) {
	b := board.MustParse(strings.Repeat("..........\n", 19) + "III....III")
	m, g := newModel(t, game.WithBoard(b), game.WithSource(piece.NewSequence(piece.KindI, piece.KindO)))
	m.Update(tickMsg(time.Now()))

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, 100, g.Snapshot().Progress.Score)

	view := m.View()
	assert.Contains(t, view, "SCORE")
	assert.Contains(t, view, "100")
	assert.Contains(t, view, "+1 LINE")
	assert.NotContains(t, view, "+1 LINES")
	assert.Contains(t, view, "quit")
}
