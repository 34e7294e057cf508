package term

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plus3/blockfall/game"
)

type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	Down    key.Binding
	Rotate  key.Binding
	Drop    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Left:    key.NewBinding(key.WithKeys("left", "h", "a"), key.WithHelp("←", "left")),
	Right:   key.NewBinding(key.WithKeys("right", "l", "d"), key.WithHelp("→", "right")),
	Down:    key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓", "soft drop")),
	Rotate:  key.NewBinding(key.WithKeys("up", "k", "w", "x"), key.WithHelp("↑", "rotate")),
	Drop:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "drop")),
	Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
	Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.Drop, k.Pause, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Down, k.Rotate},
		{k.Drop, k.Pause, k.Restart, k.Quit},
	}
}

// commandFor maps a key press to a game command.
func (k keyMap) commandFor(msg tea.KeyMsg) (game.Command, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return game.CommandMoveLeft, true
	case key.Matches(msg, k.Right):
		return game.CommandMoveRight, true
	case key.Matches(msg, k.Down):
		return game.CommandSoftDrop, true
	case key.Matches(msg, k.Rotate):
		return game.CommandRotate, true
	case key.Matches(msg, k.Drop):
		return game.CommandHardDrop, true
	case key.Matches(msg, k.Pause):
		return game.CommandTogglePause, true
	case key.Matches(msg, k.Restart):
		return game.CommandRestart, true
	}
	return 0, false
}
