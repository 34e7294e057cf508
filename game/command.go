package game

import "strings"

//go:generate go tool stringer -type=Command -trimprefix=Command

// Command is one discrete player action.
type Command uint8

const (
	CommandMoveLeft Command = iota
	CommandMoveRight
	CommandSoftDrop
	CommandRotate
	CommandTogglePause
	CommandHardDrop
	CommandRestart
)

var commandAliases = map[string]Command{
	"left":    CommandMoveLeft,
	"right":   CommandMoveRight,
	"down":    CommandSoftDrop,
	"rotate":  CommandRotate,
	"pause":   CommandTogglePause,
	"drop":    CommandHardDrop,
	"restart": CommandRestart,
}

// ParseCommand accepts either the command name ("MoveLeft") or its short
// alias ("left"), case-insensitively.
func ParseCommand(s string) (Command, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if cmd, ok := commandAliases[s]; ok {
		return cmd, true
	}
	for cmd := CommandMoveLeft; cmd <= CommandRestart; cmd++ {
		if strings.ToLower(cmd.String()) == s {
			return cmd, true
		}
	}
	return 0, false
}

// moves reports whether the command acts on the active piece.
func (c Command) moves() bool {
	switch c {
	case CommandMoveLeft, CommandMoveRight, CommandSoftDrop, CommandRotate, CommandHardDrop:
		return true
	}
	return false
}
