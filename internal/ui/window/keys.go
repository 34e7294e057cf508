package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/game"
)

// binding maps keys to a command. Repeating bindings fire again while the
// key is held: first after repeatDelay ticks, then every repeatRate ticks.
type binding struct {
	keys      []ebiten.Key
	command   game.Command
	repeating bool
}

const (
	repeatDelay = 10
	repeatRate  = 3
)

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}, command: game.CommandMoveLeft, repeating: true},
	{keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}, command: game.CommandMoveRight, repeating: true},
	{keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}, command: game.CommandSoftDrop, repeating: true},
	{keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW, ebiten.KeyX}, command: game.CommandRotate},
	{keys: []ebiten.Key{ebiten.KeySpace}, command: game.CommandHardDrop},
	{keys: []ebiten.Key{ebiten.KeyP}, command: game.CommandTogglePause},
	{keys: []ebiten.Key{ebiten.KeyR}, command: game.CommandRestart},
}

// fires reports whether a key held for duration ticks triggers this tick.
func fires(duration int, repeating bool) bool {
	if duration == 1 {
		return true
	}
	if !repeating || duration <= repeatDelay {
		return false
	}
	return (duration-repeatDelay)%repeatRate == 0
}

// pressedCommands returns the commands triggered this tick, in binding order.
func pressedCommands(duration func(ebiten.Key) int) []game.Command {
	var cmds []game.Command
	for _, b := range bindings {
		for _, key := range b.keys {
			if fires(duration(key), b.repeating) {
				cmds = append(cmds, b.command)
				break
			}
		}
	}
	return cmds
}

func quitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
