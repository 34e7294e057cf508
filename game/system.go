package game

// System is one step of a tick. Systems run in registration order and share
// the frame; they may keep their own state between ticks.
type System interface {
	Execute(frame *Frame)
}

// Frame is what a system sees during one tick.
type Frame struct {
	DeltaTime float64
	Commands  *Commands
	State     *State
}

func newFrame(dt float64, state *State, commands *Commands) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  commands,
		State:     state,
	}
}
