package game

//go:generate go tool stringer -type=EventKind -trimprefix=Event

// EventKind classifies what happened during a tick.
type EventKind uint8

const (
	EventLanded EventKind = iota
	EventLinesCleared
	EventLevelUp
	EventPaused
	EventResumed
	EventGameOver
	EventRestarted
)

// Event is delivered to the game's Listener once every system of the tick
// has run. Lines is set for EventLinesCleared, Level for EventLevelUp and
// Result for EventGameOver.
type Event struct {
	Kind   EventKind
	Lines  int
	Level  int
	Result Result
}

// Listener receives events in the order they were emitted.
type Listener func(Event)
