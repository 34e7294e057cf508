package game

// Commands buffers everything that crosses a tick boundary: player input
// waiting to be applied, and events and deferred functions waiting to be
// delivered once all systems have run.
type Commands struct {
	input  []Command
	events []Event
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues player input. Input is applied in arrival order by the next
// tick.
func (c *Commands) Push(cmds ...Command) {
	c.input = append(c.input, cmds...)
}

// Pending returns the number of queued input commands.
func (c *Commands) Pending() int {
	return len(c.input)
}

// Emit queues an event for delivery at the end of the tick.
func (c *Commands) Emit(event Event) {
	c.events = append(c.events, event)
}

// Defer queues a function to run at the end of the tick, after events have
// been delivered.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// drain hands out the queued input and empties the queue.
func (c *Commands) drain() []Command {
	input := c.input
	c.input = nil
	return input
}

// Flush delivers queued events to listener (which may be nil), runs the
// deferred functions and resets both buffers. Input is left untouched.
func (c *Commands) Flush(listener Listener) {
	if listener != nil {
		for _, event := range c.events {
			listener(event)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.events = c.events[:0]
	c.defers = c.defers[:0]
}
