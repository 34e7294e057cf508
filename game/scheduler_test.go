package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSystem struct {
	name  string
	log   *[]string
	delta float64
	sleep time.Duration
}

func (s *recordingSystem) Execute(frame *Frame) {
	*s.log = append(*s.log, s.name)
	s.delta = frame.DeltaTime
	if s.sleep > 0 {
		time.Sleep(s.sleep)
	}
}

type emittingSystem struct {
	log *[]string
}

func (s *emittingSystem) Execute(frame *Frame) {
	frame.Commands.Defer(func() { *s.log = append(*s.log, "deferred") })
	frame.Commands.Emit(Event{Kind: EventLanded})
	frame.Commands.Emit(Event{Kind: EventLinesCleared, Lines: 2})
	*s.log = append(*s.log, "executed")
}

func newTestScheduler() *Scheduler {
	return NewScheduler(newState(DefaultRules(), nil), newCommands())
}

func TestSchedulerRunsSystemsInOrder(t *testing.T) {
	var log []string
	scheduler := newTestScheduler()
	scheduler.Register(&recordingSystem{name: "first", log: &log})
	scheduler.Register(&recordingSystem{name: "second", log: &log})
	scheduler.Register(&recordingSystem{name: "third", log: &log})

	scheduler.Once(0.016)
	scheduler.Once(0.016)

	assert.Equal(t, []string{"first", "second", "third", "first", "second", "third"}, log)
}

func TestSchedulerClampsNegativeDelta(t *testing.T) {
	var log []string
	system := &recordingSystem{name: "s", log: &log}
	scheduler := newTestScheduler()
	scheduler.Register(system)

	scheduler.Once(-1)
	if system.delta != 0 {
		t.Errorf("expected negative delta to be clamped to 0, got %f", system.delta)
	}
}

func TestSchedulerFlushesAfterAllSystems(t *testing.T) {
	var log []string
	scheduler := newTestScheduler()
	scheduler.Register(&emittingSystem{log: &log})
	scheduler.Register(&recordingSystem{name: "after", log: &log})
	scheduler.OnEvent(func(e Event) {
		log = append(log, e.Kind.String())
	})

	scheduler.Once(0)

	assert.Equal(t, []string{"executed", "after", "Landed", "LinesCleared", "deferred"}, log)

	log = nil
	scheduler.Register(&recordingSystem{name: "late", log: &log})
	scheduler.OnEvent(nil)
	scheduler.Once(0)
	assert.Equal(t, []string{"executed", "after", "late", "deferred"}, log,
		"events and defers from the previous tick must not be delivered twice")
}

func TestSchedulerStats(t *testing.T) {
	var log []string
	scheduler := newTestScheduler()

	stats := scheduler.GetStats()
	if stats.SystemCount != 0 {
		t.Errorf("expected 0 systems, got %d", stats.SystemCount)
	}

	fast := &recordingSystem{name: "fast", log: &log}
	slow := &recordingSystem{name: "slow", log: &log, sleep: time.Millisecond}
	scheduler.Register(fast)
	scheduler.Register(slow)

	stats = scheduler.GetStats()
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, time.Duration(0), stats.Systems[0].MinDuration, "min duration before any run")

	for range 3 {
		scheduler.Once(0.016)
	}

	stats = scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(6), stats.TotalExecutions)
	assert.Equal(t, int64(3), stats.Ticks)

	for _, sys := range stats.Systems {
		assert.Equal(t, "recordingSystem", sys.Name)
		assert.Equal(t, int64(3), sys.ExecutionCount)
		assert.LessOrEqual(t, sys.MinDuration, sys.AvgDuration)
		assert.LessOrEqual(t, sys.AvgDuration, sys.MaxDuration)
		assert.Equal(t, sys.TotalDuration/3, sys.AvgDuration)
	}
	assert.GreaterOrEqual(t, stats.Systems[1].MinDuration, time.Millisecond)
}

func TestSchedulerRunStopsOnCancel(t *testing.T) {
	var log []string
	scheduler := newTestScheduler()
	scheduler.Register(&recordingSystem{name: "s", log: &log})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	clock := FixedStep(0.01)
	scheduler.Run(ctx, 5*time.Millisecond, clock)

	assert.NotEmpty(t, log)
	assert.Equal(t, int64(len(log)), scheduler.GetStats().Ticks)
}

func TestSchedulerRunDefaultsInterval(t *testing.T) {
	var log []string
	scheduler := newTestScheduler()
	scheduler.Register(&recordingSystem{name: "s", log: &log})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	scheduler.Run(ctx, -time.Second, FixedStep(0.01))
	assert.NotEmpty(t, log)
}

func TestCommandsDrainKeepsOrder(t *testing.T) {
	commands := newCommands()
	commands.Push(CommandMoveLeft, CommandRotate)
	commands.Push(CommandHardDrop)
	assert.Equal(t, 3, commands.Pending())

	assert.Equal(t, []Command{CommandMoveLeft, CommandRotate, CommandHardDrop}, commands.drain())
	assert.Zero(t, commands.Pending())
	assert.Empty(t, commands.drain())
}

func TestCommandsFlushLeavesInput(t *testing.T) {
	commands := newCommands()
	commands.Push(CommandSoftDrop)
	commands.Emit(Event{Kind: EventPaused})

	var got []Event
	commands.Flush(func(e Event) { got = append(got, e) })

	assert.Equal(t, []Event{{Kind: EventPaused}}, got)
	assert.Equal(t, 1, commands.Pending())
}

func TestClocks(t *testing.T) {
	t.Run("fixed step", func(t *testing.T) {
		clock := FixedStep(1.0 / 60)
		assert.InDelta(t, 1.0/60, clock.Elapsed(), 1e-12)
		assert.InDelta(t, 1.0/60, clock.Elapsed(), 1e-12)
		assert.Zero(t, FixedStep(-1).Elapsed())
	})

	t.Run("manual", func(t *testing.T) {
		var clock ManualClock
		assert.Zero(t, clock.Elapsed())
		clock.Advance(0.25)
		clock.Advance(0.5)
		clock.Advance(-3)
		assert.Equal(t, 0.75, clock.Elapsed())
		assert.Zero(t, clock.Elapsed())
	})

	t.Run("wall", func(t *testing.T) {
		base := time.Unix(100, 0)
		now := base
		clock := &WallClock{last: base, now: func() time.Time { return now }}

		now = base.Add(250 * time.Millisecond)
		assert.Equal(t, 0.25, clock.Elapsed())

		now = base
		assert.Zero(t, clock.Elapsed(), "a clock going backwards reports no time")
	})
}

func TestRules(t *testing.T) {
	rules := DefaultRules()
	require.NoError(t, rules.Validate())

	assert.Equal(t, 0.5, rules.FallInterval(1))
	assert.InDelta(t, 0.45, rules.FallInterval(2), 1e-9)
	assert.Equal(t, 0.1, rules.FallInterval(9))
	assert.Equal(t, 0.1, rules.FallInterval(50))

	for i := 1; i < 20; i++ {
		assert.LessOrEqual(t, rules.FallInterval(i+1), rules.FallInterval(i))
	}

	broken := []func(r *Rules){
		func(r *Rules) { r.Width = 3 },
		func(r *Rules) { r.Height = 0 },
		func(r *Rules) { r.LinesPerLevel = 0 },
		func(r *Rules) { r.PointsPerLine = -1 },
		func(r *Rules) { r.MinInterval = 0 },
		func(r *Rules) { r.BaseInterval = 0.05 },
		func(r *Rules) { r.IntervalStep = -0.1 },
	}
	for i, mutate := range broken {
		r := DefaultRules()
		mutate(&r)
		assert.ErrorIs(t, r.Validate(), ErrInvalidRules, "case %d", i)
	}
}

func TestParseCommand(t *testing.T) {
	cases := map[string]Command{
		"left":        CommandMoveLeft,
		"RIGHT":       CommandMoveRight,
		" down ":      CommandSoftDrop,
		"Rotate":      CommandRotate,
		"pause":       CommandTogglePause,
		"drop":        CommandHardDrop,
		"harddrop":    CommandHardDrop,
		"MoveLeft":    CommandMoveLeft,
		"restart":     CommandRestart,
		"softdrop":    CommandSoftDrop,
		"togglepause": CommandTogglePause,
	}
	for in, want := range cases {
		got, ok := ParseCommand(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseCommand("jump")
	assert.False(t, ok)
}
