// Package debugui draws Dear ImGui developer windows on top of a running
// game: scheduler timings and a live view of the game state.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/game"
)

// Item is one ImGui window. Render is called after the tick's systems have
// run, between the backend's BeginFrame and EndFrame.
type Item struct {
	Render func(frame *game.Frame)
}

// InputState tracks whether ImGui is consuming mouse or keyboard input.
// Frontends check it before turning key presses into game commands.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function to the end of the tick
// and refreshes InputState.
type ImguiSystem struct {
	Items      []Item
	InputState InputState
}

func (i *ImguiSystem) Add(items ...Item) {
	i.Items = append(i.Items, items...)
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *game.Frame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range i.Items {
		render := item.Render
		frame.Commands.Defer(func() { render(frame) })
	}
}

// StatsSource is anything that reports scheduler timings, such as *game.Game.
type StatsSource interface {
	Stats() *game.SchedulerStats
}

// New returns an ImguiSystem with the standard windows.
func New(stats StatsSource) *ImguiSystem {
	perf := NewPerformanceStats(stats, 120)
	inspector := NewStateInspector()
	return &ImguiSystem{
		Items: []Item{
			{Render: perf.Render},
			{Render: inspector.Render},
		},
	}
}
