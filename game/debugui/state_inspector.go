package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
)

// StateInspector shows the game state and lets a developer nudge it: jump
// to a level, or queue commands for the next tick.
type StateInspector struct {
	showBoard bool
}

func NewStateInspector() *StateInspector {
	return &StateInspector{showBoard: true}
}

type field struct {
	name, value string
}

func stateFields(st *game.State) []field {
	fields := []field{
		{"Phase", st.Phase.String()},
		{"Paused", fmt.Sprint(st.Paused)},
		{"Over", fmt.Sprint(st.Over)},
		{"Score", fmt.Sprint(st.Progress.Score)},
		{"High Score", fmt.Sprint(st.HighScore)},
		{"Lines", fmt.Sprint(st.Progress.Lines)},
		{"Fall Interval", fmt.Sprintf("%.3fs", st.Progress.FallInterval)},
	}

	active := "-"
	if a := st.Active; a != nil {
		active = fmt.Sprintf("%s at (%d, %d) rot %d", a.Kind, a.X, a.Y, a.Rotation)
	}
	fields = append(fields, field{"Active", active})

	next := "-"
	if st.Next != nil {
		next = st.Next.Kind.String()
	}
	fields = append(fields, field{"Next", next})
	fields = append(fields, field{"Filled Cells", fmt.Sprint(st.Board.Filled())})
	return fields
}

func (si *StateInspector) Render(frame *game.Frame) {
	st := frame.State

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 280), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 420), imgui.CondOnce)
	if !imgui.BeginV("Game State", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("StateTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Field")
		imgui.TableSetupColumn("Value")
		imgui.TableHeadersRow()
		for _, f := range stateFields(st) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(f.name)
			imgui.TableNextColumn()
			imgui.Text(f.value)
		}
		imgui.EndTable()
	}

	level := int32(st.Progress.Level)
	imgui.Text("Level:")
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
	if imgui.InputInt("##level", &level) && level >= 1 {
		st.Progress.Level = int(level)
		st.Progress.FallInterval = st.Rules.FallInterval(int(level))
	}

	imgui.Separator()
	if imgui.Button("Hard Drop") {
		frame.Commands.Push(game.CommandHardDrop)
	}
	imgui.SameLine()
	if imgui.Button("Pause") {
		frame.Commands.Push(game.CommandTogglePause)
	}
	imgui.SameLine()
	if imgui.Button("Restart") {
		frame.Commands.Push(game.CommandRestart)
	}

	if imgui.TreeNodeStr("Spawned Pieces") {
		for _, k := range piece.Kinds() {
			imgui.BulletText(fmt.Sprintf("%s: %d", k, st.Spawned(k)))
		}
		imgui.TreePop()
	}

	imgui.Checkbox("Show Board", &si.showBoard)
	if si.showBoard {
		imgui.Text(st.Board.String())
	}

	imgui.End()
}
