package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
)

// ControlsWindow lets the host pause ticking and single-step the engine.
type ControlsWindow struct {
	source  Source
	paused  bool
	pending int
}

func NewControlsWindow(source Source) *ControlsWindow {
	return &ControlsWindow{source: source}
}

func (w *ControlsWindow) Paused() bool { return w.paused }

func (w *ControlsWindow) SetPaused(paused bool) { w.paused = paused }

// TakeStep consumes one queued single-step request.
func (w *ControlsWindow) TakeStep() bool {
	if w.pending == 0 {
		return false
	}
	w.pending--
	return true
}

func (w *ControlsWindow) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 340), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Controls", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Checkbox("Paused", &w.paused)
	if w.paused {
		imgui.SameLine()
		if imgui.Button("Step") {
			w.pending++
		}
	}
	imgui.Text(fmt.Sprintf("Tick %d", w.source.Ticks()))

	imgui.End()
}
