// Package debugui renders Dear ImGui inspector windows for a running engine.
// Windows only read engine state; the host decides what input reaches the engine.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/sim"
)

// Source is the engine state the windows read. *sim.Engine satisfies it.
type Source interface {
	Ticks() uint64
	Stats() sim.SchedulerStats
	Pieces() []sim.PieceView
	Board() *sim.Board
	Mask() *sim.Mask
}

// Window is a single ImGui window drawn once per frame.
type Window interface {
	Render()
}

// Overlay draws a set of windows between the backend's BeginFrame and EndFrame.
type Overlay struct {
	windows []Window
}

func NewOverlay(windows ...Window) *Overlay {
	return &Overlay{windows: windows}
}

func (o *Overlay) Add(w Window) {
	o.windows = append(o.windows, w)
}

// Render draws every window in the order they were added.
func (o *Overlay) Render() {
	for _, w := range o.windows {
		w.Render()
	}
}

// InputState reports whether ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// CurrentInput reads the capture flags for the current frame.
func CurrentInput() InputState {
	io := imgui.CurrentIO()
	return InputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}
