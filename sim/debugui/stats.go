package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
)

// History is a fixed-size ring of samples for plotting.
type History struct {
	samples []float32
	index   int
	filled  int
}

func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{samples: make([]float32, size)}
}

func (h *History) Push(v float32) {
	h.samples[h.index] = v
	h.index = (h.index + 1) % len(h.samples)
	if h.filled < len(h.samples) {
		h.filled++
	}
}

// Average is taken over the samples pushed so far, not the whole ring.
func (h *History) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.samples[:h.filled] {
		sum += v
	}
	return sum / float32(h.filled)
}

func (h *History) Len() int { return len(h.samples) }

// StatsWindow shows tick counters, a frame time graph and per-stage timings.
type StatsWindow struct {
	source Source
	timer  *FrameTimer
	frames *History
}

func NewStatsWindow(source Source, historyFrames int) *StatsWindow {
	return &StatsWindow{
		source: source,
		timer:  NewFrameTimer(),
		frames: NewHistory(historyFrames),
	}
}

func (w *StatsWindow) Render() {
	w.frames.Push(w.timer.GetDeltaTime() * 1000.0)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 320), imgui.CondOnce)
	if !imgui.BeginV("Engine Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := w.source.Stats()
	imgui.Text(fmt.Sprintf("Ticks: %d", w.source.Ticks()))
	imgui.Text(fmt.Sprintf("Active Pieces: %d", len(w.source.Pieces())))
	imgui.Text(fmt.Sprintf("Occupied Cells: %d", w.source.Board().Occupied()))

	avg := w.frames.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &w.frames.samples[0], int32(w.frames.Len()))

	if imgui.TreeNodeStr("Stage Timings") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("StageStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Stage")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, stage := range stats.Stages {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(stage.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stage.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(stage.LastDuration))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(stage.AvgDuration))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(stage.MaxDuration))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// formatDuration prints sub-millisecond durations in microseconds.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.1f us", float64(d)/float64(time.Microsecond))
	}
	return fmt.Sprintf("%.2f ms", float64(d)/float64(time.Millisecond))
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

// GetDeltaTime returns the seconds since the previous call.
func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
