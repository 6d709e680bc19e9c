package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/sim"
	"github.com/plus3/blockfall/sim/debugui"
	debugui_ebiten "github.com/plus3/blockfall/sim/debugui/ebiten"
)

// keyBindings maps keys to commands. The first matching binding wins each update.
var keyBindings = []struct {
	keys    []ebiten.Key
	command sim.Command
}{
	{[]ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}, sim.CommandQuit},
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, sim.CommandMoveLeft},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, sim.CommandMoveRight},
	{[]ebiten.Key{ebiten.KeyR, ebiten.KeyArrowUp}, sim.CommandRotate},
}

// pressedCommand returns the command bound to the first just-pressed key.
func pressedCommand(justPressed func(ebiten.Key) bool) sim.Command {
	for _, binding := range keyBindings {
		for _, key := range binding.keys {
			if justPressed(key) {
				return binding.command
			}
		}
	}
	return sim.CommandNone
}

// Game implements ebiten.Game. Keys are queued every update and the engine ticks
// once every stepEvery updates. Quit is acted on as soon as it is pressed.
type Game struct {
	engine    *sim.Engine
	queue     *sim.CommandQueue
	stepEvery int
	updates   int
	snapshot  sim.Snapshot

	boardX, boardY float32

	imgui    *debugui_ebiten.ImguiBackend
	overlay  *debugui.Overlay
	controls *debugui.ControlsWindow
}

func NewGame(engine *sim.Engine, stepEvery int) *Game {
	return &Game{
		engine:    engine,
		queue:     sim.NewCommandQueue(8),
		stepEvery: stepEvery,
		snapshot:  engine.Snapshot(sim.TickReport{}),
	}
}

func (g *Game) Update() error {
	if g.imgui != nil {
		g.imgui.BeginFrame()
		defer g.imgui.EndFrame()
		g.overlay.Render()
	}

	if g.imgui == nil || !debugui.CurrentInput().WantCaptureKeyboard {
		if err := g.input(pressedCommand(inpututil.IsKeyJustPressed)); err != nil {
			return err
		}
	}

	if g.due() {
		g.step()
	}
	return nil
}

// input queues cmd for a later tick. Quit terminates right away, so it is never
// dropped by a full queue or held back while the engine is paused.
func (g *Game) input(cmd sim.Command) error {
	switch cmd {
	case sim.CommandNone:
		return nil
	case sim.CommandQuit:
		return ebiten.Termination
	}
	g.queue.Push(cmd)
	return nil
}

// due reports whether the engine should tick on this update.
func (g *Game) due() bool {
	if g.controls != nil && g.controls.Paused() {
		return g.controls.TakeStep()
	}
	g.updates++
	if g.updates < g.stepEvery {
		return false
	}
	g.updates = 0
	return true
}

// step polls one queued command and ticks the engine with it.
func (g *Game) step() {
	report := g.engine.Tick(g.queue.Poll())
	g.snapshot = g.engine.Snapshot(report)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.snapshot.Width * CellSize * 2, g.snapshot.Height * CellSize
}
