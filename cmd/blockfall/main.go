package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/sim"
	"github.com/plus3/blockfall/sim/debugui"
	debugui_ebiten "github.com/plus3/blockfall/sim/debugui/ebiten"
)

const (
	CellSize     = 16
	DebugWidth   = 1280
	DebugHeight  = 720
	historyTicks = 120
)

func main() {
	columns := flag.Int("columns", sim.DefaultColumns, "Playable board columns.")
	rows := flag.Int("rows", sim.DefaultRows, "Board rows.")
	tick := flag.Duration("tick", sim.DefaultTickInterval, "Time between engine ticks.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for piece spawns.")
	debug := flag.Bool("debug", false, "Show the ImGui inspector and log at debug level.")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := sim.DefaultConfig()
	cfg.Columns = *columns
	cfg.Rows = *rows
	cfg.TickInterval = *tick
	cfg.Logger = logger

	engine, err := sim.NewEngine(cfg, sim.NewRand(*seed))
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	game := NewGame(engine, ticksPerStep(cfg.TickInterval, ebiten.DefaultTPS))

	if *debug {
		game.imgui = debugui_ebiten.NewImguiBackend("Blockfall (debug)", DebugWidth, DebugHeight)
		game.controls = debugui.NewControlsWindow(engine)
		game.overlay = debugui.NewOverlay(
			debugui.NewStatsWindow(engine, historyTicks),
			debugui.NewBoardWindow(engine, 8),
			game.controls,
		)
		game.boardX = DebugWidth - float32((cfg.Columns+2)*CellSize) - 20
		game.boardY = 20
	} else {
		ebiten.SetWindowSize((cfg.Columns+2)*CellSize*2, cfg.Rows*CellSize)
		ebiten.SetWindowTitle("Blockfall")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting", "columns", cfg.Columns, "rows", cfg.Rows, "tick", cfg.TickInterval, "seed", *seed)
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game stopped", "err", err)
		os.Exit(1)
	}
	logger.Info("quit", "ticks", engine.Ticks())
}

// ticksPerStep converts a tick interval into a number of ebiten updates.
func ticksPerStep(interval time.Duration, tps int) int {
	return max(1, int(interval*time.Duration(tps)/time.Second))
}
