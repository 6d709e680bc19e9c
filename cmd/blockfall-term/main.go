package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/plus3/blockfall/sim"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("blockfall-term", flag.ContinueOnError)
	columns := flags.Int("columns", sim.DefaultColumns, "Playable board columns.")
	rows := flags.Int("rows", sim.DefaultRows, "Board rows.")
	tick := flags.Duration("tick", sim.DefaultTickInterval, "Time between engine ticks.")
	seed := flags.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for piece spawns.")
	debug := flags.Bool("debug", false, "Log at debug level.")
	logPath := flags.String("log", "", "Write logs to this file. Only errors are logged, to stderr, when empty.")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	logger, closeLog, err := newLogger(*logPath, *debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closeLog()

	cfg := sim.DefaultConfig()
	cfg.Columns = *columns
	cfg.Rows = *rows
	cfg.TickInterval = *tick
	cfg.Logger = logger

	engine, err := sim.NewEngine(cfg, sim.NewRand(*seed))
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return 1
	}

	logger.Info("starting", "columns", cfg.Columns, "rows", cfg.Rows, "tick", cfg.TickInterval, "seed", *seed)
	program := tea.NewProgram(NewModel(engine), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("program error", "err", err)
		return 1
	}
	logger.Info("quit", "ticks", engine.Ticks())
	return 0
}

// newLogger logs to path, since stdout belongs to the board. Without a path only
// errors are written, to stderr, where they show once the alt screen is gone.
func newLogger(path string, debug bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	if path == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), func() { f.Close() }, nil
}
