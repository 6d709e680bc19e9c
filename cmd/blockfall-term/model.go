package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/plus3/blockfall/sim"
)

type tickMsg struct{}

var keyCommands = map[string]sim.Command{
	"a":     sim.CommandMoveLeft,
	"left":  sim.CommandMoveLeft,
	"d":     sim.CommandMoveRight,
	"right": sim.CommandMoveRight,
	"r":     sim.CommandRotate,
	"up":    sim.CommandRotate,
}

// Model queues key presses and ticks the engine on a timer. The engine and queue
// are shared by every copy of the model.
type Model struct {
	engine   *sim.Engine
	queue    *sim.CommandQueue
	interval time.Duration
	glyph    string
	snapshot sim.Snapshot
	width    int
	height   int
}

func NewModel(engine *sim.Engine) Model {
	return Model{
		engine:   engine,
		queue:    sim.NewCommandQueue(8),
		interval: engine.Config().TickInterval,
		glyph:    engine.Board().Glyph(),
		snapshot: engine.Snapshot(sim.TickReport{}),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		if cmd, ok := keyCommands[msg.String()]; ok {
			m.queue.Push(cmd)
		}
		return m, nil
	case tickMsg:
		cmd := m.queue.Poll()
		if cmd == sim.CommandQuit {
			return m, tea.Quit
		}
		report := m.engine.Tick(cmd)
		m.snapshot = m.engine.Snapshot(report)
		return m, m.tick()
	}
	return m, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{} })
}
