package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/plus3/blockfall/sim"
)

const (
	leftBorder  = "<!"
	rightBorder = "!>"
	emptyGlyph  = " . "
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	lockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(2)
)

// renderBoard draws one line per board row. Active pieces use glyph; locked cells
// keep the glyph they were committed with.
func renderBoard(s sim.Snapshot, glyph string) string {
	var b strings.Builder
	for y := 0; y < s.Height; y++ {
		b.WriteString(borderStyle.Render(leftBorder))
		for x := 1; x < s.Width-1; x++ {
			cell := s.Cells[y][x]
			switch {
			case s.Active(x, y):
				b.WriteString(activeStyle.Render(glyph))
			case cell.Occupied:
				b.WriteString(lockedStyle.Render(cell.Glyph))
			default:
				b.WriteString(emptyStyle.Render(emptyGlyph))
			}
		}
		b.WriteString(borderStyle.Render(rightBorder))
		if y < s.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) View() string {
	board := renderBoard(m.snapshot, m.glyph)

	var kind string
	if len(m.snapshot.Pieces) > 0 {
		kind = m.snapshot.Pieces[0].Kind.String()
	}
	info := infoStyle.Render(strings.Join([]string{
		fmt.Sprintf("Tick   %d", m.snapshot.Tick),
		fmt.Sprintf("Piece  %s", kind),
		"",
		"a/← d/→  move",
		"r/↑      rotate",
		"q        quit",
	}, "\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, board, info)
}
