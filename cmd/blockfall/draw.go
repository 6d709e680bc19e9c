package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/sim"
)

var (
	backgroundColor = color.RGBA{24, 24, 28, 255}
	emptyColor      = color.RGBA{36, 36, 42, 255}
	borderColor     = color.RGBA{110, 110, 120, 255}
	lockedColor     = color.RGBA{80, 160, 210, 255}
	activeColor     = color.RGBA{240, 200, 80, 255}
)

func cellColor(s sim.Snapshot, x, y int) color.RGBA {
	switch {
	case s.Border(x):
		return borderColor
	case s.Active(x, y):
		return activeColor
	case s.Cells[y][x].Occupied:
		return lockedColor
	}
	return emptyColor
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	s := g.snapshot
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			px := g.boardX + float32(x*CellSize)
			py := g.boardY + float32(y*CellSize)
			vector.DrawFilledRect(screen, px, py, CellSize-1, CellSize-1, cellColor(s, x, y), false)
		}
	}

	hudX := int(g.boardX) + (s.Width+1)*CellSize
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Tick: %d\nTPS: %.0f", s.Tick, ebiten.ActualTPS()), hudX, int(g.boardY))

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}
