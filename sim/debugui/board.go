package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/sim"
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellBorder
	cellLocked
	cellActive
	cellSelected
)

var cellColors = map[cellKind]imgui.Vec4{
	cellEmpty:    imgui.NewVec4(0.12, 0.12, 0.14, 1),
	cellBorder:   imgui.NewVec4(0.35, 0.35, 0.38, 1),
	cellLocked:   imgui.NewVec4(0.2, 0.6, 0.8, 1),
	cellActive:   imgui.NewVec4(0.95, 0.8, 0.3, 1),
	cellSelected: imgui.NewVec4(0.95, 0.4, 0.3, 1),
}

// classifyCells labels every mask cell, floor excluded. Pieces are drawn over the
// mask, and the selected piece over the others.
func classifyCells(mask *sim.Mask, pieces []sim.PieceView, selected sim.PieceID) [][]cellKind {
	grid := make([][]cellKind, mask.Height())
	for y := range grid {
		grid[y] = make([]cellKind, mask.Width())
		for x := range grid[y] {
			switch {
			case x == 0 || x == mask.Width()-1:
				grid[y][x] = cellBorder
			case mask.At(x, y):
				grid[y][x] = cellLocked
			}
		}
	}
	for _, p := range pieces {
		kind := cellActive
		if p.ID == selected {
			kind = cellSelected
		}
		for _, c := range p.Cells {
			if c.Y >= 0 && c.Y < len(grid) && c.X >= 0 && c.X < mask.Width() {
				grid[c.Y][c.X] = kind
			}
		}
	}
	return grid
}

// BoardWindow draws the collision mask with the active pieces on top and lists
// the pieces in a table.
type BoardWindow struct {
	source   Source
	cellSize float32
	selected sim.PieceID
}

func NewBoardWindow(source Source, cellSize float32) *BoardWindow {
	return &BoardWindow{source: source, cellSize: cellSize}
}

func (w *BoardWindow) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(380, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 560), imgui.CondOnce)
	if !imgui.BeginV("Board Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	pieces := w.source.Pieces()
	w.renderPieces(pieces)

	imgui.Separator()
	w.renderGrid(pieces)

	imgui.End()
}

func (w *BoardWindow) renderPieces(pieces []sim.PieceView) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV("PiecesTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("ID")
	imgui.TableSetupColumn("Kind")
	imgui.TableSetupColumn("Rotation")
	imgui.TableSetupColumn("Anchor")
	imgui.TableSetupColumn("Locked")
	imgui.TableHeadersRow()

	for _, p := range pieces {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		isSelected := w.selected == p.ID
		if imgui.SelectableBoolV(fmt.Sprintf("%d", p.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
			if isSelected {
				w.selected = 0
			} else {
				w.selected = p.ID
			}
		}
		imgui.TableNextColumn()
		imgui.Text(p.Kind.String())
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", p.Rotation))
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("(%d, %d)", p.Anchor.X, p.Anchor.Y))
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%t", p.Locked))
	}
	imgui.EndTable()
}

func (w *BoardWindow) renderGrid(pieces []sim.PieceView) {
	mask := w.source.Mask()
	grid := classifyCells(mask, pieces, w.selected)

	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	size := w.cellSize
	for y, row := range grid {
		for x, kind := range row {
			topLeft := imgui.NewVec2(origin.X+float32(x)*size, origin.Y+float32(y)*size)
			bottomRight := imgui.NewVec2(topLeft.X+size-1, topLeft.Y+size-1)
			drawList.AddRectFilled(topLeft, bottomRight, imgui.ColorU32Vec4(cellColors[kind]))
		}
	}
	imgui.Dummy(imgui.NewVec2(float32(mask.Width())*size, float32(mask.Height())*size))
}
