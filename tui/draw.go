package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	mb "github.com/evoropaev/seabattle/models/battleship"
)

const (
	glyphUnknown = '□'
	glyphMiss    = '▣'
	glyphHit     = '◼'
	glyphShip    = '◼'

	boardLeft = 1
	boardTop  = 2
)

var (
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleText    = tcell.StyleDefault
	styleShip    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleMiss    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHit     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleSunk    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleGood    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleBad     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleWinGood = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

func (sh *Shell) drawText(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		sh.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// boardWidth is the full width of a drawn board including its row
// labels, used to lay two boards side by side.
func boardWidth(gridSize int) int {
	return 3 + gridSize*2
}

// cellPos maps a grid coordinate to its screen position for a board
// drawn at (x0, y0).
func cellPos(x0, y0 int, c mb.Coord) (int, int) {
	return x0 + 3 + c.Col*2, y0 + 2 + c.Row
}

func cellContent(value uint8) (rune, tcell.Style) {
	switch value {
	case mb.CellMiss:
		return glyphMiss, styleMiss
	case mb.CellHit:
		return glyphHit, styleHit
	case mb.CellSunk:
		return glyphHit, styleSunk
	case mb.CellShip:
		return glyphShip, styleShip
	default:
		return glyphUnknown, styleDim
	}
}

// drawBoard renders one snapshot grid with row and column labels.
// symbols, when non-nil, replaces ship cells with their class
// symbol; attack views pass nil because they never see hull classes.
func (sh *Shell) drawBoard(x0, y0 int, title string, grid [][]uint8, symbols *mb.Board) {
	sh.drawText(x0, y0, styleText.Bold(true), title)

	for col := 0; col < len(grid); col++ {
		x, _ := cellPos(x0, y0, mb.NewCoord(0, col))
		sh.drawText(x, y0+1, styleDim, fmt.Sprintf("%d", col%10))
	}

	for row := range grid {
		_, y := cellPos(x0, y0, mb.NewCoord(row, 0))
		sh.drawText(x0, y, styleDim, fmt.Sprintf("%2d", row%100))

		for col, value := range grid[row] {
			r, style := cellContent(value)
			if value == mb.CellShip && symbols != nil {
				if sym, prs := symbols.ShipSymbolAt(mb.NewCoord(row, col)); prs {
					r = sym
				}
			}

			x, _ := cellPos(x0, y0, mb.NewCoord(row, col))
			sh.screen.SetContent(x, y, r, nil, style)
		}
	}
}

// invertCell redraws one cell of a drawn board with reversed video,
// used for the cursor.
func (sh *Shell) invertCell(x0, y0 int, c mb.Coord, grid [][]uint8, symbols *mb.Board) {
	r, style := cellContent(grid[c.Row][c.Col])
	if grid[c.Row][c.Col] == mb.CellShip && symbols != nil {
		if sym, prs := symbols.ShipSymbolAt(c); prs {
			r = sym
		}
	}

	x, y := cellPos(x0, y0, c)
	sh.screen.SetContent(x, y, r, nil, style.Reverse(true))
}
