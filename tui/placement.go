package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	mb "github.com/evoropaev/seabattle/models/battleship"
)

// currentSpec is the fleet class the selection points at; the second
// return reports whether it still needs placing.
func (sh *Shell) currentSpec() (mb.ShipSpec, bool) {
	spec := sh.cfg.Fleet[sh.pendingIdx]
	return spec, !sh.game.Human.Board.HasPlaced(spec.Class)
}

// cycleClass moves the selection to the next fleet class, placed
// ones included, wrapping around the palette.
func (sh *Shell) cycleClass() {
	sh.pendingIdx = (sh.pendingIdx + 1) % len(sh.cfg.Fleet)
}

// advanceSelection jumps to the next class still waiting for
// placement, if any is left.
func (sh *Shell) advanceSelection() {
	for i := 1; i <= len(sh.cfg.Fleet); i++ {
		idx := (sh.pendingIdx + i) % len(sh.cfg.Fleet)
		if !sh.game.Human.Board.HasPlaced(sh.cfg.Fleet[idx].Class) {
			sh.pendingIdx = idx
			return
		}
	}
}

// previewCells computes the cells the pending ship would cover from
// the cursor, clipped to the grid. ok reports whether the placement
// would be accepted: fully in bounds and clear of placed ships.
func previewCells(spec mb.ShipSpec, start mb.Coord, orientation uint8, grid [][]uint8) ([]mb.Coord, bool) {
	gridSize := len(grid)
	cells := make([]mb.Coord, 0, spec.Length)
	ok := true

	for i := 0; i < spec.Length; i++ {
		cell := start
		if orientation == mb.OrientationVertical {
			cell.Row += i
		} else {
			cell.Col += i
		}

		if !cell.InBounds(gridSize) {
			ok = false
			continue
		}
		if grid[cell.Row][cell.Col] == mb.CellShip {
			ok = false
		}
		cells = append(cells, cell)
	}
	return cells, ok
}

func (sh *Shell) drawPlacement() {
	board := sh.game.Human.Board
	grid := board.DefenceSnapshot()

	sh.drawText(boardLeft, 0, styleTitle, "PLACE YOUR FLEET")
	sh.drawBoard(boardLeft, boardTop, "Your fleet", grid, board)

	// fleet palette next to the board
	paletteX := boardLeft + boardWidth(sh.cfg.GridSize) + 4
	pending, hasPending := sh.currentSpec()
	for i, spec := range sh.cfg.Fleet {
		style := styleText
		marker := " "
		if board.HasPlaced(spec.Class) {
			style = styleDim
		}
		if spec.Class == pending.Class {
			style = style.Reverse(true)
			marker = ">"
		}
		line := fmt.Sprintf(" %s %c %s (%d)", marker, spec.Symbol, mb.ShipClassName(spec.Class), spec.Length)
		sh.drawText(paletteX, boardTop+2+i, style, line)
	}

	if hasPending {
		cells, ok := previewCells(pending, sh.cursor, sh.orientation, grid)
		style := styleGood
		if !ok {
			style = styleBad
		}
		for _, cell := range cells {
			x, y := cellPos(boardLeft, boardTop, cell)
			sh.screen.SetContent(x, y, glyphShip, nil, style)
		}
	}
	sh.invertCell(boardLeft, boardTop, sh.cursor, grid, board)

	helpY := boardTop + sh.cfg.GridSize + 3
	help := fmt.Sprintf(
		"arrows move   tab next ship   r rotate (%s)   space place   a auto place   esc menu",
		mb.OrientationString(sh.orientation),
	)
	if board.FleetComplete() {
		help = "fleet complete   enter start battle   a reshuffle   esc menu"
	}
	sh.drawText(boardLeft, helpY, styleDim, help)

	if sh.message != "" {
		sh.drawText(boardLeft, helpY+1, styleBad, sh.message)
	}
}

func (sh *Shell) handlePlacementKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		sh.moveCursor(-1, 0)
	case tcell.KeyDown:
		sh.moveCursor(1, 0)
	case tcell.KeyLeft:
		sh.moveCursor(0, -1)
	case tcell.KeyRight:
		sh.moveCursor(0, 1)

	case tcell.KeyEscape:
		sh.abandonGame()

	case tcell.KeyTab:
		sh.cycleClass()

	// Enter places while the fleet is incomplete and starts the
	// battle once it is.
	case tcell.KeyEnter:
		if sh.game.Human.Board.FleetComplete() {
			sh.startBattle()
		} else {
			sh.placePending()
		}

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			sh.moveCursor(-1, 0)
		case 'j':
			sh.moveCursor(1, 0)
		case 'h':
			sh.moveCursor(0, -1)
		case 'l':
			sh.moveCursor(0, 1)
		case 'r':
			sh.orientation = mb.NextOrientation(sh.orientation)
		case ' ':
			sh.placePending()
		case 'a':
			sh.autoPlace()
		}
	}
}

func (sh *Shell) placePending() {
	spec, pending := sh.currentSpec()
	if !pending {
		return
	}

	if err := sh.game.PlaceShip(spec.Class, sh.cursor, sh.orientation); err != nil {
		sh.message = fmt.Sprintf("cannot place the %s there", mb.ShipClassName(spec.Class))
		return
	}
	sh.message = ""
	sh.advanceSelection()
}

func (sh *Shell) autoPlace() {
	if err := sh.game.AutoPlaceFleet(); err != nil {
		sh.message = "auto placement failed: " + err.Error()
		return
	}
	sh.message = ""
}

func (sh *Shell) startBattle() {
	if err := sh.game.Ready(); err != nil {
		sh.message = "place your whole fleet first"
		return
	}

	sh.cursor = mb.NewCoord(0, 0)
	sh.message = ""
	sh.mode = screenBattle
}
