package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	mb "github.com/evoropaev/seabattle/models/battleship"
)

func shotLine(who string, result *mb.ShotResult) string {
	if result == nil {
		return ""
	}

	line := fmt.Sprintf("%s: %s at %s", who, mb.ShotOutcomeString(result.Outcome), result.Coord)
	if result.Outcome == mb.ShotSunk {
		line += fmt.Sprintf(", the %s is down", mb.ShipClassName(result.SunkClass))
	}
	return line
}

func (sh *Shell) drawBattle() {
	attack := sh.game.HumanAttack()
	defence := sh.game.HumanDefence()
	rightX := boardLeft + boardWidth(sh.cfg.GridSize) + 4

	sh.drawText(boardLeft, 0, styleTitle, "BATTLE")
	sh.drawBoard(boardLeft, boardTop, "Enemy waters", attack, nil)
	sh.drawBoard(rightX, boardTop, "Your fleet", defence, sh.game.Human.Board)
	sh.invertCell(boardLeft, boardTop, sh.cursor, attack, nil)

	statusY := boardTop + sh.cfg.GridSize + 3
	if line := shotLine("you", sh.lastHuman); line != "" {
		sh.drawText(boardLeft, statusY, styleText, line)
	}
	if line := shotLine("enemy", sh.lastComputer); line != "" {
		sh.drawText(boardLeft, statusY+1, styleText, line)
	}

	sh.drawText(boardLeft, statusY+3, styleDim, "arrows move   space fire   esc menu")
	if sh.message != "" {
		sh.drawText(boardLeft, statusY+4, styleBad, sh.message)
	}
}

func (sh *Shell) handleBattleKey(ev *tcell.EventKey) {
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

	case tcell.KeyEnter:
		sh.fire()

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
		case ' ':
			sh.fire()
		}
	}
}

// fire resolves the human shot and, when the turn passed, the
// computer's reply before control returns to the player.
func (sh *Shell) fire() {
	result, err := sh.game.HumanShot(sh.cursor)
	if err != nil {
		sh.message = err.Error()
		return
	}

	sh.lastHuman = &result
	sh.lastComputer = nil
	sh.message = ""

	if result.Outcome == mb.ShotAlreadyShot {
		sh.message = "already shot there, pick another cell"
		return
	}

	if sh.game.Status() == mb.GameStatusInProgress && sh.game.Turn() == sh.game.Computer {
		reply, err := sh.game.ComputerTurn()
		if err != nil {
			sh.message = err.Error()
			return
		}
		sh.lastComputer = &reply
	}

	if sh.game.Status() == mb.GameStatusFinished {
		sh.finishGame()
	}
}

func (sh *Shell) drawOver() {
	winner, err := sh.game.Winner()
	if err != nil {
		return
	}

	banner := "THE COMPUTER WON"
	style := styleSunk.Bold(true)
	if winner == sh.game.Human {
		banner = "YOU WON"
		style = styleWinGood
	}

	sh.drawText(boardLeft, 0, style, banner)
	sh.drawText(boardLeft, 1, styleDim, fmt.Sprintf("the match took %d turns", sh.game.TurnCount()))

	// full reveal of the enemy fleet now that the match is over
	rightX := boardLeft + boardWidth(sh.cfg.GridSize) + 4
	sh.drawBoard(boardLeft, boardTop+1, "Enemy fleet", sh.game.Computer.Board.DefenceSnapshot(), sh.game.Computer.Board)
	sh.drawBoard(rightX, boardTop+1, "Your fleet", sh.game.HumanDefence(), sh.game.Human.Board)

	statusY := boardTop + sh.cfg.GridSize + 4
	if line := shotLine("you", sh.lastHuman); line != "" {
		sh.drawText(boardLeft, statusY, styleText, line)
	}
	if line := shotLine("enemy", sh.lastComputer); line != "" {
		sh.drawText(boardLeft, statusY+1, styleText, line)
	}

	sh.drawText(boardLeft, statusY+3, styleDim, "r rematch   esc menu")
}

func (sh *Shell) handleOverKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyEnter:
		sh.abandonGame()

	case tcell.KeyRune:
		if ev.Rune() == 'r' {
			sh.rematch()
		}
	}
}
