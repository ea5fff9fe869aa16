package tui

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/evoropaev/seabattle/db/sqlc"
)

var titleLines = []string{
	` ___  ___   _     ___   _  _____ _____ _    ___ `,
	`/ __|| __| /_\   | _ ) /_\|_   _|_   _| |  | __|`,
	`\__ \| _| / _ \  | _ \/ _ \ | |   | | | |__| _| `,
	`|___/|___/_/ \_\ |___/_/ \_\|_|   |_| |____|___|`,
}

const (
	menuNewGame = iota
	menuStatistics
	menuQuit
)

var menuOptions = []string{"New Game", "Statistics", "Quit Game"}

func (sh *Shell) drawMenu() {
	y := 1
	for _, line := range titleLines {
		sh.drawText(2, y, styleTitle, line)
		y++
	}

	y++
	sh.drawText(2, y, styleDim, "Use arrows to move, Enter to select, Esc to exit")
	y += 2

	for i, option := range menuOptions {
		marker := " "
		style := styleText
		if i == sh.selected {
			marker = ">"
			style = style.Reverse(true)
		}
		sh.drawText(2, y+i, style, fmt.Sprintf(" %s %s", marker, option))
	}

	if sh.message != "" {
		sh.drawText(2, y+len(menuOptions)+2, styleBad, sh.message)
	}
}

func (sh *Shell) handleMenuKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		sh.selected = (sh.selected + len(menuOptions) - 1) % len(menuOptions)

	case tcell.KeyDown:
		sh.selected = (sh.selected + 1) % len(menuOptions)

	case tcell.KeyEscape:
		sh.quitting = true

	case tcell.KeyEnter:
		switch sh.selected {
		case menuNewGame:
			sh.startGame()
		case menuStatistics:
			sh.enterStats()
		case menuQuit:
			sh.quitting = true
		}

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			sh.selected = (sh.selected + len(menuOptions) - 1) % len(menuOptions)
		case 'j':
			sh.selected = (sh.selected + 1) % len(menuOptions)
		case 'q':
			sh.quitting = true
		}
	}
}

// enterStats loads the counters once on entry so the screen does not
// query the database on every redraw.
func (sh *Shell) enterStats() {
	sh.mode = screenStats

	if sh.analytics == nil {
		sh.statsLines = []string{
			"Statistics need a database.",
			"Set DATABASE_URL and restart to record matches.",
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	analytics, err := sh.analytics.GetMatchAnalytics(ctx, sh.serverIp)
	if errors.Is(err, sql.ErrNoRows) {
		sh.statsLines = []string{"No matches recorded yet."}
		return
	}
	if err != nil {
		sh.statsLines = []string{"Could not load statistics: " + err.Error()}
		return
	}

	sh.statsLines = []string{
		fmt.Sprintf("Games started     %d", analytics.GamesStarted),
		fmt.Sprintf("Games finished    %d", analytics.GamesFinished),
		fmt.Sprintf("Human wins        %d", analytics.HumanWins),
		fmt.Sprintf("Computer wins     %d", analytics.ComputerWins),
		fmt.Sprintf("Rematches called  %d", analytics.RematchesCalled),
	}
}

func (sh *Shell) drawStats() {
	sh.drawText(2, 1, styleTitle, "STATISTICS")

	for i, line := range sh.statsLines {
		sh.drawText(2, 3+i, styleText, line)
	}

	sh.drawText(2, 4+len(sh.statsLines), styleDim, "Esc to go back")
}

func (sh *Shell) handleStatsKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyEnter {
		sh.mode = screenMenu
	}
}
