package tui

import (
	"context"
	"log"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/sqlc-dev/pqtype"

	"github.com/evoropaev/seabattle/db/sqlc"
	"github.com/evoropaev/seabattle/internal"
	mb "github.com/evoropaev/seabattle/models/battleship"
)

// The shell is a small state machine over full-screen redraws: every
// key event is dispatched to the active screen and every screen
// draws itself from engine state alone.
const (
	screenMenu uint8 = iota
	screenPlacement
	screenBattle
	screenOver
	screenStats
)

type Shell struct {
	screen    tcell.Screen
	cfg       mb.GameConfig
	rng       *rand.Rand
	analytics *sqlc.AnalyticsManager
	serverIp  pqtype.Inet

	mode     uint8
	selected int
	message  string

	game         *mb.Game
	cursor       mb.Coord
	orientation  uint8
	pendingIdx   int
	lastHuman    *mb.ShotResult
	lastComputer *mb.ShotResult

	statsLines []string
	quitting   bool
}

// NewShell takes over the terminal. analytics may be nil; the
// statistics screen shows a notice instead of counters then.
func NewShell(cfg mb.GameConfig, rng *rand.Rand, analytics *sqlc.AnalyticsManager) (*Shell, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	sh := &Shell{
		screen:    screen,
		cfg:       cfg,
		rng:       rng,
		analytics: analytics,
		mode:      screenMenu,
	}

	if analytics != nil {
		sh.serverIp = pqtype.Inet{IPNet: internal.ServerIpNet(), Valid: true}
	}
	return sh, nil
}

// Fini restores the terminal. Safe to defer right after NewShell.
func (sh *Shell) Fini() {
	sh.screen.Fini()
}

// Run drives the event loop until the player quits.
func (sh *Shell) Run() {
	for !sh.quitting {
		sh.draw()

		ev := sh.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return
			}
			sh.handleKey(ev)

		case *tcell.EventResize:
			sh.screen.Sync()
		}
	}
}

func (sh *Shell) draw() {
	sh.screen.Clear()

	switch sh.mode {
	case screenMenu:
		sh.drawMenu()
	case screenStats:
		sh.drawStats()
	case screenPlacement:
		sh.drawPlacement()
	case screenBattle:
		sh.drawBattle()
	case screenOver:
		sh.drawOver()
	}

	sh.screen.Show()
}

func (sh *Shell) handleKey(ev *tcell.EventKey) {
	switch sh.mode {
	case screenMenu:
		sh.handleMenuKey(ev)
	case screenStats:
		sh.handleStatsKey(ev)
	case screenPlacement:
		sh.handlePlacementKey(ev)
	case screenBattle:
		sh.handleBattleKey(ev)
	case screenOver:
		sh.handleOverKey(ev)
	}
}

// startGame spins up a fresh match and moves to the placement
// screen.
func (sh *Shell) startGame() {
	game, err := mb.NewGame(sh.cfg, sh.rng)
	if err != nil {
		sh.message = "could not start a game: " + err.Error()
		return
	}

	sh.game = game
	sh.cursor = mb.NewCoord(0, 0)
	sh.orientation = mb.OrientationHorizontal
	sh.pendingIdx = 0
	sh.lastHuman = nil
	sh.lastComputer = nil
	sh.message = ""
	sh.mode = screenPlacement

	if sh.analytics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
		if err := sh.analytics.IncrementGamesStartedCount(ctx, sh.serverIp); err != nil {
			log.Printf("failed to increment games started count: %v", err)
		}
		cancel()
	}
}

// finishGame records the outcome and moves to the win screen.
func (sh *Shell) finishGame() {
	sh.mode = screenOver

	winner, err := sh.game.Winner()
	if err != nil || sh.analytics == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	if winner == sh.game.Human {
		if err := sh.analytics.IncrementHumanWinsCount(ctx, sh.serverIp); err != nil {
			log.Printf("failed to increment human wins count: %v", err)
		}
		return
	}
	if err := sh.analytics.IncrementComputerWinsCount(ctx, sh.serverIp); err != nil {
		log.Printf("failed to increment computer wins count: %v", err)
	}
}

// rematch starts a fresh match straight from the win screen.
func (sh *Shell) rematch() {
	if sh.analytics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
		if err := sh.analytics.IncrementRematchesCalledCount(ctx, sh.serverIp); err != nil {
			log.Printf("failed to increment rematches called count: %v", err)
		}
		cancel()
	}

	sh.startGame()
}

// abandonGame drops the current match and returns to the menu.
func (sh *Shell) abandonGame() {
	sh.game = nil
	sh.message = ""
	sh.mode = screenMenu
}

func (sh *Shell) moveCursor(dRow, dCol int) {
	next := mb.NewCoord(sh.cursor.Row+dRow, sh.cursor.Col+dCol)
	if next.InBounds(sh.cfg.GridSize) {
		sh.cursor = next
	}
}
