package battleship

import (
	"math/rand"
	"time"

	cerr "github.com/evoropaev/seabattle/internal/error"

	"github.com/google/uuid"
)

const (
	GameStatusSetup uint8 = iota
	GameStatusInProgress
	GameStatusFinished
)

func GameStatusString(status uint8) string {
	switch status {
	case GameStatusSetup:
		return "setup"
	case GameStatusInProgress:
		return "in progress"
	case GameStatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}

const (
	HumanPlayerName    = "human"
	ComputerPlayerName = "computer"
)

// Game is one match of a human against the computer. It owns both
// players, enforces the setup, in progress, finished lifecycle and
// the strict turn alternation in between. Game itself is not
// goroutine safe; callers serialize access the way the session layer
// does.
type Game struct {
	Uuid     string
	Human    *Player
	Computer *Player

	cfg       GameConfig
	rng       *rand.Rand
	status    uint8
	turnCount int
	winner    *Player
}

// NewGame validates cfg and creates a match in setup status with the
// computer fleet already placed. A nil rng gets a time seeded one;
// tests pass their own for reproducible games. ErrUnplaceableFleet
// means the fleet cannot fit the grid at all.
func NewGame(cfg GameConfig, rng *rand.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	game := &Game{
		Uuid:     uuid.NewString()[:6],
		cfg:      cfg,
		rng:      rng,
		status:   GameStatusSetup,
		Human:    NewPlayer(HumanPlayerName, false, true, cfg, rng),
		Computer: NewPlayer(ComputerPlayerName, true, false, cfg, rng),
	}

	if err := game.Computer.Board.AutoPopulate(rng); err != nil {
		return nil, err
	}
	game.Computer.IsReady = true

	return game, nil
}

func (g *Game) Config() GameConfig {
	return g.cfg
}

func (g *Game) Status() uint8 {
	return g.status
}

// TurnCount is the number of consumed turns so far; repeated
// coordinates do not count.
func (g *Game) TurnCount() int {
	return g.turnCount
}

func (g *Game) PlaceShip(class uint8, start Coord, orientation uint8) error {
	if g.status != GameStatusSetup {
		return cerr.ErrGameNotInSetup(GameStatusString(g.status))
	}
	return g.Human.Board.TryPlaceShip(class, start, orientation)
}

// AutoPlaceFleet replaces whatever the human has placed so far with
// a full randomized fleet.
func (g *Game) AutoPlaceFleet() error {
	if g.status != GameStatusSetup {
		return cerr.ErrGameNotInSetup(GameStatusString(g.status))
	}
	return g.Human.Board.AutoPopulate(g.rng)
}

// Ready moves the match to in progress with the human to fire
// first. The human fleet must be complete.
func (g *Game) Ready() error {
	if g.status != GameStatusSetup {
		return cerr.ErrGameNotInSetup(GameStatusString(g.status))
	}
	if !g.Human.Board.FleetComplete() {
		return cerr.ErrFleetIncomplete(g.Human.Name)
	}

	g.Human.IsReady = true
	g.status = GameStatusInProgress
	g.Human.IsTurn = true
	g.Computer.IsTurn = false
	return nil
}

// HumanShot resolves the human's shot against the computer board.
// Out of bounds coordinates error without consuming the turn, and so
// does a repeated coordinate via its ShotAlreadyShot outcome.
func (g *Game) HumanShot(c Coord) (ShotResult, error) {
	if g.status != GameStatusInProgress {
		return ShotResult{}, cerr.ErrGameNotInProgress(GameStatusString(g.status))
	}
	if !g.Human.IsTurn {
		return ShotResult{}, cerr.ErrNotPlayersTurn(g.Human.Name)
	}

	result, err := g.Computer.Board.ResolveShot(c)
	if err != nil {
		return ShotResult{}, err
	}

	g.advance(g.Human, g.Computer, result)
	return result, nil
}

// ComputerTurn asks the gunner for a coordinate, resolves it against
// the human board and feeds the outcome back into the gunner.
func (g *Game) ComputerTurn() (ShotResult, error) {
	if g.status != GameStatusInProgress {
		return ShotResult{}, cerr.ErrGameNotInProgress(GameStatusString(g.status))
	}
	if !g.Computer.IsTurn {
		return ShotResult{}, cerr.ErrNotPlayersTurn(g.Computer.Name)
	}

	gunner := g.Computer.Gunner()
	c, err := gunner.NextShot()
	if err != nil {
		return ShotResult{}, err
	}

	result, err := g.Human.Board.ResolveShot(c)
	if err != nil {
		return ShotResult{}, err
	}
	gunner.RecordOutcome(result)

	g.advance(g.Computer, g.Human, result)
	return result, nil
}

// advance applies one resolved shot to the turn machine. A repeated
// coordinate keeps the shooter's turn; every other outcome consumes
// it. The shot that sinks the defender's last ship finishes the game
// in the same step.
func (g *Game) advance(shooter, defender *Player, result ShotResult) {
	if result.Outcome == ShotAlreadyShot {
		return
	}

	g.turnCount++

	if result.Outcome == ShotSunk && defender.IsLoser() {
		g.finish(shooter)
		return
	}

	shooter.IsTurn = false
	defender.IsTurn = true
}

func (g *Game) finish(winner *Player) {
	g.status = GameStatusFinished
	g.winner = winner
	g.Human.IsTurn = false
	g.Computer.IsTurn = false
}

// Winner errors until the game is finished so shells cannot show a
// winner for a live match.
func (g *Game) Winner() (*Player, error) {
	if g.status != GameStatusFinished {
		return nil, cerr.ErrGameNotFinished()
	}
	return g.winner, nil
}

// Turn reports whose turn it is, nil once the game is over or not
// yet started.
func (g *Game) Turn() *Player {
	if g.status != GameStatusInProgress {
		return nil
	}
	if g.Human.IsTurn {
		return g.Human
	}
	return g.Computer
}

// HumanDefence is the human's own board view.
func (g *Game) HumanDefence() [][]uint8 {
	return g.Human.Board.DefenceSnapshot()
}

// HumanAttack is the human's view of the computer board.
func (g *Game) HumanAttack() [][]uint8 {
	return g.Computer.Board.AttackSnapshot()
}
