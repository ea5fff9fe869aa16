package battleship

import (
	"math/rand"

	"github.com/google/uuid"
)

// Player is one side of a game: a board of its own ships plus, for
// the computer, the gunner that picks its shots against the
// opponent. gunner stays nil for humans.
type Player struct {
	Uuid       string
	Name       string
	IsComputer bool
	IsTurn     bool
	IsReady    bool
	Board      *Board

	gunner *Gunner
}

func NewPlayer(name string, isComputer, isTurn bool, cfg GameConfig, rng *rand.Rand) *Player {
	p := &Player{
		Uuid:       uuid.NewString()[:10],
		Name:       name,
		IsComputer: isComputer,
		IsTurn:     isTurn,
		Board:      NewBoard(cfg),
	}

	if isComputer {
		p.gunner = NewGunner(cfg.GridSize, rng)
	}
	return p
}

func (p *Player) Gunner() *Gunner {
	return p.gunner
}

// IsLoser reports whether this player's whole fleet is sunk.
func (p *Player) IsLoser() bool {
	return p.Board.AllSunk()
}
