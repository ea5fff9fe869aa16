package battleship

import (
	"math/rand"
	"sync"

	cerr "github.com/evoropaev/seabattle/internal/error"
)

type GameManager interface {
	CreateGame(cfg GameConfig, rng *rand.Rand) (*Game, error)
	GetGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
}

// SeaBattleGameManager is a goroutine safe registry of live games,
// keyed by game uuid. Each session owns at most one game at a time;
// a rematch creates a fresh game and terminates the old one.
type SeaBattleGameManager struct {
	games map[string]*Game
	mu    sync.RWMutex
}

var _ GameManager = (*SeaBattleGameManager)(nil)

func NewSeaBattleGameManager() *SeaBattleGameManager {
	return &SeaBattleGameManager{
		games: make(map[string]*Game, 10),
	}
}

func (sgm *SeaBattleGameManager) CreateGame(cfg GameConfig, rng *rand.Rand) (*Game, error) {
	game, err := NewGame(cfg, rng)
	if err != nil {
		return nil, err
	}

	sgm.mu.Lock()
	sgm.games[game.Uuid] = game
	sgm.mu.Unlock()

	return game, nil
}

func (sgm *SeaBattleGameManager) GetGame(gameUuid string) (*Game, error) {
	sgm.mu.RLock()
	game, prs := sgm.games[gameUuid]
	sgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}

	return game, nil
}

func (sgm *SeaBattleGameManager) TerminateGame(gameUuid string) {
	sgm.mu.Lock()
	delete(sgm.games, gameUuid)
	sgm.mu.Unlock()
}
