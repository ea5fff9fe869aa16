package battleship

import (
	"math/rand"

	cerr "github.com/evoropaev/seabattle/internal/error"
)

const (
	GunnerModeSearch uint8 = iota
	GunnerModeHunt
)

// Gunner picks the computer's shots against one opponent board. In
// search mode it fires uniformly at random over the coordinates it
// has not fired at yet. A hit switches it to hunt mode: the hit's
// in-bounds neighbors are queued in up, down, left, right order and
// fired first-in first-out until the queue drains or the target ship
// sinks, then it falls back to search. The gunner never proposes the
// same coordinate twice in one game.
type Gunner struct {
	gridSize int
	rng      *rand.Rand
	mode     uint8
	fired    map[Coord]bool
	hot      []Coord
	queued   map[Coord]bool
}

func NewGunner(gridSize int, rng *rand.Rand) *Gunner {
	return &Gunner{
		gridSize: gridSize,
		rng:      rng,
		mode:     GunnerModeSearch,
		fired:    make(map[Coord]bool, gridSize*gridSize),
		queued:   make(map[Coord]bool),
	}
}

func (g *Gunner) Mode() uint8 {
	return g.mode
}

// NextShot proposes and commits the next coordinate. Queued hunt
// candidates win over random search; stale queue entries are
// skipped. ErrNoUnfiredCoords means the whole grid has been fired
// at, which a finished game reaches before the board runs out.
func (g *Gunner) NextShot() (Coord, error) {
	for len(g.hot) > 0 {
		c := g.hot[0]
		g.hot = g.hot[1:]
		delete(g.queued, c)

		if g.fired[c] {
			continue
		}
		g.fired[c] = true
		return c, nil
	}

	g.mode = GunnerModeSearch

	// Candidates are collected in row scan order so that one rng
	// seed always replays the same game.
	unfired := make([]Coord, 0, g.gridSize*g.gridSize-len(g.fired))
	for row := 0; row < g.gridSize; row++ {
		for col := 0; col < g.gridSize; col++ {
			c := NewCoord(row, col)
			if !g.fired[c] {
				unfired = append(unfired, c)
			}
		}
	}

	if len(unfired) == 0 {
		return Coord{}, cerr.ErrNoUnfiredCoords()
	}

	c := unfired[g.rng.Intn(len(unfired))]
	g.fired[c] = true
	return c, nil
}

// RecordOutcome feeds the resolved result of the gunner's own shot
// back into its mode machine.
func (g *Gunner) RecordOutcome(result ShotResult) {
	switch result.Outcome {
	case ShotHit:
		g.mode = GunnerModeHunt
		for _, neighbor := range result.Coord.Neighbors(g.gridSize) {
			if g.fired[neighbor] || g.queued[neighbor] {
				continue
			}
			g.hot = append(g.hot, neighbor)
			g.queued[neighbor] = true
		}

	case ShotSunk:
		// The wounded ship is down; pending candidates around it
		// are dead leads.
		g.hot = g.hot[:0]
		g.queued = make(map[Coord]bool)
		g.mode = GunnerModeSearch

	case ShotMiss:
		if len(g.hot) == 0 {
			g.mode = GunnerModeSearch
		}
	}
}
