package battleship

import (
	"math/rand"

	cerr "github.com/evoropaev/seabattle/internal/error"
)

// Shot outcomes. ShotSunk is an escalated hit: the shot that sinks a
// ship reports ShotSunk, not ShotHit. ShotAlreadyShot is a benign
// signal, never a fault, and never mutates board state.
const (
	ShotMiss uint8 = iota
	ShotHit
	ShotSunk
	ShotAlreadyShot
)

func ShotOutcomeString(outcome uint8) string {
	switch outcome {
	case ShotMiss:
		return "miss"
	case ShotHit:
		return "hit"
	case ShotSunk:
		return "sunk"
	case ShotAlreadyShot:
		return "already shot"
	default:
		return "unknown"
	}
}

// ShotResult is everything a shell or the gunner needs to know about
// one resolved shot. SunkClass and SunkCells are meaningful only
// when Outcome is ShotSunk.
type ShotResult struct {
	Coord     Coord   `json:"coord"`
	Outcome   uint8   `json:"outcome"`
	SunkClass uint8   `json:"sunk_class,omitempty"`
	SunkCells []Coord `json:"sunk_cells,omitempty"`
}

// Board owns one player's fleet and the shots fired against it.
// Invariants: at most one ship per fleet class, no overlapping
// cells, every cell in bounds, at most one recorded outcome per
// coordinate per game.
type Board struct {
	gridSize int
	fleet    FleetSpec
	ships    map[uint8]*Ship
	occupied map[Coord]*Ship
	shots    map[Coord]uint8
}

func NewBoard(cfg GameConfig) *Board {
	board := &Board{
		gridSize: cfg.GridSize,
		fleet:    cfg.Fleet,
	}
	board.reset()
	return board
}

func (b *Board) GridSize() int {
	return b.gridSize
}

func (b *Board) Fleet() FleetSpec {
	return b.fleet
}

func (b *Board) reset() {
	b.ships = make(map[uint8]*Ship, len(b.fleet))
	b.occupied = make(map[Coord]*Ship, b.fleet.TotalCells())
	b.shots = make(map[Coord]uint8)
}

// TryPlaceShip validates the placement against the fleet spec, grid
// bounds and all previously placed ships, then commits it. On any
// failure the board is unchanged.
func (b *Board) TryPlaceShip(class uint8, start Coord, orientation uint8) error {
	spec, prs := b.fleet.SpecOf(class)
	if !prs {
		return cerr.ErrUnknownFleetClass(class)
	}

	if _, placed := b.ships[class]; placed {
		return NewPlacementErr(PlacementDuplicateClass, class)
	}

	cells, err := ShipCells(class, start, orientation, spec.Length, b.gridSize)
	if err != nil {
		return err
	}

	for _, cell := range cells {
		if _, taken := b.occupied[cell]; taken {
			return NewPlacementErr(PlacementOverlap, class).AddCoord(cell)
		}
	}

	ship := NewShip(class, orientation, cells)
	b.ships[class] = ship
	for _, cell := range cells {
		b.occupied[cell] = ship
	}
	return nil
}

// AutoPopulate discards any existing placement and fills the board
// with randomized valid placements for the whole fleet. Attempts are
// bounded per ship, with a bounded number of whole-board restarts;
// exhaustion returns ErrUnplaceableFleet and leaves the board empty.
func (b *Board) AutoPopulate(rng *rand.Rand) error {
	for restart := 0; restart < maxBoardRestarts; restart++ {
		b.reset()
		if b.tryPopulateOnce(rng) {
			return nil
		}
	}

	b.reset()
	return ErrUnplaceableFleet
}

func (b *Board) tryPopulateOnce(rng *rand.Rand) bool {
	for _, spec := range b.fleet {
		placed := false
		for try := 0; try < maxPlacementTriesPerShip; try++ {
			start := NewCoord(rng.Intn(b.gridSize), rng.Intn(b.gridSize))
			orientation := uint8(rng.Intn(2))

			if b.TryPlaceShip(spec.Class, start, orientation) == nil {
				placed = true
				break
			}
		}
		if !placed {
			return false
		}
	}
	return true
}

// FleetComplete reports whether every class of the fleet spec has
// been placed.
func (b *Board) FleetComplete() bool {
	return len(b.ships) == len(b.fleet)
}

func (b *Board) HasPlaced(class uint8) bool {
	_, prs := b.ships[class]
	return prs
}

func (b *Board) Ship(class uint8) (*Ship, bool) {
	ship, prs := b.ships[class]
	return ship, prs
}

// ResolveShot records the outcome of a shot at c. A coordinate that
// was ever resolved before answers ShotAlreadyShot without touching
// any state, so a shot can never be double-counted against the win
// condition or a ship's hit flags.
func (b *Board) ResolveShot(c Coord) (ShotResult, error) {
	if !c.InBounds(b.gridSize) {
		return ShotResult{}, cerr.ErrCoordOutOfBounds(c.Row, c.Col)
	}

	result := ShotResult{Coord: c}

	if _, shot := b.shots[c]; shot {
		result.Outcome = ShotAlreadyShot
		return result, nil
	}

	ship, prs := b.occupied[c]
	if !prs {
		b.shots[c] = ShotMiss
		result.Outcome = ShotMiss
		return result, nil
	}

	// The map stores ShotHit even for the sinking shot; sunk state
	// is derived from the ship so snapshots can upgrade the whole
	// ship to CellSunk after the fact.
	ship.RecordHit(c)
	b.shots[c] = ShotHit

	result.Outcome = ShotHit
	if ship.IsSunk() {
		result.Outcome = ShotSunk
		result.SunkClass = ship.Class()
		result.SunkCells = ship.Cells()
	}
	return result, nil
}

// AllSunk is the win condition against this board's owner.
func (b *Board) AllSunk() bool {
	if !b.FleetComplete() {
		return false
	}
	for _, ship := range b.ships {
		if !ship.IsSunk() {
			return false
		}
	}
	return true
}

// DefenceSnapshot is the owner's view: own ships, incoming hits and
// misses.
func (b *Board) DefenceSnapshot() [][]uint8 {
	grid := NewGrid(b.gridSize)

	for cell, ship := range b.occupied {
		switch {
		case ship.IsSunk():
			grid[cell.Row][cell.Col] = CellSunk
		case ship.IsHit(cell):
			grid[cell.Row][cell.Col] = CellHit
		default:
			grid[cell.Row][cell.Col] = CellShip
		}
	}

	for cell, outcome := range b.shots {
		if outcome == ShotMiss {
			grid[cell.Row][cell.Col] = CellMiss
		}
	}
	return grid
}

// AttackSnapshot is the opponent's view: shot outcomes only. Un-hit
// ship cells stay CellUnknown; cells of a sunk ship are revealed as
// CellSunk.
func (b *Board) AttackSnapshot() [][]uint8 {
	grid := NewGrid(b.gridSize)

	for cell, outcome := range b.shots {
		switch outcome {
		case ShotMiss:
			grid[cell.Row][cell.Col] = CellMiss

		case ShotHit:
			if ship := b.occupied[cell]; ship != nil && ship.IsSunk() {
				grid[cell.Row][cell.Col] = CellSunk
			} else {
				grid[cell.Row][cell.Col] = CellHit
			}
		}
	}
	return grid
}

// ShipSymbolAt reports the fleet symbol occupying c, for the shells'
// own-board rendering. Second return is false for water.
func (b *Board) ShipSymbolAt(c Coord) (rune, bool) {
	ship, prs := b.occupied[c]
	if !prs {
		return 0, false
	}

	spec, prs := b.fleet.SpecOf(ship.Class())
	if !prs {
		return 0, false
	}
	return spec.Symbol, true
}
