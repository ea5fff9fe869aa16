package battleship

import cerr "github.com/evoropaev/seabattle/internal/error"

const (
	DefaultGridSize = 10

	// Retry budget for randomized placement, per ship attempt and
	// whole-board restart. Exhausting both is ErrUnplaceableFleet.
	maxPlacementTriesPerShip = 100
	maxBoardRestarts         = 10
)

// GameConfig carries the tunable board parameters. The classical
// game is the default; the fleet and grid size are data so that the
// engine never hard-codes either.
type GameConfig struct {
	GridSize int
	Fleet    FleetSpec
}

func DefaultConfig() GameConfig {
	return GameConfig{
		GridSize: DefaultGridSize,
		Fleet:    DefaultFleet(),
	}
}

// Validate rejects structurally broken configs. It does not prove
// the fleet fits the grid; that is auto-populate's job and surfaces
// as ErrUnplaceableFleet.
func (cfg GameConfig) Validate() error {
	if cfg.GridSize < 1 {
		return cerr.ErrInvalidGridSize(cfg.GridSize)
	}
	if len(cfg.Fleet) == 0 {
		return cerr.ErrEmptyFleet()
	}

	seen := make(map[uint8]bool, len(cfg.Fleet))
	for _, spec := range cfg.Fleet {
		if spec.Length < 1 {
			return cerr.ErrInvalidShipLength(ShipClassName(spec.Class), spec.Length)
		}
		if seen[spec.Class] {
			return cerr.ErrDuplicateFleetClass(ShipClassName(spec.Class))
		}
		seen[spec.Class] = true
	}
	return nil
}
