package battleship

// Ship classes of the classical fleet. A board carries exactly one
// ship per class listed in its fleet spec.
const (
	ShipClassCarrier uint8 = iota
	ShipClassBattleship
	ShipClassDestroyer
	ShipClassSubmarine
	ShipClassPatrolBoat
)

var shipClassNames = map[uint8]string{
	ShipClassCarrier:    "Carrier",
	ShipClassBattleship: "Battleship",
	ShipClassDestroyer:  "Destroyer",
	ShipClassSubmarine:  "Submarine",
	ShipClassPatrolBoat: "Patrol Boat",
}

func ShipClassName(class uint8) string {
	name, prs := shipClassNames[class]
	if !prs {
		return "Unknown"
	}
	return name
}

// ShipSpec describes one required ship of a fleet: its class code,
// hull length and the symbol the shells draw it with.
type ShipSpec struct {
	Class  uint8 `json:"class"`
	Length int   `json:"length"`
	Symbol rune  `json:"-"`
}

type FleetSpec []ShipSpec

// DefaultFleet returns the classical five-ship set.
func DefaultFleet() FleetSpec {
	return FleetSpec{
		{Class: ShipClassCarrier, Length: 5, Symbol: 'C'},
		{Class: ShipClassBattleship, Length: 4, Symbol: 'B'},
		{Class: ShipClassDestroyer, Length: 3, Symbol: 'D'},
		{Class: ShipClassSubmarine, Length: 3, Symbol: 'S'},
		{Class: ShipClassPatrolBoat, Length: 2, Symbol: 'P'},
	}
}

func (fs FleetSpec) SpecOf(class uint8) (ShipSpec, bool) {
	for _, spec := range fs {
		if spec.Class == class {
			return spec, true
		}
	}
	return ShipSpec{}, false
}

// TotalCells is the number of grid cells the whole fleet occupies.
func (fs FleetSpec) TotalCells() int {
	total := 0
	for _, spec := range fs {
		total += spec.Length
	}
	return total
}

// Ship is one placed ship: its ordered cells and a per-cell hit
// flag. Ships are created at placement and never removed from the
// board; sinking is derived state.
type Ship struct {
	class       uint8
	orientation uint8
	cells       []Coord
	hit         []bool
}

func NewShip(class, orientation uint8, cells []Coord) *Ship {
	return &Ship{
		class:       class,
		orientation: orientation,
		cells:       cells,
		hit:         make([]bool, len(cells)),
	}
}

func (sh *Ship) Class() uint8 {
	return sh.class
}

func (sh *Ship) Orientation() uint8 {
	return sh.orientation
}

// Cells returns the ship's occupied coordinates in placement order.
// Callers must not mutate the returned slice.
func (sh *Ship) Cells() []Coord {
	return sh.cells
}

// RecordHit marks the given cell as hit. Re-recording an already
// hit cell is a no-op, as is a coordinate the ship does not occupy;
// the board checks occupancy before calling.
func (sh *Ship) RecordHit(c Coord) {
	for i, cell := range sh.cells {
		if cell == c {
			sh.hit[i] = true
			return
		}
	}
}

func (sh *Ship) IsHit(c Coord) bool {
	for i, cell := range sh.cells {
		if cell == c {
			return sh.hit[i]
		}
	}
	return false
}

func (sh *Ship) IsSunk() bool {
	for _, hit := range sh.hit {
		if !hit {
			return false
		}
	}
	return true
}

// ShipCells computes the cells a ship of the given length would
// occupy from start in the given orientation. It fails with an
// out-of-bounds placement error if any computed cell falls outside
// the grid.
func ShipCells(class uint8, start Coord, orientation uint8, length, gridSize int) ([]Coord, error) {
	cells := make([]Coord, 0, length)
	for i := 0; i < length; i++ {
		cell := start
		if orientation == OrientationVertical {
			cell.Row += i
		} else {
			cell.Col += i
		}

		if !cell.InBounds(gridSize) {
			return nil, NewPlacementErr(PlacementOutOfBounds, class).AddCoord(cell)
		}
		cells = append(cells, cell)
	}
	return cells, nil
}
