package battleship

import "fmt"

// Cell states reported in board snapshots. CellShip only ever
// appears in a defence snapshot; an attack snapshot never reveals
// un-hit ship cells.
const (
	CellUnknown uint8 = iota
	CellMiss
	CellHit
	CellSunk
	CellShip
)

const (
	OrientationHorizontal uint8 = iota
	OrientationVertical
)

// Coord is an immutable grid position. Row and Col are zero-based
// and valid only within the grid size of the board that owns them.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoord(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

func (c Coord) InBounds(gridSize int) bool {
	return c.Row >= 0 && c.Row < gridSize && c.Col >= 0 && c.Col < gridSize
}

// Neighbors returns the in-bounds orthogonal neighbors of c in the
// fixed order up, down, left, right. The order is load-bearing: the
// gunner's hot queue depends on it for reproducible play under a
// fixed random seed.
func (c Coord) Neighbors(gridSize int) []Coord {
	candidates := [4]Coord{
		{Row: c.Row - 1, Col: c.Col},
		{Row: c.Row + 1, Col: c.Col},
		{Row: c.Row, Col: c.Col - 1},
		{Row: c.Row, Col: c.Col + 1},
	}

	neighbors := make([]Coord, 0, 4)
	for _, candidate := range candidates {
		if candidate.InBounds(gridSize) {
			neighbors = append(neighbors, candidate)
		}
	}
	return neighbors
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// NewGrid creates a gridSize x gridSize snapshot grid with every
// cell set to CellUnknown.
func NewGrid(gridSize int) [][]uint8 {
	grid := make([][]uint8, gridSize)
	for i := range grid {
		grid[i] = make([]uint8, gridSize)
	}
	return grid
}

func OrientationString(orientation uint8) string {
	if orientation == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

// NextOrientation cycles the placement orientation, used by the
// shells for their rotate action.
func NextOrientation(orientation uint8) uint8 {
	if orientation == OrientationHorizontal {
		return OrientationVertical
	}
	return OrientationHorizontal
}
