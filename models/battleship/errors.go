package battleship

import (
	"errors"
	"fmt"
)

// Placement failure codes. Placement errors are always recoverable:
// the board is left untouched and the caller may try again.
const (
	PlacementOutOfBounds uint8 = iota
	PlacementOverlap
	PlacementDuplicateClass
)

// ErrUnplaceableFleet is the one fatal setup error: randomized
// placement exhausted its retry budget, meaning the grid cannot fit
// the configured fleet. Setup must abort rather than proceed with a
// partial fleet.
var ErrUnplaceableFleet = errors.New("fleet cannot be placed on this grid within the retry budget")

type PlacementErr struct {
	code  uint8
	class uint8
	coord Coord
	hasAt bool
}

func NewPlacementErr(code, class uint8) PlacementErr {
	return PlacementErr{code: code, class: class}
}

func (e PlacementErr) AddCoord(c Coord) PlacementErr {
	e.coord = c
	e.hasAt = true
	return e
}

func (e PlacementErr) Code() uint8 {
	return e.code
}

func (e PlacementErr) Error() string {
	var reason string
	switch e.code {
	case PlacementOutOfBounds:
		reason = "out of grid bounds"
	case PlacementOverlap:
		reason = "overlaps another ship"
	case PlacementDuplicateClass:
		reason = "class already placed"
	default:
		reason = "invalid placement"
	}

	if e.hasAt {
		return fmt.Sprintf("cannot place %s: %s\tat: %s", ShipClassName(e.class), reason, e.coord)
	}
	return fmt.Sprintf("cannot place %s: %s", ShipClassName(e.class), reason)
}
