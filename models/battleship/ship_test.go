package battleship

import (
	"errors"
	"reflect"
	"testing"
)

func TestShipCells(t *testing.T) {
	tests := []struct {
		name        string
		start       Coord
		orientation uint8
		length      int
		want        []Coord
		wantErr     bool
	}{
		{
			name:        "horizontal from origin",
			start:       NewCoord(0, 0),
			orientation: OrientationHorizontal,
			length:      3,
			want:        []Coord{NewCoord(0, 0), NewCoord(0, 1), NewCoord(0, 2)},
		},
		{
			name:        "vertical in the middle",
			start:       NewCoord(4, 7),
			orientation: OrientationVertical,
			length:      2,
			want:        []Coord{NewCoord(4, 7), NewCoord(5, 7)},
		},
		{
			name:        "horizontal overflowing right edge",
			start:       NewCoord(0, 8),
			orientation: OrientationHorizontal,
			length:      3,
			wantErr:     true,
		},
		{
			name:        "vertical overflowing bottom edge",
			start:       NewCoord(9, 0),
			orientation: OrientationVertical,
			length:      2,
			wantErr:     true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ShipCells(ShipClassDestroyer, test.start, test.orientation, test.length, 10)

			if test.wantErr {
				var perr PlacementErr
				if !errors.As(err, &perr) {
					t.Fatalf("expected placement error\t got: %v", err)
				}
				if perr.Code() != PlacementOutOfBounds {
					t.Fatalf("expected code: %d\t got: %d", PlacementOutOfBounds, perr.Code())
				}
				return
			}

			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, test.want) {
				t.Fatalf("expected: %v\t got: %v", test.want, got)
			}
		})
	}
}

func TestShipHitTracking(t *testing.T) {
	cells, err := ShipCells(ShipClassSubmarine, NewCoord(3, 3), OrientationHorizontal, 3, 10)
	if err != nil {
		t.Fatal(err)
	}
	ship := NewShip(ShipClassSubmarine, OrientationHorizontal, cells)

	if ship.IsSunk() {
		t.Fatal("new ship must not be sunk")
	}

	ship.RecordHit(NewCoord(3, 3))
	ship.RecordHit(NewCoord(3, 3))
	ship.RecordHit(NewCoord(3, 4))

	if !ship.IsHit(NewCoord(3, 3)) || !ship.IsHit(NewCoord(3, 4)) {
		t.Fatal("recorded hits must be reported")
	}
	if ship.IsHit(NewCoord(3, 5)) {
		t.Fatal("un-hit cell reported as hit")
	}
	if ship.IsSunk() {
		t.Fatal("ship sunk with one cell intact")
	}

	ship.RecordHit(NewCoord(3, 5))
	if !ship.IsSunk() {
		t.Fatal("ship must sink once every cell is hit")
	}
}

func TestShipIgnoresForeignCoord(t *testing.T) {
	cells, err := ShipCells(ShipClassPatrolBoat, NewCoord(0, 0), OrientationVertical, 2, 10)
	if err != nil {
		t.Fatal(err)
	}
	ship := NewShip(ShipClassPatrolBoat, OrientationVertical, cells)

	ship.RecordHit(NewCoord(5, 5))
	if ship.IsHit(NewCoord(5, 5)) || ship.IsSunk() {
		t.Fatal("foreign coordinate must not affect hit state")
	}
}

func TestDefaultFleet(t *testing.T) {
	fleet := DefaultFleet()

	if got := fleet.TotalCells(); got != 17 {
		t.Fatalf("expected total cells: 17\t got: %d", got)
	}

	spec, prs := fleet.SpecOf(ShipClassCarrier)
	if !prs || spec.Length != 5 {
		t.Fatalf("expected carrier of length 5\t got: %+v", spec)
	}

	if _, prs := fleet.SpecOf(255); prs {
		t.Fatal("unknown class must not resolve to a spec")
	}
}
