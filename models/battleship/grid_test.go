package battleship

import (
	"reflect"
	"testing"
)

func TestCoordInBounds(t *testing.T) {
	tests := []struct {
		name     string
		coord    Coord
		gridSize int
		want     bool
	}{
		{"origin", NewCoord(0, 0), 10, true},
		{"last cell", NewCoord(9, 9), 10, true},
		{"row too big", NewCoord(10, 0), 10, false},
		{"col too big", NewCoord(0, 10), 10, false},
		{"negative row", NewCoord(-1, 5), 10, false},
		{"negative col", NewCoord(5, -1), 10, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.coord.InBounds(test.gridSize); got != test.want {
				t.Fatalf("expected: %v\t got: %v", test.want, got)
			}
		})
	}
}

func TestCoordNeighbors(t *testing.T) {
	tests := []struct {
		name  string
		coord Coord
		want  []Coord
	}{
		{
			name:  "middle keeps up down left right order",
			coord: NewCoord(2, 4),
			want:  []Coord{NewCoord(1, 4), NewCoord(3, 4), NewCoord(2, 3), NewCoord(2, 5)},
		},
		{
			name:  "top left corner",
			coord: NewCoord(0, 0),
			want:  []Coord{NewCoord(1, 0), NewCoord(0, 1)},
		},
		{
			name:  "bottom right corner",
			coord: NewCoord(9, 9),
			want:  []Coord{NewCoord(8, 9), NewCoord(9, 8)},
		},
		{
			name:  "top edge",
			coord: NewCoord(0, 5),
			want:  []Coord{NewCoord(1, 5), NewCoord(0, 4), NewCoord(0, 6)},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.coord.Neighbors(10)
			if !reflect.DeepEqual(got, test.want) {
				t.Fatalf("expected: %v\t got: %v", test.want, got)
			}
		})
	}
}

func TestNextOrientation(t *testing.T) {
	if got := NextOrientation(OrientationHorizontal); got != OrientationVertical {
		t.Fatalf("expected vertical\t got: %s", OrientationString(got))
	}
	if got := NextOrientation(OrientationVertical); got != OrientationHorizontal {
		t.Fatalf("expected horizontal\t got: %s", OrientationString(got))
	}
}
