package battleship

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestGunnerNeverRepeats(t *testing.T) {
	gunner := NewGunner(5, rand.New(rand.NewSource(3)))

	seen := make(map[Coord]bool)
	for i := 0; i < 25; i++ {
		c, err := gunner.NextShot()
		if err != nil {
			t.Fatal(err)
		}
		if seen[c] {
			t.Fatalf("coordinate proposed twice: %s", c)
		}
		seen[c] = true

		gunner.RecordOutcome(ShotResult{Coord: c, Outcome: ShotMiss})
	}

	if _, err := gunner.NextShot(); err == nil {
		t.Fatal("expected error once the grid is exhausted")
	}
}

func TestGunnerHuntQueueOrder(t *testing.T) {
	gunner := NewGunner(10, rand.New(rand.NewSource(1)))

	gunner.RecordOutcome(ShotResult{Coord: NewCoord(2, 4), Outcome: ShotHit})
	if gunner.Mode() != GunnerModeHunt {
		t.Fatal("hit must switch the gunner to hunt mode")
	}

	want := []Coord{NewCoord(1, 4), NewCoord(3, 4), NewCoord(2, 3), NewCoord(2, 5)}
	got := make([]Coord, 0, len(want))
	for range want {
		c, err := gunner.NextShot()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, c)
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected: %v\t got: %v", want, got)
	}
}

func TestGunnerCornerHunt(t *testing.T) {
	gunner := NewGunner(10, rand.New(rand.NewSource(1)))

	gunner.RecordOutcome(ShotResult{Coord: NewCoord(0, 0), Outcome: ShotHit})

	first, err := gunner.NextShot()
	if err != nil {
		t.Fatal(err)
	}
	second, err := gunner.NextShot()
	if err != nil {
		t.Fatal(err)
	}

	if first != NewCoord(1, 0) || second != NewCoord(0, 1) {
		t.Fatalf("expected (1,0) then (0,1)\t got: %s then %s", first, second)
	}
}

func TestGunnerSunkClearsQueue(t *testing.T) {
	gunner := NewGunner(10, rand.New(rand.NewSource(1)))

	gunner.RecordOutcome(ShotResult{Coord: NewCoord(5, 5), Outcome: ShotHit})
	gunner.RecordOutcome(ShotResult{Coord: NewCoord(5, 6), Outcome: ShotSunk})

	if gunner.Mode() != GunnerModeSearch {
		t.Fatal("sunk must return the gunner to search mode")
	}
	if len(gunner.hot) != 0 || len(gunner.queued) != 0 {
		t.Fatal("sunk must clear pending hunt candidates")
	}
}

func TestGunnerQueueDedupes(t *testing.T) {
	gunner := NewGunner(10, rand.New(rand.NewSource(1)))

	// (2,5) neighbors both hits and must be queued only once
	gunner.RecordOutcome(ShotResult{Coord: NewCoord(2, 4), Outcome: ShotHit})
	gunner.RecordOutcome(ShotResult{Coord: NewCoord(2, 6), Outcome: ShotHit})

	want := []Coord{
		NewCoord(1, 4), NewCoord(3, 4), NewCoord(2, 3), NewCoord(2, 5),
		NewCoord(1, 6), NewCoord(3, 6), NewCoord(2, 7),
	}
	if !reflect.DeepEqual(gunner.hot, want) {
		t.Fatalf("expected: %v\t got: %v", want, gunner.hot)
	}
}

func TestGunnerMissFallsBackToSearch(t *testing.T) {
	gunner := NewGunner(10, rand.New(rand.NewSource(1)))

	gunner.RecordOutcome(ShotResult{Coord: NewCoord(4, 4), Outcome: ShotHit})

	c, err := gunner.NextShot()
	if err != nil {
		t.Fatal(err)
	}
	gunner.RecordOutcome(ShotResult{Coord: c, Outcome: ShotMiss})

	if gunner.Mode() != GunnerModeHunt {
		t.Fatal("miss with pending candidates must stay in hunt mode")
	}

	for i := 0; i < 3; i++ {
		c, err := gunner.NextShot()
		if err != nil {
			t.Fatal(err)
		}
		gunner.RecordOutcome(ShotResult{Coord: c, Outcome: ShotMiss})
	}

	if gunner.Mode() != GunnerModeSearch {
		t.Fatal("empty queue after a miss must fall back to search mode")
	}
}

func TestGunnerDeterministicBySeed(t *testing.T) {
	first := NewGunner(10, rand.New(rand.NewSource(99)))
	second := NewGunner(10, rand.New(rand.NewSource(99)))

	for i := 0; i < 40; i++ {
		a, err := first.NextShot()
		if err != nil {
			t.Fatal(err)
		}
		b, err := second.NextShot()
		if err != nil {
			t.Fatal(err)
		}
		if a != b {
			t.Fatalf("shot %d diverged: %s vs %s", i, a, b)
		}

		first.RecordOutcome(ShotResult{Coord: a, Outcome: ShotMiss})
		second.RecordOutcome(ShotResult{Coord: b, Outcome: ShotMiss})
	}
}

func TestGunnerSinksWholeFleet(t *testing.T) {
	rng := rand.New(rand.NewSource(8))

	board := NewBoard(DefaultConfig())
	if err := board.AutoPopulate(rng); err != nil {
		t.Fatal(err)
	}

	gunner := NewGunner(board.GridSize(), rng)

	shots := 0
	for !board.AllSunk() {
		if shots > board.GridSize()*board.GridSize() {
			t.Fatal("gunner failed to sink the fleet within one full grid of shots")
		}

		c, err := gunner.NextShot()
		if err != nil {
			t.Fatal(err)
		}
		result, err := board.ResolveShot(c)
		if err != nil {
			t.Fatal(err)
		}
		if result.Outcome == ShotAlreadyShot {
			t.Fatalf("gunner repeated a coordinate: %s", c)
		}

		gunner.RecordOutcome(result)
		shots++
	}
}
