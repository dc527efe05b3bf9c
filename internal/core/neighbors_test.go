package core

import (
	"errors"
	"slices"
	"testing"
)

func TestNeighborCountsOnBoundedGrid(t *testing.T) {
	n := Neighborhood{Size: Size{W: 4, H: 4}}
	cases := []struct {
		x, y int
		want int
	}{
		{0, 0, 3},
		{3, 3, 3},
		{1, 0, 5},
		{0, 2, 5},
		{1, 1, 8},
		{2, 2, 8},
	}
	for _, tc := range cases {
		got, err := n.NeighborsOf(tc.x, tc.y)
		if err != nil {
			t.Fatalf("NeighborsOf(%d,%d): %v", tc.x, tc.y, err)
		}
		if len(got) != tc.want {
			t.Fatalf("NeighborsOf(%d,%d) has %d candidates, want %d", tc.x, tc.y, len(got), tc.want)
		}
		for _, p := range got {
			if !n.Size.Contains(p.X, p.Y) {
				t.Fatalf("neighbour %v of (%d,%d) outside grid", p, tc.x, tc.y)
			}
			if p.X == tc.x && p.Y == tc.y {
				t.Fatalf("cell (%d,%d) listed as its own neighbour", tc.x, tc.y)
			}
		}
	}
}

func TestNeighborsOfOutOfBounds(t *testing.T) {
	n := Neighborhood{Size: Size{W: 4, H: 4}}
	if _, err := n.NeighborsOf(4, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestWrappedNeighborhoodAlwaysHasEight(t *testing.T) {
	n := Neighborhood{Size: Size{W: 4, H: 4}, Wrap: true}
	got, err := n.NeighborsOf(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 8 {
		t.Fatalf("wrapped corner has %d neighbours, want 8", len(got))
	}
}

func TestSmallTorusCountsEachNeighbourOnce(t *testing.T) {
	n := Neighborhood{Size: Size{W: 2, H: 2}, Wrap: true}
	got, err := n.NeighborsOf(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{{1, 1}, {0, 1}, {1, 0}}
	if !slices.Equal(got, want) {
		t.Fatalf("2x2 torus neighbours=%v want %v", got, want)
	}

	g, _ := NewGrid(2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			_ = g.SetAlive(x, y, true)
		}
	}
	if live := n.LiveNeighbors(g, 0, 0); live != 3 {
		t.Fatalf("LiveNeighbors on full 2x2 torus=%d want 3", live)
	}

	strip := Neighborhood{Size: Size{W: 3, H: 1}, Wrap: true}
	got, _ = strip.NeighborsOf(0, 0)
	if want := []Point{{2, 0}, {1, 0}}; !slices.Equal(got, want) {
		t.Fatalf("3x1 torus neighbours=%v want %v", got, want)
	}

	single := Neighborhood{Size: Size{W: 1, H: 1}, Wrap: true}
	if got, _ := single.NeighborsOf(0, 0); len(got) != 0 {
		t.Fatalf("1x1 torus should have no neighbours, got %v", got)
	}
}

func TestLiveNeighborsIgnoresPending(t *testing.T) {
	g, _ := NewGrid(3, 3)
	_ = g.SetAlive(0, 0, true)
	_ = g.SetAlive(2, 2, true)
	n := Neighborhood{Size: g.Size()}

	g.BeginComputation()
	g.SetPending(g.Index(0, 1), true)
	if got := n.LiveNeighbors(g, 1, 1); got != 2 {
		t.Fatalf("LiveNeighbors(1,1)=%d want 2", got)
	}
}
