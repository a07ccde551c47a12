package spatial

import "testing"

func TestKeyFor(t *testing.T) {
	g := NewGrid[int](50)
	cases := []struct {
		x, y float64
		want Key
	}{
		{10, 10, Key{0, 0}},
		{40, 40, Key{0, 0}},
		{50, 0, Key{1, 0}},
		{-10, -10, Key{-1, -1}}, // floor division, not truncation
		{-50, -1, Key{-1, -1}},
		{-51, 0, Key{-2, 0}},
	}
	for _, c := range cases {
		if got := g.KeyFor(c.x, c.y); got != c.want {
			t.Errorf("KeyFor(%v, %v) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestNeighborsExcludesSelfAndFarCells(t *testing.T) {
	g := NewGrid[int](50)
	g.Insert(1, 10, 10)
	g.Insert(2, 40, 40)  // same cell
	g.Insert(3, 60, 10)  // east neighbor
	g.Insert(4, 210, 10) // far away

	got := g.Neighbors(10, 10, 1)
	seen := map[int]bool{}
	for _, item := range got {
		seen[item] = true
	}
	if seen[1] {
		t.Error("Neighbors must exclude the body itself")
	}
	if !seen[2] || !seen[3] {
		t.Errorf("Neighbors missing same/adjacent cell bodies: %v", got)
	}
	if seen[4] {
		t.Error("Neighbors must not include bodies two cells away")
	}
}

// Every pair of items in the same or adjacent cells must come out of Pairs
// exactly once, regardless of which cell scans forward to which.
func TestPairsExactlyOnce(t *testing.T) {
	g := NewGrid[int](10)
	// One item per cell of a 5x5 block spanning negative and positive
	// cells, plus a second item sharing a cell.
	id := 0
	positions := map[int][2]float64{}
	for cx := -2; cx <= 2; cx++ {
		for cy := -2; cy <= 2; cy++ {
			positions[id] = [2]float64{float64(cx)*10 + 5, float64(cy)*10 + 5}
			g.Insert(id, positions[id][0], positions[id][1])
			id++
		}
	}
	positions[id] = [2]float64{5, 5}
	g.Insert(id, 5, 5)
	id++

	counts := map[[2]int]int{}
	g.Pairs(func(a, b int) {
		if a == b {
			t.Fatal("self pair emitted")
		}
		k := [2]int{a, b}
		if b < a {
			k = [2]int{b, a}
		}
		counts[k]++
	})

	cellOf := func(n int) Key {
		p := positions[n]
		return g.KeyFor(p[0], p[1])
	}
	adjacent := func(a, b Key) bool {
		dx, dy := a.X-b.X, a.Y-b.Y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		return dx <= 1 && dy <= 1
	}

	for a := 0; a < id; a++ {
		for b := a + 1; b < id; b++ {
			want := 0
			if adjacent(cellOf(a), cellOf(b)) {
				want = 1
			}
			if got := counts[[2]int{a, b}]; got != want {
				t.Errorf("pair (%d,%d) emitted %d times, want %d", a, b, got, want)
			}
		}
	}
}

func TestResetAndLen(t *testing.T) {
	g := NewGrid[int](50)
	g.Insert(1, 0, 0)
	g.Insert(2, 100, 100)
	if g.Len() != 2 {
		t.Errorf("Len = %d, want 2", g.Len())
	}
	g.Reset()
	if g.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", g.Len())
	}
	g.Pairs(func(a, b int) {
		t.Error("no pairs expected after Reset")
	})
}
