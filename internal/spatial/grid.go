// Package spatial implements the uniform-grid broad phase. Bodies are
// bucketed by their collision-mesh center; candidate pairs only come from
// the same or directly neighboring cells, so the expensive exact test never
// runs on far-apart bodies. The grid is transient: it is rebuilt from
// scratch every pass and holds non-owning references only.
package spatial

import "math"

// Key identifies a grid cell. Keys use floor division, so negative
// coordinates map to negative cells: x = -10 with cell size 50 is cell -1,
// not cell 0.
type Key struct {
	X, Y int
}

// forward is the 5-cell neighbor set (self handled separately): east,
// south, southeast, southwest. Scanning only these from every cell yields
// each unordered pair of adjacent cells exactly once across the grid: the
// four remaining directions are each some cell's forward neighbor.
var forward = [4]Key{{1, 0}, {0, -1}, {1, -1}, {-1, -1}}

// Grid buckets items of type T by position. T must be comparable so an
// item can be excluded from its own candidate set.
type Grid[T comparable] struct {
	CellSize float64
	cells    map[Key][]T
}

// NewGrid returns an empty grid with the given cell size.
func NewGrid[T comparable](cellSize float64) *Grid[T] {
	return &Grid[T]{
		CellSize: cellSize,
		cells:    make(map[Key][]T),
	}
}

// KeyFor returns the cell containing the given position.
func (g *Grid[T]) KeyFor(x, y float64) Key {
	return Key{
		X: int(math.Floor(x / g.CellSize)),
		Y: int(math.Floor(y / g.CellSize)),
	}
}

// Reset empties every bucket, keeping the allocated cell map.
func (g *Grid[T]) Reset() {
	for k := range g.cells {
		delete(g.cells, k)
	}
}

// Insert buckets an item at the given position.
func (g *Grid[T]) Insert(item T, x, y float64) {
	k := g.KeyFor(x, y)
	g.cells[k] = append(g.cells[k], item)
}

// Len returns the number of bucketed items.
func (g *Grid[T]) Len() int {
	n := 0
	for _, items := range g.cells {
		n += len(items)
	}
	return n
}

// Neighbors returns every item in the cell at (x, y) and its 8 surrounding
// cells, excluding self. Use this when testing one source body against all
// others independently; pairs discovered this way show up once per side.
func (g *Grid[T]) Neighbors(x, y float64, self T) []T {
	center := g.KeyFor(x, y)
	var out []T
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for _, item := range g.cells[Key{center.X + dx, center.Y + dy}] {
				if item != self {
					out = append(out, item)
				}
			}
		}
	}
	return out
}

// Pairs calls fn once for every unordered pair of items in the same or
// adjacent cells. Within a cell, pairs are enumerated by index; across
// cells, only the forward neighbor set is scanned, so no pair is reported
// twice and no item is paired with itself.
func (g *Grid[T]) Pairs(fn func(a, b T)) {
	for key, items := range g.cells {
		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				fn(items[i], items[j])
			}
		}
		for _, d := range forward {
			other := g.cells[Key{key.X + d.X, key.Y + d.Y}]
			for _, a := range items {
				for _, b := range other {
					fn(a, b)
				}
			}
		}
	}
}
