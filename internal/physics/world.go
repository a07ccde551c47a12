package physics

import (
	"fmt"

	"physics-playground/internal/geom"
	"physics-playground/internal/spatial"
	"physics-playground/internal/sprite"
	"physics-playground/internal/vec"
)

// entry is one tracked collider with its per-tick world mesh. Entries are
// rebuilt into the grid every tick; nothing is cached across ticks, so
// there is no staleness hazard between them.
type entry struct {
	collider sprite.Collider
	center   vec.Vector
	mesh     geom.Polygon
}

// World tracks a set of colliders and resolves their contacts once per
// tick. Single-threaded by design: a tick runs broad phase, exact tests and
// response to completion before the next one starts.
type World struct {
	// Restitution is the coefficient applied along the contact normal:
	// 1 = perfectly elastic, 0 = perfectly inelastic.
	Restitution float64

	colliders []sprite.Collider
	grid      *spatial.Grid[*entry]
	contacts  int
	tickErrs  []error
}

// NewWorld returns a world with the given broad-phase cell size and
// restitution coefficient.
func NewWorld(cellSize, restitution float64) *World {
	return &World{
		Restitution: restitution,
		grid:        spatial.NewGrid[*entry](cellSize),
	}
}

// Add starts tracking a collider. The world never removes or destroys
// bodies; the owner discards them by rebuilding the set.
func (w *World) Add(c sprite.Collider) {
	w.colliders = append(w.colliders, c)
}

// Len returns the number of tracked colliders.
func (w *World) Len() int {
	return len(w.colliders)
}

// Contacts returns the number of contacts resolved during the last tick.
func (w *World) Contacts() int {
	return w.contacts
}

// TickErrors returns the per-body failures isolated during the last tick.
// A body whose mesh cannot be computed is skipped for that tick; the rest
// of the simulation proceeds.
func (w *World) TickErrors() []error {
	return w.tickErrs
}

// Tick rebuilds the broad phase from scratch, runs the SAT test on every
// candidate pair and resolves the contacts found. Integration is the
// caller's job (Step on each rigid body) before calling Tick.
func (w *World) Tick() {
	w.tickErrs = w.tickErrs[:0]
	w.contacts = 0
	w.grid.Reset()

	for _, c := range w.colliders {
		center, mesh, err := c.MeshWorld()
		if err != nil {
			w.tickErrs = append(w.tickErrs, fmt.Errorf("physics: skipping body this tick: %w", err))
			continue
		}
		e := &entry{collider: c, center: center, mesh: mesh}
		w.grid.Insert(e, center.X, center.Y)
	}

	w.grid.Pairs(func(a, b *entry) {
		axis, hit := geom.Intersect(a.mesh, b.mesh)
		if !hit {
			return
		}
		w.contacts++
		w.resolve(a, b, axis)
	})
}

// resolve handles one contact. Callbacks fire first, for any collider kind;
// the pair enumeration visits each unordered pair once, so both sides are
// notified here. Physical resolution applies only when both bodies are
// rigid.
func (w *World) resolve(source, target *entry, axis vec.Vector) {
	if fn := source.collider.CollisionHandler(); fn != nil {
		fn(source.collider, target.collider)
	}
	if fn := target.collider.CollisionHandler(); fn != nil {
		fn(target.collider, source.collider)
	}

	src, okS := source.collider.(*RigidBody)
	tgt, okT := target.collider.(*RigidBody)
	if !okS || !okT {
		return
	}

	// Orient the axis from source toward target.
	if target.center.Sub(source.center).Dot(axis) < 0 {
		axis = axis.Neg()
	}

	// Positional correction: split the penetration depth evenly, no mass
	// weighting.
	half := axis.Mult(0.5)
	src.Position = src.Position.Sub(half)
	tgt.Position = tgt.Position.Add(half)

	// Velocity resolution: 1-D restitution along the contact normal. The
	// perpendicular components are untouched.
	normal := axis.NormalizeOrZero()
	if normal == (vec.Vector{}) {
		return
	}
	vS := src.Velocity.Dot(normal)
	vT := tgt.Velocity.Dot(normal)
	mS, mT := src.Mass, tgt.Mass

	momentum := vS*mS + vT*mT
	rel := w.Restitution * (vT - vS)
	newS := (momentum + rel*mT) / (mS + mT)
	newT := (momentum - rel*mS) / (mS + mT)

	src.Velocity = src.Velocity.ComponentPerpendicular(normal).Add(normal.Mult(newS))
	tgt.Velocity = tgt.Velocity.ComponentPerpendicular(normal).Add(normal.Mult(newT))
}
