package physics

import (
	"math"
	"testing"

	"physics-playground/internal/sprite"
	"physics-playground/internal/vec"
)

const epsilon = 1e-9

func newBox(t *testing.T, mass, size float64, pos vec.Vector) *RigidBody {
	t.Helper()
	b, err := NewRigidBody(mass, mass*size*size/6)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.AddRect(vec.Vector{}, size, size, true, sprite.White); err != nil {
		t.Fatal(err)
	}
	b.Position = pos
	return b
}

func TestNewRigidBodyValidatesConstants(t *testing.T) {
	if _, err := NewRigidBody(0, 1); err == nil {
		t.Error("zero mass must be rejected")
	}
	if _, err := NewRigidBody(1, -1); err == nil {
		t.Error("negative moment of inertia must be rejected")
	}
}

func TestStepSemiImplicitEuler(t *testing.T) {
	b, err := NewRigidBody(2, 4)
	if err != nil {
		t.Fatal(err)
	}
	// F = (2, 0), m = 2: a = (1, 0). With dt = 1 from rest, velocity
	// updates before position, so the position already moves by the full
	// new velocity.
	b.Step(vec.Vector{X: 2}, 8, 1)
	if math.Abs(b.Velocity.X-1) > epsilon || math.Abs(b.Position.X-1) > epsilon {
		t.Errorf("after step: v = %v, p = %v, want v.X = 1, p.X = 1", b.Velocity, b.Position)
	}
	// τ = 8, I = 4: α = 2, ω = 2, θ = 2.
	if math.Abs(b.AngularVelocity-2) > epsilon || math.Abs(b.Angle-2) > epsilon {
		t.Errorf("after step: ω = %v, θ = %v, want 2, 2", b.AngularVelocity, b.Angle)
	}
}

func TestElasticHeadOnExchangesVelocities(t *testing.T) {
	w := NewWorld(50, 1)
	a := newBox(t, 5, 1, vec.Vector{X: 0})
	b := newBox(t, 5, 1, vec.Vector{X: 0.5})
	a.Velocity = vec.Vector{X: 3}
	b.Velocity = vec.Vector{X: -3}
	w.Add(a)
	w.Add(b)

	w.Tick()

	if w.Contacts() != 1 {
		t.Fatalf("contacts = %d, want 1", w.Contacts())
	}
	if math.Abs(a.Velocity.X+3) > epsilon || math.Abs(a.Velocity.Y) > epsilon {
		t.Errorf("a.Velocity = %v, want (-3, 0)", a.Velocity)
	}
	if math.Abs(b.Velocity.X-3) > epsilon || math.Abs(b.Velocity.Y) > epsilon {
		t.Errorf("b.Velocity = %v, want (+3, 0)", b.Velocity)
	}
	// Momentum and kinetic energy both conserved by construction; the
	// penetration was split evenly.
	if math.Abs(b.Position.X-a.Position.X-1) > epsilon {
		t.Errorf("separation after correction = %v, want 1", b.Position.X-a.Position.X)
	}
}

func TestUnequalMassesConserveMomentum(t *testing.T) {
	w := NewWorld(50, 1)
	a := newBox(t, 1, 1, vec.Vector{X: 0})
	b := newBox(t, 3, 1, vec.Vector{X: 0.6})
	a.Velocity = vec.Vector{X: 2}
	w.Add(a)
	w.Add(b)

	before := a.Velocity.X*a.Mass + b.Velocity.X*b.Mass
	w.Tick()
	after := a.Velocity.X*a.Mass + b.Velocity.X*b.Mass
	if math.Abs(before-after) > epsilon {
		t.Errorf("momentum %v -> %v, must be conserved", before, after)
	}
}

func TestPerpendicularVelocityUntouched(t *testing.T) {
	w := NewWorld(50, 0.5)
	a := newBox(t, 1, 1, vec.Vector{X: 0})
	b := newBox(t, 1, 1, vec.Vector{X: 0.5, Y: 0.01})
	a.Velocity = vec.Vector{X: 1, Y: 7}
	w.Add(a)
	w.Add(b)

	w.Tick()

	// The contact normal is horizontal; the y components pass through.
	if math.Abs(a.Velocity.Y-7) > epsilon {
		t.Errorf("a perpendicular velocity = %v, want 7", a.Velocity.Y)
	}
	if math.Abs(b.Velocity.Y) > epsilon {
		t.Errorf("b perpendicular velocity = %v, want 0", b.Velocity.Y)
	}
}

func TestCallbackFiresForNonRigidColliders(t *testing.T) {
	w := NewWorld(50, 1)
	rigid := newBox(t, 1, 1, vec.Vector{X: 0})
	rigid.Velocity = vec.Vector{X: 1}

	ghost := sprite.NewBody()
	if err := ghost.AddRect(vec.Vector{}, 1, 1, true, sprite.White); err != nil {
		t.Fatal(err)
	}
	ghost.Position = vec.Vector{X: 0.5}

	var rigidCalls, ghostCalls int
	rigid.SetCollisionHandler(func(self, other sprite.Collider) {
		rigidCalls++
		if self != sprite.Collider(rigid) {
			t.Error("callback self is not the registered body")
		}
	})
	ghost.SetCollisionHandler(func(self, other sprite.Collider) {
		ghostCalls++
	})

	w.Add(rigid)
	w.Add(ghost)
	w.Tick()

	if rigidCalls != 1 || ghostCalls != 1 {
		t.Errorf("callbacks = (%d, %d), want (1, 1)", rigidCalls, ghostCalls)
	}
	// No physical resolution against a non-rigid collider.
	if rigid.Velocity.X != 1 || rigid.Position.X != 0 {
		t.Errorf("rigid body was resolved against a non-rigid collider: v = %v, p = %v",
			rigid.Velocity, rigid.Position)
	}
}

func TestTickIsolatesBrokenBody(t *testing.T) {
	w := NewWorld(50, 1)
	empty := sprite.NewBody() // no shapes: mesh query fails
	a := newBox(t, 1, 1, vec.Vector{X: 0})
	b := newBox(t, 1, 1, vec.Vector{X: 0.5})
	a.Velocity = vec.Vector{X: 1}
	b.Velocity = vec.Vector{X: -1}
	w.Add(empty)
	w.Add(a)
	w.Add(b)

	w.Tick()

	if len(w.TickErrors()) != 1 {
		t.Fatalf("tick errors = %d, want 1", len(w.TickErrors()))
	}
	if w.Contacts() != 1 {
		t.Errorf("healthy pair must still resolve, contacts = %d", w.Contacts())
	}
}

func TestFarBodiesNeverTested(t *testing.T) {
	w := NewWorld(50, 1)
	a := newBox(t, 1, 1, vec.Vector{X: 0})
	b := newBox(t, 1, 1, vec.Vector{X: 500})
	w.Add(a)
	w.Add(b)
	w.Tick()
	if w.Contacts() != 0 {
		t.Errorf("contacts = %d, want 0", w.Contacts())
	}
}
