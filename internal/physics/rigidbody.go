// Package physics holds rigid-body dynamics and the world tick that wires
// integration, the spatial broad phase, the SAT test and collision response
// together. The engine never sources forces itself: gravity, thrust and the
// like are supplied by the caller every step.
package physics

import (
	"errors"

	"physics-playground/internal/sprite"
	"physics-playground/internal/vec"
)

// ErrBadMass is returned when a rigid body is created with a non-positive
// mass or moment of inertia.
var ErrBadMass = errors.New("physics: mass and moment of inertia must be positive")

// RigidBody extends a sprite body with mass and motion state. It is mutated
// in place by Step and by collision response; the engine never destroys it.
type RigidBody struct {
	sprite.Body

	Mass            float64
	MomentOfInertia float64

	Velocity            vec.Vector
	AngularVelocity     float64
	Acceleration        vec.Vector
	AngularAcceleration float64
}

// NewRigidBody returns a rigid body with the given constants. Both must be
// positive; a zero mass would make the integrator divide by zero.
func NewRigidBody(mass, momentOfInertia float64) (*RigidBody, error) {
	if mass <= 0 || momentOfInertia <= 0 {
		return nil, ErrBadMass
	}
	b := &RigidBody{
		Body:            *sprite.NewBody(),
		Mass:            mass,
		MomentOfInertia: momentOfInertia,
	}
	return b, nil
}

// Step integrates one tick of net force and torque using semi-implicit
// Euler: velocity is updated from the new acceleration first, then position
// from the new velocity. Larger dt loses accuracy but never fails.
func (b *RigidBody) Step(force vec.Vector, torque, dt float64) {
	b.Acceleration = force.Mult(1 / b.Mass)
	b.Velocity = b.Velocity.Add(b.Acceleration.Mult(dt))
	b.Position = b.Position.Add(b.Velocity.Mult(dt))

	b.AngularAcceleration = torque / b.MomentOfInertia
	b.AngularVelocity += b.AngularAcceleration * dt
	b.Angle += b.AngularVelocity * dt
}
