package main

import (
	"fmt"
	"math"

	"physics-playground/internal/graphics"
	"physics-playground/internal/physics"
	"physics-playground/internal/sprite"
	"physics-playground/internal/vec"
)

const (
	craftMass       = 100.0
	craftMOI        = 50000.0
	maxThrust       = 2500.0
	frameWidth      = 50.0
	frameHeight     = 4.0
	thrusterWidth   = 3.0
	thrusterHeight  = 8.0
	maxFireHeight   = 10.0
	// reactionFrames: frames of held input needed to reach full thrust.
	reactionFrames = 20.0
)

var (
	frameColor    = sprite.Color{R: 255, G: 255, B: 255, A: 255}
	thrusterColor = sprite.Color{R: 150, G: 150, B: 150, A: 255}
	fireColor     = sprite.Color{R: 255, G: 0, B: 0, A: 255}
	groundColor   = sprite.Color{R: 120, G: 120, B: 120, A: 255}
)

// thruster is one of the two lift engines, mounted at a fixed offset from
// the craft center. thrustFactor runs -1..1: positive fires downward and
// pushes the craft up.
type thruster struct {
	offset       vec.Vector
	thrustFactor float64
}

func (t *thruster) setThrust(f float64) {
	t.thrustFactor = vec.Clamp(f, -1, 1)
}

// thrustVector returns the force the thruster applies, in world space.
func (t *thruster) thrustVector(craftAngle float64) vec.Vector {
	return vec.Up(t.thrustFactor * maxThrust).Rotate(craftAngle)
}

// positionVector returns the mount point in world space.
func (t *thruster) positionVector(c *craft) vec.Vector {
	return t.offset.Rotate(c.body.Angle).Add(c.body.Position)
}

type craft struct {
	body     *physics.RigidBody
	left     *thruster
	right    *thruster
	gravity  float64
	onGround bool
}

func newCraft(gravity float64) (*craft, error) {
	body, err := physics.NewRigidBody(craftMass, craftMOI)
	if err != nil {
		return nil, err
	}
	mount := 0.8 * (frameWidth / 2)
	if err := body.AddRect(vec.Vector{}, frameWidth, frameHeight, true, frameColor); err != nil {
		return nil, err
	}
	if err := body.AddRect(vec.Left(mount), thrusterWidth, thrusterHeight, true, thrusterColor); err != nil {
		return nil, err
	}
	if err := body.AddRect(vec.Right(mount), thrusterWidth, thrusterHeight, true, thrusterColor); err != nil {
		return nil, err
	}
	return &craft{
		body:    body,
		left:    &thruster{offset: vec.Left(mount)},
		right:   &thruster{offset: vec.Right(mount)},
		gravity: gravity,
	}, nil
}

// setInput maps held-frame counts to thruster settings. Later inputs win,
// so a spin command overrides a climb command.
func (c *craft) setInput(up, down, cw, ccw int) {
	ramp := func(frames int) float64 {
		return vec.Clamp(float64(frames)/reactionFrames, 0, 1)
	}
	c.left.setThrust(0)
	c.right.setThrust(0)
	if f := ramp(up); f > 0 {
		c.left.setThrust(f)
		c.right.setThrust(f)
	}
	if f := ramp(down); f > 0 {
		c.left.setThrust(-f)
		c.right.setThrust(-f)
	}
	if f := ramp(cw); f > 0 {
		c.left.setThrust(f)
		c.right.setThrust(-f)
	}
	if f := ramp(ccw); f > 0 {
		c.left.setThrust(-f)
		c.right.setThrust(f)
	}
}

// netForce sums thrust and gravity, and takes the torque of each thruster
// about the craft center.
func (c *craft) netForce() (vec.Vector, float64) {
	leftThrust := c.left.thrustVector(c.body.Angle)
	rightThrust := c.right.thrustVector(c.body.Angle)
	force := leftThrust.Add(rightThrust)
	if !c.onGround {
		force = force.Add(vec.Down(c.gravity * craftMass))
	}

	torque := c.left.positionVector(c).Sub(c.body.Position).Cross(leftThrust) +
		c.right.positionVector(c).Sub(c.body.Position).Cross(rightThrust)
	return force, torque
}

func (c *craft) update(dt float64) {
	force, torque := c.netForce()
	c.body.Step(force, torque, dt)
}

// clampToGround rests the craft on the ground line, killing any motion.
func (c *craft) clampToGround(groundY float64) {
	if c.body.Position.Y-frameHeight/2 > groundY {
		c.onGround = false
		return
	}
	c.onGround = true
	c.body.Position.Y = groundY + frameHeight/2
	c.body.Velocity = vec.Vector{}
	c.body.AngularVelocity = 0
	c.body.Angle = 0
}

func (c *craft) draw(canvas *graphics.Canvas, groundY float64) {
	half := float64(10000)
	canvas.Line(vec.Vector{X: -half, Y: groundY}, vec.Vector{X: half, Y: groundY}, groundColor)

	for _, shape := range c.body.Shapes() {
		canvas.PolygonFill(shape.Vertices, shape.Color)
	}
	c.drawFire(canvas, c.left)
	c.drawFire(canvas, c.right)

	hud := fmt.Sprintf("v: %.1f, %.1f  w: %.2f", c.body.Velocity.X, c.body.Velocity.Y, c.body.AngularVelocity)
	canvas.TextScreen(hud, 12, 12, 20, frameColor)
}

// drawFire draws the exhaust line opposite the thrust direction, scaled by
// the current throttle.
func (c *craft) drawFire(canvas *graphics.Canvas, t *thruster) {
	start := t.positionVector(c)
	dir := t.thrustVector(c.body.Angle).NormalizeOrZero().Neg()
	end := start.Add(dir.Mult(maxFireHeight * math.Abs(t.thrustFactor)))
	canvas.Line(start, end, fireColor)
}
