package main

import (
	"fmt"
	"math"
	"time"

	"physics-playground/internal/graphics"
	"physics-playground/internal/telemetry"
	"physics-playground/internal/vec"
)

// Guidance thresholds: a command considers itself converged once the
// relevant quantity drops below these.
const (
	distanceThreshold = 0.05
	velocityThreshold = 0.02
	angleThreshold    = 0.07
)

// command is one autopilot maneuver. run returns the desired thrust force
// and nozzle angle for the current state; done reports convergence.
type command interface {
	run(s rocketState) (thrustForce, nozzleAngle float64)
	done() bool
	describe() string
	draw(canvas *graphics.Canvas)
}

// hoverAt climbs or descends to a target altitude and holds it.
type hoverAt struct {
	targetY float64
	isDone  bool
}

func (c *hoverAt) done() bool       { return c.isDone }
func (c *hoverAt) describe() string { return fmt.Sprintf("hover at y=%.0f", c.targetY) }

func (c *hoverAt) draw(canvas *graphics.Canvas) {
	canvas.Circle(vec.Vector{X: 0, Y: c.targetY}, 2, targetColor, true)
}

func (c *hoverAt) run(s rocketState) (float64, float64) {
	dist := c.targetY - s.Position.Y
	switch {
	case math.Abs(dist) < distanceThreshold && math.Abs(s.Velocity.Y) < velocityThreshold:
		// at the target and stationary: thrust against gravity, nudged
		// slightly to cancel residual drift
		thrust := rocketMass * gravityAccel
		if s.Velocity.Y > 0 {
			thrust -= thrust * 0.001
		} else {
			thrust += thrust * 0.001
		}
		c.isDone = true
		return thrust, 0
	case dist > 0:
		if s.Velocity.Y < 0 {
			// falling away from the target: full burn to reverse
			return maxThrust, 0
		}
		// burn while a full-thrust stop would still undershoot
		if (2*gravityAccel*dist-s.Velocity.Y*s.Velocity.Y)*(rocketMass/(2*maxThrust)) > 0 {
			return maxThrust, 0
		}
	case dist < 0:
		if s.Velocity.Y <= 0 {
			// falling toward the target: burn once the fall is just fast
			// enough to stop there under full thrust
			if math.Abs(s.Velocity.Y) > math.Sqrt(2*(maxThrust/rocketMass-gravityAccel)*-dist) {
				return maxThrust, 0
			}
		}
	}
	return 0, 0
}

// land descends onto the pad: free-fall braking down to a hover point just
// above it, then a slow constant-velocity descent until touchdown.
type land struct {
	landY           float64
	targetY         float64
	descentVelocity float64
	isDone          bool
}

func newLand(pad *launchPad, rocketHeight, hoverHeight, descentVelocity float64) *land {
	return &land{
		landY:           pad.position.Y + rocketHeight,
		targetY:         pad.position.Y + rocketHeight + hoverHeight,
		descentVelocity: descentVelocity,
	}
}

func (c *land) done() bool       { return c.isDone }
func (c *land) describe() string { return fmt.Sprintf("land at y=%.0f", c.landY) }

func (c *land) draw(canvas *graphics.Canvas) {
	canvas.Circle(vec.Vector{X: 0, Y: c.targetY}, 2, targetColor, true)
}

func (c *land) run(s rocketState) (float64, float64) {
	dist := c.targetY - s.Position.Y
	if dist < 0 {
		// above the hover point: brake so the hover point is reached at
		// the descent velocity
		stopSpeed := math.Sqrt(c.descentVelocity*c.descentVelocity + 2*(maxThrust/rocketMass-gravityAccel)*-dist)
		if s.Velocity.Y <= 0 && math.Abs(s.Velocity.Y) > stopSpeed {
			return maxThrust, 0
		}
		return 0, 0
	}
	if math.Abs(c.landY-s.Position.Y) < distanceThreshold {
		c.isDone = true
		return 0, 0
	}
	// constant-velocity descent: hover thrust nudged around the target
	// descent speed
	thrust := rocketMass * gravityAccel
	if math.Abs(s.Velocity.Y) < c.descentVelocity {
		thrust -= thrust * 0.1
	} else {
		thrust += thrust * 0.1
	}
	return thrust, 0
}

// setPitch rotates the rocket to a target attitude using the gimballed
// nozzle, with enough thrust for the nozzle to have authority.
type setPitch struct {
	targetAngle     float64
	targetDirection vec.Vector
	isDone          bool
}

func newSetPitch(targetAngle float64) *setPitch {
	return &setPitch{
		targetAngle:     targetAngle,
		targetDirection: vec.Up(1).Rotate(targetAngle),
	}
}

func (c *setPitch) done() bool       { return c.isDone }
func (c *setPitch) describe() string { return fmt.Sprintf("pitch to %.2f rad", c.targetAngle) }
func (c *setPitch) draw(canvas *graphics.Canvas) {}

func (c *setPitch) run(s rocketState) (float64, float64) {
	const minThrustFactor = 0.5
	heading := vec.Up(1).Rotate(s.Angle)
	angleDiff, err := heading.Angle(c.targetDirection)
	if err != nil {
		return 0, 0
	}
	if math.Abs(angleDiff) < angleThreshold && math.Abs(s.AngularVelocity) < velocityThreshold {
		c.isDone = true
		return 0, 0
	}
	// feedback constants tuned by simulation: swing the nozzle with the
	// spin and against the remaining angle error
	const (
		nozzleConstant   = math.Pi / 4
		velocityConstant = 1.5
		thrustConstant   = 0.5
	)
	nozzleAngle := nozzleConstant * (velocityConstant*s.AngularVelocity - angleDiff)
	thrust := maxThrust * (s.AngularVelocity*thrustConstant + minThrustFactor)
	return thrust, nozzleAngle
}

// stabilize kills tumble and lateral motion: pitch against the velocity
// vector, then burn it off and settle into a hover.
type stabilize struct {
	sub    *setPitch
	isDone bool
}

func (c *stabilize) done() bool       { return c.isDone }
func (c *stabilize) describe() string { return "stabilize" }

func (c *stabilize) draw(canvas *graphics.Canvas) {
	if c.sub != nil {
		c.sub.draw(canvas)
	}
}

func (c *stabilize) run(s rocketState) (float64, float64) {
	if math.Abs(s.Angle) < angleThreshold && math.Abs(s.AngularVelocity) < velocityThreshold {
		c.sub = nil
		if math.Abs(s.Velocity.Y) > velocityThreshold {
			return maxThrust, 0
		}
		c.isDone = true
		return rocketMass * gravityAccel, 0
	}
	counterAngle, err := vec.Up(1).Angle(s.Velocity.Neg())
	if err != nil {
		counterAngle = 0
	}
	c.sub = newSetPitch(0.1 * counterAngle)
	return c.sub.run(s)
}

// stage pairs a command with how long to hold it after convergence before
// advancing.
type stage struct {
	cmd  command
	hold time.Duration
}

// guidance runs a fixed flight plan, one stage at a time.
type guidance struct {
	stages   []stage
	current  int
	doneAt   time.Time
	log      *telemetry.FlightLog
	disabled bool
}

func newGuidance(pad *launchPad, r *rocket, log *telemetry.FlightLog) *guidance {
	g := &guidance{
		stages: []stage{
			{&hoverAt{targetY: 200}, 5 * time.Second},
			{newLand(pad, r.heightFromCenter(), 5, 2), 10 * time.Second},
			{&hoverAt{targetY: 100}, 5 * time.Second},
		},
		log: log,
	}
	log.Log("guidance: " + g.stages[0].cmd.describe())
	return g
}

func (g *guidance) draw(canvas *graphics.Canvas) {
	g.stages[g.current].cmd.draw(canvas)
}

// run steers the rocket for one physics step and advances the flight plan
// once the current stage has converged for its hold duration.
func (g *guidance) run(r *rocket) {
	st := g.stages[g.current]
	thrustForce, nozzleAngle := st.cmd.run(r.snapshot())
	r.thrustFactor = vec.Clamp(thrustForce/maxThrust, 0, 1)
	r.nozzleFactor = vec.Clamp(nozzleAngle/maxNozzleAngle, -1, 1)

	if !st.cmd.done() {
		return
	}
	if g.doneAt.IsZero() {
		g.doneAt = time.Now()
		return
	}
	if time.Since(g.doneAt) > st.hold {
		g.nextStage()
	}
}

func (g *guidance) nextStage() {
	if g.current >= len(g.stages)-1 {
		return
	}
	g.current++
	g.doneAt = time.Time{}
	g.log.Log("guidance: " + g.stages[g.current].cmd.describe())
}
