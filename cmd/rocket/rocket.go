package main

import (
	"math"
	"math/rand/v2"

	"github.com/jinzhu/copier"

	"physics-playground/internal/graphics"
	"physics-playground/internal/physics"
	"physics-playground/internal/sprite"
	"physics-playground/internal/telemetry"
	"physics-playground/internal/vec"
)

const (
	gravityAccel   = 9.8
	rocketMass     = 100.0
	rocketMOI      = 30000.0
	maxThrust      = 2500.0
	maxNozzleAngle = math.Pi / 8

	rocketWidth     = 25.0
	rocketHeight    = 120.0
	coneHeight      = 15.0
	nozzleWidthTop  = 10.0
	nozzleWidthBase = 16.0
	nozzleHeight    = 10.0
	thrustScaling   = 50.0
)

var (
	bodyColor   = sprite.Color{R: 220, G: 220, B: 220, A: 255}
	nozzleColor = sprite.Color{R: 100, G: 100, B: 100, A: 255}
	thrustColor = sprite.Color{R: 255, G: 151, B: 23, A: 255}
	flareColor  = sprite.Color{R: 255, G: 101, B: 40, A: 255}
	padColor    = sprite.Color{R: 255, G: 255, B: 255, A: 255}
	targetColor = sprite.Color{R: 0, G: 200, B: 0, A: 255}
)

type rocket struct {
	body *physics.RigidBody

	// throttle 0..1 and nozzle deflection -1..1 (positive swings the
	// nozzle right, torquing the rocket clockwise)
	thrustFactor float64
	nozzleFactor float64
	onGround     bool

	bodyShape   []vec.Vector
	nozzleShape []vec.Vector

	flight *telemetry.Recorder
}

func newRocket(flight *telemetry.Recorder) (*rocket, error) {
	body, err := physics.NewRigidBody(rocketMass, rocketMOI)
	if err != nil {
		return nil, err
	}
	return &rocket{
		body: body,
		bodyShape: []vec.Vector{
			{X: -rocketWidth / 2, Y: rocketHeight / 2},
			{X: 0, Y: rocketHeight/2 + coneHeight},
			{X: rocketWidth / 2, Y: rocketHeight / 2},
			{X: rocketWidth / 2, Y: -rocketHeight / 2},
			{X: -rocketWidth / 2, Y: -rocketHeight / 2},
		},
		nozzleShape: []vec.Vector{
			{X: nozzleWidthTop / 2, Y: 0},
			{X: nozzleWidthBase / 2, Y: -nozzleHeight},
			{X: -nozzleWidthBase / 2, Y: -nozzleHeight},
			{X: -nozzleWidthTop / 2, Y: 0},
		},
		flight: flight,
	}, nil
}

// heightFromCenter is the distance from the center of mass to the nozzle
// tip, where thrust is applied and ground contact happens.
func (r *rocket) heightFromCenter() float64 {
	return rocketHeight/2 + nozzleHeight
}

// rocketState is a read-only snapshot handed to guidance commands so they
// cannot mutate the rocket mid-decision.
type rocketState struct {
	Position        vec.Vector
	Velocity        vec.Vector
	Acceleration    vec.Vector
	Angle           float64
	AngularVelocity float64
	ThrustFactor    float64
	NozzleFactor    float64
	OnGround        bool
}

func (r *rocket) snapshot() rocketState {
	var s rocketState
	// field-matched copy of the physical state; vec.Vector fields are
	// value types so the snapshot shares nothing with the rocket
	_ = copier.Copy(&s, r.body)
	s.ThrustFactor = r.thrustFactor
	s.NozzleFactor = r.nozzleFactor
	s.OnGround = r.onGround
	return s
}

// setInput ramps throttle and nozzle deflection from held keys.
func (r *rocket) setInput(forward, backward, nozzleLeft, nozzleRight bool) {
	if forward {
		r.thrustFactor = math.Min(r.thrustFactor+0.05, 1)
	} else if backward {
		r.thrustFactor = math.Max(r.thrustFactor-0.04, 0)
	}
	if nozzleLeft {
		r.nozzleFactor = math.Max(r.nozzleFactor-0.05, -1)
	} else if nozzleRight {
		r.nozzleFactor = math.Min(r.nozzleFactor+0.05, 1)
	}
}

// netForce computes thrust along the gimballed nozzle, gravity when
// airborne, and the torque of the off-axis thrust about the center.
func (r *rocket) netForce() (vec.Vector, float64) {
	nozzleAngle := r.body.Angle + maxNozzleAngle*r.nozzleFactor
	thrust := vec.Up(r.thrustFactor * maxThrust).Rotate(nozzleAngle)

	force := thrust
	if !r.onGround {
		force = force.Add(vec.Down(gravityAccel * rocketMass))
	}
	lever := vec.Down(r.heightFromCenter()).Rotate(r.body.Angle)
	return force, lever.Cross(thrust)
}

func (r *rocket) update(dt float64) {
	force, torque := r.netForce()
	r.body.Step(force, torque, dt)

	r.flight.Log(map[string]float64{
		"position_y":   r.body.Position.Y,
		"velocity_y":   r.body.Velocity.Y,
		"ang_velocity": r.body.AngularVelocity,
	})
}

func (r *rocket) draw(canvas *graphics.Canvas) {
	pos, angle := r.body.Position, r.body.Angle

	// nozzle hangs below the hull and swings with the deflection
	nozzleTop := pos.Add(vec.Down(rocketHeight / 2))
	nozzleLocalAngle := maxNozzleAngle * r.nozzleFactor
	nozzle := transformAbout(r.nozzleShape, nozzleTop, nozzleLocalAngle, nozzleTop)
	canvas.PolygonFill(transformAbout(nozzle, vec.Vector{}, angle, pos), nozzleColor)

	canvas.PolygonFill(transformAbout(r.bodyShape, pos, angle, pos), bodyColor)

	// exhaust plume under the nozzle
	fireHeight := r.thrustFactor * thrustScaling
	if fireHeight > 0 {
		base := nozzleTop.Add(vec.Down(nozzleHeight).Rotate(nozzleLocalAngle)).RotateAround(angle, pos)
		plumeAngle := angle + nozzleLocalAngle
		plume := []vec.Vector{
			{X: -nozzleWidthBase / 2, Y: 0},
			{X: -nozzleWidthBase / 2, Y: -fireHeight},
			{X: nozzleWidthBase / 2, Y: -fireHeight},
			{X: nozzleWidthBase / 2, Y: 0},
		}
		canvas.PolygonFill(transformAbout(plume, base, plumeAngle, base), thrustColor)
		for _, flare := range flareShapes(fireHeight) {
			canvas.PolygonFill(transformAbout(flare, base, plumeAngle, base), flareColor)
		}
	}
}

// transformAbout translates points by origin, then rotates them about
// pivot.
func transformAbout(points []vec.Vector, origin vec.Vector, angle float64, pivot vec.Vector) []vec.Vector {
	out := make([]vec.Vector, len(points))
	for i, p := range points {
		out[i] = p.Add(origin).RotateAround(angle, pivot)
	}
	return out
}

// flareShapes picks random thin strips of the plume to flicker each frame.
func flareShapes(fireHeight float64) [][]vec.Vector {
	const flareDiv = 5
	const flareCount = 2
	flareWidth := nozzleWidthBase / flareDiv
	flares := make([][]vec.Vector, 0, flareCount)
	for _, ind := range rand.Perm(flareDiv)[:flareCount] {
		x := vec.Map(float64(ind), 0, flareDiv, -nozzleWidthBase/2, nozzleWidthBase/2)
		flares = append(flares, []vec.Vector{
			{X: x, Y: 0},
			{X: x, Y: -fireHeight},
			{X: x + flareWidth, Y: -fireHeight},
			{X: x + flareWidth, Y: 0},
		})
	}
	return flares
}

// launchPad is the landing target. It clamps the rocket to the ground line
// instead of letting it sink through.
type launchPad struct {
	position vec.Vector
	width    float64
	height   float64
}

func newLaunchPad(pos vec.Vector) *launchPad {
	return &launchPad{position: pos, width: 100, height: 15}
}

// settle parks the rocket upright on the pad with all motion killed.
func (p *launchPad) settle(r *rocket) {
	r.body.Velocity = vec.Vector{}
	r.body.Position = p.position.Add(vec.Up(r.heightFromCenter()))
	r.body.AngularVelocity = 0
	r.body.Angle = 0
	r.nozzleFactor = 0
}

// checkGround settles the rocket when the nozzle tip reaches the pad.
func (p *launchPad) checkGround(r *rocket) {
	if r.body.Position.Y-r.heightFromCenter() <= p.position.Y {
		p.settle(r)
		r.onGround = true
	} else {
		r.onGround = false
	}
}

func (p *launchPad) draw(canvas *graphics.Canvas, screenWidth float64) {
	pad := []vec.Vector{
		{X: -p.width / 2, Y: 0},
		{X: p.width / 2, Y: 0},
		{X: p.width / 2, Y: -p.height},
		{X: -p.width / 2, Y: -p.height},
	}
	canvas.PolygonFill(transformAbout(pad, p.position, 0, p.position), padColor)
	groundY := p.position.Y - p.height
	canvas.Line(vec.Vector{X: -screenWidth / 2, Y: groundY}, vec.Vector{X: screenWidth / 2, Y: groundY}, padColor)
}
