package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"physics-playground/internal/config"
	"physics-playground/internal/graphics"
	"physics-playground/internal/physics"
	"physics-playground/internal/sprite"
	"physics-playground/internal/vec"
)

const (
	initialBoxes = 12
	minBoxSize   = 20
	maxBoxSize   = 50
	boxMass      = 2
	spawnSpeed   = 150
	// flashTicks: how long a box stays highlighted after a contact.
	flashTicks = 8
)

var (
	boxColor   = sprite.Color{R: 200, G: 200, B: 200, A: 255}
	flashColor = sprite.Color{R: 255, G: 120, B: 60, A: 255}
	wallColor  = sprite.Color{R: 90, G: 90, B: 90, A: 255}
)

type box struct {
	*physics.RigidBody
	size  float64
	flash int
}

type sim struct {
	prefs  config.Prefs
	world  *physics.World
	boxes  []*box
	canvas *graphics.Canvas

	// arena half extents in world units
	halfW, halfH float64
}

func newSim(prefs config.Prefs) (*sim, error) {
	s := &sim{
		prefs:  prefs,
		world:  physics.NewWorld(prefs.CellSize, prefs.Restitution),
		canvas: graphics.NewCanvas(prefs.Window.Width, prefs.Window.Height),
		halfW:  float64(prefs.Window.Width)/2 - maxBoxSize,
		halfH:  float64(prefs.Window.Height)/2 - maxBoxSize,
	}
	for i := 0; i < initialBoxes; i++ {
		pos := vec.Vector{
			X: (rand.Float64()*2 - 1) * s.halfW * 0.8,
			Y: (rand.Float64()*2 - 1) * s.halfH * 0.8,
		}
		if err := s.spawnAt(pos); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// spawnAt drops a new box with a random size and velocity at pos.
func (s *sim) spawnAt(pos vec.Vector) error {
	size := minBoxSize + rand.Float64()*(maxBoxSize-minBoxSize)
	moi := boxMass * size * size / 6
	body, err := physics.NewRigidBody(boxMass, moi)
	if err != nil {
		return fmt.Errorf("spawn box: %w", err)
	}
	if err := body.AddRect(vec.Vector{}, size, size, true, boxColor); err != nil {
		return fmt.Errorf("spawn box: %w", err)
	}
	body.Position = pos
	body.Velocity = vec.Random().Mult(spawnSpeed)

	b := &box{RigidBody: body, size: size}
	body.SetCollisionHandler(func(self, other sprite.Collider) {
		b.flash = flashTicks
	})

	s.world.Add(body)
	s.boxes = append(s.boxes, b)
	return nil
}

func (s *sim) step(dt float64) {
	gravity := vec.Down(s.prefs.Gravity * boxMass * 10)
	for _, b := range s.boxes {
		b.Step(gravity, 0, dt)
		s.clampToArena(b)
		if b.flash > 0 {
			b.flash--
		}
	}
	s.world.Tick()
	for _, err := range s.world.TickErrors() {
		fmt.Fprintln(os.Stderr, "boxes:", err)
	}
}

// clampToArena keeps a box inside the walls by reflecting the velocity
// component pointing out of the arena.
func (s *sim) clampToArena(b *box) {
	half := b.size / 2
	if b.Position.X-half < -s.halfW {
		b.Position.X = -s.halfW + half
		if b.Velocity.X < 0 {
			b.Velocity.X = -b.Velocity.X * s.prefs.Restitution
		}
	} else if b.Position.X+half > s.halfW {
		b.Position.X = s.halfW - half
		if b.Velocity.X > 0 {
			b.Velocity.X = -b.Velocity.X * s.prefs.Restitution
		}
	}
	if b.Position.Y-half < -s.halfH {
		b.Position.Y = -s.halfH + half
		if b.Velocity.Y < 0 {
			b.Velocity.Y = -b.Velocity.Y * s.prefs.Restitution
		}
	} else if b.Position.Y+half > s.halfH {
		b.Position.Y = s.halfH - half
		if b.Velocity.Y > 0 {
			b.Velocity.Y = -b.Velocity.Y * s.prefs.Restitution
		}
	}
}

func (s *sim) draw() {
	// arena walls
	s.canvas.Line(vec.Vector{X: -s.halfW, Y: -s.halfH}, vec.Vector{X: s.halfW, Y: -s.halfH}, wallColor)
	s.canvas.Line(vec.Vector{X: s.halfW, Y: -s.halfH}, vec.Vector{X: s.halfW, Y: s.halfH}, wallColor)
	s.canvas.Line(vec.Vector{X: s.halfW, Y: s.halfH}, vec.Vector{X: -s.halfW, Y: s.halfH}, wallColor)
	s.canvas.Line(vec.Vector{X: -s.halfW, Y: s.halfH}, vec.Vector{X: -s.halfW, Y: -s.halfH}, wallColor)

	for _, b := range s.boxes {
		for _, shape := range b.Shapes() {
			col := shape.Color
			if b.flash > 0 {
				col = flashColor
			}
			s.canvas.PolygonFill(shape.Vertices, col)
		}
		s.canvas.Arrow(b.Position, b.Position.Add(b.Velocity.Mult(0.2)), sprite.Color{R: 60, G: 200, B: 120, A: 255})
	}
}
