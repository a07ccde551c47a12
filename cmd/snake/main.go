// Command snake is a procedural animation demo: a constrained chain of
// segments follows the mouse, with joint limits keeping the body from
// folding onto itself.
package main

import (
	"math"
	"strconv"

	"physics-playground/internal/chain"
	"physics-playground/internal/config"
	"physics-playground/internal/debug"
	"physics-playground/internal/graphics"
	"physics-playground/internal/sprite"
	"physics-playground/internal/vec"
)

func main() {
	prefs := config.Load()

	s := newSnake()
	canvas := graphics.NewCanvas(prefs.Window.Width, prefs.Window.Height)

	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowMemAlloc = prefs.ShowMem

	update := func() {
		s.body.MoveRoot(canvas.MouseWorld())
	}
	draw := func() {
		s.draw(canvas)
		dbg.Draw()
	}
	graphics.Run("snake", int32(prefs.Window.Width), int32(prefs.Window.Height), int32(prefs.FPS), update, draw)
}

var (
	lineColor    = sprite.Color{R: 255, G: 255, B: 255, A: 255}
	skeletonTint = sprite.Color{R: 110, G: 110, B: 110, A: 255}
)

type snake struct {
	body  *chain.Chain
	radii []float64
}

// newSnake builds the segment chain head to tail, each segment spaced by
// its radius so neighboring circles just touch.
func newSnake() *snake {
	radii := []float64{
		30, 35, 40, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 28,
		25, 25, 22, 22, 20, 20, 20, 20, 20, 20, 18, 18, 16, 16, 14, 14,
		12, 12, 10, 10,
	}
	s := &snake{
		body:  chain.New(vec.Vector{X: 0, Y: 100}, tag(0), 0.8*math.Pi, math.Pi),
		radii: radii,
	}
	for i := 1; i < len(radii); i++ {
		parent := s.body.Find(tag(i - 1))
		pos := parent.Pos.Add(vec.Right(radii[i]))
		// tags are unique by construction and the parent always exists
		s.body.AddNode(pos, tag(i), parent.Tag)
	}
	return s
}

func tag(i int) string {
	return strconv.Itoa(i)
}

func (s *snake) radius(n *chain.Node) float64 {
	i, _ := strconv.Atoi(n.Tag)
	return s.radii[i]
}

// segmentDir returns the along-body direction at a node: toward the parent,
// or away from the first child at the head.
func (s *snake) segmentDir(n *chain.Node) vec.Vector {
	if dir, ok := n.DirectionToParent(); ok {
		return dir
	}
	if len(n.Children) > 0 {
		dir, _ := n.Children[0].DirectionToParent()
		return dir
	}
	return vec.Right(1)
}

func (s *snake) draw(canvas *graphics.Canvas) {
	nodes := s.body.Nodes()

	// skeleton: segment circles and the spine connecting them
	for _, n := range nodes {
		canvas.Circle(n.Pos, s.radius(n), skeletonTint, false)
		if n.Parent != nil {
			canvas.Line(n.Pos, n.Parent.Pos, skeletonTint)
		}
	}

	// body outline: for each segment project the radius sideways on both
	// flanks, then join consecutive flank points
	var top, bot []vec.Vector
	for _, n := range nodes {
		side := s.segmentDir(n).Mult(s.radius(n)).Add(n.Pos).RotateAround(math.Pi/2, n.Pos)
		bot = append(bot, side)
		top = append(top, side.RotateAround(-math.Pi, n.Pos))
	}
	drawPolyline(canvas, bot)
	drawPolyline(canvas, top)

	// rounded caps at the head and the tail
	head, tail := nodes[0], nodes[len(nodes)-1]
	drawCap(canvas, head.Pos, s.segmentDir(head).Neg(), s.radius(head))
	drawCap(canvas, tail.Pos, s.segmentDir(tail), s.radius(tail))
}

func drawPolyline(canvas *graphics.Canvas, points []vec.Vector) {
	for i := 0; i+1 < len(points); i++ {
		canvas.Line(points[i], points[i+1], lineColor)
	}
}

// drawCap draws a half circle of radius r facing dir, as an arc of short
// segments rotated about the center.
func drawCap(canvas *graphics.Canvas, center, dir vec.Vector, r float64) {
	const segs = 6
	p := dir.Mult(r).Add(center).RotateAround(-math.Pi/2, center)
	for i := 0; i < segs; i++ {
		next := p.RotateAround(math.Pi/segs, center)
		canvas.Line(p, next, lineColor)
		p = next
	}
}
