package graphics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-playground/internal/geom"
	"physics-playground/internal/sprite"
	"physics-playground/internal/vec"
)

// Canvas maps world coordinates to screen pixels: scale first, then
// translate, then flip y when InvertY is set. With InvertY and a translate
// of half the screen size, the world origin sits at the screen center with
// y pointing up.
type Canvas struct {
	Scale     float64
	Translate vec.Vector
	InvertY   bool
}

// NewCanvas returns a canvas centered on a width x height screen with y
// pointing up.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Scale:     1,
		Translate: vec.Vector{X: float64(width) / 2, Y: -float64(height) / 2},
		InvertY:   true,
	}
}

// ToScreen converts a world point to screen pixels.
func (c *Canvas) ToScreen(p vec.Vector) rl.Vector2 {
	x := p.X*c.Scale + c.Translate.X
	y := p.Y*c.Scale + c.Translate.Y
	if c.InvertY {
		y = -y
	}
	return rl.NewVector2(float32(x), float32(y))
}

// ToWorld converts screen pixels (e.g. the mouse position) back to world
// coordinates. Inverse of ToScreen.
func (c *Canvas) ToWorld(x, y float32) vec.Vector {
	fy := float64(y)
	if c.InvertY {
		fy = -fy
	}
	return vec.Vector{
		X: (float64(x) - c.Translate.X) / c.Scale,
		Y: (fy - c.Translate.Y) / c.Scale,
	}
}

func toColor(col sprite.Color) rl.Color {
	return rl.NewColor(col.R, col.G, col.B, col.A)
}

// PolygonFill draws a filled convex polygon. Vertices are fanned from the
// first point, so concave shapes will render wrong.
func (c *Canvas) PolygonFill(poly geom.Polygon, col sprite.Color) {
	if len(poly) < 3 {
		return
	}
	points := make([]rl.Vector2, 0, len(poly)+1)
	for _, p := range poly {
		points = append(points, c.ToScreen(p))
	}
	// raylib fans counter-clockwise; a y-flip reverses winding.
	if c.InvertY {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}
	rl.DrawTriangleFan(points, toColor(col))
}

// PolygonLines draws the closed outline of a polygon.
func (c *Canvas) PolygonLines(poly geom.Polygon, col sprite.Color) {
	if len(poly) < 2 {
		return
	}
	for i := range poly {
		a := c.ToScreen(poly[i])
		b := c.ToScreen(poly[(i+1)%len(poly)])
		rl.DrawLineV(a, b, toColor(col))
	}
}

// Line draws a segment between two world points.
func (c *Canvas) Line(from, to vec.Vector, col sprite.Color) {
	rl.DrawLineV(c.ToScreen(from), c.ToScreen(to), toColor(col))
}

// Circle draws a circle with a world-space radius.
func (c *Canvas) Circle(center vec.Vector, radius float64, col sprite.Color, fill bool) {
	p := c.ToScreen(center)
	r := float32(radius * c.Scale)
	if fill {
		rl.DrawCircleV(p, r, toColor(col))
	} else {
		rl.DrawCircleLinesV(p, r, toColor(col))
	}
}

// Arrow draws a segment with a head at the tip, for force and velocity
// overlays.
func (c *Canvas) Arrow(from, to vec.Vector, col sprite.Color) {
	a := c.ToScreen(from)
	b := c.ToScreen(to)
	rl.DrawLineV(a, b, toColor(col))

	const headLen = 8
	const headAngle = math32.Pi / 7
	angle := math32.Atan2(b.Y-a.Y, b.X-a.X)
	for _, side := range [2]float32{headAngle, -headAngle} {
		s, cos := math32.Sincos(angle + math32.Pi + side)
		tip := rl.NewVector2(b.X+cos*headLen, b.Y+s*headLen)
		rl.DrawLineV(b, tip, toColor(col))
	}
}

// Text draws a label anchored at a world point.
func (c *Canvas) Text(s string, p vec.Vector, size int32, col sprite.Color) {
	sp := c.ToScreen(p)
	rl.DrawText(s, int32(sp.X), int32(sp.Y), size, toColor(col))
}

// TextScreen draws a label at raw screen pixels, for HUD elements that must
// not move with the world.
func (c *Canvas) TextScreen(s string, x, y, size int32, col sprite.Color) {
	rl.DrawText(s, x, y, size, toColor(col))
}

// MouseWorld returns the mouse position in world coordinates.
func (c *Canvas) MouseWorld() vec.Vector {
	m := rl.GetMousePosition()
	return c.ToWorld(m.X, m.Y)
}
