// Package sprite provides vector sprites (nested vertex groups) and the
// Body type that anchors them in the world and exposes a cached collision
// mesh to the physics pipeline.
package sprite

import (
	"physics-playground/internal/geom"
	"physics-playground/internal/vec"
)

// Color is an RGBA color carried alongside shapes so the core stays free of
// any rendering dependency; demos translate it at draw time.
type Color struct {
	R, G, B, A uint8
}

// White is the default shape color.
var White = Color{255, 255, 255, 255}

// relation places a child group relative to its parent: translate by
// Position after rotating by Angle and scaling by Scale.
type relation struct {
	Position vec.Vector
	Angle    float64
	Scale    float64
}

// Shape is a flattened group: one polygon with its color.
type Shape struct {
	Vertices geom.Polygon
	Color    Color
}

// Group is a tree of colored vertex lists. Leaf vertices live in the local
// frame of their group; child groups are attached with a position, angle and
// scale. The flattened form is memoized, so groups must not be modified
// after the first Flatten call.
type Group struct {
	Vertices  []vec.Vector
	Color     Color
	children  []*Group
	relations []relation
	flattened []Shape
}

// NewGroup returns a group over a copy of the given vertices.
func NewGroup(vertices []vec.Vector, color Color) *Group {
	g := &Group{
		Vertices: make([]vec.Vector, len(vertices)),
		Color:    color,
	}
	copy(g.Vertices, vertices)
	return g
}

// Copy duplicates the group's own vertices and color, without children.
func (g *Group) Copy() *Group {
	return NewGroup(g.Vertices, g.Color)
}

// FlipX mirrors the group's own vertices across the y axis.
func (g *Group) FlipX() *Group {
	out := g.Copy()
	for i, v := range out.Vertices {
		out.Vertices[i] = vec.Vector{X: -v.X, Y: v.Y}
	}
	return out
}

// FlipY mirrors the group's own vertices across the x axis.
func (g *Group) FlipY() *Group {
	out := g.Copy()
	for i, v := range out.Vertices {
		out.Vertices[i] = vec.Vector{X: v.X, Y: -v.Y}
	}
	return out
}

// RotateAboutOrigin returns a copy with the group's own vertices rotated
// about the local origin.
func (g *Group) RotateAboutOrigin(angle float64) *Group {
	out := g.Copy()
	for i, v := range out.Vertices {
		out.Vertices[i] = v.Rotate(angle)
	}
	return out
}

// Add attaches a child group at the given position, angle and scale.
func (g *Group) Add(child *Group, position vec.Vector, angle, scale float64) {
	g.children = append(g.children, child)
	g.relations = append(g.relations, relation{Position: position, Angle: angle, Scale: scale})
}

// Flatten resolves all child relations recursively into a flat list of
// shapes in this group's local frame. The result is computed once and
// cached.
func (g *Group) Flatten() []Shape {
	if g.flattened != nil {
		return g.flattened
	}
	var shapes []Shape
	for i, child := range g.children {
		rel := g.relations[i]
		for _, s := range child.Flatten() {
			shapes = append(shapes, Shape{
				Vertices: s.Vertices.Transform(rel.Position, rel.Angle, rel.Scale),
				Color:    s.Color,
			})
		}
	}
	shapes = append(shapes, Shape{Vertices: geom.Polygon(g.Vertices), Color: g.Color})
	g.flattened = shapes
	return shapes
}

// Transform maps the flattened shapes to world space. Shapes with fewer
// than 3 vertices are dropped unless checkValidity is false (the group's
// own empty root shape falls out here).
func (g *Group) Transform(pos vec.Vector, angle, scale float64, checkValidity bool) []Shape {
	var out []Shape
	for _, s := range g.Flatten() {
		if checkValidity && s.Vertices.Validate() != nil {
			continue
		}
		out = append(out, Shape{
			Vertices: s.Vertices.Transform(pos, angle, scale),
			Color:    s.Color,
		})
	}
	return out
}

// RectVertices returns the corners of a rectangle. With fromCenter the
// rectangle is centered on pos, otherwise pos is its top-left corner.
func RectVertices(pos vec.Vector, width, height float64, fromCenter bool) []vec.Vector {
	if fromCenter {
		return []vec.Vector{
			{X: pos.X - width/2, Y: pos.Y + height/2},
			{X: pos.X + width/2, Y: pos.Y + height/2},
			{X: pos.X + width/2, Y: pos.Y - height/2},
			{X: pos.X - width/2, Y: pos.Y - height/2},
		}
	}
	return []vec.Vector{
		{X: pos.X, Y: pos.Y},
		{X: pos.X + width, Y: pos.Y},
		{X: pos.X + width, Y: pos.Y - height},
		{X: pos.X, Y: pos.Y - height},
	}
}
