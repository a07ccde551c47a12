// Package geom holds polygon geometry: bounding quads, world transforms and
// the separating-axis intersection test used by the collision pipeline.
// Polygons are stored as ordered vertex lists; edge i connects vertex i to
// vertex i+1 (wrapping). Storage does not require convexity, but Intersect
// assumes both inputs are convex.
package geom

import (
	"errors"

	"physics-playground/internal/vec"
)

// ErrDegeneratePolygon is returned where a valid polygon (at least 3
// vertices) is required.
var ErrDegeneratePolygon = errors.New("geom: polygon needs at least 3 vertices")

// Polygon is an ordered sequence of vertices.
type Polygon []vec.Vector

// Validate fails with ErrDegeneratePolygon for polygons with fewer than 3
// vertices.
func (p Polygon) Validate() error {
	if len(p) < 3 {
		return ErrDegeneratePolygon
	}
	return nil
}

// Transform maps a local-space polygon to world space: rotate each vertex by
// angle, scale it, then translate by pos. The order is fixed; a body's scale
// applies after its rotation.
func (p Polygon) Transform(pos vec.Vector, angle, scale float64) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v.Rotate(angle).Mult(scale).Add(pos)
	}
	return out
}

// Rect returns the four corners of an axis-aligned rectangle spanning
// [minX, maxX] x [minY, maxY], wound from the top-left.
func Rect(minX, minY, maxX, maxY float64) Polygon {
	return Polygon{
		{X: minX, Y: maxY},
		{X: maxX, Y: maxY},
		{X: maxX, Y: minY},
		{X: minX, Y: minY},
	}
}

// BoundingQuad computes the axis-aligned rectangle enclosing every vertex of
// every given polygon. It is an over-approximation (min/max per coordinate),
// not a convex hull. Fails with ErrDegeneratePolygon when no vertices are
// given at all.
func BoundingQuad(polys ...Polygon) (Polygon, error) {
	first := true
	var minX, minY, maxX, maxY float64
	for _, p := range polys {
		for _, v := range p {
			if first {
				minX, maxX = v.X, v.X
				minY, maxY = v.Y, v.Y
				first = false
				continue
			}
			if v.X < minX {
				minX = v.X
			}
			if v.X > maxX {
				maxX = v.X
			}
			if v.Y < minY {
				minY = v.Y
			}
			if v.Y > maxY {
				maxY = v.Y
			}
		}
	}
	if first {
		return nil, ErrDegeneratePolygon
	}
	return Rect(minX, minY, maxX, maxY), nil
}

// AABB is an axis-aligned box with y increasing upward.
type AABB struct {
	Min, Max vec.Vector
}

// Overlaps reports whether two boxes intersect (touching edges count).
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y
}
