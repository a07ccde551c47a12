package geom

import (
	"math"

	"physics-playground/internal/vec"
)

// Intersect runs the separating-axis test on two convex polygons already in
// world space. It returns no contact as soon as one separating axis is
// found. On contact it returns the minimum-translation vector: direction
// along the least-penetrating axis, magnitude equal to the penetration
// depth.
//
// Axes are the edge directions of both polygons, unnormalized. Vertices are
// projected with the factor f = (p - origin)·dir / |dir|²; the per-axis
// interval overlap is min(maxA, maxB) - max(minA, minB) in factor space,
// which maps back to a world-space depth of overlap·|dir|.
func Intersect(a, b Polygon) (vec.Vector, bool) {
	smallest := math.MaxFloat64
	var mtv vec.Vector

	for _, p := range [2]Polygon{a, b} {
		for i := range p {
			origin := p[i]
			dir := p[(i+1)%len(p)].Sub(origin)
			lenSq := dir.LengthSq()
			if lenSq == 0 {
				// Repeated vertex; no axis to test.
				continue
			}
			minA, maxA := project(a, origin, dir, lenSq)
			minB, maxB := project(b, origin, dir, lenSq)
			overlap := math.Min(maxA, maxB) - math.Max(minA, minB)
			if overlap < 0 {
				return vec.Vector{}, false
			}
			// Difference of the factor-mapped interval endpoints:
			// dir·min(maxA,maxB) - dir·max(minA,minB) = dir·overlap,
			// a world-space vector of length overlap·|dir|.
			if depth := overlap * math.Sqrt(lenSq); depth < smallest {
				smallest = depth
				mtv = dir.Mult(overlap)
			}
		}
	}
	return mtv, true
}

// project returns the projection interval of every vertex of p on the axis
// through origin with direction dir, in factor space.
func project(p Polygon, origin, dir vec.Vector, lenSq float64) (lo, hi float64) {
	for i, v := range p {
		f := v.Sub(origin).Dot(dir) / lenSq
		if i == 0 {
			lo, hi = f, f
			continue
		}
		if f < lo {
			lo = f
		}
		if f > hi {
			hi = f
		}
	}
	return lo, hi
}
