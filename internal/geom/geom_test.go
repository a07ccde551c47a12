package geom

import (
	"errors"
	"math"
	"testing"

	"physics-playground/internal/vec"
)

const epsilon = 1e-9

func unitSquare(cx, cy float64) Polygon {
	return Rect(cx-0.5, cy-0.5, cx+0.5, cy+0.5)
}

func TestIntersectOverlappingSquares(t *testing.T) {
	mtv, hit := Intersect(unitSquare(0, 0), unitSquare(0.5, 0))
	if !hit {
		t.Fatal("expected overlap for squares half a unit apart")
	}
	if math.Abs(mtv.Length()-0.5) > epsilon {
		t.Errorf("penetration depth = %v, want 0.5", mtv.Length())
	}
	if math.Abs(mtv.Y) > epsilon {
		t.Errorf("minimum axis should be horizontal, got %v", mtv)
	}
}

func TestIntersectSeparatedSquares(t *testing.T) {
	if _, hit := Intersect(unitSquare(0, 0), unitSquare(2, 0)); hit {
		t.Error("squares two units apart must not collide")
	}
}

func TestIntersectDiagonalSeparation(t *testing.T) {
	// A diamond past the square's corner: the x and y projections both
	// overlap, only the diamond's diagonal edge axis separates.
	diamond := Polygon{{X: 0.4, Y: 1.2}, {X: 1.2, Y: 2.0}, {X: 2.0, Y: 1.2}, {X: 1.2, Y: 0.4}}
	if _, hit := Intersect(unitSquare(0, 0), diamond); hit {
		t.Error("diamond beyond the square's corner must not collide")
	}
}

func TestIntersectContainment(t *testing.T) {
	outer := Rect(-2, -2, 2, 2)
	inner := unitSquare(0, 0)
	mtv, hit := Intersect(outer, inner)
	if !hit {
		t.Fatal("contained square must report contact")
	}
	// Projection intervals overlap by the inner square's width on every
	// axis, so the reported depth is 1.
	if math.Abs(mtv.Length()-1) > epsilon {
		t.Errorf("containment depth = %v, want 1", mtv.Length())
	}
}

func TestBoundingQuad(t *testing.T) {
	tri := Polygon{{X: -1, Y: 0}, {X: 2, Y: 3}, {X: 0, Y: -2}}
	bar := Polygon{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 1}, {X: 0, Y: 1}}
	quad, err := BoundingQuad(tri, bar)
	if err != nil {
		t.Fatal(err)
	}
	if len(quad) != 4 {
		t.Fatalf("bounding quad has %d corners", len(quad))
	}
	want, _ := BoundingQuad(Rect(-1, -2, 5, 3))
	for i := range quad {
		if quad[i] != want[i] {
			t.Errorf("corner %d = %v, want %v", i, quad[i], want[i])
		}
	}

	if _, err := BoundingQuad(); !errors.Is(err, ErrDegeneratePolygon) {
		t.Errorf("empty input: err = %v, want ErrDegeneratePolygon", err)
	}
}

func TestTransformOrder(t *testing.T) {
	// Rotate, then scale, then translate. A vertex at (1,0) turned 90°
	// ccw, doubled, moved by (10,0) must land on (10,2).
	p := Polygon{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	got := p.Transform(vec.Vector{X: 10}, math.Pi/2, 2)
	if math.Abs(got[0].X-10) > epsilon || math.Abs(got[0].Y-2) > epsilon {
		t.Errorf("transformed vertex = %v, want (10, 2)", got[0])
	}
}

func TestValidate(t *testing.T) {
	if err := (Polygon{{}, {}}).Validate(); !errors.Is(err, ErrDegeneratePolygon) {
		t.Errorf("2-vertex polygon: err = %v, want ErrDegeneratePolygon", err)
	}
	if err := (Polygon{{}, {X: 1}, {Y: 1}}).Validate(); err != nil {
		t.Errorf("3-vertex polygon: err = %v, want nil", err)
	}
}

func TestAABBOverlaps(t *testing.T) {
	a := AABB{Min: vec.Vector{X: 0, Y: 0}, Max: vec.Vector{X: 2, Y: 2}}
	b := AABB{Min: vec.Vector{X: 1, Y: 1}, Max: vec.Vector{X: 3, Y: 3}}
	c := AABB{Min: vec.Vector{X: 3, Y: 0}, Max: vec.Vector{X: 4, Y: 1}}
	if !a.Overlaps(b) || !b.Overlaps(a) {
		t.Error("a and b must overlap")
	}
	if a.Overlaps(c) {
		t.Error("a and c must not overlap")
	}
}
