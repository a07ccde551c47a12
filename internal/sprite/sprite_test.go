package sprite

import (
	"errors"
	"math"
	"testing"

	"physics-playground/internal/vec"
)

const epsilon = 1e-9

func TestGroupFlatten(t *testing.T) {
	root := NewGroup(nil, White)
	child := NewGroup([]vec.Vector{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}, Color{255, 0, 0, 255})
	root.Add(child, vec.Vector{X: 10, Y: 0}, 0, 2)

	shapes := root.Flatten()
	// Child triangle plus the empty root shape.
	if len(shapes) != 2 {
		t.Fatalf("flattened %d shapes, want 2", len(shapes))
	}
	got := shapes[0].Vertices[0]
	if math.Abs(got.X-12) > epsilon || math.Abs(got.Y) > epsilon {
		t.Errorf("child vertex = %v, want (12, 0)", got)
	}
	if shapes[0].Color != (Color{255, 0, 0, 255}) {
		t.Errorf("child color lost: %v", shapes[0].Color)
	}
}

func TestTransformDropsDegenerate(t *testing.T) {
	root := NewGroup(nil, White)
	root.Add(NewGroup([]vec.Vector{{}, {X: 1}}, White), vec.Vector{}, 0, 1) // 2 vertices
	root.Add(NewGroup([]vec.Vector{{}, {X: 1}, {Y: 1}}, White), vec.Vector{}, 0, 1)

	if n := len(root.Transform(vec.Vector{}, 0, 1, true)); n != 1 {
		t.Errorf("valid shapes = %d, want 1", n)
	}
	if n := len(root.Transform(vec.Vector{}, 0, 1, false)); n != 3 {
		t.Errorf("unchecked shapes = %d, want 3", n)
	}
}

func TestBodyMeshBounds(t *testing.T) {
	b := NewBody()
	if err := b.AddRect(vec.Vector{}, 4, 2, true, White); err != nil {
		t.Fatal(err)
	}
	if err := b.AddRect(vec.Vector{X: 5, Y: 5}, 2, 2, true, White); err != nil {
		t.Fatal(err)
	}
	mesh, err := b.LocalMesh()
	if err != nil {
		t.Fatal(err)
	}
	// Union of both rectangles: x in [-2, 6], y in [-1, 6].
	for _, v := range mesh {
		if v.X < -2-epsilon || v.X > 6+epsilon || v.Y < -1-epsilon || v.Y > 6+epsilon {
			t.Errorf("mesh corner %v outside expected bounds", v)
		}
	}
	quad, _ := b.LocalMesh()
	if &quad[0] != &mesh[0] {
		t.Error("mesh must be cached, not recomputed")
	}
}

func TestBodyMeshWorldTransform(t *testing.T) {
	b := NewBody()
	if err := b.AddRect(vec.Vector{}, 2, 2, true, White); err != nil {
		t.Fatal(err)
	}
	b.Position = vec.Vector{X: 100, Y: 50}
	b.Angle = math.Pi / 2
	b.Scale = 3

	center, quad, err := b.MeshWorld()
	if err != nil {
		t.Fatal(err)
	}
	if center != b.Position {
		t.Errorf("mesh center = %v, want body position %v", center, b.Position)
	}
	// Local corner (-1, 1) rotated 90° ccw is (-1, -1), scaled (-3, -3),
	// translated (97, 47).
	got := quad[0]
	if math.Abs(got.X-97) > epsilon || math.Abs(got.Y-47) > epsilon {
		t.Errorf("world corner = %v, want (97, 47)", got)
	}
}

func TestBodyMeshErrors(t *testing.T) {
	b := NewBody()
	if _, _, err := b.MeshWorld(); !errors.Is(err, ErrNoShapes) {
		t.Errorf("mesh of empty body: err = %v, want ErrNoShapes", err)
	}

	if err := b.AddRect(vec.Vector{}, 1, 1, true, White); err != nil {
		t.Fatal(err)
	}
	if _, err := b.LocalMesh(); err != nil {
		t.Fatal(err)
	}
	// Mesh is frozen now.
	if err := b.AddRect(vec.Vector{}, 1, 1, true, White); !errors.Is(err, ErrMeshFrozen) {
		t.Errorf("add after mesh query: err = %v, want ErrMeshFrozen", err)
	}
	b.ResetMesh()
	if err := b.AddRect(vec.Vector{X: 10}, 1, 1, true, White); err != nil {
		t.Errorf("add after ResetMesh: err = %v", err)
	}
	mesh, err := b.LocalMesh()
	if err != nil {
		t.Fatal(err)
	}
	var maxX float64
	for _, v := range mesh {
		if v.X > maxX {
			maxX = v.X
		}
	}
	if maxX < 10 {
		t.Errorf("mesh after reset ignores the new shape (maxX = %v)", maxX)
	}
}
