package sprite

import (
	"errors"

	"physics-playground/internal/geom"
	"physics-playground/internal/vec"
)

// ErrNoShapes is returned when a collision mesh is requested before any
// shape has been added to the body.
var ErrNoShapes = errors.New("sprite: no shapes added to body")

// ErrMeshFrozen is returned when a shape is added after the collision mesh
// has been computed. The mesh is memoized and never recomputed implicitly;
// call ResetMesh to invalidate it explicitly.
var ErrMeshFrozen = errors.New("sprite: collision mesh already computed, reset it before adding shapes")

// Collider is the capability the broad-phase and collision response need
// from a body: its world-space mesh and an optional contact hook. The hook
// is invoked for any collider kind; physical resolution is a separate
// concern applied only to rigid bodies.
type Collider interface {
	// MeshWorld returns the body's center and its collision quad in world
	// coordinates.
	MeshWorld() (vec.Vector, geom.Polygon, error)
	// CollisionHandler returns the contact callback, or nil.
	CollisionHandler() func(self, other Collider)
}

// Body anchors a sprite group in the world. Its collision mesh is the
// axis-aligned bounding quad of all its shapes in local space, computed
// lazily on first query and cached until ResetMesh.
type Body struct {
	Position vec.Vector
	Angle    float64
	Scale    float64

	root      *Group
	mesh      geom.Polygon
	onContact func(self, other Collider)
}

// NewBody returns an empty body at the origin with scale 1.
func NewBody() *Body {
	return &Body{Scale: 1, root: NewGroup(nil, White)}
}

// AddGroup attaches a sprite group at the given offset. Fails with
// ErrMeshFrozen once the collision mesh has been computed.
func (b *Body) AddGroup(g *Group, position vec.Vector, angle, scale float64) error {
	if b.mesh != nil {
		return ErrMeshFrozen
	}
	b.root.Add(g, position, angle, scale)
	return nil
}

// AddRect attaches a rectangle shape, a convenience for the common case.
func (b *Body) AddRect(position vec.Vector, width, height float64, fromCenter bool, color Color) error {
	return b.AddGroup(NewGroup(RectVertices(vec.Vector{}, width, height, fromCenter), color), position, 0, 1)
}

// Shapes returns the body's drawable shapes in world space.
func (b *Body) Shapes() []Shape {
	return b.root.Transform(b.Position, b.Angle, b.Scale, true)
}

// LocalMesh returns the cached local-space bounding quad, computing it on
// first call. ErrNoShapes before anything was added.
func (b *Body) LocalMesh() (geom.Polygon, error) {
	if b.mesh != nil {
		return b.mesh, nil
	}
	flat := b.root.Flatten()
	var polys []geom.Polygon
	for _, s := range flat {
		if len(s.Vertices) > 0 {
			polys = append(polys, s.Vertices)
		}
	}
	if len(polys) == 0 {
		return nil, ErrNoShapes
	}
	quad, err := geom.BoundingQuad(polys...)
	if err != nil {
		return nil, err
	}
	b.mesh = quad
	return b.mesh, nil
}

// ResetMesh discards the cached mesh so shapes can be added again. The
// group flattening cache is rebuilt too.
func (b *Body) ResetMesh() {
	b.mesh = nil
	b.root.flattened = nil
}

// MeshWorld returns the body position and the collision quad transformed to
// world space (rotate by the body angle, scale, then translate).
func (b *Body) MeshWorld() (vec.Vector, geom.Polygon, error) {
	local, err := b.LocalMesh()
	if err != nil {
		return vec.Vector{}, nil, err
	}
	return b.Position, local.Transform(b.Position, b.Angle, b.Scale), nil
}

// SetCollisionHandler registers the callback fired with (self, other) when
// this body is the source of a contact.
func (b *Body) SetCollisionHandler(fn func(self, other Collider)) {
	b.onContact = fn
}

// CollisionHandler implements Collider.
func (b *Body) CollisionHandler() func(self, other Collider) {
	return b.onContact
}
