// Package chain implements a constrained kinematic node tree: every
// non-root node keeps a fixed distance to its parent, and every
// grandparent-parent-child triple keeps its bend angle inside a global
// limit. Moving the root propagates corrections down the tree, which gives
// procedural bodies (snakes, tails, ropes) their motion.
//
// The chain owns every node in one tag-indexed table; the parent and child
// links between nodes are plain references into that owned set, so there
// are no ownership cycles.
package chain

import (
	"errors"
	"fmt"
	"math"

	"physics-playground/internal/vec"
)

// ErrDuplicateTag is returned when a node tag is already taken.
var ErrDuplicateTag = errors.New("chain: duplicate node tag")

// ErrUnknownParent is returned when the named parent is not part of the
// chain.
var ErrUnknownParent = errors.New("chain: unknown parent tag")

// Node is one joint of the chain. All fields except Pos are fixed after
// insertion.
type Node struct {
	Pos vec.Vector
	Tag string

	Parent           *Node
	DistanceToParent float64
	Children         []*Node
}

// DirectionToParent returns the unit vector from the node toward its
// parent. ok is false for the root.
func (n *Node) DirectionToParent() (dir vec.Vector, ok bool) {
	if n.Parent == nil {
		return vec.Vector{}, false
	}
	return n.Parent.Pos.Sub(n.Pos).NormalizeOrZero(), true
}

// constrainToParent pulls the node back onto the fixed-radius circle around
// its parent, preserving the current direction. The parent must already be
// at its corrected position.
func (n *Node) constrainToParent() {
	dir, ok := n.DirectionToParent()
	if !ok {
		return
	}
	n.Pos = n.Parent.Pos.Sub(dir.Mult(n.DistanceToParent))
}

// Chain is a rooted tree of nodes with global bend-angle limits. It only
// grows; nodes are never removed.
type Chain struct {
	Root     *Node
	MinAngle float64
	MaxAngle float64

	nodes map[string]*Node
}

// New returns a chain with a single root node and the given bend limits
// (applied to the absolute angle at every triple).
func New(rootPos vec.Vector, rootTag string, minAngle, maxAngle float64) *Chain {
	root := &Node{Pos: rootPos, Tag: rootTag}
	return &Chain{
		Root:     root,
		MinAngle: minAngle,
		MaxAngle: maxAngle,
		nodes:    map[string]*Node{rootTag: root},
	}
}

// Find returns the node with the given tag, or nil.
func (c *Chain) Find(tag string) *Node {
	return c.nodes[tag]
}

// Len returns the number of nodes including the root.
func (c *Chain) Len() int {
	return len(c.nodes)
}

// AddNode inserts a new node under the named parent. The link distance is
// frozen at the Euclidean distance between pos and the parent's position at
// insertion time.
func (c *Chain) AddNode(pos vec.Vector, tag, parentTag string) (*Node, error) {
	if _, exists := c.nodes[tag]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateTag, tag)
	}
	parent, ok := c.nodes[parentTag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParent, parentTag)
	}
	node := &Node{
		Pos:              pos,
		Tag:              tag,
		Parent:           parent,
		DistanceToParent: parent.Pos.Distance(pos),
	}
	parent.Children = append(parent.Children, node)
	c.nodes[tag] = node
	return node, nil
}

// Nodes returns all nodes in breadth-first order from the root, so a parent
// always precedes its children.
func (c *Chain) Nodes() []*Node {
	out := make([]*Node, 0, len(c.nodes))
	queue := []*Node{c.Root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		out = append(out, n)
		queue = append(queue, n.Children...)
	}
	return out
}

// MoveRoot places the root and re-satisfies the constraints: first the
// distance pass, then the angle pass with both-sides correction.
func (c *Chain) MoveRoot(pos vec.Vector) {
	c.Root.Pos = pos
	c.ApplyDistanceConstraint()
	c.ApplyAngleConstraint(true)
}

// ApplyDistanceConstraint snaps every non-root node back to its fixed
// distance from its parent, in breadth-first order. Already-satisfied
// chains are a fixed point: applying it twice changes nothing.
func (c *Chain) ApplyDistanceConstraint() {
	for _, n := range c.Nodes() {
		n.constrainToParent()
	}
}

// ApplyAngleConstraint walks every grandparent-parent-node triple and, when
// the absolute bend angle at the parent leaves [MinAngle, MaxAngle],
// rotates the endpoints about the parent to close the gap. With
// updateBothNodes the correction is split evenly between grandparent and
// node; otherwise the grandparent takes all of it. Triples whose angle is
// undefined (coincident points) are skipped.
func (c *Chain) ApplyAngleConstraint(updateBothNodes bool) {
	for _, n := range c.Nodes() {
		if n.Parent == nil || n.Parent.Parent == nil {
			continue
		}
		grand := n.Parent.Parent
		pivot := n.Parent

		angle, err := grand.Pos.Sub(pivot.Pos).Angle(n.Pos.Sub(pivot.Pos))
		if err != nil {
			continue
		}
		abs := math.Abs(angle)
		if abs >= c.MinAngle && abs <= c.MaxAngle {
			continue
		}

		var deltaGrand, deltaNode float64
		if abs < c.MinAngle {
			delta := c.MinAngle - abs
			if updateBothNodes {
				deltaGrand = delta / 2 * -vec.Sign(angle)
				deltaNode = delta / 2 * vec.Sign(angle)
			} else {
				deltaGrand = delta * -vec.Sign(angle)
			}
		} else {
			delta := c.MaxAngle - abs // negative: rotate back toward the limit
			if updateBothNodes {
				deltaGrand = delta / 2 * vec.Sign(angle)
				deltaNode = delta / 2 * -vec.Sign(angle)
			} else {
				deltaGrand = delta * vec.Sign(angle)
			}
		}
		grand.Pos = grand.Pos.RotateAround(deltaGrand, pivot.Pos)
		n.Pos = n.Pos.RotateAround(deltaNode, pivot.Pos)
	}
}
