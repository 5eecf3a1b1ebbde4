// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"slices"

	"xu.dev/core/math32"
)

// NodeBase is a basic [Node] with a name, fixed bounds, and
// an ordered list of children. It is suitable for hosts that
// compute geometry elsewhere and for tests.
type NodeBase struct {

	// Name is a user-facing name for the node, used in diagnostics.
	Name string

	// Bounds is returned by [NodeBase.Geometry].
	Bounds math32.Box2

	// Children is the ordered list of children of this node.
	Children []Node
}

// NewNodeBase returns a new [NodeBase] with the given name and bounds.
func NewNodeBase(name string, bounds math32.Box2) *NodeBase {
	return &NodeBase{Name: name, Bounds: bounds}
}

func (n *NodeBase) String() string {
	return n.Name
}

func (n *NodeBase) Geometry() math32.Box2 { return n.Bounds }

func (n *NodeBase) NumChildren() int { return len(n.Children) }

func (n *NodeBase) Child(i int) Node { return n.Children[i] }

// AddChild adds the given children to the end of the list of children.
func (n *NodeBase) AddChild(kids ...Node) {
	n.Children = append(n.Children, kids...)
}

// NewChild makes a new [NodeBase] child with the given name
// and bounds, adds it, and returns it.
func (n *NodeBase) NewChild(name string, bounds math32.Box2) *NodeBase {
	kid := NewNodeBase(name, bounds)
	n.AddChild(kid)
	return kid
}

// DeleteChildAt removes the child at the given index,
// returning false if the index is out of range.
func (n *NodeBase) DeleteChildAt(i int) bool {
	if i < 0 || i >= len(n.Children) {
		return false
	}
	n.Children = slices.Delete(n.Children, i, i+1)
	return true
}

// DeleteChildren removes all children.
func (n *NodeBase) DeleteChildren() {
	n.Children = nil
}
