// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree defines the widget tree contract consumed by a core
// Context, a basic node implementation, and the iterative pre-order
// walk used to flatten a tree into render data.
package tree

import "xu.dev/core/math32"

// Node is the read-only view of a widget that the core needs: its
// bounds and its ordered children. The tree itself is owned and
// defined outside of the core.
//
// Nodes may be pointers or values. Only pointer nodes are checked for
// being reached more than once by [WalkDown], so equal value nodes in
// different places of the tree are distinct widgets.
type Node interface {

	// Geometry returns the rectangular bounds of the node.
	Geometry() math32.Box2

	// NumChildren returns the number of children of the node.
	NumChildren() int

	// Child returns the child at the given index,
	// which is in the range [0, NumChildren).
	Child(i int) Node
}

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)
