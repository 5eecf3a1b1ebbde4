// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"xu.dev/core/base/errors"
	"xu.dev/core/math32"
)

// nodeDesc is the YAML description of a [NodeBase] subtree:
//
//	name: root
//	bounds: [0, 0, 100, 100]
//	children:
//	  - name: a
//	    bounds: [0, 0, 50, 50]
type nodeDesc struct {
	Name     string      `yaml:"name"`
	Bounds   [4]float32  `yaml:"bounds,flow"`
	Children []*nodeDesc `yaml:"children,omitempty"`
}

// ReadYAML decodes a tree of [NodeBase] from YAML.
func ReadYAML(r io.Reader) (*NodeBase, error) {
	var d nodeDesc
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("tree: decoding yaml: %w", err)
	}
	return d.build(), nil
}

// OpenYAML decodes a tree of [NodeBase] from the given YAML file.
func OpenYAML(filename string) (*NodeBase, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadYAML(f)
}

// WriteYAML encodes the given tree of [NodeBase] as YAML.
// Children that are not [NodeBase] are written with their
// geometry and children only. A malformed tree is not written
// and an error wrapping [ErrMalformedTree] is returned.
func WriteYAML(w io.Writer, n Node) error {
	d, err := describe(n)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}

func (d *nodeDesc) build() *NodeBase {
	b := d.Bounds
	n := NewNodeBase(d.Name, math32.B2(b[0], b[1], b[2], b[3]))
	for _, kd := range d.Children {
		if kd == nil {
			continue
		}
		n.AddChild(kd.build())
	}
	return n
}

// describe returns the description of the tree at root, built in
// the pre-order of [WalkDown]: each node is the next child of the
// nearest ancestor that still has children to be visited.
func describe(root Node) (*nodeDesc, error) {
	type pending struct {
		desc *nodeDesc
		left int
	}
	var top *nodeDesc
	var stack []pending
	err := WalkDown(root, 0, func(n Node) bool {
		g := n.Geometry()
		d := &nodeDesc{Bounds: [4]float32{g.Min.X, g.Min.Y, g.Max.X, g.Max.Y}}
		if nb, ok := n.(*NodeBase); ok {
			d.Name = nb.Name
		}
		for len(stack) > 0 && stack[len(stack)-1].left == 0 {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			top = d
		} else {
			p := &stack[len(stack)-1]
			p.desc.Children = append(p.desc.Children, d)
			p.left--
		}
		stack = append(stack, pending{desc: d, left: n.NumChildren()})
		return Continue
	})
	if err != nil {
		return nil, err
	}
	if top == nil {
		return nil, errors.New("tree: cannot write an empty tree")
	}
	return top, nil
}
