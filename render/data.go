// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render holds the renderer-agnostic output of a core
// Context: command lists referencing flat vertex and index buffers.
package render

import (
	"fmt"

	"github.com/jinzhu/copier"

	"xu.dev/core/math32"
)

// Vertex is one vertex of render geometry.
type Vertex struct {

	// Pos is the position in window coordinates.
	Pos math32.Vector2 `yaml:"pos,flow"`

	// UV is the texture coordinate, in [0, 1] across the quad.
	UV math32.Vector2 `yaml:"uv,flow"`
}

// quadUVs are the texture coordinates of quad corners, in
// the order returned by [math32.Box2.Corners].
var quadUVs = [4]math32.Vector2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// quadIndices are the two triangles of a quad.
var quadIndices = [6]uint32{0, 1, 2, 0, 2, 3}

// Data is the flattened render output of one frame.
type Data struct {

	// CommandLists are the command lists of the frame, in submission order.
	CommandLists []CommandList `yaml:"commandLists"`

	// Vertices is the vertex buffer referenced by the commands.
	Vertices []Vertex `yaml:"vertices"`

	// Indices is the index buffer referenced by the commands.
	Indices []uint32 `yaml:"indices,flow"`
}

// Reset clears all command lists, vertices and indices.
// It preserves the existing slice memory for re-use.
func (d *Data) Reset() {
	clear(d.CommandLists)
	d.CommandLists = d.CommandLists[:0]
	d.Vertices = d.Vertices[:0]
	d.Indices = d.Indices[:0]
}

// PushQuad appends the four vertices and six indices of the given
// bounds to the buffers and a [DrawQuad] command for them to cl.
func (d *Data) PushQuad(cl *CommandList, bounds math32.Box2) {
	b := bounds.Canon()
	cmd := Command{
		Op:           DrawQuad,
		Bounds:       b,
		VertexOffset: uint32(len(d.Vertices)),
		IndexOffset:  uint32(len(d.Indices)),
		IndexCount:   uint32(len(quadIndices)),
	}
	for i, pos := range b.Corners() {
		d.Vertices = append(d.Vertices, Vertex{Pos: pos, UV: quadUVs[i]})
	}
	d.Indices = append(d.Indices, quadIndices[:]...)
	cl.Add(cmd)
}

// AddCommandList appends a finished command list.
func (d *Data) AddCommandList(cl CommandList) {
	d.CommandLists = append(d.CommandLists, cl)
}

// NumCommands returns the total number of commands in all lists.
func (d *Data) NumCommands() int {
	n := 0
	for _, cl := range d.CommandLists {
		n += len(cl)
	}
	return n
}

// Clone returns a deep copy of the data that does not share
// any memory with it.
func (d *Data) Clone() *Data {
	c := &Data{}
	if err := copier.CopyWithOption(c, d, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Errorf("render: cloning data: %w", err))
	}
	return c
}

// Validate checks that every command references geometry
// within the buffers.
func (d *Data) Validate() error {
	for li, cl := range d.CommandLists {
		for ci, cmd := range cl {
			end := int(cmd.IndexOffset) + int(cmd.IndexCount)
			if end > len(d.Indices) {
				return fmt.Errorf("render: command %d of list %d: index range %d-%d out of %d indices", ci, li, cmd.IndexOffset, end, len(d.Indices))
			}
			for _, idx := range d.Indices[cmd.IndexOffset:end] {
				if v := int(cmd.VertexOffset) + int(idx); v >= len(d.Vertices) {
					return fmt.Errorf("render: command %d of list %d: vertex %d out of %d vertices", ci, li, v, len(d.Vertices))
				}
			}
		}
	}
	return nil
}
