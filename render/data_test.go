// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"xu.dev/core/math32"
)

func TestPushQuad(t *testing.T) {
	d := &Data{}
	var cl CommandList
	d.PushQuad(&cl, math32.B2(0, 0, 10, 20))
	d.PushQuad(&cl, math32.B2(30, 40, 20, 30))
	d.AddCommandList(cl)

	want := &Data{
		CommandLists: []CommandList{{
			{Op: DrawQuad, Bounds: math32.B2(0, 0, 10, 20), VertexOffset: 0, IndexOffset: 0, IndexCount: 6},
			{Op: DrawQuad, Bounds: math32.B2(20, 30, 30, 40), VertexOffset: 4, IndexOffset: 6, IndexCount: 6},
		}},
		Vertices: []Vertex{
			{Pos: math32.Vec2(0, 0), UV: math32.Vec2(0, 0)},
			{Pos: math32.Vec2(10, 0), UV: math32.Vec2(1, 0)},
			{Pos: math32.Vec2(10, 20), UV: math32.Vec2(1, 1)},
			{Pos: math32.Vec2(0, 20), UV: math32.Vec2(0, 1)},
			{Pos: math32.Vec2(20, 30), UV: math32.Vec2(0, 0)},
			{Pos: math32.Vec2(30, 30), UV: math32.Vec2(1, 0)},
			{Pos: math32.Vec2(30, 40), UV: math32.Vec2(1, 1)},
			{Pos: math32.Vec2(20, 40), UV: math32.Vec2(0, 1)},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3, 0, 1, 2, 0, 2, 3},
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("PushQuad (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, d.NumCommands())
	assert.NoError(t, d.Validate())
}

func TestReset(t *testing.T) {
	d := &Data{}
	var cl CommandList
	d.PushQuad(&cl, math32.B2(0, 0, 1, 1))
	d.AddCommandList(cl)
	d.Reset()
	assert.Empty(t, d.CommandLists)
	assert.Empty(t, d.Vertices)
	assert.Empty(t, d.Indices)
	assert.Equal(t, 0, d.NumCommands())
}

func TestClone(t *testing.T) {
	d := &Data{}
	var cl CommandList
	d.PushQuad(&cl, math32.B2(0, 0, 1, 1))
	d.PushQuad(&cl, math32.B2(1, 1, 2, 2))
	d.AddCommandList(cl)

	c := d.Clone()
	if diff := cmp.Diff(d, c, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("Clone (-orig +clone):\n%s", diff)
	}
	d.Vertices[0].Pos = math32.Vec2(9, 9)
	d.Indices[0] = 7
	d.CommandLists[0][0].IndexCount = 0
	assert.Equal(t, math32.Vec2(0, 0), c.Vertices[0].Pos)
	assert.Equal(t, uint32(0), c.Indices[0])
	assert.Equal(t, uint32(6), c.CommandLists[0][0].IndexCount)

	empty := (&Data{}).Clone()
	if diff := cmp.Diff(&Data{}, empty, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Clone of empty (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	d := &Data{}
	var cl CommandList
	d.PushQuad(&cl, math32.B2(0, 0, 1, 1))
	d.AddCommandList(cl)
	require.NoError(t, d.Validate())

	d.Vertices = d.Vertices[:3]
	assert.ErrorContains(t, d.Validate(), "vertex 3 out of 3 vertices")
	d.Indices = d.Indices[:5]
	assert.ErrorContains(t, d.Validate(), "index range 0-6 out of 5 indices")
}

func TestCommandTypeText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, yaml.NewEncoder(&buf).Encode(Command{Op: DrawQuad, IndexCount: 6}))
	assert.Contains(t, buf.String(), "op: DrawQuad")

	var c Command
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &c))
	assert.Equal(t, Command{Op: DrawQuad, IndexCount: 6}, c)

	var ct CommandType
	assert.Error(t, ct.UnmarshalText([]byte("Bogus")))
	assert.Equal(t, "CommandType(7)", CommandType(7).String())
}
