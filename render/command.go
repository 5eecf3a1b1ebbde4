// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"strconv"

	"xu.dev/core/math32"
)

// CommandType identifies the type of a [Command].
type CommandType uint8 //enums:enum

const (
	// DrawQuad draws an axis-aligned quad: two triangles over
	// four vertices, covering [Command.Bounds].
	DrawQuad CommandType = iota
)

var commandTypeNames = [...]string{
	DrawQuad: "DrawQuad",
}

func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "CommandType(" + strconv.Itoa(int(c)) + ")"
}

// MarshalText implements [encoding.TextMarshaler].
func (c CommandType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *CommandType) UnmarshalText(text []byte) error {
	for i, nm := range commandTypeNames {
		if nm == string(text) {
			*c = CommandType(i)
			return nil
		}
	}
	return fmt.Errorf("render: unknown command type %q", text)
}

// Command is one draw command. Its geometry is the range
// [IndexOffset, IndexOffset+IndexCount) of [Data.Indices], whose
// values are relative to VertexOffset in [Data.Vertices].
type Command struct {
	Op           CommandType `yaml:"op"`
	Bounds       math32.Box2 `yaml:"bounds"`
	VertexOffset uint32      `yaml:"vertexOffset"`
	IndexOffset  uint32      `yaml:"indexOffset"`
	IndexCount   uint32      `yaml:"indexCount"`
}

func (c Command) String() string {
	return fmt.Sprintf("%v%v{v: %d, i: %d+%d}", c.Op, c.Bounds, c.VertexOffset, c.IndexOffset, c.IndexCount)
}

// CommandList is an ordered list of [Command]s.
type CommandList []Command

// Add adds command(s) to the list.
func (cl *CommandList) Add(cmd ...Command) CommandList {
	*cl = append(*cl, cmd...)
	return *cl
}
