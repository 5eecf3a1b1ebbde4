// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strconv"

// Types determines the type of input event, and also the
// level at which one can select which events to listen to.
type Types int32 //enums:enum

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// WindowResize happens when the window has been resized,
	// which can happen continuously during a user resizing
	// episode.
	WindowResize

	// MouseMove is sent when the mouse moves, with the new
	// position relative to the top left of the window.
	MouseMove
)

// TypesN is the highest valid value for type Types, plus one.
const TypesN Types = 3

var typesNames = [...]string{
	UnknownType:  "UnknownType",
	WindowResize: "WindowResize",
	MouseMove:    "MouseMove",
}

// String returns the string representation of this Types value.
func (i Types) String() string {
	if i < 0 || i >= TypesN {
		return "Types(" + strconv.Itoa(int(i)) + ")"
	}
	return typesNames[i]
}

// Values returns all possible values for the type Types.
func (i Types) Values() []Types {
	return []Types{UnknownType, WindowResize, MouseMove}
}
