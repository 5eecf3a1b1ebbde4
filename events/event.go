// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input events accepted by a core
// Context, the FIFO queue that buffers them, and the listeners
// that receive them once dispatched.
package events

import (
	"fmt"
	"image"
)

// Event is a single input occurrence. It is a closed union:
// only [WindowResizeEvent] and [MouseMoveEvent] implement it,
// so a type switch over those two covers every event.
// Events are immutable values and are copied into the [Queue].
type Event interface {
	fmt.Stringer

	// Type returns the variant tag of the event.
	Type() Types

	isEvent()
}

// Concrete is satisfied by the concrete event structs, for
// functions such as [On] that need the zero value of an event.
type Concrete interface {
	WindowResizeEvent | MouseMoveEvent
	Event
}

// WindowResizeEvent reports a new window size.
type WindowResizeEvent struct {

	// Size is the new window size.
	Size image.Point
}

// NewWindowResize returns a [WindowResizeEvent] for the given size.
func NewWindowResize(width, height int) WindowResizeEvent {
	return WindowResizeEvent{Size: image.Pt(width, height)}
}

func (ev WindowResizeEvent) Type() Types { return WindowResize }

func (ev WindowResizeEvent) String() string {
	return fmt.Sprintf("%v{Size: %v}", ev.Type(), ev.Size)
}

func (WindowResizeEvent) isEvent() {}

// MouseMoveEvent reports a new mouse position.
type MouseMoveEvent struct {

	// Pos is the new mouse position, relative to the top left
	// of the window.
	Pos image.Point
}

// NewMouseMove returns a [MouseMoveEvent] for the given position.
func NewMouseMove(x, y int) MouseMoveEvent {
	return MouseMoveEvent{Pos: image.Pt(x, y)}
}

func (ev MouseMoveEvent) Type() Types { return MouseMove }

func (ev MouseMoveEvent) String() string {
	return fmt.Sprintf("%v{Pos: %v}", ev.Type(), ev.Pos)
}

func (MouseMoveEvent) isEvent() {}
