// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package remote provides a WebSocket input source for a core
// Context: a server [Handler] that decodes events sent by remote
// clients and a [Client] that sends them.
package remote

import (
	"encoding/json"
	"fmt"

	"xu.dev/core/events"
)

// Message type names.
const (
	TypeMouseMove    = "mouse-move"
	TypeWindowResize = "window-resize"
)

// Message is the JSON wire form of an event:
//
//	{"type":"mouse-move","x":5,"y":5}
//	{"type":"window-resize","x":100,"y":100}
//
// For a window resize, X and Y are the width and height.
type Message struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// NewMessage returns the [Message] for the given event.
func NewMessage(ev events.Event) (Message, error) {
	switch ev := ev.(type) {
	case events.MouseMoveEvent:
		return Message{Type: TypeMouseMove, X: ev.Pos.X, Y: ev.Pos.Y}, nil
	case events.WindowResizeEvent:
		return Message{Type: TypeWindowResize, X: ev.Size.X, Y: ev.Size.Y}, nil
	}
	return Message{}, fmt.Errorf("remote: cannot encode event %v", ev)
}

// Event returns the event described by the message.
func (m Message) Event() (events.Event, error) {
	switch m.Type {
	case TypeMouseMove:
		return events.NewMouseMove(m.X, m.Y), nil
	case TypeWindowResize:
		return events.NewWindowResize(m.X, m.Y), nil
	}
	return nil, fmt.Errorf("remote: unknown message type %q", m.Type)
}

// DecodeEvent decodes the JSON message in data into an event.
func DecodeEvent(data []byte) (events.Event, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("remote: decoding message: %w", err)
	}
	return m.Event()
}
