// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package remote

import (
	"context"

	"github.com/gorilla/websocket"

	"xu.dev/core/events"
)

// Client represents a WebSocket client connection to a [Handler].
// You can use [Connect] to create a new Client.
type Client struct {

	// conn is the underlying WebSocket connection.
	conn *websocket.Conn
}

// Connect connects to a WebSocket server and returns a [Client].
func Connect(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

// Send sends the given event to the server.
func (c *Client) Send(ev events.Event) error {
	m, err := NewMessage(ev)
	if err != nil {
		return err
	}
	return c.conn.WriteJSON(m)
}

// SendRaw sends the given text message to the server as is.
func (c *Client) SendRaw(msg []byte) error {
	return c.conn.WriteMessage(websocket.TextMessage, msg)
}

// Close cleanly closes the WebSocket connection.
func (c *Client) Close() error {
	err := c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	if cerr := c.conn.Close(); err == nil {
		err = cerr
	}
	return err
}
