// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package remote

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"xu.dev/core/base/errors"
	"xu.dev/core/events"
)

// Notifier is the receiving end of a [Handler], typically a
// *core.Context. NotifyEvent must be safe for concurrent use,
// since each connection calls it from its own goroutine.
type Notifier interface {
	NotifyEvent(ev events.Event)
}

// Handler is an [http.Handler] that upgrades requests to WebSocket
// connections and passes every event received on them to Target,
// in the order the messages arrive on each connection.
// Malformed messages are logged and skipped.
type Handler struct {
	Target Notifier

	// Upgrader is used to upgrade requests.
	Upgrader websocket.Upgrader
}

// NewHandler returns a new [Handler] for the given target.
func NewHandler(target Notifier) *Handler {
	return &Handler{Target: target}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	defer conn.Close()
	slog.Info("remote: client connected", "addr", r.RemoteAddr)

	for {
		typ, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				errors.Log(err)
			}
			slog.Info("remote: client disconnected", "addr", r.RemoteAddr)
			return
		}
		if typ != websocket.TextMessage {
			slog.Warn("remote: ignoring non-text message", "addr", r.RemoteAddr, "type", typ)
			continue
		}
		ev, err := DecodeEvent(msg)
		if err != nil {
			slog.Warn("remote: skipping malformed message", "addr", r.RemoteAddr, "err", err)
			continue
		}
		h.Target.NotifyEvent(ev)
	}
}
