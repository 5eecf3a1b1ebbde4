// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package remote

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xu.dev/core/core"
	"xu.dev/core/events"
)

func TestMessage(t *testing.T) {
	for _, ev := range []events.Event{events.NewMouseMove(5, 6), events.NewWindowResize(100, 80)} {
		m, err := NewMessage(ev)
		require.NoError(t, err)
		got, err := m.Event()
		require.NoError(t, err)
		assert.Equal(t, ev, got)
	}

	ev, err := DecodeEvent([]byte(`{"type":"window-resize","x":640,"y":480}`))
	require.NoError(t, err)
	assert.Equal(t, events.NewWindowResize(640, 480), ev)

	_, err = DecodeEvent([]byte(`{"type":"key-down"}`))
	assert.ErrorContains(t, err, "unknown message type")
	_, err = DecodeEvent([]byte(`{`))
	assert.ErrorContains(t, err, "decoding message")
	_, err = NewMessage(nil)
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	c := core.NewContext(core.DefaultConfig())
	var got []events.Event
	for _, typ := range []events.Types{events.WindowResize, events.MouseMove} {
		c.AddListener(typ, func(ev events.Event) { got = append(got, ev) })
	}

	srv := httptest.NewServer(NewHandler(c))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cl, err := Connect(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"))
	require.NoError(t, err)

	require.NoError(t, cl.Send(events.NewWindowResize(100, 100)))
	require.NoError(t, cl.SendRaw([]byte("not json")))
	require.NoError(t, cl.Send(events.NewMouseMove(5, 5)))
	require.NoError(t, cl.Send(events.NewMouseMove(6, 6)))
	require.NoError(t, cl.Close())

	require.Eventually(t, func() bool { return c.Pending() == 3 }, 5*time.Second, 10*time.Millisecond)
	require.NoError(t, c.ProcessEvents())
	assert.Equal(t, []events.Event{
		events.NewWindowResize(100, 100),
		events.NewMouseMove(5, 5),
		events.NewMouseMove(6, 6),
	}, got)
}
