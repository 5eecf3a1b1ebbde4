// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core provides the [Context], which takes input events from
// the host, dispatches them to listeners, and flattens the widget tree
// into render data once per tick.
package core

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"xu.dev/core/base/errors"
	"xu.dev/core/events"
	"xu.dev/core/render"
	"xu.dev/core/tree"
)

// Context coordinates event intake and render data production
// for one application. It is created once by the host and
// lives for the duration of the application.
//
// [Context.NotifyEvent] may be called from any goroutine. All other
// methods must be called from a single goroutine, the one driving
// the tick with [Context.ProcessEvents].
type Context struct {
	config Config

	queue events.Queue

	// mu guards listeners.
	mu        sync.RWMutex
	listeners events.Listeners

	root tree.Node

	renderData render.Data

	dispatched atomic.Uint64
	dropped    atomic.Uint64
	rebuilds   uint64
}

// Stats are counters of the work done by a [Context].
type Stats struct {

	// Dispatched is the number of events delivered to listeners.
	Dispatched uint64

	// Dropped is the number of events discarded because the
	// queue was full.
	Dropped uint64

	// Rebuilds is the number of successful render data rebuilds.
	Rebuilds uint64
}

// NewContext returns a new [Context] with the given config.
// It panics if the config is invalid.
func NewContext(config Config) *Context {
	errors.Must(config.Validate())
	c := &Context{config: config}
	c.queue.Init()
	c.listeners.Init()
	return c
}

// Config returns the config of the context.
func (c *Context) Config() Config {
	return c.config
}

// SetRoot sets the root of the widget tree to flatten. The tree is
// owned by the caller and must outlive its use as the root. A nil
// root is an empty tree.
func (c *Context) SetRoot(root tree.Node) {
	c.root = root
}

// Root returns the root of the widget tree, which may be nil.
func (c *Context) Root() tree.Node {
	return c.root
}

// AddListener adds a listener for the given event type.
// Listeners are called in the order they were added, on the
// goroutine that dispatches the event: the tick goroutine in
// [Queued] mode, and the caller of [Context.NotifyEvent] in
// [Immediate] mode.
func (c *Context) AddListener(typ events.Types, fun func(ev events.Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners.Add(typ, fun)
}

// OnMouseMove adds a listener for [events.MouseMove] events.
func (c *Context) OnMouseMove(fun func(ev events.MouseMoveEvent)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners.OnMouseMove(fun)
}

// OnWindowResize adds a listener for [events.WindowResize] events.
func (c *Context) OnWindowResize(fun func(ev events.WindowResizeEvent)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners.OnWindowResize(fun)
}

// Listen calls fun with the listeners of the context under its
// lock, for registering helpers such as [events.Printer.Listen].
func (c *Context) Listen(fun func(ls *events.Listeners)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fun(&c.listeners)
}

// NotifyEvent takes an input event from the host. In [Immediate]
// mode the event is dispatched before NotifyEvent returns. In
// [Queued] mode it is added to the end of the queue, subject to
// [Config.QueueCapacity], and dispatched by the next
// [Context.ProcessEvents].
func (c *Context) NotifyEvent(ev events.Event) {
	if ev == nil {
		return
	}
	switch c.config.InputReception {
	case Immediate:
		c.dispatch(ev)
	case Queued:
		if capacity := c.config.QueueCapacity; capacity > 0 && c.queue.Len() >= capacity {
			switch c.config.Overflow {
			case DropNewest:
				c.drop(ev)
				return
			case DropOldest:
				if old := c.queue.NextEvent(); old != nil {
					c.drop(old)
				}
			}
		}
		c.queue.Send(ev)
	}
}

func (c *Context) drop(ev events.Event) {
	c.dropped.Add(1)
	slog.Debug("core: event queue full, dropping event", "event", ev, "policy", c.config.Overflow)
}

// dispatch delivers the event to the listeners of its type.
func (c *Context) dispatch(ev events.Event) {
	c.mu.RLock()
	fns := c.listeners[ev.Type()]
	c.mu.RUnlock()
	slog.Debug("core: dispatch", "event", ev, "listeners", len(fns))
	for _, fun := range fns {
		fun(ev)
	}
	c.dispatched.Add(1)
}

// ProcessEvents is the per-tick entry point. In [Queued] mode it
// dispatches queued events in arrival order until the queue is empty,
// including events added by listeners or other goroutines during the
// drain. It then rebuilds the render data with [Context.BuildRenderData],
// returning its error.
//
// An unbounded drain only ends once producers stop outpacing the
// listeners, so a listener that notifies a new event for every event
// it receives keeps ProcessEvents from returning. Set
// [Config.MaxEventsPerTick] to leave the excess queued for the next
// tick instead.
func (c *Context) ProcessEvents() error {
	if c.config.InputReception == Queued {
		limit := c.config.MaxEventsPerTick
		for n := 0; limit <= 0 || n < limit; n++ {
			ev := c.queue.NextEvent()
			if ev == nil {
				break
			}
			c.dispatch(ev)
		}
	}
	return c.BuildRenderData()
}

// BuildRenderData clears the render data and rebuilds it from the
// widget tree: one command list holding a [render.DrawQuad] for
// every widget, in depth-first pre-order. If the tree is malformed
// the render data is left empty and an error wrapping
// [tree.ErrMalformedTree] is returned.
func (c *Context) BuildRenderData() error {
	rd := &c.renderData
	rd.Reset()
	var cl render.CommandList
	err := tree.WalkDown(c.root, c.config.MaxDepth, func(n tree.Node) bool {
		rd.PushQuad(&cl, n.Geometry())
		return tree.Continue
	})
	if err != nil {
		rd.Reset()
		return errors.Log(fmt.Errorf("core: building render data: %w", err))
	}
	rd.AddCommandList(cl)
	c.rebuilds++
	return nil
}

// RenderData returns the render data built by the last call to
// [Context.ProcessEvents] or [Context.BuildRenderData]. It must be
// treated as read-only and is only valid until the next such call;
// use [render.Data.Clone] to keep it longer.
func (c *Context) RenderData() *render.Data {
	return &c.renderData
}

// Pending returns the number of events waiting in the queue.
func (c *Context) Pending() int {
	return c.queue.Len()
}

// Stats returns the counters of the context.
func (c *Context) Stats() Stats {
	return Stats{
		Dispatched: c.dispatched.Load(),
		Dropped:    c.dropped.Load(),
		Rebuilds:   c.rebuilds,
	}
}
