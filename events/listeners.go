// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners registers lists of event listener functions
// to receive different event types.
// Listeners are closure methods with all context captured.
type Listeners map[Types][]func(ev Event)

// Init ensures that map is constructed
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Types][]func(Event))
}

// Add adds a function for given type
func (ls *Listeners) Add(typ Types, fun func(Event)) {
	ls.Init()
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Call calls all functions for given event, in the order
// they were added.
func (ls *Listeners) Call(ev Event) {
	for _, fun := range (*ls)[ev.Type()] {
		fun(ev)
	}
}

// Len returns the number of functions registered for the given type.
func (ls *Listeners) Len(typ Types) int {
	return len((*ls)[typ])
}

// On adds a typed listener for the event variant E, which is
// one of the concrete event structs. The function is only ever
// called with events of that variant.
func On[E Concrete](ls *Listeners, fun func(ev E)) {
	var zero E
	ls.Add(zero.Type(), func(ev Event) {
		if e, ok := ev.(E); ok {
			fun(e)
		}
	})
}

// OnMouseMove adds a listener for [MouseMove] events.
func (ls *Listeners) OnMouseMove(fun func(ev MouseMoveEvent)) {
	On(ls, fun)
}

// OnWindowResize adds a listener for [WindowResize] events.
func (ls *Listeners) OnWindowResize(fun func(ev WindowResizeEvent)) {
	On(ls, fun)
}
