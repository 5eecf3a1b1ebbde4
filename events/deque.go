// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync/atomic"
)

// Queue is a lock-free FIFO event queue. Any number of goroutines
// may call [Queue.Send] concurrently; events come out of
// [Queue.NextEvent] in the order their sends took effect.
// It must be initialized using [Queue.Init] before use.
// It is based on https://github.com/fyne-io/fyne/blob/master/internal/async/queue_canvasobject.go
type Queue struct {
	head atomic.Pointer[queueEvent]
	tail atomic.Pointer[queueEvent]
	len  atomic.Int64
}

// NewQueue returns a new initialized [Queue].
func NewQueue() *Queue {
	q := &Queue{}
	q.Init()
	return q
}

// Init initializes the queue.
func (q *Queue) Init() {
	head := &queueEvent{}
	q.head.Store(head)
	q.tail.Store(head)
	q.len.Store(0)
}

type queueEvent struct {
	next atomic.Pointer[queueEvent]
	v    Event
}

// NextEvent removes and returns the next event in the queue.
// It returns nil if the queue is empty.
func (q *Queue) NextEvent() Event {
	var first, last, firstnext *queueEvent
	for {
		first = q.head.Load()
		last = q.tail.Load()
		firstnext = first.next.Load()
		if first == q.head.Load() {
			if first == last {
				if firstnext == nil {
					return nil
				}

				q.tail.CompareAndSwap(last, firstnext)
			} else {
				v := firstnext.v
				if q.head.CompareAndSwap(first, firstnext) {
					q.len.Add(-1)
					return v
				}
			}
		}
	}
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev Event) {
	i := &queueEvent{v: ev}

	var last, lastnext *queueEvent
	for {
		last = q.tail.Load()
		lastnext = last.next.Load()
		if q.tail.Load() == last {
			if lastnext == nil {
				if last.next.CompareAndSwap(lastnext, i) {
					q.tail.CompareAndSwap(last, i)
					q.len.Add(1)
					return
				}
			} else {
				q.tail.CompareAndSwap(last, lastnext)
			}
		}
	}
}

// Len returns the length of the queue.
// It can briefly lag behind concurrent sends.
func (q *Queue) Len() int {
	return max(int(q.len.Load()), 0)
}
