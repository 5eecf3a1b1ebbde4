// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Printer is a listener that writes one human-readable line per
// event, such as "Mouse move: 5 5". It is a diagnostic aid and
// its output format is not stable.
type Printer struct {
	out *termenv.Output
}

// NewPrinter returns a [Printer] writing to w. Labels are colored
// only when w is a terminal.
func NewPrinter(w io.Writer) *Printer {
	profile := termenv.Ascii
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		profile = termenv.EnvColorProfile()
	}
	return &Printer{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

// Listen registers the printer on ls for all event types.
func (p *Printer) Listen(ls *Listeners) {
	ls.OnMouseMove(func(ev MouseMoveEvent) { p.Print(ev) })
	ls.OnWindowResize(func(ev WindowResizeEvent) { p.Print(ev) })
}

// Print writes the line for the given event.
func (p *Printer) Print(ev Event) {
	switch ev := ev.(type) {
	case MouseMoveEvent:
		p.line("Mouse move", "4", ev.Pos.X, ev.Pos.Y)
	case WindowResizeEvent:
		p.line("Window resize", "5", ev.Size.X, ev.Size.Y)
	}
}

func (p *Printer) line(label, color string, x, y int) {
	s := p.out.String(label).Foreground(p.out.Color(color)).String()
	fmt.Fprintf(p.out, "%s: %d %d\n", s, x, y)
}
