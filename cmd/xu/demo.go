// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"log/slog"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"xu.dev/core/core"
	"xu.dev/core/events"
	"xu.dev/core/math32"
	"xu.dev/core/render"
	"xu.dev/core/tree"
)

func newDemoCmd(opts *options) *cobra.Command {
	var treeFile string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Draw the render data of a widget tree in the terminal",
		Long: "Demo runs a Context in the terminal: window resizes and mouse moves are sent to it " +
			"as events, and every quad of its render data is drawn as a box. Press q or Esc to quit.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var root *tree.NodeBase
			if treeFile != "" {
				var err error
				if root, err = tree.OpenYAML(treeFile); err != nil {
					return err
				}
			}
			return runDemo(opts.config, root)
		},
	}
	cmd.Flags().StringVar(&treeFile, "tree", "", "YAML widget tree to draw instead of the built-in one, which follows the window size")
	return cmd
}

// demoState is what the demo listeners record. Listeners run on the
// polling goroutine in Immediate mode, so it is guarded by a mutex.
type demoState struct {
	mu       sync.Mutex
	mouse    image.Point
	size     image.Point
	resized  bool
	frames   int
	lastTick time.Duration
}

func runDemo(cfg core.Config, root *tree.NodeBase) error {
	relayout := root == nil
	if relayout {
		root = newDemoTree()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)

	c := core.NewContext(cfg)
	c.SetRoot(root)
	st := &demoState{}
	c.OnMouseMove(func(ev events.MouseMoveEvent) {
		st.mu.Lock()
		st.mouse = ev.Pos
		st.mu.Unlock()
	})
	c.OnWindowResize(func(ev events.WindowResizeEvent) {
		st.mu.Lock()
		st.size = ev.Size
		st.resized = true
		st.mu.Unlock()
	})

	quit := make(chan struct{})
	go pollEvents(screen, c, quit)

	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()
	for {
		select {
		case <-quit:
			return nil
		case <-ticker.C:
			start := time.Now()
			if err := c.ProcessEvents(); err != nil {
				return err
			}
			st.mu.Lock()
			if st.resized && relayout {
				layoutDemoTree(root, st.size)
				st.resized = false
				st.mu.Unlock()
				// the layout changed after this tick's rebuild
				if err := c.BuildRenderData(); err != nil {
					return err
				}
				st.mu.Lock()
			}
			st.frames++
			st.lastTick = time.Since(start)
			status := st.status(c)
			st.mu.Unlock()
			drawRenderData(screen, c.RenderData(), status)
		}
	}
}

func (st *demoState) status(c *core.Context) string {
	stats := c.Stats()
	return fmt.Sprintf(" %v | mouse %d,%d | size %dx%d | quads %d | frame %d (%v) | dropped %d | q to quit ",
		c.Config().InputReception, st.mouse.X, st.mouse.Y, st.size.X, st.size.Y,
		c.RenderData().NumCommands(), st.frames, st.lastTick.Round(time.Microsecond), stats.Dropped)
}

// pollEvents translates terminal events into core events until the
// user quits or the screen is finalized, then closes quit.
func pollEvents(screen tcell.Screen, c *core.Context, quit chan<- struct{}) {
	defer close(quit)
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			w, h := ev.Size()
			c.NotifyEvent(events.NewWindowResize(w, h))
		case *tcell.EventMouse:
			x, y := ev.Position()
			c.NotifyEvent(events.NewMouseMove(x, y))
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				slog.Debug("demo: quit requested")
				return
			}
		}
	}
}

// newDemoTree returns the built-in tree: a left column split into
// two rows, and a right column with one inset child.
func newDemoTree() *tree.NodeBase {
	root := tree.NewNodeBase("window", math32.Box2{})
	left := root.NewChild("left", math32.Box2{})
	left.NewChild("top", math32.Box2{})
	left.NewChild("bottom", math32.Box2{})
	right := root.NewChild("right", math32.Box2{})
	right.NewChild("inset", math32.Box2{})
	return root
}

// layoutDemoTree sets the bounds of the tree from [newDemoTree]
// for the given window size, leaving the last row for the status line.
func layoutDemoTree(root *tree.NodeBase, size image.Point) {
	w, h := float32(size.X), float32(max(size.Y-1, 0))
	mid := math32.Floor(w / 2)
	root.Bounds = math32.B2(0, 0, w, h)

	left := root.Children[0].(*tree.NodeBase)
	left.Bounds = math32.B2(1, 1, mid, h-1)
	row := math32.Floor((h - 2) / 2)
	left.Children[0].(*tree.NodeBase).Bounds = math32.B2(2, 2, mid-1, 1+row)
	left.Children[1].(*tree.NodeBase).Bounds = math32.B2(2, 1+row, mid-1, h-2)

	right := root.Children[1].(*tree.NodeBase)
	right.Bounds = math32.B2(mid, 1, w-1, h-1)
	right.Children[0].(*tree.NodeBase).Bounds = math32.B2(mid+2, 3, w-3, h-3)
}

var boxColors = []tcell.Color{tcell.ColorWhite, tcell.ColorAqua, tcell.ColorYellow, tcell.ColorLime, tcell.ColorFuchsia}

// drawRenderData draws every quad of rd as a box outline, in command
// order so that later quads are drawn over earlier ones, followed by
// the status line.
func drawRenderData(screen tcell.Screen, rd *render.Data, status string) {
	screen.Clear()
	i := 0
	for _, cl := range rd.CommandLists {
		for _, cmd := range cl {
			if cmd.Op != render.DrawQuad {
				continue
			}
			style := tcell.StyleDefault.Foreground(boxColors[i%len(boxColors)])
			drawBox(screen, cmd.Bounds.ToRect(), style)
			i++
		}
	}
	_, h := screen.Size()
	style := tcell.StyleDefault.Reverse(true)
	for x, r := range []rune(status) {
		screen.SetContent(x, h-1, r, nil, style)
	}
	screen.Show()
}

// drawBox draws the outline of r, whose Max is exclusive.
func drawBox(screen tcell.Screen, r image.Rectangle, style tcell.Style) {
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for x := x0 + 1; x < x1; x++ {
		screen.SetContent(x, y0, tcell.RuneHLine, nil, style)
		screen.SetContent(x, y1, tcell.RuneHLine, nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		screen.SetContent(x0, y, tcell.RuneVLine, nil, style)
		screen.SetContent(x1, y, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(x0, y0, tcell.RuneULCorner, nil, style)
	screen.SetContent(x1, y0, tcell.RuneURCorner, nil, style)
	screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, style)
	screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, style)
}
