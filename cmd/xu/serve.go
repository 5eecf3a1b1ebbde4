// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"xu.dev/core/base/errors"
	"xu.dev/core/core"
	"xu.dev/core/events"
	"xu.dev/core/remote"
	"xu.dev/core/tree"
)

func newServeCmd(opts *options) *cobra.Command {
	var addr, treeFile string
	var printEvents bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Receive events over WebSocket at /events and process them every tick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := core.NewContext(opts.config)
			if treeFile != "" {
				root, err := tree.OpenYAML(treeFile)
				if err != nil {
					return err
				}
				c.SetRoot(root)
			}
			if printEvents {
				c.Listen(events.NewPrinter(cmd.OutOrStdout()).Listen)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			return serve(ctx, ln, c)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "address to listen on")
	cmd.Flags().StringVar(&treeFile, "tree", "", "YAML widget tree to render")
	cmd.Flags().BoolVar(&printEvents, "print", true, "print every dispatched event")
	return cmd
}

// serve accepts WebSocket connections on ln, feeding their events
// to c, and calls [core.Context.ProcessEvents] every tick until ctx
// is done or the tree turns out to be malformed.
func serve(ctx context.Context, ln net.Listener, c *core.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/events", remote.NewHandler(c))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()
	slog.Info("serving", "addr", ln.Addr().String(), "fps", c.Config().FPS)

	ticker := time.NewTicker(c.Config().TickInterval())
	defer ticker.Stop()
	var tickErr error
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case err := <-errc:
			return err
		case <-ticker.C:
			if tickErr = c.ProcessEvents(); tickErr != nil {
				break loop
			}
		}
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	if srvErr := <-errc; !errors.Is(srvErr, http.ErrServerClosed) {
		err = errors.Join(err, srvErr)
	}
	stats := c.Stats()
	slog.Info("stopped", "dispatched", stats.Dispatched, "dropped", stats.Dropped, "rebuilds", stats.Rebuilds)
	return errors.Join(tickErr, err)
}
