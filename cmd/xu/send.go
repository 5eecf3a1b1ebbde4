// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"xu.dev/core/events"
	"xu.dev/core/remote"
)

func newSendCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "send <url> <mouse-move|window-resize> <x> <y>",
		Short: "Send one event to a running xu serve",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := parseEvent(args[1], args[2], args[3])
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			cl, err := remote.Connect(ctx, args[0])
			if err != nil {
				return err
			}
			if err := cl.Send(ev); err != nil {
				cl.Close()
				return err
			}
			return cl.Close()
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "connection timeout")
	return cmd
}

// parseEvent returns the event for the given command line arguments.
func parseEvent(typ, xs, ys string) (events.Event, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return nil, fmt.Errorf("invalid x %q: %w", xs, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return nil, fmt.Errorf("invalid y %q: %w", ys, err)
	}
	return remote.Message{Type: typ, X: x, Y: y}.Event()
}
