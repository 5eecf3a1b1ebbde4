// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command xu hosts a core Context: in a terminal (demo), behind a
// WebSocket server (serve), or once over a tree file (dump). It can
// also send events to a running server (send).
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"xu.dev/core/base/logx"
	"xu.dev/core/core"
)

// options are the flags shared by all commands.
type options struct {
	configFile  string
	logFile     string
	verbose     bool
	veryVerbose bool
	quiet       bool

	// config is loaded from configFile before any command runs.
	config core.Config

	logCloser io.Closer
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "xu",
		Short:         "Host a xu core Context",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logCloser != nil {
				return opts.logCloser.Close()
			}
			return nil
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configFile, "config", "c", "", "config file (.toml, .yaml or .yml)")
	pf.StringVar(&opts.logFile, "log", "", "write log messages to this file instead of standard error")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "show info log messages")
	pf.BoolVar(&opts.veryVerbose, "vv", false, "show debug log messages")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "only show error log messages")

	cmd.AddCommand(newDemoCmd(opts), newServeCmd(opts), newSendCmd(), newDumpCmd(opts))
	return cmd
}

// setup configures logging and loads the config.
func (o *options) setup(stderr io.Writer) error {
	w := stderr
	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		o.logCloser = f
		w = f
	}
	logx.Init(w, logx.LevelFromFlags(o.veryVerbose, o.verbose, o.quiet))

	o.config = core.DefaultConfig()
	if o.configFile == "" {
		return nil
	}
	cfg, err := core.LoadConfig(o.configFile)
	if err != nil {
		return err
	}
	o.config = cfg
	return nil
}
