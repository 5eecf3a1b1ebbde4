// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"xu.dev/core/core"
	"xu.dev/core/tree"
)

func newDumpCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <tree.yaml>",
		Short: "Print the render data of a widget tree as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := tree.OpenYAML(args[0])
			if err != nil {
				return err
			}
			return dump(cmd.OutOrStdout(), opts.config, root)
		},
	}
}

// dump builds the render data of root with a new Context and
// writes it to w.
func dump(w io.Writer, cfg core.Config, root tree.Node) error {
	c := core.NewContext(cfg)
	c.SetRoot(root)
	if err := c.ProcessEvents(); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.RenderData()); err != nil {
		return err
	}
	return enc.Close()
}
