// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command panelsync replays recorded reconciliation commits through the
// panel bridge and inspects the attribute registry.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cogentcore.org/panelsync/base/errors"
	"cogentcore.org/panelsync/base/logx"
	"cogentcore.org/panelsync/bridge"
	"cogentcore.org/panelsync/cli"
	"cogentcore.org/panelsync/panel"
	"cogentcore.org/panelsync/replay"
)

func main() {
	logx.SetDefaultLogger()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd returns the root command with a fresh [Config].
func newRootCmd() *cobra.Command {
	cfg := &Config{}
	errors.Log(cli.SetFromDefaults(cfg))
	var file string

	root := &cobra.Command{
		Use:          "panelsync",
		Short:        "Replay reconciliation commits through the panel bridge",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Apply(cmd, file); err != nil {
				return err
			}
			logx.UserLevel = logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&file, "config", "c", "", "TOML config file")
	cfg.AddFlags(root.PersistentFlags())

	root.AddCommand(newReplayCmd(cfg), newSchemaCmd(cfg))
	return root
}

func newReplayCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <script.yaml>...",
		Short: "Play YAML commit scripts (- for stdin) and print the resulting panel tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := cfg.Registry()
			if err != nil {
				return err
			}
			out := newPrinter(cmd.OutOrStdout(), cfg.Color)
			var errs []error
			for _, fn := range args {
				s, err := openScript(cmd, fn)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				b := bridge.New(panel.NewArena(), reg, bridge.StdFixups(), bridge.DefaultKinds())
				res, err := replay.NewPlayer(b).Check(s)
				if err != nil {
					errs = append(errs, err)
				}
				if res == nil {
					continue
				}
				out.title(fmt.Sprintf("%s (%d commits)", s.Name, res.Commits))
				out.dump(res.Dump)
				if cfg.Held {
					out.dump(res.Held)
				}
			}
			return errors.Join(errs...)
		},
	}
}

// openScript opens the given replay script, where "-" is standard input.
func openScript(cmd *cobra.Command, fn string) (*replay.Script, error) {
	if fn == "-" {
		return replay.Read(cmd.InOrStdin())
	}
	return replay.Open(cli.ExpandPath(fn))
}

func newSchemaCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "schema [type]...",
		Short: "Print the attributes of the given panel types, or all types",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := cfg.Registry()
			if err != nil {
				return err
			}
			out := newPrinter(cmd.OutOrStdout(), cfg.Color)
			types := args
			if len(types) == 0 {
				types = reg.Types()
			}
			for _, typ := range types {
				out.title(typ)
				out.line("  " + strings.Join(reg.Names(typ), " "))
			}
			return nil
		},
	}
}
