// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"cogentcore.org/panelsync/attrs"
	"cogentcore.org/panelsync/base/errors"
	"cogentcore.org/panelsync/cli"
)

// Config is the configuration of panelsync, set from defaults,
// then an optional TOML config file, then command line flags.
type Config struct {

	// Schema is an optional TOML or YAML attribute schema file whose
	// descriptors are added to the standard ones.
	Schema string

	// Color is whether to color the output when the terminal supports it.
	Color bool `default:"true"`

	// Held is whether to also print the panels held in the scene
	// holding area after a replay.
	Held bool

	// Verbose prints info log messages.
	Verbose bool

	// VeryVerbose prints debug log messages, including every commit.
	VeryVerbose bool

	// Quiet only prints error log messages.
	Quiet bool
}

// AddFlags binds the config fields to the given flag set.
func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Schema, "schema", "s", c.Schema, "extra attribute schema file (TOML or YAML)")
	fs.BoolVar(&c.Color, "color", c.Color, "color the output")
	fs.BoolVar(&c.Held, "held", c.Held, "also print the scene holding area")
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "print info log messages")
	fs.BoolVar(&c.VeryVerbose, "vv", c.VeryVerbose, "print debug log messages")
	fs.BoolVarP(&c.Quiet, "quiet", "q", c.Quiet, "only print error log messages")
}

// Apply loads the config from its defaults and the given config file,
// if any, keeping the values of the flags that were set on the command line.
func (c *Config) Apply(cmd *cobra.Command, file string) error {
	set := map[string]string{}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		set[f.Name] = f.Value.String()
	})
	if err := cli.Load(c, file); err != nil {
		return err
	}
	var errs []error
	for name, v := range set {
		errs = append(errs, cmd.Flags().Set(name, v))
	}
	return errors.Join(errs...)
}

// Registry returns the attribute registry: the standard descriptors
// plus those of [Config.Schema].
func (c *Config) Registry() (*attrs.Registry, error) {
	b := attrs.StdBuilder()
	if c.Schema == "" {
		return b.Build(), nil
	}
	s, err := attrs.OpenSchema(cli.ExpandPath(c.Schema))
	if err != nil {
		return nil, err
	}
	if err := s.Register(b); err != nil {
		return nil, fmt.Errorf("schema %s: %w", c.Schema, err)
	}
	return b.Build(), nil
}
