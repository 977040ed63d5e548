// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli provides the configuration plumbing shared by commands:
// defaults from struct tags overlaid by an optional TOML config file.
package cli

import (
	"cogentcore.org/panelsync/base/errors"
	"cogentcore.org/panelsync/base/reflectx"
)

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(reflectx.SetFromDefaultTags(cfg))
}

// Load sets the given config object from its defaults and then overlays
// the settings in the given TOML config files, in order. Empty file
// names are skipped.
func Load(cfg any, files ...string) error {
	err := SetFromDefaults(cfg)
	var fs []string
	for _, f := range files {
		if f != "" {
			fs = append(fs, f)
		}
	}
	if len(fs) == 0 {
		return err
	}
	return errors.Join(err, Open(cfg, fs...))
}
