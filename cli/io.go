// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/mitchellh/go-homedir"

	"cogentcore.org/panelsync/base/errors"
	"cogentcore.org/panelsync/base/iox/tomlx"
)

// ExpandPath expands a leading ~ in the given path to the home directory
// of the user. It returns the path unchanged if it cannot be expanded.
func ExpandPath(path string) string {
	p, err := homedir.Expand(path)
	if errors.Log(err) != nil {
		return path
	}
	return p
}

// Open overlays the settings in the given TOML config files onto the
// given config object, so that later files override earlier ones.
// Settings that are not in any file are left as is.
func Open(cfg any, files ...string) error {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = ExpandPath(f)
	}
	if err := tomlx.OpenFiles(cfg, paths...); err != nil {
		return fmt.Errorf("cli.Open: %w", err)
	}
	return nil
}
