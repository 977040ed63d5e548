// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides additional logging functionality on top of [slog],
// including a user verbosity level and a colored default handler.
package logx

import "log/slog"

// UserLevel is the lowest level that [Handler] prints. Commands set it
// from their verbosity flags with [LevelFromFlags]; before that it holds
// the build default: [slog.LevelWarn], or [slog.LevelDebug] in builds
// with the debug tag.
var UserLevel = defaultUserLevel

// LevelFromFlags maps the panelsync verbosity flags to a level:
// --vv shows the per-commit debug messages of the bridge, -v adds info
// messages, -q keeps only errors, and no flag shows warnings such as
// attributes that can only be set at creation. The most verbose flag
// given wins.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	}
	return slog.LevelWarn
}
