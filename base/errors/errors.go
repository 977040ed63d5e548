// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error functions that are helpful
// for handling errors in a concise way, including logging them
// through log/slog. It also wraps the standard library errors functions
// used across panelsync, so that callers only import this package.
package errors

import "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
// It is a wrapper around [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target.
// It is a wrapper around [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Join returns an error that wraps the given errors.
// Any nil error values are discarded.
// It is a wrapper around [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}
