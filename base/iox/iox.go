// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox provides boilerplate wrapper functions for the Go standard
// io functions to Read, Open, Write, and Save, with implementations for
// commonly used encoding formats in its subpackages.
package iox

import (
	"bufio"
	"io"
	"os"

	"cogentcore.org/panelsync/base/errors"
)

// Decoder is an interface for standard decoder types
type Decoder interface {
	// Decode decodes from io.Reader specified at creation
	Decode(v any) error
}

// DecoderFunc is a function that creates a new [Decoder] for the given [io.Reader].
type DecoderFunc func(r io.Reader) Decoder

// Open reads the given object from the given filename using the given [DecoderFunc].
func Open(v any, filename string, f DecoderFunc) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp), f)
}

// OpenFiles reads the given object from the given filenames using the given
// [DecoderFunc], in order, so that later files overwrite earlier settings.
func OpenFiles(v any, filenames []string, f DecoderFunc) error {
	var errs []error
	for _, file := range filenames {
		errs = append(errs, Open(v, file, f))
	}
	return errors.Join(errs...)
}

// Read reads the given object from the given reader,
// using the given [DecoderFunc].
func Read(v any, reader io.Reader, f DecoderFunc) error {
	d := f(reader)
	return d.Decode(v)
}
