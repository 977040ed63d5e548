// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// printer writes command output, colored according to the
// capabilities of the output.
type printer struct {
	out *termenv.Output
}

func newPrinter(w io.Writer, color bool) *printer {
	if !color {
		return &printer{out: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
	}
	return &printer{out: termenv.NewOutput(w)}
}

func (p *printer) line(s string) {
	fmt.Fprintln(p.out, s)
}

func (p *printer) title(s string) {
	p.line(p.out.String(s).Bold().Underline().String())
}

// dump writes a panel tree dump, coloring the tag and name,
// the classes and the text of each panel.
func (p *printer) dump(d string) {
	for _, ln := range strings.Split(strings.TrimSuffix(d, "\n"), "\n") {
		if ln == "" {
			continue
		}
		body := strings.TrimLeft(ln, " ")
		indent := ln[:len(ln)-len(body)]
		head, rest, _ := strings.Cut(body, " ")
		var sb strings.Builder
		sb.WriteString(indent)
		sb.WriteString(p.out.String(head).Foreground(p.out.Color("4")).Bold().String())
		for f := range strings.FieldsSeq(rest) {
			if strings.HasPrefix(f, ".") {
				sb.WriteString(" " + p.out.String(f).Foreground(p.out.Color("2")).String())
				continue
			}
			// text, which may contain spaces, is the rest of the line
			_, text, _ := strings.Cut(rest, f)
			sb.WriteString(" " + p.out.String(f+text).Foreground(p.out.Color("3")).String())
			break
		}
		p.line(sb.String())
	}
}
