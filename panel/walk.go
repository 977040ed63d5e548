// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jinzhu/copier"

	"cogentcore.org/panelsync/base/errors"
)

const (
	// Continue = true can be returned from walk functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from walk functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkDown calls the given function on the panel and all of its
// descendants in depth-first order. It stops walking the current branch
// if the function returns [Break].
func (a *Arena) WalkDown(id ID, fun func(p *Panel) bool) {
	p := a.Panel(id)
	if p == nil || !fun(p) {
		return
	}
	for _, k := range slices.Clone(p.Children) {
		a.WalkDown(k, fun)
	}
}

// Snapshot returns deep copies of the given panel and all of its
// descendants in depth-first order. Later mutations of the arena
// do not affect the snapshot, so it can be compared against a
// later snapshot to detect changes.
func (a *Arena) Snapshot(id ID) []Panel {
	var res []Panel
	a.WalkDown(id, func(p *Panel) bool {
		var c Panel
		errors.Log(copier.CopyWithOption(&c, p, copier.Option{DeepCopy: true}))
		res = append(res, c)
		return Continue
	})
	return res
}

// Dump returns an indented text rendering of the given panel
// and its descendants, one panel per line.
func (a *Arena) Dump(id ID) string {
	var sb strings.Builder
	a.dump(&sb, id, 0)
	return sb.String()
}

func (a *Arena) dump(sb *strings.Builder, id ID, depth int) {
	p := a.Panel(id)
	if p == nil {
		return
	}
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(p.Tag)
	if p.Name != "" {
		sb.WriteString("#" + p.Name)
	}
	for _, c := range p.Classes {
		sb.WriteString(" ." + c)
	}
	if t, ok := p.Properties["text"]; ok {
		fmt.Fprintf(sb, " %q", fmt.Sprint(t))
	}
	sb.WriteString("\n")
	for _, k := range p.Children {
		a.dump(sb, k, depth+1)
	}
}
