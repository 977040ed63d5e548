// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel

import (
	"log/slog"
	"maps"
	"slices"
)

// Constructor is called by [Arena.Create] right after a panel of a given
// tag is allocated, to build any internal structure the tag requires
// (for example the options menu of a drop down).
type Constructor func(a *Arena, p *Panel)

// Arena owns every panel of one host runtime. Panels are addressed by
// stable [ID] handles; the zero slot is reserved for [Nil].
// An Arena is not safe for concurrent use: all mutations happen on the
// thread that drives the commit phase.
type Arena struct {

	// Constructors are the per-tag constructors run on creation.
	// It defaults to [StdConstructors].
	Constructors map[string]Constructor

	panels []*Panel
	root   ID
}

// NewArena returns a new arena with the standard constructors and
// a root context panel.
func NewArena() *Arena {
	a := &Arena{Constructors: StdConstructors(), panels: []*Panel{nil}}
	a.root = a.CreateDetached(TagContextPanel, "context")
	return a
}

// Root returns the root context panel, which is the default parent
// of newly created panels.
func (a *Arena) Root() ID {
	return a.root
}

// Panel returns the panel for the given handle, or nil if the handle is
// [Nil], unknown, or refers to a deleted panel.
func (a *Arena) Panel(id ID) *Panel {
	if int(id) >= len(a.panels) {
		return nil
	}
	return a.panels[id]
}

// Exists returns whether the given handle refers to a live panel.
func (a *Arena) Exists(id ID) bool {
	return a.Panel(id) != nil
}

// Len returns the number of live panels, including roots.
func (a *Arena) Len() int {
	n := 0
	for _, p := range a.panels {
		if p != nil {
			n++
		}
	}
	return n
}

// Create allocates a new panel of the given tag with the given name as the
// last child of the given parent, applying the given construction-time
// properties. The constructor registered for the tag, if any, runs before
// the panel is attached to its parent.
func (a *Arena) Create(tag string, parent ID, name string, initial map[string]any) ID {
	p := a.alloc(tag, name)
	if len(initial) > 0 {
		p.Properties = maps.Clone(initial)
	}
	if c := a.Constructors[tag]; c != nil {
		c(a, p)
	}
	if parent != Nil {
		a.SetParent(p.ID, parent)
	}
	return p.ID
}

// CreateDetached allocates a new panel with no parent. Detached panels
// are never mounted in the visible tree.
func (a *Arena) CreateDetached(tag, name string) ID {
	return a.Create(tag, Nil, name, nil)
}

func (a *Arena) alloc(tag, name string) *Panel {
	p := &Panel{ID: ID(len(a.panels)), Tag: tag, Name: name}
	a.panels = append(a.panels, p)
	return p
}

// SetParent makes child the last child of parent, detaching it from
// its current parent first. It does nothing if parent is already the
// parent of child, so the child keeps its position.
func (a *Arena) SetParent(child, parent ID) {
	cp, pp := a.Panel(child), a.Panel(parent)
	if cp == nil || pp == nil {
		slog.Error("panel.Arena.SetParent: invalid panel", "child", child, "parent", parent)
		return
	}
	if cp.Parent == parent {
		return
	}
	if a.IsAncestor(child, parent) {
		slog.Error("panel.Arena.SetParent: cannot parent a panel to its own descendant", "child", cp, "parent", pp)
		return
	}
	a.detach(cp)
	pp.Children = append(pp.Children, child)
	cp.Parent = parent
}

// detach removes the panel from its parent's children.
func (a *Arena) detach(p *Panel) {
	if pp := a.Panel(p.Parent); pp != nil {
		if i := slices.Index(pp.Children, p.ID); i >= 0 {
			pp.Children = slices.Delete(pp.Children, i, i+1)
		}
	}
	p.Parent = Nil
}

// IsAncestor returns whether anc is the given panel or one of its ancestors.
func (a *Arena) IsAncestor(anc, id ID) bool {
	for cur := a.Panel(id); cur != nil; cur = a.Panel(cur.Parent) {
		if cur.ID == anc {
			return true
		}
	}
	return false
}

// ChildIndex returns the index of child in the children of parent,
// or -1 if it is not a child of parent.
func (a *Arena) ChildIndex(parent, child ID) int {
	pp := a.Panel(parent)
	if pp == nil {
		return -1
	}
	return slices.Index(pp.Children, child)
}

// LastChild returns the last child of the given panel, or [Nil].
func (a *Arena) LastChild(parent ID) ID {
	pp := a.Panel(parent)
	if pp == nil || len(pp.Children) == 0 {
		return Nil
	}
	return pp.Children[len(pp.Children)-1]
}

// FindChild returns the first direct child with the given name, or [Nil].
func (a *Arena) FindChild(parent ID, name string) ID {
	pp := a.Panel(parent)
	if pp == nil {
		return Nil
	}
	for _, c := range pp.Children {
		if a.panels[c].Name == name {
			return c
		}
	}
	return Nil
}

// MoveChildBefore moves child to be immediately before the given
// sibling within parent. Both must already be children of parent.
// It returns whether the move was possible.
func (a *Arena) MoveChildBefore(parent, child, before ID) bool {
	return a.moveChild(parent, child, before, 0)
}

// MoveChildAfter moves child to be immediately after the given
// sibling within parent. Both must already be children of parent.
// Moving a child after itself does nothing.
// It returns whether the move was possible.
func (a *Arena) MoveChildAfter(parent, child, after ID) bool {
	return a.moveChild(parent, child, after, 1)
}

func (a *Arena) moveChild(parent, child, sibling ID, offset int) bool {
	pp := a.Panel(parent)
	ci, si := a.ChildIndex(parent, child), a.ChildIndex(parent, sibling)
	if ci < 0 || si < 0 {
		slog.Error("panel.Arena: cannot move a panel relative to a panel that is not a sibling", "parent", pp, "child", child, "sibling", sibling)
		return false
	}
	if child == sibling {
		return true
	}
	pp.Children = slices.Delete(pp.Children, ci, ci+1)
	if ci < si {
		si--
	}
	pp.Children = slices.Insert(pp.Children, si+offset, child)
	return true
}

// Delete detaches the given panel from its parent and destroys it along
// with all of its descendants.
func (a *Arena) Delete(id ID) {
	p := a.Panel(id)
	if p == nil {
		return
	}
	a.detach(p)
	a.destroy(p)
}

// RemoveAndDeleteChildren deletes all children of the given panel.
func (a *Arena) RemoveAndDeleteChildren(id ID) {
	p := a.Panel(id)
	if p == nil {
		return
	}
	kids := p.Children
	p.Children = nil
	for _, k := range kids {
		if kp := a.Panel(k); kp != nil {
			kp.Parent = Nil
			a.destroy(kp)
		}
	}
}

// destroy recursively frees the panel and all of its descendants.
func (a *Arena) destroy(p *Panel) {
	for _, k := range p.Children {
		if kp := a.Panel(k); kp != nil {
			a.destroy(kp)
		}
	}
	p.Children = nil
	a.panels[p.ID] = nil
	if p.ID == a.root {
		a.root = Nil
	}
}
