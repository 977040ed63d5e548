// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bridge

import (
	"log/slog"
	"strconv"

	"cogentcore.org/panelsync/panel"
)

// Kind is the closed set of panel behaviors that change how children
// are attached to and detached from a panel. It is resolved from the
// immutable tag of a panel for every mutation.
type Kind int32

const (
	// Default panels are plain tree nodes.
	Default Kind = iota

	// SelectionList panels (drop downs) hold their children as registered
	// options in an internal menu, never as direct children.
	SelectionList

	// MenuWrapper panels redirect all of their logical children to a
	// designated inner contents panel.
	MenuWrapper

	// SceneContent panels load their content asynchronously and
	// must not be deleted before they have finished loading.
	SceneContent

	// KindN is the number of kinds.
	KindN
)

var kindNames = [KindN]string{"Default", "SelectionList", "MenuWrapper", "SceneContent"}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= KindN {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// DefaultKinds returns the standard tag to [Kind] table.
func DefaultKinds() map[string]Kind {
	return map[string]Kind{
		panel.TagDropDown:          SelectionList,
		panel.TagContextMenuScript: MenuWrapper,
		panel.TagScene:             SceneContent,
		panel.TagParticleScene:     SceneContent,
	}
}

// KindOf returns the [Kind] of the given panel.
func (b *Bridge) KindOf(id panel.ID) Kind {
	if p := b.Arena.Panel(id); p != nil {
		return b.Kinds[p.Tag]
	}
	return Default
}

// quirk is the set of child mutation handlers for one [Kind],
// where the kind is that of the parent being mutated.
type quirk struct {
	appendChild  func(b *Bridge, parent, child panel.ID)
	insertBefore func(b *Bridge, parent, child, before panel.ID)
	removeChild  func(b *Bridge, parent, child panel.ID)
}

// quirks is the dispatch table, indexed by the [Kind] of the parent.
var quirks = [KindN]quirk{
	Default:       {appendDirect, insertDirect, removeDirect},
	SelectionList: {appendOption, insertOption, removeOption},
	MenuWrapper:   {appendUnwrapped, insertUnwrapped, removeUnwrapped},
	SceneContent:  {appendDirect, insertDirect, removeDirect},
}

// AppendChild attaches child as the last logical child of parent.
// If child already is the last child it is left untouched, so
// redundant reorders never detach and reattach it.
func (b *Bridge) AppendChild(parent, child panel.ID) {
	if !b.valid("AppendChild", parent, child) {
		return
	}
	quirks[b.KindOf(parent)].appendChild(b, parent, child)
}

// InsertBefore attaches child to parent immediately before the
// given existing child.
func (b *Bridge) InsertBefore(parent, child, before panel.ID) {
	if !b.valid("InsertBefore", parent, child) {
		return
	}
	quirks[b.KindOf(parent)].insertBefore(b, parent, child, before)
}

// RemoveChild detaches child from parent and disposes of it,
// parking it in a holding area when it cannot be deleted yet.
func (b *Bridge) RemoveChild(parent, child panel.ID) {
	if !b.valid("RemoveChild", parent, child) {
		return
	}
	quirks[b.KindOf(parent)].removeChild(b, parent, child)
}

func (b *Bridge) valid(op string, parent, child panel.ID) bool {
	if b.Arena.Exists(parent) && b.Arena.Exists(child) {
		return true
	}
	slog.Error("bridge: "+op+": panel does not exist", "parent", parent, "child", child)
	return false
}

func appendDirect(b *Bridge, parent, child panel.ID) {
	a := b.Arena
	if a.Panel(child).Parent == parent {
		a.MoveChildAfter(parent, child, a.LastChild(parent))
		return
	}
	a.SetParent(child, parent)
}

func insertDirect(b *Bridge, parent, child, before panel.ID) {
	a := b.Arena
	a.SetParent(child, parent)
	a.MoveChildBefore(parent, child, before)
}

func removeDirect(b *Bridge, parent, child panel.ID) {
	cp := b.Arena.Panel(child)
	if b.Kinds[cp.Tag] == SceneContent && !cp.HasClass(panel.ClassSceneLoaded) {
		b.holding.parkScene(child)
		return
	}
	b.holding.dispose(child)
}

func appendOption(b *Bridge, parent, child panel.ID) {
	a := b.Arena
	menu := a.DropDownMenu(parent)
	if menu != panel.Nil && a.Panel(child).Parent == menu {
		a.MoveChildAfter(menu, child, a.LastChild(menu))
		return
	}
	a.AddOption(parent, child)
}

// insertOption registers the option and then reorders the menu:
// registration and visual order are separate host operations.
func insertOption(b *Bridge, parent, child, before panel.ID) {
	a := b.Arena
	if !a.AddOption(parent, child) {
		return
	}
	a.MoveChildBefore(a.DropDownMenu(parent), child, before)
}

func removeOption(b *Bridge, parent, child panel.ID) {
	if !b.Arena.RemoveOption(parent, child) {
		slog.Warn("bridge: no option with the identifier of the removed panel", "dropDown", b.Arena.Panel(parent), "option", b.Arena.Panel(child))
	}
}

// contents returns the inner contents panel of a wrapper, falling back
// on the wrapper itself if it has none.
func (b *Bridge) contents(wrapper panel.ID) panel.ID {
	if c := b.Arena.ContentsPanel(wrapper); c != panel.Nil {
		return c
	}
	slog.Error("bridge: wrapper panel has no contents panel", "panel", b.Arena.Panel(wrapper))
	return wrapper
}

func appendUnwrapped(b *Bridge, parent, child panel.ID) {
	appendDirect(b, b.contents(parent), child)
}

func insertUnwrapped(b *Bridge, parent, child, before panel.ID) {
	insertDirect(b, b.contents(parent), child, before)
}

func removeUnwrapped(b *Bridge, parent, child panel.ID) {
	removeDirect(b, b.contents(parent), child)
}
