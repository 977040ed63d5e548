// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel

import (
	"log/slog"
	"slices"
)

// StdConstructors returns the constructors for the standard composite
// panel types: drop downs get an internal options menu and context menu
// wrappers get an inner contents panel.
func StdConstructors() map[string]Constructor {
	return map[string]Constructor{
		TagDropDown:          NewDropDownMenu,
		TagContextMenuScript: NewContentsPanel,
	}
}

// NewDropDownMenu is the [Constructor] for drop downs. It creates the
// menu panel whose children are the options of the drop down.
func NewDropDownMenu(a *Arena, p *Panel) {
	p.Menu = a.Create(TagDropDownMenu, p.ID, "DropDownMenu", nil)
}

// NewContentsPanel is the [Constructor] for wrapper panels. It creates the
// inner contents panel that holds all of the logical children.
func NewContentsPanel(a *Arena, p *Panel) {
	p.Contents = a.Create(TagContextMenuContents, p.ID, "Contents", nil)
}

// DropDownMenu returns the options menu of the given drop down, or [Nil]
// if it is not a drop down.
func (a *Arena) DropDownMenu(dropDown ID) ID {
	if p := a.Panel(dropDown); p != nil {
		return p.Menu
	}
	return Nil
}

// ContentsPanel returns the inner contents panel of the given wrapper,
// or [Nil] if it has none.
func (a *Arena) ContentsPanel(wrapper ID) ID {
	if p := a.Panel(wrapper); p != nil {
		return p.Contents
	}
	return Nil
}

// AddOption registers the given panel as the last option of the drop
// down. The option becomes a child of the drop down's menu panel, never
// of the drop down itself. It returns false if the given panel is not
// a drop down.
func (a *Arena) AddOption(dropDown, option ID) bool {
	menu := a.DropDownMenu(dropDown)
	if menu == Nil {
		slog.Error("panel.Arena.AddOption: panel has no options menu", "panel", a.Panel(dropDown))
		return false
	}
	a.SetParent(option, menu)
	return true
}

// RemoveOption unregisters and deletes the given option. Options are
// identified by name; an option whose name is empty or shared with
// another option is identified by its handle instead. It returns
// whether a matching option existed.
func (a *Arena) RemoveOption(dropDown, option ID) bool {
	mp, op := a.Panel(a.DropDownMenu(dropDown)), a.Panel(option)
	if mp == nil || op == nil {
		return false
	}
	opt := Nil
	if op.Name != "" && a.countNamed(mp, op.Name) == 1 {
		opt = a.FindChild(mp.ID, op.Name)
	} else if slices.Contains(mp.Children, option) {
		opt = option
	}
	if opt == Nil {
		return false
	}
	a.Delete(opt)
	return true
}

// countNamed returns the number of children of the given panel
// with the given name.
func (a *Arena) countNamed(p *Panel, name string) int {
	n := 0
	for _, c := range p.Children {
		if a.panels[c].Name == name {
			n++
		}
	}
	return n
}

// Options returns the options of the given drop down in menu order.
func (a *Arena) Options(dropDown ID) []ID {
	if mp := a.Panel(a.DropDownMenu(dropDown)); mp != nil {
		return slices.Clone(mp.Children)
	}
	return nil
}

// OptionNames returns the names of the options of the given drop down
// in menu order.
func (a *Arena) OptionNames(dropDown ID) []string {
	opts := a.Options(dropDown)
	names := make([]string, len(opts))
	for i, o := range opts {
		names[i] = a.panels[o].Name
	}
	return names
}
