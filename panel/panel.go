// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package panel provides an in-memory model of the host runtime's
// retained-mode panel tree. Panels live in an [Arena] and are referenced
// by stable [ID] handles. Panels are never garbage collected: they
// exist until they are explicitly deleted through the arena.
package panel

import (
	"slices"
	"strconv"
)

// ID is a stable handle to a [Panel] in an [Arena].
// IDs are never reused within an arena, so a handle to a deleted
// panel stays invalid forever.
type ID uint32

// Nil is the null panel handle.
const Nil ID = 0

// String returns a short representation of the handle, like #12.
func (id ID) String() string {
	if id == Nil {
		return "#nil"
	}
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// Standard panel tags known to the host runtime.
const (
	TagPanel               = "Panel"
	TagLabel               = "Label"
	TagImage               = "Image"
	TagButton              = "Button"
	TagTextEntry           = "TextEntry"
	TagProgressBar         = "ProgressBar"
	TagDropDown            = "DropDown"
	TagDropDownMenu        = "DropDownMenu"
	TagContextMenuScript   = "ContextMenuScript"
	TagScene               = "DOTAScenePanel"
	TagParticleScene       = "DOTAParticleScenePanel"
	TagHeroImage           = "DOTAHeroImage"
	TagAbilityImage        = "DOTAAbilityImage"
	TagItemImage           = "DOTAItemImage"
	TagContextPanel        = "ContextPanel"
	TagHoldingArea         = "HoldingArea"
	TagContextMenuContents = "ContextMenuContents"
)

// ClassSceneLoaded is the class the host adds to a scene panel
// once its content has finished loading.
const ClassSceneLoaded = "SceneLoaded"

// Panel is one native panel in the host runtime's widget tree.
// Structural fields (Parent, Children, Menu, Contents) must only be
// changed through [Arena] methods; the property store (Properties,
// Classes, Styles, Events, DialogVariables) is mutated through the
// Panel methods below.
type Panel struct {

	// ID is the handle of this panel in its arena.
	ID ID

	// Tag is the panel type. It never changes after creation.
	Tag string

	// Name is the identifier of the panel, which is used to find
	// options in a drop down by name.
	Name string

	// Parent is the parent of the panel, or [Nil] for roots.
	Parent ID

	// Children is the ordered list of children.
	Children []ID

	// Properties is the generic property store.
	Properties map[string]any

	// Classes is the ordered set of classes on the panel.
	Classes []string

	// Styles holds inline style values by style property name.
	Styles map[string]any

	// Events holds panel event handlers by event name.
	Events map[string]any

	// DialogVariables holds localization dialog variables by name.
	DialogVariables map[string]any

	// Menu is the internal menu panel holding the options of a drop down.
	Menu ID

	// Contents is the inner contents panel of a wrapper panel.
	Contents ID
}

// String returns a short description of the panel, like Label#title(#3).
func (p *Panel) String() string {
	if p == nil {
		return "nil"
	}
	return p.Tag + "#" + p.Name + "(" + p.ID.String() + ")"
}

// SetProperty sets the given property to the given value.
func (p *Panel) SetProperty(key string, value any) {
	if p.Properties == nil {
		p.Properties = map[string]any{}
	}
	p.Properties[key] = value
}

// Property returns the property value for the given key.
// It returns nil if it doesn't exist.
func (p *Panel) Property(key string) any {
	return p.Properties[key]
}

// DeleteProperty deletes the property with the given key.
func (p *Panel) DeleteProperty(key string) {
	delete(p.Properties, key)
}

// HasClass returns whether the panel has the given class.
func (p *Panel) HasClass(class string) bool {
	return slices.Contains(p.Classes, class)
}

// AddClass adds the given class if the panel does not already have it.
func (p *Panel) AddClass(class string) {
	if class == "" || p.HasClass(class) {
		return
	}
	p.Classes = append(p.Classes, class)
}

// RemoveClass removes the given class if present.
func (p *Panel) RemoveClass(class string) {
	if i := slices.Index(p.Classes, class); i >= 0 {
		p.Classes = slices.Delete(p.Classes, i, i+1)
	}
}

// SetHasClass adds or removes the given class.
func (p *Panel) SetHasClass(class string, has bool) {
	if has {
		p.AddClass(class)
	} else {
		p.RemoveClass(class)
	}
}

// SetStyle sets the given inline style property. A nil value
// clears it, which reverts it to the stylesheet value.
func (p *Panel) SetStyle(key string, value any) {
	if value == nil {
		delete(p.Styles, key)
		return
	}
	if p.Styles == nil {
		p.Styles = map[string]any{}
	}
	p.Styles[key] = value
}

// Style returns the inline style value for the given key, or nil.
func (p *Panel) Style(key string) any {
	return p.Styles[key]
}

// SetPanelEvent sets the handler for the given event. A nil
// handler clears it.
func (p *Panel) SetPanelEvent(event string, handler any) {
	if handler == nil {
		delete(p.Events, event)
		return
	}
	if p.Events == nil {
		p.Events = map[string]any{}
	}
	p.Events[event] = handler
}

// Event returns the handler for the given event, or nil.
func (p *Panel) Event(event string) any {
	return p.Events[event]
}

// SetDialogVariable sets the given dialog variable. A nil
// value clears it.
func (p *Panel) SetDialogVariable(name string, value any) {
	if value == nil {
		delete(p.DialogVariables, name)
		return
	}
	if p.DialogVariables == nil {
		p.DialogVariables = map[string]any{}
	}
	p.DialogVariables[name] = value
}

// DialogVariable returns the value of the given dialog variable, or nil.
func (p *Panel) DialogVariable(name string) any {
	return p.DialogVariables[name]
}
