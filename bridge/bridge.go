// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bridge implements the host side of a tree reconciliation engine:
// it turns the engine's abstract tree edits (create, attach, detach,
// reorder, update) into mutations of native panels in a [panel.Arena],
// routing each edit through the quirks of the panel types involved.
//
// All operations are synchronous and must be called from the single
// thread that drives the engine's commit phase.
package bridge

import (
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"time"

	"cogentcore.org/panelsync/attrs"
	"cogentcore.org/panelsync/base/errors"
	"cogentcore.org/panelsync/panel"
	"cogentcore.org/panelsync/vdom"
)

// TextLeaf is the reserved type of text leaf nodes, which the host
// runtime cannot represent. Text must use a [panel.TagLabel] panel.
const TextLeaf = "TextLeaf"

var (
	// ErrUnsupportedNodeKind is returned when the engine asks for a node
	// kind that has no native counterpart, such as a [TextLeaf].
	ErrUnsupportedNodeKind = errors.New("unsupported node kind")

	// ErrMissingPanelType is returned when a [attrs.GenericType] node
	// does not give its concrete type in its [attrs.TypeAttr] prop.
	ErrMissingPanelType = errors.New("generic panel has no type")
)

// TimeoutHandle identifies a scheduled timeout.
type TimeoutHandle int

// NoTimeout is the sentinel handle meaning that nothing was scheduled.
const NoTimeout TimeoutHandle = -1

// Host is the operation contract that a reconciliation engine drives
// during its render and commit phases. [Bridge] is the implementation.
type Host interface {
	CreateInstance(typ string, props vdom.Props) (panel.ID, error)
	CreateTextInstance(text string) (panel.ID, error)
	AppendInitialChild(parent, child panel.ID)
	FinalizeInitialChildren(id panel.ID, typ string, props vdom.Props) bool

	AppendChild(parent, child panel.ID)
	AppendChildToContainer(container, child panel.ID)
	InsertBefore(parent, child, before panel.ID)
	InsertInContainerBefore(container, child, before panel.ID)
	RemoveChild(parent, child panel.ID)
	RemoveChildFromContainer(container, child panel.ID)

	PrepareUpdate(id panel.ID, typ string, oldProps, newProps vdom.Props) bool
	CommitUpdate(id panel.ID, typ string, oldProps, newProps vdom.Props)

	ShouldSetTextContent(typ string, props vdom.Props) bool
	GetPublicInstance(id panel.ID) panel.ID
	PrepareForCommit(container panel.ID)
	ResetAfterCommit(container panel.ID)

	ScheduleTimeout(fun func(), delay time.Duration) TimeoutHandle
	CancelTimeout(h TimeoutHandle)
	Now() time.Time
}

var _ Host = (*Bridge)(nil)

// Bridge applies the edits of a reconciliation engine to a [panel.Arena].
// Its registries are passed in explicitly and never change afterwards.
type Bridge struct {

	// Arena is the native panel tree being mutated.
	Arena *panel.Arena

	// Attrs are the attribute descriptors used for property reconciliation.
	Attrs *attrs.Registry

	// Fixups are the legacy base type fix-ups run on creation.
	Fixups Fixups

	// Kinds maps panel tags to their quirks [Kind]. Tags that
	// are not in the map are [Default].
	Kinds map[string]Kind

	holding holdingAreas

	// commits is the number of commits started, for logging.
	commits int
}

// New returns a new [Bridge] for the given arena and registries,
// creating its holding areas in the arena. A nil kinds map
// uses [DefaultKinds].
func New(a *panel.Arena, reg *attrs.Registry, fixups Fixups, kinds map[string]Kind) *Bridge {
	if kinds == nil {
		kinds = DefaultKinds()
	}
	return &Bridge{Arena: a, Attrs: reg, Fixups: fixups, Kinds: kinds, holding: newHoldingAreas(a)}
}

// NewStd returns a new [Bridge] on a new arena with the standard
// attribute registry, fix-ups and quirks.
func NewStd() *Bridge {
	return New(panel.NewArena(), attrs.Std(), StdFixups(), DefaultKinds())
}

// CreateInstance allocates a new native panel for a virtual node of the
// given type. Construction-time props are handed to the host on creation;
// all other props are applied as additions through property reconciliation.
func (b *Bridge) CreateInstance(typ string, props vdom.Props) (panel.ID, error) {
	if typ == attrs.GenericType {
		concrete := props.String(attrs.TypeAttr)
		if concrete == "" {
			return panel.Nil, fmt.Errorf("bridge.CreateInstance: %w (props: %v)", ErrMissingPanelType, props)
		}
		typ = concrete
		props = props.Clone()
		delete(props, attrs.TypeAttr)
	}
	if typ == TextLeaf {
		return panel.Nil, fmt.Errorf("bridge.CreateInstance: %w: %q; use a %s panel for text", ErrUnsupportedNodeKind, typ, panel.TagLabel)
	}
	initial, other := b.Attrs.SplitInitial(typ, props)
	id := b.Arena.Create(typ, b.Arena.Root(), props.String(attrs.IDAttr), initial)
	p := b.Arena.Panel(id)
	if fix := b.Fixups[typ]; fix != nil {
		fix(p)
	}
	for _, k := range slices.Sorted(maps.Keys(other)) {
		b.Attrs.Update(typ, p, k, nil, other[k])
	}
	return id, nil
}

// CreateTextInstance always fails, as the host has no text leaf panels.
func (b *Bridge) CreateTextInstance(text string) (panel.ID, error) {
	return panel.Nil, fmt.Errorf("bridge.CreateTextInstance: %w: text nodes are not supported; use a %s panel instead of %q", ErrUnsupportedNodeKind, panel.TagLabel, text)
}

// CommitUpdate applies the difference between the old and new props of
// the given panel. Keys are visited in sorted order. Changed and added
// keys are applied when their (pre-operated) values differ. Removed keys
// are compared against nil the same way and applied with a nil new value,
// so the native state resets to its default. Attributes without
// descriptors are ignored.
func (b *Bridge) CommitUpdate(id panel.ID, typ string, oldProps, newProps vdom.Props) {
	p := b.Arena.Panel(id)
	if p == nil {
		slog.Error("bridge.CommitUpdate: panel does not exist", "panel", id, "type", typ)
		return
	}
	if typ == attrs.GenericType {
		typ = p.Tag
	}
	for _, k := range slices.Sorted(maps.Keys(newProps)) {
		ov, nv := b.preOperate(typ, k, oldProps[k]), b.preOperate(typ, k, newProps[k])
		if !reflect.DeepEqual(ov, nv) {
			b.Attrs.Update(typ, p, k, ov, nv)
		}
	}
	for _, k := range slices.Sorted(maps.Keys(oldProps)) {
		if _, ok := newProps[k]; ok {
			continue
		}
		ov, nv := b.preOperate(typ, k, oldProps[k]), b.preOperate(typ, k, nil)
		if !reflect.DeepEqual(ov, nv) {
			b.Attrs.Update(typ, p, k, ov, nil)
		}
	}
}

// preOperate applies the pre-operation of the descriptor for the given
// attribute to the given value, if there is one.
func (b *Bridge) preOperate(typ, name string, v any) any {
	if d := b.Attrs.Descriptor(typ, name); d != nil && d.PreOperation != nil {
		return d.PreOperation(v)
	}
	return v
}

// AppendInitialChild attaches a child while building a new subtree.
func (b *Bridge) AppendInitialChild(parent, child panel.ID) {
	b.AppendChild(parent, child)
}

// FinalizeInitialChildren reports that no panel needs a post-mount callback.
func (b *Bridge) FinalizeInitialChildren(id panel.ID, typ string, props vdom.Props) bool {
	return false
}

// AppendChildToContainer attaches a child to the root container.
func (b *Bridge) AppendChildToContainer(container, child panel.ID) {
	b.AppendChild(container, child)
}

// InsertInContainerBefore inserts a child into the root container.
func (b *Bridge) InsertInContainerBefore(container, child, before panel.ID) {
	b.InsertBefore(container, child, before)
}

// RemoveChildFromContainer removes a child from the root container.
func (b *Bridge) RemoveChildFromContainer(container, child panel.ID) {
	b.RemoveChild(container, child)
}

// PrepareUpdate always reports an update, leaving the diffing
// to [Bridge.CommitUpdate].
func (b *Bridge) PrepareUpdate(id panel.ID, typ string, oldProps, newProps vdom.Props) bool {
	return true
}

// ShouldSetTextContent is always false: text is never set directly.
func (b *Bridge) ShouldSetTextContent(typ string, props vdom.Props) bool {
	return false
}

// GetPublicInstance exposes panels to the engine by their handles.
func (b *Bridge) GetPublicInstance(id panel.ID) panel.ID {
	return id
}

// PrepareForCommit is called before the engine starts a commit.
func (b *Bridge) PrepareForCommit(container panel.ID) {
	b.commits++
	slog.Debug("bridge: commit started", "commit", b.commits, "container", container)
}

// ResetAfterCommit is called after the engine finishes a commit.
func (b *Bridge) ResetAfterCommit(container panel.ID) {
	slog.Debug("bridge: commit finished", "commit", b.commits, "panels", b.Arena.Len())
}

// ScheduleTimeout does not schedule anything: deferred work is left to
// the host's own cooperative scheduling. It returns [NoTimeout].
func (b *Bridge) ScheduleTimeout(fun func(), delay time.Duration) TimeoutHandle {
	return NoTimeout
}

// CancelTimeout does nothing.
func (b *Bridge) CancelTimeout(h TimeoutHandle) {}

// Now returns the current time.
func (b *Bridge) Now() time.Time {
	return time.Now()
}
