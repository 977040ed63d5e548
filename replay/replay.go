// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package replay plays recorded reconciliation commits through a
// [bridge.Bridge]. A [Script] mounts a virtual tree and then lists the
// edits of each later commit, in the order an engine would issue them.
// It is a debugging stand-in for the engine: it never diffs trees itself.
package replay

import (
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/panelsync/attrs"
	"cogentcore.org/panelsync/base/errors"
	"cogentcore.org/panelsync/base/iox/yamlx"
	"cogentcore.org/panelsync/bridge"
	"cogentcore.org/panelsync/panel"
	"cogentcore.org/panelsync/vdom"
)

// Script is a recorded sequence of commits.
type Script struct {

	// Name is a descriptive name for the script.
	Name string `yaml:"name"`

	// Mount is the virtual tree mounted in the first commit.
	// Nodes with an id prop can be referred to in later ops.
	Mount []*vdom.Node `yaml:"mount"`

	// Commits are the later commits, in order.
	Commits []Commit `yaml:"commits"`

	// Expect is the expected dump of the root panel after
	// the last commit, if it is non-empty.
	Expect string `yaml:"expect"`
}

// Commit is one commit of edits.
type Commit struct {
	Name string `yaml:"name"`
	Ops  []Op   `yaml:"ops"`
}

// Ops are the kinds of edits in a [Commit].
const (
	OpCreate       = "create"
	OpAppend       = "append"
	OpInsertBefore = "insertBefore"
	OpRemove       = "remove"
	OpUpdate       = "update"
)

// Op is one edit. Which fields are used depends on the kind of op:
//
//	create:       Ref Type Props
//	append:       Parent Ref
//	insertBefore: Parent Ref Before
//	remove:       Parent Ref
//	update:       Ref Props (the complete new props)
//
// An empty Parent refers to the root container.
type Op struct {
	Op     string     `yaml:"op"`
	Ref    string     `yaml:"ref"`
	Parent string     `yaml:"parent"`
	Before string     `yaml:"before"`
	Type   string     `yaml:"type"`
	Props  vdom.Props `yaml:"props"`
}

// Open reads a [Script] from the given YAML file.
func Open(filename string) (*Script, error) {
	s := &Script{}
	if err := yamlx.Open(s, filename); err != nil {
		return nil, fmt.Errorf("replay.Open: %s: %w", filename, err)
	}
	return s, nil
}

// Read reads a [Script] in YAML from the given reader.
func Read(r io.Reader) (*Script, error) {
	s := &Script{}
	if err := yamlx.Read(s, r); err != nil {
		return nil, fmt.Errorf("replay.Read: %w", err)
	}
	return s, nil
}

// instance is a panel created by the player, with the type and
// props it was last committed with.
type instance struct {
	id    panel.ID
	typ   string
	props vdom.Props
}

// Player plays scripts through a bridge, tracking the panels it creates
// by reference name.
type Player struct {
	Bridge *bridge.Bridge

	refs map[string]*instance
}

// NewPlayer returns a new [Player] for the given bridge.
func NewPlayer(b *bridge.Bridge) *Player {
	return &Player{Bridge: b, refs: map[string]*instance{}}
}

// Result is the outcome of playing a [Script].
type Result struct {

	// Commits is the number of commits played, including the mount.
	Commits int

	// Dump is the dump of the root panel after the last commit.
	Dump string

	// Held is the dump of the scene holding area after the last commit.
	Held string
}

// Play plays the given script. It stops at the first failing op.
func (pl *Player) Play(s *Script) (*Result, error) {
	b := pl.Bridge
	root := b.Arena.Root()
	res := &Result{}

	b.PrepareForCommit(root)
	for _, n := range s.Mount {
		id, err := pl.mount(n)
		if err != nil {
			return res, fmt.Errorf("replay: %s: mount: %w", s.Name, err)
		}
		b.AppendChildToContainer(root, id)
	}
	b.ResetAfterCommit(root)
	res.Commits++

	for ci, c := range s.Commits {
		b.PrepareForCommit(root)
		for oi, op := range c.Ops {
			if err := pl.apply(op); err != nil {
				return res, fmt.Errorf("replay: %s: commit %d %q: op %d: %w", s.Name, ci, c.Name, oi, err)
			}
		}
		b.ResetAfterCommit(root)
		res.Commits++
	}
	res.Dump = b.Arena.Dump(root)
	res.Held = b.Arena.Dump(b.SceneHold())
	return res, nil
}

// Check plays the script and compares the resulting dump with
// [Script.Expect], if it is set.
func (pl *Player) Check(s *Script) (*Result, error) {
	res, err := pl.Play(s)
	if err != nil {
		return res, err
	}
	if s.Expect != "" && s.Expect != res.Dump {
		return res, fmt.Errorf("replay: %s: unexpected result:\n%s\nexpected:\n%s", s.Name, res.Dump, s.Expect)
	}
	return res, nil
}

// Panel returns the panel created for the given reference,
// or [panel.Nil] if there is none.
func (pl *Player) Panel(ref string) panel.ID {
	if in := pl.refs[ref]; in != nil {
		return in.id
	}
	return panel.Nil
}

// mount creates the panels of the given virtual subtree and
// attaches the children, returning the top panel.
func (pl *Player) mount(n *vdom.Node) (panel.ID, error) {
	id, err := pl.create(n.Props.String(attrs.IDAttr), n.Type, n.Props)
	if err != nil {
		return panel.Nil, err
	}
	for _, c := range n.Children {
		cid, err := pl.mount(c)
		if err != nil {
			return panel.Nil, err
		}
		pl.Bridge.AppendInitialChild(id, cid)
	}
	return id, nil
}

func (pl *Player) create(ref, typ string, props vdom.Props) (panel.ID, error) {
	id, err := pl.Bridge.CreateInstance(typ, props)
	if err != nil {
		return panel.Nil, err
	}
	if ref == "" {
		return id, nil
	}
	if _, has := pl.refs[ref]; has {
		slog.Warn("replay: reference is reused", "ref", ref)
	}
	pl.refs[ref] = &instance{id: id, typ: typ, props: props}
	return id, nil
}

func (pl *Player) lookup(ref string) (*instance, error) {
	in := pl.refs[ref]
	if in == nil {
		return nil, fmt.Errorf("unknown reference %q", ref)
	}
	return in, nil
}

// parent returns the panel for the given parent reference,
// where "" is the root container.
func (pl *Player) parent(ref string) (panel.ID, error) {
	if ref == "" {
		return pl.Bridge.Arena.Root(), nil
	}
	in, err := pl.lookup(ref)
	if err != nil {
		return panel.Nil, err
	}
	return in.id, nil
}

func (pl *Player) apply(op Op) error {
	b := pl.Bridge
	if op.Op == OpCreate {
		if op.Ref == "" {
			return errors.New("create: no reference")
		}
		_, err := pl.create(op.Ref, op.Type, op.Props)
		return err
	}
	in, err := pl.lookup(op.Ref)
	if err != nil {
		return fmt.Errorf("%s: %w", op.Op, err)
	}
	if op.Op == OpUpdate {
		b.CommitUpdate(in.id, in.typ, in.props, op.Props)
		in.props = op.Props
		return nil
	}
	parent, err := pl.parent(op.Parent)
	if err != nil {
		return fmt.Errorf("%s: parent: %w", op.Op, err)
	}
	container := op.Parent == ""
	switch op.Op {
	case OpAppend:
		if container {
			b.AppendChildToContainer(parent, in.id)
		} else {
			b.AppendChild(parent, in.id)
		}
	case OpInsertBefore:
		before, err := pl.lookup(op.Before)
		if err != nil {
			return fmt.Errorf("%s: before: %w", op.Op, err)
		}
		if container {
			b.InsertInContainerBefore(parent, in.id, before.id)
		} else {
			b.InsertBefore(parent, in.id, before.id)
		}
	case OpRemove:
		if container {
			b.RemoveChildFromContainer(parent, in.id)
		} else {
			b.RemoveChild(parent, in.id)
		}
	default:
		return fmt.Errorf("unknown op %q", op.Op)
	}
	return nil
}
