// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bridge

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/panelsync/attrs"
	"cogentcore.org/panelsync/base/errors"
	"cogentcore.org/panelsync/panel"
	"cogentcore.org/panelsync/vdom"
)

// create is a test helper that creates a panel and fails the test on error.
func create(t *testing.T, b *Bridge, typ string, props vdom.Props) panel.ID {
	t.Helper()
	id, err := b.CreateInstance(typ, props)
	require.NoError(t, err)
	return id
}

func TestCreateInstance(t *testing.T) {
	b := NewStd()
	id := create(t, b, panel.TagLabel, vdom.Props{
		"id": "title", "html": true, "text": "Hello", "className": "Big  Title", "missing": 1,
	})
	p := b.Arena.Panel(id)
	require.NotNil(t, p)
	assert.Equal(t, panel.TagLabel, p.Tag)
	assert.Equal(t, "title", p.Name)
	assert.Equal(t, b.Arena.Root(), p.Parent)
	assert.Equal(t, true, p.Property("html"))
	assert.Equal(t, "Hello", p.Property("text"))
	assert.Equal(t, []string{"Big", "Title"}, p.Classes)
	assert.Nil(t, p.Property("missing"))
}

func TestCreateInstanceTextLeaf(t *testing.T) {
	b := NewStd()
	n := b.Arena.Len()
	id, err := b.CreateInstance(TextLeaf, vdom.Props{})
	assert.ErrorIs(t, err, ErrUnsupportedNodeKind)
	assert.Equal(t, panel.Nil, id)
	assert.Equal(t, n, b.Arena.Len())

	_, err = b.CreateTextInstance("hello")
	assert.ErrorIs(t, err, ErrUnsupportedNodeKind)
	assert.ErrorContains(t, err, panel.TagLabel)

	_, err = b.CreateInstance(attrs.GenericType, vdom.Props{"type": TextLeaf})
	assert.True(t, errors.Is(err, ErrUnsupportedNodeKind))
}

func TestCreateInstanceGeneric(t *testing.T) {
	b := NewStd()
	id := create(t, b, attrs.GenericType, vdom.Props{"type": panel.TagLabel, "id": "g", "html": true, "text": "x"})
	p := b.Arena.Panel(id)
	assert.Equal(t, panel.TagLabel, p.Tag)
	assert.Equal(t, true, p.Property("html"))
	assert.Equal(t, "x", p.Property("text"))
	assert.Nil(t, p.Property("type"))

	// updates of generic panels use the concrete type
	b.CommitUpdate(id, attrs.GenericType, vdom.Props{"type": panel.TagLabel, "text": "x"}, vdom.Props{"type": panel.TagLabel, "text": "y"})
	assert.Equal(t, "y", p.Property("text"))

	_, err := b.CreateInstance(attrs.GenericType, vdom.Props{"id": "nope"})
	assert.ErrorIs(t, err, ErrMissingPanelType)
}

func TestCreateInstanceFixups(t *testing.T) {
	b := NewStd()
	hero := create(t, b, panel.TagHeroImage, vdom.Props{"heroname": "npc_dota_hero_axe"})
	assert.Equal(t, DefaultImageScaling, b.Arena.Panel(hero).Property("scaling"))
	assert.Equal(t, "npc_dota_hero_axe", b.Arena.Panel(hero).Property("heroname"))

	// a scaling given at creation wins over the default
	for _, typ := range LegacyBaseNames {
		id := create(t, b, typ, vdom.Props{"scaling": "none"})
		assert.Equal(t, "none", b.Arena.Panel(id).Property("scaling"), typ)
	}

	lbl := create(t, b, panel.TagLabel, nil)
	assert.Nil(t, b.Arena.Panel(lbl).Property("scaling"))

	var fixed []string
	fb := New(panel.NewArena(), attrs.Std(), Fixups{"Legacy": func(p *panel.Panel) { fixed = append(fixed, p.Name) }}, nil)
	_, err := fb.CreateInstance("Legacy", vdom.Props{"id": "old"})
	require.NoError(t, err)
	_, err = fb.CreateInstance(panel.TagPanel, vdom.Props{"id": "new"})
	require.NoError(t, err)
	assert.Equal(t, []string{"old"}, fixed)
}

func TestAppendChildDefault(t *testing.T) {
	b := NewStd()
	parent := create(t, b, panel.TagPanel, vdom.Props{"id": "parent"})
	x := create(t, b, panel.TagLabel, vdom.Props{"id": "x"})
	y := create(t, b, panel.TagLabel, vdom.Props{"id": "y"})
	b.AppendChild(parent, x)
	b.AppendChild(parent, y)
	assert.Equal(t, []panel.ID{x, y}, b.Arena.Panel(parent).Children)
	assert.Equal(t, parent, b.Arena.Panel(y).Parent)
	assert.Equal(t, y, b.Arena.LastChild(parent))
	assert.NotContains(t, b.Arena.Panel(b.Arena.Root()).Children, x)

	// appending an existing child moves it to the end in place
	b.AppendChild(parent, x)
	assert.Equal(t, []panel.ID{y, x}, b.Arena.Panel(parent).Children)
}

func TestAppendChildRedundantReorder(t *testing.T) {
	b := NewStd()
	parent := create(t, b, panel.TagPanel, vdom.Props{"id": "parent"})
	var kids []panel.ID
	for _, name := range []string{"a", "b", "c"} {
		k := create(t, b, panel.TagLabel, vdom.Props{"id": name, "text": name})
		b.AppendChild(parent, k)
		kids = append(kids, k)
	}
	last := kids[2]
	b.Arena.Panel(last).AddClass("Hovered")

	before := b.Arena.Snapshot(parent)
	b.AppendChild(parent, last)
	assert.Empty(t, cmp.Diff(before, b.Arena.Snapshot(parent)))
	assert.Equal(t, kids, b.Arena.Panel(parent).Children)
	assert.True(t, b.Arena.Panel(last).HasClass("Hovered"))
}

func TestInsertBeforeDefault(t *testing.T) {
	b := NewStd()
	parent := create(t, b, panel.TagPanel, nil)
	x := create(t, b, panel.TagLabel, nil)
	y := create(t, b, panel.TagLabel, nil)
	z := create(t, b, panel.TagLabel, nil)
	b.AppendChild(parent, x)
	b.AppendChild(parent, y)
	b.InsertBefore(parent, z, x)
	assert.Equal(t, []panel.ID{z, x, y}, b.Arena.Panel(parent).Children)
	assert.Equal(t, parent, b.Arena.Panel(z).Parent)

	// moving an existing child
	b.InsertBefore(parent, y, z)
	assert.Equal(t, []panel.ID{y, z, x}, b.Arena.Panel(parent).Children)
}

func TestSelectionListAppend(t *testing.T) {
	b := NewStd()
	dd := create(t, b, panel.TagDropDown, vdom.Props{"id": "dd"})
	a := create(t, b, panel.TagLabel, vdom.Props{"id": "A"})
	b.AppendChild(dd, a)
	assert.NotEqual(t, dd, b.Arena.Panel(a).Parent)
	assert.Equal(t, []panel.ID{a}, b.Arena.Options(dd))
	assert.NotContains(t, b.Arena.Panel(dd).Children, a)
}

func TestSelectionListInsertBefore(t *testing.T) {
	b := NewStd()
	dd := create(t, b, panel.TagDropDown, vdom.Props{"id": "dd"})
	for _, name := range []string{"A", "B", "C"} {
		b.AppendChild(dd, create(t, b, panel.TagLabel, vdom.Props{"id": name}))
	}
	require.Equal(t, []string{"A", "B", "C"}, b.Arena.OptionNames(dd))

	d := create(t, b, panel.TagLabel, vdom.Props{"id": "D"})
	optB := b.Arena.Options(dd)[1]
	b.InsertBefore(dd, d, optB)
	assert.Equal(t, []string{"A", "D", "B", "C"}, b.Arena.OptionNames(dd))
	assert.NotEqual(t, dd, b.Arena.Panel(d).Parent)
}

func TestSelectionListRemove(t *testing.T) {
	b := NewStd()
	dd := create(t, b, panel.TagDropDown, vdom.Props{"id": "dd"})
	a := create(t, b, panel.TagLabel, vdom.Props{"id": "A"})
	c := create(t, b, panel.TagLabel, vdom.Props{"id": "C"})
	b.AppendChild(dd, a)
	b.AppendChild(dd, c)
	b.RemoveChild(dd, a)
	assert.False(t, b.Arena.Exists(a))
	assert.Equal(t, []string{"C"}, b.Arena.OptionNames(dd))
	assert.Empty(t, b.Arena.Panel(b.GenericHold()).Children)
}

func TestSelectionListRemoveUnnamed(t *testing.T) {
	b := NewStd()
	dd := create(t, b, panel.TagDropDown, vdom.Props{"id": "dd"})
	a := create(t, b, panel.TagLabel, vdom.Props{"text": "a"})
	c := create(t, b, panel.TagLabel, vdom.Props{"text": "c"})
	b.AppendChild(dd, a)
	b.AppendChild(dd, c)
	b.RemoveChild(dd, c)
	assert.True(t, b.Arena.Exists(a))
	assert.False(t, b.Arena.Exists(c))
	assert.Equal(t, []panel.ID{a}, b.Arena.Options(dd))

	b.RemoveChild(dd, a)
	assert.False(t, b.Arena.Exists(a))
	assert.Empty(t, b.Arena.Options(dd))
}

func TestMenuWrapper(t *testing.T) {
	b := NewStd()
	w := create(t, b, panel.TagContextMenuScript, vdom.Props{"id": "menu"})
	contents := b.Arena.ContentsPanel(w)
	x := create(t, b, panel.TagButton, vdom.Props{"id": "x"})
	y := create(t, b, panel.TagButton, vdom.Props{"id": "y"})
	b.AppendChild(w, x)
	b.InsertBefore(w, y, x)
	assert.Equal(t, []panel.ID{contents}, b.Arena.Panel(w).Children)
	assert.Equal(t, []panel.ID{y, x}, b.Arena.Panel(contents).Children)
	assert.Equal(t, contents, b.Arena.Panel(x).Parent)

	b.AppendChild(w, x)
	assert.Equal(t, []panel.ID{y, x}, b.Arena.Panel(contents).Children)

	b.RemoveChild(w, y)
	assert.False(t, b.Arena.Exists(y))
	assert.Equal(t, []panel.ID{x}, b.Arena.Panel(contents).Children)
}

func TestRemoveChildDeletes(t *testing.T) {
	b := NewStd()
	parent := create(t, b, panel.TagPanel, nil)
	x := create(t, b, panel.TagPanel, nil)
	gx := create(t, b, panel.TagLabel, nil)
	b.AppendChild(parent, x)
	b.AppendChild(x, gx)
	b.RemoveChild(parent, x)
	assert.False(t, b.Arena.Exists(x))
	assert.False(t, b.Arena.Exists(gx))
	assert.Empty(t, b.Arena.Panel(parent).Children)
	assert.Empty(t, b.Arena.Panel(b.GenericHold()).Children)
}

func TestRemoveChildFlushesHoldingArea(t *testing.T) {
	b := NewStd()
	parent := create(t, b, panel.TagPanel, nil)
	x := create(t, b, panel.TagLabel, nil)
	stray := create(t, b, panel.TagLabel, nil)
	b.AppendChild(parent, x)
	// a panel parked earlier in the same batch is cleaned up too
	b.Arena.SetParent(stray, b.GenericHold())
	b.RemoveChild(parent, x)
	assert.False(t, b.Arena.Exists(x))
	assert.False(t, b.Arena.Exists(stray))
}

func TestRemoveChildScene(t *testing.T) {
	b := NewStd()
	parent := create(t, b, panel.TagPanel, nil)
	loading := create(t, b, panel.TagScene, vdom.Props{"map": "maps/hero.vmap"})
	particles := create(t, b, panel.TagParticleScene, nil)
	loaded := create(t, b, panel.TagScene, nil)
	b.Arena.Panel(loaded).AddClass(panel.ClassSceneLoaded)
	for _, id := range []panel.ID{loading, particles, loaded} {
		b.AppendChild(parent, id)
	}
	assert.Equal(t, "maps/hero.vmap", b.Arena.Panel(loading).Property("map"))

	b.RemoveChild(parent, loading)
	b.RemoveChild(parent, particles)
	b.RemoveChild(parent, loaded)
	assert.True(t, b.Arena.Exists(loading))
	assert.True(t, b.Arena.Exists(particles))
	assert.Equal(t, []panel.ID{loading, particles}, b.Arena.Panel(b.SceneHold()).Children)
	assert.False(t, b.Arena.Exists(loaded))
	assert.Empty(t, b.Arena.Panel(parent).Children)

	// parked scenes survive later flushes of the generic holding area
	other := create(t, b, panel.TagLabel, nil)
	b.AppendChild(parent, other)
	b.RemoveChild(parent, other)
	assert.True(t, b.Arena.Exists(loading))
}

func TestHoldingAreasAreDetached(t *testing.T) {
	b := NewStd()
	for _, h := range []panel.ID{b.GenericHold(), b.SceneHold()} {
		p := b.Arena.Panel(h)
		require.NotNil(t, p)
		assert.Equal(t, panel.Nil, p.Parent)
		assert.Equal(t, panel.TagHoldingArea, p.Tag)
	}
}

// countingRegistry returns a registry for type "T" whose attributes
// record every applied change.
func countingRegistry(changes *[]string) *attrs.Registry {
	rec := func(name string) *attrs.Descriptor {
		return &attrs.Descriptor{Name: name, Apply: func(p *panel.Panel, old, new any) {
			*changes = append(*changes, name)
			if new == nil {
				p.SetProperty(name, "default")
			} else {
				p.SetProperty(name, new)
			}
		}}
	}
	return attrs.NewBuilder().Add("T", rec("a"), rec("b"), rec("c")).Build()
}

func TestCommitUpdateChanged(t *testing.T) {
	var changes []string
	b := New(panel.NewArena(), countingRegistry(&changes), nil, nil)
	id := create(t, b, "T", nil)
	b.CommitUpdate(id, "T", vdom.Props{"a": 1, "b": 2}, vdom.Props{"a": 1, "b": 3})
	assert.Equal(t, []string{"b"}, changes)
	assert.Equal(t, 3, b.Arena.Panel(id).Property("b"))
}

func TestCommitUpdateRemoved(t *testing.T) {
	var changes []string
	b := New(panel.NewArena(), countingRegistry(&changes), nil, nil)
	id := create(t, b, "T", vdom.Props{"a": 1})
	changes = nil
	b.CommitUpdate(id, "T", vdom.Props{"a": 1}, vdom.Props{})
	assert.Equal(t, []string{"a"}, changes)
	assert.Equal(t, "default", b.Arena.Panel(id).Property("a"))
}

func TestCommitUpdateNilUnchanged(t *testing.T) {
	var changes []string
	b := New(panel.NewArena(), countingRegistry(&changes), nil, nil)
	id := create(t, b, "T", nil)
	b.CommitUpdate(id, "T", vdom.Props{"a": nil}, vdom.Props{})
	b.CommitUpdate(id, "T", vdom.Props{}, vdom.Props{"b": nil})
	assert.Empty(t, changes)

	// an empty class list is the same as no class list
	sb := NewStd()
	lbl := create(t, sb, panel.TagLabel, vdom.Props{"className": ""})
	p := sb.Arena.Panel(lbl)
	p.AddClass("Hover")
	sb.CommitUpdate(lbl, panel.TagLabel, vdom.Props{"className": ""}, vdom.Props{})
	assert.Equal(t, []string{"Hover"}, p.Classes)
}

func TestCommitUpdateAddedAndMissing(t *testing.T) {
	var changes []string
	b := New(panel.NewArena(), countingRegistry(&changes), nil, nil)
	id := create(t, b, "T", nil)
	b.CommitUpdate(id, "T", vdom.Props{"zz": 1}, vdom.Props{"c": 1, "a": 2, "nope": 3})
	assert.Equal(t, []string{"a", "c"}, changes)
}

func TestCommitUpdatePreOperation(t *testing.T) {
	b := NewStd()
	id := create(t, b, panel.TagPanel, vdom.Props{"className": "a b"})
	p := b.Arena.Panel(id)
	p.AddClass("Extra")
	b.Arena.Panel(id).RemoveClass("a")

	// same classes in another order: nothing is applied, so the
	// removed class is not restored
	b.CommitUpdate(id, panel.TagPanel, vdom.Props{"className": "a b"}, vdom.Props{"className": "b  a"})
	assert.Equal(t, []string{"b", "Extra"}, p.Classes)

	b.CommitUpdate(id, panel.TagPanel, vdom.Props{"className": "a b"}, vdom.Props{"className": "c"})
	assert.Equal(t, []string{"Extra", "c"}, p.Classes)

	b.CommitUpdate(id, panel.TagPanel, vdom.Props{"className": "c", "style": map[string]any{"width": "4px"}}, vdom.Props{})
	assert.Equal(t, []string{"Extra"}, p.Classes)
	assert.Empty(t, p.Styles)
}

func TestCommitUpdateEqualMaps(t *testing.T) {
	b := NewStd()
	id := create(t, b, panel.TagPanel, vdom.Props{"style": map[string]any{"width": "4px"}})
	p := b.Arena.Panel(id)
	p.SetStyle("width", "9px")
	b.CommitUpdate(id, panel.TagPanel, vdom.Props{"style": map[string]any{"width": "4px"}}, vdom.Props{"style": map[string]any{"width": "4px"}})
	assert.Equal(t, "9px", p.Style("width"))
}

func TestInvalidPanels(t *testing.T) {
	b := NewStd()
	parent := create(t, b, panel.TagPanel, nil)
	assert.NotPanics(t, func() {
		b.AppendChild(parent, 999)
		b.InsertBefore(999, parent, parent)
		b.RemoveChild(parent, 999)
		b.CommitUpdate(999, panel.TagPanel, nil, vdom.Props{"visible": false})
	})
}

func TestEngineContract(t *testing.T) {
	b := NewStd()
	root := b.Arena.Root()
	id := create(t, b, panel.TagPanel, nil)
	assert.True(t, b.PrepareUpdate(id, panel.TagPanel, nil, nil))
	assert.False(t, b.FinalizeInitialChildren(id, panel.TagPanel, nil))
	assert.False(t, b.ShouldSetTextContent(panel.TagLabel, vdom.Props{"text": "x"}))
	assert.Equal(t, id, b.GetPublicInstance(id))

	called := false
	h := b.ScheduleTimeout(func() { called = true }, time.Millisecond)
	assert.Equal(t, NoTimeout, h)
	b.CancelTimeout(h)
	assert.False(t, called)
	assert.WithinDuration(t, time.Now(), b.Now(), time.Second)

	b.PrepareForCommit(root)
	c := create(t, b, panel.TagLabel, nil)
	d := create(t, b, panel.TagLabel, nil)
	b.AppendChildToContainer(root, c)
	b.InsertInContainerBefore(root, d, c)
	kids := b.Arena.Panel(root).Children
	assert.Equal(t, []panel.ID{d, c}, kids[len(kids)-2:])
	b.RemoveChildFromContainer(root, c)
	assert.False(t, b.Arena.Exists(c))
	b.ResetAfterCommit(root)

	n := create(t, b, panel.TagPanel, nil)
	k := create(t, b, panel.TagLabel, nil)
	b.AppendInitialChild(n, k)
	assert.Equal(t, n, b.Arena.Panel(k).Parent)
}

func TestKinds(t *testing.T) {
	b := NewStd()
	dd := create(t, b, panel.TagDropDown, nil)
	w := create(t, b, panel.TagContextMenuScript, nil)
	s := create(t, b, panel.TagScene, nil)
	assert.Equal(t, SelectionList, b.KindOf(dd))
	assert.Equal(t, MenuWrapper, b.KindOf(w))
	assert.Equal(t, SceneContent, b.KindOf(s))
	assert.Equal(t, Default, b.KindOf(b.Arena.Root()))
	assert.Equal(t, Default, b.KindOf(999))
	assert.Equal(t, "SelectionList", SelectionList.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
