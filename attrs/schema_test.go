// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/panelsync/panel"
)

func TestOpenSchemaTOML(t *testing.T) {
	s, err := OpenSchema("testdata/schema.toml")
	require.NoError(t, err)
	b := StdBuilder()
	require.NoError(t, s.Register(b))
	r := b.Build()

	d := r.Descriptor("DOTAUserName", "steamid")
	require.NotNil(t, d)
	assert.True(t, d.Initial)

	p := &panel.Panel{}
	r.Update("DOTAUserName", p, "accountid", nil, int64(42))
	assert.Equal(t, int64(42), p.Property("accountid"))
	r.Update("DOTAUserName", p, "accountid", int64(42), nil)
	assert.Equal(t, int64(0), p.Property("accountid"))

	// schema types extend the standard ones
	assert.NotNil(t, r.Descriptor(panel.TagLabel, "text"))
	r.Update(panel.TagLabel, p, "labelClasses", nil, "Big Bold")
	assert.Equal(t, []string{"Big", "Bold"}, p.Classes)
}

func TestOpenSchemaYAML(t *testing.T) {
	s, err := OpenSchema("testdata/schema.yaml")
	require.NoError(t, err)
	require.Len(t, s.Types, 2)
	b := NewBuilder()
	require.NoError(t, s.Register(b))
	r := b.Build()

	p := &panel.Panel{}
	r.Update("Slider", p, "value", nil, 0.75)
	assert.Equal(t, 0.75, p.Property("value"))
	r.Update("Slider", p, "value", 0.75, nil)
	assert.Equal(t, 0.5, p.Property("value"))
	r.Update("Slider", p, "onvaluechanged", nil, "Changed()")
	assert.Equal(t, "Changed()", p.Event("onvaluechanged"))

	r.Update("DOTAAvatarImage", p, "avatarVars", nil, map[string]any{"name": "x"})
	assert.Equal(t, "x", p.DialogVariable("name"))
	assert.True(t, r.Descriptor("DOTAAvatarImage", "steamid").Initial)
}

func TestSchemaErrors(t *testing.T) {
	_, err := OpenSchema("testdata/schema.json")
	assert.Error(t, err)
	_, err = OpenSchema("testdata/missing.toml")
	assert.Error(t, err)

	s, err := OpenSchema("testdata/bad.yaml")
	require.NoError(t, err)
	b := NewBuilder()
	err = s.Register(b)
	assert.ErrorContains(t, err, "type with no name")
	assert.ErrorContains(t, err, `unknown kind "volume"`)
	assert.ErrorContains(t, err, "attribute with no name")
	assert.NotNil(t, b.Build().Descriptor("Widget", "label"))
}
