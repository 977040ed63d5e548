// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attrs

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"cogentcore.org/panelsync/panel"
)

// BaseType is the panel type whose descriptors apply to every panel type
// that does not define a descriptor of the same name itself.
const BaseType = panel.TagPanel

// Registry is an immutable set of attribute descriptors keyed by
// (panel type, attribute name). It is made with a [Builder] and can
// be shared freely once built.
type Registry struct {
	types map[string]map[string]*Descriptor
}

// Builder accumulates descriptors for a [Registry].
type Builder struct {
	types map[string]map[string]*Descriptor
}

// NewBuilder returns a new empty [Builder].
func NewBuilder() *Builder {
	return &Builder{types: map[string]map[string]*Descriptor{}}
}

// Add adds the given descriptors for the given panel type, replacing
// any existing descriptors with the same names. It returns the builder
// so that calls can be chained.
func (b *Builder) Add(typ string, ds ...*Descriptor) *Builder {
	m := b.types[typ]
	if m == nil {
		m = map[string]*Descriptor{}
		b.types[typ] = m
	}
	for _, d := range ds {
		m[d.Name] = d
	}
	return b
}

// Build returns a [Registry] with the current descriptors.
// Later changes to the builder do not affect the returned registry.
func (b *Builder) Build() *Registry {
	r := &Registry{types: make(map[string]map[string]*Descriptor, len(b.types))}
	for typ, m := range b.types {
		r.types[typ] = maps.Clone(m)
	}
	return r
}

// Descriptor returns the descriptor for the given attribute of the given
// panel type, falling back on the [BaseType] descriptors. It returns nil
// if there is no such descriptor.
func (r *Registry) Descriptor(typ, name string) *Descriptor {
	if d := r.types[typ][name]; d != nil {
		return d
	}
	return r.types[BaseType][name]
}

// Types returns the sorted panel types with registered descriptors.
func (r *Registry) Types() []string {
	return slices.Sorted(maps.Keys(r.types))
}

// Names returns the sorted names of all attributes that apply to the
// given panel type, including the [BaseType] attributes.
func (r *Registry) Names(typ string) []string {
	names := slices.Collect(maps.Keys(r.types[BaseType]))
	names = slices.AppendSeq(names, maps.Keys(r.types[typ]))
	slices.Sort(names)
	return slices.Compact(names)
}

// SplitInitial splits the given props into the construction-time props
// of the given panel type and all of the other props.
func (r *Registry) SplitInitial(typ string, props map[string]any) (initial, other map[string]any) {
	initial, other = map[string]any{}, map[string]any{}
	for k, v := range props {
		if d := r.Descriptor(typ, k); d != nil && d.Initial {
			initial[k] = v
		} else {
			other[k] = v
		}
	}
	return
}

// Update applies a change of the given attribute from old to new on the
// given panel through its descriptor. It does nothing if no descriptor is
// registered for the attribute. A nil new value resets the attribute.
func (r *Registry) Update(typ string, p *panel.Panel, name string, old, new any) {
	d := r.Descriptor(typ, name)
	if d == nil {
		if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
			slog.Debug("attrs: ignoring attribute with no descriptor", "type", typ, "attribute", name, "suggestion", r.Suggest(typ, name))
		}
		return
	}
	if d.Apply == nil {
		slog.Warn("attrs: attribute can only be set at creation", "panel", p, "attribute", name)
		return
	}
	d.Apply(p, old, new)
}

// Suggest returns the registered attribute name for the given panel type
// that is most similar to the given name, for diagnosing misspelled
// attributes. It returns "" if no name is similar enough.
func (r *Registry) Suggest(typ, name string) string {
	lev := metrics.NewLevenshtein()
	best, score := "", 0.6
	lname := strings.ToLower(name)
	for _, n := range r.Names(typ) {
		if s := strutil.Similarity(lname, strings.ToLower(n), lev); s > score {
			best, score = n, s
		}
	}
	return best
}
