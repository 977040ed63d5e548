// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package attrs provides the attribute descriptors that map declarative
// props onto native panel state, the immutable [Registry] that holds them,
// and property reconciliation through [Registry.Update].
package attrs

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"cogentcore.org/panelsync/panel"
)

// Descriptor describes how to apply and reset one named attribute
// on one panel type.
//
// Apply routines must be idempotent: applying the same (old, new)
// pair twice must leave the panel in the same state as applying it once.
type Descriptor struct {

	// Name is the attribute name as it appears in props.
	Name string

	// Initial is whether the attribute can only be given at construction
	// time, in which case it is passed to the host when the panel is
	// created and never applied afterwards.
	Initial bool

	// Default is the value the native state takes when the
	// attribute is removed.
	Default any

	// PreOperation optionally transforms both the old and the new value
	// before they are compared and applied.
	PreOperation func(v any) any

	// Apply updates the panel from the old value to the new value.
	// A nil new value means the attribute was removed.
	// It is nil for construction-time attributes.
	Apply func(p *panel.Panel, old, new any)
}

// Property returns a descriptor that stores the attribute in the generic
// property store of the panel, resetting it to def when removed.
func Property(name string, def any) *Descriptor {
	return &Descriptor{
		Name:    name,
		Default: def,
		Apply: func(p *panel.Panel, old, new any) {
			switch {
			case new != nil:
				p.SetProperty(name, new)
			case def != nil:
				p.SetProperty(name, def)
			default:
				p.DeleteProperty(name)
			}
		},
	}
}

// Initial returns a construction-time descriptor.
func Initial(name string) *Descriptor {
	return &Descriptor{Name: name, Initial: true}
}

// ClassList returns a descriptor for a whitespace separated class list.
// Only the classes that differ between the old and new lists are touched,
// so classes added to the panel by other means are left alone.
func ClassList(name string) *Descriptor {
	return &Descriptor{
		Name:         name,
		Default:      "",
		PreOperation: normalizeClasses,
		Apply: func(p *panel.Panel, old, new any) {
			oldc := strings.Fields(toString(old))
			newc := strings.Fields(toString(new))
			for _, c := range oldc {
				if !slices.Contains(newc, c) {
					p.RemoveClass(c)
				}
			}
			for _, c := range newc {
				p.AddClass(c)
			}
		},
	}
}

// Style returns a descriptor for a map of inline style values.
// Style keys missing from the new map are cleared.
func Style(name string) *Descriptor {
	return mapDescriptor(name, (*panel.Panel).SetStyle)
}

// DialogVariables returns a descriptor for a map of dialog variables.
// Variables missing from the new map are cleared.
func DialogVariables(name string) *Descriptor {
	return mapDescriptor(name, (*panel.Panel).SetDialogVariable)
}

// Event returns a descriptor for a panel event handler.
func Event(name string) *Descriptor {
	return &Descriptor{
		Name: name,
		Apply: func(p *panel.Panel, old, new any) {
			p.SetPanelEvent(name, new)
		},
	}
}

func mapDescriptor(name string, set func(p *panel.Panel, key string, value any)) *Descriptor {
	return &Descriptor{
		Name: name,
		Apply: func(p *panel.Panel, old, new any) {
			oldm, newm := toMap(old), toMap(new)
			for _, k := range slices.Sorted(maps.Keys(oldm)) {
				if _, ok := newm[k]; !ok {
					set(p, k, nil)
				}
			}
			for _, k := range slices.Sorted(maps.Keys(newm)) {
				if ov, ok := oldm[k]; !ok || !reflect.DeepEqual(ov, newm[k]) {
					set(p, k, newm[k])
				}
			}
		},
	}
}

// normalizeClasses turns a class list into a canonical form (sorted,
// unique, single spaced) so that lists differing only in order or
// spacing compare equal.
func normalizeClasses(v any) any {
	cs := strings.Fields(toString(v))
	slices.Sort(cs)
	return strings.Join(slices.Compact(cs), " ")
}

func toString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, " ")
	default:
		return fmt.Sprint(v)
	}
}

// toMap converts any map with string keys into a map[string]any.
func toMap(v any) map[string]any {
	switch v := v.(type) {
	case nil:
		return nil
	case map[string]any:
		return v
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil
	}
	res := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		res[iter.Key().String()] = iter.Value().Interface()
	}
	return res
}
