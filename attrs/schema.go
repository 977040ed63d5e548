// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attrs

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/panelsync/base/errors"
	"cogentcore.org/panelsync/base/iox/tomlx"
	"cogentcore.org/panelsync/base/iox/yamlx"
)

// Kind is the kind of native state an attribute in a [Schema] maps onto.
type Kind string

const (
	// KindProperty stores the value in the generic property store.
	KindProperty Kind = "property"

	// KindClass treats the value as a whitespace separated class list.
	KindClass Kind = "class"

	// KindStyle treats the value as a map of inline style values.
	KindStyle Kind = "style"

	// KindEvent treats the value as an event handler.
	KindEvent Kind = "event"

	// KindDialog treats the value as a map of dialog variables.
	KindDialog Kind = "dialog"
)

// Schema is the file representation of a set of attribute descriptors,
// for panel types that are not covered by [StdBuilder] or to override it.
type Schema struct {

	// Types are the panel types described by the schema.
	Types []TypeSchema `toml:"types" yaml:"types"`
}

// TypeSchema describes the attributes of one panel type.
type TypeSchema struct {

	// Name is the panel type name.
	Name string `toml:"name" yaml:"name"`

	// Attributes are the attributes of the panel type.
	Attributes []AttributeSchema `toml:"attributes" yaml:"attributes"`
}

// AttributeSchema describes one attribute.
type AttributeSchema struct {
	Name string `toml:"name" yaml:"name"`

	// Kind defaults to [KindProperty].
	Kind Kind `toml:"kind" yaml:"kind"`

	// Default is the reset value of a [KindProperty] attribute.
	Default any `toml:"default" yaml:"default"`

	// Initial marks a construction-time attribute.
	Initial bool `toml:"initial" yaml:"initial"`
}

// OpenSchema reads a [Schema] from the given TOML or YAML file,
// choosing the format from the file extension.
func OpenSchema(filename string) (*Schema, error) {
	s := &Schema{}
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = tomlx.Open(s, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(s, filename)
	default:
		return nil, fmt.Errorf("attrs.OpenSchema: unsupported schema file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("attrs.OpenSchema: %s: %w", filename, err)
	}
	return s, nil
}

// Register adds the descriptors of the schema to the given builder.
// Invalid attributes are skipped and reported in the returned error.
func (s *Schema) Register(b *Builder) error {
	var errs []error
	for _, ts := range s.Types {
		if ts.Name == "" {
			errs = append(errs, errors.New("attrs.Schema: type with no name"))
			continue
		}
		for _, as := range ts.Attributes {
			d, err := as.Descriptor()
			if err != nil {
				errs = append(errs, fmt.Errorf("attrs.Schema: type %q: %w", ts.Name, err))
				continue
			}
			b.Add(ts.Name, d)
		}
	}
	return errors.Join(errs...)
}

// Descriptor returns the [Descriptor] described by the attribute schema.
func (as *AttributeSchema) Descriptor() (*Descriptor, error) {
	if as.Name == "" {
		return nil, errors.New("attribute with no name")
	}
	if as.Initial {
		return Initial(as.Name), nil
	}
	switch as.Kind {
	case KindProperty, "":
		return Property(as.Name, as.Default), nil
	case KindClass:
		return ClassList(as.Name), nil
	case KindStyle:
		return Style(as.Name), nil
	case KindEvent:
		return Event(as.Name), nil
	case KindDialog:
		return DialogVariables(as.Name), nil
	}
	return nil, fmt.Errorf("attribute %q has unknown kind %q", as.Name, as.Kind)
}
