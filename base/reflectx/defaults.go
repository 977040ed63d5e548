// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides a collection of helpers for the reflect
// package in the Go standard library.
package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/panelsync/base/errors"
)

// SetFromDefaultTags sets the values of fields in the given struct based on
// `default:` struct field tags. Nested struct fields are handled recursively.
// Only fields that currently hold their zero value are set, so that values
// set earlier take precedence over the defaults.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: expected a struct, not %v", v.Type())
	}
	var errs []error
	typ := v.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if f.Type.Kind() == reflect.Struct {
			errs = append(errs, SetFromDefaultTags(fv.Addr().Interface()))
			continue
		}
		def, ok := f.Tag.Lookup("default")
		if !ok || !fv.IsZero() {
			continue
		}
		if err := setFromString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("reflectx.SetFromDefaultTags: field %q: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}

// setFromString sets the given settable value from its string representation.
func setFromString(v reflect.Value, s string) error {
	if v.Type() == reflect.TypeFor[time.Duration]() {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %v", v.Type())
		}
		fields := strings.Fields(strings.NewReplacer("{", "", "}", "", ",", " ").Replace(s))
		v.Set(reflect.ValueOf(fields).Convert(v.Type()))
	default:
		return fmt.Errorf("unsupported type %v", v.Type())
	}
	return nil
}
