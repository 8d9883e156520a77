// Copyright 2024 Canonical Ltd.
// Licensed under Apache 2.0, see LICENCE file for details.

package sqlitpl

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrNoField is returned by [Record.Get] for names that are not fields of the
// record.
var ErrNoField = errors.New("no such field")

// Record is a row with named fields. Field names keep the case reported by
// the database. The order of the fields is the column order of the query; it
// is used for display only.
type Record struct {
	names  []string
	values map[string]any
}

// NewRecord returns a record with the given fields. names and values must
// have the same length. A repeated name keeps its first position and its
// last value.
func NewRecord(names []string, values []any) Record {
	r := Record{values: make(map[string]any, len(names))}
	for i, name := range names {
		r.Set(name, values[i])
	}
	return r
}

// Get returns the value of the named field.
func (r Record) Get(name string) (any, error) {
	v, ok := r.values[name]
	if !ok {
		return nil, fmt.Errorf("cannot get field %q: %w", name, ErrNoField)
	}
	return v, nil
}

// Lookup returns the value of the named field and whether it exists.
func (r Record) Lookup(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Set sets the named field, adding it after the existing fields if it is
// new.
func (r *Record) Set(name string, value any) {
	if r.values == nil {
		r.values = map[string]any{}
	}
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = value
}

// Names returns the field names in order.
func (r Record) Names() []string {
	return append([]string(nil), r.names...)
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.names)
}

// Map returns a copy of the fields as a map.
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r.values))
	for k, v := range r.values {
		m[k] = v
	}
	return m
}

// Equal reports whether both records have the same fields with the same
// values, in any order.
func (r Record) Equal(other Record) bool {
	if len(r.values) != len(other.values) {
		return false
	}
	for k, v := range r.values {
		ov, ok := other.values[k]
		if !ok || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}

func (r Record) String() string {
	var sb strings.Builder
	sb.WriteString("Record{")
	for i, name := range r.names {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %#v", name, r.values[name])
	}
	sb.WriteString("}")
	return sb.String()
}
