// Copyright 2024 Canonical Ltd.
// Licensed under Apache 2.0, see LICENCE file for details.

package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/canonical/sqlitpl"
)

// bind turns interpolated chunks into a query with "?" placeholders and its
// arguments. Every expression must be a name, possibly dotted, defined in
// vars. Literal chunks are copied verbatim.
func bind(chunks []sqlitpl.Chunk, vars map[string]string) (string, []any, error) {
	var sb strings.Builder
	var args []any
	for _, chunk := range chunks {
		switch chunk := chunk.(type) {
		case sqlitpl.Literal:
			sb.WriteString(chunk.Text())
		case sqlitpl.Expression:
			name := strings.TrimSpace(chunk.Text())
			if !isDottedName(name) {
				return "", nil, fmt.Errorf("cannot bind %q: only variable names are supported", chunk.Text())
			}
			v, ok := vars[name]
			if !ok {
				return "", nil, fmt.Errorf("cannot bind %q: variable not set", name)
			}
			sb.WriteString("?")
			args = append(args, v)
		default:
			return "", nil, fmt.Errorf("internal error: unknown chunk type %T", chunk)
		}
	}
	return sb.String(), args, nil
}

func isDottedName(s string) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ".") {
		if part == "" {
			return false
		}
		for _, r := range part {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				return false
			}
		}
	}
	return true
}

// parseVars parses "name=value" assignments.
func parseVars(assignments []string) (map[string]string, error) {
	vars := make(map[string]string, len(assignments))
	for _, a := range assignments {
		name, value, ok := strings.Cut(a, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid variable %q, expected name=value", a)
		}
		vars[name] = value
	}
	return vars, nil
}

// interpolate parses template with the configured marker and binds it.
func (a *app) interpolate(template string, assignments []string) (string, []any, error) {
	marker, err := markerFrom(a.cfg)
	if err != nil {
		return "", nil, err
	}
	vars, err := parseVars(assignments)
	if err != nil {
		return "", nil, err
	}
	chunks, err := sqlitpl.InterpolateMarker(template, marker)
	if err != nil {
		return "", nil, err
	}
	query, args, err := bind(chunks, vars)
	if err != nil {
		return "", nil, err
	}
	a.logger.Debug("bound query", "query", query, "args", len(args))
	return query, args, nil
}
