// Copyright 2024 Canonical Ltd.
// Licensed under Apache 2.0, see LICENCE file for details.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/canonical/sqlitpl"
)

// recordWriter prints records either with their String form or as JSON
// objects, one per line, keeping the column order.
type recordWriter struct {
	out  io.Writer
	json bool
}

func newRecordWriter(out io.Writer, asJSON bool) *recordWriter {
	return &recordWriter{out: out, json: asJSON}
}

func (w *recordWriter) write(r sqlitpl.Record) error {
	if !w.json {
		_, err := fmt.Fprintln(w.out, r)
		return err
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.Names() {
		if i > 0 {
			buf.WriteByte(',')
		}
		v, _ := r.Lookup(name)
		// Text comes back from some drivers as bytes.
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		k, err := json.Marshal(name)
		if err != nil {
			return err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("cannot encode field %q: %w", name, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteString("}\n")
	_, err := w.out.Write(buf.Bytes())
	return err
}
