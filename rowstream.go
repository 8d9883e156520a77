// Copyright 2023 Canonical Ltd.
// Licensed under Apache 2.0, see LICENCE file for details.

package sqlitpl

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/canonical/sqlitpl/internal/peek"
)

// Cursor is a live, positioned source of query results.
type Cursor interface {
	// Columns returns the column names of the result in order.
	Columns() ([]string, error)

	// Fetch returns the values of the next row, one per column. It returns
	// false once there are no more rows.
	Fetch() ([]any, bool, error)

	// RowCount returns the number of rows affected or matched as reported
	// by the database, or -1 if it is not known.
	RowCount() int64
}

// RowStream is a single-pass sequence of [Record] values read from a
// [Cursor]. Like the underlying cursor it cannot be restarted.
//
// A RowStream owns its cursor. If the cursor implements [io.Closer] it is
// closed by [RowStream.Close]; [Use] guarantees that this happens.
type RowStream struct {
	cursor  Cursor
	columns []string
	it      *peek.Iterator[Record]
	closed  bool
}

// NewRowStream returns a RowStream reading from cur. The column names are
// read once, here.
func NewRowStream(cur Cursor) (*RowStream, error) {
	cols, err := cur.Columns()
	if err != nil {
		return nil, fmt.Errorf("cannot read columns: %w", err)
	}
	rs := &RowStream{cursor: cur, columns: cols}
	rs.it = peek.New[Record](peek.ProducerFunc[Record](rs.fetch))
	return rs, nil
}

// fetch builds the next record from the cursor.
func (rs *RowStream) fetch() (Record, bool, error) {
	row, ok, err := rs.cursor.Fetch()
	if err != nil {
		return Record{}, false, fmt.Errorf("cannot fetch row: %w", err)
	}
	if !ok {
		return Record{}, false, nil
	}
	if len(row) != len(rs.columns) {
		return Record{}, false, fmt.Errorf("cannot fetch row: got %d values for %d columns", len(row), len(rs.columns))
	}
	return NewRecord(rs.columns, row), true, nil
}

// Columns returns the column names, in order.
func (rs *RowStream) Columns() []string {
	return append([]string(nil), rs.columns...)
}

// Next returns the next record. It returns an error wrapping [ErrExhausted]
// once there are no more records.
func (rs *RowStream) Next() (Record, error) {
	return rs.it.Next()
}

// At returns the i-th record of the result, counting from zero, skipping
// over records before it. It returns an error wrapping [ErrOutOfOrder] if
// the i-th record has already been read or skipped.
func (rs *RowStream) At(i int) (Record, error) {
	return rs.it.At(i)
}

// HasMore reports whether there is another record, without consuming it.
func (rs *RowStream) HasMore() bool {
	return rs.it.HasMore()
}

// All returns an iterator over the remaining records. [RowStream.Err]
// should be checked once the loop is done.
func (rs *RowStream) All() iter.Seq[Record] {
	return rs.it.All()
}

// List reads all the remaining records.
func (rs *RowStream) List() ([]Record, error) {
	var records []Record
	for r := range rs.All() {
		records = append(records, r)
	}
	if err := rs.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Err returns the error that stopped iteration, if any.
func (rs *RowStream) Err() error {
	return rs.it.Err()
}

// Len returns the row count reported by the cursor, or -1 if the cursor
// does not know it. It does not read from the stream.
func (rs *RowStream) Len() int64 {
	return rs.cursor.RowCount()
}

// Close releases the cursor. Close can be called multiple times.
func (rs *RowStream) Close() error {
	if rs.closed {
		return nil
	}
	rs.closed = true
	if c, ok := rs.cursor.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Use runs fn on a RowStream reading from cur and closes cur when fn
// returns, whether fn read every record or not.
func Use(cur Cursor, fn func(*RowStream) error) (err error) {
	rs, err := NewRowStream(cur)
	if err != nil {
		if c, ok := cur.(io.Closer); ok {
			err = errors.Join(err, c.Close())
		}
		return err
	}
	defer func() {
		if cerr := rs.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(rs)
}
