// Copyright 2023 Canonical Ltd.
// Licensed under Apache 2.0, see LICENCE file for details.

package sqlitpl

import (
	"database/sql"
)

// sqlCursor reads the results of a database/sql query.
type sqlCursor struct {
	rows   *sql.Rows
	result sql.Result
	cols   []string
	err    error
}

// NewSQLCursor returns a [Cursor] over rows. Either argument may be nil: a
// statement run with Exec has a result but no rows. When result is set its
// RowsAffected is the cursor row count. The cursor implements io.Closer,
// closing rows.
func NewSQLCursor(rows *sql.Rows, result sql.Result) Cursor {
	return &sqlCursor{rows: rows, result: result}
}

// NewSQLStream returns a [RowStream] over rows.
func NewSQLStream(rows *sql.Rows) (*RowStream, error) {
	return NewRowStream(NewSQLCursor(rows, nil))
}

func (c *sqlCursor) Columns() ([]string, error) {
	if c.rows == nil {
		return nil, nil
	}
	if c.cols == nil {
		cols, err := c.rows.Columns()
		if err != nil {
			return nil, err
		}
		c.cols = cols
	}
	return c.cols, nil
}

func (c *sqlCursor) Fetch() ([]any, bool, error) {
	if c.err != nil {
		return nil, false, c.err
	}
	if c.rows == nil {
		return nil, false, nil
	}
	if !c.rows.Next() {
		c.err = c.rows.Err()
		return nil, false, c.err
	}
	cols, err := c.Columns()
	if err != nil {
		c.err = err
		return nil, false, err
	}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := c.rows.Scan(ptrs...); err != nil {
		c.err = err
		return nil, false, err
	}
	return values, true, nil
}

func (c *sqlCursor) RowCount() int64 {
	if c.result == nil {
		return -1
	}
	n, err := c.result.RowsAffected()
	if err != nil {
		return -1
	}
	return n
}

// Close closes the rows. It can be called multiple times.
func (c *sqlCursor) Close() error {
	if c.rows == nil {
		return nil
	}
	err := c.rows.Close()
	c.rows = nil
	return err
}
