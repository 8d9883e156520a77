// Copyright 2024 Canonical Ltd.
// Licensed under Apache 2.0, see LICENCE file for details.

package sqlitpl_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"sync"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
)

// This file contains a wrapper sql.Driver over the SQLite driver which
// monitors the opening and closing of result rows. We can later use that
// information to check that streams release their rows.

// openedRows and closedRows count the result rows opened and closed on each
// database, indexed by DSN. rowsRegistryMutex must be held when accessing
// them.
var openedRows = map[string]int{}
var closedRows = map[string]int{}
var rowsRegistryMutex sync.Mutex

const trackingDriverName = "sqlite3_rowsChecked"

type trackingDriver struct {
	*sqlite3.SQLiteDriver
}

type trackingConn struct {
	dsn string
	*sqlite3.SQLiteConn
}

type trackingRows struct {
	dsn string
	driver.Rows
	once sync.Once
}

func (r *trackingRows) Close() error {
	r.once.Do(func() {
		rowsRegistryMutex.Lock()
		defer rowsRegistryMutex.Unlock()
		closedRows[r.dsn]++
	})
	return r.Rows.Close()
}

func (c *trackingConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	rows, err := c.SQLiteConn.QueryContext(ctx, query, args)
	if err != nil {
		return nil, err
	}
	rowsRegistryMutex.Lock()
	defer rowsRegistryMutex.Unlock()
	openedRows[c.dsn]++
	return &trackingRows{dsn: c.dsn, Rows: rows}, nil
}

func (d *trackingDriver) Open(dsn string) (driver.Conn, error) {
	conn, err := d.SQLiteDriver.Open(dsn)
	if err != nil {
		return nil, err
	}
	sqliteConn, ok := conn.(*sqlite3.SQLiteConn)
	if !ok {
		panic("internal error: base driver is not SQLite")
	}
	return &trackingConn{dsn: dsn, SQLiteConn: sqliteConn}, nil
}

// rowsCounts returns how many rows were opened and closed on the database.
func rowsCounts(dsn string) (opened, closed int) {
	rowsRegistryMutex.Lock()
	defer rowsRegistryMutex.Unlock()
	return openedRows[dsn], closedRows[dsn]
}

// openTrackedDB opens a fresh in-memory database through the tracking driver.
// Every call gets its own database as the name is random.
func openTrackedDB() (*sql.DB, string, error) {
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := sql.Open(trackingDriverName, dsn)
	if err != nil {
		return nil, "", err
	}
	return db, dsn, nil
}

func init() {
	sql.Register(trackingDriverName, &trackingDriver{&sqlite3.SQLiteDriver{}})
}
