// Copyright 2024 Canonical Ltd.
// Licensed under Apache 2.0, see LICENCE file for details.

package main

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

// engines maps the driver names accepted in the configuration to the
// database/sql drivers that serve them.
var engines = map[string]string{
	// cgo SQLite.
	"sqlite3": "sqlite3",
	// Pure Go SQLite.
	"sqlite": "sqlite",
}

// openDB opens the configured database and checks that it can be reached.
func (a *app) openDB() (*sql.DB, error) {
	driver, dsn := a.cfg.GetString(cfgKeyDriver), a.cfg.GetString(cfgKeyDSN)

	name, ok := engines[driver]
	if !ok {
		known := make([]string, 0, len(engines))
		for k := range engines {
			known = append(known, k)
		}
		sort.Strings(known)
		return nil, fmt.Errorf("unknown driver %q, expected one of: %s", driver, strings.Join(known, ", "))
	}
	if dsn == "" {
		return nil, fmt.Errorf("no database given, set --dsn or %s_DSN", envPrefix)
	}
	db, err := sql.Open(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}
	a.logger.Debug("opened database", "driver", name, "dsn", dsn)
	return db, nil
}
