// Copyright 2024 Canonical Ltd.
// Licensed under Apache 2.0, see LICENCE file for details.

package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/canonical/sqlitpl"
)

func newExecCmd(a *app) *cobra.Command {
	var vars []string

	cmd := &cobra.Command{
		Use:   "exec TEMPLATE",
		Short: "Run a statement template in a transaction and print the affected row count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, params, err := a.interpolate(args[0], vars)
			if err != nil {
				return err
			}
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			var res sql.Result
			err = withTx(cmd.Context(), a.logger, db, func(tx *sql.Tx) error {
				var err error
				res, err = tx.ExecContext(cmd.Context(), query, params...)
				return err
			})
			if err != nil {
				return err
			}

			rs, err := sqlitpl.NewRowStream(sqlitpl.NewSQLCursor(nil, res))
			if err != nil {
				return err
			}
			defer rs.Close()
			fmt.Fprintln(cmd.OutOrStdout(), rs.Len())
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&vars, "var", nil, "variable as name=value, may be repeated")
	return cmd
}

// withTx runs fn in a transaction. The transaction is committed if fn
// succeeds and rolled back otherwise.
func withTx(ctx context.Context, logger *slog.Logger, db *sql.DB, fn func(*sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			logger.Debug("rollback", "err", err)
			if rerr := tx.Rollback(); rerr != nil {
				err = fmt.Errorf("%w (rollback failed: %v)", err, rerr)
			}
			return
		}
		logger.Debug("commit")
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("commit transaction: %w", cerr)
		}
	}()
	return fn(tx)
}
