// Copyright 2024 Canonical Ltd.
// Licensed under Apache 2.0, see LICENCE file for details.

package main

import (
	"github.com/spf13/cobra"

	"github.com/canonical/sqlitpl"
)

func newQueryCmd(a *app) *cobra.Command {
	var (
		vars   []string
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "query TEMPLATE",
		Short: "Run a query template and print the resulting records",
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

			rows, err := db.QueryContext(cmd.Context(), query, params...)
			if err != nil {
				return err
			}
			w := newRecordWriter(cmd.OutOrStdout(), asJSON)
			return sqlitpl.Use(sqlitpl.NewSQLCursor(rows, nil), func(rs *sqlitpl.RowStream) error {
				n := 0
				for rs.HasMore() {
					if limit > 0 && n == limit {
						a.logger.Debug("stopping at limit", "limit", limit)
						break
					}
					r, err := rs.Next()
					if err != nil {
						return err
					}
					if err := w.write(r); err != nil {
						return err
					}
					n++
				}
				if err := rs.Err(); err != nil {
					return err
				}
				a.logger.Debug("query done", "records", n)
				return nil
			})
		},
	}
	cmd.Flags().StringArrayVar(&vars, "var", nil, "variable as name=value, may be repeated")
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many records (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output records as JSON lines")
	return cmd
}
