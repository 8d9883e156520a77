// Copyright 2024 Canonical Ltd.
// Licensed under Apache 2.0, see LICENCE file for details.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canonical/sqlitpl"
)

func newChunksCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "chunks TEMPLATE",
		Short: "Print the literal and expression chunks of a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			marker, err := markerFrom(a.cfg)
			if err != nil {
				return err
			}
			chunks, err := sqlitpl.InterpolateMarker(args[0], marker)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				type jsonChunk struct {
					Expression bool   `json:"expression"`
					Text       string `json:"text"`
				}
				js := make([]jsonChunk, 0, len(chunks))
				for _, c := range chunks {
					_, isExpr := c.(sqlitpl.Expression)
					js = append(js, jsonChunk{Expression: isExpr, Text: c.Text()})
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(js)
			}
			for _, c := range chunks {
				kind := "literal"
				if _, ok := c.(sqlitpl.Expression); ok {
					kind = "expr"
				}
				fmt.Fprintf(out, "%s\t%q\n", kind, c.Text())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}
