// Copyright 2024 Canonical Ltd.
// Licensed under Apache 2.0, see LICENCE file for details.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "v0.1.0-dev"

// app holds the state shared by all subcommands.
type app struct {
	configFile string
	verbose    bool

	// cfg is loaded by PersistentPreRunE.
	cfg    *viper.Viper
	logger *slog.Logger
}

// newRootCmd creates the top-level "sqlitpl" command with global flags and
// all subcommands registered.
func newRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:     "sqlitpl",
		Short:   "Interpolate query templates and stream their results",
		Version: version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			v, err := loadConfig(a.configFile, cmd)
			if err != nil {
				return err
			}
			a.cfg = v
			a.logger.Debug("loaded configuration",
				"file", v.ConfigFileUsed(),
				cfgKeyDriver, v.GetString(cfgKeyDriver),
				cfgKeyMarker, v.GetString(cfgKeyMarker))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: ./sqlitpl.yaml)")
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "log debug information to stderr")
	root.PersistentFlags().String(cfgKeyDriver, defaultDriver, "database driver: sqlite3 or sqlite")
	root.PersistentFlags().String(cfgKeyDSN, "", "database data source name")
	root.PersistentFlags().String(cfgKeyMarker, string(defaultMarker), "interpolation marker character")

	root.AddCommand(newChunksCmd(a))
	root.AddCommand(newQueryCmd(a))
	root.AddCommand(newExecCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "sqlitpl", version)
		},
	}
}
