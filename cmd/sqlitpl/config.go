// Copyright 2024 Canonical Ltd.
// Licensed under Apache 2.0, see LICENCE file for details.

package main

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/canonical/sqlitpl"
)

const (
	configFileName = "sqlitpl"
	configFileType = "yaml"
	envPrefix      = "SQLITPL"

	cfgKeyDriver = "driver"
	cfgKeyDSN    = "dsn"
	cfgKeyMarker = "marker"

	defaultDriver = "sqlite3"
	defaultMarker = sqlitpl.DefaultMarker
)

// loadConfig reads the configuration with Viper. Values come from flags,
// then SQLITPL_* environment variables, then the config file, then defaults.
// A missing config file is only an error if it was named explicitly.
func loadConfig(configFile string, cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyDriver, defaultDriver)
	v.SetDefault(cfgKeyMarker, string(defaultMarker))

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for _, key := range []string{cfgKeyDriver, cfgKeyDSN, cfgKeyMarker} {
		if f := cmd.Flags().Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", key, err)
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// markerFrom returns the configured marker, which must be a single char.
func markerFrom(v *viper.Viper) (rune, error) {
	s := v.GetString(cfgKeyMarker)
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("marker must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
