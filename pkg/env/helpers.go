package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ValidateVars iterates over all the elements of vars and returns an error if
// any of them are unset in the given config.
func ValidateVars(cfg *viper.Viper, vars ...string) error {
	var unset []string

	for _, v := range vars {
		if cfg.GetString(v) == "" {
			unset = append(unset, v)
		}
	}

	if len(unset) > 0 {
		return fmt.Errorf("environment variable %q unset", strings.Join(unset, "\", \""))
	}

	return nil
}
