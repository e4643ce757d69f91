package version

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"

	"github.com/coreos/go-semver/semver"
)

// ParseMinorVersion parses a string representing a semantic version number
// which may be missing the patch version from the end (ex.: "2.1"), appending
// a ".0" when needed. It returns nil if the string does not parse either way.
// Extension image version entries in ARM come in both forms.
func ParseMinorVersion(v string) *semver.Version {
	sv, err := semver.NewVersion(v)
	if err == nil {
		return sv
	}

	sv, err = semver.NewVersion(v + ".0")
	if err == nil {
		return sv
	}

	return nil
}

// FormatMinorVersion renders v as "major.minor".
func FormatMinorVersion(v *semver.Version) string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
