package version

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"
)

func TestParseMinorVersion(t *testing.T) {
	for _, tt := range []struct {
		v    string
		want string
	}{
		{v: "2.1", want: "2.1"},
		{v: "1.0", want: "1.0"},
		{v: "2.3.17", want: "2.3"},
		{v: "bogus"},
		{v: ""},
		{v: "1"},
	} {
		t.Run(tt.v, func(t *testing.T) {
			sv := ParseMinorVersion(tt.v)
			if tt.want == "" {
				if sv != nil {
					t.Fatalf("expected nil, got %s", sv)
				}
				return
			}
			if sv == nil {
				t.Fatal("expected a version, got nil")
			}
			if got := FormatMinorVersion(sv); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}
