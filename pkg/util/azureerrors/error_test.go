package azureerrors

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
)

func TestIsNotFoundError(t *testing.T) {
	for _, tt := range []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "404 detailed error",
			err: autorest.DetailedError{
				StatusCode: http.StatusNotFound,
			},
			want: true,
		},
		{
			name: "resource group not found service error",
			err: autorest.DetailedError{
				StatusCode: http.StatusConflict,
				Original: &azure.RequestError{
					ServiceError: &azure.ServiceError{
						Code: "ResourceGroupNotFound",
					},
				},
			},
			want: true,
		},
		{
			name: "other detailed error",
			err: autorest.DetailedError{
				StatusCode: http.StatusForbidden,
			},
		},
		{
			name: "plain error",
			err:  errors.New("network explod"),
		},
		{
			name: "nil",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundError(tt.err); got != tt.want {
				t.Errorf("got %t, want %t", got, tt.want)
			}
		})
	}
}
