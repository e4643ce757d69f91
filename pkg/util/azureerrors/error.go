package azureerrors

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"net/http"

	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
)

const (
	CODE_RGNOTFOUND = "ResourceGroupNotFound"
)

// IsNotFoundError returns true if the error is an Azure SDK error carrying a
// 404, or an ARM ResourceGroupNotFound service error.
func IsNotFoundError(err error) bool {
	var detailedErr autorest.DetailedError
	if errors.As(err, &detailedErr) {
		if detailedErr.StatusCode == http.StatusNotFound {
			return true
		}

		if requestErr, ok := detailedErr.Original.(*azure.RequestError); ok &&
			requestErr.ServiceError != nil &&
			requestErr.ServiceError.Code == CODE_RGNOTFOUND {
			return true
		}
	}

	return false
}
