package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// OperationStatus is the terminal or in-flight state of a long-running ARM
// operation as surfaced to the caller.
type OperationStatus string

const (
	OperationStatusInProgress OperationStatus = "InProgress"
	OperationStatusSucceeded  OperationStatus = "Succeeded"
	OperationStatusFailed     OperationStatus = "Failed"
)

// Operation represents the caller-facing handle of a long-running provisioning
// operation. ResourceID is set once the service has materialised the resource.
type Operation struct {
	Status     OperationStatus `json:"status,omitempty"`
	ResourceID string          `json:"resourceId,omitempty"`
}
