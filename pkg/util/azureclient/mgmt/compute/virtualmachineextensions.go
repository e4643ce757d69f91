package compute

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	mgmtcompute "github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2020-06-01/compute"
	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
)

// VirtualMachineExtensionsClient is a minimal interface for azure VirtualMachineExtensionsClient
type VirtualMachineExtensionsClient interface {
	VirtualMachineExtensionsClientAddons
}

type virtualMachineExtensionsClient struct {
	mgmtcompute.VirtualMachineExtensionsClient
}

var _ VirtualMachineExtensionsClient = &virtualMachineExtensionsClient{}

// NewVirtualMachineExtensionsClient creates a new VirtualMachineExtensionsClient
func NewVirtualMachineExtensionsClient(environment *azure.Environment, subscriptionID string, authorizer autorest.Authorizer) VirtualMachineExtensionsClient {
	client := mgmtcompute.NewVirtualMachineExtensionsClientWithBaseURI(environment.ResourceManagerEndpoint, subscriptionID)
	client.Authorizer = authorizer

	return &virtualMachineExtensionsClient{
		VirtualMachineExtensionsClient: client,
	}
}
