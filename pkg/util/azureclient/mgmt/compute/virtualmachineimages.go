package compute

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	mgmtcompute "github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2020-06-01/compute"
	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
)

// VirtualMachineImagesClient is a minimal interface for azure VirtualMachineImagesClient
type VirtualMachineImagesClient interface {
	ListPublishers(ctx context.Context, location string) (result mgmtcompute.ListVirtualMachineImageResource, err error)
}

type virtualMachineImagesClient struct {
	mgmtcompute.VirtualMachineImagesClient
}

var _ VirtualMachineImagesClient = &virtualMachineImagesClient{}

// NewVirtualMachineImagesClient creates a new VirtualMachineImagesClient
func NewVirtualMachineImagesClient(environment *azure.Environment, subscriptionID string, authorizer autorest.Authorizer) VirtualMachineImagesClient {
	client := mgmtcompute.NewVirtualMachineImagesClientWithBaseURI(environment.ResourceManagerEndpoint, subscriptionID)
	client.Authorizer = authorizer

	return &virtualMachineImagesClient{
		VirtualMachineImagesClient: client,
	}
}
