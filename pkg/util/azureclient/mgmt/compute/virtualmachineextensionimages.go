package compute

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	mgmtcompute "github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2020-06-01/compute"
	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
)

// VirtualMachineExtensionImagesClient is a minimal interface for azure VirtualMachineExtensionImagesClient
type VirtualMachineExtensionImagesClient interface {
	ListTypes(ctx context.Context, location string, publisherName string) (result mgmtcompute.ListVirtualMachineExtensionImage, err error)
	ListVersions(ctx context.Context, location string, publisherName string, typeParameter string, filter string, top *int32, orderby string) (result mgmtcompute.ListVirtualMachineExtensionImage, err error)
}

type virtualMachineExtensionImagesClient struct {
	mgmtcompute.VirtualMachineExtensionImagesClient
}

var _ VirtualMachineExtensionImagesClient = &virtualMachineExtensionImagesClient{}

// NewVirtualMachineExtensionImagesClient creates a new VirtualMachineExtensionImagesClient
func NewVirtualMachineExtensionImagesClient(environment *azure.Environment, subscriptionID string, authorizer autorest.Authorizer) VirtualMachineExtensionImagesClient {
	client := mgmtcompute.NewVirtualMachineExtensionImagesClientWithBaseURI(environment.ResourceManagerEndpoint, subscriptionID)
	client.Authorizer = authorizer

	return &virtualMachineExtensionImagesClient{
		VirtualMachineExtensionImagesClient: client,
	}
}
