package compute

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate go run go.uber.org/mock/mockgen -destination=../../../mocks/azureclient/mgmt/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/VMProvision-RP/pkg/util/azureclient/mgmt/$GOPACKAGE VirtualMachinesClient,VirtualMachineExtensionsClient,VirtualMachineImagesClient,VirtualMachineExtensionImagesClient
//go:generate go run golang.org/x/tools/cmd/goimports -local=github.com/Azure/VMProvision-RP -e -w ../../../mocks/azureclient/mgmt/$GOPACKAGE/$GOPACKAGE.go

import (
	"context"

	mgmtcompute "github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2020-06-01/compute"
	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
)

// VirtualMachinesClient is a minimal interface for azure VirtualMachinesClient
type VirtualMachinesClient interface {
	Get(ctx context.Context, resourceGroupName string, VMName string, expand mgmtcompute.InstanceViewTypes) (result mgmtcompute.VirtualMachine, err error)
	VirtualMachinesClientAddons
}

type virtualMachinesClient struct {
	mgmtcompute.VirtualMachinesClient
}

var _ VirtualMachinesClient = &virtualMachinesClient{}

// NewVirtualMachinesClient creates a new VirtualMachinesClient
func NewVirtualMachinesClient(environment *azure.Environment, subscriptionID string, authorizer autorest.Authorizer) VirtualMachinesClient {
	client := mgmtcompute.NewVirtualMachinesClientWithBaseURI(environment.ResourceManagerEndpoint, subscriptionID)
	client.Authorizer = authorizer

	return &virtualMachinesClient{
		VirtualMachinesClient: client,
	}
}
