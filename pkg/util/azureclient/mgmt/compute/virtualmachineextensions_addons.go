package compute

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	mgmtcompute "github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2020-06-01/compute"
)

// VirtualMachineExtensionsClientAddons contains addons for VirtualMachineExtensionsClient
type VirtualMachineExtensionsClientAddons interface {
	CreateOrUpdateAndWait(ctx context.Context, resourceGroupName string, VMName string, VMExtensionName string, extensionParameters mgmtcompute.VirtualMachineExtension) (mgmtcompute.VirtualMachineExtension, error)
}

func (c *virtualMachineExtensionsClient) CreateOrUpdateAndWait(ctx context.Context, resourceGroupName string, VMName string, VMExtensionName string, extensionParameters mgmtcompute.VirtualMachineExtension) (mgmtcompute.VirtualMachineExtension, error) {
	future, err := c.CreateOrUpdate(ctx, resourceGroupName, VMName, VMExtensionName, extensionParameters)
	if err != nil {
		return mgmtcompute.VirtualMachineExtension{}, err
	}

	err = future.WaitForCompletionRef(ctx, c.Client)
	if err != nil {
		return mgmtcompute.VirtualMachineExtension{}, err
	}

	return future.Result(c.VirtualMachineExtensionsClient)
}
