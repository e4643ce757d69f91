package compute

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	mgmtcompute "github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2020-06-01/compute"
)

// VirtualMachinesClientAddons contains addons for VirtualMachinesClient
type VirtualMachinesClientAddons interface {
	CreateOrUpdateAndWait(ctx context.Context, resourceGroupName string, VMName string, parameters mgmtcompute.VirtualMachine) (mgmtcompute.VirtualMachine, error)
}

func (c *virtualMachinesClient) CreateOrUpdateAndWait(ctx context.Context, resourceGroupName string, VMName string, parameters mgmtcompute.VirtualMachine) (mgmtcompute.VirtualMachine, error) {
	future, err := c.CreateOrUpdate(ctx, resourceGroupName, VMName, parameters)
	if err != nil {
		return mgmtcompute.VirtualMachine{}, err
	}

	err = future.WaitForCompletionRef(ctx, c.Client)
	if err != nil {
		return mgmtcompute.VirtualMachine{}, err
	}

	return future.Result(c.VirtualMachinesClient)
}
