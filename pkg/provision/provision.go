package provision

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"
	"strings"

	mgmtcompute "github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2020-06-01/compute"
	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/to"
	"github.com/sirupsen/logrus"

	"github.com/Azure/VMProvision-RP/pkg/api"
	"github.com/Azure/VMProvision-RP/pkg/env"
	"github.com/Azure/VMProvision-RP/pkg/util/azureclient/mgmt/compute"
	"github.com/Azure/VMProvision-RP/pkg/util/azureclient/mgmt/storage"
)

// Manager creates virtual machines, resolving a boot diagnostics storage
// account and installing the BGInfo extension where applicable.
type Manager interface {
	CreateVM(ctx context.Context, params *CreateVMParameters) (*api.Operation, error)
}

// CreateVMParameters carries a single VM creation request. It is read-only to
// the manager: the caller's VirtualMachine is copied, never mutated.
type CreateVMParameters struct {
	ResourceGroupName string

	// Location to create the VM in; falls back to the VM's own declared
	// location when empty.
	Location string

	VirtualMachine *mgmtcompute.VirtualMachine

	// Tags replaces the VM's own tags when non-nil.
	Tags map[string]*string

	DisableBGInfoExtension bool
}

type manager struct {
	log *logrus.Entry
	env env.Core

	virtualMachines               compute.VirtualMachinesClient
	virtualMachineExtensions      compute.VirtualMachineExtensionsClient
	virtualMachineImages          compute.VirtualMachineImagesClient
	virtualMachineExtensionImages compute.VirtualMachineExtensionImagesClient
	storageAccounts               storage.AccountsClient
}

// NewManager instantiates a new Manager
func NewManager(_env env.Core, authorizer autorest.Authorizer) Manager {
	environment := _env.Environment()
	subscriptionID := _env.SubscriptionID()

	return &manager{
		log: _env.Logger(),
		env: _env,

		virtualMachines:               compute.NewVirtualMachinesClient(environment, subscriptionID, authorizer),
		virtualMachineExtensions:      compute.NewVirtualMachineExtensionsClient(environment, subscriptionID, authorizer),
		virtualMachineImages:          compute.NewVirtualMachineImagesClient(environment, subscriptionID, authorizer),
		virtualMachineExtensionImages: compute.NewVirtualMachineExtensionImagesClient(environment, subscriptionID, authorizer),
		storageAccounts:               storage.NewAccountsClient(environment, subscriptionID, authorizer),
	}
}

// CreateVM submits the creation request and waits for the service to
// materialise the VM. Boot diagnostics and extension failures degrade with
// warnings; the creation call itself is fatal.
func (m *manager) CreateVM(ctx context.Context, params *CreateVMParameters) (*api.Operation, error) {
	err := validateCreateVMParameters(params)
	if err != nil {
		return nil, err
	}

	vm := params.VirtualMachine

	location := params.Location
	if location == "" {
		location = to.String(vm.Location)
	}

	diagnosticsProfile := vm.DiagnosticsProfile
	if diagnosticsProfile == nil {
		endpoint, notices, err := m.resolveDiagnosticsStorage(ctx, params.ResourceGroupName, location, vm)
		for _, notice := range notices {
			m.log.Warn(notice)
		}
		if err != nil {
			return nil, err
		}

		if endpoint != "" {
			diagnosticsProfile = &mgmtcompute.DiagnosticsProfile{
				BootDiagnostics: &mgmtcompute.BootDiagnostics{
					Enabled:    to.BoolPtr(true),
					StorageURI: to.StringPtr(endpoint),
				},
			}
		}
	}

	tags := vm.Tags
	if params.Tags != nil {
		tags = params.Tags
	}

	parameters := mgmtcompute.VirtualMachine{
		Plan: vm.Plan,
		VirtualMachineProperties: &mgmtcompute.VirtualMachineProperties{
			HardwareProfile:    vm.HardwareProfile,
			StorageProfile:     vm.StorageProfile,
			NetworkProfile:     vm.NetworkProfile,
			OsProfile:          vm.OsProfile,
			DiagnosticsProfile: diagnosticsProfile,
			AvailabilitySet:    vm.AvailabilitySet,
		},
		Location: to.StringPtr(location),
		Tags:     tags,
	}

	result, err := m.virtualMachines.CreateOrUpdateAndWait(ctx, params.ResourceGroupName, *vm.Name, parameters)
	if err != nil {
		return nil, err
	}

	operation := &api.Operation{
		Status:     api.OperationStatusSucceeded,
		ResourceID: to.String(result.ID),
	}
	if result.VirtualMachineProperties != nil && result.ProvisioningState != nil {
		operation.Status = api.OperationStatus(*result.ProvisioningState)
	}

	if !params.DisableBGInfoExtension && !isLinuxVM(vm) {
		m.installBGInfoExtension(ctx, params.ResourceGroupName, *vm.Name, location)
	}

	return operation, nil
}

func (m *manager) installBGInfoExtension(ctx context.Context, resourceGroupName, vmName, location string) {
	typeHandlerVersion, notices := m.selectBGInfoVersion(ctx, normalizeLocation(location))
	for _, notice := range notices {
		m.log.Warn(notice)
	}
	if typeHandlerVersion == "" {
		return
	}

	extension := mgmtcompute.VirtualMachineExtension{
		Location: to.StringPtr(location),
		VirtualMachineExtensionProperties: &mgmtcompute.VirtualMachineExtensionProperties{
			Publisher:               to.StringPtr(bginfoPublisher),
			Type:                    to.StringPtr(bginfoExtension),
			TypeHandlerVersion:      to.StringPtr(typeHandlerVersion),
			AutoUpgradeMinorVersion: to.BoolPtr(true),
		},
	}

	_, err := m.virtualMachineExtensions.CreateOrUpdateAndWait(ctx, resourceGroupName, vmName, bginfoExtension, extension)
	if err != nil {
		m.log.Warnf("cannot install the %s extension on VM %s: %s", bginfoExtension, vmName, err)
	}
}

func validateCreateVMParameters(params *CreateVMParameters) error {
	switch {
	case params == nil || params.VirtualMachine == nil:
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, "virtualMachine", "The virtual machine specification must be provided.")
	case params.VirtualMachine.Name == nil || *params.VirtualMachine.Name == "":
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, "virtualMachine.name", "The virtual machine name must be provided.")
	case params.VirtualMachine.VirtualMachineProperties == nil:
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, "virtualMachine.properties", "The virtual machine properties must be provided.")
	case params.ResourceGroupName == "":
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, "resourceGroupName", "The resource group name must be provided.")
	case params.Location == "" && to.String(params.VirtualMachine.Location) == "":
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, "location", "The location must be provided on the request or the virtual machine.")
	}

	return nil
}

// isLinuxVM inspects the OS disk's declared OS type first, then falls back to
// the presence of a Linux OS profile section. Neither signal means "not
// Linux".
func isLinuxVM(vm *mgmtcompute.VirtualMachine) bool {
	if vm.VirtualMachineProperties == nil {
		return false
	}

	if sp := vm.StorageProfile; sp != nil && sp.OsDisk != nil && sp.OsDisk.OsType != "" {
		return sp.OsDisk.OsType == mgmtcompute.Linux
	}

	return vm.OsProfile != nil && vm.OsProfile.LinuxConfiguration != nil
}

func normalizeLocation(location string) string {
	return strings.ToLower(strings.ReplaceAll(location, " ", ""))
}
