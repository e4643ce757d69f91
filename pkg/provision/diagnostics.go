package provision

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	mgmtcompute "github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2020-06-01/compute"
	mgmtstorage "github.com/Azure/azure-sdk-for-go/services/storage/mgmt/2019-04-01/storage"
	"github.com/Azure/go-autorest/autorest/to"

	"github.com/Azure/VMProvision-RP/pkg/util/azureerrors"
	"github.com/Azure/VMProvision-RP/pkg/util/stringutils"
)

const (
	storageAccountResourceType = "Microsoft.Storage/storageAccounts"

	// storage account names are limited to 24 lowercase alphanumerics; the
	// generated candidates stay under that by construction
	subscriptionNameMaxLen  = 5
	resourceGroupNameMaxLen = 6
	vmNameMaxLen            = 4

	storageAccountNameMaxAttempts = 10
)

// resolveDiagnosticsStorage decides which storage account backs boot
// diagnostics for the VM: the account referenced by the OS disk, any existing
// non-premium account in the resource group, or a newly created one. An empty
// endpoint with a nil error means diagnostics is silently disabled. Returned
// notices are non-fatal and are logged by the caller.
func (m *manager) resolveDiagnosticsStorage(ctx context.Context, resourceGroupName, location string, vm *mgmtcompute.VirtualMachine) (string, []string, error) {
	var notices []string

	if uri := osDiskVhdURI(vm); uri != "" {
		accountName, err := accountNameFromBlobURI(uri)
		if err != nil {
			notices = append(notices, fmt.Sprintf("cannot parse the OS disk VHD URI %q: %s", uri, err))
		} else {
			account, err := m.storageAccounts.GetProperties(ctx, resourceGroupName, accountName, "")
			switch {
			case err == nil && !isPremium(account.Sku):
				if endpoint := blobEndpoint(account); endpoint != "" {
					return endpoint, notices, nil
				}
			case err == nil:
				// premium accounts do not support boot diagnostics blobs
			case azureerrors.IsNotFoundError(err):
				notices = append(notices, fmt.Sprintf("storage account %s referenced by the OS disk was not found", accountName))
			default:
				notices = append(notices, fmt.Sprintf("cannot fetch storage account %s: %s", accountName, err))
			}
		}
	}

	accounts, err := m.storageAccounts.ListByResourceGroup(ctx, resourceGroupName)
	if err != nil && !azureerrors.IsNotFoundError(err) {
		return "", notices, err
	}
	if accounts.Value != nil {
		for _, account := range *accounts.Value {
			if account.Sku == nil || account.Sku.Tier == mgmtstorage.Premium {
				continue
			}
			endpoint := blobEndpoint(account)
			if endpoint == "" {
				continue
			}

			notices = append(notices, fmt.Sprintf("reusing storage account %s for boot diagnostics", to.String(account.Name)))
			return endpoint, notices, nil
		}
	}

	return m.createDiagnosticsStorageAccount(ctx, resourceGroupName, location, to.String(vm.Name), notices)
}

func (m *manager) createDiagnosticsStorageAccount(ctx context.Context, resourceGroupName, location, vmName string, notices []string) (string, []string, error) {
	var accountName string
	for i := 0; i < storageAccountNameMaxAttempts; i++ {
		candidate := generateStorageAccountName(m.env.SubscriptionName(), resourceGroupName, vmName, i)

		if i == storageAccountNameMaxAttempts-1 {
			// best effort: the final candidate is used without checking; a
			// real collision surfaces on the create call below
			accountName = candidate
			break
		}

		result, err := m.storageAccounts.CheckNameAvailability(ctx, mgmtstorage.AccountCheckNameAvailabilityParameters{
			Name: to.StringPtr(candidate),
			Type: to.StringPtr(storageAccountResourceType),
		})
		if err != nil {
			notices = append(notices, fmt.Sprintf("cannot check availability of storage account name %s: %s", candidate, err))
			return "", notices, nil
		}

		if result.NameAvailable != nil && *result.NameAvailable {
			accountName = candidate
			break
		}
	}

	err := m.storageAccounts.CreateAndWait(ctx, resourceGroupName, accountName, mgmtstorage.AccountCreateParameters{
		Sku: &mgmtstorage.Sku{
			Name: mgmtstorage.StandardGRS,
		},
		Kind:     mgmtstorage.StorageV2,
		Location: to.StringPtr(location),
	})
	if err != nil {
		notices = append(notices, fmt.Sprintf("cannot create storage account %s for boot diagnostics: %s", accountName, err))
		return "", notices, nil
	}

	account, err := m.storageAccounts.GetProperties(ctx, resourceGroupName, accountName, "")
	if err != nil {
		notices = append(notices, fmt.Sprintf("cannot fetch storage account %s: %s", accountName, err))
		return "", notices, nil
	}

	notices = append(notices, fmt.Sprintf("created storage account %s for boot diagnostics", accountName))
	return blobEndpoint(account), notices, nil
}

// generateStorageAccountName derives a likely-unique account name from
// truncated subscription, resource group and VM names plus a month-day-hour-
// minute timestamp and the attempt counter, keeping only lowercase
// alphanumerics.
func generateStorageAccountName(subscriptionName, resourceGroupName, vmName string, attempt int) string {
	name := truncate(subscriptionName, subscriptionNameMaxLen) +
		truncate(resourceGroupName, resourceGroupNameMaxLen) +
		truncate(vmName, vmNameMaxLen) +
		time.Now().Format("01021504") +
		strconv.Itoa(attempt)

	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return -1
	}, name)

	return name
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func osDiskVhdURI(vm *mgmtcompute.VirtualMachine) string {
	if vm.VirtualMachineProperties == nil ||
		vm.StorageProfile == nil ||
		vm.StorageProfile.OsDisk == nil ||
		vm.StorageProfile.OsDisk.Vhd == nil {
		return ""
	}

	return to.String(vm.StorageProfile.OsDisk.Vhd.URI)
}

func accountNameFromBlobURI(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("URI %q has no host", uri)
	}

	return stringutils.FirstTokenByte(u.Host, '.'), nil
}

func isPremium(sku *mgmtstorage.Sku) bool {
	return sku != nil && sku.Tier == mgmtstorage.Premium
}

func blobEndpoint(account mgmtstorage.Account) string {
	if account.AccountProperties == nil ||
		account.AccountProperties.PrimaryEndpoints == nil {
		return ""
	}

	return to.String(account.AccountProperties.PrimaryEndpoints.Blob)
}
