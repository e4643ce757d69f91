package storage

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate go run go.uber.org/mock/mockgen -destination=../../../mocks/azureclient/mgmt/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/VMProvision-RP/pkg/util/azureclient/mgmt/$GOPACKAGE AccountsClient
//go:generate go run golang.org/x/tools/cmd/goimports -local=github.com/Azure/VMProvision-RP -e -w ../../../mocks/azureclient/mgmt/$GOPACKAGE/$GOPACKAGE.go

import (
	"context"

	mgmtstorage "github.com/Azure/azure-sdk-for-go/services/storage/mgmt/2019-04-01/storage"
	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
)

// AccountsClient is a minimal interface for azure AccountsClient
type AccountsClient interface {
	GetProperties(ctx context.Context, resourceGroupName string, accountName string, expand mgmtstorage.AccountExpand) (result mgmtstorage.Account, err error)
	ListByResourceGroup(ctx context.Context, resourceGroupName string) (result mgmtstorage.AccountListResult, err error)
	CheckNameAvailability(ctx context.Context, accountName mgmtstorage.AccountCheckNameAvailabilityParameters) (result mgmtstorage.CheckNameAvailabilityResult, err error)
	AccountsClientAddons
}

type accountsClient struct {
	mgmtstorage.AccountsClient
}

var _ AccountsClient = &accountsClient{}

// NewAccountsClient returns a new AccountsClient
func NewAccountsClient(environment *azure.Environment, subscriptionID string, authorizer autorest.Authorizer) AccountsClient {
	client := mgmtstorage.NewAccountsClientWithBaseURI(environment.ResourceManagerEndpoint, subscriptionID)
	client.Authorizer = authorizer

	return &accountsClient{
		AccountsClient: client,
	}
}
