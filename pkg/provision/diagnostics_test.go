package provision

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"testing"

	mgmtcompute "github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2020-06-01/compute"
	mgmtstorage "github.com/Azure/azure-sdk-for-go/services/storage/mgmt/2019-04-01/storage"
	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/to"
	"github.com/go-test/deep"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.uber.org/mock/gomock"

	"github.com/Azure/VMProvision-RP/pkg/env"
	mock_storage "github.com/Azure/VMProvision-RP/pkg/util/mocks/azureclient/mgmt/storage"
)

const (
	testResourceGroup = "resourceGroup"
	testLocation      = "eastus"
)

func testEnv(t *testing.T) env.Core {
	cfg := viper.New()
	cfg.Set(env.SubscriptionID, "00000000-0000-0000-0000-000000000000")
	cfg.Set(env.SubscriptionName, "Visual Studio Enterprise")
	cfg.Set(env.TenantID, "11111111-1111-1111-1111-111111111111")
	cfg.Set(env.Location, testLocation)

	_env, err := env.NewCore(logrus.NewEntry(logrus.StandardLogger()), cfg)
	if err != nil {
		t.Fatal(err)
	}
	return _env
}

func testAccount(name, blobEndpoint string, tier mgmtstorage.SkuTier) mgmtstorage.Account {
	return mgmtstorage.Account{
		Name: to.StringPtr(name),
		Sku: &mgmtstorage.Sku{
			Tier: tier,
		},
		AccountProperties: &mgmtstorage.AccountProperties{
			PrimaryEndpoints: &mgmtstorage.Endpoints{
				Blob: to.StringPtr(blobEndpoint),
			},
		},
	}
}

func vmWithVhd(uri string) *mgmtcompute.VirtualMachine {
	return &mgmtcompute.VirtualMachine{
		Name:     to.StringPtr("vm1"),
		Location: to.StringPtr(testLocation),
		VirtualMachineProperties: &mgmtcompute.VirtualMachineProperties{
			StorageProfile: &mgmtcompute.StorageProfile{
				OsDisk: &mgmtcompute.OSDisk{
					Vhd: &mgmtcompute.VirtualHardDisk{
						URI: to.StringPtr(uri),
					},
				},
			},
		},
	}
}

func vmWithoutVhd() *mgmtcompute.VirtualMachine {
	return &mgmtcompute.VirtualMachine{
		Name:                     to.StringPtr("vm1"),
		Location:                 to.StringPtr(testLocation),
		VirtualMachineProperties: &mgmtcompute.VirtualMachineProperties{},
	}
}

func TestResolveDiagnosticsStorage(t *testing.T) {
	ctx := context.Background()

	notFound := autorest.DetailedError{StatusCode: http.StatusNotFound}

	for _, tt := range []struct {
		name          string
		vm            *mgmtcompute.VirtualMachine
		mocks         func(accounts *mock_storage.MockAccountsClient)
		wantEndpoint  string
		wantNotices   []string
		wantErrString string
	}{
		{
			name: "OS disk storage account is reused",
			vm:   vmWithVhd("https://osdiskstore.blob.core.windows.net/vhds/vm1.vhd"),
			mocks: func(accounts *mock_storage.MockAccountsClient) {
				accounts.EXPECT().GetProperties(gomock.Any(), testResourceGroup, "osdiskstore", mgmtstorage.AccountExpand("")).
					Return(testAccount("osdiskstore", "https://osdiskstore.blob.core.windows.net/", mgmtstorage.Standard), nil)
			},
			wantEndpoint: "https://osdiskstore.blob.core.windows.net/",
		},
		{
			name: "premium OS disk account falls through to the resource group",
			vm:   vmWithVhd("https://premiumstore.blob.core.windows.net/vhds/vm1.vhd"),
			mocks: func(accounts *mock_storage.MockAccountsClient) {
				accounts.EXPECT().GetProperties(gomock.Any(), testResourceGroup, "premiumstore", mgmtstorage.AccountExpand("")).
					Return(testAccount("premiumstore", "https://premiumstore.blob.core.windows.net/", mgmtstorage.Premium), nil)
				accounts.EXPECT().ListByResourceGroup(gomock.Any(), testResourceGroup).
					Return(mgmtstorage.AccountListResult{
						Value: &[]mgmtstorage.Account{
							testAccount("existing", "https://existing.blob.core.windows.net/", mgmtstorage.Standard),
						},
					}, nil)
			},
			wantEndpoint: "https://existing.blob.core.windows.net/",
			wantNotices: []string{
				"reusing storage account existing for boot diagnostics",
			},
		},
		{
			name: "missing OS disk account is a warning, not an error",
			vm:   vmWithVhd("https://ghoststore.blob.core.windows.net/vhds/vm1.vhd"),
			mocks: func(accounts *mock_storage.MockAccountsClient) {
				accounts.EXPECT().GetProperties(gomock.Any(), testResourceGroup, "ghoststore", mgmtstorage.AccountExpand("")).
					Return(mgmtstorage.Account{}, notFound)
				accounts.EXPECT().ListByResourceGroup(gomock.Any(), testResourceGroup).
					Return(mgmtstorage.AccountListResult{
						Value: &[]mgmtstorage.Account{
							testAccount("existing", "https://existing.blob.core.windows.net/", mgmtstorage.Standard),
						},
					}, nil)
			},
			wantEndpoint: "https://existing.blob.core.windows.net/",
			wantNotices: []string{
				"storage account ghoststore referenced by the OS disk was not found",
				"reusing storage account existing for boot diagnostics",
			},
		},
		{
			name: "OS disk account fetch failure degrades with the error text",
			vm:   vmWithVhd("https://brokenstore.blob.core.windows.net/vhds/vm1.vhd"),
			mocks: func(accounts *mock_storage.MockAccountsClient) {
				accounts.EXPECT().GetProperties(gomock.Any(), testResourceGroup, "brokenstore", mgmtstorage.AccountExpand("")).
					Return(mgmtstorage.Account{}, errors.New("network explod"))
				accounts.EXPECT().ListByResourceGroup(gomock.Any(), testResourceGroup).
					Return(mgmtstorage.AccountListResult{
						Value: &[]mgmtstorage.Account{
							testAccount("existing", "https://existing.blob.core.windows.net/", mgmtstorage.Standard),
						},
					}, nil)
			},
			wantEndpoint: "https://existing.blob.core.windows.net/",
			wantNotices: []string{
				"cannot fetch storage account brokenstore: network explod",
				"reusing storage account existing for boot diagnostics",
			},
		},
		{
			name: "malformed VHD URI is a warning, not an error",
			vm:   vmWithVhd("://not-a-uri"),
			mocks: func(accounts *mock_storage.MockAccountsClient) {
				accounts.EXPECT().ListByResourceGroup(gomock.Any(), testResourceGroup).
					Return(mgmtstorage.AccountListResult{
						Value: &[]mgmtstorage.Account{
							testAccount("existing", "https://existing.blob.core.windows.net/", mgmtstorage.Standard),
						},
					}, nil)
			},
			wantEndpoint: "https://existing.blob.core.windows.net/",
			wantNotices: []string{
				`cannot parse the OS disk VHD URI "://not-a-uri": parse "://not-a-uri": missing protocol scheme`,
				"reusing storage account existing for boot diagnostics",
			},
		},
		{
			name: "premium and unknown-tier accounts are skipped",
			vm:   vmWithoutVhd(),
			mocks: func(accounts *mock_storage.MockAccountsClient) {
				unknown := testAccount("unknowntier", "https://unknowntier.blob.core.windows.net/", mgmtstorage.Standard)
				unknown.Sku = nil

				accounts.EXPECT().ListByResourceGroup(gomock.Any(), testResourceGroup).
					Return(mgmtstorage.AccountListResult{
						Value: &[]mgmtstorage.Account{
							testAccount("premiumstore", "https://premiumstore.blob.core.windows.net/", mgmtstorage.Premium),
							unknown,
							testAccount("standardstore", "https://standardstore.blob.core.windows.net/", mgmtstorage.Standard),
						},
					}, nil)
			},
			wantEndpoint: "https://standardstore.blob.core.windows.net/",
			wantNotices: []string{
				"reusing storage account standardstore for boot diagnostics",
			},
		},
		{
			name: "enumeration failure propagates",
			vm:   vmWithoutVhd(),
			mocks: func(accounts *mock_storage.MockAccountsClient) {
				accounts.EXPECT().ListByResourceGroup(gomock.Any(), testResourceGroup).
					Return(mgmtstorage.AccountListResult{}, errors.New("network explod"))
			},
			wantErrString: "network explod",
		},
		{
			name: "empty resource group creates a standard geo-redundant account",
			vm:   vmWithoutVhd(),
			mocks: func(accounts *mock_storage.MockAccountsClient) {
				accounts.EXPECT().ListByResourceGroup(gomock.Any(), testResourceGroup).
					Return(mgmtstorage.AccountListResult{}, nil)
				accounts.EXPECT().CheckNameAvailability(gomock.Any(), gomock.Any()).
					Return(mgmtstorage.CheckNameAvailabilityResult{NameAvailable: to.BoolPtr(true)}, nil)
				accounts.EXPECT().CreateAndWait(gomock.Any(), testResourceGroup, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _, accountName string, parameters mgmtstorage.AccountCreateParameters) error {
						if parameters.Sku == nil || parameters.Sku.Name != mgmtstorage.StandardGRS {
							return fmt.Errorf("unexpected sku %v", parameters.Sku)
						}
						if parameters.Kind != mgmtstorage.StorageV2 {
							return fmt.Errorf("unexpected kind %s", parameters.Kind)
						}
						if to.String(parameters.Location) != testLocation {
							return fmt.Errorf("unexpected location %s", to.String(parameters.Location))
						}
						if !regexp.MustCompile(`^[a-z0-9]{1,25}$`).MatchString(accountName) {
							return fmt.Errorf("unexpected account name %q", accountName)
						}
						return nil
					})
				accounts.EXPECT().GetProperties(gomock.Any(), testResourceGroup, gomock.Any(), mgmtstorage.AccountExpand("")).
					Return(testAccount("newaccount", "https://newaccount.blob.core.windows.net/", mgmtstorage.Standard), nil)
			},
			wantEndpoint: "https://newaccount.blob.core.windows.net/",
			wantNotices: []string{
				"created storage account .* for boot diagnostics",
			},
		},
		{
			name: "name collisions retry with an incremented counter",
			vm:   vmWithoutVhd(),
			mocks: func(accounts *mock_storage.MockAccountsClient) {
				accounts.EXPECT().ListByResourceGroup(gomock.Any(), testResourceGroup).
					Return(mgmtstorage.AccountListResult{}, nil)
				gomock.InOrder(
					accounts.EXPECT().CheckNameAvailability(gomock.Any(), gomock.Any()).
						Return(mgmtstorage.CheckNameAvailabilityResult{NameAvailable: to.BoolPtr(false)}, nil),
					accounts.EXPECT().CheckNameAvailability(gomock.Any(), gomock.Any()).
						Return(mgmtstorage.CheckNameAvailabilityResult{NameAvailable: to.BoolPtr(false)}, nil),
					accounts.EXPECT().CheckNameAvailability(gomock.Any(), gomock.Any()).
						Return(mgmtstorage.CheckNameAvailabilityResult{NameAvailable: to.BoolPtr(true)}, nil),
				)
				accounts.EXPECT().CreateAndWait(gomock.Any(), testResourceGroup, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _, accountName string, _ mgmtstorage.AccountCreateParameters) error {
						if !strings.HasSuffix(accountName, "2") {
							return fmt.Errorf("expected the third candidate, got %q", accountName)
						}
						return nil
					})
				accounts.EXPECT().GetProperties(gomock.Any(), testResourceGroup, gomock.Any(), mgmtstorage.AccountExpand("")).
					Return(testAccount("newaccount", "https://newaccount.blob.core.windows.net/", mgmtstorage.Standard), nil)
			},
			wantEndpoint: "https://newaccount.blob.core.windows.net/",
			wantNotices: []string{
				"created storage account .* for boot diagnostics",
			},
		},
		{
			name: "the tenth candidate is used without an availability check",
			vm:   vmWithoutVhd(),
			mocks: func(accounts *mock_storage.MockAccountsClient) {
				accounts.EXPECT().ListByResourceGroup(gomock.Any(), testResourceGroup).
					Return(mgmtstorage.AccountListResult{}, nil)
				accounts.EXPECT().CheckNameAvailability(gomock.Any(), gomock.Any()).
					Return(mgmtstorage.CheckNameAvailabilityResult{NameAvailable: to.BoolPtr(false)}, nil).
					Times(9)
				accounts.EXPECT().CreateAndWait(gomock.Any(), testResourceGroup, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _, accountName string, _ mgmtstorage.AccountCreateParameters) error {
						if !strings.HasSuffix(accountName, "9") {
							return fmt.Errorf("expected the tenth candidate, got %q", accountName)
						}
						return nil
					})
				accounts.EXPECT().GetProperties(gomock.Any(), testResourceGroup, gomock.Any(), mgmtstorage.AccountExpand("")).
					Return(testAccount("newaccount", "https://newaccount.blob.core.windows.net/", mgmtstorage.Standard), nil)
			},
			wantEndpoint: "https://newaccount.blob.core.windows.net/",
			wantNotices: []string{
				"created storage account .* for boot diagnostics",
			},
		},
		{
			name: "availability check failure disables diagnostics",
			vm:   vmWithoutVhd(),
			mocks: func(accounts *mock_storage.MockAccountsClient) {
				accounts.EXPECT().ListByResourceGroup(gomock.Any(), testResourceGroup).
					Return(mgmtstorage.AccountListResult{}, nil)
				accounts.EXPECT().CheckNameAvailability(gomock.Any(), gomock.Any()).
					Return(mgmtstorage.CheckNameAvailabilityResult{}, errors.New("network explod"))
			},
			wantNotices: []string{
				"cannot check availability of storage account name .*: network explod",
			},
		},
		{
			name: "creation failure disables diagnostics",
			vm:   vmWithoutVhd(),
			mocks: func(accounts *mock_storage.MockAccountsClient) {
				accounts.EXPECT().ListByResourceGroup(gomock.Any(), testResourceGroup).
					Return(mgmtstorage.AccountListResult{}, nil)
				accounts.EXPECT().CheckNameAvailability(gomock.Any(), gomock.Any()).
					Return(mgmtstorage.CheckNameAvailabilityResult{NameAvailable: to.BoolPtr(true)}, nil)
				accounts.EXPECT().CreateAndWait(gomock.Any(), testResourceGroup, gomock.Any(), gomock.Any()).
					Return(errors.New("quota exceeded"))
			},
			wantNotices: []string{
				"cannot create storage account .* for boot diagnostics: quota exceeded",
			},
		},
		{
			name: "post-creation fetch failure disables diagnostics",
			vm:   vmWithoutVhd(),
			mocks: func(accounts *mock_storage.MockAccountsClient) {
				accounts.EXPECT().ListByResourceGroup(gomock.Any(), testResourceGroup).
					Return(mgmtstorage.AccountListResult{}, nil)
				accounts.EXPECT().CheckNameAvailability(gomock.Any(), gomock.Any()).
					Return(mgmtstorage.CheckNameAvailabilityResult{NameAvailable: to.BoolPtr(true)}, nil)
				accounts.EXPECT().CreateAndWait(gomock.Any(), testResourceGroup, gomock.Any(), gomock.Any()).
					Return(nil)
				accounts.EXPECT().GetProperties(gomock.Any(), testResourceGroup, gomock.Any(), mgmtstorage.AccountExpand("")).
					Return(mgmtstorage.Account{}, errors.New("network explod"))
			},
			wantNotices: []string{
				"cannot fetch storage account .*: network explod",
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			controller := gomock.NewController(t)
			defer controller.Finish()

			accounts := mock_storage.NewMockAccountsClient(controller)
			if tt.mocks != nil {
				tt.mocks(accounts)
			}

			m := &manager{
				log:             logrus.NewEntry(logrus.StandardLogger()),
				env:             testEnv(t),
				storageAccounts: accounts,
			}

			endpoint, notices, err := m.resolveDiagnosticsStorage(ctx, testResourceGroup, testLocation, tt.vm)
			if tt.wantErrString != "" {
				if err == nil || err.Error() != tt.wantErrString {
					t.Fatalf("got error %v, want %q", err, tt.wantErrString)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			if endpoint != tt.wantEndpoint {
				t.Errorf("got endpoint %q, want %q", endpoint, tt.wantEndpoint)
			}

			if len(notices) != len(tt.wantNotices) {
				t.Fatalf("got notices %v, want %v", notices, tt.wantNotices)
			}
			for i, want := range tt.wantNotices {
				if !regexp.MustCompile("^" + want + "$").MatchString(notices[i]) {
					t.Errorf("notice #%d: got %q, want match for %q", i, notices[i], want)
				}
			}
		})
	}
}

func TestResolveDiagnosticsStorageIsIdempotent(t *testing.T) {
	ctx := context.Background()

	controller := gomock.NewController(t)
	defer controller.Finish()

	accounts := mock_storage.NewMockAccountsClient(controller)
	accounts.EXPECT().GetProperties(gomock.Any(), testResourceGroup, "osdiskstore", mgmtstorage.AccountExpand("")).
		Return(testAccount("osdiskstore", "https://osdiskstore.blob.core.windows.net/", mgmtstorage.Standard), nil).
		Times(2)

	m := &manager{
		log:             logrus.NewEntry(logrus.StandardLogger()),
		env:             testEnv(t),
		storageAccounts: accounts,
	}

	vm := vmWithVhd("https://osdiskstore.blob.core.windows.net/vhds/vm1.vhd")

	for i := 0; i < 2; i++ {
		endpoint, notices, err := m.resolveDiagnosticsStorage(ctx, testResourceGroup, testLocation, vm)
		if err != nil {
			t.Fatal(err)
		}
		if endpoint != "https://osdiskstore.blob.core.windows.net/" {
			t.Errorf("got endpoint %q", endpoint)
		}
		if len(notices) != 0 {
			t.Errorf("got notices %v", notices)
		}
	}
}

func TestGenerateStorageAccountName(t *testing.T) {
	name := generateStorageAccountName("Visual Studio Enterprise", "my-RG_1", "vm.1", 3)

	if diff := deep.Equal(name[:9], "visuamyrg"); diff != nil {
		t.Error(diff)
	}
	if !strings.HasSuffix(name, "3") {
		t.Errorf("expected attempt suffix, got %q", name)
	}
	if !regexp.MustCompile(`^[a-z0-9]{1,25}$`).MatchString(name) {
		t.Errorf("name %q is not lowercase alphanumeric within limits", name)
	}
}
