package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/Azure/VMProvision-RP/pkg/env"
	"github.com/Azure/VMProvision-RP/pkg/util/azureclient/mgmt/compute"
	"github.com/Azure/VMProvision-RP/pkg/util/stringutils"
)

func get(ctx context.Context, log *logrus.Entry) error {
	cfg := viper.New()
	cfg.AutomaticEnv()

	_env, err := env.NewCore(log, cfg)
	if err != nil {
		return err
	}

	err = _env.ValidateVars("RESOURCEGROUP")
	if err != nil {
		return err
	}

	authorizer, err := _env.NewAuthorizer()
	if err != nil {
		return err
	}

	// accepts either a bare VM name or a full ARM resource ID
	vmName := stringutils.LastTokenByte(flag.Arg(1), '/')

	virtualmachines := compute.NewVirtualMachinesClient(_env.Environment(), _env.SubscriptionID(), authorizer)

	vm, err := virtualmachines.Get(ctx, _env.GetEnv("RESOURCEGROUP"), vmName, "")
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(vm, "", "    ")
	if err != nil {
		return err
	}

	fmt.Println(string(b))
	return nil
}
