package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	mgmtcompute "github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2020-06-01/compute"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/Azure/VMProvision-RP/pkg/env"
	"github.com/Azure/VMProvision-RP/pkg/provision"
)

func create(ctx context.Context, log *logrus.Entry) error {
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

	b, err := os.ReadFile(flag.Arg(1))
	if err != nil {
		return err
	}

	var vm mgmtcompute.VirtualMachine
	err = json.Unmarshal(b, &vm)
	if err != nil {
		return err
	}

	authorizer, err := _env.NewAuthorizer()
	if err != nil {
		return err
	}

	m := provision.NewManager(_env, authorizer)

	operation, err := m.CreateVM(ctx, &provision.CreateVMParameters{
		ResourceGroupName:      _env.GetEnv("RESOURCEGROUP"),
		Location:               _env.Location(),
		VirtualMachine:         &vm,
		DisableBGInfoExtension: cfg.GetBool("DISABLE_BGINFO_EXTENSION"),
	})
	if err != nil {
		return err
	}

	log.Printf("%s: %s", operation.Status, operation.ResourceID)
	return nil
}
