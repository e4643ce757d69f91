package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strings"

	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/Azure/go-autorest/autorest/azure/auth"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	EnvironmentName  = "AZURE_ENVIRONMENT"
	SubscriptionID   = "AZURE_SUBSCRIPTION_ID"
	SubscriptionName = "AZURE_SUBSCRIPTION_NAME"
	TenantID         = "AZURE_TENANT_ID"
	Location         = "LOCATION"
)

// Core collects the configuration and identity context every provisioning
// entrypoint needs: the active subscription, its display name, the target
// location and an ARM authorizer.
type Core interface {
	IsLocalDevelopmentMode() bool

	SubscriptionID() string
	SubscriptionName() string
	TenantID() string
	Location() string
	Environment() *azure.Environment
	NewAuthorizer() (autorest.Authorizer, error)

	GetEnv(string) string
	ValidateVars(...string) error

	Logger() *logrus.Entry
}

type core struct {
	cfg *viper.Viper

	isLocalDevelopmentMode bool

	environment *azure.Environment
	log         *logrus.Entry
}

func (c *core) IsLocalDevelopmentMode() bool {
	return c.isLocalDevelopmentMode
}

func (c *core) SubscriptionID() string {
	return c.cfg.GetString(SubscriptionID)
}

func (c *core) SubscriptionName() string {
	return c.cfg.GetString(SubscriptionName)
}

func (c *core) TenantID() string {
	return c.cfg.GetString(TenantID)
}

func (c *core) Location() string {
	return c.cfg.GetString(Location)
}

func (c *core) Environment() *azure.Environment {
	return c.environment
}

func (c *core) NewAuthorizer() (autorest.Authorizer, error) {
	return auth.NewAuthorizerFromEnvironment()
}

func (c *core) GetEnv(name string) string {
	return c.cfg.GetString(name)
}

func (c *core) ValidateVars(vars ...string) error {
	return ValidateVars(c.cfg, vars...)
}

func (c *core) Logger() *logrus.Entry {
	return c.log
}

// NewCore builds a Core from the given config. The environment defaults to the
// public cloud when AZURE_ENVIRONMENT is unset.
func NewCore(log *logrus.Entry, cfg *viper.Viper) (Core, error) {
	err := ValidateVars(cfg, SubscriptionID, TenantID)
	if err != nil {
		return nil, err
	}

	isLocalDevelopmentMode := strings.EqualFold(cfg.GetString("RP_MODE"), "development")
	if isLocalDevelopmentMode {
		log.Info("running in local development mode")
	}

	environment := azure.PublicCloud
	if name := cfg.GetString(EnvironmentName); name != "" {
		environment, err = azure.EnvironmentFromName(name)
		if err != nil {
			return nil, err
		}
	}

	return &core{
		cfg: cfg,

		isLocalDevelopmentMode: isLocalDevelopmentMode,

		environment: &environment,
		log:         log,
	}, nil
}
