package provision

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"strings"

	mgmtcompute "github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2020-06-01/compute"
	"github.com/coreos/go-semver/semver"

	"github.com/Azure/VMProvision-RP/pkg/util/version"
)

const (
	bginfoPublisher = "Microsoft.Compute"
	bginfoExtension = "BGInfo"

	// used when the published version metadata does not parse
	bginfoDefaultTypeHandlerVersion = "2.1"
)

// selectBGInfoVersion returns the newest published major.minor type handler
// version of the BGInfo extension at the given location, or "" when the
// publisher, the type or any version is absent there. Notices are non-fatal.
func (m *manager) selectBGInfoVersion(ctx context.Context, location string) (string, []string) {
	var notices []string

	publishers, err := m.virtualMachineImages.ListPublishers(ctx, location)
	if err != nil {
		notices = append(notices, fmt.Sprintf("cannot list image publishers in %s: %s", location, err))
		return "", notices
	}
	if !containsName(publishers.Value, bginfoPublisher) {
		return "", notices
	}

	types, err := m.virtualMachineExtensionImages.ListTypes(ctx, location, bginfoPublisher)
	if err != nil {
		notices = append(notices, fmt.Sprintf("cannot list extension types for %s in %s: %s", bginfoPublisher, location, err))
		return "", notices
	}
	if !containsExtensionName(types.Value, bginfoExtension) {
		return "", notices
	}

	versions, err := m.virtualMachineExtensionImages.ListVersions(ctx, location, bginfoPublisher, bginfoExtension, "", nil, "")
	if err != nil {
		notices = append(notices, fmt.Sprintf("cannot list %s extension versions in %s: %s", bginfoExtension, location, err))
		return "", notices
	}
	if versions.Value == nil || len(*versions.Value) == 0 {
		return "", notices
	}

	var max *semver.Version
	for _, v := range *versions.Value {
		if v.Name == nil {
			continue
		}
		sv := version.ParseMinorVersion(*v.Name)
		if sv == nil {
			continue
		}
		if max == nil || max.LessThan(*sv) {
			max = sv
		}
	}

	if max == nil {
		return bginfoDefaultTypeHandlerVersion, notices
	}

	return version.FormatMinorVersion(max), notices
}

func containsName(resources *[]mgmtcompute.VirtualMachineImageResource, name string) bool {
	if resources == nil {
		return false
	}

	for _, resource := range *resources {
		if resource.Name != nil && strings.EqualFold(*resource.Name, name) {
			return true
		}
	}

	return false
}

func containsExtensionName(images *[]mgmtcompute.VirtualMachineExtensionImage, name string) bool {
	if images == nil {
		return false
	}

	for _, image := range *images {
		if image.Name != nil && strings.EqualFold(*image.Name, name) {
			return true
		}
	}

	return false
}
