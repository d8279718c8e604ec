// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import "github.com/devops-wiz/terraform-provider-pipeline/internal/configuration"

// Centralized attribute names used in provider configuration schema and validation
const (
	attrProject     = "project"
	attrService     = "service"
	attrClient      = "client"
	attrUser        = "user"
	attrKey         = "key"
	attrTimezone    = "timezone"
	attrVerbose     = "verbose"
	attrBrowserless = "browserless"
)

// Environment variables consulted when an attribute is not set in HCL.
const (
	envProject     = "PIPELINE_PROJECT"
	envService     = "PIPELINE_SERVICE"
	envClient      = "PIPELINE_CLIENT"
	envUser        = "PIPELINE_USER"
	envKey         = "PIPELINE_KEY"
	envTimezone    = "PIPELINE_TIMEZONE"
	envVerbose     = "PIPELINE_VERBOSE"
	envBrowserless = "PIPELINE_BROWSERLESS"

	// aliases understood by most Google Cloud tooling
	envProjectAlias = "GOOGLE_CLOUD_PROJECT"
	envServiceAlias = "GOOGLE_APPLICATION_CREDENTIALS"
)

// Centralized provider defaults
const (
	defaultTimezone    = configuration.DefaultTimezone
	defaultVerbose     = false
	defaultBrowserless = false
)
