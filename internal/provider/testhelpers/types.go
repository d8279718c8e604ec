// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package testhelpers

// ProviderTmplCfg holds the provider block attributes; empty fields are omitted.
type ProviderTmplCfg struct {
	Project     string
	Service     string
	Client      string
	User        string
	Key         string
	Timezone    string
	Verbose     *bool
	Browserless *bool
}

// DataConfigurationCfg renders the provider block followed by data sources.
type DataConfigurationCfg struct {
	ProviderBlock string
	DataName      string
	// FingerprintProjects adds one pipeline_fingerprint data source per entry, keyed by index.
	FingerprintProjects []string
}

// Bool returns a pointer to b for optional template fields.
func Bool(b bool) *bool { return &b }
