// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

// validationErr captures a configuration validation error and optional attribute path.
type validationErr struct {
	attr    string // empty for general error
	summary string
	detail  string
}

// resolvedConfig contains normalized provider configuration used to build the
// pipeline configuration context.
type resolvedConfig struct {
	project     string
	service     string
	client      string
	user        string
	key         string
	timezone    string
	verbose     bool
	browserless bool

	// env var names whose values could not be parsed as booleans
	invalidBoolEnv []string
}
