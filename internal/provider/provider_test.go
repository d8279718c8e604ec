// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"os"
	"testing"
	_ "time/tzdata"

	"github.com/devops-wiz/terraform-provider-pipeline/internal/configuration"
	"github.com/hashicorp/terraform-plugin-framework/attr"
	"github.com/hashicorp/terraform-plugin-framework/providerserver"
	"github.com/hashicorp/terraform-plugin-go/tfprotov6"
	"github.com/hashicorp/terraform-plugin-go/tftypes"
)

// pipelineEnvVars lists every variable the provider reads, so unit tests can isolate themselves.
var pipelineEnvVars = []string{
	envProject, envProjectAlias,
	envService, envServiceAlias,
	envClient, envUser, envKey,
	envTimezone, envVerbose, envBrowserless,
}

// clearPipelineEnv blanks all provider env vars for the duration of the test.
func clearPipelineEnv(t *testing.T) {
	t.Helper()
	for _, env := range pipelineEnvVars {
		t.Setenv(env, "")
	}
}

// testAccPreCheck guards acceptance tests against ambient provider configuration.
// The provider talks to no remote API, so only local env sanity is checked.
func testAccPreCheck(t *testing.T) {
	if v := os.Getenv(envTimezone); v != "" {
		if _, err := configuration.LoadTimezone(v); err != nil {
			t.Fatalf("%s is set to an unknown timezone: %v", envTimezone, err)
		}
	}
	for _, env := range []string{envProject, envProjectAlias, envService, envServiceAlias, envUser} {
		if os.Getenv(env) != "" {
			t.Fatalf("%s must be unset for acceptance tests; the tests assert on explicit provider blocks", env)
		}
	}
}

// Provider factory for acceptance tests
var testAccProtoV6ProviderFactories = map[string]func() (tfprotov6.ProviderServer, error){
	"pipeline": providerserver.NewProtocol6WithError(New("test")()),
}

// objectValue builds a tftypes object for a schema type, filling attributes
// not present in vals with nulls.
func objectValue(t *testing.T, typ attr.Type, vals map[string]tftypes.Value) tftypes.Value {
	t.Helper()
	tfType := typ.TerraformType(context.Background())
	obj, ok := tfType.(tftypes.Object)
	if !ok {
		t.Fatalf("expected object type, got %T", tfType)
	}
	all := make(map[string]tftypes.Value, len(obj.AttributeTypes))
	for name, at := range obj.AttributeTypes {
		if v, ok := vals[name]; ok {
			all[name] = v
			continue
		}
		all[name] = tftypes.NewValue(at, nil)
	}
	for name := range vals {
		if _, ok := obj.AttributeTypes[name]; !ok {
			t.Fatalf("attribute %q is not in the schema", name)
		}
	}
	return tftypes.NewValue(tfType, all)
}

func tfString(s string) tftypes.Value { return tftypes.NewValue(tftypes.String, s) }

func tfBool(b bool) tftypes.Value { return tftypes.NewValue(tftypes.Bool, b) }
