// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"testing"

	"github.com/devops-wiz/terraform-provider-pipeline/internal/provider/testhelpers"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-go/tftypes"
	"github.com/hashicorp/terraform-plugin-testing/helper/resource"
	"github.com/hashicorp/terraform-plugin-testing/knownvalue"
	"github.com/hashicorp/terraform-plugin-testing/statecheck"
	"github.com/hashicorp/terraform-plugin-testing/tfjsonpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthModeDataSource_Read(t *testing.T) {
	for _, tt := range []struct {
		name string
		vals map[string]tftypes.Value
		want string
	}{
		{"both", map[string]tftypes.Value{"user": tfString("u.json"), "service": tfString("s.json")}, "BOTH"},
		{"user", map[string]tftypes.Value{"user": tfString("u.json")}, "USER"},
		{"service", map[string]tftypes.Value{"service": tfString("s.json")}, "SERVICE"},
		{"none", nil, "NONE"},
		{"client only", map[string]tftypes.Value{"client": tfString("c.json")}, "NONE"},
		{"client with user", map[string]tftypes.Value{"client": tfString("c.json"), "user": tfString("u.json")}, "USER"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			resp := readDataSource(t, NewAuthModeDataSource(), tt.vals)
			require.False(t, resp.Diagnostics.HasError(), "diagnostics: %v", resp.Diagnostics)

			var m authModeDataSourceModel
			require.False(t, resp.State.Get(context.Background(), &m).HasError())
			assert.Equal(t, tt.want, m.AuthMode.ValueString())
			assert.Equal(t, tt.want, m.ID.ValueString())
		})
	}
}

func TestAccDataSourceAuthMode(t *testing.T) {
	t.Parallel()

	resource.Test(t, resource.TestCase{
		PreCheck:                 func() { testAccPreCheck(t) },
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: testhelpers.ProviderConfig(t, testhelpers.ProviderTmplCfg{Timezone: "UTC"}) + `
data "pipeline_auth_mode" "service" {
  service = "service.json"
  client  = "client.json"
}

data "pipeline_auth_mode" "none" {
  client = "client.json"
}
`,
				ConfigStateChecks: []statecheck.StateCheck{
					statecheck.ExpectKnownValue("data.pipeline_auth_mode.service", tfjsonpath.New("auth_mode"), knownvalue.StringExact("SERVICE")),
					statecheck.ExpectKnownValue("data.pipeline_auth_mode.none", tfjsonpath.New("auth_mode"), knownvalue.StringExact("NONE")),
				},
			},
		},
	})
}

func TestDataSourceSchemas_Documented(t *testing.T) {
	for _, ds := range []datasource.DataSource{
		NewConfigurationDataSource(),
		NewFingerprintDataSource(),
		NewAuthModeDataSource(),
	} {
		var mresp datasource.MetadataResponse
		ds.Metadata(context.Background(), datasource.MetadataRequest{ProviderTypeName: "pipeline"}, &mresp)

		var sresp datasource.SchemaResponse
		ds.Schema(context.Background(), datasource.SchemaRequest{}, &sresp)
		require.False(t, sresp.Diagnostics.HasError())
		assert.NotEmpty(t, sresp.Schema.MarkdownDescription, mresp.TypeName)
		for name, a := range sresp.Schema.Attributes {
			assert.NotEmpty(t, a.GetMarkdownDescription(), "%s.%s has no description", mresp.TypeName, name)
		}
	}
}
