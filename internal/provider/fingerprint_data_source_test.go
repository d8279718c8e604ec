// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"testing"

	"github.com/devops-wiz/terraform-provider-pipeline/internal/configuration"
	"github.com/devops-wiz/terraform-provider-pipeline/internal/provider/testhelpers"
	"github.com/hashicorp/terraform-plugin-go/tftypes"
	"github.com/hashicorp/terraform-plugin-testing/helper/resource"
	"github.com/hashicorp/terraform-plugin-testing/knownvalue"
	"github.com/hashicorp/terraform-plugin-testing/statecheck"
	"github.com/hashicorp/terraform-plugin-testing/tfjsonpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintDataSource_Read(t *testing.T) {
	for _, tt := range []struct {
		name    string
		vals    map[string]tftypes.Value
		project string
	}{
		{"with project", map[string]tftypes.Value{"project": tfString("abc")}, "abc"},
		{"unicode project", map[string]tftypes.Value{"project": tfString("café")}, "café"},
		{"absent project", nil, ""},
	} {
		t.Run(tt.name, func(t *testing.T) {
			resp := readDataSource(t, NewFingerprintDataSource(), tt.vals)
			require.False(t, resp.Diagnostics.HasError(), "diagnostics: %v", resp.Diagnostics)

			var m fingerprintDataSourceModel
			require.False(t, resp.State.Get(context.Background(), &m).HasError())
			assert.Equal(t, configuration.Fingerprint(tt.project), m.Fingerprint.ValueString())
			assert.Equal(t, m.Fingerprint, m.ID)
			assert.Regexp(t, fingerprintRegexp, m.Fingerprint.ValueString())
		})
	}
}

func TestAccDataSourceFingerprint(t *testing.T) {
	t.Parallel()

	resource.Test(t, resource.TestCase{
		PreCheck:                 func() { testAccPreCheck(t) },
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: testhelpers.ProviderConfig(t, testhelpers.ProviderTmplCfg{Timezone: "UTC"}) + `
data "pipeline_fingerprint" "abc" {
  project = "abc"
}

data "pipeline_fingerprint" "none" {}
`,
				ConfigStateChecks: []statecheck.StateCheck{
					statecheck.ExpectKnownValue("data.pipeline_fingerprint.abc", tfjsonpath.New("fingerprint"), knownvalue.StringExact(configuration.Fingerprint("abc"))),
					statecheck.ExpectKnownValue("data.pipeline_fingerprint.none", tfjsonpath.New("fingerprint"), knownvalue.StringExact(configuration.Fingerprint(""))),
				},
			},
		},
	})
}
