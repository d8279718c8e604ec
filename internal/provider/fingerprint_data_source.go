// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"

	"github.com/devops-wiz/terraform-provider-pipeline/internal/configuration"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

var _ datasource.DataSource = (*fingerprintDataSource)(nil)

// NewFingerprintDataSource returns the Terraform data source implementation for pipeline_fingerprint.
func NewFingerprintDataSource() datasource.DataSource { return &fingerprintDataSource{} }

type fingerprintDataSource struct{}

type fingerprintDataSourceModel struct {
	ID          types.String `tfsdk:"id"`
	Project     types.String `tfsdk:"project"`
	Fingerprint types.String `tfsdk:"fingerprint"`
}

func (d *fingerprintDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_fingerprint"
}

func (d *fingerprintDataSource) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Computes the cache-key fingerprint of an arbitrary project with the same algorithm as `pipeline_configuration`.",
		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Same as `fingerprint`.",
			},
			"project": schema.StringAttribute{
				Optional:            true,
				MarkdownDescription: "Project identifier. When omitted the fingerprint of an absent project is returned.",
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
			"fingerprint": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "SHA-256 (lowercase hex) of the JSON encoded project.",
			},
		},
	}
}

func (d *fingerprintDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var data fingerprintDataSourceModel
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	fp := configuration.Fingerprint(data.Project.ValueString())
	data.ID = types.StringValue(fp)
	data.Fingerprint = types.StringValue(fp)

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}
