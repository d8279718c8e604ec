// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"

	"github.com/devops-wiz/terraform-provider-pipeline/internal/configuration"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

var _ datasource.DataSource = (*authModeDataSource)(nil)

// NewAuthModeDataSource returns the Terraform data source implementation for pipeline_auth_mode.
func NewAuthModeDataSource() datasource.DataSource { return &authModeDataSource{} }

type authModeDataSource struct{}

type authModeDataSourceModel struct {
	ID       types.String `tfsdk:"id"`
	Service  types.String `tfsdk:"service"`
	Client   types.String `tfsdk:"client"`
	User     types.String `tfsdk:"user"`
	AuthMode types.String `tfsdk:"auth_mode"`
}

func (d *authModeDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_auth_mode"
}

func (d *authModeDataSource) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Classifies an arbitrary set of credential sources the same way `pipeline_configuration` does. Only presence is evaluated; contents are never read.",
		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Same as `auth_mode`.",
			},
			"service": schema.StringAttribute{
				Optional:            true,
				Sensitive:           true,
				MarkdownDescription: "Service credential source (path or inline JSON). Only its presence is evaluated.",
			},
			"client": schema.StringAttribute{
				Optional:            true,
				Sensitive:           true,
				MarkdownDescription: "Accepted for symmetry with the provider block; never changes the result.",
			},
			"user": schema.StringAttribute{
				Optional:            true,
				Sensitive:           true,
				MarkdownDescription: "User credential source (path or inline JSON). Only its presence is evaluated.",
			},
			"auth_mode": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "`BOTH`, `USER`, `SERVICE` or `NONE`.",
			},
		},
	}
}

func (d *authModeDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var data authModeDataSourceModel
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	mode := configuration.AuthModeFor(data.User.ValueString(), data.Service.ValueString())
	data.ID = types.StringValue(mode.String())
	data.AuthMode = types.StringValue(mode.String())

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}
