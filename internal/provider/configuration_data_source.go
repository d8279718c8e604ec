// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"time"

	"github.com/devops-wiz/terraform-provider-pipeline/internal/configuration"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

var _ datasource.DataSource = (*configurationDataSource)(nil)
var _ datasource.DataSourceWithConfigure = (*configurationDataSource)(nil)

// NewConfigurationDataSource returns the Terraform data source implementation for pipeline_configuration.
func NewConfigurationDataSource() datasource.DataSource { return &configurationDataSource{} }

type configurationDataSource struct {
	provider *PipelineProvider
}

type configurationDataSourceModel struct {
	ID          types.String `tfsdk:"id"`
	Project     types.String `tfsdk:"project"`
	Timezone    types.String `tfsdk:"timezone"`
	AuthMode    types.String `tfsdk:"auth_mode"`
	Fingerprint types.String `tfsdk:"fingerprint"`
	CapturedAt  types.String `tfsdk:"captured_at"`
	Date        types.String `tfsdk:"date"`
	Hour        types.Int64  `tfsdk:"hour"`
	Verbose     types.Bool   `tfsdk:"verbose"`
	Browserless types.Bool   `tfsdk:"browserless"`
	HasService  types.Bool   `tfsdk:"has_service"`
	HasClient   types.Bool   `tfsdk:"has_client"`
	HasUser     types.Bool   `tfsdk:"has_user"`
	HasKey      types.Bool   `tfsdk:"has_key"`
}

func (d *configurationDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_configuration"
}

func (d *configurationDataSource) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Snapshot of the provider's pipeline configuration. The timestamp is captured once when the provider is configured and stays fixed for the whole run. Credential material and the encryption key are never exposed; only their presence is reported.",
		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Same as `fingerprint`.",
			},
			"project": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Project identifier, null when not configured.",
			},
			"timezone": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Timezone the capture was resolved in.",
			},
			"auth_mode": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Available credentials: `BOTH`, `USER`, `SERVICE` or `NONE`. The client credential is not considered.",
			},
			"fingerprint": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "SHA-256 (lowercase hex) of the JSON encoded project, for use as a cache key.",
			},
			"captured_at": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Capture timestamp in RFC 3339 format with the zone offset.",
			},
			"date": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Capture date (`YYYY-MM-DD`) in the configured timezone.",
			},
			"hour": schema.Int64Attribute{
				Computed:            true,
				MarkdownDescription: "Capture hour (0-23) in the configured timezone.",
			},
			"verbose": schema.BoolAttribute{
				Computed:            true,
				MarkdownDescription: "Whether the capture date and hour were logged.",
			},
			"browserless": schema.BoolAttribute{
				Computed:            true,
				MarkdownDescription: "Whether the run is marked as unable to open a browser for interactive auth.",
			},
			"has_service": schema.BoolAttribute{
				Computed:            true,
				MarkdownDescription: "Whether a service credential source is configured.",
			},
			"has_client": schema.BoolAttribute{
				Computed:            true,
				MarkdownDescription: "Whether a client credential source is configured.",
			},
			"has_user": schema.BoolAttribute{
				Computed:            true,
				MarkdownDescription: "Whether a user credential source is configured.",
			},
			"has_key": schema.BoolAttribute{
				Computed:            true,
				MarkdownDescription: "Whether an encryption key is configured.",
			},
		},
	}
}

func (d *configurationDataSource) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.provider = providerFromData(req.ProviderData, &resp.Diagnostics)
}

func (d *configurationDataSource) Read(ctx context.Context, _ datasource.ReadRequest, resp *datasource.ReadResponse) {
	if d.provider == nil || d.provider.config == nil {
		resp.Diagnostics.AddError(
			"Provider Not Configured",
			"The pipeline provider has not been configured; pipeline_configuration can only be read after provider configuration succeeds.",
		)
		return
	}

	data := mapConfigurationToModel(d.provider.config)
	tflog.Debug(ctx, "read pipeline configuration", map[string]interface{}{
		"auth_mode":   data.AuthMode.ValueString(),
		"captured_at": data.CapturedAt.ValueString(),
	})
	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func mapConfigurationToModel(c *configuration.Configuration) configurationDataSourceModel {
	fp := c.Fingerprint()
	return configurationDataSourceModel{
		ID:          types.StringValue(fp),
		Project:     stringOrNull(c.Project()),
		Timezone:    types.StringValue(c.Timezone()),
		AuthMode:    types.StringValue(c.AuthMode().String()),
		Fingerprint: types.StringValue(fp),
		CapturedAt:  types.StringValue(c.Now().Format(time.RFC3339)),
		Date:        types.StringValue(c.Date()),
		Hour:        types.Int64Value(int64(c.Hour())),
		Verbose:     boolValue(c.Verbose()),
		Browserless: boolValue(c.Browserless()),
		HasService:  boolValue(c.Service() != ""),
		HasClient:   boolValue(c.Client() != ""),
		HasUser:     boolValue(c.User() != ""),
		HasKey:      boolValue(c.Key() != ""),
	}
}
