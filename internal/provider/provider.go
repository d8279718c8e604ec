// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"time"

	"github.com/devops-wiz/terraform-provider-pipeline/internal/configuration"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// Ensure PipelineProvider satisfies various provider interfaces.
var _ provider.Provider = &PipelineProvider{}
var _ provider.ProviderWithValidateConfig = &PipelineProvider{}

// PipelineProvider defines the provider implementation.
type PipelineProvider struct {
	// version is set to the provider version on release, "dev" when the
	// provider is built and ran locally, and "test" when running acceptance
	// testing.
	version string
	// clock overrides the capture time; nil means time.Now.
	clock func() time.Time
	// config is the snapshot built by Configure.
	config *configuration.Configuration
}

// PipelineProviderModel describes the provider data model.
type PipelineProviderModel struct {
	Project types.String `tfsdk:"project"`

	// Credential sources
	Service types.String `tfsdk:"service"`
	Client  types.String `tfsdk:"client"`
	User    types.String `tfsdk:"user"`

	Key types.String `tfsdk:"key"`

	Timezone    types.String `tfsdk:"timezone"`
	Verbose     types.Bool   `tfsdk:"verbose"`
	Browserless types.Bool   `tfsdk:"browserless"`
}

func (p *PipelineProvider) Metadata(_ context.Context, _ provider.MetadataRequest, resp *provider.MetadataResponse) {
	resp.TypeName = "pipeline"
	resp.Version = p.version
}

func (p *PipelineProvider) Schema(_ context.Context, _ provider.SchemaRequest, resp *provider.SchemaResponse) {
	nonEmpty := []validator.String{stringvalidator.LengthAtLeast(1)}

	resp.Schema = schema.Schema{
		MarkdownDescription: "Pipeline provider exposing a run-scoped configuration context: project, credential sources, and a timestamp captured once in the configured timezone.",
		Attributes: map[string]schema.Attribute{
			attrProject: schema.StringAttribute{
				MarkdownDescription: "Project identifier. Falls back to `PIPELINE_PROJECT`, then `GOOGLE_CLOUD_PROJECT`.",
				Optional:            true,
				Validators:          nonEmpty,
			},

			// Credential sources are kept opaque: a file path or the inline contents.
			attrService: schema.StringAttribute{
				MarkdownDescription: "Service credential source (path or inline JSON). Falls back to `PIPELINE_SERVICE`, then `GOOGLE_APPLICATION_CREDENTIALS`.",
				Optional:            true,
				Sensitive:           true,
				Validators:          nonEmpty,
			},
			attrClient: schema.StringAttribute{
				MarkdownDescription: "Client credential source used to bootstrap a user credential. Does not affect `auth_mode`. Falls back to `PIPELINE_CLIENT`.",
				Optional:            true,
				Sensitive:           true,
				Validators:          nonEmpty,
			},
			attrUser: schema.StringAttribute{
				MarkdownDescription: "User credential source (path or inline JSON). Falls back to `PIPELINE_USER`.",
				Optional:            true,
				Sensitive:           true,
				Validators:          nonEmpty,
			},
			attrKey: schema.StringAttribute{
				MarkdownDescription: "Encryption key handed to pipeline tasks. Falls back to `PIPELINE_KEY`.",
				Optional:            true,
				Sensitive:           true,
				Validators:          nonEmpty,
			},

			attrTimezone: schema.StringAttribute{
				MarkdownDescription: "IANA timezone the capture timestamp is resolved in. Defaults to `America/Los_Angeles`. Falls back to `PIPELINE_TIMEZONE`.",
				Optional:            true,
				Validators:          []validator.String{timezoneValidator{}},
			},
			attrVerbose: schema.BoolAttribute{
				MarkdownDescription: "Log the captured date and hour at INFO level. Defaults to false. Falls back to `PIPELINE_VERBOSE`.",
				Optional:            true,
			},
			attrBrowserless: schema.BoolAttribute{
				MarkdownDescription: "Marks the run as unable to open a browser for interactive auth. Defaults to false. Falls back to `PIPELINE_BROWSERLESS`.",
				Optional:            true,
			},
		},
	}
}

func (p *PipelineProvider) ValidateConfig(ctx context.Context, req provider.ValidateConfigRequest, resp *provider.ValidateConfigResponse) {
	var data PipelineProviderModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	// Values computed from other resources are checked again in Configure.
	if len(unknownAttributes(data)) > 0 {
		return
	}

	appendValidationErrs(&resp.Diagnostics, validateResolvedConfig(deriveResolvedConfig(data)))
}

func (p *PipelineProvider) Configure(ctx context.Context, req provider.ConfigureRequest, resp *provider.ConfigureResponse) {
	var data PipelineProviderModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	appendValidationErrs(&resp.Diagnostics, unknownValueErrs(data))
	if resp.Diagnostics.HasError() {
		return
	}

	rc := deriveResolvedConfig(data)
	appendValidationErrs(&resp.Diagnostics, validateResolvedConfig(rc))
	if resp.Diagnostics.HasError() {
		return
	}

	cfg, err := configuration.New(rc.options(tflogSink(ctx), p.clock))
	if err != nil {
		summary, detail := timezoneErrorText(err)
		resp.Diagnostics.AddAttributeError(path.Root(attrTimezone), summary, detail)
		return
	}

	tflog.Debug(ctx, "pipeline configuration captured", map[string]interface{}{
		"project":     cfg.Project(),
		"timezone":    cfg.Timezone(),
		"auth_mode":   cfg.AuthMode().String(),
		"fingerprint": cfg.Fingerprint(),
		"browserless": cfg.Browserless(),
	})

	p.config = cfg

	resp.ResourceData = p
	resp.DataSourceData = p
}

func (p *PipelineProvider) Resources(_ context.Context) []func() resource.Resource {
	return []func() resource.Resource{}
}

func (p *PipelineProvider) DataSources(_ context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{
		NewConfigurationDataSource,
		NewFingerprintDataSource,
		NewAuthModeDataSource,
	}
}

// appendValidationErrs converts validation records into diagnostics, attribute-scoped when possible.
func appendValidationErrs(diags *diag.Diagnostics, errs []validationErr) {
	for _, e := range errs {
		if e.attr == "" {
			diags.AddError(e.summary, e.detail)
			continue
		}
		diags.AddAttributeError(path.Root(e.attr), e.summary, e.detail)
	}
}

func New(version string) func() provider.Provider {
	return func() provider.Provider {
		return &PipelineProvider{
			version: version,
		}
	}
}
