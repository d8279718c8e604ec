// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"fmt"

	"github.com/devops-wiz/terraform-provider-pipeline/internal/configuration"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// Tiny mapping helpers to reduce verbosity in map-to-state code.
func stringOrNull(s string) types.String {
	if s != "" {
		return types.StringValue(s)
	}
	return types.StringNull()
}

func boolValue(b bool) types.Bool { return types.BoolValue(b) }

// tflogSink forwards configuration diagnostics to the provider log on ctx.
func tflogSink(ctx context.Context) configuration.Sink {
	return configuration.SinkFunc(func(line string) {
		tflog.Info(ctx, line)
	})
}

// providerFromData unwraps ProviderData set by Configure. A nil result with no
// diagnostics means the provider has not been configured yet.
func providerFromData(data any, diags *diag.Diagnostics) *PipelineProvider {
	if data == nil {
		return nil
	}
	p, ok := data.(*PipelineProvider)
	if !ok {
		diags.AddError(
			"Unexpected Data Source Configure Type",
			fmt.Sprintf("Expected *PipelineProvider, got: %T. Please report this issue to the provider developers.", data),
		)
		return nil
	}
	return p
}
