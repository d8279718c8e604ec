// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"strings"

	"github.com/devops-wiz/terraform-provider-pipeline/internal/configuration"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
)

var _ validator.String = timezoneValidator{}

// timezoneValidator rejects identifiers that are not in the time zone database.
type timezoneValidator struct{}

func (v timezoneValidator) Description(_ context.Context) string {
	return "value must be an IANA time zone database name"
}

func (v timezoneValidator) MarkdownDescription(ctx context.Context) string {
	return v.Description(ctx)
}

func (v timezoneValidator) ValidateString(_ context.Context, req validator.StringRequest, resp *validator.StringResponse) {
	if req.ConfigValue.IsNull() || req.ConfigValue.IsUnknown() {
		return
	}
	tz := strings.TrimSpace(req.ConfigValue.ValueString())
	if tz == "" {
		tz = defaultTimezone
	}
	if _, err := configuration.LoadTimezone(tz); err != nil {
		summary, detail := timezoneErrorText(err)
		resp.Diagnostics.AddAttributeError(req.Path, summary, detail)
	}
}
