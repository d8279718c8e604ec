// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"fmt"
	"strings"
	"time"

	"github.com/devops-wiz/terraform-provider-pipeline/internal/configuration"
)

// configuration derivation (unified) to avoid duplicated parsing across ValidateConfig and Configure
func deriveResolvedConfig(data PipelineProviderModel) resolvedConfig {
	var rc resolvedConfig

	// Base
	rc.project = readString(data.Project, envProject, envProjectAlias)
	rc.timezone = strings.TrimSpace(readString(data.Timezone, envTimezone))
	if rc.timezone == "" {
		rc.timezone = defaultTimezone
	}

	// Credentials (opaque: paths or embedded blobs)
	rc.service = readString(data.Service, envService, envServiceAlias)
	rc.client = readString(data.Client, envClient)
	rc.user = readString(data.User, envUser)
	rc.key = readString(data.Key, envKey)

	// Flags
	var ok bool
	if rc.verbose, ok = readBool(data.Verbose, envVerbose, defaultVerbose); !ok {
		rc.invalidBoolEnv = append(rc.invalidBoolEnv, envVerbose)
	}
	if rc.browserless, ok = readBool(data.Browserless, envBrowserless, defaultBrowserless); !ok {
		rc.invalidBoolEnv = append(rc.invalidBoolEnv, envBrowserless)
	}

	return rc
}

// unknownAttributes lists attributes whose values are not yet known, in schema order.
func unknownAttributes(data PipelineProviderModel) []string {
	var out []string
	for _, a := range []struct {
		name    string
		unknown bool
	}{
		{attrProject, data.Project.IsUnknown()},
		{attrService, data.Service.IsUnknown()},
		{attrClient, data.Client.IsUnknown()},
		{attrUser, data.User.IsUnknown()},
		{attrKey, data.Key.IsUnknown()},
		{attrTimezone, data.Timezone.IsUnknown()},
		{attrVerbose, data.Verbose.IsUnknown()},
		{attrBrowserless, data.Browserless.IsUnknown()},
	} {
		if a.unknown {
			out = append(out, a.name)
		}
	}
	return out
}

// unknownValueErrs reports each unknown attribute; env and defaults must not stand in for them.
func unknownValueErrs(data PipelineProviderModel) []validationErr {
	var errs []validationErr
	for _, attr := range unknownAttributes(data) {
		errs = append(errs, validationErr{
			attr:    attr,
			summary: fmt.Sprintf("Unknown %s Configuration.", attr),
			detail:  fmt.Sprintf("The provider cannot capture the pipeline configuration because '%s' is not known yet. Set it to a static value or remove it and use the environment variable instead.", attr),
		})
	}
	return errs
}

// options maps the resolved values onto the configuration constructor inputs.
func (rc resolvedConfig) options(sink configuration.Sink, clock func() time.Time) configuration.Options {
	return configuration.Options{
		Project:     rc.project,
		Service:     rc.service,
		Client:      rc.client,
		User:        rc.user,
		Key:         rc.key,
		Timezone:    rc.timezone,
		Verbose:     rc.verbose,
		Browserless: rc.browserless,
		Sink:        sink,
		Clock:       clock,
	}
}

// validation per-section
func validateTimezone(rc resolvedConfig) []validationErr {
	if _, err := configuration.LoadTimezone(rc.timezone); err != nil {
		summary, detail := timezoneErrorText(err)
		return []validationErr{{attr: attrTimezone, summary: summary, detail: detail}}
	}
	return nil
}

// timezoneErrorText is shared with the schema validator so both paths report identically.
func timezoneErrorText(err error) (string, string) {
	return "Invalid Timezone Configuration.",
		fmt.Sprintf("timezone must be an IANA time zone database name such as \"UTC\" or %q (or set %s): %v", defaultTimezone, envTimezone, err)
}

func validateFlags(rc resolvedConfig) []validationErr {
	var errs []validationErr
	for _, env := range rc.invalidBoolEnv {
		attr := attrVerbose
		if env == envBrowserless {
			attr = attrBrowserless
		}
		errs = append(errs, validationErr{attr: attr, summary: "Invalid Boolean Environment Variable.", detail: fmt.Sprintf("%s must be one of 1, t, true, 0, f, false (any case).", env)})
	}
	return errs
}

func validateCredentials(rc resolvedConfig) []validationErr {
	var errs []validationErr
	for _, c := range []struct {
		attr, env, value string
	}{
		{attrService, envService, rc.service},
		{attrClient, envClient, rc.client},
		{attrUser, envUser, rc.user},
		{attrKey, envKey, rc.key},
	} {
		if c.value != "" && strings.TrimSpace(c.value) == "" {
			errs = append(errs, validationErr{attr: c.attr, summary: "Blank Credential Configuration.", detail: fmt.Sprintf("'%s' (or %s) is set but contains only whitespace. Remove it or provide a path or inline value.", c.attr, c.env)})
		}
	}
	return errs
}

func validateResolvedConfig(rc resolvedConfig) []validationErr {
	var all []validationErr
	all = append(all, validateTimezone(rc)...)
	all = append(all, validateFlags(rc)...)
	all = append(all, validateCredentials(rc)...)

	// Before returning, sanitize any secrets from messages to prevent leakage.
	for i := range all {
		all[i] = sanitizeValidationError(all[i], rc)
	}
	return all
}
