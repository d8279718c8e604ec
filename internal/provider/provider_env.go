// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/terraform-plugin-framework/types"
)

// readString prefers the HCL value, then the first non-empty env var in envs.
func readString(s types.String, envs ...string) string {
	if !s.IsNull() && !s.IsUnknown() {
		return s.ValueString()
	}
	return firstEnv(envs...)
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if name == "" {
			continue
		}
		if v, ok := os.LookupEnv(name); ok && v != "" {
			return v
		}
	}
	return ""
}

// readBool prefers the HCL value, then env, then def. ok is false when the env
// var is set but does not parse; def is returned in that case.
func readBool(v types.Bool, env string, def bool) (val bool, ok bool) {
	if !v.IsNull() && !v.IsUnknown() {
		return v.ValueBool(), true
	}
	raw := strings.TrimSpace(firstEnv(env))
	if raw == "" {
		return def, true
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return def, false
	}
	return b, true
}
