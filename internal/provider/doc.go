// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package provider implements the Terraform Provider for pipeline configuration.
//
// Highlights:
//   - Snapshot: the provider block is resolved once per run into a configuration
//     context whose timestamp never advances.
//   - Credentials: service, client and user sources are opaque paths or inline
//     blobs; only their presence is exposed (auth_mode, has_*).
//   - Cache keys: fingerprints are SHA-256 over the JSON encoded project and match
//     keys computed by non-Go pipeline tooling.
//   - Env fallbacks: every attribute can come from PIPELINE_* variables, with
//     GOOGLE_CLOUD_PROJECT and GOOGLE_APPLICATION_CREDENTIALS as aliases.
//   - Redaction: credential material and the encryption key never appear in diagnostics.
package provider
