// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package configuration holds the run-scoped context shared by pipeline
// tasks: the project identifier, opaque credential sources, an optional
// encryption key, and a timestamp captured once in the run's timezone.
//
// A Configuration is built with New and never changes afterwards, so it can
// be shared freely between goroutines. Two derived queries are offered:
//   - AuthMode classifies which credentials are available (BOTH, USER, SERVICE, NONE).
//   - Fingerprint hashes the project into a stable cache key (SHA-256, lowercase hex).
//
// Credential sources are never read or parsed here; loading and refreshing
// them belongs to the callers that pick an auth strategy from AuthMode.
package configuration
