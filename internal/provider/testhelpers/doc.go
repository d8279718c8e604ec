// Package testhelpers provides shared testing utilities used across unit and
// acceptance tests.
//
// Intended use:
//   - Acceptance tests: HCL rendered from testdata/templates and small fixtures
//     such as throwaway credential files.
//   - Unit tests: deterministic clocks and inline credential blobs that carry
//     secrets, to check redaction.
//
// Conventions:
//   - Keep dependencies minimal and avoid importing production-only paths.
//   - Never leak secrets in logs, errors, or golden files; always redact.
//
// This package is for test code and is not part of the provider's public API.
package testhelpers
