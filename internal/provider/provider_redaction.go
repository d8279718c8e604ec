// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"regexp"
	"strings"
)

const redactedToken = "[REDACTED]"

// Patterns found inside inline credential blobs (service account keys,
// OAuth client secrets, authorized-user files). Order matters: PEM blocks
// first so the JSON rule does not leave half a key behind.
var credentialPatterns = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`-----BEGIN [A-Z ]*PRIVATE KEY-----[\s\S]*?-----END [A-Z ]*PRIVATE KEY-----`), "<redacted private key>"},
	{regexp.MustCompile(`(?i)"(private_key|private_key_id|client_secret|refresh_token|access_token|token|secret|password)"\s*:\s*"(?:[^"\\]|\\.)*"`), `"$1":"<redacted>"`},
	{regexp.MustCompile(`(?i)\b(client_secret|refresh_token|access_token|private_key_id)\b\s*[:=]\s*[^\s;,&]+`), `$1=<redacted>`},
	{regexp.MustCompile(`([a-z][a-z0-9+\-.]*://)([^\s:@/]+):([^\s@/]+)@`), `$1<redacted>@`},
}

// RedactSecrets masks credential material that may appear in free-form text.
// It is idempotent and safe to call multiple times.
func RedactSecrets(s string) string {
	if s == "" {
		return s
	}
	out := s
	for _, p := range credentialPatterns {
		out = p.re.ReplaceAllString(out, p.repl)
	}
	return out
}

// redactSecretValue replaces a sensitive value with a stable token.
// If the value is empty, it returns the empty string to avoid adding tokens where not needed.
func redactSecretValue(v string) string {
	if v == "" {
		return ""
	}
	return redactedToken
}

// sanitizeValidationError returns a copy of the given validation error with secrets redacted.
// Credential sources and the encryption key are replaced verbatim; pattern based
// redaction then catches fragments of inline blobs.
func sanitizeValidationError(e validationErr, rc resolvedConfig) validationErr {
	var raws []string
	for _, v := range []string{rc.service, rc.client, rc.user, rc.key} {
		if strings.TrimSpace(v) != "" {
			raws = append(raws, v)
		}
	}

	summary := e.summary
	detail := e.detail
	for _, raw := range raws {
		red := redactSecretValue(raw)
		if summary != "" {
			summary = strings.ReplaceAll(summary, raw, red)
		}
		if detail != "" {
			detail = strings.ReplaceAll(detail, raw, red)
		}
	}

	e.summary = RedactSecrets(summary)
	e.detail = RedactSecrets(detail)
	return e
}
