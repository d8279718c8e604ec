// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package configuration

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// Fingerprint returns the lowercase hex SHA-256 digest of the canonical JSON
// encoding of project. An empty project encodes as null.
func Fingerprint(project string) string {
	sum := sha256.Sum256(canonicalJSON(project))
	return hex.EncodeToString(sum[:])
}

// canonicalJSON encodes s as a compact, ASCII-only JSON string. Printable
// ASCII is kept as is; everything else uses short escapes or \uXXXX with
// lowercase hex, surrogate pairs above the BMP. This matches compact JSON
// encoders running with ASCII escaping, which is what other producers of
// these cache keys use. A byte that is not valid UTF-8 is written as the
// low surrogate \udcXX, the surrogateescape form of that byte.
func canonicalJSON(s string) []byte {
	if s == "" {
		return []byte("null")
	}
	var b bytes.Buffer
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			fmt.Fprintf(&b, `\udc%02x`, s[i])
			i++
			continue
		}
		i += size
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			switch {
			case r >= 0x20 && r < 0x7f:
				b.WriteRune(r)
			case r > 0xffff:
				hi, lo := utf16.EncodeRune(r)
				fmt.Fprintf(&b, `\u%04x\u%04x`, hi, lo)
			default:
				fmt.Fprintf(&b, `\u%04x`, r)
			}
		}
	}
	b.WriteByte('"')
	return b.Bytes()
}
