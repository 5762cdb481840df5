// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package urlenc renders form-encoded request payloads
// (application/x-www-form-urlencoded). It is a stateless text
// transform with no ties to the transfer machinery.
package urlenc

import (
	"net/url"
	"sort"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// FormEscape returns the form-encoded rendering of s. Unreserved
// octets (ALPHA / DIGIT / "-" / "." / "_" / "~", per RFC 3986 section
// 2.3) pass through unchanged, a space becomes "+", and every other
// octet becomes an uppercase percent escape.
func FormEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case unreserved(c):
			b.WriteByte(c)
		case c == ' ':
			b.WriteByte('+')
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xf])
		}
	}
	return b.String()
}

// EncodeValues renders v as a form-encoded payload ("a=1&b=2"),
// escaping keys and values with FormEscape. Keys are emitted in sorted
// order, and repeated values for a key are emitted in slice order.
func EncodeValues(v url.Values) string {
	if len(v) == 0 {
		return ""
	}
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		ek := FormEscape(k)
		for _, val := range v[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(ek)
			b.WriteByte('=')
			b.WriteString(FormEscape(val))
		}
	}
	return b.String()
}

func unreserved(c byte) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}
