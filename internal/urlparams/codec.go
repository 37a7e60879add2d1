// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package urlparams

import (
	"net/url"
	"strings"
)

const (
	// SearchPrefix marks the start of a search string.
	SearchPrefix = "?"
	// HashPrefix marks the start of a hash string.
	HashPrefix = "#"
)

// SearchParams converts the search string contained in raw to Params.
// Everything up to the last '?' and from the first '#' on is discarded.
// When allowed is non-empty only those keys are kept.
func SearchParams(raw string, allowed ...string) *Params {
	search := raw
	if i := strings.LastIndex(search, SearchPrefix); i >= 0 {
		search = search[i+1:]
	}
	if i := strings.Index(search, HashPrefix); i >= 0 {
		search = search[:i]
	}

	search = strings.TrimSpace(search)
	if search == "" {
		return NewParams()
	}

	return SplitEncodedParams(search, allowed...)
}

// SearchParam returns a single parameter of the search string in raw.
func SearchParam(name, raw string) (string, bool) {
	return SearchParams(raw).Get(name)
}

// HashParams converts the hash string contained in raw to Params.
// Everything up to the last '#' is discarded.
func HashParams(raw string, allowed ...string) *Params {
	hash := raw
	if i := strings.LastIndex(hash, HashPrefix); i >= 0 {
		hash = hash[i+1:]
	}

	hash = strings.TrimSpace(hash)
	if hash == "" {
		return NewParams()
	}

	return SplitEncodedParams(hash, allowed...)
}

// SplitEncodedParams converts an encoded "k1=v1&k2=v2" string to Params.
// Pairs are split on the first '='; values are percent-decoded and trimmed.
// Empty pairs are skipped and the last occurrence of a key wins.
func SplitEncodedParams(raw string, allowed ...string) *Params {
	terms := NewParams()

	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}

		key, value, _ := strings.Cut(pair, "=")
		terms.Set(key, strings.TrimSpace(DecodeURIComponent(value)))
	}

	if len(allowed) == 0 {
		return terms
	}

	return terms.Filter(allowed)
}

// Serialize converts p to a URL string starting with prefix. Entries with an
// empty key or value are omitted. If nothing remains the result is "", not
// the bare prefix.
func Serialize(p *Params, prefix string) string {
	parts := make([]string, 0, p.Len())
	for _, key := range p.Keys() {
		value, _ := p.Get(key)
		if key == "" || value == "" {
			continue
		}
		parts = append(parts, key+"="+EncodeURIComponent(value))
	}

	if len(parts) == 0 {
		return ""
	}

	return prefix + strings.Join(parts, "&")
}

// ObjToSearchString converts p to a search string.
func ObjToSearchString(p *Params) string {
	return Serialize(p, SearchPrefix)
}

// ObjToHashString converts p to a hash string.
func ObjToHashString(p *Params) string {
	return Serialize(p, HashPrefix)
}

// EncodeURIComponent percent-encodes every byte of s except the unreserved
// set A-Z a-z 0-9 - _ . ! ~ * ' ( ). Spaces become %20, never '+'.
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

// DecodeURIComponent reverses [EncodeURIComponent]. '+' is kept as is.
// If s holds a malformed escape it is returned unchanged.
func DecodeURIComponent(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
