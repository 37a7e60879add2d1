// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/MKhiriev/fxa-settings/internal/settings"
)

// element is a parsed HTML element exposed as a settings.MetaElement.
type element struct {
	attrs map[string]string
}

func (e element) GetAttribute(name string) (string, bool) {
	v, ok := e.attrs[strings.ToLower(name)]
	return v, ok
}

// selector is the subset of CSS selectors the lookup understands:
// tag, [attr], [attr="value"] and tag[attr="value"].
type selector struct {
	tag   string
	attr  string
	value string
	// hasValue distinguishes [attr] from [attr=""].
	hasValue bool
}

func parseSelector(raw string) (selector, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return selector{}, fmt.Errorf("empty selector")
	}

	open := strings.IndexByte(raw, '[')
	if open < 0 {
		return selector{tag: strings.ToLower(raw)}, nil
	}
	if !strings.HasSuffix(raw, "]") {
		return selector{}, fmt.Errorf("unsupported selector %q", raw)
	}

	sel := selector{tag: strings.ToLower(raw[:open])}
	inner := raw[open+1 : len(raw)-1]

	name, value, found := strings.Cut(inner, "=")
	sel.attr = strings.ToLower(strings.TrimSpace(name))
	if sel.attr == "" {
		return selector{}, fmt.Errorf("unsupported selector %q", raw)
	}
	if found {
		value = strings.TrimSpace(value)
		if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
			value = value[1 : len(value)-1]
		}
		sel.value = value
		sel.hasValue = true
	}

	return sel, nil
}

func (s selector) matches(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if s.tag != "" && n.Data != s.tag {
		return false
	}
	if s.attr == "" {
		return true
	}
	for _, a := range n.Attr {
		if a.Key == s.attr {
			return !s.hasValue || a.Val == s.value
		}
	}
	return false
}

// ParseConfigMeta parses an HTML document and returns a lookup that finds
// the first element matching a selector, in document order.
//
// The returned lookup yields nil for a selector it cannot parse or that
// matches nothing.
func ParseConfigMeta(r io.Reader) (settings.MetaLookup, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse settings page: %w", err)
	}

	return func(raw string) settings.MetaElement {
		sel, err := parseSelector(raw)
		if err != nil {
			return nil
		}

		n := findFirst(doc, sel)
		if n == nil {
			return nil
		}

		attrs := make(map[string]string, len(n.Attr))
		for _, a := range n.Attr {
			if _, dup := attrs[a.Key]; !dup {
				attrs[a.Key] = a.Val
			}
		}
		return element{attrs: attrs}
	}, nil
}

func findFirst(n *html.Node, sel selector) *html.Node {
	if sel.matches(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, sel); found != nil {
			return found
		}
	}
	return nil
}
