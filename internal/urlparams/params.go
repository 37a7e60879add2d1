// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package urlparams

import "sort"

// Params is an ordered string mapping. Keys are unique: setting an existing
// key replaces its value but keeps its original position.
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams returns an empty *Params.
func NewParams() *Params {
	return &Params{values: make(map[string]string)}
}

// FromPairs builds Params from alternating key, value arguments.
// A trailing key without a value is ignored.
func FromPairs(kv ...string) *Params {
	p := NewParams()
	for i := 0; i+1 < len(kv); i += 2 {
		p.Set(kv[i], kv[i+1])
	}
	return p
}

// FromMap builds Params from m. Keys are inserted in sorted order because Go
// maps carry no order of their own.
func FromMap(m map[string]string) *Params {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p := NewParams()
	for _, k := range keys {
		p.Set(k, m[k])
	}
	return p
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is present.
func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Set stores value under key.
func (p *Params) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Del removes key.
func (p *Params) Del(key string) {
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of entries.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Merge copies every entry of other over p. Values from other win on key
// collision; new keys are appended in other's order.
func (p *Params) Merge(other *Params) *Params {
	for _, k := range other.Keys() {
		v, _ := other.Get(k)
		p.Set(k, v)
	}
	return p
}

// Filter returns a new Params holding only the entries whose key is in
// allowed. Allowed keys that are absent from p are not created.
func (p *Params) Filter(allowed []string) *Params {
	set := make(map[string]struct{}, len(allowed))
	for _, k := range allowed {
		set[k] = struct{}{}
	}

	out := NewParams()
	for _, k := range p.Keys() {
		if _, ok := set[k]; ok {
			v, _ := p.Get(k)
			out.Set(k, v)
		}
	}
	return out
}

// Map returns a plain map copy of p.
func (p *Params) Map() map[string]string {
	out := make(map[string]string, p.Len())
	for _, k := range p.Keys() {
		out[k], _ = p.Get(k)
	}
	return out
}
