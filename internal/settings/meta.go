// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

const (
	// MetaName is the name attribute of the element carrying the payload.
	MetaName = "fxa-config"
	// MetaSelector is the selector passed to a [MetaLookup].
	MetaSelector = `meta[name="fxa-config"]`
	// MetaContentAttr is the attribute holding the encoded payload.
	MetaContentAttr = "content"
)

// MetaElement is a page element exposing its attributes.
type MetaElement interface {
	GetAttribute(name string) (string, bool)
}

// MetaLookup finds the element matching selector in the hosting page.
// It returns nil when there is no such element.
type MetaLookup func(selector string) MetaElement

// ReadConfigMeta reads the configuration payload from the page through
// lookup, decodes it with [Store.Decode] and merges it into the live
// configuration.
//
// It fails with [ErrMetaMissing] when the element does not exist, and with
// the decode error in hardened mode. On failure the store is left unchanged.
func (s *Store) ReadConfigMeta(lookup MetaLookup) error {
	el := lookup(MetaSelector)
	if el == nil {
		return ErrMetaMissing
	}

	content, _ := el.GetAttribute(MetaContentAttr)
	decoded, err := s.Decode(content)
	if err != nil {
		return err
	}

	s.Update(decoded)
	return nil
}
