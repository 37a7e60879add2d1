// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"encoding/json"
	"errors"
	"net/url"

	"github.com/MKhiriev/fxa-settings/internal/metrics"
)

// Diagnostics logged by [Store.Decode] outside hardened mode.
const (
	msgMissingConfig = "fxa-settings is missing server config"
	msgInvalidConfig = "fxa-settings server config is invalid"
)

var errNotObject = errors.New("payload is not a JSON object")

// Decode URI-decodes and JSON-parses a configuration payload. It does not
// change the store.
//
// An empty payload or one that is not a URI-encoded JSON object is fatal in
// hardened mode ([ErrConfigEmpty], [*InvalidConfigError]). Otherwise a
// warning is logged and an empty object is returned so that startup can
// proceed. A JSON null decodes to an empty object.
func (s *Store) Decode(encoded string) (map[string]any, error) {
	if encoded == "" {
		metrics.ConfigDecodeFailuresTotal.WithLabelValues(metrics.ReasonEmpty, s.mode()).Inc()
		if s.hardened {
			return nil, ErrConfigEmpty
		}

		s.logger.Warn().Msg(msgMissingConfig)
		return map[string]any{}, nil
	}

	decoded, err := parsePayload(encoded)
	if err != nil {
		metrics.ConfigDecodeFailuresTotal.WithLabelValues(metrics.ReasonInvalid, s.mode()).Inc()
		if s.hardened {
			return nil, &InvalidConfigError{Value: encoded, Err: err}
		}

		s.logger.Warn().Err(err).Msg(msgInvalidConfig)
		return map[string]any{}, nil
	}

	return decoded, nil
}

func (s *Store) mode() string {
	if s.hardened {
		return metrics.ModeHardened
	}
	return metrics.ModeLenient
}

func parsePayload(encoded string) (map[string]any, error) {
	raw, err := url.PathUnescape(encoded)
	if err != nil {
		return nil, err
	}

	var value any
	if err = json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, err
	}

	switch v := value.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	default:
		return nil, errNotObject
	}
}
