// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fxa-settings/internal/storage"
)

func memoryStorage() *storage.Storage {
	return storage.New(storage.NewNullStorage(), storage.KindMemory)
}

func TestSessionToken(t *testing.T) {
	s := memoryStorage()
	require.NoError(t, s.Set(KeyAccounts, map[string]any{
		"abc": map[string]any{"uid": "abc", "sessionToken": "tok-abc"},
		"def": map[string]any{"uid": "def", "sessionToken": "tok-def"},
	}))
	require.NoError(t, s.Set(KeyCurrentAccountUID, "def"))

	token, err := SessionToken(s)
	require.NoError(t, err)
	assert.Equal(t, "tok-def", token)
}

func TestSessionToken_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(s *storage.Storage)
		wantErr error
	}{
		{
			name:    "empty storage",
			setup:   func(s *storage.Storage) {},
			wantErr: ErrNoCurrentAccount,
		},
		{
			name: "current uid without accounts",
			setup: func(s *storage.Storage) {
				_ = s.Set(KeyCurrentAccountUID, "abc")
			},
			wantErr: ErrNoCurrentAccount,
		},
		{
			name: "current uid not among accounts",
			setup: func(s *storage.Storage) {
				_ = s.Set(KeyAccounts, map[string]any{"def": map[string]any{"sessionToken": "x"}})
				_ = s.Set(KeyCurrentAccountUID, "abc")
			},
			wantErr: ErrNoCurrentAccount,
		},
		{
			name: "malformed accounts",
			setup: func(s *storage.Storage) {
				_ = s.Set(KeyAccounts, "not an object")
				_ = s.Set(KeyCurrentAccountUID, "abc")
			},
			wantErr: ErrNoCurrentAccount,
		},
		{
			name: "account without token",
			setup: func(s *storage.Storage) {
				_ = s.Set(KeyAccounts, map[string]any{"abc": map[string]any{"email": "a@b.c"}})
				_ = s.Set(KeyCurrentAccountUID, "abc")
			},
			wantErr: ErrNoSessionToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := memoryStorage()
			tt.setup(s)

			_, err := SessionToken(s)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSetCurrentAccount(t *testing.T) {
	s := memoryStorage()

	require.NoError(t, SetCurrentAccount(s, StoredAccount{UID: "abc", SessionToken: "one"}))
	require.NoError(t, SetCurrentAccount(s, StoredAccount{UID: "def", SessionToken: "two", Email: "d@e.f"}))

	account, err := CurrentAccount(s)
	require.NoError(t, err)
	assert.Equal(t, StoredAccount{UID: "def", SessionToken: "two", Email: "d@e.f"}, account)

	var accounts map[string]StoredAccount
	require.True(t, s.GetInto(KeyAccounts, &accounts))
	assert.Len(t, accounts, 2)
}
