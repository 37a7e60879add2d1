// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/MKhiriev/fxa-settings/internal/storage"
)

// Storage keys written by the content server when an account signs in.
const (
	KeyAccounts          = "accounts"
	KeyCurrentAccountUID = "currentAccountUid"
)

// StoredAccount is one entry of the "accounts" storage object, keyed by uid.
type StoredAccount struct {
	UID          string `json:"uid"`
	Email        string `json:"email,omitempty"`
	SessionToken string `json:"sessionToken"`
	Verified     bool   `json:"verified,omitempty"`
	LastLogin    int64  `json:"lastLogin,omitempty"`
}

// CurrentAccount returns the account named by currentAccountUid.
func CurrentAccount(s *storage.Storage) (StoredAccount, error) {
	var uid string
	if !s.GetInto(KeyCurrentAccountUID, &uid) || uid == "" {
		return StoredAccount{}, ErrNoCurrentAccount
	}

	var accounts map[string]StoredAccount
	if !s.GetInto(KeyAccounts, &accounts) {
		return StoredAccount{}, fmt.Errorf("%w: uid %s", ErrNoCurrentAccount, uid)
	}

	account, ok := accounts[uid]
	if !ok {
		return StoredAccount{}, fmt.Errorf("%w: uid %s", ErrNoCurrentAccount, uid)
	}
	if account.UID == "" {
		account.UID = uid
	}

	return account, nil
}

// SessionToken returns the session token of the current account.
func SessionToken(s *storage.Storage) (string, error) {
	account, err := CurrentAccount(s)
	if err != nil {
		return "", err
	}
	if account.SessionToken == "" {
		return "", fmt.Errorf("%w: uid %s", ErrNoSessionToken, account.UID)
	}

	return account.SessionToken, nil
}

// SetCurrentAccount stores account in the accounts object and makes it
// current. Other stored accounts are kept.
func SetCurrentAccount(s *storage.Storage, account StoredAccount) error {
	accounts := map[string]StoredAccount{}
	s.GetInto(KeyAccounts, &accounts)

	accounts[account.UID] = account
	if err := s.Set(KeyAccounts, accounts); err != nil {
		return err
	}

	return s.Set(KeyCurrentAccountUID, account.UID)
}
