// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package storage

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/fxa-settings/internal/mock"
)

func newMemoryStorage() (*Storage, *NullStorage) {
	backend := NewNullStorage()
	return New(backend, KindMemory), backend
}

func TestStorage_SetGet(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  any
	}{
		{name: "string", value: "value", want: "value"},
		{name: "object", value: map[string]any{"foo": "bar"}, want: map[string]any{"foo": "bar"}},
		{name: "null", value: nil, want: nil},
		{name: "empty string", value: "", want: ""},
		{name: "false", value: false, want: false},
		{name: "zero", value: 0, want: float64(0)},
		{name: "array", value: []string{"a", "b"}, want: []any{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newMemoryStorage()

			require.NoError(t, s.Set("key", tt.value))

			got, ok := s.Get("key")
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStorage_SetEncodesJSON(t *testing.T) {
	s, backend := newMemoryStorage()

	require.NoError(t, s.Set("null", nil))
	require.NoError(t, s.Set("empty", ""))
	require.NoError(t, s.Set("obj", map[string]any{"foo": "bar"}))

	raw, _, _ := backend.GetItem("null")
	assert.Equal(t, "null", raw)
	raw, _, _ = backend.GetItem("empty")
	assert.Equal(t, `""`, raw)
	raw, _, _ = backend.GetItem("obj")
	assert.Equal(t, `{"foo":"bar"}`, raw)
}

func TestStorage_SetUnencodable(t *testing.T) {
	s, backend := newMemoryStorage()

	err := s.Set("key", math.Inf(1))
	require.Error(t, err)
	assert.Equal(t, 0, backend.Len())
}

func TestStorage_GetMissing(t *testing.T) {
	s, _ := newMemoryStorage()

	got, ok := s.Get("nope")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestStorage_GetMalformedJSON(t *testing.T) {
	s, backend := newMemoryStorage()
	require.NoError(t, backend.SetItem("key", "not stringified JSON"))

	got, ok := s.Get("key")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestStorage_GetBackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackend(ctrl)
	backend.EXPECT().GetItem("key").Return("", false, errors.New("access denied"))

	got, ok := New(backend, KindLocal).Get("key")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestStorage_GetInto(t *testing.T) {
	s, backend := newMemoryStorage()

	type account struct {
		UID          string `json:"uid"`
		SessionToken string `json:"sessionToken"`
	}
	require.NoError(t, s.Set("account", account{UID: "abc", SessionToken: "tok"}))

	var got account
	assert.True(t, s.GetInto("account", &got))
	assert.Equal(t, account{UID: "abc", SessionToken: "tok"}, got)

	var missing account
	assert.False(t, s.GetInto("nope", &missing))
	assert.Zero(t, missing)

	require.NoError(t, backend.SetItem("broken", "{"))
	var broken account
	assert.False(t, s.GetInto("broken", &broken))
	assert.Zero(t, broken)

	var wrongType int
	assert.False(t, s.GetInto("account", &wrongType))
}

func TestStorage_Remove(t *testing.T) {
	s, _ := newMemoryStorage()

	require.NoError(t, s.Set("key", "value"))
	require.NoError(t, s.Remove("key"))

	_, ok := s.Get("key")
	assert.False(t, ok)
}

func TestStorage_Clear(t *testing.T) {
	s, _ := newMemoryStorage()

	require.NoError(t, s.Set("a", 1))
	require.NoError(t, s.Set("b", 2))
	require.NoError(t, s.Clear())

	_, ok := s.Get("a")
	assert.False(t, ok)
	_, ok = s.Get("b")
	assert.False(t, ok)
}

func TestStorage_DelegatesWriteErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackend(ctrl)
	s := New(backend, KindSession)

	backend.EXPECT().SetItem("key", `"v"`).Return(assert.AnError)
	backend.EXPECT().RemoveItem("key").Return(assert.AnError)
	backend.EXPECT().Clear().Return(assert.AnError)

	assert.ErrorIs(t, s.Set("key", "v"), assert.AnError)
	assert.ErrorIs(t, s.Remove("key"), assert.AnError)
	assert.ErrorIs(t, s.Clear(), assert.AnError)
	assert.Equal(t, KindSession, s.Kind())
}

func TestNullStorage(t *testing.T) {
	s := NewNullStorage()

	require.NoError(t, s.SetItem("key", "value"))
	value, ok, err := s.GetItem("key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "value", value)

	require.NoError(t, s.RemoveItem("key"))
	_, ok, _ = s.GetItem("key")
	assert.False(t, ok)

	require.NoError(t, s.SetItem("a", "1"))
	require.NoError(t, s.Clear())
	assert.Equal(t, 0, s.Len())
}
