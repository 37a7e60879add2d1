// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package urlparams

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const mixed = "?color=green&email=testuser%40testuser.com#color=brown&email=hash%40testuser.com"

// ── SearchParam ───────────────────────────────────────────────────────────────

func TestSearchParam(t *testing.T) {
	tests := []struct {
		name   string
		param  string
		raw    string
		want   string
		wantOK bool
	}{
		{name: "existing", param: "color", raw: "?color=green", want: "green", wantOK: true},
		{name: "empty value", param: "color", raw: "?color=", want: "", wantOK: true},
		{name: "space value is trimmed", param: "color", raw: "?color= ", want: "", wantOK: true},
		{name: "missing", param: "animal", raw: "?color=green", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SearchParam(tt.param, tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── SearchParams ──────────────────────────────────────────────────────────────

func TestSearchParams_AllKeys(t *testing.T) {
	params := SearchParams(mixed)

	want := map[string]string{"color": "green", "email": "testuser@testuser.com"}
	if diff := cmp.Diff(want, params.Map()); diff != "" {
		t.Errorf("SearchParams() mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchParams_AllowList(t *testing.T) {
	params := SearchParams(mixed, "color", "notDefined")

	v, ok := params.Get("color")
	require.True(t, ok)
	assert.Equal(t, "green", v)
	assert.False(t, params.Has("email"))
	assert.False(t, params.Has("notDefined"))
}

func TestSearchParams_Empty(t *testing.T) {
	assert.Equal(t, 0, SearchParams("").Len())
	assert.Equal(t, 0, SearchParams("", "blue").Len())
	assert.Equal(t, 0, SearchParams("https://example.com/?").Len())
}

func TestSearchParams_FullURL(t *testing.T) {
	params := SearchParams("https://accounts.example.com/settings?uid=abc&service=sync#ignored=1")
	assert.Equal(t, []string{"uid", "service"}, params.Keys())
}

func TestSearchParams_LastDuplicateWins(t *testing.T) {
	params := SearchParams("?a=1&b=2&a=3")

	v, _ := params.Get("a")
	assert.Equal(t, "3", v)
	assert.Equal(t, []string{"a", "b"}, params.Keys())
}

func TestSearchParams_ValueContainsEquals(t *testing.T) {
	v, ok := SearchParam("redirect", "?redirect=a=b")
	require.True(t, ok)
	assert.Equal(t, "a=b", v)
}

func TestSearchParams_PlusIsNotSpace(t *testing.T) {
	v, _ := SearchParam("q", "?q=a+b%20c")
	assert.Equal(t, "a+b c", v)
}

func TestSearchParams_MalformedEscapeKeptVerbatim(t *testing.T) {
	v, ok := SearchParam("q", "?q=100%zz")
	require.True(t, ok)
	assert.Equal(t, "100%zz", v)
}

func TestSearchParams_PairWithoutValue(t *testing.T) {
	params := SearchParams("?flag&x=1&")

	v, ok := params.Get("flag")
	require.True(t, ok)
	assert.Equal(t, "", v)
	assert.Equal(t, []string{"flag", "x"}, params.Keys())
}

// ── HashParams ────────────────────────────────────────────────────────────────

func TestHashParams_AllKeys(t *testing.T) {
	params := HashParams(mixed)

	want := map[string]string{"color": "brown", "email": "hash@testuser.com"}
	if diff := cmp.Diff(want, params.Map()); diff != "" {
		t.Errorf("HashParams() mismatch (-want +got):\n%s", diff)
	}
}

func TestHashParams_AllowList(t *testing.T) {
	params := HashParams(mixed, "color", "notDefined")

	v, _ := params.Get("color")
	assert.Equal(t, "brown", v)
	assert.False(t, params.Has("email"))
	assert.False(t, params.Has("notDefined"))
}

func TestHashParams_Empty(t *testing.T) {
	assert.Equal(t, 0, HashParams("").Len())
	assert.Equal(t, 0, HashParams("", "blue").Len())
}

// ── Serialize ─────────────────────────────────────────────────────────────────

func TestSerialize_SkipsEmptyValues(t *testing.T) {
	params := FromPairs("hasValue", "value", "emptyNotIncluded", "")

	assert.Equal(t, "?hasValue=value", ObjToSearchString(params))
	assert.Equal(t, "#hasValue=value", ObjToHashString(params))
	assert.Equal(t, "#hasValue=value", Serialize(params, HashPrefix))
}

func TestSerialize_NoEntries(t *testing.T) {
	assert.Equal(t, "", ObjToSearchString(NewParams()))
	assert.Equal(t, "", ObjToHashString(nil))
	assert.Equal(t, "", Serialize(FromPairs("a", ""), SearchPrefix))
}

func TestSerialize_KeepsInsertionOrderAndEncodes(t *testing.T) {
	params := FromPairs("email", "a b@example.com", "redirect_to", "https://x.org/?q=1&r=2")

	assert.Equal(t,
		"?email=a%20b%40example.com&redirect_to=https%3A%2F%2Fx.org%2F%3Fq%3D1%26r%3D2",
		ObjToSearchString(params))
}

func TestSerialize_RoundTrip(t *testing.T) {
	inputs := []map[string]string{
		{"a": "1", "b": "two words", "c": "ünïcødé", "d": "x&y=z"},
		{"only": "~!*'()-_."},
		{"empty": "", "kept": "v"},
		{},
	}

	for _, in := range inputs {
		out := SearchParams(ObjToSearchString(FromMap(in)))

		want := make(map[string]string)
		for k, v := range in {
			if v != "" {
				want[k] = v
			}
		}
		if diff := cmp.Diff(want, out.Map()); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

// ── EncodeURIComponent ────────────────────────────────────────────────────────

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "abc-_.!~*'()", EncodeURIComponent("abc-_.!~*'()"))
	assert.Equal(t, "%7B%22a%22%3A1%7D", EncodeURIComponent(`{"a":1}`))
	assert.Equal(t, "%C3%BC", EncodeURIComponent("ü"))
	assert.Equal(t, "a%2Bb", EncodeURIComponent("a+b"))
}

func TestDecodeURIComponent(t *testing.T) {
	assert.Equal(t, `{"a":1}`, DecodeURIComponent("%7B%22a%22%3A1%7D"))
	assert.Equal(t, "%E0%A4%A", DecodeURIComponent("%E0%A4%A"))
}
