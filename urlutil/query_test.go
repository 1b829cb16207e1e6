package urlutil

import (
	"reflect"
	"testing"
)

func TestDecodeComponent(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		want    string
	}{
		{name: "plain text", encoded: "hello", want: "hello"},
		{name: "percent escape", encoded: "%20", want: " "},
		{name: "plus becomes space", encoded: "a+b", want: "a b"},
		{name: "mixed", encoded: "a%2Fb+c%3D1", want: "a/b c=1"},
		{name: "lowercase hex", encoded: "%2f", want: "/"},
		{name: "escape at end of string", encoded: "x%21", want: "x!"},
		{name: "trailing percent passes through", encoded: "abc%", want: "abc%"},
		{name: "truncated escape passes through", encoded: "abc%2", want: "abc%2"},
		{name: "non-hex escape passes through", encoded: "%zz", want: "%zz"},
		{name: "percent before valid escape", encoded: "%%41", want: "%A"},
		{name: "empty string", encoded: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeComponent(tt.encoded); got != tt.want {
				t.Errorf("DecodeComponent(%q) = %q, want %q", tt.encoded, got, tt.want)
			}
		})
	}
}

func TestQueryParams(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want map[string]string
	}{
		{
			name: "pairs with and without values",
			url:  "https://example.com/?a=1&b&c=%20x",
			want: map[string]string{"a": "1", "b": "", "c": " x"},
		},
		{
			name: "no query",
			url:  "https://example.com/",
			want: map[string]string{},
		},
		{
			name: "keys and values are decoded independently",
			url:  "https://example.com/?user%20name=John+Doe",
			want: map[string]string{"user name": "John Doe"},
		},
		{
			name: "split happens on the first equals only",
			url:  "https://example.com/?expr=a=b=c",
			want: map[string]string{"expr": "a=b=c"},
		},
		{
			name: "duplicate keys are last-write-wins",
			url:  "https://example.com/?k=first&k=last",
			want: map[string]string{"k": "last"},
		},
		{
			name: "empty segments are skipped",
			url:  "https://example.com/?a=1&&b=2&",
			want: map[string]string{"a": "1", "b": "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := mustParse(t, tt.url)
			if got := u.QueryParams(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("QueryParams() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQueryParamsComputedOnce(t *testing.T) {
	u := mustParse(t, "https://example.com/?a=1")
	first := u.QueryParams()
	second := u.QueryParams()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated QueryParams() differ: %v vs %v", first, second)
	}
	// The raw query is untouched by decoding.
	if u.Query() != "a=1" {
		t.Errorf("Query() = %q, want %q", u.Query(), "a=1")
	}
}
