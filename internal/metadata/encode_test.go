// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadata

import "testing"

func TestEncodeComponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a b/c", "a+b%2Fc"},
		{"978-0-13-110362-7", "978-0-13-110362-7"},
		{"AZaz09-_.~", "AZaz09-_.~"},
		{"https://go.dev/doc?x=1&y=2", "https%3A%2F%2Fgo.dev%2Fdoc%3Fx%3D1%26y%3D2"},
		{"é", "%C3%A9"},
		{"+", "%2B"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := EncodeComponent(tt.in); got != tt.want {
			t.Errorf("EncodeComponent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
