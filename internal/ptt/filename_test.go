package ptt

import (
	"strings"
	"testing"
)

func TestThemeName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "", want: "custom"},
		{raw: "  ", want: "custom"},
		{raw: "\t\n", want: "custom"},
		{raw: " My Theme ", want: "My Theme"},
		{raw: "../etc/passwd", want: ".._etc_passwd"},
		{raw: `a\b`, want: "a_b"},
		{raw: "a\r\nb", want: "a__b"},
		{raw: strings.Repeat("x", 150), want: strings.Repeat("x", 100)},
		{raw: strings.Repeat("é", 120), want: strings.Repeat("é", 100)},
	}
	for _, test := range tests {
		if got := ThemeName(test.raw); got != test.want {
			t.Fatalf("ThemeName(%q) = %q, want %q", test.raw, got, test.want)
		}
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("My Theme"); got != "My Theme.ptt" {
		t.Fatalf("FileName() = %q, want %q", got, "My Theme.ptt")
	}
	if got := FileName(" "); got != "custom.ptt" {
		t.Fatalf("FileName(blank) = %q, want custom.ptt", got)
	}
}
