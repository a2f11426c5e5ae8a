// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"testing"

	"github.com/creachadair/jgen/internal/escape"
	"go4.org/mem"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"abc", "abc"},
		{"a\tb\r\nc", `a\tb\r\nc`},
		{"\x00", `\0`},
		{`say "hi"`, `say \"hi\"`},
		{`a\b`, `a\\b`},
		{"\x01\x7f", "\x01\x7f"},
		{"héllo", "héllo"},
	}
	for _, tc := range tests {
		got := string(escape.Quote(mem.S(tc.input)))
		if got != tc.want {
			t.Errorf("Quote(%#q): got %#q, want %#q", tc.input, got, tc.want)
		}
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		id, want byte
	}{
		{'0', 0}, {'t', '\t'}, {'r', '\r'}, {'n', '\n'},
		{'"', '"'}, {'\\', '\\'}, {'/', '/'}, {'b', 'b'}, {'u', 'u'},
	}
	for _, tc := range tests {
		if got := escape.Unescape(tc.id); got != tc.want {
			t.Errorf("Unescape(%q): got %q, want %q", tc.id, got, tc.want)
		}
	}
}
