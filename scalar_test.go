// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jgen_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/creachadair/jgen"
	"github.com/google/go-cmp/cmp"
)

func checkKind(t *testing.T, err error, want jgen.Kind) {
	t.Helper()
	var e *jgen.Error
	if !errors.As(err, &e) {
		t.Fatalf("Got error %v, want *jgen.Error of kind %v", err, want)
	} else if e.Kind != want {
		t.Errorf("Got %v (%v), want kind %v", e.Kind, err, want)
	}
}

func TestDecodeBool(t *testing.T) {
	tests := []struct {
		input string
		want  bool
		pos   int
		kind  jgen.Kind // zero if success is expected
	}{
		{"true", true, 4, 0},
		{"false", false, 5, 0},
		{"  true,", true, 6, 0},
		{"falsey", false, 5, 0},

		{"", false, 0, jgen.EndOfInput},
		{"tru", false, 3, jgen.EndOfInput},
		{"t rue", false, 1, jgen.UnexpectedToken},
		{"fals", false, 4, jgen.EndOfInput},
		{"null", false, 0, jgen.UnexpectedToken},
		{"tree", false, 2, jgen.UnexpectedToken},
		{"1", false, 0, jgen.UnexpectedToken},
	}
	for _, tc := range tests {
		c := newContext(t, tc.input, nil)
		got, err := jgen.DecodeBool(c, "bool")
		if tc.kind != 0 {
			checkKind(t, err, tc.kind)
		} else if err != nil {
			t.Errorf("DecodeBool(%#q): unexpected error: %v", tc.input, err)
		} else if got != tc.want {
			t.Errorf("DecodeBool(%#q): got %v, want %v", tc.input, got, tc.want)
		}
		if c.Pos() != tc.pos {
			t.Errorf("DecodeBool(%#q): pos=%d, want %d", tc.input, c.Pos(), tc.pos)
		}
	}
}

func TestDecodeInt(t *testing.T) {
	tests := []struct {
		input string
		want  int64
		pos   int
		kind  jgen.Kind
	}{
		{"0", 0, 1, 0},
		{"7", 7, 1, 0},
		{"450", 450, 3, 0},
		{" 21041 ", 21041, 6, 0},
		{"-15,", -15, 3, 0},
		{"-0", 0, 2, 0},
		{"01", 0, 1, 0}, // the leading zero is a complete number
		{"0999", 0, 1, 0},
		{"12ab", 12, 2, 0},
		{"9223372036854775807", math.MaxInt64, 19, 0},
		{"-9223372036854775808", math.MinInt64, 20, 0},
		{"9223372036854775808", math.MinInt64, 19, 0}, // wraps

		{"", 0, 0, jgen.EndOfInput},
		{"-", 0, 1, jgen.EndOfInput},
		{"x", 0, 0, jgen.UnexpectedToken},
		{"-x", 0, 1, jgen.UnexpectedToken},
		{"--1", 0, 1, jgen.UnexpectedToken},
	}
	for _, tc := range tests {
		c := newContext(t, tc.input, nil)
		got, err := jgen.DecodeInt(c, "int")
		if tc.kind != 0 {
			checkKind(t, err, tc.kind)
		} else if err != nil {
			t.Errorf("DecodeInt(%#q): unexpected error: %v", tc.input, err)
		} else if got != tc.want {
			t.Errorf("DecodeInt(%#q): got %d, want %d", tc.input, got, tc.want)
		}
		if c.Pos() != tc.pos {
			t.Errorf("DecodeInt(%#q): pos=%d, want %d", tc.input, c.Pos(), tc.pos)
		}
	}

	t.Run("Sequence", func(t *testing.T) {
		c := newContext(t, "450 21041 57923 0999", nil)
		var got []int64
		for !c.Done() {
			v, err := jgen.DecodeInt(c, "int")
			if err != nil {
				t.Fatalf("DecodeInt at %d: %v", c.Pos(), err)
			}
			got = append(got, v)
		}
		want := []int64{450, 21041, 57923, 0, 999}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Values (-want, +got):\n%s", diff)
		}
	})

	t.Run("Strict", func(t *testing.T) {
		opts := &jgen.Options{StrictIntegers: true}
		for _, input := range []string{"01", "-007"} {
			c := newContext(t, input, opts)
			_, err := jgen.DecodeInt(c, "int")
			checkKind(t, err, jgen.UnexpectedToken)
		}
		for _, input := range []string{"0", "0,", "-0]", "10"} {
			c := newContext(t, input, opts)
			if _, err := jgen.DecodeInt(c, "int"); err != nil {
				t.Errorf("DecodeInt(%#q): unexpected error: %v", input, err)
			}
		}
	})
}

func TestDecodeString(t *testing.T) {
	tests := []struct {
		input string
		want  string
		kind  jgen.Kind
	}{
		{`""`, "", 0},
		{`"hello world!"`, "hello world!", 0},
		{`  "a b c"`, "a b c", 0},
		{`"a\tb\rc\nd"`, "a\tb\rc\nd", 0},
		{`"nul\0byte"`, "nul\x00byte", 0},
		{`"say \"hi\""`, `say "hi"`, 0},
		{`"back\\slash"`, `back\slash`, 0},
		{`"\u0041\/\b"`, "u0041/b", 0}, // unknown escapes pass through
		{"\"raw\ttab\"", "raw\ttab", 0},
		{`"héllo"`, "héllo", 0},

		{``, "", jgen.EndOfInput},
		{`"unterminated`, "", jgen.EndOfInput},
		{`"trailing escape\`, "", jgen.EndOfInput},
		{`"\"`, "", jgen.EndOfInput},
		{`hello`, "", jgen.UnexpectedToken},
	}
	for _, tc := range tests {
		c := newContext(t, tc.input, nil)
		got, err := jgen.DecodeString(c, "string")
		if tc.kind != 0 {
			checkKind(t, err, tc.kind)
		} else if err != nil {
			t.Errorf("DecodeString(%#q): unexpected error: %v", tc.input, err)
		} else if got != tc.want {
			t.Errorf("DecodeString(%#q): got %#q, want %#q", tc.input, got, tc.want)
		}
		if n := c.Stats().Buffers; n != 0 {
			t.Errorf("DecodeString(%#q): %d buffers not returned", tc.input, n)
		}
	}

	t.Run("Long", func(t *testing.T) {
		want := strings.Repeat("0123456789", 50)
		c := newContext(t, `"`+want+`"`, &jgen.Options{BufferSize: 4})
		got, err := jgen.DecodeString(c, "string")
		if err != nil {
			t.Fatalf("DecodeString: unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("DecodeString: got %d bytes, want %d", len(got), len(want))
		}
	})
}
