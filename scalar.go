// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jgen

import (
	"github.com/creachadair/jgen/internal/escape"

	"go4.org/mem"
)

// Decoders for the scalar types.
var (
	Bool   = NewDecoder("bool", DecodeBool, nil)
	Int    = NewDecoder("int", DecodeInt, nil)
	String = NewDecoder("string", DecodeString, nil)
)

var (
	trueLit  = mem.S("true")
	falseLit = mem.S("false")
)

// DecodeBool decodes the constant true or false at the cursor. Whitespace is
// skipped before the constant but not within it.
func DecodeBool(c *Context, label string) (bool, error) {
	if err := c.ExpectEitherChar('t', 'f', label); err != nil {
		return false, err
	}
	value := c.Peek() == 't'
	want := falseLit
	if value {
		want = trueLit
	}
	for i := 0; i < want.Len(); i++ {
		if err := c.expectByte(want.At(i), label); err != nil {
			return false, err
		}
		c.Advance()
	}
	return value, nil
}

// DecodeInt decodes a signed integer of the form -?[0-9]+ at the cursor.
// Overflow is not detected; the result wraps.
//
// A leading zero is a complete number: for input "01" DecodeInt returns 0 and
// leaves the cursor at "1". If the context has StrictIntegers set, that case
// is reported as an error instead.
func DecodeInt(c *Context, label string) (int64, error) {
	if err := c.ExpectNotDone(label); err != nil {
		return 0, err
	}
	neg := c.Peek() == '-'
	if neg {
		c.Advance()
	}

	var out int64
	var nd int
	for !c.Done() {
		ch := c.Peek()
		if !isDigit(ch) {
			break
		}
		c.Advance()
		out = out*10 + int64(ch-'0')
		nd++

		if ch == '0' && nd == 1 {
			if c.opts.strictIntegers() && !c.Done() && isDigit(c.Peek()) {
				return 0, c.failf(UnexpectedToken, "extra leading zeroes while parsing %s", label)
			}
			break
		}
	}
	if nd == 0 {
		if c.Done() {
			return 0, c.failf(EndOfInput, "expected digit while parsing %s, got EOF", label)
		}
		return 0, c.failf(UnexpectedToken, "expected digit while parsing %s, got %q", label, c.Peek())
	}
	if neg {
		out = -out
	}
	return out, nil
}

type stringState byte

const (
	parsing stringState = iota
	escaping
	done
)

// DecodeString decodes a quoted string at the cursor. Within the string a
// backslash escapes the following byte: \0, \t, \r, and \n denote control
// characters, and any other escaped byte stands for itself. The result is a
// copy; the buffer used to collect it is returned to the context pool.
func DecodeString(c *Context, label string) (string, error) {
	if err := c.ExpectChar('"', label); err != nil {
		return "", err
	}
	c.Advance()

	buf := c.getBuffer()
	defer c.putBuffer(buf)

	state := parsing
	for state != done {
		if c.Done() {
			return "", c.failf(EndOfInput, "got EOF while parsing %s", label)
		}
		ch := c.Peek()
		c.Advance()

		switch {
		case state == escaping:
			buf.Push(escape.Unescape(ch))
			state = parsing
		case ch == '\\':
			state = escaping
		case ch == '"':
			state = done
		default:
			buf.Push(ch)
		}
	}
	return buf.String(), nil
}
