// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jgen

import (
	"fmt"

	"github.com/creachadair/mds/mstr"
)

// A Context is the state of a single decoding attempt: the input, a cursor
// into it, and a bounded slot for the most recent failure message.
//
// A Context is not safe for concurrent use, and is used for exactly one
// decode. The cursor only moves forward.
type Context struct {
	input []byte
	pos   int
	opts  *Options

	errbuf []byte // error slot, capacity ErrorSize; nil once closed
	err    *Error

	free  []*ByteBuffer // buffers returned to the pool
	stats Stats
}

// Stats records the ownership accounting of a Context. After any decoder
// returns, Acquired == Released + Committed and Buffers == 0.
type Stats struct {
	Acquired  int // holders filled by a successful sub-decode
	Released  int // holders released before reaching a result
	Committed int // holders moved into a result
	Buffers   int // string buffers currently borrowed from the pool
}

// NewContext constructs a context to decode input. The context borrows input
// and does not modify it; the caller must not modify it either until the
// context is closed. If opts == nil, default options are used.
func NewContext(input []byte, opts *Options) *Context {
	return &Context{
		input:  input,
		opts:   opts,
		errbuf: make([]byte, 0, ErrorSize),
	}
}

// Close releases the resources held by c. It panics if c is already closed.
func (c *Context) Close() {
	c.checkOpen()
	c.errbuf = nil
	c.free = nil
}

// Pos reports the current offset of the cursor.
func (c *Context) Pos() int { return c.pos }

// Len reports the length of the input.
func (c *Context) Len() int { return len(c.input) }

// Done reports whether the cursor is at the end of the input.
func (c *Context) Done() bool { return c.pos >= len(c.input) }

// Peek returns the byte at the cursor. The cursor must not be at the end of
// the input.
func (c *Context) Peek() byte { return c.input[c.pos] }

// Advance moves the cursor forward one byte, unless it is at the end of the
// input.
func (c *Context) Advance() {
	if c.pos < len(c.input) {
		c.pos++
	}
}

// Err returns the most recent failure recorded by c, or nil.
func (c *Context) Err() *Error { return c.err }

// Stats returns the current ownership accounting of c.
func (c *Context) Stats() Stats { return c.stats }

// SkipWhitespace advances the cursor past any spaces, tabs, carriage returns,
// and line feeds.
func (c *Context) SkipWhitespace() {
	c.checkOpen()
	for c.pos < len(c.input) && isSpace(c.input[c.pos]) {
		c.pos++
	}
}

// ExpectNotDone skips whitespace and reports an EndOfInput error mentioning
// label if no input remains.
func (c *Context) ExpectNotDone(label string) error {
	c.SkipWhitespace()
	if c.Done() {
		return c.failf(EndOfInput, "got EOF while parsing %s", label)
	}
	return nil
}

// ExpectChar skips whitespace and reports an error mentioning label unless
// the byte at the cursor is want. The cursor is not advanced past want.
func (c *Context) ExpectChar(want byte, label string) error {
	c.SkipWhitespace()
	return c.expectByte(want, label)
}

// ExpectEitherChar skips whitespace and reports an error mentioning label
// unless the byte at the cursor is a or b. The cursor is not advanced.
func (c *Context) ExpectEitherChar(a, b byte, label string) error {
	c.SkipWhitespace()
	if c.Done() {
		return c.failf(EndOfInput, "expected %q or %q while parsing %s, got EOF", a, b, label)
	}
	if ch := c.Peek(); ch != a && ch != b {
		return c.failf(UnexpectedToken, "expected %q or %q while parsing %s, got %q", a, b, label, ch)
	}
	return nil
}

// expectByte is ExpectChar without skipping whitespace, for checking bytes
// inside a token.
func (c *Context) expectByte(want byte, label string) error {
	if c.Done() {
		return c.failf(EndOfInput, "expected %q while parsing %s, got EOF", want, label)
	}
	if ch := c.Peek(); ch != want {
		return c.failf(UnexpectedToken, "expected %q while parsing %s, got %q", want, label, ch)
	}
	return nil
}

// Failf records a failure of the given kind at the cursor and returns it.
// The formatted message is truncated to ErrorSize bytes. Custom decoders use
// Failf to report errors in the same form as the built-in ones.
func (c *Context) Failf(kind Kind, msg string, args ...any) error {
	return c.failf(kind, msg, args...)
}

func (c *Context) failf(kind Kind, msg string, args ...any) error {
	c.checkOpen()
	text := mstr.Trunc(fmt.Sprintf(msg, args...), ErrorSize)
	c.errbuf = append(c.errbuf[:0], text...)
	c.err = &Error{
		Kind:     kind,
		Offset:   c.pos,
		Location: locate(c.input, c.pos),
		Message:  string(c.errbuf),
	}
	return c.err
}

func (c *Context) checkOpen() {
	if c.errbuf == nil {
		panic("jgen: use of closed context")
	}
}

// getBuffer borrows an empty string buffer from the pool.
func (c *Context) getBuffer() *ByteBuffer {
	c.checkOpen()
	c.stats.Buffers++
	if n := len(c.free); n > 0 {
		b := c.free[n-1]
		c.free = c.free[:n-1]
		return b
	}
	return NewByteBuffer(c.opts.bufferSize())
}

// putBuffer returns b to the pool.
func (c *Context) putBuffer(b *ByteBuffer) {
	c.stats.Buffers--
	b.Reset()
	c.free = append(c.free, b)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }
