// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jgen

// A ByteBuffer is a growable byte sequence whose capacity doubles when it is
// exhausted. A ByteBuffer backs a string while it is being decoded.
type ByteBuffer struct {
	data []byte
}

// NewByteBuffer constructs an empty buffer with the given initial capacity.
// If size ≤ 0, DefaultBufferSize is used.
func NewByteBuffer(size int) *ByteBuffer {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &ByteBuffer{data: make([]byte, 0, size)}
}

// Push appends ch to the buffer.
func (b *ByteBuffer) Push(ch byte) {
	if len(b.data) == cap(b.data) {
		grown := make([]byte, len(b.data), max(2*cap(b.data), 1))
		copy(grown, b.data)
		b.data = grown
	}
	b.data = append(b.data, ch)
}

// Len reports the number of bytes in the buffer.
func (b *ByteBuffer) Len() int { return len(b.data) }

// Cap reports the current capacity of the buffer.
func (b *ByteBuffer) Cap() int { return cap(b.data) }

// Bytes returns a view of the buffer contents, valid until the next Push or
// Reset.
func (b *ByteBuffer) Bytes() []byte { return b.data }

// String returns a copy of the buffer contents as a string.
func (b *ByteBuffer) String() string { return string(b.data) }

// Reset discards the contents of b, retaining its storage.
func (b *ByteBuffer) Reset() { b.data = b.data[:0] }
