// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jgen

import (
	"strconv"

	"github.com/creachadair/jgen/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value that DecodeString decodes back to
// src. The contents are escaped and double quotation marks are added.
func Quote(src string) string { return string(AppendString(nil, src)) }

// AppendString appends the quoted encoding of s to dst.
func AppendString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	dst = append(dst, escape.Quote(mem.S(s))...)
	return append(dst, '"')
}

// AppendInt appends the decimal encoding of v to dst.
func AppendInt(dst []byte, v int64) []byte { return strconv.AppendInt(dst, v, 10) }

// AppendBool appends the constant true or false to dst.
func AppendBool(dst []byte, v bool) []byte { return strconv.AppendBool(dst, v) }

// AppendArray appends the encoding of vs to dst, using put to encode each
// element.
func AppendArray[E any](dst []byte, vs []E, put func([]byte, E) []byte) []byte {
	dst = append(dst, '[')
	for i, v := range vs {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = put(dst, v)
	}
	return append(dst, ']')
}
