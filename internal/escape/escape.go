// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape handles the escape sequences of decoded JSON strings.
//
// The escape table is deliberately small: \0, \t, \r, and \n map to their
// control characters, and any other escaped byte stands for itself, so that
// \" and \\ decode to a quote and a backslash.
package escape

import "go4.org/mem"

var controlEsc = [...]byte{
	0:    '0',
	'\t': 't',
	'\n': 'n',
	'\r': 'r',
	'"':  '"',
	'\\': '\\',
}

// Unescape returns the byte denoted by the escape sequence \id.
func Unescape(id byte) byte {
	switch id {
	case '0':
		return 0
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case 'n':
		return '\n'
	default:
		return id
	}
}

// Quote encodes src for inclusion in a JSON string, such that applying
// Unescape to each escape sequence of the result recovers src. The enclosing
// quotation marks are not added.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		if int(b) < len(controlEsc) && controlEsc[b] != 0 {
			buf = append(buf, '\\', controlEsc[b])
		} else {
			buf = append(buf, b)
		}
	}
	return buf
}
