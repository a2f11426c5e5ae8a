// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jgen

import "fmt"

// ErrorSize is the capacity in bytes of the error slot of a Context. Failure
// messages longer than this are truncated.
const ErrorSize = 128

// Kind classifies a decoding failure.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid         Kind = iota // not a valid kind
	EndOfInput                  // input ended while a token was expected
	UnexpectedToken             // the byte at the cursor was not acceptable
	UnknownKey                  // an object key not known to the decoder
	MissingFields               // an object closed before all required fields
)

var kindStr = [...]string{
	Invalid:         "invalid",
	EndOfInput:      "end of input",
	UnexpectedToken: "unexpected token",
	UnknownKey:      "unknown key",
	MissingFields:   "missing fields",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[k]
}

// Error is the concrete type of errors reported by decoders.
type Error struct {
	Kind     Kind
	Offset   int     // byte offset of the cursor at the point of failure
	Location LineCol // line and column of Offset
	Message  string  // at most ErrorSize bytes
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Message, e.Offset)
}

// Is reports whether target is an *Error of the same kind, so that
//
//	errors.Is(err, &jgen.Error{Kind: jgen.UnknownKey})
//
// matches any unknown-key failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}
