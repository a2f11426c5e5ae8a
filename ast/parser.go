// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import "github.com/creachadair/jgen"

// Decoder returns a decoder for arbitrary values. Objects may have any keys,
// in any number, and repeated keys are all retained in order.
func Decoder() jgen.Decoder[Value] { return jgen.NewDecoder("value", decodeValue, nil) }

// Parse decodes a single complete value from input.
func Parse(input []byte) (Value, error) { return jgen.Decode(input, Decoder(), nil) }

func decodeValue(c *jgen.Context, label string) (Value, error) {
	if err := c.ExpectNotDone(label); err != nil {
		return nil, err
	}
	switch c.Peek() {
	case '{':
		return decodeObject(c, label)
	case '[':
		return decodeArray(c, label)
	case '"':
		s, err := jgen.DecodeString(c, label)
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case 't', 'f':
		b, err := jgen.DecodeBool(c, label)
		if err != nil {
			return nil, err
		}
		return Bool(b), nil
	default:
		z, err := jgen.DecodeInt(c, label)
		if err != nil {
			return nil, err
		}
		return Int(z), nil
	}
}

// decodeObject consumes a complete object.
// Precondition: the cursor is at "{".
func decodeObject(c *jgen.Context, label string) (Value, error) {
	c.Advance()
	if err := c.ExpectNotDone(label); err != nil {
		return nil, err
	}
	obj := Object{}
	if c.Peek() == '}' {
		c.Advance()
		return obj, nil
	}
	for {
		key, err := jgen.DecodeString(c, label)
		if err != nil {
			return nil, err
		}
		if err := c.ExpectChar(':', label); err != nil {
			return nil, err
		}
		c.Advance()
		v, err := decodeValue(c, label+"."+key)
		if err != nil {
			return nil, err
		}
		obj = append(obj, Field(key, v))

		if err := c.ExpectEitherChar(',', '}', label); err != nil {
			return nil, err
		}
		if c.Peek() == '}' {
			c.Advance()
			return obj, nil
		}
		c.Advance()
	}
}

// decodeArray consumes a complete array.
// Precondition: the cursor is at "[".
func decodeArray(c *jgen.Context, label string) (Value, error) {
	c.Advance()
	if err := c.ExpectNotDone(label); err != nil {
		return nil, err
	}
	arr := Array{}
	if c.Peek() == ']' {
		c.Advance()
		return arr, nil
	}
	for {
		v, err := decodeValue(c, label)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)

		if err := c.ExpectEitherChar(',', ']', label); err != nil {
			return nil, err
		}
		if c.Peek() == ']' {
			c.Advance()
			return arr, nil
		}
		c.Advance()
	}
}
