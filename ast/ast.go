// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a tree of dynamically-typed JSON values, and a decoder
// that constructs such trees from the same input grammar as the typed
// decoders of package jgen.
//
// Use the decoder for members whose shape is not known in advance:
//
//	jgen.Field("extra", ast.Decoder(), func(v *T) *ast.Value { return &v.Extra })
package ast

import (
	"fmt"

	"github.com/creachadair/jgen"
)

// A Value is an arbitrary JSON value. The concrete type is one of Object,
// Array, Bool, Int, or String.
type Value interface {
	// JSON returns the encoding of the value as JSON text.
	JSON() string
}

// An Object is a sequence of key-value members. Keys are not required to be
// unique.
type Object []*Member

// Len reports the number of members of o.
func (o Object) Len() int { return len(o) }

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// JSON satisfies the Value interface.
func (o Object) JSON() string { return string(appendJSON(nil, o)) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
func Field(key string, value Value) *Member { return &Member{Key: key, Value: value} }

// JSON satisfies the Value interface. The encoding of a member is its
// key and value separated by a colon.
func (m *Member) JSON() string { return string(appendJSON(nil, m)) }

// An Array is a sequence of values.
type Array []Value

// Len reports the number of elements of a.
func (a Array) Len() int { return len(a) }

// JSON satisfies the Value interface.
func (a Array) JSON() string { return string(appendJSON(nil, a)) }

// A Bool is the constant true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return string(jgen.AppendBool(nil, bool(b))) }

// An Int is an integer value.
type Int int64

// JSON satisfies the Value interface.
func (z Int) JSON() string { return string(jgen.AppendInt(nil, int64(z))) }

// A String is a string value, with escapes already decoded.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return jgen.Quote(string(s)) }

// ToValue converts a Go value to a Value. It panics if v does not have one
// of the types bool, int, int64, string, []any, or Value.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case bool:
		return Bool(t)
	case int:
		return Int(t)
	case int64:
		return Int(t)
	case string:
		return String(t)
	case []any:
		a := make(Array, len(t))
		for i, e := range t {
			a[i] = ToValue(e)
		}
		return a
	default:
		panic(fmt.Sprintf("ast: cannot convert %T to a value", v))
	}
}

func appendJSON(dst []byte, v Value) []byte {
	switch t := v.(type) {
	case Object:
		dst = append(dst, '{')
		for i, m := range t {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendJSON(dst, m)
		}
		return append(dst, '}')
	case *Member:
		dst = jgen.AppendString(dst, t.Key)
		dst = append(dst, ':')
		return appendJSON(dst, t.Value)
	case Array:
		return jgen.AppendArray(dst, t, appendJSON)
	case Bool:
		return jgen.AppendBool(dst, bool(t))
	case Int:
		return jgen.AppendInt(dst, int64(t))
	case String:
		return jgen.AppendString(dst, string(t))
	default:
		panic(fmt.Sprintf("ast: unknown value type %T", v))
	}
}
