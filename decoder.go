// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jgen

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// A Decoder decodes values of type T from a Context, and releases values of
// type T that it decoded. The zero Decoder is not usable; use NewDecoder,
// Object, or Array, or one of the scalar decoders.
type Decoder[T any] struct {
	label   string
	decode  func(*Context, string) (T, error)
	release func(*Context, *T)
}

// NewDecoder constructs a decoder with the given default label. The decode
// function is passed the label to use in failure messages. If release is
// nil, values of type T need no release beyond being zeroed.
//
// A decode function must either return a complete value or release
// everything it decoded before reporting an error.
func NewDecoder[T any](label string, decode func(c *Context, label string) (T, error), release func(*Context, *T)) Decoder[T] {
	return Decoder[T]{label: label, decode: decode, release: release}
}

// Label returns the default label of d.
func (d Decoder[T]) Label() string { return d.label }

// Decode decodes a value at the cursor of c. On failure, the zero T is
// returned and the error is also recorded in c.
func (d Decoder[T]) Decode(c *Context) (T, error) { return d.decode(c, d.label) }

// DecodeAs is Decode, with label in place of the default label of d.
func (d Decoder[T]) DecodeAs(c *Context, label string) (T, error) { return d.decode(c, label) }

// Release releases the resources held by *v and sets it to the zero T.
func (d Decoder[T]) Release(c *Context, v *T) {
	if d.release != nil {
		d.release(c, v)
	}
	var zero T
	*v = zero
}

// Decode decodes a complete value of type T from input using d. Apart from
// whitespace, input must contain nothing after the value. On failure, Decode
// returns the zero T and an error of concrete type *Error.
func Decode[T any](input []byte, d Decoder[T], opts *Options) (T, error) {
	c := NewContext(input, opts)
	defer c.Close()

	v, err := d.Decode(c)
	if err == nil {
		c.SkipWhitespace()
		if !c.Done() {
			d.Release(c, &v)
			err = c.failf(UnexpectedToken, "unexpected %q after %s", c.Peek(), d.label)
		}
	}
	if err != nil {
		kind := Invalid
		var derr *Error
		if errors.As(err, &derr) {
			kind = derr.Kind
		}
		Logger().Debug("decode failed",
			zap.String("decoder", d.label),
			zap.Stringer("kind", kind),
			zap.Int("offset", c.pos),
			zap.Error(err),
		)
		var zero T
		return zero, err
	}
	Logger().Debug("decoded",
		zap.String("decoder", d.label),
		zap.Int("bytes", c.pos),
		zap.Int("committed", c.stats.Committed),
		zap.Int("released", c.stats.Released),
	)
	return v, nil
}

// A Member describes one member of an object of type T: its key, whether it
// is required, and how to decode and release its value in place.
type Member[T any] struct {
	key      string
	required bool
	decode   func(c *Context, label string, v *T) error
	release  func(c *Context, v *T)
}

// Key returns the object key of m.
func (m Member[T]) Key() string { return m.key }

// Required reports whether m must be present in every decoded object.
func (m Member[T]) Required() bool { return m.required }

// Field returns a required member with the given key, whose value is decoded
// by d and stored in the field of T selected by ref.
func Field[T, V any](key string, d Decoder[V], ref func(*T) *V) Member[T] {
	return Member[T]{
		key:      key,
		required: true,
		decode: func(c *Context, label string, v *T) error {
			val, err := d.decode(c, label)
			if err != nil {
				return err
			}
			*ref(v) = val
			return nil
		},
		release: func(c *Context, v *T) { d.Release(c, ref(v)) },
	}
}

// Optional is as Field, but the member may be absent.
func Optional[T, V any](key string, d Decoder[V], ref func(*T) *V) Member[T] {
	m := Field(key, d, ref)
	m.required = false
	return m
}

type object[T any] struct {
	label   string
	members []Member[T]
	index   map[string]int
	labels  []string // member labels relative to label
}

// Object returns a decoder for objects of type T having the given members.
// Object panics if two members have the same key.
//
// The decoder rejects keys not listed in members, and requires every member
// created by Field to be present. If a key occurs more than once, the value
// decoded for the earlier occurrence is released and the later one is kept.
// If decoding fails, every member value decoded so far is released.
func Object[T any](label string, members ...Member[T]) Decoder[T] {
	o := &object[T]{
		label:   label,
		members: members,
		index:   make(map[string]int, len(members)),
		labels:  make([]string, len(members)),
	}
	for i, m := range members {
		if _, ok := o.index[m.key]; ok {
			panic(fmt.Sprintf("jgen: duplicate member %q in %s", m.key, label))
		}
		o.index[m.key] = i
		o.labels[i] = label + "." + m.key
	}
	return NewDecoder(label, o.decode, o.release)
}

func (o *object[T]) decode(c *Context, label string) (T, error) {
	var hold T
	if err := c.ExpectChar('{', label); err != nil {
		return hold, err
	}
	c.Advance()

	found := make([]bool, len(o.members))
	if err := o.decodeMembers(c, label, &hold, found); err != nil {
		for i, ok := range found {
			if ok {
				o.members[i].release(c, &hold)
				c.stats.Released++
			}
		}
		var zero T
		return zero, err
	}
	for _, ok := range found {
		if ok {
			c.stats.Committed++
		}
	}
	return hold, nil
}

// decodeMembers decodes the members of an object into hold, up to and
// including the closing brace, and marks each member decoded in found.
func (o *object[T]) decodeMembers(c *Context, label string, hold *T, found []bool) error {
	if err := c.ExpectNotDone(label); err != nil {
		return err
	}
	if c.Peek() == '}' {
		c.Advance()
		return o.checkMembers(c, label, found)
	}
	for {
		key, err := DecodeString(c, label)
		if err != nil {
			return err
		}
		if err := c.ExpectChar(':', label); err != nil {
			return err
		}
		c.Advance()

		i, ok := o.index[key]
		if !ok {
			return c.failf(UnknownKey, "got invalid key %q while parsing %s", key, label)
		}
		m := o.members[i]
		if found[i] {
			m.release(c, hold)
			c.stats.Released++
			found[i] = false
		}
		if err := m.decode(c, o.memberLabel(label, i), hold); err != nil {
			return err
		}
		found[i] = true
		c.stats.Acquired++

		if err := c.ExpectEitherChar(',', '}', label); err != nil {
			return err
		}
		if c.Peek() == '}' {
			c.Advance()
			break
		}
		c.Advance()
	}
	return o.checkMembers(c, label, found)
}

func (o *object[T]) checkMembers(c *Context, label string, found []bool) error {
	var missing []string
	for i, m := range o.members {
		if m.required && !found[i] {
			missing = append(missing, m.key)
		}
	}
	if len(missing) != 0 {
		return c.failf(MissingFields, "missing fields while parsing %s: %s", label, strings.Join(missing, ", "))
	}
	return nil
}

func (o *object[T]) memberLabel(label string, i int) string {
	if label == o.label {
		return o.labels[i]
	}
	return label + "." + o.members[i].key
}

func (o *object[T]) release(c *Context, v *T) {
	for _, m := range o.members {
		m.release(c, v)
	}
}

type array[E any] struct {
	elem Decoder[E]
}

// Array returns a decoder for arrays whose elements are decoded by elem.
// An empty array decodes as a nil slice. If decoding fails, every element
// decoded so far is released.
func Array[E any](label string, elem Decoder[E]) Decoder[[]E] {
	a := array[E]{elem: elem}
	return NewDecoder(label, a.decode, a.release)
}

func (a array[E]) decode(c *Context, label string) ([]E, error) {
	if err := c.ExpectChar('[', label); err != nil {
		return nil, err
	}
	c.Advance()
	if err := c.ExpectNotDone(label); err != nil {
		return nil, err
	}
	if c.Peek() == ']' {
		c.Advance()
		return nil, nil
	}

	out := make([]E, 0, c.opts.arraySize())
	for {
		if len(out) == cap(out) {
			grown := make([]E, len(out), 2*cap(out))
			copy(grown, out)
			out = grown
		}
		v, err := a.elem.decode(c, label)
		if err != nil {
			a.drop(c, out)
			return nil, err
		}
		out = append(out, v)
		c.stats.Acquired++

		if err := c.ExpectEitherChar(',', ']', label); err != nil {
			a.drop(c, out)
			return nil, err
		}
		if c.Peek() == ']' {
			c.Advance()
			break
		}
		c.Advance()
	}
	c.stats.Committed += len(out)
	return out, nil
}

// drop releases the elements of a partially-decoded array.
func (a array[E]) drop(c *Context, out []E) {
	for i := range out {
		a.elem.Release(c, &out[i])
		c.stats.Released++
	}
}

func (a array[E]) release(c *Context, v *[]E) {
	for i := range *v {
		a.elem.Release(c, &(*v)[i])
	}
}
