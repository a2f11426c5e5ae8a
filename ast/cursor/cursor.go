// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over a tree of decoded values.
package cursor

import (
	"fmt"

	"github.com/creachadair/jgen/ast"
)

// Path applies path to a fresh cursor at v and returns the value reached,
// which must have type T. Path elements are as documented for Cursor.Down.
func Path[T ast.Value](v ast.Value, path ...any) (T, error) {
	c := New(v).Down(path...)
	var zero T
	if err := c.Err(); err != nil {
		return zero, err
	}
	out, ok := c.Value().(T)
	if !ok {
		return zero, fmt.Errorf("value has type %T, want %T", c.Value(), zero)
	}
	return out, nil
}

// A Cursor records a position in the structure of a value.
type Cursor struct {
	root  ast.Value
	trail []ast.Value
	err   error
}

// New constructs a Cursor positioned at root.
func New(root ast.Value) *Cursor { return &Cursor{root: root} }

// Root returns the value c was constructed from.
func (c *Cursor) Root() ast.Value { return c.root }

// AtRoot reports whether c is positioned at its root.
func (c *Cursor) AtRoot() bool { return len(c.trail) == 0 }

// Value returns the value at the current position of c.
func (c *Cursor) Value() ast.Value {
	if c.AtRoot() {
		return c.root
	}
	return c.trail[len(c.trail)-1]
}

// Trail returns the values visited from the root to the current position,
// inclusive.
func (c *Cursor) Trail() []ast.Value {
	return append([]ast.Value{c.root}, c.trail...)
}

// Err returns the error from the most recent call to Down, or nil.
func (c *Cursor) Err() error { return c.err }

// Up moves c to the parent of its current position. It has no effect at the
// root. Up returns c.
func (c *Cursor) Up() *Cursor {
	if n := len(c.trail); n > 0 {
		c.trail = c.trail[:n-1]
	}
	return c
}

// Reset moves c back to its root and clears its error.
func (c *Cursor) Reset() { c.trail = c.trail[:0]; c.err = nil }

// Down moves c along path, starting from its current position, and returns c.
// If an element of path cannot be applied, Down stops at the last position it
// reached and records an error, which is reported by Err.
//
// A string element selects the first member of an object with that key. If
// further elements follow, they apply to the value of the member. A trailing
// nil element steps from a member to its value.
//
// An int element selects an element of an array or a member of an object by
// position. Negative positions count backward from the end.
//
// An element of type func(ast.Value) (ast.Value, error) is called with the
// current value, and its result becomes the new position.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	for _, elt := range path {
		if m, ok := c.Value().(*ast.Member); ok {
			c.trail = append(c.trail, m.Value)
		}
		next, err := step(c.Value(), elt)
		if err != nil {
			c.err = err
			return c
		}
		if next != nil {
			c.trail = append(c.trail, next)
		}
	}
	return c
}

// step applies a single path element to cur. It returns nil, nil for an
// element that does not move the cursor.
func step(cur ast.Value, elt any) (ast.Value, error) {
	switch t := elt.(type) {
	case nil:
		return nil, nil

	case string:
		obj, ok := cur.(ast.Object)
		if !ok {
			return nil, fmt.Errorf("cannot select key %q from %T", t, cur)
		}
		if m := obj.Find(t); m != nil {
			return m, nil
		}
		return nil, fmt.Errorf("key %q not found", t)

	case int:
		switch e := cur.(type) {
		case ast.Array:
			if i, ok := index(len(e), t); ok {
				return e[i], nil
			}
			return nil, fmt.Errorf("array index %d out of range (n=%d)", t, len(e))
		case ast.Object:
			if i, ok := index(len(e), t); ok {
				return e[i], nil
			}
			return nil, fmt.Errorf("object index %d out of range (n=%d)", t, len(e))
		}
		return nil, fmt.Errorf("cannot index %T with %d", cur, t)

	case func(ast.Value) (ast.Value, error):
		return t(cur)
	}
	return nil, fmt.Errorf("invalid path element %T", elt)
}

func index(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
