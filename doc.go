// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jgen implements a small JSON decoding runtime for per-type
// decoders of the kind a schema compiler would generate.
//
// # Contexts
//
// A Context holds the input, a cursor, and a bounded error slot. Construct a
// context immediately before decoding and close it immediately after,
// whatever the outcome:
//
//	c := jgen.NewContext(input, nil)
//	defer c.Close()
//	v, err := dec.Decode(c)
//
// The Expect methods skip whitespace and then check the byte at the cursor
// without consuming it. Advancing past a checked byte is the caller's job:
//
//	if err := c.ExpectChar('{', "invitation"); err != nil {
//	   return err
//	}
//	c.Advance()
//
// # Decoders
//
// A Decoder pairs a function that decodes a value of type T with a function
// that releases one. The scalar decoders Bool, Int, and String are provided;
// object and array decoders are assembled from them:
//
//	yes := jgen.Object("invitation.yes",
//	   jgen.Field("no", jgen.String, func(v *Yes) *string { return &v.No }),
//	)
//	inv := jgen.Object("invitation",
//	   jgen.Field("yes", yes, func(v *Inv) *Yes { return &v.Yes }),
//	   jgen.Field("names", jgen.Array("invitation.names", jgen.String),
//	      func(v *Inv) *[]string { return &v.Names }),
//	)
//
// An object decoder rejects unknown keys, requires every member created by
// Field, and on a duplicate key releases the earlier value before storing the
// later one. If decoding fails at any point, every value decoded so far is
// released and nothing is returned to the caller.
//
// The Decode function wraps the whole lifecycle for a single input:
//
//	v, err := jgen.Decode(input, inv, nil)
//
// In case of failure, the error has concrete type [*Error], whose Kind is one
// of EndOfInput, UnexpectedToken, UnknownKey, or MissingFields.
package jgen
