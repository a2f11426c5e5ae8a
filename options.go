// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jgen

// Default sizes used when Options does not override them.
const (
	DefaultBufferSize = 64 // initial capacity of a string buffer
	DefaultArraySize  = 48 // initial capacity of a decoded array

	MaxBufferSize = 1 << 20 // largest initial string buffer capacity
	MaxArraySize  = 1 << 16 // largest initial array capacity
)

// Options control the behavior of a Context. A nil *Options is ready for
// use and selects the defaults.
type Options struct {
	// BufferSize is the initial capacity in bytes of the buffers used to
	// decode strings. If BufferSize ≤ 0, DefaultBufferSize is used.
	// Values above MaxBufferSize are reduced to MaxBufferSize.
	BufferSize int `yaml:"buffer_size"`

	// ArraySize is the initial element capacity of a non-empty decoded array.
	// If ArraySize ≤ 0, DefaultArraySize is used. Values above MaxArraySize
	// are reduced to MaxArraySize.
	ArraySize int `yaml:"array_size"`

	// StrictIntegers, if true, makes a digit following a leading zero an
	// error. By default the zero is a complete number and the following digit
	// is left at the cursor.
	StrictIntegers bool `yaml:"strict_integers"`
}

func (o *Options) bufferSize() int {
	if o == nil || o.BufferSize <= 0 {
		return DefaultBufferSize
	}
	return min(o.BufferSize, MaxBufferSize)
}

func (o *Options) arraySize() int {
	if o == nil || o.ArraySize <= 0 {
		return DefaultArraySize
	}
	return min(o.ArraySize, MaxArraySize)
}

func (o *Options) strictIntegers() bool { return o != nil && o.StrictIntegers }
