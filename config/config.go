// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package config loads decoder options from configuration files.
//
// A configuration is an object with any of the following keys:
//
//	buffer_size      initial capacity of string buffers (int, at most jgen.MaxBufferSize)
//	array_size       initial capacity of decoded arrays (int, at most jgen.MaxArraySize)
//	strict_integers  reject digits after a leading zero (bool)
//
// Files ending in .yaml or .yml are read as YAML. All other files are read
// as HuJSON, which permits comments and trailing commas.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/creachadair/jgen"
	"github.com/tailscale/hujson"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type settings struct {
	BufferSize     int64
	ArraySize      int64
	StrictIntegers bool
}

var settingsDecoder = jgen.Object("config",
	jgen.Optional("buffer_size", jgen.Int, func(s *settings) *int64 { return &s.BufferSize }),
	jgen.Optional("array_size", jgen.Int, func(s *settings) *int64 { return &s.ArraySize }),
	jgen.Optional("strict_integers", jgen.Bool, func(s *settings) *bool { return &s.StrictIntegers }),
)

// Parse parses a HuJSON configuration from data.
func Parse(data []byte) (*jgen.Options, error) {
	std, err := hujson.Standardize(bytes.Clone(data))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	s, err := jgen.Decode(std, settingsDecoder, nil)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := checkSize("buffer_size", s.BufferSize, jgen.MaxBufferSize); err != nil {
		return nil, err
	}
	if err := checkSize("array_size", s.ArraySize, jgen.MaxArraySize); err != nil {
		return nil, err
	}
	return &jgen.Options{
		BufferSize:     int(s.BufferSize),
		ArraySize:      int(s.ArraySize),
		StrictIntegers: s.StrictIntegers,
	}, nil
}

// ParseYAML parses a YAML configuration from data. Unknown keys are
// reported as errors. An empty document yields the default options.
func ParseYAML(data []byte) (*jgen.Options, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	opts := new(jgen.Options)
	if err := dec.Decode(opts); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := checkSize("buffer_size", int64(opts.BufferSize), jgen.MaxBufferSize); err != nil {
		return nil, err
	}
	if err := checkSize("array_size", int64(opts.ArraySize), jgen.MaxArraySize); err != nil {
		return nil, err
	}
	return opts, nil
}

// checkSize reports an error if v exceeds limit. Non-positive values select
// the default and are accepted.
func checkSize(key string, v int64, limit int) error {
	if v > int64(limit) {
		return fmt.Errorf("config: %s %d exceeds maximum %d", key, v, limit)
	}
	return nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (*jgen.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var opts *jgen.Options
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		opts, err = ParseYAML(data)
	default:
		opts, err = Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", path, err)
	}
	jgen.Logger().Debug("loaded config",
		zap.String("path", path),
		zap.Int("buffer_size", opts.BufferSize),
		zap.Int("array_size", opts.ArraySize),
		zap.Bool("strict_integers", opts.StrictIntegers),
	)
	return opts, nil
}
