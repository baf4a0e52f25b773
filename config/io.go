// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/glscene/base/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decoder is an interface for standard decoder types
type Decoder interface {
	// Decode decodes from io.Reader specified at creation
	Decode(v any) error
}

// Encoder is an interface for standard encoder types
type Encoder interface {
	// Encode encodes to io.Writer specified at creation
	Encode(v any) error
}

// DecoderFunc is a function that creates a new Decoder for given reader
type DecoderFunc func(r io.Reader) Decoder

// EncoderFunc is a function that creates a new Encoder for given writer
type EncoderFunc func(w io.Writer) Encoder

// NewDecoderFunc returns a DecoderFunc for a specific Decoder type
func NewDecoderFunc[T Decoder](f func(r io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return f(r) }
}

// NewEncoderFunc returns an EncoderFunc for a specific Encoder type
func NewEncoderFunc[T Encoder](f func(w io.Writer) T) EncoderFunc {
	return func(w io.Writer) Encoder { return f(w) }
}

// The decoders reject unknown keys.
var (
	tomlDecoder = func(r io.Reader) Decoder {
		d := toml.NewDecoder(r)
		d.DisallowUnknownFields()
		return d
	}
	tomlEncoder = NewEncoderFunc(toml.NewEncoder)

	yamlDecoder = func(r io.Reader) Decoder {
		d := yaml.NewDecoder(r)
		d.KnownFields(true)
		return d
	}
	yamlEncoder = NewEncoderFunc(func(w io.Writer) *yamlDocEncoder { return &yamlDocEncoder{w: w} })
)

// yamlDocEncoder encodes one complete YAML document per Encode call.
type yamlDocEncoder struct {
	w io.Writer
}

func (e *yamlDocEncoder) Encode(v any) error {
	enc := yaml.NewEncoder(e.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// codecs returns the decoder and encoder for the format of the given
// file name extension: .toml, or .yaml / .yml.
func codecs(filename string) (DecoderFunc, EncoderFunc, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return tomlDecoder, tomlEncoder, nil
	case ".yaml", ".yml":
		return yamlDecoder, yamlEncoder, nil
	}
	return nil, nil, fmt.Errorf("config: unsupported file type %q", filename)
}

// Open returns the configuration read from the given TOML or YAML file,
// with fields not set in the file keeping their [Default] values.
// The result is validated.
func Open(filename string) (*Config, error) {
	c := Default()
	if err := c.Open(filename); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return c, nil
}

// Open reads the config from the given TOML or YAML file,
// overwriting only the fields set in the file.
func (c *Config) Open(filename string) error {
	dec, _, err := codecs(filename)
	if err != nil {
		return err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return c.Read(bufio.NewReader(fp), dec)
}

// Read reads the config from the given reader using the given [DecoderFunc].
func (c *Config) Read(r io.Reader, f DecoderFunc) error {
	if err := f(r).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Save writes the config to the given TOML or YAML file.
func (c *Config) Save(filename string) error {
	_, enc, err := codecs(filename)
	if err != nil {
		return err
	}
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := c.Write(bw, enc); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the config to the given writer using the given [EncoderFunc].
func (c *Config) Write(w io.Writer, f EncoderFunc) error {
	return f(w).Encode(c)
}
