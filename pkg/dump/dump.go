// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dump reads and writes hardware configuration tables stored in
// files, such as the ones captured from debugfs.
//
// A dump is the raw table, optionally compressed. The compression is picked
// by file extension (see compression.CompressorFromExtension).
package dump

import (
	"fmt"
	"os"

	"github.com/linuxboot/hwconfig/pkg/compression"
	"github.com/linuxboot/hwconfig/pkg/klv"
)

// ErrInvalidDump means a dump could not be decoded into a valid table.
type ErrInvalidDump struct {
	Path string
	Err  error
}

func (err *ErrInvalidDump) Error() string {
	return fmt.Sprintf("invalid dump '%s': %v", err.Path, err.Err)
}

func (err *ErrInvalidDump) Unwrap() error {
	return err.Err
}

// Decode decompresses data with c (nil means uncompressed) and validates
// the resulting table.
func Decode(data []byte, c compression.Compressor) ([]byte, error) {
	blob, err := decompress(data, c)
	if err != nil {
		return nil, err
	}
	if err := klv.Validate(blob); err != nil {
		return nil, err
	}
	return blob, nil
}

func decompress(data []byte, c compression.Compressor) ([]byte, error) {
	if c == nil {
		return data, nil
	}
	blob, err := c.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("unable to decompress %s data: %w", c.Name(), err)
	}
	return blob, nil
}

// Encode validates the table and compresses it with c (nil means
// uncompressed).
func Encode(blob []byte, c compression.Compressor) ([]byte, error) {
	if err := klv.Validate(blob); err != nil {
		return nil, err
	}
	if c == nil {
		return blob, nil
	}
	data, err := c.Encode(blob)
	if err != nil {
		return nil, fmt.Errorf("unable to compress with %s: %w", c.Name(), err)
	}
	return data, nil
}

// Read reads a dump file and returns the table without validating it.
func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	blob, err := decompress(data, compression.CompressorFromExtension(path))
	if err != nil {
		return nil, &ErrInvalidDump{Path: path, Err: err}
	}
	return blob, nil
}

// Load reads a dump file and returns the validated table.
func Load(path string) ([]byte, error) {
	blob, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := klv.Validate(blob); err != nil {
		return nil, &ErrInvalidDump{Path: path, Err: err}
	}
	return blob, nil
}

// Save writes a table into a dump file compressed according to its
// extension. Invalid tables are refused.
func Save(path string, blob []byte) error {
	return SaveWith(path, blob, compression.CompressorFromExtension(path))
}

// SaveWith is Save with an explicit compressor (nil means uncompressed).
func SaveWith(path string, blob []byte, c compression.Compressor) error {
	data, err := Encode(blob, c)
	if err != nil {
		return &ErrInvalidDump{Path: path, Err: err}
	}
	return os.WriteFile(path, data, 0o644)
}
