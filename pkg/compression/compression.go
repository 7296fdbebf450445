// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compression implements the compression schemes used for stored
// hardware configuration dumps.
package compression

import (
	"path/filepath"
	"strings"
)

// Compressor defines a single compression scheme (such as XZ).
type Compressor interface {
	// Name is typically the name of a class.
	Name() string

	// Decode and Encode obey "x == Decode(Encode(x))".
	Decode(encodedData []byte) ([]byte, error)
	Encode(decodedData []byte) ([]byte, error)
}

var byExtension = map[string]Compressor{
	".xz":  &XZ{},
	".lz4": &LZ4{},
	".zst": &Zstd{},
}

// CompressorFromExtension returns a Compressor for a file name based on its
// extension, or nil if the file is not compressed.
func CompressorFromExtension(path string) Compressor {
	return byExtension[strings.ToLower(filepath.Ext(path))]
}

// CompressorFromName returns a Compressor by its name (case-insensitive), or
// nil if there is none.
func CompressorFromName(name string) Compressor {
	for _, c := range byExtension {
		if strings.EqualFold(c.Name(), name) {
			return c
		}
	}
	return nil
}
