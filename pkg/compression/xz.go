// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compression

import (
	"bytes"
	"io"

	"github.com/ulikunitz/xz"
)

// XZ implements Compressor using the .xz container.
type XZ struct{}

// Name returns the type of compression employed.
func (c *XZ) Name() string {
	return "XZ"
}

// Decode decodes a byte slice of XZ data.
func (c *XZ) Decode(encodedData []byte) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(encodedData))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

// Encode encodes a byte slice with XZ.
func (c *XZ) Encode(decodedData []byte) ([]byte, error) {
	buf := bytes.Buffer{}
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(decodedData); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
