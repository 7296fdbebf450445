// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package klv implements the Key/Length/Value table format used by the GuC
// to describe hardware configuration.
//
// A table is a tightly packed sequence of records, each one being:
//
//	+-----------+-----------+--------------------------+
//	| key (u32) | len (u32) | value (len x u32 words)  |
//	+-----------+-----------+--------------------------+
//
// For example, a minimal table could be:
//
//	0x00000000, // key
//	0x00000001, // value length in words
//	0x00000008, // value
//
//	0x00000001,
//	0x00000003,
//	0xFFFFFFFF, 0xFFFFFFFF, 0xFF000000,
//
// All words are little-endian. The table is produced by firmware, so the
// length fields are never trusted before being checked against the bytes that
// are actually present.
package klv

import (
	"encoding/binary"
	"fmt"

	"github.com/linuxboot/hwconfig/pkg/bytes"
)

const (
	// WordSize is the size of every field of a record.
	WordSize = 4

	// HeaderSize is the size of the key and length fields together.
	HeaderSize = 2 * WordSize
)

// Key identifies the meaning of a record value.
type Key uint32

func (k Key) String() string {
	return fmt.Sprintf("0x%08X", uint32(k))
}

// Record is a single validated item of a table. The value aliases the table
// it was read from and must be treated as read-only.
type Record struct {
	Key Key
	// Length is the amount of 32-bit words in the value.
	Length uint32
	// Offset is the position of the record header within the table.
	Offset int

	value []byte
}

// Size returns the amount of bytes the record occupies, header included.
func (r Record) Size() int {
	return HeaderSize + len(r.value)
}

// Value returns the raw value bytes.
func (r Record) Value() []byte {
	return r.value
}

// Words returns the value decoded as little-endian words.
func (r Record) Words() []uint32 {
	words := make([]uint32, len(r.value)/WordSize)
	for idx := range words {
		words[idx] = binary.LittleEndian.Uint32(r.value[idx*WordSize:])
	}
	return words
}

// Uint32 returns the value of a single-word record.
func (r Record) Uint32() (uint32, error) {
	if r.Length != 1 {
		return 0, fmt.Errorf("key %s has %d value words, expected 1", r.Key, r.Length)
	}
	return binary.LittleEndian.Uint32(r.value), nil
}

// Range returns the position of the value within the table.
func (r Record) Range() bytes.Range {
	return bytes.Range{
		Offset: uint64(r.Offset + HeaderSize),
		Length: uint64(len(r.value)),
	}
}

func (r Record) String() string {
	return fmt.Sprintf("key %s at 0x%x: %d words %X", r.Key, r.Offset, r.Length, r.Words())
}

// AppendRecord encodes a record and appends it to dst.
func AppendRecord(dst []byte, key Key, value ...uint32) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, uint32(key))
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(value)))
	for _, word := range value {
		dst = binary.LittleEndian.AppendUint32(dst, word)
	}
	return dst
}
