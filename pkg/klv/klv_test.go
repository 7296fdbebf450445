// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package klv

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linuxboot/hwconfig/pkg/bytes"
)

// twoRecords is the reference table: a single-word value followed by a
// three-word mask.
func twoRecords() []byte {
	b := AppendRecord(nil, 0, 8)
	return AppendRecord(b, 1, 0xFFFFFFFF, 0xFFFFFFFF, 0xFF000000)
}

func TestTwoRecords(t *testing.T) {
	b := twoRecords()
	require.Len(t, b, 32)
	require.NoError(t, Validate(b))

	it := NewIterator(b)

	require.True(t, it.Next())
	r := it.Record()
	require.Equal(t, Key(0), r.Key)
	require.Equal(t, uint32(1), r.Length)
	require.Equal(t, 0, r.Offset)
	require.Equal(t, 12, r.Size())
	v, err := r.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(8), v)
	require.Equal(t, 12, it.Offset())

	require.True(t, it.Next())
	r = it.Record()
	require.Equal(t, Key(1), r.Key)
	require.Equal(t, 12, r.Offset)
	require.Equal(t, 20, r.Size())
	require.Equal(t, []uint32{0xFFFFFFFF, 0xFFFFFFFF, 0xFF000000}, r.Words())
	require.Equal(t, bytes.Range{Offset: 20, Length: 12}, r.Range())
	_, err = r.Uint32()
	require.Error(t, err)

	require.False(t, it.Next())
	require.NoError(t, it.Err())
	require.Equal(t, 32, it.Offset())
}

func TestDeclaredLengthPastEnd(t *testing.T) {
	b := twoRecords()
	binary.LittleEndian.PutUint32(b[16:], 5)
	orig := append([]byte(nil), b...)

	err := Validate(b)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMalformed)

	var errValue *ErrNoRoomForValue
	require.ErrorAs(t, err, &errValue)
	require.Equal(t, 12, errValue.Offset)
	require.Equal(t, Key(1), errValue.Key)
	require.Equal(t, uint32(5), errValue.Length)
	require.Equal(t, 20, errValue.Remaining)

	require.Equal(t, orig, b)

	records, err := Parse(b)
	require.Error(t, err)
	require.Nil(t, records)
}

func TestTruncatedUnaligned(t *testing.T) {
	b := twoRecords()
	for cut := 1; cut <= 3; cut++ {
		err := Validate(b[:len(b)-cut])
		var errUnaligned *ErrUnaligned
		require.ErrorAs(t, err, &errUnaligned)
		require.Equal(t, len(b)-cut, errUnaligned.Length)
	}
}

func TestTruncatedValue(t *testing.T) {
	b := twoRecords()
	// The last record's value is the final 12 bytes; drop 1..11 of them.
	for cut := 1; cut < 12; cut++ {
		truncated := b[:len(b)-cut]
		err := Validate(truncated)
		require.ErrorIs(t, err, ErrMalformed)
		if len(truncated)%WordSize != 0 {
			var errUnaligned *ErrUnaligned
			require.ErrorAs(t, err, &errUnaligned)
			continue
		}
		var errValue *ErrNoRoomForValue
		require.ErrorAs(t, err, &errValue, "cut %d", cut)
		require.Equal(t, 12, errValue.Offset)
	}
}

func TestNoRoomForHeader(t *testing.T) {
	b := append(twoRecords(), 0x01, 0x00, 0x00, 0x00)
	err := Validate(b)
	var errHeader *ErrNoRoomForHeader
	require.ErrorAs(t, err, &errHeader)
	require.Equal(t, 32, errHeader.Offset)
	require.Equal(t, 4, errHeader.Remaining)
}

func TestHugeLength(t *testing.T) {
	// A length that overflows 32-bit arithmetic if multiplied naively.
	for _, length := range []uint32{0x40000000, 0x3FFFFFFF, 0xFFFFFFFF, 0x80000001} {
		b := AppendRecord(nil, 7, 1)
		binary.LittleEndian.PutUint32(b[4:], length)
		var errValue *ErrNoRoomForValue
		require.ErrorAs(t, Validate(b), &errValue)
		require.Equal(t, length, errValue.Length)
	}
}

func TestWellFormedSequences(t *testing.T) {
	for count := 0; count < 16; count++ {
		var b []byte
		expected := 0
		for idx := 0; idx < count; idx++ {
			words := make([]uint32, idx%5)
			for w := range words {
				words[w] = uint32(idx*w) ^ 0xA5A5A5A5
			}
			b = AppendRecord(b, Key(idx), words...)
			expected += HeaderSize + len(words)*WordSize
		}
		require.Len(t, b, expected)

		records, err := Parse(b)
		require.NoError(t, err)
		require.Len(t, records, count)

		sum := 0
		for idx, r := range records {
			require.Equal(t, Key(idx), r.Key)
			require.Equal(t, sum, r.Offset)
			sum += r.Size()
		}
		require.Equal(t, len(b), sum)
	}
}

func TestEmptyTable(t *testing.T) {
	require.NoError(t, Validate(nil))
	it := NewIterator([]byte{})
	require.False(t, it.Next())
	require.NoError(t, it.Err())
}

func TestIteratorStopsAtFirstError(t *testing.T) {
	b := append(twoRecords(), AppendRecord(nil, 2, 1, 2)...)
	binary.LittleEndian.PutUint32(b[36:], 9)

	it := NewIterator(b)
	var keys []Key
	for it.Next() {
		keys = append(keys, it.Record().Key)
	}
	require.Equal(t, []Key{0, 1}, keys)
	require.True(t, errors.Is(it.Err(), ErrMalformed))
	require.False(t, it.Next())
}

func TestFind(t *testing.T) {
	b := twoRecords()

	r, ok := Find(b, 1)
	require.True(t, ok)
	require.Equal(t, uint32(3), r.Length)

	_, ok = Find(b, 2)
	require.False(t, ok)
}
