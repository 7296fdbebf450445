// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package klv

import (
	"encoding/binary"
)

// Iterator walks the records of a table one at a time. A record is returned
// only after it was verified to fit into the remaining bytes, so a table can
// be consumed lazily without being validated beforehand. The walk stops at
// the first malformed record; Err reports why.
//
//	it := klv.NewIterator(b)
//	for it.Next() {
//		r := it.Record()
//		...
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type Iterator struct {
	buf    []byte
	offset int
	record Record
	err    error
}

// NewIterator returns an iterator over the records of b.
func NewIterator(b []byte) *Iterator {
	it := &Iterator{buf: b}
	if len(b)%WordSize != 0 {
		it.err = &ErrUnaligned{Length: len(b)}
	}
	return it
}

// Next advances to the next record. It returns false when the end of the
// table is reached or a malformed record is found.
func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}
	remaining := len(it.buf) - it.offset
	if remaining == 0 {
		return false
	}
	if remaining < HeaderSize {
		it.err = &ErrNoRoomForHeader{Offset: it.offset, Remaining: remaining}
		return false
	}

	key := Key(binary.LittleEndian.Uint32(it.buf[it.offset:]))
	length := binary.LittleEndian.Uint32(it.buf[it.offset+WordSize:])

	// uint64 can't overflow here: HeaderSize + 4 * (2^32 - 1) < 2^35.
	itemSize := uint64(HeaderSize) + uint64(length)*WordSize
	if itemSize > uint64(remaining) {
		it.err = &ErrNoRoomForValue{
			Offset:    it.offset,
			Key:       key,
			Length:    length,
			Remaining: remaining,
		}
		return false
	}

	end := it.offset + int(itemSize)
	it.record = Record{
		Key:    key,
		Length: length,
		Offset: it.offset,
		value:  it.buf[it.offset+HeaderSize : end : end],
	}
	it.offset = end
	return true
}

// Record returns the record the last successful Next stopped at.
func (it *Iterator) Record() Record {
	return it.record
}

// Offset returns the position right after the last returned record.
func (it *Iterator) Offset() int {
	return it.offset
}

// Err returns the reason the walk stopped, or nil if the end of the table
// was reached cleanly (or not reached yet).
func (it *Iterator) Err() error {
	return it.err
}
