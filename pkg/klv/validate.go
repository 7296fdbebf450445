// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package klv

// Validate checks that b is a well-formed table: its length is a multiple of
// WordSize and it is an exact concatenation of records.
func Validate(b []byte) error {
	it := NewIterator(b)
	for it.Next() {
	}
	return it.Err()
}

// Parse returns all records of b. Nothing is returned unless the whole table
// is well-formed.
func Parse(b []byte) ([]Record, error) {
	var result []Record
	it := NewIterator(b)
	for it.Next() {
		result = append(result, it.Record())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Find returns the first record with the given key. The table is expected to
// be validated already; a malformed tail just ends the search.
func Find(b []byte, key Key) (Record, bool) {
	it := NewIterator(b)
	for it.Next() {
		if it.Record().Key == key {
			return it.Record(), true
		}
	}
	return Record{}, false
}
