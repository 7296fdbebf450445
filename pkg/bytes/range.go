// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytes

import (
	"fmt"
)

// Range defines a bytes range within a buffer or an address space.
type Range struct {
	Offset uint64
	Length uint64
}

func (r Range) String() string {
	return fmt.Sprintf(`{"Offset":"0x%x", "Length":"0x%x"}`, r.Offset, r.Length)
}

// End returns the index of the first byte after the range.
func (r Range) End() uint64 {
	return r.Offset + r.Length
}

// Intersect returns True if ranges "r" and "cmp" has at least
// one byte with the same offset.
func (r Range) Intersect(cmp Range) bool {
	if r.Length == 0 || cmp.Length == 0 {
		return false
	}
	if r.End() <= cmp.Offset {
		return false
	}
	if r.Offset >= cmp.End() {
		return false
	}
	return true
}

// Contains returns True if every byte of "inner" is covered by "r".
// An empty "inner" is contained if its offset lies within [Offset, End].
func (r Range) Contains(inner Range) bool {
	if inner.Offset < r.Offset {
		return false
	}
	// inner.Offset >= r.Offset here, so the subtraction can't wrap.
	return inner.Length <= r.Length && inner.Offset-r.Offset <= r.Length-inner.Length
}

// Slice returns the part of `b` referenced by the range, or an error if the
// range does not fit into `b`.
func (r Range) Slice(b []byte) ([]byte, error) {
	if !(Range{Length: uint64(len(b))}).Contains(r) {
		return nil, fmt.Errorf("range %s is out of bounds of a %d byte buffer", r, len(b))
	}
	return b[r.Offset:r.End()], nil
}

// IsZeroFilled returns true if b consists of zeros only.
func IsZeroFilled(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
