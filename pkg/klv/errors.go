// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package klv

import (
	"errors"
	"fmt"
)

// ErrMalformed is matched (by errors.Is) by every structural rejection of a table.
var ErrMalformed = errors.New("malformed KLV table")

// ErrUnaligned means the table length is not a multiple of WordSize.
type ErrUnaligned struct {
	Length int
}

func (err *ErrUnaligned) Error() string {
	return fmt.Sprintf("table length %d is not a multiple of %d", err.Length, WordSize)
}

// Is implements errors.Is.
func (err *ErrUnaligned) Is(target error) bool {
	return target == ErrMalformed
}

// ErrNoRoomForHeader means the bytes left after the last complete record
// can't hold a record header.
type ErrNoRoomForHeader struct {
	Offset    int
	Remaining int
}

func (err *ErrNoRoomForHeader) Error() string {
	return fmt.Sprintf("no room for item header at offset 0x%x: %d bytes remaining, %d needed",
		err.Offset, err.Remaining, HeaderSize)
}

// Is implements errors.Is.
func (err *ErrNoRoomForHeader) Is(target error) bool {
	return target == ErrMalformed
}

// ErrNoRoomForValue means a record declares more value words than there
// are bytes left in the table.
type ErrNoRoomForValue struct {
	Offset    int
	Key       Key
	Length    uint32
	Remaining int
}

func (err *ErrNoRoomForValue) Error() string {
	return fmt.Sprintf("no room for %d value words of key %s at offset 0x%x: %d bytes remaining",
		err.Length, err.Key, err.Offset, err.Remaining)
}

// Is implements errors.Is.
func (err *ErrNoRoomForValue) Is(target error) bool {
	return target == ErrMalformed
}
