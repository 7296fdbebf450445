// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hwconfig

import (
	"errors"
	"fmt"

	"github.com/linuxboot/hwconfig/pkg/klv"
)

var (
	// ErrNotSupported means the firmware did not answer the size query, so it
	// does not implement GET_HWCONFIG.
	// Init treats it as "no table on this device" rather than a failure.
	ErrNotSupported = errors.New("hardware configuration table is not supported by the firmware")

	// ErrInvalid means the firmware answered successfully but the table it
	// provided can't be used.
	ErrInvalid = errors.New("invalid hardware configuration table")

	// ErrOutOfMemory means no local buffer could be allocated for the table.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrAlreadyInitialized is returned by Init when a table is loaded already.
	ErrAlreadyInitialized = errors.New("hardware configuration table is already loaded")
)

// TransportError is a failure to exchange a request with the firmware or to
// map memory for it.
type TransportError struct {
	Op  string
	Err error
}

func (err *TransportError) Error() string {
	return fmt.Sprintf("unable to %s: %v", err.Op, err.Err)
}

func (err *TransportError) Unwrap() error {
	return err.Err
}

// MalformedError means the retrieved table failed structural validation.
// It matches ErrInvalid and unwraps to the klv rejection.
type MalformedError struct {
	Err error
}

func (err *MalformedError) Error() string {
	return fmt.Sprintf("hardware configuration table is malformed: %v", err.Err)
}

func (err *MalformedError) Unwrap() error {
	return err.Err
}

// Is implements errors.Is.
func (err *MalformedError) Is(target error) bool {
	return target == ErrInvalid
}

// ErrNotFound means the table has no record with the given key.
type ErrNotFound struct {
	Key klv.Key
}

func (err *ErrNotFound) Error() string {
	return fmt.Sprintf("attribute %s is not found", Attribute(err.Key))
}
