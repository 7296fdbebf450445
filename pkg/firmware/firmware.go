// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package firmware defines how the host talks to the GuC: a synchronous
// request/response channel and memory regions visible to both sides.
package firmware

import (
	"context"
	"errors"
	"fmt"
)

// ActionGetHWConfig asks the GuC to copy its hardware configuration table
// into a GGTT-mapped buffer.
const ActionGetHWConfig uint32 = 0x4100

// ErrNotPresent is returned by a Transport when the firmware does not
// implement the requested action.
var ErrNotPresent = errors.New("firmware action is not present")

// StatusError is a failure status reported by the firmware for a request.
type StatusError struct {
	Action uint32
	Status int32
}

func (err *StatusError) Error() string {
	return fmt.Sprintf("firmware action 0x%04x failed with status %d", err.Action, err.Status)
}

// Transport delivers a request to the firmware and waits for the response.
// On success the returned value is the action-specific response data.
// Timeouts and retries of the channel itself are the Transport's business.
type Transport interface {
	Send(ctx context.Context, request []uint32) (uint32, error)
}

// Scratch is a memory region mapped for both the host and the firmware.
type Scratch interface {
	// Offset is the address of the region in the firmware address space (GGTT).
	Offset() uint32

	// Bytes is the host view of the region.
	Bytes() []byte

	// Release unmaps and frees the region. The region must not be used afterwards.
	Release() error
}

// ScratchAllocator provides Scratch regions.
type ScratchAllocator interface {
	AllocateScratch(size uint32) (Scratch, error)
}

// GetHWConfigRequest builds the GET_HWCONFIG request. A zero offset and size
// make it a probe: the firmware answers with the size of its table.
func GetHWConfigRequest(offset uint32, size uint32) []uint32 {
	return []uint32{
		ActionGetHWConfig,
		offset,
		0, // upper 32 bits of address
		size,
	}
}
