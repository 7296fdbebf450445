// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hwconfig retrieves the hardware configuration table (HWConfig)
// from the GuC firmware and keeps a validated copy of it.
//
// The table is fetched in two steps: a probe request learns its size, then a
// fetch request makes the firmware copy it into a scratch region of exactly
// that size. The copy is validated as a KLV table before anything can read it.
package hwconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/linuxboot/hwconfig/pkg/bytes"
	"github.com/linuxboot/hwconfig/pkg/device"
	"github.com/linuxboot/hwconfig/pkg/firmware"
	"github.com/linuxboot/hwconfig/pkg/klv"
	"github.com/linuxboot/hwconfig/pkg/log"
)

// DefaultMaxSize is the largest table Init accepts by default.
const DefaultMaxSize = 1 << 20

// State is the stage of the table lifecycle.
type State int

// Table lifecycle states. StateEmpty and StateReady are the only states
// visible after Init returns.
const (
	StateUninitialized State = iota
	StateSizeKnown
	StateBufferAllocated
	StateReady
	StateEmpty
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateSizeKnown:
		return "size known"
	case StateBufferAllocated:
		return "buffer allocated"
	case StateReady:
		return "ready"
	case StateEmpty:
		return "empty"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Allocator returns a buffer of exactly size bytes for the table.
type Allocator func(size uint32) ([]byte, error)

// HWConfig owns the hardware configuration table of one device.
//
// Once Init succeeded the table is read-only and may be used by any number of
// readers concurrently. Fini must not run concurrently with readers.
type HWConfig struct {
	transport firmware.Transport
	scratch   firmware.ScratchAllocator
	caps      device.Capabilities
	log       log.Logger
	alloc     Allocator
	maxSize   uint32

	state State
	size  uint32
	blob  []byte
}

// Option configures a HWConfig.
type Option func(h *HWConfig)

// WithLogger sets the logger. Default is log.DefaultLogger.
func WithLogger(logger log.Logger) Option {
	return func(h *HWConfig) {
		h.log = logger
	}
}

// WithCapabilities replaces the table of devices which have a HWConfig.
func WithCapabilities(caps device.Capabilities) Option {
	return func(h *HWConfig) {
		h.caps = caps
	}
}

// WithMaxSize limits the size of the table the firmware may ask for.
func WithMaxSize(size uint32) Option {
	return func(h *HWConfig) {
		h.maxSize = size
	}
}

// WithAllocator replaces how the local buffer is allocated.
func WithAllocator(alloc Allocator) Option {
	return func(h *HWConfig) {
		h.alloc = alloc
	}
}

// New returns a HWConfig which talks to the firmware through transport and
// maps scratch memory through scratch.
func New(transport firmware.Transport, scratch firmware.ScratchAllocator, opts ...Option) *HWConfig {
	h := &HWConfig{
		transport: transport,
		scratch:   scratch,
		caps:      device.DefaultCapabilities,
		log:       log.DefaultLogger,
		maxSize:   DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.alloc == nil {
		h.alloc = h.defaultAlloc
	}
	return h
}

func (h *HWConfig) defaultAlloc(size uint32) ([]byte, error) {
	if size > h.maxSize {
		return nil, fmt.Errorf("%w: table of %s exceeds the limit of %s",
			ErrOutOfMemory, humanize.IBytes(uint64(size)), humanize.IBytes(uint64(h.maxSize)))
	}
	return make([]byte, size), nil
}

// Init retrieves the table from the firmware and validates it.
//
// A device which is not expected to have a table, or whose firmware does not
// implement the request, ends up with an empty table and no error. On any
// error the table is left empty as well.
func (h *HWConfig) Init(ctx context.Context, desc device.Descriptor) error {
	if h.state == StateReady {
		return ErrAlreadyInitialized
	}

	if !h.caps.HasTable(desc) {
		h.log.Debugf("%s has no hardware configuration table", desc)
		h.state = StateEmpty
		return nil
	}

	if err := h.discoverSize(ctx); err != nil {
		h.Fini()
		if errors.Is(err, ErrNotSupported) {
			h.log.Warnf("%s: %v", desc, err)
			return nil
		}
		return err
	}
	h.state = StateSizeKnown

	blob, err := h.alloc(h.size)
	if err == nil && len(blob) != int(h.size) {
		err = fmt.Errorf("%w: got %d bytes, requested %d", ErrOutOfMemory, len(blob), h.size)
	}
	if err != nil {
		h.Fini()
		if !errors.Is(err, ErrOutOfMemory) {
			err = fmt.Errorf("%w: %v", ErrOutOfMemory, err)
		}
		return err
	}
	h.blob = blob
	h.state = StateBufferAllocated

	if err := h.fillBuffer(ctx); err != nil {
		h.Fini()
		return err
	}

	if err := klv.Validate(h.blob); err != nil {
		h.Fini()
		return &MalformedError{Err: err}
	}
	if bytes.IsZeroFilled(h.blob) {
		h.log.Warnf("%s: hardware configuration table is all zeros", desc)
	}

	h.state = StateReady
	h.log.Infof("%s: loaded %s hardware configuration table", desc, humanize.IBytes(uint64(h.size)))
	return nil
}

// Fini drops the table. It is safe to call in any state, any number of times.
func (h *HWConfig) Fini() {
	h.blob = nil
	h.size = 0
	h.state = StateEmpty
}

// State returns the lifecycle state.
func (h *HWConfig) State() State {
	return h.state
}

// Size returns the table size in bytes, zero unless the table is ready.
func (h *HWConfig) Size() uint32 {
	if h.state != StateReady {
		return 0
	}
	return h.size
}

// Bytes returns the validated table, nil unless the table is ready.
// The returned slice must not be modified.
func (h *HWConfig) Bytes() []byte {
	if h.state != StateReady {
		return nil
	}
	return h.blob
}

// Records returns an iterator over the validated records.
func (h *HWConfig) Records() *klv.Iterator {
	return klv.NewIterator(h.Bytes())
}

// Lookup returns the first record with the given key.
func (h *HWConfig) Lookup(key klv.Key) (klv.Record, bool) {
	return klv.Find(h.Bytes(), key)
}

// Uint32 returns the value of a single-word attribute.
func (h *HWConfig) Uint32(attr Attribute) (uint32, error) {
	r, ok := h.Lookup(klv.Key(attr))
	if !ok {
		return 0, &ErrNotFound{Key: klv.Key(attr)}
	}
	return r.Uint32()
}
