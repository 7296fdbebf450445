// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sim implements an in-memory GuC which answers GET_HWCONFIG the
// way the real firmware does. It is meant for tests and for running the
// retrieval protocol against captured tables without hardware.
package sim

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/xaionaro-go/bytesextra"

	"github.com/linuxboot/hwconfig/pkg/bytes"
	"github.com/linuxboot/hwconfig/pkg/firmware"
	"github.com/linuxboot/hwconfig/pkg/log"
)

const (
	// ggttBase is where the first scratch region is mapped.
	ggttBase = 0x00100000

	pageSize = 0x1000

	statusInvalidArgument = -22
	statusBadAddress      = -14
)

var (
	_ firmware.Transport        = (*Firmware)(nil)
	_ firmware.ScratchAllocator = (*Firmware)(nil)
)

// Firmware is a simulated GuC serving a hardware configuration table.
// The zero value serves an empty table.
type Firmware struct {
	// Table is the blob the firmware hands out.
	Table []byte

	// NotPresent makes every action fail with firmware.ErrNotPresent, as
	// firmware versions without GET_HWCONFIG do.
	NotPresent bool
	// FetchNotPresent makes only the fetch fail with firmware.ErrNotPresent,
	// as a firmware reset between the two requests does.
	FetchNotPresent bool
	// ProbeStatus and FetchStatus, if non-zero, are reported as failure
	// statuses of the probe and the fetch respectively.
	ProbeStatus int32
	FetchStatus int32
	// If OverrideSize is set, probes are answered with ReportSize instead
	// of the real table size.
	OverrideSize bool
	ReportSize   uint32
	// AllocErr and ReleaseErr are returned by scratch allocation and
	// release. A failed release still unmaps the region.
	AllocErr   error
	ReleaseErr error
	// Reserved lists GGTT ranges scratch regions are never mapped onto.
	Reserved []bytes.Range

	// Logger defaults to log.DefaultLogger.
	Logger log.Logger

	// Requests lists every request received, in order.
	Requests [][]uint32

	nextOffset uint64
	regions    map[uint32]*Region
}

func (fw *Firmware) logger() log.Logger {
	if fw.Logger != nil {
		return fw.Logger
	}
	return log.DefaultLogger
}

// Send implements firmware.Transport.
func (fw *Firmware) Send(ctx context.Context, request []uint32) (uint32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	fw.Requests = append(fw.Requests, append([]uint32(nil), request...))
	fw.logger().Debugf("sim: request %X", request)

	if fw.NotPresent || len(request) == 0 || request[0] != firmware.ActionGetHWConfig {
		return 0, firmware.ErrNotPresent
	}
	if len(request) != 4 || request[2] != 0 {
		return 0, &firmware.StatusError{Action: request[0], Status: statusInvalidArgument}
	}

	offset, size := request[1], request[3]
	if size == 0 {
		return fw.probe()
	}
	return fw.fetch(offset, size)
}

func (fw *Firmware) probe() (uint32, error) {
	if fw.ProbeStatus != 0 {
		return 0, &firmware.StatusError{Action: firmware.ActionGetHWConfig, Status: fw.ProbeStatus}
	}
	if fw.OverrideSize {
		return fw.ReportSize, nil
	}
	return uint32(len(fw.Table)), nil
}

func (fw *Firmware) fetch(offset, size uint32) (uint32, error) {
	if fw.FetchNotPresent {
		return 0, firmware.ErrNotPresent
	}
	if fw.FetchStatus != 0 {
		return 0, &firmware.StatusError{Action: firmware.ActionGetHWConfig, Status: fw.FetchStatus}
	}

	// A buffer which is too small gets the same answer as a probe.
	if int(size) < len(fw.Table) {
		return uint32(len(fw.Table)), nil
	}

	target := bytes.Range{Offset: uint64(offset), Length: uint64(size)}
	region := fw.findRegion(target)
	if region == nil {
		return 0, &firmware.StatusError{Action: firmware.ActionGetHWConfig, Status: statusBadAddress}
	}

	w := bytesextra.NewReadWriteSeeker(region.buf)
	if _, err := w.Seek(int64(offset-region.offset), io.SeekStart); err != nil {
		return 0, fmt.Errorf("unable to seek to 0x%x in region 0x%x: %w", offset, region.offset, err)
	}
	n, err := w.Write(fw.Table)
	if err != nil {
		return 0, fmt.Errorf("unable to write the table into region 0x%x: %w", region.offset, err)
	}
	return uint32(n), nil
}

func (fw *Firmware) findRegion(target bytes.Range) *Region {
	for _, region := range fw.regions {
		if region.Range().Contains(target) {
			return region
		}
	}
	return nil
}

// AllocateScratch implements firmware.ScratchAllocator.
func (fw *Firmware) AllocateScratch(size uint32) (firmware.Scratch, error) {
	if fw.AllocErr != nil {
		return nil, fw.AllocErr
	}
	if size == 0 {
		return nil, errors.New("scratch region of zero size")
	}
	if fw.regions == nil {
		fw.regions = map[uint32]*Region{}
		fw.nextOffset = ggttBase
	}

	offset, err := fw.findFreeOffset(uint64(size))
	if err != nil {
		return nil, err
	}
	region := &Region{fw: fw, offset: uint32(offset), buf: make([]byte, size)}
	fw.regions[region.offset] = region
	fw.nextOffset = alignPage(offset + uint64(size))
	fw.logger().Debugf("sim: mapped %d bytes at 0x%08x", size, region.offset)
	return region, nil
}

// findFreeOffset returns the first page aligned offset from nextOffset on
// where "size" bytes overlap neither a reserved range nor a mapped region.
func (fw *Firmware) findFreeOffset(size uint64) (uint64, error) {
	candidate := bytes.Range{Offset: fw.nextOffset, Length: size}
	for {
		if candidate.End() > 1<<32 {
			return 0, fmt.Errorf("no room for %d bytes in the GGTT", size)
		}
		busy, ok := fw.overlapping(candidate)
		if !ok {
			return candidate.Offset, nil
		}
		candidate.Offset = alignPage(busy.End())
	}
}

func (fw *Firmware) overlapping(candidate bytes.Range) (bytes.Range, bool) {
	for _, r := range fw.Reserved {
		if r.Intersect(candidate) {
			return r, true
		}
	}
	for _, region := range fw.regions {
		if region.Range().Intersect(candidate) {
			return region.Range(), true
		}
	}
	return bytes.Range{}, false
}

func alignPage(offset uint64) uint64 {
	return (offset + pageSize - 1) &^ (pageSize - 1)
}

// Outstanding returns the amount of scratch regions not released yet.
func (fw *Firmware) Outstanding() int {
	return len(fw.regions)
}

// Region is a scratch region of the simulated GGTT.
type Region struct {
	fw       *Firmware
	offset   uint32
	buf      []byte
	released bool
}

// Offset implements firmware.Scratch.
func (r *Region) Offset() uint32 {
	return r.offset
}

// Bytes implements firmware.Scratch.
func (r *Region) Bytes() []byte {
	return r.buf
}

// Range returns the GGTT addresses covered by the region.
func (r *Region) Range() bytes.Range {
	return bytes.Range{Offset: uint64(r.offset), Length: uint64(len(r.buf))}
}

// Release implements firmware.Scratch.
func (r *Region) Release() error {
	if r.released {
		return fmt.Errorf("scratch region 0x%08x is already released", r.offset)
	}
	r.released = true
	delete(r.fw.regions, r.offset)
	r.fw.logger().Debugf("sim: unmapped region 0x%08x", r.offset)
	return r.fw.ReleaseErr
}
