// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hwconfig

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-multierror"

	"github.com/linuxboot/hwconfig/pkg/bytes"
)

// fillBuffer fetches the table through a scratch region into h.blob.
// The scratch region never outlives the call.
func (h *HWConfig) fillBuffer(ctx context.Context) (err error) {
	if h.size == 0 || len(h.blob) != int(h.size) {
		return fmt.Errorf("internal error: fetch of %d bytes into a %d bytes buffer", h.size, len(h.blob))
	}

	scratch, err := h.scratch.AllocateScratch(h.size)
	if err != nil {
		return &TransportError{
			Op:  fmt.Sprintf("map a %s scratch region", humanize.IBytes(uint64(h.size))),
			Err: err,
		}
	}
	defer func() {
		releaseErr := scratch.Release()
		if releaseErr == nil {
			return
		}
		releaseErr = fmt.Errorf("unable to release scratch region 0x%08x: %w", scratch.Offset(), releaseErr)
		if err != nil {
			err = multierror.Append(err, releaseErr)
			return
		}
		// The table is copied out already.
		h.log.Warnf("%v", releaseErr)
	}()

	table, err := bytes.Range{Length: uint64(h.size)}.Slice(scratch.Bytes())
	if err != nil {
		return &TransportError{Op: "map the scratch region", Err: err}
	}

	h.log.Debugf("fetching %d bytes via scratch region 0x%08x", h.size, scratch.Offset())
	if _, err := h.getHWConfig(ctx, scratch.Offset(), h.size); err != nil {
		return &TransportError{Op: "fetch the table", Err: err}
	}

	copy(h.blob, table)
	return nil
}
