// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hwconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/linuxboot/hwconfig/pkg/firmware"
)

func (h *HWConfig) getHWConfig(ctx context.Context, offset, size uint32) (uint32, error) {
	ret, err := h.transport.Send(ctx, firmware.GetHWConfigRequest(offset, size))
	if err != nil {
		return 0, err
	}

	if size == 0 && ret == 0 {
		return 0, fmt.Errorf("%w: firmware reported a table of zero size", ErrInvalid)
	}
	return ret, nil
}

func (h *HWConfig) discoverSize(ctx context.Context) error {
	// Sending a query with too small a table will return the size of the table
	size, err := h.getHWConfig(ctx, 0, 0)
	switch {
	case err == nil:
	case errors.Is(err, firmware.ErrNotPresent):
		// Only an unanswered size query means the firmware lacks the table
		return ErrNotSupported
	case errors.Is(err, ErrInvalid):
		return err
	default:
		return &TransportError{Op: "discover the table size", Err: err}
	}

	h.size = size
	return nil
}
