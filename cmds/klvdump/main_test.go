// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linuxboot/hwconfig/pkg/klv"
)

func TestPrintRecords(t *testing.T) {
	blob := klv.AppendRecord(nil, 0, 8)
	blob = klv.AppendRecord(blob, 1, 0xFFFFFFFF, 0xFFFFFFFF, 0xFF000000)

	var out bytes.Buffer
	require.NoError(t, printRecords(&out, blob, true, false))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "key 0x00000000 at 0x0: 1 words [8] Attribute(0x0)", lines[0])
	require.Equal(t, "key 0x00000001 at 0xc: 3 words [FFFFFFFF FFFFFFFF FF000000] MaxSlicesSupported", lines[1])

	out.Reset()
	require.NoError(t, printRecords(&out, blob, false, true))
	require.Contains(t, out.String(), "00000000  ff ff ff ff ff ff ff ff  00 00 00 ff")
}

func TestPrintRecordsMalformed(t *testing.T) {
	blob := klv.AppendRecord(nil, 0, 8)
	blob = klv.AppendRecord(blob, 1, 0xFFFFFFFF, 0xFFFFFFFF, 0xFF000000)
	binary.LittleEndian.PutUint32(blob[16:], 5)

	var out bytes.Buffer
	err := printRecords(&out, blob, false, false)
	var errValue *klv.ErrNoRoomForValue
	require.ErrorAs(t, err, &errValue)
	require.Equal(t, 12, errValue.Offset)
	require.Equal(t, "key 0x00000000 at 0x0: 1 words [8]\n", out.String())
}
