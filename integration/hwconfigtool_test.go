// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linuxboot/hwconfig/cmds/hwconfigtool/cli"
	"github.com/linuxboot/hwconfig/pkg/compression"
	"github.com/linuxboot/hwconfig/pkg/dump"
	"github.com/linuxboot/hwconfig/pkg/hwconfig"
	"github.com/linuxboot/hwconfig/pkg/klv"
)

const (
	recordsFile = "testdata/adlp.toml"
	goldenFile  = "testdata/adlp.golden.bin"
)

// TestPackRegression packs the record description and compares it against
// the golden table. After an intended change of the table, regenerate it
// with:
//
//	hwconfigtool pack -i integration/testdata/adlp.toml -o integration/testdata/adlp.golden.bin
func TestPackRegression(t *testing.T) {
	golden, err := os.ReadFile(goldenFile)
	require.NoError(t, err)

	for _, name := range []string{"adlp.bin", "adlp.bin.xz", "adlp.bin.lz4", "adlp.bin.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, cli.Run("pack", "-i", recordsFile, "-o", path))

			blob, err := dump.Load(path)
			require.NoError(t, err)
			require.Equal(t, golden, blob)
		})
	}

	t.Run("compression_flag", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "adlp.bin")
		require.NoError(t, cli.Run("pack", "-i", recordsFile, "-o", path, "--compression", "lz4"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		blob, err := dump.Decode(data, compression.CompressorFromName("LZ4"))
		require.NoError(t, err)
		require.Equal(t, golden, blob)
	})
}

// TestPackSimulate runs the whole pipeline: the packed table is served by
// the simulated firmware, retrieved, validated and printed.
func TestPackSimulate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adlp.bin.zst")
	require.NoError(t, cli.Run("pack", "-i", recordsFile, "-o", path))
	require.NoError(t, cli.Run("validate", path))
	require.NoError(t, cli.Run("show", "-f", path, "--format", "json"))
	require.NoError(t, cli.Run("get", "-f", path, "max-pixel-fill-rate-per-slice"))
	require.NoError(t, cli.Run("simulate", "-f", path, "--log-level", "error"))
	require.NoError(t, cli.Run("simulate", "-f", path, "-p", "dg2", "--log-level", "error"))
	require.NoError(t, cli.Run("simulate", "-f", path, "--not-present", "--log-level", "error"))

	require.ErrorIs(t, cli.Run("simulate", "-f", path, "--report-size", "0", "--log-level", "error"), hwconfig.ErrInvalid)
	require.ErrorIs(t, cli.Run("simulate", "-f", path, "--max-size", "64", "--log-level", "error"), hwconfig.ErrOutOfMemory)
}

func TestMalformedDump(t *testing.T) {
	golden, err := os.ReadFile(goldenFile)
	require.NoError(t, err)

	// Chop the last value word off.
	path := filepath.Join(t.TempDir(), "truncated.bin")
	require.NoError(t, os.WriteFile(path, golden[:len(golden)-4], 0o644))

	require.ErrorIs(t, cli.Run("validate", path), klv.ErrMalformed)
	require.ErrorIs(t, cli.Run("show", "-f", path), klv.ErrMalformed)
	require.ErrorIs(t, cli.Run("simulate", "-f", path, "--log-level", "error"), hwconfig.ErrInvalid)
}

func TestBadArguments(t *testing.T) {
	require.Error(t, cli.Run())
	require.Error(t, cli.Run("frobnicate"))
	require.Error(t, cli.Run("show"))
	require.Error(t, cli.Run("get", "-f", goldenFile))
}
