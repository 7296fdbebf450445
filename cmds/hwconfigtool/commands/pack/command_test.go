// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pack

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linuxboot/hwconfig/cmds/hwconfigtool/commands"
	"github.com/linuxboot/hwconfig/pkg/compression"
	"github.com/linuxboot/hwconfig/pkg/dump"
	"github.com/linuxboot/hwconfig/pkg/hwconfig"
	"github.com/linuxboot/hwconfig/pkg/klv"
)

func TestPack(t *testing.T) {
	var out bytes.Buffer
	output := filepath.Join(t.TempDir(), "adlp.bin.xz")
	cmd := &Command{InputPath: "testdata/adlp.toml", OutputPath: output, out: &out}
	require.NoError(t, cmd.Execute(nil))
	require.Contains(t, out.String(), "wrote 5 records (60 B)")

	blob, err := dump.Load(output)
	require.NoError(t, err)
	require.Len(t, blob, 60)

	records, err := klv.Parse(blob)
	require.NoError(t, err)
	require.Len(t, records, 5)
	require.Equal(t, klv.Key(hwconfig.AttributeMaxSlicesSupported), records[0].Key)
	require.Equal(t, klv.Key(hwconfig.AttributeMaxDualSubslicesSupported), records[1].Key)
	require.Equal(t, klv.Key(hwconfig.AttributeMaxNumEUPerDSS), records[2].Key)
	require.Equal(t, []uint32{0x1000, 0x10000}, records[3].Words())
	require.Equal(t, klv.Key(0x1000), records[4].Key)
	require.Zero(t, records[4].Length)
}

func TestPackCompression(t *testing.T) {
	expected, _, err := Build("testdata/adlp.toml")
	require.NoError(t, err)

	t.Run("zstd", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "adlp.bin")
		cmd := &Command{InputPath: "testdata/adlp.toml", OutputPath: output, Compression: "zstd", out: &bytes.Buffer{}}
		require.NoError(t, cmd.Execute(nil))

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		blob, err := dump.Decode(data, &compression.Zstd{})
		require.NoError(t, err)
		require.Equal(t, expected, blob)
	})

	t.Run("none", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "adlp.bin.xz")
		cmd := &Command{InputPath: "testdata/adlp.toml", OutputPath: output, Compression: "none", out: &bytes.Buffer{}}
		require.NoError(t, cmd.Execute(nil))

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		require.Equal(t, expected, data)
	})

	t.Run("unknown", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "adlp.bin")
		cmd := &Command{InputPath: "testdata/adlp.toml", OutputPath: output, Compression: "brotli"}
		var errArgs commands.ErrArgs
		require.ErrorAs(t, cmd.Execute(nil), &errArgs)
		_, err := os.Stat(output)
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestPackExtraArgs(t *testing.T) {
	cmd := &Command{InputPath: "testdata/adlp.toml", OutputPath: filepath.Join(t.TempDir(), "x.bin")}
	var errArgs commands.ErrArgs
	require.ErrorAs(t, cmd.Execute([]string{"extra"}), &errArgs)
}

func TestBuildInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[record]]
attribute = "no-such-attribute"
value = [1]

[[record]]
attribute = "max-rcs"
key = 23
value = [1]

[[record]]
value = [1]

[[record]]
key = 1
valeu = [1]
`), 0o644))

	_, _, err := Build(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "record #0: unknown attribute 'no-such-attribute'")
	require.Contains(t, err.Error(), "record #1: both attribute")
	require.Contains(t, err.Error(), "record #2: neither attribute nor key is set")
	require.Contains(t, err.Error(), "unknown key 'record.valeu'")
}

func TestBuildNotTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[record"), 0o644))
	_, _, err := Build(path)
	require.Error(t, err)
}
