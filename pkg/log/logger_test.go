// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelWarn)

	logger.Debugf("query %d", 1)
	logger.Infof("size %d", 2)
	require.Empty(t, buf.String())

	logger.Warnf("not present")
	require.Contains(t, buf.String(), "[hwconfig][WARN] not present")

	logger.Errorf("fetch failed: %v", "boom")
	require.Contains(t, buf.String(), "[hwconfig][ERROR] fetch failed: boom")
}

func TestDiscard(t *testing.T) {
	Discard.Errorf("nothing %s", "here")
	Discard.Warnf("nothing")
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "FATAL", LevelFatal.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel(" debug")
	require.NoError(t, err)
	require.Equal(t, LevelDebug, level)

	level, err = ParseLevel("WARN")
	require.NoError(t, err)
	require.Equal(t, LevelWarn, level)

	_, err = ParseLevel("verbose")
	require.Error(t, err)
}
