// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRangeIntersect(t *testing.T) {
	require.True(t, Range{Offset: 0, Length: 4}.Intersect(Range{Offset: 3, Length: 4}))
	require.False(t, Range{Offset: 0, Length: 4}.Intersect(Range{Offset: 4, Length: 4}))
	require.False(t, Range{Offset: 0, Length: 0}.Intersect(Range{Offset: 0, Length: 4}))
}

func TestRangeContains(t *testing.T) {
	outer := Range{Offset: 0x1000, Length: 0x20}

	t.Run("inside", func(t *testing.T) {
		require.True(t, outer.Contains(Range{Offset: 0x1000, Length: 0x20}))
		require.True(t, outer.Contains(Range{Offset: 0x1010, Length: 0x10}))
		require.True(t, outer.Contains(Range{Offset: 0x1020, Length: 0}))
	})
	t.Run("outside", func(t *testing.T) {
		require.False(t, outer.Contains(Range{Offset: 0xfff, Length: 1}))
		require.False(t, outer.Contains(Range{Offset: 0x1010, Length: 0x11}))
		require.False(t, outer.Contains(Range{Offset: 0x1021, Length: 0}))
	})
	t.Run("no_wraparound", func(t *testing.T) {
		require.False(t, outer.Contains(Range{Offset: 0x1010, Length: math.MaxUint64}))
		require.False(t, outer.Contains(Range{Offset: math.MaxUint64, Length: 2}))
	})
}

func TestRangeSlice(t *testing.T) {
	b := []byte{0, 1, 2, 3, 4, 5, 6, 7}

	s, err := Range{Offset: 2, Length: 3}.Slice(b)
	require.NoError(t, err)
	require.Equal(t, []byte{2, 3, 4}, s)

	_, err = Range{Offset: 6, Length: 3}.Slice(b)
	require.Error(t, err)
}

func TestIsZeroFilled(t *testing.T) {
	require.True(t, IsZeroFilled(nil))
	require.True(t, IsZeroFilled(make([]byte, 64)))
	b := make([]byte, 64)
	b[63] = 1
	require.False(t, IsZeroFilled(b))
}
