// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/powminer/blockdigest"
	"github.com/bitmark-inc/powminer/difficulty"
)

func TestWindow(t *testing.T) {
	words := blockdigest.State{
		0x01234567, 0x89abcdef, 0xfedcba98, 0x76543210,
		0, 0, 0, 0xaabbccdd,
	}

	tests := []struct {
		offset   uint
		width    uint
		expected uint32
	}{
		{0, 16, 0x0123},
		{8, 16, 0x2345},
		{16, 16, 0x4567},
		{20, 16, 0x5678},
		{24, 16, 0x6789},
		{28, 16, 0x789a},
		{32, 16, 0x89ab},
		{56, 16, 0xeffe},
		{4, 4, 0x1},
		{0, 32, 0x01234567},
		{16, 32, 0x456789ab},
		{240, 16, 0xccdd},
		{248, 16, 0xdd00},
		{256, 16, 0},
		{0, 0, 0},
		{0, 33, 0},
	}

	for i, item := range tests {
		actual := difficulty.Window(words, item.offset, item.width)
		assert.Equal(t, item.expected, actual, "%d: offset: %d  width: %d", i, item.offset, item.width)
	}
}

func TestEvaluateLZ8(t *testing.T) {
	digest := blockdigest.State{0, 0x00010000}
	value, ok := difficulty.Evaluate(8, digest)
	assert.True(t, ok, "leading zeros not detected")
	assert.Equal(t, uint32(1), value, "wrong value")

	// any bit set in the first word fails regardless of the second
	for _, w0 := range []uint32{1, 0x80000000, 0x00010000} {
		for _, w1 := range []uint32{0, 1, 0xffffffff} {
			_, ok := difficulty.Evaluate(8, blockdigest.State{w0, w1})
			assert.False(t, ok, "w0: %08x  w1: %08x", w0, w1)
		}
	}
}

func TestEvaluateLZ4(t *testing.T) {
	// the window after 16 zero bits is the low half of word 0
	value, ok := difficulty.Evaluate(4, blockdigest.State{0, 0x00010000})
	assert.True(t, ok, "leading zeros not detected")
	assert.Equal(t, uint32(0), value, "wrong value")

	value, ok = difficulty.Evaluate(4, blockdigest.State{0x00000004, 0xffffffff})
	assert.True(t, ok, "leading zeros not detected")
	assert.Equal(t, uint32(4), value, "wrong value")

	_, ok = difficulty.Evaluate(4, blockdigest.State{0x00010000})
	assert.False(t, ok, "bit 15 set must fail")
}

func TestEvaluateLZ12(t *testing.T) {
	for _, w1 := range []uint32{0, 1, 0x1234, 0xffff} {
		value, ok := difficulty.Evaluate(12, blockdigest.State{0, w1, 0xffffffff})
		assert.True(t, ok, "w1: %08x", w1)
		assert.Equal(t, w1, value, "value must equal word 1")
	}
	_, ok := difficulty.Evaluate(12, blockdigest.State{0, 0x00010000})
	assert.False(t, ok, "bit 47 set must fail")
}

func TestEvaluateLZ13And14(t *testing.T) {
	value, ok := difficulty.Evaluate(13, blockdigest.State{0, 0x00000abc, 0xdef01234})
	assert.True(t, ok, "leading zeros not detected")
	assert.Equal(t, uint32(0xabcd), value, "lz 13 spans words 1 and 2")

	_, ok = difficulty.Evaluate(13, blockdigest.State{0, 0x00001000})
	assert.False(t, ok, "lz 13 must check word 1")

	value, ok = difficulty.Evaluate(14, blockdigest.State{0, 0x000000ab, 0xcdef0123})
	assert.True(t, ok, "leading zeros not detected")
	assert.Equal(t, uint32(0xabcd), value, "lz 14 spans words 1 and 2")

	_, ok = difficulty.Evaluate(14, blockdigest.State{0, 0x00000100})
	assert.False(t, ok, "lz 14 must check word 1")
}

func TestEvaluateGeneral(t *testing.T) {
	for lz := difficulty.MinimumLeadingZeros; lz <= difficulty.MaximumLeadingZeros; lz += 1 {

		// a single bit just after the zero region
		var digest blockdigest.State
		bit := uint(4*lz + difficulty.WindowBits - 1)
		digest[bit/32] = 1 << (31 - bit%32)

		value, ok := difficulty.Evaluate(lz, digest)
		assert.True(t, ok, "lz: %d", lz)
		assert.Equal(t, uint32(1), value, "lz: %d", lz)

		// a single bit at the end of the zero region
		digest = blockdigest.State{}
		bit = uint(4*lz - 1)
		digest[bit/32] = 1 << (31 - bit%32)

		_, ok = difficulty.Evaluate(lz, digest)
		assert.False(t, ok, "lz: %d", lz)
	}
}

func TestEvaluateOutOfRange(t *testing.T) {
	var digest blockdigest.State
	for _, lz := range []int{-1, 0, 1, 15, 64} {
		_, ok := difficulty.Evaluate(lz, digest)
		assert.False(t, ok, "lz: %d", lz)
		_, ok = difficulty.Qualifies(lz, 65536, digest)
		assert.False(t, ok, "lz: %d", lz)
	}
}

func TestQualifies(t *testing.T) {
	digest := blockdigest.State{0, 0x00040000}

	tests := []struct {
		threshold int64
		ok        bool
	}{
		{-1, false},
		{0, false},
		{4, false},
		{5, true},
		{65536, true},
		{1 << 40, true},
	}

	for i, item := range tests {
		value, ok := difficulty.Qualifies(8, item.threshold, digest)
		assert.Equal(t, uint32(4), value, "%d: value", i)
		assert.Equal(t, item.ok, ok, "%d: threshold: %d", i, item.threshold)
	}
}

func TestAnalyse(t *testing.T) {
	tests := []struct {
		digest blockdigest.State
		lz     int
		value  uint32
	}{
		{blockdigest.State{0xffffffff}, 0, 0xffff},
		{blockdigest.State{0x0fedcba9}, 1, 0xfedc},
		{blockdigest.State{0x00001234, 0x56789abc}, 4, 0x1234},
		{blockdigest.State{0x00000001, 0x23456789}, 7, 0x1234},
		{blockdigest.State{0, 0x00abcdef}, 10, 0xabcd},
		{blockdigest.State{}, 64, 0},
	}

	for i, item := range tests {
		lz, value := difficulty.Analyse(item.digest)
		assert.Equal(t, item.lz, lz, "%d: lz", i)
		assert.Equal(t, item.value, value, "%d: value", i)
	}
}

func TestBetter(t *testing.T) {
	assert.True(t, difficulty.Better(9, 0xffff, 8, 5), "more zeros")
	assert.True(t, difficulty.Better(8, 4, 8, 5), "smaller value")
	assert.False(t, difficulty.Better(8, 5, 8, 5), "equal value")
	assert.False(t, difficulty.Better(7, 0, 8, 65536), "fewer zeros")
}
