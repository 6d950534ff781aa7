// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package difficulty - leading zero test and difficulty value of a
// second stage digest
//
// the digest is a 256 bit big endian number; a job asks for lz
// leading zero nibbles and then compares the following 16 bits with
// its threshold
package difficulty

import (
	"github.com/bitmark-inc/powminer/blockdigest"
)

// limits on the number of leading zero nibbles
const (
	MinimumLeadingZeros = 2
	MaximumLeadingZeros = 14

	// bits in a difficulty value
	WindowBits = 16

	wordBits   = 32
	digestBits = 8 * blockdigest.Length
)

// Window - extract width bits (at most 32) starting at a bit offset
// counted from the most significant bit of words[0]
//
// bits beyond the end of the digest read as zero
func Window(words blockdigest.State, offset uint, width uint) uint32 {
	if 0 == width || width > wordBits || offset >= digestBits {
		return 0
	}

	i := offset / wordBits
	combined := uint64(words[i]) << wordBits
	if i+1 < uint(len(words)) {
		combined |= uint64(words[i+1])
	}

	shift := 2*wordBits - offset%wordBits - width
	mask := uint64(1)<<width - 1
	return uint32(combined >> shift & mask)
}

// check that the top n bits are all zero
func zeroPrefix(words blockdigest.State, n uint) bool {
	full := n / wordBits
	for i := uint(0); i < full; i += 1 {
		if 0 != words[i] {
			return false
		}
	}
	partial := n % wordBits
	if 0 == partial {
		return true
	}
	return 0 == words[full]>>(wordBits-partial)
}

// Evaluate - leading zero test for lz nibbles and the 16 bit value
// that follows them
//
// ok is false when lz is out of range or the digest has a non-zero
// bit in its first 4*lz bits; value is only meaningful when ok
func Evaluate(lz int, digest blockdigest.State) (uint32, bool) {
	if lz < MinimumLeadingZeros || lz > MaximumLeadingZeros {
		return 0, false
	}
	zeroBits := uint(4 * lz)
	if !zeroPrefix(digest, zeroBits) {
		return 0, false
	}
	return Window(digest, zeroBits, WindowBits), true
}

// Qualifies - Evaluate followed by the threshold comparison
func Qualifies(lz int, threshold int64, digest blockdigest.State) (uint32, bool) {
	value, ok := Evaluate(lz, digest)
	if !ok {
		return value, false
	}
	return value, int64(value) < threshold
}

// Analyse - count the leading zero nibbles of a digest and extract the
// 16 bit value that follows them
func Analyse(digest blockdigest.State) (int, uint32) {
	lz := 0
	for lz < digestBits/4 {
		if 0 != Window(digest, uint(4*lz), 4) {
			break
		}
		lz += 1
	}
	return lz, Window(digest, uint(4*lz), WindowBits)
}

// Better - true if a digest with (lz, value) beats the target pair
func Better(lz int, value uint32, targetLz int, targetValue int64) bool {
	if lz != targetLz {
		return lz > targetLz
	}
	return int64(value) < targetValue
}
