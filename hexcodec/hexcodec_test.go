// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hexcodec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/powminer/hexcodec"
)

func TestDecode(t *testing.T) {
	items := []struct {
		hex      string
		maxBytes int
		expected []byte
	}{
		{"", 0, []byte{}},
		{"", 2, []byte{0x00, 0x00}},
		{"00", 1, []byte{0x00}},
		{"0a1B", 2, []byte{0x0a, 0x1b}},
		{"FFfe", 2, []byte{0xff, 0xfe}},
		// odd length: missing low nibble
		{"abc", 2, []byte{0xab, 0xc0}},
		// trailing characters ignored
		{"0102030405", 2, []byte{0x01, 0x02}},
		// non-hex is a zero nibble
		{"zz1g", 2, []byte{0x00, 0x10}},
		{"de ad", 3, []byte{0xde, 0x0a, 0xd0}},
		{"\xff\x80", 1, []byte{0x00}},
		// zero filled
		{"12", 4, []byte{0x12, 0x00, 0x00, 0x00}},
		// nothing requested
		{"123456", -1, []byte{}},
	}

	for i, item := range items {
		actual := hexcodec.Decode(item.hex, item.maxBytes)
		assert.Equal(t, item.expected, actual, "%d: decode %q", i, item.hex)
	}
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "", hexcodec.Encode(nil), "empty")
	assert.Equal(t, "00FF10AB", hexcodec.Encode([]byte{0x00, 0xff, 0x10, 0xab}), "bytes")
}

// decoding then encoding reproduces the case normalised input
func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"00",
		"deadBEEF",
		"0123456789abcdefABCDEF",
		strings.Repeat("a5", 127),
	}
	for _, s := range inputs {
		data := hexcodec.Decode(s, len(s)/2)
		assert.Equal(t, strings.ToUpper(s), hexcodec.Encode(data), "round trip: %q", s)
	}
}

func TestDecodeLimit(t *testing.T) {
	s := strings.Repeat("11", 10) + strings.Repeat("22", 10)
	data := hexcodec.Decode(s, 10)
	assert.Equal(t, strings.Repeat("11", 10), hexcodec.Encode(data), "limit")
}
