// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hexcodec - lenient hexadecimal conversion
//
// Decoding never fails: any character that is not a hexadecimal digit
// is taken as a zero nibble, and characters beyond the requested size
// are ignored.
package hexcodec

// mapping of ASCII characters to nibble values, everything else is zero
var nibble [256]byte

func init() {
	for c := '0'; c <= '9'; c += 1 {
		nibble[c] = byte(c - '0')
	}
	for c := 'a'; c <= 'f'; c += 1 {
		nibble[c] = byte(c-'a') + 10
		nibble[c-'a'+'A'] = byte(c-'a') + 10
	}
}

const upperDigits = "0123456789ABCDEF"

// Decode - convert at most 2*maxBytes characters of a hex string
//
// the result is always exactly maxBytes long and zero filled; a
// missing low nibble (odd length input) is zero
func Decode(hex string, maxBytes int) []byte {
	if maxBytes <= 0 {
		return []byte{}
	}
	buffer := make([]byte, maxBytes)

	n := len(hex)
	if n > 2*maxBytes {
		n = 2 * maxBytes
	}

	for pos := 0; pos < n; pos += 2 {
		high := nibble[hex[pos]]
		low := byte(0)
		if pos+1 < n {
			low = nibble[hex[pos+1]]
		}
		buffer[pos/2] = high<<4 | low
	}
	return buffer
}

// Encode - uppercase hexadecimal
func Encode(data []byte) string {
	buffer := make([]byte, 2*len(data))
	for i, b := range data {
		buffer[2*i] = upperDigits[b>>4]
		buffer[2*i+1] = upperDigits[b&0x0f]
	}
	return string(buffer)
}
