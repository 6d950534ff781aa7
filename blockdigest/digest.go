// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdigest

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/powminer/fault"
)

// sizes of the various buffers
const (
	Length        = 32            // bytes in a digest
	MessageLength = 2 * BlockSize // bytes hashed by the first stage
)

// State - eight word running digest
//
// word 0 is the most significant, the same order as the printed
// SHA-256 value
type State [8]uint32

// Intermediate - second stage block: the first stage digest as a
// 256 bit message with its SHA-256 padding
type Intermediate [BlockSize]byte

// FirstStage - compress both blocks of a pre-padded message
func FirstStage(message *[MessageLength]byte) State {
	state := Compress(IV, message[:BlockSize])
	return Compress(state, message[BlockSize:])
}

// NewIntermediate - build the second stage block from a first stage state
func NewIntermediate(state State) *Intermediate {
	intermediate := new(Intermediate)
	for i, word := range state {
		binary.BigEndian.PutUint32(intermediate[4*i:], word)
	}
	intermediate[Length] = 0x80
	intermediate[BlockSize-2] = 0x01 // 256 bits
	return intermediate
}

// DoubleHash - the complete two stage digest of a message
func DoubleHash(message *[MessageLength]byte) State {
	return Compress(IV, NewIntermediate(FirstStage(message))[:])
}

// Bytes - big endian digest bytes
func (state State) Bytes() [Length]byte {
	var buffer [Length]byte
	for i, word := range state {
		binary.BigEndian.PutUint32(buffer[4*i:], word)
	}
	return buffer
}

// convert a digest to hex string for use by the fmt package (for %s)
func (state State) String() string {
	b := state.Bytes()
	return hex.EncodeToString(b[:])
}

// convert a digest to hex string for use by the fmt package (for %#v)
func (state State) GoString() string {
	return "<SHA256d:" + state.String() + ">"
}

// FromBytes - convert and validate big endian bytes to a digest
func FromBytes(state *State, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidDigest
	}
	for i := range state {
		state[i] = binary.BigEndian.Uint32(buffer[4*i:])
	}
	return nil
}

// convert a hex representation to a digest for use by the format
// package scan routines
func (state *State) Scan(s fmt.ScanState, verb rune) error {
	token, err := s.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	buffer := make([]byte, hex.DecodedLen(len(token)))
	byteCount, err := hex.Decode(buffer, token)
	if nil != err {
		return err
	}
	return FromBytes(state, buffer[:byteCount])
}
