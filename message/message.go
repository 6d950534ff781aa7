// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package message - the 128 byte buffer hashed by each mining attempt
//
// layout (offsets in bytes):
//
//   [0, L)      payload
//   [4, 20)     nonce, four random words written over the payload
//   [L]         0x80 padding marker
//   [126, 128)  big endian payload length in bits
//
// the nonce overlaps the payload whenever L > 4; bytes [10, 20) are
// replaced for every attempt, bytes [4, 10) keep their initial value
package message

import (
	"encoding/binary"

	"github.com/bitmark-inc/powminer/blockdigest"
	"github.com/bitmark-inc/powminer/fault"
	"github.com/bitmark-inc/powminer/nonce"
)

// buffer offsets
const (
	Size           = blockdigest.MessageLength
	MaximumPayload = Size - 1

	NonceStart   = 4
	NonceEnd     = 20
	NonceLength  = NonceEnd - NonceStart
	MutableStart = 10

	lengthOffset = Size - 2
	paddingByte  = 0x80
)

// Message - a complete pre-padded mining message
type Message [Size]byte

// Build - create a message from a payload and a fresh random nonce
func Build(payload []byte, rng nonce.Source) (*Message, error) {
	if len(payload) > MaximumPayload {
		return nil, fault.ErrPayloadTooLong
	}

	var initial [NonceLength]byte
	for i := 0; i < NonceLength; i += 4 {
		binary.LittleEndian.PutUint32(initial[i:], rng.Uint32())
	}
	return layout(payload, initial), nil
}

// FromNonce - recreate the message that produced a reported nonce
//
// the reported nonce is the final content of [4, 20) after any
// rerandomisation, so it is written last and replaces a marker that
// falls inside that range
func FromNonce(payload []byte, n [NonceLength]byte) (*Message, error) {
	if len(payload) > MaximumPayload {
		return nil, fault.ErrPayloadTooLong
	}
	m := layout(payload, n)
	copy(m[NonceStart:NonceEnd], n[:])
	return m, nil
}

// the write order matters: marker and length overwrite earlier bytes
func layout(payload []byte, n [NonceLength]byte) *Message {
	m := new(Message)
	copy(m[:], payload)
	copy(m[NonceStart:NonceEnd], n[:])

	size := len(payload)
	m[size] = paddingByte
	binary.BigEndian.PutUint16(m[lengthOffset:], uint16(8*size))
	return m
}

// RerandomiseNonce - replace bytes [10, 20) to search a new nonce space
func (m *Message) RerandomiseNonce(rng nonce.Source) {
	nonce.Fill(rng, m[MutableStart:NonceEnd])
}

// Nonce - copy of the nonce field
func (m *Message) Nonce() [NonceLength]byte {
	var n [NonceLength]byte
	copy(n[:], m[NonceStart:NonceEnd])
	return n
}

// Digest - the double hash of the current message contents
func (m *Message) Digest() blockdigest.State {
	return blockdigest.DoubleHash((*[Size]byte)(m))
}
