// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package nonce - random values used to fill the nonce field of a
// mining message
//
// A source is owned by whoever runs the hashing loop; only one loop
// uses a source at a time so there is no locking.
package nonce

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
)

// Source - supplier of 32 bit random words
type Source interface {
	Uint32() uint32
}

type generator struct {
	r *rand.Rand
}

// New - a deterministic source, the same seed gives the same sequence
func New(seed int64) Source {
	return &generator{
		r: rand.New(rand.NewSource(seed)),
	}
}

// Seed - a random non-zero seed value
func Seed() (int64, error) {
	var buffer [8]byte
	if _, err := io.ReadFull(crand.Reader, buffer[:]); nil != err {
		return 0, err
	}
	seed := int64(binary.LittleEndian.Uint64(buffer[:]) >> 1)
	if 0 == seed {
		seed = 1
	}
	return seed, nil
}

func (g *generator) Uint32() uint32 {
	return g.r.Uint32()
}

// Fill - overwrite a buffer with random bytes, four per word drawn
func Fill(source Source, buffer []byte) {
	var word [4]byte
	for i := 0; i < len(buffer); i += 4 {
		binary.LittleEndian.PutUint32(word[:], source.Uint32())
		copy(buffer[i:], word[:])
	}
}
