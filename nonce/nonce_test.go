// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nonce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/powminer/nonce"
)

type fixed struct {
	values []uint32
	next   int
}

func (f *fixed) Uint32() uint32 {
	v := f.values[f.next%len(f.values)]
	f.next += 1
	return v
}

func TestSameSeedSameSequence(t *testing.T) {
	a := nonce.New(42)
	b := nonce.New(42)
	for i := 0; i < 100; i += 1 {
		assert.Equal(t, a.Uint32(), b.Uint32(), "value: %d", i)
	}
}

func TestDifferentSeeds(t *testing.T) {
	a := nonce.New(1)
	b := nonce.New(2)
	same := true
	for i := 0; i < 10; i += 1 {
		if a.Uint32() != b.Uint32() {
			same = false
		}
	}
	assert.False(t, same, "sequences from different seeds are identical")
}

func TestSeed(t *testing.T) {
	seed, err := nonce.Seed()
	assert.Nil(t, err, "seed error")
	assert.True(t, seed > 0, "seed must be positive: %d", seed)
}

func TestFill(t *testing.T) {
	f := &fixed{values: []uint32{0x04030201, 0x08070605, 0x0c0b0a09}}

	buffer := make([]byte, 10)
	nonce.Fill(f, buffer)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, buffer, "fill")
	assert.Equal(t, 3, f.next, "words drawn")
}
