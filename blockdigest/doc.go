// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockdigest - double SHA-256 of a pre-padded message
//
// The first stage runs the compression function over both 64 byte
// blocks of a 128 byte message that already carries its own padding;
// the second stage compresses a single block holding the 32 byte
// first stage digest.  The state is never chained between attempts,
// each digest starts again from the SHA-256 initial values.
package blockdigest
