// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package protocol - the line oriented mining protocol
//
// request:
//
//   <hex payload> <LZ> <DN>
//
// responses, exactly one per request:
//
//   00000000<32 hex nonce bytes>:<8 × 8 hex digest words>
//   . <hashes per second>
//
// lines carry no terminator here; the transport adds and strips "\n"
package protocol
