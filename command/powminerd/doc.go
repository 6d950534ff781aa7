// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// powminerd - proof of work mining worker
//
// listens on TCP for lines of the form:
//
//   <hex payload> <LZ> <DN>
//
// and answers each line with either a qualifying nonce and digest or
// the hash rate achieved during the time budget
//
// usage:
//
//   powminerd [--config-file=FILE] [start|run] [[HOST] PORT]
package main
