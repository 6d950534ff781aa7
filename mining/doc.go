// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mining - the time bounded hashing loop for a single job
//
// each job moves a session through:
//
//   Idle → Hashing → Found | TimedOut
//
// Found sends one result, TimedOut sends one rate report, never both
package mining

//go:generate mockgen -destination=mocks/reporter.go -package=mocks github.com/bitmark-inc/powminer/mining Reporter
