// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

// State - position of a session in its job cycle
type State int

// session states
const (
	Idle     State = iota
	Hashing  State = iota
	Found    State = iota
	TimedOut State = iota
)

func (state State) String() string {
	switch state {
	case Idle:
		return "Idle"
	case Hashing:
		return "Hashing"
	case Found:
		return "Found"
	case TimedOut:
		return "TimedOut"
	default:
		return "*Unknown*"
	}
}
