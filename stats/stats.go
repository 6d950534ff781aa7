// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stats - process wide totals for the worker
package stats

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Totals - running counts, safe for concurrent use
type Totals struct {
	Connections Counter
	Jobs        Counter
	Results     Counter
	RateReports Counter
	Hashes      Counter
}

// Snapshot - a copy of the totals at one moment
type Snapshot struct {
	Connections uint64 `json:"connections"`
	Jobs        uint64 `json:"jobs"`
	Results     uint64 `json:"results"`
	RateReports uint64 `json:"rateReports"`
	Hashes      uint64 `json:"hashes"`
}

// Snapshot - read all counters
func (t *Totals) Snapshot() Snapshot {
	return Snapshot{
		Connections: t.Connections.Uint64(),
		Jobs:        t.Jobs.Uint64(),
		Results:     t.Results.Uint64(),
		RateReports: t.RateReports.Uint64(),
		Hashes:      t.Hashes.Uint64(),
	}
}

func (s Snapshot) String() string {
	return fmt.Sprintf(
		"connections: %d  jobs: %d  results: %d  rate reports: %d  hashes: %s",
		s.Connections,
		s.Jobs,
		s.Results,
		s.RateReports,
		humanize.Comma(int64(s.Hashes)),
	)
}

// HashRate - humanised hashes per second, e.g. "1.25 MH/s"
func HashRate(perSecond float64) string {
	return humanize.SIWithDigits(perSecond, 2, "H/s")
}
