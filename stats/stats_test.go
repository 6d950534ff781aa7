// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stats_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/powminer/stats"
)

func TestCounter(t *testing.T) {
	var c stats.Counter

	assert.True(t, c.IsZero(), "counter is not zero at start")

	c.Increment()
	c.Increment()
	assert.Equal(t, uint64(2), c.Uint64(), "after increment")

	assert.Equal(t, uint64(1002), c.Add(1000), "add result")
	assert.False(t, c.IsZero(), "counter must not be zero")
}

func TestCounterConcurrent(t *testing.T) {
	var c stats.Counter
	var wg sync.WaitGroup

	for i := 0; i < 10; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(10000), c.Uint64(), "lost increments")
}

func TestSnapshot(t *testing.T) {
	var totals stats.Totals
	totals.Connections.Increment()
	totals.Jobs.Add(3)
	totals.Results.Increment()
	totals.RateReports.Add(2)
	totals.Hashes.Add(1234567)

	s := totals.Snapshot()
	assert.Equal(t, stats.Snapshot{
		Connections: 1,
		Jobs:        3,
		Results:     1,
		RateReports: 2,
		Hashes:      1234567,
	}, s, "snapshot")
	assert.Equal(t, "connections: 1  jobs: 3  results: 1  rate reports: 2  hashes: 1,234,567", s.String(), "string form")
}

func TestHashRate(t *testing.T) {
	assert.Equal(t, "1.5 MH/s", stats.HashRate(1500000), "mega")
	assert.Equal(t, "250 H/s", stats.HashRate(250), "units")
}
