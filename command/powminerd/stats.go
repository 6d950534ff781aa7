// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/dustin/go-humanize"

	"github.com/bitmark-inc/powminer/server"
)

const (
	statsDelay = 60 * time.Second
)

// periodically log the server totals and memory use
type statsReporter struct {
	log *logger.L
	s   *server.Server
}

func (r *statsReporter) Run(args interface{}, shutdown <-chan struct{}) {

	r.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(statsDelay):
		}

		r.log.Infof("totals: %s", r.s.Totals())

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		r.log.Debugf("allocated: %s  cumulative: %s  OS virtual: %s",
			humanize.IBytes(m.Alloc),
			humanize.IBytes(m.TotalAlloc),
			humanize.IBytes(m.Sys),
		)
	}

	r.log.Info("stopped")
}
