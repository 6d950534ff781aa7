// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"time"
)

// DefaultBudget - wall clock time spent hashing one job
const DefaultBudget = 1100 * time.Millisecond

// Configuration - the mining section of the configuration file
type Configuration struct {
	BudgetMilliseconds int   `gluamapper:"budget_ms" json:"budget_ms"`
	Seed               int64 `gluamapper:"seed" json:"seed"`
}

// Parameters - values a session uses while hashing
type Parameters struct {
	Budget time.Duration
}

// DefaultParameters - parameters used when nothing is configured
func DefaultParameters() Parameters {
	return Parameters{
		Budget: DefaultBudget,
	}
}

// Parameters - convert configuration values, zero or negative budget
// selects the default
func (conf Configuration) Parameters() Parameters {
	if conf.BudgetMilliseconds <= 0 {
		return DefaultParameters()
	}
	return Parameters{
		Budget: time.Duration(conf.BudgetMilliseconds) * time.Millisecond,
	}
}
