// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/powminer/difficulty"
	"github.com/bitmark-inc/powminer/message"
	"github.com/bitmark-inc/powminer/nonce"
	"github.com/bitmark-inc/powminer/protocol"
	"github.com/bitmark-inc/powminer/stats"
)

// Reporter - destination for the outcome of a job
type Reporter interface {
	SendResult(protocol.Result) error
	SendRate(protocol.RateReport) error
}

// Outcome - summary of one Run
type Outcome struct {
	State      State
	Attempts   uint64
	Elapsed    time.Duration
	Difficulty uint32
	Result     *protocol.Result
	Rate       *protocol.RateReport
}

// Session - hashes jobs one at a time, not safe for concurrent use
type Session struct {
	log        *logger.L
	rng        nonce.Source
	parameters Parameters
	totals     *stats.Totals
	state      State
}

// NewSession - create a session that draws nonces from rng
func NewSession(log *logger.L, rng nonce.Source, parameters Parameters, totals *stats.Totals) *Session {
	if nil == totals {
		totals = &stats.Totals{}
	}
	return &Session{
		log:        log,
		rng:        rng,
		parameters: parameters,
		totals:     totals,
		state:      Idle,
	}
}

// SetParameters - replace the parameters used by the next Run
func (s *Session) SetParameters(parameters Parameters) {
	s.parameters = parameters
}

// State - the state reached by the last Run
func (s *Session) State() State {
	return s.state
}

// Run - hash a job until a qualifying digest is found or the budget
// is spent, then send exactly one response to the reporter
func (s *Session) Run(job *protocol.Job, reporter Reporter) (*Outcome, error) {
	s.state = Idle
	s.totals.Jobs.Increment()

	m, err := message.Build(job.Payload, s.rng)
	if nil != err {
		return nil, err
	}

	s.log.Debugf("job: payload: %x  lz: %d  dn: %d  budget: %s", job.Payload, job.LeadingZeros, job.Threshold, s.parameters.Budget)

	s.state = Hashing
	outcome := &Outcome{}
	start := time.Now()

hashing:
	for {
		outcome.Elapsed = time.Since(start)
		if outcome.Elapsed >= s.parameters.Budget {
			break hashing
		}

		digest := m.Digest()
		outcome.Attempts += 1

		if value, ok := difficulty.Qualifies(job.LeadingZeros, job.Threshold, digest); ok {
			outcome.Elapsed = time.Since(start)
			outcome.Difficulty = value
			outcome.Result = &protocol.Result{
				Nonce:  m.Nonce(),
				Digest: digest,
			}
			s.state = Found
			break hashing
		}

		m.RerandomiseNonce(s.rng)
	}

	s.totals.Hashes.Add(outcome.Attempts)

	if Found == s.state {
		outcome.State = Found
		s.totals.Results.Increment()
		s.log.Infof("found: %#v  value: %d  attempts: %d  elapsed: %s", outcome.Result.Digest, outcome.Difficulty, outcome.Attempts, outcome.Elapsed)
		return outcome, reporter.SendResult(*outcome.Result)
	}

	s.state = TimedOut
	outcome.State = TimedOut
	outcome.Rate = &protocol.RateReport{
		HashesPerSecond: rate(outcome.Attempts, outcome.Elapsed),
	}
	s.totals.RateReports.Increment()
	s.log.Debugf("timed out: attempts: %d  elapsed: %s  rate: %s", outcome.Attempts, outcome.Elapsed, stats.HashRate(outcome.Rate.HashesPerSecond))
	return outcome, reporter.SendRate(*outcome.Rate)
}

func rate(attempts uint64, elapsed time.Duration) float64 {
	seconds := elapsed.Seconds()
	if seconds <= 0 {
		return 0
	}
	return float64(attempts) / seconds
}
