// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - accept one client at a time and mine each request
// line it sends
package server

import (
	"bufio"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/powminer/fault"
	"github.com/bitmark-inc/powminer/mining"
	"github.com/bitmark-inc/powminer/nonce"
	"github.com/bitmark-inc/powminer/protocol"
	"github.com/bitmark-inc/powminer/stats"
)

// Server - single threaded mining server
type Server struct {
	sync.Mutex

	log         *logger.L
	network     string
	address     string
	readTimeout time.Duration
	maximumLine int
	limiter     *rate.Limiter

	listener   net.Listener
	closed     bool
	session    *mining.Session
	parameters atomic.Value
	totals     stats.Totals
}

// New - create a server, the configuration must have defaults applied
func New(conf *Configuration, log *logger.L, rng nonce.Source, parameters mining.Parameters) (*Server, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	network, address, err := ParseListenAddress(conf.Listen)
	if nil != err {
		log.Errorf("listen: %q  error: %s", conf.Listen, err)
		return nil, err
	}

	limit := rate.Inf
	if conf.AcceptRate > 0 {
		limit = rate.Limit(conf.AcceptRate)
	}
	burst := conf.AcceptBurst
	if burst <= 0 {
		burst = DefaultAcceptBurst
	}
	maximumLine := conf.MaximumLineLength
	if maximumLine <= 0 {
		maximumLine = DefaultMaximumLineLength
	}

	s := &Server{
		log:         log,
		network:     network,
		address:     address,
		readTimeout: time.Duration(conf.ReadTimeout) * time.Second,
		maximumLine: maximumLine,
		limiter:     rate.NewLimiter(limit, burst),
	}
	s.session = mining.NewSession(log, rng, parameters, &s.totals)
	s.parameters.Store(parameters)

	return s, nil
}

// Listen - bind the listening socket
func (s *Server) Listen() error {
	s.Lock()
	defer s.Unlock()

	if nil != s.listener {
		return fault.ErrServerAlreadyStarted
	}

	listener, err := net.Listen(s.network, s.address)
	if nil != err {
		s.log.Errorf("listen: %s  error: %s", s.address, err)
		return err
	}
	s.listener = listener
	s.log.Infof("listening on: %s", listener.Addr())
	return nil
}

// Addr - the bound address, nil before Listen
func (s *Server) Addr() net.Addr {
	s.Lock()
	defer s.Unlock()

	if nil == s.listener {
		return nil
	}
	return s.listener.Addr()
}

// Update - parameters for jobs that start after this call
func (s *Server) Update(parameters mining.Parameters) {
	s.parameters.Store(parameters)
	s.log.Infof("mining budget: %s", parameters.Budget)
}

// Parameters - current mining parameters
func (s *Server) Parameters() mining.Parameters {
	return s.parameters.Load().(mining.Parameters)
}

// Totals - a snapshot of the server counters
func (s *Server) Totals() stats.Snapshot {
	return s.totals.Snapshot()
}

// Close - stop accepting, Serve returns nil once the current client
// finishes
func (s *Server) Close() error {
	s.Lock()
	defer s.Unlock()

	if nil == s.listener {
		return fault.ErrServerNotStarted
	}
	if s.closed {
		return nil
	}
	s.closed = true
	return s.listener.Close()
}

func (s *Server) isClosed() bool {
	s.Lock()
	defer s.Unlock()
	return s.closed
}

// Serve - accept clients one at a time until Close or a fatal error
//
// the only fatal request error is fault.ErrPayloadTooLong
func (s *Server) Serve() error {
	s.Lock()
	listener := s.listener
	s.Unlock()

	if nil == listener {
		return fault.ErrServerNotStarted
	}

	for {
		if err := s.limit(); nil != err {
			s.log.Errorf("accept limiter error: %s", err)
			return err
		}

		conn, err := listener.Accept()
		if nil != err {
			if s.isClosed() {
				s.log.Info("accept terminated")
				return nil
			}
			s.log.Errorf("accept error: %s", err)
			return err
		}

		err = s.handle(conn)
		if nil != err {
			s.Lock()
			s.closed = true
			s.Unlock()
			_ = listener.Close()
			return err
		}
	}
}

func (s *Server) limit() error {
	r := s.limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// serve one client until it disconnects; only returns an error that
// must stop the whole server
func (s *Server) handle(conn net.Conn) error {
	defer conn.Close()

	s.totals.Connections.Increment()
	remote := conn.RemoteAddr().String()
	s.log.Infof("client connected: %s", remote)

	reporter := &connection{conn: conn}
	initial := 256
	if initial > s.maximumLine {
		initial = s.maximumLine
	}
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, initial), s.maximumLine)

loop:
	for {
		if s.readTimeout > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(s.readTimeout))
		}

		if !scanner.Scan() {
			err := scanner.Err()
			switch {
			case bufio.ErrTooLong == err:
				s.log.Warnf("client: %s  error: %s", remote, fault.ErrLineTooLong)
			case nil != err:
				s.log.Warnf("client: %s  receive error: %s", remote, err)
			}
			break loop
		}

		line := scanner.Text()
		if "" == strings.TrimSpace(line) {
			s.log.Debugf("client: %s  sent empty line", remote)
			break loop
		}

		job, err := protocol.ParseJob(line)
		if nil != err {
			s.log.Criticalf("client: %s  request: %q  error: %s", remote, truncate(line), err)
			return err
		}

		s.session.SetParameters(s.Parameters())
		_, err = s.session.Run(job, reporter)
		if nil != err {
			s.log.Warnf("client: %s  send error: %s", remote, err)
			break loop
		}
	}

	s.log.Infof("client disconnected: %s  %s", remote, s.totals.Snapshot())
	return nil
}

func truncate(line string) string {
	const limit = 64
	if len(line) > limit {
		return line[:limit] + "..."
	}
	return line
}
