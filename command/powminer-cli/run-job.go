// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/powminer/protocol"
	"github.com/bitmark-inc/powminer/stats"
)

const dialTimeout = 10 * time.Second

type jobReply struct {
	Rounds   int           `json:"rounds"`
	Found    bool          `json:"found"`
	LastRate float64       `json:"lastRate,omitempty"`
	Result   *verification `json:"result,omitempty"`
}

func runJob(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	job, err := makeJob(c.String("payload"), c.Int("lz"), c.Int64("dn"))
	if nil != err {
		return err
	}

	connect := c.String("connect")
	if m.verbose {
		fmt.Fprintf(m.e, "connecting to: %s\n", connect)
	}

	conn, err := net.DialTimeout("tcp", connect, dialTimeout)
	if nil != err {
		return err
	}
	defer conn.Close()

	reply, err := mine(conn, job, c.Int("rounds"), m)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

// send the job until a verified result arrives or the rounds run out
func mine(conn io.ReadWriter, job protocol.Job, rounds int, m *metadata) (*jobReply, error) {

	reader := bufio.NewReader(conn)
	request := protocol.EncodeJob(job) + "\n"
	reply := &jobReply{}

	for round := 1; 0 == rounds || round <= rounds; round += 1 {
		if _, err := io.WriteString(conn, request); nil != err {
			return nil, err
		}

		line, err := reader.ReadString('\n')
		if nil != err {
			return nil, err
		}

		result, rate, err := protocol.ParseResponse(line)
		if nil != err {
			return nil, err
		}
		reply.Rounds = round

		if nil != rate {
			reply.LastRate = rate.HashesPerSecond
			if m.verbose {
				fmt.Fprintf(m.e, "round: %d  rate: %s\n", round, stats.HashRate(rate.HashesPerSecond))
			}
			continue
		}

		v, err := verifyResult(job, result)
		if nil != err {
			return nil, err
		}
		reply.Found = true
		reply.Result = v
		return reply, nil
	}

	return reply, nil
}
