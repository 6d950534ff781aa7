// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"io"
	"net"

	"github.com/bitmark-inc/powminer/protocol"
)

// sends responses to the connected client, one line each
type connection struct {
	conn net.Conn
}

func (c *connection) SendResult(result protocol.Result) error {
	return c.send(protocol.EncodeResult(result))
}

func (c *connection) SendRate(report protocol.RateReport) error {
	return c.send(protocol.EncodeRate(report))
}

func (c *connection) send(line string) error {
	_, err := io.WriteString(c.conn, line+"\n")
	return err
}
