// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net"
	"strings"

	"github.com/bitmark-inc/powminer/fault"
)

// defaults for an empty configuration
const (
	DefaultListen            = "127.0.0.1:2023"
	DefaultMaximumLineLength = 2000
	DefaultAcceptBurst       = 1
)

// Configuration - the server section of the configuration file
type Configuration struct {
	Listen            string  `gluamapper:"listen" json:"listen"`
	ReadTimeout       int     `gluamapper:"read_timeout" json:"read_timeout"`
	AcceptRate        float64 `gluamapper:"accept_rate" json:"accept_rate"`
	AcceptBurst       int     `gluamapper:"accept_burst" json:"accept_burst"`
	MaximumLineLength int     `gluamapper:"maximum_line_length" json:"maximum_line_length"`
}

// ApplyDefaults - fill in zero fields
func (conf *Configuration) ApplyDefaults() {
	if "" == conf.Listen {
		conf.Listen = DefaultListen
	}
	if conf.MaximumLineLength <= 0 {
		conf.MaximumLineLength = DefaultMaximumLineLength
	}
	if conf.AcceptBurst <= 0 {
		conf.AcceptBurst = DefaultAcceptBurst
	}
	if conf.ReadTimeout < 0 {
		conf.ReadTimeout = 0
	}
}

// ParseListenAddress - determine the network type for an address
//
// accepts IPv4:PORT, [IPv6]:PORT and *:PORT; "*:PORT" is rewritten to
// "[::]:PORT" to listen on both tcp4 and tcp6
func ParseListenAddress(listen string) (network string, address string, err error) {
	if "" == listen {
		return "", "", fault.ErrInvalidListenAddress
	}

	host, port, err := net.SplitHostPort(listen)
	if nil != err || "" == port {
		return "", "", fault.ErrInvalidListenAddress
	}

	switch {
	case "*" == host:
		return "tcp", "[::]:" + port, nil
	case strings.HasPrefix(listen, "["):
		network = "tcp6"
	default:
		network = "tcp4"
	}

	ip := net.ParseIP(host)
	if nil == ip {
		return "", "", fault.ErrInvalidListenAddress
	}
	if "tcp4" == network && nil == ip.To4() {
		return "", "", fault.ErrInvalidListenAddress
	}
	return network, listen, nil
}
