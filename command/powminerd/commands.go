// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/powminer/configuration"
	"github.com/bitmark-inc/powminer/fault"
	"github.com/bitmark-inc/powminer/server"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "check-config", "config-test", "cfg":
		return false // defer processing until configuration is read

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		// bare [HOST] PORT runs the server
		if isListenArguments(arguments) {
			return false
		}

		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  start [[HOST] PORT]        (run)    - run the mining server, optionally overriding\n")
		fmt.Printf("                                        the configured listen address\n")
		fmt.Printf("\n")

		fmt.Printf("  [HOST] PORT                         - same as start\n")
		fmt.Printf("\n")

		fmt.Printf("  check-config               (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *configuration.Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "check-config", "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		_ = json.Indent(&out, b, "", "  ")
		_, _ = out.WriteTo(os.Stdout)
		_, _ = os.Stdout.WriteString("\n")

	default: // everything else runs the server
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// true for "PORT" or "HOST PORT"
func isListenArguments(arguments []string) bool {
	switch len(arguments) {
	case 1:
		return isPort(arguments[0])
	case 2:
		return isPort(arguments[1])
	default:
		return false
	}
}

func isPort(s string) bool {
	n, err := strconv.ParseUint(s, 10, 16)
	return nil == err && n <= 65535
}

// determine the listen address from the command arguments
//
//   start [[HOST] PORT]
//   [HOST] PORT
//
// a lone port keeps the host of the current address
func listenFromArguments(arguments []string, current string) (string, error) {
	if len(arguments) > 0 && ("start" == arguments[0] || "run" == arguments[0]) {
		arguments = arguments[1:]
	} else if !isListenArguments(arguments) {
		return current, nil
	}

	host := ""
	port := ""
	switch len(arguments) {
	case 0:
		return current, nil
	case 1:
		h, _, err := net.SplitHostPort(current)
		if nil != err {
			return "", fault.ErrInvalidListenAddress
		}
		host = h
		port = arguments[0]
	case 2:
		host = arguments[0]
		port = arguments[1]
	default:
		return "", fault.ErrInvalidListenAddress
	}

	if !isPort(port) {
		return "", fault.ErrInvalidListenAddress
	}

	listen := net.JoinHostPort(host, port)
	if _, _, err := server.ParseListenAddress(listen); nil != err {
		return "", err
	}
	return listen, nil
}
