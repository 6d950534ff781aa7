// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "powminer-cli"
	app.Usage = "send jobs to a powminerd and check its answers"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "job",
			Usage:     "send a job repeatedly until a result is found",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "127.0.0.1:2023",
					Usage: " powminerd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "payload, p",
					Value: "",
					Usage: "*message payload `HEX`",
				},
				cli.IntFlag{
					Name:  "lz, l",
					Value: 4,
					Usage: " leading zero nibbles `COUNT`",
				},
				cli.Int64Flag{
					Name:  "dn, d",
					Value: 65536,
					Usage: " difficulty threshold `NUMBER`",
				},
				cli.IntFlag{
					Name:  "rounds, r",
					Value: 10,
					Usage: " maximum jobs to send, 0 for no limit `COUNT`",
				},
			},
			Action: runJob,
		},
		{
			Name:      "analyse",
			Usage:     "count leading zero nibbles of a digest and show the value after them",
			ArgsUsage: "DIGEST\n   DIGEST: 64 hex characters",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "lz, l",
					Value: 4,
					Usage: " target leading zero nibbles `COUNT`",
				},
				cli.Int64Flag{
					Name:  "dn, d",
					Value: 65536,
					Usage: " target value `NUMBER`",
				},
			},
			Action: runAnalyse,
		},
		{
			Name:      "verify",
			Usage:     "check a result line against its job",
			ArgsUsage: "RESULT-LINE\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payload, p",
					Value: "",
					Usage: "*message payload `HEX`",
				},
				cli.IntFlag{
					Name:  "lz, l",
					Value: 4,
					Usage: " leading zero nibbles `COUNT`",
				},
				cli.Int64Flag{
					Name:  "dn, d",
					Value: 65536,
					Usage: " difficulty threshold `NUMBER`",
				},
			},
			Action: runVerify,
		},
		{
			Name:  "version",
			Usage: "display powminer-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
