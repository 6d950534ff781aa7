// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/powminer/fault"
	"github.com/bitmark-inc/powminer/protocol"
)

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	job, err := makeJob(c.String("payload"), c.Int("lz"), c.Int64("dn"))
	if nil != err {
		return err
	}

	line := strings.Join(c.Args(), " ")
	result, _, err := protocol.ParseResponse(line)
	if nil != err {
		return err
	}
	if nil == result {
		return fault.ErrInvalidResponse
	}

	v, err := verifyResult(job, result)
	if nil != err {
		return err
	}

	return printJson(m.w, v)
}

func runAnalyse(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 1 != c.NArg() {
		return fault.ErrMissingParameters
	}

	a, err := analyseDigest(c.Args().Get(0), c.Int("lz"), c.Int64("dn"))
	if nil != err {
		return err
	}

	return printJson(m.w, a)
}
