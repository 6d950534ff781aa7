// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/powminer/blockdigest"
	"github.com/bitmark-inc/powminer/difficulty"
	"github.com/bitmark-inc/powminer/fault"
	"github.com/bitmark-inc/powminer/hexcodec"
	"github.com/bitmark-inc/powminer/message"
	"github.com/bitmark-inc/powminer/protocol"
)

type verification struct {
	Nonce        string `json:"nonce"`
	Digest       string `json:"digest"`
	LeadingZeros int    `json:"leadingZeros"`
	Value        uint32 `json:"value"`
}

type analysis struct {
	Digest       string `json:"digest"`
	LeadingZeros int    `json:"leadingZeros"`
	Value        uint32 `json:"value"`
	BeatsTarget  bool   `json:"beatsTarget"`
}

// decode a payload the same way the worker does
func makeJob(payloadHex string, lz int, dn int64) (protocol.Job, error) {
	if "" == payloadHex {
		return protocol.Job{}, fault.ErrMissingParameters
	}
	size := len(payloadHex) / 2
	if size > message.MaximumPayload {
		return protocol.Job{}, fault.ErrPayloadTooLong
	}
	job := protocol.Job{
		Payload:      hexcodec.Decode(payloadHex, size),
		LeadingZeros: lz,
		Threshold:    dn,
	}
	return job, nil
}

// rebuild the message from the reported nonce and check the digest
// is both correct and good enough for the job
func verifyResult(job protocol.Job, result *protocol.Result) (*verification, error) {
	m, err := message.FromNonce(job.Payload, result.Nonce)
	if nil != err {
		return nil, err
	}
	if m.Digest() != result.Digest {
		return nil, fault.ErrDigestMismatch
	}

	value, ok := difficulty.Qualifies(job.LeadingZeros, job.Threshold, result.Digest)
	if !ok {
		return nil, fault.ErrDifficultyNotMet
	}

	lz, _ := difficulty.Analyse(result.Digest)
	v := &verification{
		Nonce:        hexcodec.Encode(result.Nonce[:]),
		Digest:       result.Digest.String(),
		LeadingZeros: lz,
		Value:        value,
	}
	return v, nil
}

// the target comparison is the loose client rule: more leading zeros
// than the target, or a lower value at the same count
func analyseDigest(digestHex string, targetLz int, targetValue int64) (*analysis, error) {
	var digest blockdigest.State
	n, err := fmt.Sscan(digestHex, &digest)
	if nil != err {
		return nil, err
	}
	if 1 != n {
		return nil, fault.ErrInvalidDigest
	}

	lz, value := difficulty.Analyse(digest)
	a := &analysis{
		Digest:       digest.String(),
		LeadingZeros: lz,
		Value:        value,
		BeatsTarget:  difficulty.Better(lz, value, targetLz, targetValue),
	}
	return a, nil
}
