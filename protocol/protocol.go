// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bitmark-inc/powminer/blockdigest"
	"github.com/bitmark-inc/powminer/fault"
	"github.com/bitmark-inc/powminer/hexcodec"
	"github.com/bitmark-inc/powminer/message"
)

const (
	resultPrefix = "00000000"
	ratePrefix   = ". "

	nonceHexLength  = 2 * message.NonceLength
	digestHexLength = 2 * blockdigest.Length
	resultLength    = len(resultPrefix) + nonceHexLength + 1 + digestHexLength
)

// Job - one decoded request line
type Job struct {
	Payload      []byte
	LeadingZeros int
	Threshold    int64
}

// Result - a qualifying nonce and its digest
type Result struct {
	Nonce  [message.NonceLength]byte
	Digest blockdigest.State
}

// RateReport - hashing speed of a job that found nothing
type RateReport struct {
	HashesPerSecond float64
}

// ParseJob - decode a request line
//
// missing or malformed fields become zero and non-hex characters
// decode as zero nibbles; the only error is a payload longer than
// message.MaximumPayload
func ParseJob(line string) (*Job, error) {
	fields := strings.Fields(line)

	payloadHex := field(fields, 0)
	size := len(payloadHex) / 2
	if size > message.MaximumPayload {
		return nil, fault.ErrPayloadTooLong
	}

	job := &Job{
		Payload:      hexcodec.Decode(payloadHex, size),
		LeadingZeros: int(atoi(field(fields, 1))),
		Threshold:    atoi(field(fields, 2)),
	}
	return job, nil
}

func field(fields []string, n int) string {
	if n < len(fields) {
		return fields[n]
	}
	return ""
}

// leading sign and digits only, anything unparsable is zero,
// overflow saturates
func atoi(s string) int64 {
	end := 0
	if end < len(s) && ('-' == s[end] || '+' == s[end]) {
		end += 1
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end += 1
	}
	if end == digits {
		return 0
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if nil != err {
		if '-' == s[0] {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return n
}

// EncodeJob - the request line for a job
func EncodeJob(job Job) string {
	return fmt.Sprintf("%s %d %d", hexcodec.Encode(job.Payload), job.LeadingZeros, job.Threshold)
}

// EncodeResult - the success line
func EncodeResult(result Result) string {
	var b strings.Builder
	b.Grow(resultLength)
	b.WriteString(resultPrefix)
	b.WriteString(hexcodec.Encode(result.Nonce[:]))
	b.WriteByte(':')
	for _, word := range result.Digest {
		fmt.Fprintf(&b, "%08X", word)
	}
	return b.String()
}

// EncodeRate - the rate report line
func EncodeRate(report RateReport) string {
	return fmt.Sprintf("%s%.1f", ratePrefix, report.HashesPerSecond)
}

// ParseResponse - decode a line sent back by a worker
//
// exactly one of the returned pointers is non-nil on success
func ParseResponse(line string) (*Result, *RateReport, error) {
	line = strings.TrimSpace(line)

	if strings.HasPrefix(line, ratePrefix) {
		rate, err := strconv.ParseFloat(strings.TrimSpace(line[len(ratePrefix):]), 64)
		if nil != err {
			return nil, nil, fault.ErrInvalidResponse
		}
		return nil, &RateReport{HashesPerSecond: rate}, nil
	}

	if resultLength != len(line) || !strings.HasPrefix(line, resultPrefix) {
		return nil, nil, fault.ErrInvalidResponse
	}
	separator := len(resultPrefix) + nonceHexLength
	if ':' != line[separator] {
		return nil, nil, fault.ErrInvalidResponse
	}

	result := &Result{}
	n, err := hex.DecodeString(line[len(resultPrefix):separator])
	if nil != err {
		return nil, nil, fault.ErrInvalidResponse
	}
	copy(result.Nonce[:], n)

	d, err := hex.DecodeString(line[separator+1:])
	if nil != err {
		return nil, nil, fault.ErrInvalidResponse
	}
	err = blockdigest.FromBytes(&result.Digest, d)
	if nil != err {
		return nil, nil, err
	}
	return result, nil, nil
}
