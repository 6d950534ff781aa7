// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/powminer/fault"
)

func TestIsListenArguments(t *testing.T) {
	assert.True(t, isListenArguments([]string{"2023"}), "port")
	assert.True(t, isListenArguments([]string{"0.0.0.0", "2023"}), "host and port")
	assert.False(t, isListenArguments([]string{}), "empty")
	assert.False(t, isListenArguments([]string{"check-config"}), "command")
	assert.False(t, isListenArguments([]string{"70000"}), "port out of range")
	assert.False(t, isListenArguments([]string{"a", "b", "1"}), "too many")
}

func TestListenFromArguments(t *testing.T) {
	current := "127.0.0.1:2023"

	tests := []struct {
		arguments []string
		expected  string
	}{
		{[]string{}, current},
		{[]string{"start"}, current},
		{[]string{"run"}, current},
		{[]string{"check-config"}, current},
		{[]string{"3000"}, "127.0.0.1:3000"},
		{[]string{"0.0.0.0", "3000"}, "0.0.0.0:3000"},
		{[]string{"start", "3001"}, "127.0.0.1:3001"},
		{[]string{"run", "::1", "3002"}, "[::1]:3002"},
		{[]string{"start", "*", "3003"}, "*:3003"},
	}

	for i, item := range tests {
		listen, err := listenFromArguments(item.arguments, current)
		assert.Nil(t, err, "%d: error", i)
		assert.Equal(t, item.expected, listen, "%d: %q", i, item.arguments)
	}
}

func TestListenFromArgumentsInvalid(t *testing.T) {
	tests := [][]string{
		{"start", "port"},
		{"start", "localhost", "2023"},
		{"start", "1.2.3.4", "99999"},
		{"start", "a", "b", "c"},
	}

	for i, arguments := range tests {
		_, err := listenFromArguments(arguments, "127.0.0.1:2023")
		assert.Equal(t, fault.ErrInvalidListenAddress, err, "%d: %q", i, arguments)
	}
}
