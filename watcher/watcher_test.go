// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package watcher_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/powminer/fault"
	"github.com/bitmark-inc/powminer/fixtures"
	"github.com/bitmark-inc/powminer/watcher"
)

const (
	testFileName = "watched.conf"
)

func waitFor(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	case <-time.After(5 * time.Second):
		return false
	}
}

func TestNewMissingFile(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	w, err := watcher.New(filepath.Join(fixtures.Directory(), "missing"), logger.New(fixtures.LogCategory), watcher.NewChannels())
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "wrong error")
	assert.Nil(t, w, "watcher must be nil")
}

func TestNewNilLogger(t *testing.T) {
	_, err := watcher.New(testFileName, nil, watcher.NewChannels())
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "wrong error")
}

func TestChangeAndRemove(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	fileName := filepath.Join(fixtures.Directory(), testFileName)
	err := ioutil.WriteFile(fileName, []byte("return {}\n"), 0600)
	assert.Nil(t, err, "create file")

	channels := watcher.NewChannels()
	w, err := watcher.New(fileName, logger.New(fixtures.LogCategory), channels)
	assert.Nil(t, err, "new watcher")

	absolute, _ := filepath.Abs(fileName)
	assert.Equal(t, absolute, w.FilePath(), "file path")

	err = w.Start()
	assert.Nil(t, err, "start")
	assert.Equal(t, fault.ErrWatcherAlreadyStarted, w.Start(), "second start")

	err = ioutil.WriteFile(fileName, []byte("return { mining = {} }\n"), 0600)
	assert.Nil(t, err, "write file")
	assert.True(t, waitFor(channels.Change), "no change event")

	err = os.Remove(fileName)
	assert.Nil(t, err, "remove file")
	assert.True(t, waitFor(channels.Remove), "no remove event")

	_ = w.Stop()
}

func TestStop(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	fileName := filepath.Join(fixtures.Directory(), testFileName)
	err := ioutil.WriteFile(fileName, []byte("return {}\n"), 0600)
	assert.Nil(t, err, "create file")

	w, err := watcher.New(fileName, logger.New(fixtures.LogCategory), watcher.NewChannels())
	assert.Nil(t, err, "new watcher")
	assert.Nil(t, w.Start(), "start")

	done := make(chan struct{})
	go func() {
		_ = w.Stop()
		close(done)
	}()
	assert.True(t, waitFor(done), "stop did not return")
}
