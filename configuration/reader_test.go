// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/powminer/configuration"
	"github.com/bitmark-inc/powminer/fault"
	"github.com/bitmark-inc/powminer/fixtures"
)

func TestNewReaderErrors(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	conf := &configuration.Configuration{}

	_, err := configuration.NewReader("x.conf", conf, nil, 0)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "nil logger")

	_, err = configuration.NewReader("", conf, logger.New(fixtures.LogCategory), 0)
	assert.Equal(t, fault.ErrMissingParameters, err, "empty file name")

	_, err = configuration.NewReader("x.conf", nil, logger.New(fixtures.LogCategory), 0)
	assert.Equal(t, fault.ErrMissingParameters, err, "nil configuration")
}

func TestReaderRefresh(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, fileName := setup(t, `return { mining = { budget_ms = 100 } }`)
	defer os.RemoveAll(dir)

	initial, err := configuration.GetConfiguration(fileName)
	assert.Nil(t, err, "configuration error")

	r, err := configuration.NewReader(fileName, initial, logger.New(fixtures.LogCategory), 0)
	assert.Nil(t, err, "new reader")
	assert.Equal(t, initial, r.Current(), "initial configuration")

	var received []time.Duration
	r.Subscribe(func(c *configuration.Configuration) {
		received = append(received, c.MiningParameters().Budget)
	})

	err = ioutil.WriteFile(fileName, []byte(`return { mining = { budget_ms = 300 } }`), 0600)
	assert.Nil(t, err, "rewrite")

	err = r.Refresh()
	assert.Nil(t, err, "refresh")
	assert.Equal(t, []time.Duration{300 * time.Millisecond}, received, "subscriber values")
	assert.Equal(t, 300, r.Current().Mining.BudgetMilliseconds, "current budget")

	// a broken file keeps the last good configuration
	err = ioutil.WriteFile(fileName, []byte(`return {`), 0600)
	assert.Nil(t, err, "rewrite")

	err = r.Refresh()
	assert.NotNil(t, err, "refresh must fail")
	assert.Equal(t, 1, len(received), "subscriber must not be called")
	assert.Equal(t, 300, r.Current().Mining.BudgetMilliseconds, "current budget")
}

func TestReaderStart(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, fileName := setup(t, `return { mining = { budget_ms = 100 } }`)
	defer os.RemoveAll(dir)

	initial, err := configuration.GetConfiguration(fileName)
	assert.Nil(t, err, "configuration error")

	r, err := configuration.NewReader(fileName, initial, logger.New(fixtures.LogCategory), 10*time.Millisecond)
	assert.Nil(t, err, "new reader")

	updated := make(chan time.Duration, 1)
	r.Subscribe(func(c *configuration.Configuration) {
		updated <- c.MiningParameters().Budget
	})

	change := make(chan struct{}, 1)
	remove := make(chan struct{}, 1)
	shutdown := make(chan struct{})
	defer close(shutdown)

	r.Start(change, remove, shutdown)

	// removal alone does not alter the configuration
	remove <- struct{}{}

	err = ioutil.WriteFile(fileName, []byte(`return { mining = { budget_ms = 700 } }`), 0600)
	assert.Nil(t, err, "rewrite")
	change <- struct{}{}

	select {
	case budget := <-updated:
		assert.Equal(t, 700*time.Millisecond, budget, "updated budget")
	case <-time.After(5 * time.Second):
		t.Error("no update received")
	}
}
