// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/powminer/fault"
)

// ReaderLoggerPrefix - tag for the reader log channel
const ReaderLoggerPrefix = "config-reader"

// DefaultSettleDelay - wait after a change event so an editor can
// finish writing
const DefaultSettleDelay = time.Second

// Reader - holds the current configuration and re-reads the file on
// request
type Reader struct {
	sync.RWMutex

	log         *logger.L
	fileName    string
	settleDelay time.Duration
	current     *Configuration
	subscribers []func(*Configuration)
}

// NewReader - create a reader starting from an already parsed
// configuration
func NewReader(fileName string, initial *Configuration, log *logger.L, settleDelay time.Duration) (*Reader, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if "" == fileName || nil == initial {
		return nil, fault.ErrMissingParameters
	}
	return &Reader{
		log:         log,
		fileName:    fileName,
		settleDelay: settleDelay,
		current:     initial,
	}, nil
}

// Current - the latest successfully parsed configuration
func (r *Reader) Current() *Configuration {
	r.RLock()
	defer r.RUnlock()
	return r.current
}

// Subscribe - call f with every newly loaded configuration
func (r *Reader) Subscribe(f func(*Configuration)) {
	r.Lock()
	defer r.Unlock()
	r.subscribers = append(r.subscribers, f)
}

// Refresh - re-read the file, on error the current configuration is
// kept and subscribers are not called
func (r *Reader) Refresh() error {
	configuration, err := GetConfiguration(r.fileName)
	if nil != err {
		r.log.Errorf("failed to read configuration from: %s  error: %s", r.fileName, err)
		return err
	}

	r.Lock()
	r.current = configuration
	subscribers := make([]func(*Configuration), len(r.subscribers))
	copy(subscribers, r.subscribers)
	r.Unlock()

	r.log.Infof("configuration reloaded from: %s", r.fileName)
	for _, f := range subscribers {
		f(configuration)
	}
	return nil
}

// Start - refresh on every change signal until shutdown is closed
//
// a remove signal is logged, the last configuration stays in force
func (r *Reader) Start(change <-chan struct{}, remove <-chan struct{}, shutdown <-chan struct{}) {
	go func() {
		for {
			select {
			case <-shutdown:
				r.log.Info("stopped")
				return

			case <-change:
				r.log.Debugf("receive file change event, wait for %s to settle", r.settleDelay)
				select {
				case <-time.After(r.settleDelay):
				case <-shutdown:
					r.log.Info("stopped")
					return
				}
				_ = r.Refresh()

			case <-remove:
				r.log.Warnf("%s: %s", r.fileName, fault.ErrConfigurationRemoved)
			}
		}
	}()
}
