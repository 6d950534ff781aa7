// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package watcher - notify when a single file changes or is removed
package watcher

import (
	"path/filepath"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/powminer/fault"
	"github.com/bitmark-inc/powminer/util"
)

// LoggerPrefix - tag for the watcher log channel
const LoggerPrefix = "file-watcher"

// Channels - signals sent by a watcher, both are buffered with
// capacity one and extra events are dropped while one is pending
type Channels struct {
	Change chan struct{}
	Remove chan struct{}
}

// NewChannels - create a pair of signal channels
func NewChannels() Channels {
	return Channels{
		Change: make(chan struct{}, 1),
		Remove: make(chan struct{}, 1),
	}
}

// FileWatcher - watches one file
type FileWatcher struct {
	sync.Mutex

	log      *logger.L
	watcher  *fsnotify.Watcher
	channels Channels
	filePath string
	started  bool
	done     chan struct{}
}

// New - create a watcher for an existing file
func New(targetFile string, log *logger.L, channels Channels) (*FileWatcher, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if !util.EnsureFileExists(filePath) {
		return nil, fault.ErrNotFoundConfigFile
	}

	w, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &FileWatcher{
		log:      log,
		watcher:  w,
		channels: channels,
		filePath: filePath,
		done:     make(chan struct{}),
	}, nil
}

// FilePath - absolute path of the watched file
func (w *FileWatcher) FilePath() string {
	return w.filePath
}

// Start - begin delivering events in the background
func (w *FileWatcher) Start() error {
	w.Lock()
	defer w.Unlock()

	if w.started {
		return fault.ErrWatcherAlreadyStarted
	}

	err := w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}
	w.started = true

	go w.run()
	return nil
}

// Stop - release the watcher, no more events are sent
func (w *FileWatcher) Stop() error {
	w.Lock()
	started := w.started
	w.Unlock()

	err := w.watcher.Close()
	if started {
		<-w.done
	}
	return err
}

func (w *FileWatcher) run() {
	defer close(w.done)

	base := filepath.Base(w.filePath)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.log.Debugf("file event: %v", event)

			if isRemove(event) {
				w.log.Warnf("file %s removed, stop", w.filePath)
				w.sendEvent(w.channels.Remove, "remove")
				return
			}

			if filepath.Base(event.Name) != base {
				w.log.Debugf("event for: %s does not match: %s, discard", event.Name, base)
				continue
			}

			if isChange(event) {
				w.log.Info("sending change event")
				w.sendEvent(w.channels.Change, "change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func (w *FileWatcher) sendEvent(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

// rename is treated as removal since the watch is lost with the inode
func isRemove(event fsnotify.Event) bool {
	return "" == event.Name ||
		event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
