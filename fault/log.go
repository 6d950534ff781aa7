// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// last chance channel, the tag stands out in the log file
const logTag = "PANIC"

var channel struct {
	sync.Mutex
	log *logger.L
}

// Initialise - setup a log channel for last attempt to log something
// must be called after logger.Initialise
func Initialise() error {
	channel.Lock()
	defer channel.Unlock()

	if nil != channel.log {
		return ErrAlreadyInitialised
	}
	channel.log = logger.New(logTag)
	if nil == channel.log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the logger
func Finalise() {
	channel.Lock()
	defer channel.Unlock()

	if nil != channel.log {
		channel.log.Flush()
		channel.log = nil
	}
}

// Criticalf - log a formatted string prefixed by the caller's location
func Criticalf(format string, arguments ...interface{}) {
	criticalf(2, format, arguments...)
}

// PanicIfError - conditional panic, the error is logged first
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	criticalf(2, "%s", s)
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(s)
}

func criticalf(skip int, format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(skip); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		a = append(a, arguments...)
		format = "(%q:%d) " + format
		arguments = a
	}

	channel.Lock()
	defer channel.Unlock()

	if nil == channel.log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	channel.log.Criticalf(format, arguments...)
	channel.log.Flush() // make sure log file is saved
}
