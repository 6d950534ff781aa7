// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrConfigurationRemoved  = NotFoundError("configuration file was removed")
	ErrDifficultyNotMet      = InvalidError("digest does not meet difficulty")
	ErrDigestMismatch        = InvalidError("digest does not match message")
	ErrInvalidDataDirectory  = InvalidError("data directory is invalid")
	ErrInvalidDigest         = InvalidError("digest is invalid")
	ErrInvalidListenAddress  = InvalidError("listen address is invalid")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidResponse       = InvalidError("invalid response line")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrLineTooLong           = LengthError("request line is too long")
	ErrMissingParameters     = InvalidError("missing parameters")
	ErrNotConfigurationTable = InvalidError("configuration file must return a table")
	ErrNotFoundConfigFile    = NotFoundError("configuration file is not found")
	ErrNotPlainFileName      = InvalidError("file name must not contain a path")
	ErrPayloadTooLong        = LengthError("payload exceeds 127 bytes")
	ErrRateLimiting          = ProcessError("rate limiting")
	ErrServerAlreadyStarted  = ExistsError("server already started")
	ErrServerNotStarted      = ProcessError("server not started")
	ErrWatcherAlreadyStarted = ExistsError("file watcher already started")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
