// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/powminer/fault"
	"github.com/bitmark-inc/powminer/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "log"), "relative")
	assert.Equal(t, "/var/log", util.EnsureAbsolute("/data", "/var/log"), "absolute")
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data/", "./x/../log"), "cleaned")
}

func TestEnsureDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "powminer-util")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	assert.Nil(t, util.EnsureDirectory(dir), "directory")

	file := filepath.Join(dir, "plain")
	err = ioutil.WriteFile(file, []byte("x"), 0600)
	assert.Nil(t, err, "write file")

	assert.True(t, util.EnsureFileExists(file), "file exists")
	assert.Equal(t, fault.ErrInvalidDataDirectory, util.EnsureDirectory(file), "file is not a directory")

	missing := filepath.Join(dir, "missing")
	assert.False(t, util.EnsureFileExists(missing), "file must not exist")
	assert.True(t, os.IsNotExist(util.EnsureDirectory(missing)), "missing directory")
}

func TestIsPlainFileName(t *testing.T) {
	assert.True(t, util.IsPlainFileName("powminerd.log"), "plain")
	assert.False(t, util.IsPlainFileName(""), "empty")
	assert.False(t, util.IsPlainFileName("log/powminerd.log"), "relative path")
	assert.False(t, util.IsPlainFileName("/tmp/powminerd.log"), "absolute path")
}
