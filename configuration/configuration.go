// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/powminer/fault"
	"github.com/bitmark-inc/powminer/mining"
	"github.com/bitmark-inc/powminer/server"
	"github.com/bitmark-inc/powminer/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file

	defaultLogDirectory = "log"
	defaultLogFile      = "powminerd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - the complete daemon configuration
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	Server        server.Configuration `gluamapper:"server" json:"server"`
	Mining        mining.Configuration `gluamapper:"mining" json:"mining"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaults() *Configuration {
	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	return &Configuration{
		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Server: server.Configuration{
			Listen:            server.DefaultListen,
			MaximumLineLength: server.DefaultMaximumLineLength,
			AcceptBurst:       server.DefaultAcceptBurst,
		},

		Mining: mining.Configuration{
			BudgetMilliseconds: int(mining.DefaultBudget.Milliseconds()),
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// Default - configuration for running without a file, all paths are
// relative to the data directory
func Default(dataDirectory string) (*Configuration, error) {
	options := defaults()

	dataDirectory, err := filepath.Abs(filepath.Clean(dataDirectory))
	if nil != err {
		return nil, err
	}
	options.DataDirectory = dataDirectory

	err = options.finalise()
	if nil != err {
		return nil, err
	}
	return options, nil
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if !util.EnsureFileExists(configurationFileName) {
		return nil, fault.ErrNotFoundConfigFile
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaults()

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrInvalidDataDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}

	err = options.finalise()
	if nil != err {
		return nil, err
	}
	return options, nil
}

// common checks once the data directory is absolute
func (options *Configuration) finalise() error {
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if err := util.EnsureDirectory(options.DataDirectory); nil != err {
		return err
	}

	options.Server.ApplyDefaults()
	if _, _, err := server.ParseListenAddress(options.Server.Listen); nil != err {
		return err
	}

	if nil == options.Logging.Levels {
		options.Logging.Levels = defaultLogLevels
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// log file must be a plain name inside the log directory
	if !util.IsPlainFileName(options.Logging.File) {
		return fault.ErrNotPlainFileName
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return err
	}

	return nil
}

// MiningParameters - the values used by the hashing loop
func (options *Configuration) MiningParameters() mining.Parameters {
	return options.Mining.Parameters()
}
