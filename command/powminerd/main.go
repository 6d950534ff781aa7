// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/powminer/background"
	"github.com/bitmark-inc/powminer/configuration"
	"github.com/bitmark-inc/powminer/fault"
	"github.com/bitmark-inc/powminer/nonce"
	"github.com/bitmark-inc/powminer/server"
	"github.com/bitmark-inc/powminer/watcher"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file, without a file
	// the current directory holds the log directory
	configurationFile := ""
	var theConfiguration *configuration.Configuration
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
		theConfiguration, err = configuration.GetConfiguration(configurationFile)
	} else {
		theConfiguration, err = configuration.Default(".")
	}
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// positional host and port override the configured listen address
	listen, err := listenFromArguments(arguments, theConfiguration.Server.Listen)
	if nil != err {
		exitwithstatus.Message("%s: invalid listen arguments: %q  error: %s", program, arguments, err)
	}
	theConfiguration.Server.Listen = listen

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// random source for nonces, a configured seed gives repeatable runs
	seed := theConfiguration.Mining.Seed
	if 0 == seed {
		seed, err = nonce.Seed()
		if nil != err {
			log.Criticalf("random seed error: %s", err)
			exitwithstatus.Message("random seed error: %s", err)
		}
	}
	log.Infof("nonce seed: %d", seed)

	// the mining server
	log.Info("initialise server")
	s, err := server.New(&theConfiguration.Server, logger.New("server"), nonce.New(seed), theConfiguration.MiningParameters())
	if nil != err {
		log.Criticalf("server initialise error: %s", err)
		exitwithstatus.Message("server initialise error: %s", err)
	}
	err = s.Listen()
	if nil != err {
		log.Criticalf("server listen error: %s", err)
		exitwithstatus.Message("server listen error: %s", err)
	}

	shutdown := make(chan struct{})
	defer close(shutdown)

	// configuration changes adjust the mining budget
	if "" != configurationFile {
		startReload(log, configurationFile, theConfiguration, s, shutdown)
	}

	processes := background.Processes{
		&statsReporter{log: logger.New("stats"), s: s},
	}
	bg := background.Start(processes, nil)
	defer bg.Stop()

	serveError := make(chan error, 1)
	go func() {
		serveError <- s.Serve()
	}()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nlistening on: %s\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…", s.Addr())
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
		if 0 == len(options["quiet"]) {
			fmt.Printf("\nreceived signal: %v\n", sig)
			fmt.Printf("\nshutting down…\n")
		}
		_ = s.Close()

	case err := <-serveError:
		if nil != err {
			log.Criticalf("server stopped with error: %s", err)
			log.Infof("totals: %s", s.Totals())
			exitwithstatus.Message("%s: server stopped with error: %s", program, err)
		}
	}

	log.Infof("totals: %s", s.Totals())
	log.Info("shutting down…")
}

// connect the file watcher, configuration reader and server
func startReload(log *logger.L, fileName string, initial *configuration.Configuration, s *server.Server, shutdown <-chan struct{}) {
	channels := watcher.NewChannels()

	w, err := watcher.New(fileName, logger.New(watcher.LoggerPrefix), channels)
	if nil != err {
		log.Warnf("configuration watcher error: %s, reload disabled", err)
		return
	}
	err = w.Start()
	if nil != err {
		log.Warnf("configuration watcher start error: %s, reload disabled", err)
		return
	}

	reader, err := configuration.NewReader(fileName, initial, logger.New(configuration.ReaderLoggerPrefix), configuration.DefaultSettleDelay)
	if nil != err {
		log.Warnf("configuration reader error: %s, reload disabled", err)
		_ = w.Stop()
		return
	}
	reader.Subscribe(func(c *configuration.Configuration) {
		s.Update(c.MiningParameters())
	})
	reader.Start(channels.Change, channels.Remove, shutdown)
}
