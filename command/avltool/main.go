// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/workload"
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
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]", program)
	}

	command := "run"
	if len(arguments) > 0 {
		command = arguments[0]
	}
	if processSetupCommand(program, command) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	if verbose {
		masterConfiguration.Logging.Console = true
	}

	switch command {
	case "check-config", "check":
		if err := printConfiguration(os.Stdout, masterConfiguration); nil != err {
			exitwithstatus.Message("%s: print configuration error: %s", program, err)
		}
		return

	case "keys":
		keys, err := workload.Keys(&masterConfiguration.Workload)
		if nil != err {
			exitwithstatus.Message("%s: key generation error: %s", program, err)
		}
		for _, k := range keys {
			fmt.Println(k)
		}
		return
	}

	if err := masterConfiguration.prepareLogging(); nil != err {
		exitwithstatus.Message("%s: log directory: %q  error: %s", program, masterConfiguration.Logging.Directory, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("workload: %+v", masterConfiguration.Workload)

	keys, err := workload.Keys(&masterConfiguration.Workload)
	if nil != err {
		fault.Criticalf("key generation error: %s", err)
		exitwithstatus.Message("%s: key generation error: %s", program, err)
	}
	log.Infof("keys: %d", len(keys))

	runner := workload.NewRunner(avl.New(), &masterConfiguration.Workload, logger.New("runner"), os.Stderr)

	// optional periodic statistics
	processes := background.Processes{}
	if interval := masterConfiguration.Workload.ReportInterval; interval > 0 {
		reporter := workload.NewReporter(runner, time.Duration(interval)*time.Second, logger.New("reporter"))
		processes = append(processes, reporter)
	}
	bg := background.Start(processes, nil)

	report, err := runner.Run(keys)
	bg.Stop()

	if nil != err {
		fault.Criticalf("run failed with error: %s", err)
		exitwithstatus.Message("%s: run failed with error: %s", program, err)
	}

	log.Infof("final count: %d  height: %d", report.Count, report.Height)

	if !quiet {
		report.Print(os.Stdout)
	}
}
