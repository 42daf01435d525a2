// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
	"github.com/bitmark-inc/avltree/workload"
)

// basic defaults (directories and files are relative to the
// directory containing the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avltool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	"main":            "info",
	logger.DefaultTag: "critical",
}

// Configuration - contents of the configuration file
type Configuration struct {
	Workload workload.Configuration `gluamapper:"workload" yaml:"workload" json:"workload"`
	Logging  logger.Configuration   `gluamapper:"logging" yaml:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	baseDirectory, _ := filepath.Split(configurationFileName)

	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	options := &Configuration{
		Workload: workload.Defaults(),
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    levels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if !util.IsPlainName(options.Logging.File) {
		return nil, fault.ErrLogFileNotPlainName
	}

	// key file is relative to the configuration file
	if "" != options.Workload.KeyFile {
		options.Workload.KeyFile = util.EnsureAbsolute(baseDirectory, options.Workload.KeyFile)
	}

	// make absolute and create directory if it does not already exist
	options.Logging.Directory = util.EnsureAbsolute(baseDirectory, options.Logging.Directory)

	return options, nil
}

// create the log directory, deferred so check-config has no side
// effects
func (conf *Configuration) prepareLogging() error {
	return util.EnsureDirectory(conf.Logging.Directory)
}
