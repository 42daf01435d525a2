// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

// key sources
const (
	SourceSequential = "sequential"
	SourceRandom     = "random"
	SourceFile       = "file"
)

// limits
const (
	maximumWidth  = 18 // decimal digits that fit in an int64
	bloomFalseHit = 0.01
)

// Configuration - workload settings
type Configuration struct {
	Source         string `gluamapper:"source" yaml:"source" json:"source"`
	Count          int    `gluamapper:"count" yaml:"count" json:"count"`
	Width          int    `gluamapper:"width" yaml:"width" json:"width"`
	Seed           int64  `gluamapper:"seed" yaml:"seed" json:"seed"`
	KeyFile        string `gluamapper:"key_file" yaml:"key_file" json:"key_file"`
	Delete         int    `gluamapper:"delete" yaml:"delete" json:"delete"`
	Probes         int    `gluamapper:"probes" yaml:"probes" json:"probes"`
	Verify         bool   `gluamapper:"verify" yaml:"verify" json:"verify"`
	Progress       bool   `gluamapper:"progress" yaml:"progress" json:"progress"`
	ReportInterval int    `gluamapper:"report_interval" yaml:"report_interval" json:"report_interval"`
}

// Defaults - the settings used for anything a configuration file
// does not mention
//
// a negative Delete means delete half of the distinct keys
func Defaults() Configuration {
	return Configuration{
		Source:         SourceSequential,
		Count:          1000,
		Width:          8,
		Seed:           0,
		KeyFile:        "",
		Delete:         -1,
		Probes:         100,
		Verify:         true,
		Progress:       false,
		ReportInterval: 0,
	}
}
