// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avltool - load an AVL tree with a configured workload, verify every
// operation against an independent record and report timings
//
// usage:
//
//   avltool [--help] [--verbose] [--quiet] --config-file=FILE [command]
//
// the configuration file is Lua (.conf, .lua) or YAML (.yaml, .yml)
// and holds a "workload" and a "logging" section
package main
