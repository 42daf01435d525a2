// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua or YAML configuration file
//
// For Lua files most of base Lua is available such as reading files
// to set key data and getenv to extract environment supplied items.
// The file must return a table which is mapped on to the structure
// using the "gluamapper" field tags.
//
// Files ending in .yaml or .yml are decoded using the "yaml" field
// tags instead.
package configuration
