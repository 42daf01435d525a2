// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// ParseConfigurationFile - read a configuration file and assign the
// results to the structure pointed to by config
//
// fields not mentioned in the file keep their existing values, so
// defaults should be set before calling
func ParseConfigurationFile(fileName string, config interface{}) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fault.ErrInvalidStructPointer
	}

	// now sure item is a pointer, make sure it points to some kind of struct
	if rv.Elem().Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".yaml", ".yml":
		return readYAMLFile(fileName, config)
	case ".lua", ".conf", "":
		return readLuaFile(fileName, config)
	default:
		return fault.ErrUnsupportedConfiguration
	}
}
