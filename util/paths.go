// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/avltree/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureDirectory - create a directory and any missing parents,
// fails if the path exists and is not a directory
func EnsureDirectory(directory string) error {
	info, err := os.Stat(directory)
	if nil == err {
		if !info.IsDir() {
			return fault.ErrNotADirectory
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.MkdirAll(directory, 0700)
}

// IsPlainName - true if the name has no directory part
func IsPlainName(name string) bool {
	if "" == name {
		return false
	}
	switch filepath.Dir(name) {
	case "", ".":
		return filepath.Base(name) == name
	default:
		return false
	}
}
