// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"
)

// StringKey - a string usable as a tree key
type StringKey string

// Compare - lexical ordering, panics if x is not a StringKey
func (s StringKey) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(StringKey)))
}

// String - the key as a string
func (s StringKey) String() string {
	return string(s)
}

// IntKey - an int usable as a tree key
type IntKey int

// Compare - numeric ordering, panics if x is not an IntKey
func (i IntKey) Compare(x interface{}) int {
	j := x.(IntKey)
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	default:
		return 0
	}
}
