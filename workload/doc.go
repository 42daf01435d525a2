// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - drive an ordered map through insert, search,
// probe and delete phases and cross-check every result
//
// Keys are generated sequentially, at random or read from a file.
// Every inserted key is also added to a bloom filter so that random
// probe keys the filter rejects are known to be absent and can be
// checked against the map.
package workload
