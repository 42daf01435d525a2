// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify key order, cached heights, balance factors and the
// node count
//
// returns nil for a consistent tree, otherwise an invalid class fault
// for the first problem found
func (tree *Tree) Check() error {
	n, _, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: consistency checker
// every key in the sub-tree must lie strictly between low and high
// (nil meaning unbounded), returns node count and actual height
func check(p *Node, low Item, high Item) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if nil != low && p.key.Compare(low) <= 0 {
		return 0, 0, fault.ErrKeyOrder
	}
	if nil != high && p.key.Compare(high) >= 0 {
		return 0, 0, fault.ErrKeyOrder
	}

	nl, hl, err := check(p.left, low, p.key)
	if nil != err {
		return 0, 0, err
	}
	nr, hr, err := check(p.right, p.key, high)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if h != p.height {
		return 0, 0, fault.ErrHeightMismatch
	}
	if b := hl - hr; b > 1 || b < -1 {
		return 0, 0, fault.ErrBalanceFactor
	}
	return 1 + nl + nr, h, nil
}
