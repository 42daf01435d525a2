// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Delete - removes a specific item from the tree
//
// returns the value that was stored for the key and true, or nil and
// false if the key was not in the tree
func (tree *Tree) Delete(key Item) (interface{}, bool) {
	value := interface{}(nil)
	removed := false
	tree.root, value, removed = remove(key, tree.root)
	if removed {
		tree.count -= 1
	}
	return value, removed
}

// internal delete routine
// returns the new root of the sub-tree
func remove(key Item, p *Node) (*Node, interface{}, bool) {
	if nil == p { // key not in tree
		return nil, nil, false
	}

	value := interface{}(nil)
	removed := false
	switch c := p.key.Compare(key); {
	case c > 0: // p.key > key
		p.left, value, removed = remove(key, p.left)
	case c < 0: // p.key < key
		p.right, value, removed = remove(key, p.right)
	default: // found: delete p
		value = p.value
		removed = true

		if nil == p.left || nil == p.right {
			q := p.left
			if nil == q {
				q = p.right
			}
			freeNode(p)
			return q, value, removed
		}

		// two children: take over the in-order successor and then
		// remove the successor from the right sub-tree
		s := p.right.first()
		p.key = s.key
		p.value = s.value

		ok := false
		p.right, _, ok = remove(s.key, p.right)
		if !ok {
			fault.Panicf("avl: successor: %v not removed", p.key)
		}
	}

	return rebalance(p), value, removed
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}
