// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item
//
// returns the value and true, or nil and false if the key is not
// present
func (tree *Tree) Search(key Item) (interface{}, bool) {
	p := search(key, tree.root)
	if nil == p {
		return nil, false
	}
	return p.value, true
}

// Contains - true if the key is present
func (tree *Tree) Contains(key Item) bool {
	return nil != search(key, tree.root)
}

func search(key Item, p *Node) *Node {
	if nil == p {
		return nil
	}

	switch c := p.key.Compare(key); {
	case c > 0: // p.key > key
		return search(key, p.left)
	case c < 0: // p.key < key
		return search(key, p.right)
	default:
		return p
	}
}
