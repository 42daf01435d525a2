// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
//
// Compare returns <0, 0 or >0 when the receiver is less than, equal
// to or greater than the argument
type Item interface {
	Compare(interface{}) int
}

// Node - a node in the tree
type Node struct {
	left   *Node       // left sub-tree
	right  *Node       // right sub-tree
	key    Item        // key part for ordering
	value  interface{} // value part for data storage
	height int         // 1 + height of the taller sub-tree
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - height of the whole tree, zero if empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return height(p)
}
