// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// height of a sub-tree, an absent sub-tree has zero height
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute cached height from the two children
func (p *Node) setHeight() {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}

// balance factor: left height - right height
func (p *Node) balance() int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// single right rotation, fixes a left heavy sub-tree
//
//        y            x
//       / \          / \
//      x   c   →    a   y
//     / \              / \
//    a   b            b   c
//
func rotateRight(y *Node) *Node {
	x := y.left
	if nil == x {
		fault.Panicf("avl: right rotation at: %v without left child", y.key)
	}
	y.left = x.right
	x.right = y

	y.setHeight()
	x.setHeight()
	return x
}

// single left rotation, mirror image of rotateRight
func rotateLeft(y *Node) *Node {
	x := y.right
	if nil == x {
		fault.Panicf("avl: left rotation at: %v without right child", y.key)
	}
	y.right = x.left
	x.left = y

	y.setHeight()
	x.setHeight()
	return x
}

// double LR rotation
func rotateLeftRight(y *Node) *Node {
	if nil == y.left {
		fault.Panicf("avl: left-right rotation at: %v without left child", y.key)
	}
	y.left = rotateLeft(y.left)
	return rotateRight(y)
}

// double RL rotation
func rotateRightLeft(y *Node) *Node {
	if nil == y.right {
		fault.Panicf("avl: right-left rotation at: %v without right child", y.key)
	}
	y.right = rotateRight(y.right)
	return rotateLeft(y)
}

// recompute the height of p and rotate if it is out of balance
// returns the possibly new root of the sub-tree
func rebalance(p *Node) *Node {
	p.setHeight()

	switch b := p.balance(); {
	case b > 1: // left heavy
		if p.left.balance() >= 0 {
			return rotateRight(p) // LL
		}
		return rotateLeftRight(p)

	case b < -1: // right heavy
		if p.right.balance() <= 0 {
			return rotateLeft(p) // RR
		}
		return rotateRightLeft(p)
	}
	return p
}
