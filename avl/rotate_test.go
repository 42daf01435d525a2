// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// build a node with correct height from two sub-trees
func mk(key int, left *Node, right *Node) *Node {
	p := &Node{key: IntKey(key), value: key, left: left, right: right}
	p.setHeight()
	return p
}

func inOrder(p *Node, keys *[]int) {
	if nil == p {
		return
	}
	inOrder(p.left, keys)
	*keys = append(*keys, int(p.key.(IntKey)))
	inOrder(p.right, keys)
}

func TestRotateRight(t *testing.T) {
	// y=4 with left x=2 (children 1,3), right 5
	y := mk(4, mk(2, mk(1, nil, nil), mk(3, nil, nil)), mk(5, nil, nil))

	x := rotateRight(y)

	assert.Equal(t, IntKey(2), x.key, "wrong new root")
	assert.Equal(t, IntKey(1), x.left.key, "wrong left")
	assert.Equal(t, IntKey(4), x.right.key, "wrong right")
	assert.Equal(t, IntKey(3), x.right.left.key, "inner child not moved")
	assert.Equal(t, 3, x.height, "wrong new root height")
	assert.Equal(t, 2, x.right.height, "wrong old root height")

	keys := []int{}
	inOrder(x, &keys)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, keys, "order changed")
}

func TestRotateLeft(t *testing.T) {
	y := mk(2, mk(1, nil, nil), mk(4, mk(3, nil, nil), mk(5, nil, nil)))

	x := rotateLeft(y)

	assert.Equal(t, IntKey(4), x.key, "wrong new root")
	assert.Equal(t, IntKey(2), x.left.key, "wrong left")
	assert.Equal(t, IntKey(3), x.left.right.key, "inner child not moved")
	assert.Equal(t, IntKey(5), x.right.key, "wrong right")
	assert.Equal(t, 3, x.height, "wrong new root height")

	keys := []int{}
	inOrder(x, &keys)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, keys, "order changed")
}

func TestRotateDouble(t *testing.T) {
	lr := rotateLeftRight(mk(3, mk(1, nil, mk(2, nil, nil)), nil))
	assert.Equal(t, IntKey(2), lr.key, "left-right: wrong root")
	assert.Equal(t, IntKey(1), lr.left.key, "left-right: wrong left")
	assert.Equal(t, IntKey(3), lr.right.key, "left-right: wrong right")
	assert.Equal(t, 2, lr.height, "left-right: wrong height")
	assert.Equal(t, 1, lr.left.height, "left-right: wrong left height")
	assert.Equal(t, 1, lr.right.height, "left-right: wrong right height")

	rl := rotateRightLeft(mk(1, nil, mk(3, mk(2, nil, nil), nil)))
	assert.Equal(t, IntKey(2), rl.key, "right-left: wrong root")
	assert.Equal(t, IntKey(1), rl.left.key, "right-left: wrong left")
	assert.Equal(t, IntKey(3), rl.right.key, "right-left: wrong right")
	assert.Equal(t, 2, rl.height, "right-left: wrong height")
}

func TestRotateWithoutChildPanics(t *testing.T) {
	leaf := mk(1, nil, nil)
	assert.PanicsWithValue(t, "avl: right rotation at: 1 without left child", func() { rotateRight(leaf) }, "right rotation of a leaf")
	assert.PanicsWithValue(t, "avl: left rotation at: 1 without right child", func() { rotateLeft(leaf) }, "left rotation of a leaf")
	assert.PanicsWithValue(t, "avl: left-right rotation at: 1 without left child", func() { rotateLeftRight(leaf) }, "left-right rotation of a leaf")
	assert.PanicsWithValue(t, "avl: right-left rotation at: 1 without right child", func() { rotateRightLeft(leaf) }, "right-left rotation of a leaf")
}

func TestBalanceFactor(t *testing.T) {
	var empty *Node
	assert.Equal(t, 0, empty.balance(), "nil balance")
	assert.Equal(t, 0, height(empty), "nil height")

	p := mk(3, mk(2, mk(1, nil, nil), nil), nil)
	assert.Equal(t, 2, p.balance(), "left heavy")
	assert.Equal(t, IntKey(2), rebalance(p).key, "rebalance did not rotate")

	q := mk(1, nil, mk(2, nil, mk(3, nil, nil)))
	assert.Equal(t, -2, q.balance(), "right heavy")
	assert.Equal(t, IntKey(2), rebalance(q).key, "rebalance did not rotate")
}

// a corrupted tree is reported by Check
func TestCheckDetectsCorruption(t *testing.T) {
	tree := New()
	for i := 1; i <= 7; i += 1 {
		tree.Insert(IntKey(i), i)
	}
	assert.Nil(t, tree.Check(), "fresh tree inconsistent")

	tree.root.left.key = IntKey(9)
	assert.NotNil(t, tree.Check(), "order corruption not detected")
	tree.root.left.key = IntKey(2)

	tree.root.right.height = 5
	assert.NotNil(t, tree.Check(), "height corruption not detected")
	tree.root.right.setHeight()

	tree.count += 1
	assert.NotNil(t, tree.Check(), "count corruption not detected")
	tree.count -= 1

	// unbalanced chain with correct heights
	chain := mk(1, nil, mk(2, nil, mk(3, nil, nil)))
	bad := &Tree{root: chain, count: 3}
	assert.NotNil(t, bad.Check(), "balance corruption not detected")

	assert.Nil(t, tree.Check(), "repaired tree inconsistent")
}

// a successor that cannot be found again by key aborts the delete
func TestDeleteCorruptedSuccessorPanics(t *testing.T) {
	// 20 sits on the wrong side of 10, so a search for it from 10
	// goes right and finds nothing
	root := mk(5, mk(1, nil, nil), mk(10, mk(20, nil, nil), nil))
	tree := &Tree{root: root, count: 4}

	assert.PanicsWithValue(t, "avl: successor: 20 not removed", func() {
		tree.Delete(IntKey(5))
	}, "corrupted successor not detected")
}

// in-order keys ascend and every balance factor is in range for a
// random mix of inserts and deletes
func TestRandomOperations(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	tree := New()
	present := make(map[int]bool)

	for i := 0; i < 5000; i += 1 {
		k := r.Intn(500)
		if r.Intn(3) == 0 {
			_, ok := tree.Delete(IntKey(k))
			assert.Equal(t, present[k], ok, "delete %d", k)
			delete(present, k)
		} else {
			added := tree.Insert(IntKey(k), k)
			assert.Equal(t, !present[k], added, "insert %d", k)
			present[k] = true
		}

		if 0 == i%250 {
			keys := []int{}
			inOrder(tree.root, &keys)
			for j := 1; j < len(keys); j += 1 {
				if keys[j-1] >= keys[j] {
					t.Fatalf("keys out of order: %d >= %d", keys[j-1], keys[j])
				}
			}
			assertBalanced(t, tree.root)
		}
	}
	assert.Equal(t, len(present), tree.Count(), "wrong count")
	assert.Nil(t, tree.Check(), "inconsistent tree")
}

func assertBalanced(t *testing.T, p *Node) {
	if nil == p {
		return
	}
	if b := p.balance(); b < -1 || b > 1 {
		t.Fatalf("node: %v balance: %d", p.key, b)
	}
	assertBalanced(t, p.left)
	assertBalanced(t, p.right)
}
