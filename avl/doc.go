// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL height balanced tree holding key/value pairs
//
// Every node caches the height of its sub-tree.  Insert and delete
// descend recursively, make the local change and then recompute
// height and balance factor on the way back up, rotating wherever the
// factor leaves the range -1..+1.  The result is that search, insert
// and delete are all O(log n).
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  Concurrent searches are fine while no insert or
//       delete is in progress.
//
// An insert with an existing key overwrites the value in place and
// does not change the shape of the tree.  Delete of a node with two
// children moves the key and value of its in-order successor into
// that node and then removes the successor node.
package avl
