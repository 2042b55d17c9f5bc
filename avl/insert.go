// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// duplicate keys are kept, a new node with an equal key is placed to
// the right of the existing ones
func (tree *Tree[K, V]) Insert(key K, value V) {
	tree.root = tree.insert(key, value, tree.root)
	tree.count += 1
}

// internal routine for insert
// returns the possibly updated sub-tree root
func (tree *Tree[K, V]) insert(key K, value V, p *Node[K, V]) *Node[K, V] {
	if nil == p { // insert new node
		return newNode(key, value)
	}
	if key < p.key {
		p.left = tree.insert(key, value, p.left)
	} else {
		p.right = tree.insert(key, value, p.right)
	}
	return tree.balance(p)
}
