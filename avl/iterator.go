// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Entry - one key/value pair from a traversal
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// First - return the node with the lowest key value
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node[K, V]) first() *Node[K, V] {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node[K, V]) last() *Node[K, V] {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Traverse - snapshot of all entries in ascending key order
//
// the slice is filled before returning, so later changes to the tree
// do not affect it
func (tree *Tree[K, V]) Traverse() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, tree.count)
	return traverse(tree.root, entries)
}

func traverse[K cmp.Ordered, V any](p *Node[K, V], entries []Entry[K, V]) []Entry[K, V] {
	if nil == p {
		return entries
	}
	entries = traverse(p.left, entries)
	entries = append(entries, Entry[K, V]{Key: p.key, Value: p.value})
	return traverse(p.right, entries)
}
