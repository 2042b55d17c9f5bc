// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Tree - type to hold the root node of a tree
type Tree[K cmp.Ordered, V any] struct {
	root      *Node[K, V]
	count     int
	rotations uint64
}

// New - create an initially empty tree
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{
		root:  nil,
		count: 0,
	}
}

// NewSet - create an initially empty tree that only holds keys
func NewSet[K cmp.Ordered]() *Tree[K, struct{}] {
	return New[K, struct{}]()
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Height - height of the whole tree, zero when empty
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

// Rotations - total number of single rotations performed so far
//
// a double rotation counts as two
func (tree *Tree[K, V]) Rotations() uint64 {
	return tree.rotations
}
