// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Node - a node in the tree
type Node[K cmp.Ordered, V any] struct {
	left   *Node[K, V] // left sub-tree
	right  *Node[K, V] // right sub-tree
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // 1 for a leaf
}

// allocate a new leaf node
func newNode[K cmp.Ordered, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{
		key:    key,
		value:  value,
		height: 1,
	}
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Left - the left sub-tree, nil if none
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - the right sub-tree, nil if none
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node[K, V]) Height() int {
	return height(p)
}

// Balance - left height minus right height
func (p *Node[K, V]) Balance() int {
	return balanceFactor(p)
}

// height of a possibly absent sub-tree
func height[K cmp.Ordered, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return p.height
}

func balanceFactor[K cmp.Ordered, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// recompute the cached height from the children
func (p *Node[K, V]) fixHeight() {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = hl + 1
	} else {
		p.height = hr + 1
	}
}

// ChildrenByDepth - returns all nodes at a specific depth below this
// node, left to right
func (p *Node[K, V]) ChildrenByDepth(depth uint) []*Node[K, V] {
	if 0 == depth {
		return []*Node[K, V]{p}
	}
	nodes := []*Node[K, V]{}
	if nil != p.left {
		nodes = append(nodes, p.left.ChildrenByDepth(depth-1)...)
	}
	if nil != p.right {
		nodes = append(nodes, p.right.ChildrenByDepth(depth-1)...)
	}
	return nodes
}
