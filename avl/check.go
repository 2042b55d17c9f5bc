// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"fmt"
)

// CheckBalance - check cached heights and the AVL condition at every node
func (tree *Tree[K, V]) CheckBalance() bool {
	_, ok := checkBalance(tree.root)
	return ok
}

// internal: returns the real height of the sub-tree
func checkBalance[K cmp.Ordered, V any](p *Node[K, V]) (int, bool) {
	if nil == p {
		return 0, true
	}
	hl, ok := checkBalance(p.left)
	if !ok {
		return 0, false
	}
	hr, ok := checkBalance(p.right)
	if !ok {
		return 0, false
	}
	h := 1 + max(hl, hr)
	if h != p.height {
		fmt.Printf("fail at node: %v  cached height: %d  actual: %d\n", p.key, p.height, h)
		return 0, false
	}
	if bf := hl - hr; bf < -1 || bf > 1 {
		fmt.Printf("fail at node: %v  balance: %+d\n", p.key, bf)
		return 0, false
	}
	return h, true
}

// CheckOrder - check that no key in a left sub-tree is greater than its
// parent and no key in a right sub-tree is less than its parent
func (tree *Tree[K, V]) CheckOrder() bool {
	return checkOrder(tree.root, nil, nil)
}

// internal: low and high are the inclusive bounds inherited from the
// ancestors, nil if unbounded
func checkOrder[K cmp.Ordered, V any](p *Node[K, V], low *K, high *K) bool {
	if nil == p {
		return true
	}
	if nil != low && p.key < *low {
		fmt.Printf("fail at node: %v  below: %v\n", p.key, *low)
		return false
	}
	if nil != high && p.key > *high {
		fmt.Printf("fail at node: %v  above: %v\n", p.key, *high)
		return false
	}
	return checkOrder(p.left, low, &p.key) && checkOrder(p.right, &p.key, high)
}
