// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes one node with the given key from the tree
//
// the node removed is the one Search would return; true if a node
// was removed, false if the key was not present
func (tree *Tree[K, V]) Delete(key K) bool {
	removed := false
	tree.root, removed = tree.delete(key, tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine
func (tree *Tree[K, V]) delete(key K, p *Node[K, V]) (*Node[K, V], bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	removed := false
	switch {
	case key < p.key:
		p.left, removed = tree.delete(key, p.left)
	case key > p.key:
		p.right, removed = tree.delete(key, p.right)
	default: // found: splice p out
		q := p.left
		r := p.right
		p.left = nil
		p.right = nil
		if nil == r {
			return q, true
		}

		// in-order successor takes the place of p
		m := r.first()
		m.right = tree.removeMin(r)
		m.left = q
		return tree.balance(m), true
	}
	if !removed {
		return p, false
	}
	return tree.balance(p), true
}

// detach the lowest node of a sub-tree, the detached node itself is
// left untouched
// returns the possibly updated sub-tree root
func (tree *Tree[K, V]) removeMin(p *Node[K, V]) *Node[K, V] {
	if nil == p.left {
		return p.right
	}
	p.left = tree.removeMin(p.left)
	return tree.balance(p)
}
