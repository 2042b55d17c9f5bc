// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// single right rotation, the left child becomes the sub-tree root
//
//        p            p1
//       / \          /  \
//      p1  c  ==>   a    p
//     /  \              / \
//    a    b            b   c
func (tree *Tree[K, V]) rotateRight(p *Node[K, V]) *Node[K, V] {
	p1 := p.left
	p.left = p1.right
	p1.right = p
	p.fixHeight()
	p1.fixHeight()
	tree.rotations += 1
	return p1
}

// single left rotation, the right child becomes the sub-tree root
func (tree *Tree[K, V]) rotateLeft(p *Node[K, V]) *Node[K, V] {
	p1 := p.right
	p.right = p1.left
	p1.left = p
	p.fixHeight()
	p1.fixHeight()
	tree.rotations += 1
	return p1
}

// refresh the height of p and restore the AVL condition if one of
// its sub-trees has become two levels taller than the other
// returns the possibly new sub-tree root
func (tree *Tree[K, V]) balance(p *Node[K, V]) *Node[K, V] {
	p.fixHeight()
	switch balanceFactor(p) {
	case +2: // left heavy
		if balanceFactor(p.left) < 0 {
			// double LR rotation
			p.left = tree.rotateLeft(p.left)
		}
		return tree.rotateRight(p)
	case -2: // right heavy
		if balanceFactor(p.right) > 0 {
			// double RL rotation
			p.right = tree.rotateRight(p.right)
		}
		return tree.rotateLeft(p)
	}
	return p
}
