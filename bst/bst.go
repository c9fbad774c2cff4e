// Package bst is the plain binary search tree over buildings: the same
// contract as package avl minus rebalancing. Its height depends on the
// insertion order and degenerates to n for sorted input, which makes it the
// baseline the balanced index is compared against.
package bst

import (
	"iter"

	"github.com/katalvlaran/campusplanner/building"
)

type node struct {
	b           building.Building
	left, right *node
}

// Tree is an unbalanced search tree keyed by Building.ID.
// The zero value is an empty tree.
type Tree struct {
	root *node
	size int
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{}
}

// Insert walks down from the root without recursion and attaches b as a
// leaf. A duplicate id is ignored and reported as false.
// Complexity: O(h).
func (t *Tree) Insert(b building.Building) bool {
	if t.root == nil {
		t.root = &node{b: b}
		t.size++

		return true
	}

	cur := t.root
	for {
		switch {
		case b.ID < cur.b.ID:
			if cur.left == nil {
				cur.left = &node{b: b}
				t.size++

				return true
			}
			cur = cur.left
		case b.ID > cur.b.ID:
			if cur.right == nil {
				cur.right = &node{b: b}
				t.size++

				return true
			}
			cur = cur.right
		default:
			return false
		}
	}
}

// Search returns the building stored under id.
// Complexity: O(h).
func (t *Tree) Search(id int) (building.Building, bool) {
	for cur := t.root; cur != nil; {
		switch {
		case id < cur.b.ID:
			cur = cur.left
		case id > cur.b.ID:
			cur = cur.right
		default:
			return cur.b, true
		}
	}

	return building.Building{}, false
}

// Height is recomputed on every call: 0 when empty, 1 for a single node.
// Complexity: O(n).
func (t *Tree) Height() int {
	return t.root.height()
}

func (n *node) height() int {
	if n == nil {
		return 0
	}

	return 1 + max(n.left.height(), n.right.height())
}

// Len returns the number of distinct ids stored.
func (t *Tree) Len() int {
	return t.size
}

// InOrder returns the stored buildings in ascending id order.
// Complexity: O(n).
func (t *Tree) InOrder() []building.Building {
	out := make([]building.Building, 0, t.size)
	for b := range t.All() {
		out = append(out, b)
	}

	return out
}

// All yields the stored buildings in ascending id order.
func (t *Tree) All() iter.Seq[building.Building] {
	return func(yield func(building.Building) bool) {
		t.root.walk(yield)
	}
}

func (n *node) walk(yield func(building.Building) bool) bool {
	if n == nil {
		return true
	}

	return n.left.walk(yield) && yield(n.b) && n.right.walk(yield)
}
