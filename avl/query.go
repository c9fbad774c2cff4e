package avl

import (
	"iter"

	"github.com/katalvlaran/campusplanner/building"
)

// Search returns the building stored under id.
// Complexity: O(log n), no recursion.
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

// InOrder returns every stored building in ascending id order.
// Each call performs a fresh traversal.
// Complexity: O(n).
func (t *Tree) InOrder() []building.Building {
	out := make([]building.Building, 0, t.size)
	for b := range t.All() {
		out = append(out, b)
	}

	return out
}

// All yields the stored buildings in ascending id order. Ranging again starts
// a new traversal; breaking out of the loop stops it.
func (t *Tree) All() iter.Seq[building.Building] {
	return func(yield func(building.Building) bool) {
		t.root.walk(yield)
	}
}

// walk is an in-order traversal that reports false once yield asks to stop.
func (n *node) walk(yield func(building.Building) bool) bool {
	if n == nil {
		return true
	}

	return n.left.walk(yield) && yield(n.b) && n.right.walk(yield)
}

// Min returns the building with the smallest id.
// Complexity: O(log n).
func (t *Tree) Min() (building.Building, bool) {
	if t.root == nil {
		return building.Building{}, false
	}
	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}

	return cur.b, true
}

// Max returns the building with the largest id.
// Complexity: O(log n).
func (t *Tree) Max() (building.Building, bool) {
	if t.root == nil {
		return building.Building{}, false
	}
	cur := t.root
	for cur.right != nil {
		cur = cur.right
	}

	return cur.b, true
}
