package avl

import "github.com/katalvlaran/campusplanner/building"

// node is one tree cell; children are exclusively owned.
type node struct {
	b           building.Building
	left, right *node
	height      int
}

// Tree is an AVL-balanced ordered index of buildings. The zero value is an
// empty tree ready to use.
type Tree struct {
	root *node
	size int
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{}
}

// Insert adds b keyed by b.ID and rebalances the insertion path.
// It returns false and leaves the tree untouched if the id is already
// present.
// Complexity: O(log n) time, O(log n) stack.
func (t *Tree) Insert(b building.Building) bool {
	var added bool
	t.root = insert(t.root, b, &added)
	if added {
		t.size++
	}

	return added
}

// Height returns the height of the tree: 0 when empty, 1 for a single node.
// Complexity: O(1).
func (t *Tree) Height() int {
	return height(t.root)
}

// Len returns the number of distinct ids stored.
// Complexity: O(1).
func (t *Tree) Len() int {
	return t.size
}

// insert descends by id, attaches a new leaf, then fixes heights and balance
// while unwinding. It returns the (possibly new) root of the subtree.
func insert(n *node, b building.Building, added *bool) *node {
	// 1) Attach a new leaf at the empty slot.
	if n == nil {
		*added = true

		return &node{b: b, height: 1}
	}

	// 2) Descend; an equal id stops the walk with no structural change.
	switch {
	case b.ID < n.b.ID:
		n.left = insert(n.left, b, added)
	case b.ID > n.b.ID:
		n.right = insert(n.right, b, added)
	default:
		return n
	}

	// 3) Refresh this node's height and inspect its balance.
	n.update()
	bf := n.balance()

	// 4) Restore balance with one or two rotations.
	switch {
	case bf > 1 && b.ID < n.left.b.ID: // LL
		return rotateRight(n)
	case bf < -1 && b.ID > n.right.b.ID: // RR
		return rotateLeft(n)
	case bf > 1 && b.ID > n.left.b.ID: // LR
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	case bf < -1 && b.ID < n.right.b.ID: // RL
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}

// rotateLeft lifts x.right above x and returns it.
//
//	  x              y
//	   \            / \
//	    y    →     x   c
//	   / \          \
//	  T   c          T
func rotateLeft(x *node) *node {
	y := x.right
	x.right = y.left
	y.left = x
	x.update()
	y.update()

	return y
}

// rotateRight lifts y.left above y and returns it.
//
//	    y          x
//	   /          / \
//	  x     →    a   y
//	 / \            /
//	a   T          T
func rotateRight(y *node) *node {
	x := y.left
	y.left = x.right
	x.right = y
	y.update()
	x.update()

	return x
}

func height(n *node) int {
	if n == nil {
		return 0
	}

	return n.height
}

func (n *node) update() {
	n.height = 1 + max(height(n.left), height(n.right))
}

// balance returns height(left) - height(right).
func (n *node) balance() int {
	return height(n.left) - height(n.right)
}
