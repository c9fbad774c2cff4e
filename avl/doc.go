// Package avl implements the campus ordered index: a self-balancing binary
// search tree of building.Building keyed by Building.ID.
//
// Invariants held after every Insert:
//
//   - BST order: every id in a node's left subtree is smaller than the
//     node's id, every id in its right subtree larger. Ids are unique.
//   - Balance: |height(left) - height(right)| <= 1 at every node, so the
//     height stays O(log n).
//   - Cached heights: a leaf has height 1, an absent child height 0.
//
// Rebalancing happens on the way back up the insertion path. The rotation
// is chosen from the balance factor of the unbalanced node and from the
// inserted id compared with the id of that node's child on the heavy side
// (LL, RR, LR, RL).
//
// Operations:
//
//	Insert(b) bool                 O(log n), false for a duplicate id (first payload kept)
//	Search(id) (Building, bool)    O(log n), iterative
//	InOrder() []Building           O(n), ascending ids
//	All() iter.Seq[Building]       O(n), ascending ids, stops early on break
//	Min(), Max()                   O(log n)
//	Height(), Len()                O(1)
//
// A Tree is owned by one caller; it has no internal locking. Nodes are never
// removed.
package avl
