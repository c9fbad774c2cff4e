package avl

import "fmt"

// RootID exposes the root id for rotation tests; ok is false when empty.
func (t *Tree) RootID() (id int, ok bool) {
	if t.root == nil {
		return 0, false
	}

	return t.root.b.ID, true
}

// CheckInvariants verifies BST order, cached heights, balance and size.
func (t *Tree) CheckInvariants() error {
	count := 0
	var check func(n *node, lo, hi *int) (int, error)
	check = func(n *node, lo, hi *int) (int, error) {
		if n == nil {
			return 0, nil
		}
		count++
		if lo != nil && n.b.ID <= *lo {
			return 0, fmt.Errorf("id %d not above bound %d", n.b.ID, *lo)
		}
		if hi != nil && n.b.ID >= *hi {
			return 0, fmt.Errorf("id %d not below bound %d", n.b.ID, *hi)
		}
		lh, err := check(n.left, lo, &n.b.ID)
		if err != nil {
			return 0, err
		}
		rh, err := check(n.right, &n.b.ID, hi)
		if err != nil {
			return 0, err
		}
		if d := lh - rh; d > 1 || d < -1 {
			return 0, fmt.Errorf("node %d unbalanced: left %d right %d", n.b.ID, lh, rh)
		}
		h := 1 + max(lh, rh)
		if h != n.height {
			return 0, fmt.Errorf("node %d caches height %d, actual %d", n.b.ID, n.height, h)
		}

		return h, nil
	}
	if _, err := check(t.root, nil, nil); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("size %d, counted %d", t.size, count)
	}

	return nil
}
