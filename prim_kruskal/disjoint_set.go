package prim_kruskal

// DisjointSet is an array-backed union-find over the elements 0..n-1
// with full path compression and union by rank.
type DisjointSet struct {
	parent     []int
	rank       []int
	components int
}

// NewDisjointSet returns n singleton sets.
// Complexity: O(n).
func NewDisjointSet(n int) *DisjointSet {
	ds := &DisjointSet{
		parent:     make([]int, n),
		rank:       make([]int, n),
		components: n,
	}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// Find returns the representative of x's set and points every node on the
// way directly at it.
// Complexity: O(α(n)) amortized.
func (ds *DisjointSet) Find(x int) int {
	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for ds.parent[x] != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets holding a and b and reports whether they were
// distinct. The lower-rank root goes under the higher-rank one; on a rank
// tie b's root goes under a's and a's root rank grows by one.
// Complexity: O(α(n)) amortized.
func (ds *DisjointSet) Union(a, b int) bool {
	ra, rb := ds.Find(a), ds.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}
	ds.components--

	return true
}

// Connected reports whether a and b share a set.
func (ds *DisjointSet) Connected(a, b int) bool {
	return ds.Find(a) == ds.Find(b)
}

// Components returns the current number of disjoint sets.
func (ds *DisjointSet) Components() int {
	return ds.components
}
