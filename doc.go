// Package campusplanner indexes campus buildings and analyses the road
// network between them.
//
// Everything lives in subpackages:
//
//	building/      - the Building record and its "[id] Name - Details" rendering
//	avl/           - self-balancing ordered index of buildings keyed by id
//	bst/           - plain search tree with the same contract, no rebalancing
//	core/          - weighted graph over dense vertex indices [0, n)
//	bfs/, dfs/     - traversals (plus topological sort and cycle search)
//	dijkstra/      - single-source shortest paths, non-negative weights
//	prim_kruskal/  - minimum spanning tree or forest, union-find
//	expr/          - postfix expression trees
//	builder/       - deterministic graph fixtures for tests and benchmarks
//	campus/        - building id ↔ vertex mapping, sample data, YAML loader
//	config/        - CLI settings (file, CAMPUS_* env, flags)
//	cmd/campusplanner/ - command-line driver
//
// Quick ASCII view of the sample campus (road lengths on the edges):
//
//	Library(102) ─5─ Admin(101) ─10─ CSE(103) ─6─ ECE(104)
//	                                   │
//	                                   4
//	                                   │
//	                            Cafeteria(105) ─3─ Gym(106)
//
// Shortest route Admin → Gym: Admin, CSE, Cafeteria, Gym (17).
// Road backbone: 28.
//
//	go run ./cmd/campusplanner demo
package campusplanner
