// Package builder assembles deterministic core.Graph fixtures for tests,
// benchmarks and demos.
//
// BuildGraph(n, bopts, cons...) allocates an n-vertex graph and applies each
// Constructor in order, so topologies can be layered (a Path for guaranteed
// connectivity plus RandomSparse chords, for instance).
//
// Constructors:
//
//	Path()           0-1-…-(n-1)                       n ≥ 2
//	Cycle()          Path plus (n-1)-0                 n ≥ 3
//	Star()           0 joined to every other vertex    n ≥ 2
//	Complete()       every pair i<j                    n ≥ 1
//	Grid(r, c)       row-major r×c lattice             r*c ≤ n
//	RandomSparse(p)  each pair with probability p      n ≥ 1, needs RNG for 0<p<1
//
// Options:
//
//	WithSeed(seed)       seeded RNG for stochastic choices and weights
//	WithRand(rng)        caller-owned RNG
//	WithWeightFn(fn)     per-edge weights: ConstantWeightFn, UniformWeightFn, IntWeightFn
//	WithDirectedEdges()  one-way edges in emission order
//
// Errors (branch with errors.Is):
//
//	ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed
package builder
