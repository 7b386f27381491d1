// Package latent implements deferred computations organized into a directed
// acyclic dependency graph, with memoized results and automatic invalidation
// when an upstream definition changes.
//
// # Overview
//
// A computation is built as a graph of delayed calls: wrapping a function
// with [Wrap] yields a [Factory], and calling the factory binds arguments
// without executing anything. Arguments may themselves be nodes, forming
// dependency edges. Materializing any node with [Node.Compute] resolves its
// dependencies first, caches the result, and reuses cached values of
// unaffected nodes on later calls.
//
//	add := latent.Wrap("add", addFn)
//	multiply := latent.Wrap("multiply", mulFn)
//	power := latent.Wrap("power", powFn)
//
//	result := add.New(multiply.New(2, 3), power.New(4, 5))
//	v, err := result.Compute() // 1030, computes multiply, power, add
//	v, err = result.Compute()  // 1030, instant: served from the cache
//
// # Invalidation
//
// Mutating a node with [Node.UpdateFn], [Node.UpdateArgs], or
// [Node.UpdateKwargs] clears its cache and eagerly marks every transitive
// dependent as needing recomputation. The next Compute on any affected node
// recomputes exactly the stale portion of the graph; fresh, unrelated
// branches keep their caches:
//
//	multiply.New(2, 3) -> update args to (3, 3)
//	result.Compute() // 1033: multiply reruns, power's cache is reused
//
// The governing invariant is that a node's cached value is valid iff no
// ancestor has changed since it was computed. Each Compute call rebuilds the
// dependency snapshot ([Node.DependencyGraph]), validates it is acyclic,
// re-derives the staleness frontier ([CorrectComputedStatus]), and consults
// the stale set ([UpdatedNodes]) before trusting any cache.
//
// # Cycles
//
// Cycles cannot be formed at construction time, only by mutating a node that
// is already referenced. They are caught twice: statically, when the built
// snapshot fails validation (*CyclicError), and at runtime, when a node's
// callable re-enters itself past a stale snapshot (*CircularError).
//
// # Containers
//
// Arguments may be containers holding nodes (slices, arrays, maps). Nested
// nodes are resolved and the container shape rebuilt before the callable
// runs. [ComputeOptions.MaxDepth] bounds this descent.
//
// # Concurrency
//
// Evaluation is single-threaded and synchronous: Compute runs to completion,
// dependencies resolve in a fixed order (positional arguments first, then
// named arguments in a stable key order). Nodes are not safe for concurrent
// use without external synchronization.
package latent
