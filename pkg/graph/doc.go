// Package graph exports dependency graph snapshots as JSON.
//
// The export format is a flat node/edge list carrying each node's display
// label, computed flag, and staleness flag - enough for external tooling to
// inspect or draw a computation's structure. Output is deterministic: nodes
// are sorted by ID.
//
// There is deliberately no import path. Re-hydrating a computation graph
// from JSON would amount to persisting computations across process
// lifetimes, which this project does not do.
package graph
