// Package dag provides the directed acyclic graph snapshot used to reason
// about computation dependencies.
//
// # Overview
//
// A lazy computation is a mutable object graph: deferred calls reference
// other deferred calls through their arguments. Before a value is
// materialized, that object graph is flattened into a DAG snapshot so that
// cycle detection and staleness propagation can run over plain adjacency
// maps instead of live objects.
//
// Edges point from a dependency to its dependent. Walking outgoing edges
// from a node therefore visits everything whose cached value can no longer
// be trusted once that node changes - this is what [DAG.Descendants] is for.
//
// # Basic Usage
//
// Create a new graph with [New], add nodes with [DAG.AddNode], and edges with
// [DAG.AddEdge]. Node IDs must be unique and non-empty:
//
//	g := dag.New()
//	g.AddNode(dag.Node{ID: "multiply"})
//	g.AddNode(dag.Node{ID: "add"})
//	g.AddEdge(dag.Edge{From: "multiply", To: "add"})
//
// Use [DAG.Validate] to verify the graph is acyclic before evaluating it.
//
// # Metadata
//
// Nodes carry arbitrary metadata via [Metadata] maps. Snapshots built from
// live computations store the display label, the computed flag, the
// staleness flag, and a binding back to the live node. Metadata maps are
// never nil after AddNode.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use. Callers must synchronize
// access if multiple goroutines read or modify the same graph.
package dag
