package graph

import (
	"slices"

	"github.com/matzehuels/latent/pkg/dag"
	"github.com/matzehuels/latent/pkg/latent"
)

// Graph is the export format for dependency graph snapshots.
// It is write-only by design: computation graphs are not persisted across
// process lifetimes, so there is no corresponding import path.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is the exported form of a snapshot node.
type Node struct {
	ID       string `json:"id"`
	Label    string `json:"label,omitempty"`   // Display label (callable + args + short identity)
	Computed bool   `json:"computed"`          // Cache slot populated at snapshot time
	Stale    bool   `json:"stale,omitempty"`   // Marked as needing recomputation
}

// Edge represents a directed dependency→dependent edge.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// FromDAG converts a dependency snapshot to its export format.
// Nodes are sorted by ID for deterministic output.
func FromDAG(g *dag.DAG) Graph {
	nodes := g.Nodes()
	slices.SortFunc(nodes, func(a, b *dag.Node) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})

	out := Graph{
		Nodes: make([]Node, len(nodes)),
		Edges: make([]Edge, len(g.Edges())),
	}

	for i, n := range nodes {
		out.Nodes[i] = nodeFromDAG(n)
	}
	for i, e := range g.Edges() {
		out.Edges[i] = Edge{From: e.From, To: e.To}
	}

	return out
}

func nodeFromDAG(n *dag.Node) Node {
	out := Node{ID: n.ID}
	if label, ok := n.Meta[latent.MetaLabel].(string); ok {
		out.Label = label
	}
	if computed, ok := n.Meta[latent.MetaComputed].(bool); ok {
		out.Computed = computed
	}
	if stale, ok := n.Meta[latent.MetaStale].(bool); ok {
		out.Stale = stale
	}
	return out
}
