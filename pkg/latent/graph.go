package latent

import "github.com/matzehuels/latent/pkg/dag"

// Metadata keys set on dependency graph snapshot nodes.
const (
	// MetaLabel is the human-readable node label.
	MetaLabel = "label"
	// MetaComputed reports whether the node's cache slot was populated at
	// snapshot time.
	MetaComputed = "computed"
	// MetaStale reports whether the node was marked as needing recomputation
	// at snapshot time. CorrectComputedStatus keeps this key consistent with
	// the live nodes as it propagates.
	MetaStale = "needs_recomputation"

	// metaNode binds the snapshot node back to the live *Node.
	metaNode = "latent_node"
)

// DependencyGraph builds a snapshot of the dependency graph rooted at this
// node: every *Node reachable through positional or named arguments, each
// visited at most once, with edges pointing dependency→dependent. Shared
// sub-computations appear once regardless of how many dependents reference
// them.
//
// The snapshot carries MetaLabel, MetaComputed, and MetaStale per node and a
// binding to the live node, so staleness resolution over the snapshot can
// write back to the object graph.
func (n *Node) DependencyGraph() (*dag.DAG, error) {
	g := dag.New()
	if err := n.buildGraph(g, make(map[string]bool)); err != nil {
		return nil, err
	}
	return g, nil
}

func (n *Node) buildGraph(g *dag.DAG, visited map[string]bool) error {
	if visited[n.id] {
		return nil
	}
	visited[n.id] = true

	err := g.AddNode(dag.Node{
		ID: n.id,
		Meta: dag.Metadata{
			MetaLabel:    n.Label(),
			MetaComputed: n.cached,
			MetaStale:    n.stale,
			metaNode:     n,
		},
	})
	if err != nil {
		return err
	}

	for _, arg := range n.args {
		if dep, ok := arg.(*Node); ok {
			if err := dep.buildGraph(g, visited); err != nil {
				return err
			}
			if err := g.AddEdge(dag.Edge{From: dep.id, To: n.id}); err != nil {
				return err
			}
		}
	}
	for _, key := range n.kwOrder {
		if dep, ok := n.kwargs[key].(*Node); ok {
			if err := dep.buildGraph(g, visited); err != nil {
				return err
			}
			if err := g.AddEdge(dag.Edge{From: dep.id, To: n.id}); err != nil {
				return err
			}
		}
	}
	return nil
}

// CorrectComputedStatus re-derives a consistent staleness frontier over a
// dependency snapshot: for every node marked stale, every descendant is
// marked stale too and its cache is cleared, on both the snapshot metadata
// and the live nodes. Mutation-time propagation normally keeps the object
// graph consistent already; this pass makes the invariant hold even when it
// was partial.
func CorrectComputedStatus(g *dag.DAG) {
	for _, gn := range g.Nodes() {
		if !metaBool(gn, MetaStale) {
			continue
		}
		for _, id := range g.Descendants(gn.ID) {
			dn, ok := g.Node(id)
			if !ok {
				continue
			}
			dn.Meta[MetaStale] = true
			dn.Meta[MetaComputed] = false
			if live := boundNode(dn); live != nil {
				live.stale = true
				live.cache = nil
				live.cached = false
			}
		}
	}
}

// UpdatedNodes returns the live nodes in the snapshot still marked stale,
// keyed by node ID. Run CorrectComputedStatus first; a non-empty result
// means the root's cached value cannot be trusted for this evaluation.
func UpdatedNodes(g *dag.DAG) map[string]*Node {
	out := make(map[string]*Node)
	for _, gn := range g.Nodes() {
		if metaBool(gn, MetaStale) {
			out[gn.ID] = boundNode(gn)
		}
	}
	return out
}

func metaBool(gn *dag.Node, key string) bool {
	v, _ := gn.Meta[key].(bool)
	return v
}

func boundNode(gn *dag.Node) *Node {
	n, _ := gn.Meta[metaNode].(*Node)
	return n
}
