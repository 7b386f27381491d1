package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/latent/pkg/dag"
	"github.com/matzehuels/latent/pkg/latent"
)

func snapshot(t *testing.T) *dag.DAG {
	t.Helper()
	g := dag.New()
	if err := g.AddNode(dag.Node{ID: "a", Meta: dag.Metadata{
		latent.MetaLabel:    "double(5)#a1b2",
		latent.MetaComputed: true,
		latent.MetaStale:    false,
	}}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.AddNode(dag.Node{ID: "b", Meta: dag.Metadata{
		latent.MetaLabel:    "inc(double#a1b2)#c3d4",
		latent.MetaComputed: false,
		latent.MetaStale:    true,
	}}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.AddEdge(dag.Edge{From: "a", To: "b"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(snapshot(t), Options{})

	for _, want := range []string{
		"digraph G {",
		`"a" -> "b";`,
		`label="double(5)#a1b2"`,
		`label="inc(double#a1b2)#c3d4"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q in:\n%s", want, dot)
		}
	}
}

func TestToDOTStatusStyles(t *testing.T) {
	dot := ToDOT(snapshot(t), Options{})

	// Computed node fills green; stale node goes dashed grey.
	if !strings.Contains(dot, "fillcolor=palegreen") {
		t.Error("computed node must be filled palegreen")
	}
	if !strings.Contains(dot, `style="rounded,filled,dashed"`) {
		t.Error("stale node must have a dashed outline")
	}
	if !strings.Contains(dot, "fillcolor=lightgrey") {
		t.Error("stale node must be filled lightgrey")
	}
}

func TestToDOTStaleWinsOverComputed(t *testing.T) {
	g := dag.New()
	if err := g.AddNode(dag.Node{ID: "n", Meta: dag.Metadata{
		latent.MetaLabel:    "f(1)#e5f6",
		latent.MetaComputed: true,
		latent.MetaStale:    true,
	}}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}

	dot := ToDOT(g, Options{})
	if strings.Contains(dot, "palegreen") {
		t.Error("a stale node must not render as computed")
	}
	if !strings.Contains(dot, "lightgrey") {
		t.Error("stale styling missing")
	}
}

func TestToDOTDetailed(t *testing.T) {
	g := snapshot(t)

	plain := ToDOT(g, Options{})
	if strings.Contains(plain, `double(5)#a1b2\na`) {
		t.Error("plain output must not embed node IDs in labels")
	}

	detailed := ToDOT(g, Options{Detailed: true})
	if !strings.Contains(detailed, `double(5)#a1b2\na`) {
		t.Errorf("detailed output must append the node ID:\n%s", detailed)
	}
}

func TestToDOTFallsBackToID(t *testing.T) {
	g := dag.New()
	if err := g.AddNode(dag.Node{ID: "bare"}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}

	dot := ToDOT(g, Options{})
	if !strings.Contains(dot, `label="bare"`) {
		t.Errorf("unlabeled node must fall back to its ID:\n%s", dot)
	}
}
