package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/latent/pkg/dag"
	"github.com/matzehuels/latent/pkg/latent"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes the node ID in labels.
	// When false, only the display label is shown.
	Detailed bool
}

// ToDOT converts a dependency snapshot to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG].
//
// Computed nodes are filled green-ish; stale nodes get dashed outlines so a
// pending recomputation is visible at a glance.
func ToDOT(g *dag.DAG, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		label := fmtLabel(n, opts.Detailed)
		attrs := fmtAttrs(n, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *dag.Node, detailed bool) string {
	label, _ := n.Meta[latent.MetaLabel].(string)
	if label == "" {
		label = n.ID
	}
	if !detailed {
		return label
	}
	return label + "\n" + n.ID
}

func fmtAttrs(n *dag.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if stale, _ := n.Meta[latent.MetaStale].(bool); stale {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	} else if computed, _ := n.Meta[latent.MetaComputed].(bool); computed {
		attrs = append(attrs, "fillcolor=palegreen")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
