// Package nodelink renders dependency graph snapshots as node-link diagrams.
//
// [ToDOT] converts a snapshot to Graphviz DOT format, styling nodes by their
// evaluation state: computed nodes are filled, stale nodes dashed. [RenderSVG]
// renders DOT to SVG in-process using [github.com/goccy/go-graphviz], so no
// external graphviz installation is required.
package nodelink
