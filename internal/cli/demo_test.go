package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/latent/pkg/latent"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"dot", false},
		{"svg", false},
		{"json", false},
		{"", true},
		{"png", true},
		{"DOT", true},
	}
	for _, tt := range tests {
		err := validateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateFormat(%q) err = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func demoRoot(t *testing.T) *latent.Node {
	t.Helper()
	double := latent.Wrap("double", func(args []any, _ latent.Kwargs) (any, error) {
		return args[0].(int) * 2, nil
	})
	inc := latent.Wrap("inc", func(args []any, _ latent.Kwargs) (any, error) {
		return args[0].(int) + 1, nil
	})
	return inc.New(double.New(5))
}

func TestExportGraphDOT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.dot")
	discard := func(string, ...any) {}

	if err := exportGraph(demoRoot(t), path, "dot", discard); err != nil {
		t.Fatalf("exportGraph: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "digraph G {") {
		t.Errorf("export is not DOT:\n%s", out)
	}
	if !strings.Contains(out, "->") {
		t.Error("export has no edges")
	}
}

func TestExportGraphJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	discard := func(string, ...any) {}

	if err := exportGraph(demoRoot(t), path, "json", discard); err != nil {
		t.Fatalf("exportGraph: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var out struct {
		Nodes []json.RawMessage `json:"nodes"`
		Edges []json.RawMessage `json:"edges"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("export is not JSON: %v", err)
	}
	if len(out.Nodes) != 2 || len(out.Edges) != 1 {
		t.Errorf("export has %d nodes and %d edges, want 2 and 1", len(out.Nodes), len(out.Edges))
	}
}
