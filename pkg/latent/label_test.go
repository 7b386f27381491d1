package latent

import (
	"strings"
	"testing"
)

func TestLabel(t *testing.T) {
	add := Wrap("add", func(args []any, _ Kwargs) (any, error) {
		return args[0].(int) + args[1].(int), nil
	})
	double := Wrap("double", func(args []any, _ Kwargs) (any, error) {
		return args[0].(int) * 2, nil
	})

	n := add.Call([]any{double.New(3), 7}, Kwargs{"scale": 2})
	label := n.Label()

	for _, want := range []string{"add(", "double#", "7", "scale=2"} {
		if !strings.Contains(label, want) {
			t.Errorf("Label() = %q, want substring %q", label, want)
		}
	}
}

func TestLabelTruncatesLongArgs(t *testing.T) {
	f := Wrap("f", func(args []any, _ Kwargs) (any, error) {
		return args[0], nil
	})
	n := f.New(strings.Repeat("x", 100))

	if label := n.Label(); len(label) > 60 {
		t.Errorf("Label() too long (%d chars): %q", len(label), label)
	}
}

func TestLabelDistinguishesSiblings(t *testing.T) {
	f := Wrap("f", func(args []any, _ Kwargs) (any, error) {
		return args[0], nil
	})
	a, b := f.New(1), f.New(1)
	if a.Label() == b.Label() {
		t.Error("structurally identical nodes should have distinct labels")
	}
}
