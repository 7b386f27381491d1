package latent

import (
	"fmt"
	"strings"
)

// maxArgRunes caps how much of a plain argument's rendering ends up in a label.
const maxArgRunes = 12

// Label returns a compact human-readable identifier for the node, combining
// the callable name, abbreviated argument renderings, and a short identity
// suffix. Labels are for display (graph exports, DOT rendering, logs) only;
// node identity is always ID.
func (n *Node) Label() string {
	parts := make([]string, 0, len(n.args)+len(n.kwOrder))
	for _, arg := range n.args {
		parts = append(parts, fmtArg(arg))
	}
	for _, key := range n.kwOrder {
		parts = append(parts, key+"="+fmtArg(n.kwargs[key]))
	}
	return fmt.Sprintf("%s(%s)#%s", n.name, strings.Join(parts, ","), shortID(n.id))
}

func fmtArg(arg any) string {
	if dep, ok := arg.(*Node); ok {
		return dep.name + "#" + shortID(dep.id)
	}
	s := fmt.Sprintf("%v", arg)
	if r := []rune(s); len(r) > maxArgRunes {
		s = string(r[:maxArgRunes]) + "…"
	}
	return s
}

// shortID keeps the last uuid group, enough to tell siblings apart in a plot.
func shortID(id string) string {
	if i := strings.LastIndexByte(id, '-'); i >= 0 && i+1 < len(id) {
		return id[i+1 : min(i+5, len(id))]
	}
	if len(id) > 4 {
		return id[:4]
	}
	return id
}
