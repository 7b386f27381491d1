package latent

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Kwargs holds the named arguments of a deferred call.
// Values may be plain values or other *Node instances (dependency edges).
type Kwargs map[string]any

// Fn is the signature every deferred callable implements. It receives the
// fully resolved positional and named arguments: any *Node argument has
// already been computed by the time Fn runs.
type Fn func(args []any, kwargs Kwargs) (any, error)

// Node represents a single deferred call: a callable bound to arguments,
// with a single-slot result cache and dependency bookkeeping. Nothing
// executes until Compute is called.
//
// Two nodes are the same computation only if they are the same object.
// Structurally identical calls are distinct nodes with distinct identities.
//
// Node is not safe for concurrent use. A multi-threaded adaptation must
// guard the cache slot, the computing flag, and the staleness flag as a
// single unit per node.
type Node struct {
	id      string   // synthetic identity, 1:1 with this object
	name    string   // display name of the callable
	fn      Fn       // the deferred operation
	args    []any    // positional arguments, possibly *Node
	kwargs  Kwargs   // named arguments, possibly *Node
	kwOrder []string // named-argument resolution order, fixed at construction

	disableCache bool // set at construction, never populates the cache slot

	cache     any  // last successfully computed value
	cached    bool // whether the cache slot is populated
	computing bool // true only while fn is actively executing
	stale     bool // sticky: definition mutated, or an upstream change propagated here

	// dependents holds the nodes that reference this node as an argument.
	// It is a back-reference used only for invalidation, never ownership:
	// dependents are registered when they are constructed and may be
	// discarded independently of this node.
	dependents map[*Node]struct{}
}

// Factory produces nodes for one wrapped callable. Obtain one with Wrap.
type Factory struct {
	name         string
	fn           Fn
	disableCache bool
}

// Option configures node construction.
type Option func(*Factory)

// WithoutCache disables result caching for every node the factory produces.
// Such nodes re-execute their callable on every Compute call.
func WithoutCache() Option {
	return func(f *Factory) { f.disableCache = true }
}

// Wrap wraps a callable into a factory for deferred calls. Calling New or
// Call on the factory binds arguments without executing anything.
func Wrap(name string, fn Fn, opts ...Option) Factory {
	f := Factory{name: name, fn: fn}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// New binds positional arguments and returns a new deferred call.
// Arguments that are *Node become dependency edges.
func (f Factory) New(args ...any) *Node {
	return f.Call(args, nil)
}

// Call binds positional and named arguments and returns a new deferred call.
// Named arguments resolve in sorted key order, fixed now.
func (f Factory) Call(args []any, kwargs Kwargs) *Node {
	n := &Node{
		id:           uuid.NewString(),
		name:         f.name,
		fn:           f.fn,
		args:         append([]any(nil), args...),
		kwargs:       Kwargs{},
		disableCache: f.disableCache,
		dependents:   make(map[*Node]struct{}),
	}
	for k, v := range kwargs {
		n.kwargs[k] = v
		n.kwOrder = append(n.kwOrder, k)
	}
	slices.Sort(n.kwOrder)

	for _, arg := range n.args {
		if dep, ok := arg.(*Node); ok {
			dep.dependents[n] = struct{}{}
		}
	}
	for _, v := range n.kwargs {
		if dep, ok := v.(*Node); ok {
			dep.dependents[n] = struct{}{}
		}
	}
	return n
}

// Name returns the display name of the wrapped callable.
func (n *Node) Name() string { return n.name }

// ID returns the node's synthetic identity. It is unique per node object and
// stable for the node's lifetime; it is also the node's ID in dependency
// graph snapshots.
func (n *Node) ID() string { return n.id }

// Computed reports whether the cache slot holds a value.
// A freshly constructed node reports false.
func (n *Node) Computed() bool { return n.cached }

// NeedsRecomputation reports whether the node is marked stale: its own
// definition was mutated, or a mutation upstream propagated to it.
func (n *Node) NeedsRecomputation() bool { return n.stale }

// Args returns the bound positional arguments.
// The returned slice must not be modified; use UpdateArgs.
func (n *Node) Args() []any { return n.args }

// KwargKeys returns the named-argument keys in resolution order.
func (n *Node) KwargKeys() []string { return n.kwOrder }

// Kwarg returns the named argument bound to key.
func (n *Node) Kwarg(key string) (any, bool) {
	v, ok := n.kwargs[key]
	return v, ok
}

// String renders the node's name and computation status.
func (n *Node) String() string {
	status := "Not computed"
	if n.cached {
		status = "Computed"
	}
	return fmt.Sprintf("Latent(%s):%s", n.name, status)
}

// ComputeOptions configures a single Compute call.
type ComputeOptions struct {
	// ForceRecompute ignores this node's own cache.
	ForceRecompute bool
	// RecomputeDependencies forces every dependency to recompute as well.
	RecomputeDependencies bool
	// SkipCache computes fresh but does not store the result.
	SkipCache bool
	// MaxDepth bounds recursive descent into nested container structures
	// when resolving container-valued arguments. Zero means unlimited.
	// Exceeding the limit returns the unresolved container as-is.
	MaxDepth int
}

// Compute materializes the node's value with default options.
func (n *Node) Compute() (any, error) {
	return n.ComputeWith(ComputeOptions{})
}

// ComputeWith materializes the node's value. It builds the dependency graph
// rooted at this node, rejects cycles, re-derives a consistent staleness
// frontier, and then either returns the cached value or recomputes: every
// dependency resolves before the callable runs, and on success the result is
// stored in the cache slot unless caching is disabled or suppressed.
//
// The cache is reused only when no per-call flag forces recomputation, no
// node in this root's dependency closure is stale, and the slot is populated.
//
// Errors: *CircularError on reentrant evaluation, *CyclicError when the
// graph snapshot contains a cycle, *ComputeError when the callable or one of
// its dependencies fails (the original error remains reachable through
// errors.Is/As). The node stays evaluable after any failure.
func (n *Node) ComputeWith(opts ComputeOptions) (any, error) {
	if n.computing {
		return nil, &CircularError{Fn: n.name}
	}

	g, err := n.DependencyGraph()
	if err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, &CyclicError{Fn: n.name, Err: err}
	}

	// Re-derive the staleness frontier: dependents of any changed node are
	// stale too, even if mutation-time propagation was partial.
	CorrectComputedStatus(g)
	updated := UpdatedNodes(g)

	canUseCache := !opts.ForceRecompute && !opts.RecomputeDependencies && len(updated) == 0 && n.cached
	if canUseCache {
		return n.cache, nil
	}

	n.computing = true
	defer func() { n.computing = false }()

	// Dependencies inherit ForceRecompute from RecomputeDependencies; the
	// staleness frontier already covers anything deeper that must rerun.
	nested := ComputeOptions{
		ForceRecompute: opts.RecomputeDependencies,
		SkipCache:      opts.SkipCache,
		MaxDepth:       opts.MaxDepth,
	}

	resolvedArgs := make([]any, len(n.args))
	for i, arg := range n.args {
		v, err := resolveNested(arg, nested, 0)
		if err != nil {
			return nil, &ComputeError{Fn: n.name, Err: err}
		}
		resolvedArgs[i] = v
	}

	var resolvedKwargs Kwargs
	if len(n.kwOrder) > 0 {
		resolvedKwargs = make(Kwargs, len(n.kwOrder))
		for _, key := range n.kwOrder {
			v, err := resolveNested(n.kwargs[key], nested, 0)
			if err != nil {
				return nil, &ComputeError{Fn: n.name, Err: err}
			}
			resolvedKwargs[key] = v
		}
	}

	result, err := n.fn(resolvedArgs, resolvedKwargs)
	if err != nil {
		return nil, &ComputeError{Fn: n.name, Err: err}
	}

	if !n.disableCache && !opts.SkipCache {
		n.cache = result
		n.cached = true
	}
	n.stale = false
	return result, nil
}

// UpdateFn replaces the node's callable. The node's cache is cleared, the
// node is marked stale, and every transitive dependent is invalidated.
func (n *Node) UpdateFn(name string, fn Fn) {
	n.name = name
	n.fn = fn
	n.invalidate()
}

// UpdateArgs replaces the positional arguments. New *Node arguments register
// dependency edges. The node's cache is cleared, the node is marked stale,
// and every transitive dependent is invalidated.
func (n *Node) UpdateArgs(args ...any) {
	n.args = append([]any(nil), args...)
	for _, arg := range n.args {
		if dep, ok := arg.(*Node); ok {
			dep.dependents[n] = struct{}{}
		}
	}
	n.invalidate()
}

// UpdateKwargs updates the named arguments. With fullReset the existing set
// is replaced; otherwise the given keys are merged in, new keys appended to
// the resolution order. The node's cache is cleared, the node is marked
// stale, and every transitive dependent is invalidated.
func (n *Node) UpdateKwargs(fullReset bool, kwargs Kwargs) {
	if fullReset {
		n.kwargs = Kwargs{}
		n.kwOrder = nil
		for k, v := range kwargs {
			n.kwargs[k] = v
			n.kwOrder = append(n.kwOrder, k)
		}
		slices.Sort(n.kwOrder)
	} else {
		for k, v := range kwargs {
			if _, exists := n.kwargs[k]; !exists {
				n.kwOrder = append(n.kwOrder, k)
			}
			n.kwargs[k] = v
		}
	}
	for _, v := range n.kwargs {
		if dep, ok := v.(*Node); ok {
			dep.dependents[n] = struct{}{}
		}
	}
	n.invalidate()
}

// invalidate clears this node's cache, marks it stale, and eagerly
// propagates staleness through the dependents closure.
func (n *Node) invalidate() {
	n.stale = true
	n.cache = nil
	n.cached = false
	// Fresh visited set per mutation; it threads through the recursion.
	n.invalidateDependents(make(map[*Node]struct{}))
}

func (n *Node) invalidateDependents(visited map[*Node]struct{}) {
	for dep := range n.dependents {
		if _, seen := visited[dep]; seen {
			continue
		}
		visited[dep] = struct{}{}
		dep.stale = true
		dep.cache = nil
		dep.cached = false
		dep.invalidateDependents(visited)
	}
}

// ClearOptions selects which directions ClearCache recurses into.
type ClearOptions struct {
	// Dependencies clears the caches of all transitive dependencies.
	Dependencies bool
	// Dependents clears the caches of all transitive dependents.
	Dependents bool
}

// ClearCache empties this node's cache slot unconditionally and, per opts,
// recurses backward into dependencies and/or forward into dependents.
// Clearing does not mark nodes stale: a later Compute simply finds an empty
// slot and recomputes.
func (n *Node) ClearCache(opts ClearOptions) {
	n.clearCache(opts, make(map[*Node]struct{}))
}

func (n *Node) clearCache(opts ClearOptions, visited map[*Node]struct{}) {
	if _, seen := visited[n]; seen {
		return
	}
	visited[n] = struct{}{}

	n.cache = nil
	n.cached = false

	if opts.Dependencies {
		for _, arg := range n.args {
			if dep, ok := arg.(*Node); ok {
				dep.clearCache(ClearOptions{Dependencies: true}, visited)
			}
		}
		for _, v := range n.kwargs {
			if dep, ok := v.(*Node); ok {
				dep.clearCache(ClearOptions{Dependencies: true}, visited)
			}
		}
	}

	if opts.Dependents {
		for dep := range n.dependents {
			dep.clearCache(ClearOptions{Dependents: true}, visited)
		}
	}
}

