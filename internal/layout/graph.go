package layout

import (
	"fmt"

	"github.com/flexcell/flexcell/internal/expr"
)

// propID names a constraint property that can be expression-valued.
type propID uint8

const (
	propWidth propID = iota
	propHeight
	propMinWidth
	propMinHeight
	propMaxWidth
	propMaxHeight
	propDisplay
)

var propNames = [...]string{
	"width", "height", "minWidth", "minHeight", "maxWidth", "maxHeight", "display",
}

func (p propID) String() string {
	if int(p) < len(propNames) {
		return propNames[p]
	}
	return fmt.Sprintf("prop(%d)", p)
}

// knownFuncs is the function allowlist with fixed arities; -1 means
// variadic (validated separately).
var knownFuncs = map[string]int{
	"clamp":       3,
	"min":         -1,
	"max":         -1,
	"floor":       1,
	"ceil":        1,
	"round":       1,
	"abs":         1,
	"if":          3,
	"steps":       -1,
	"max_sibling": 1,
	"sum_sibling": 1,
}

// propKey identifies one graph node: a property instance on a tree node.
type propKey struct {
	node Node
	prop propID
}

// graphNode is one (node, property) vertex in the dependency graph.
// Edges point at the sibling-metric properties this expression reads;
// parent/viewport/intrinsic references are context inputs, not edges.
type graphNode struct {
	key    propKey
	parsed *expr.Parsed
	deps   []*graphNode

	color uint8 // 0 white, 1 grey, 2 black (cycle DFS)

	value      float64
	evaluated  bool
	evaluating bool // guards re-entry through intrinsic measurement
}

// graph holds every expression-valued property of the committed tree plus
// the id index used to resolve sibling references.
type graph struct {
	nodes map[propKey]*graphNode
	order []*graphNode // deterministic DFS / reporting order

	byID    map[string][]Node
	parents map[Node]Node
}

// exprProp pairs a property id with its expression-backed value.
type exprProp struct {
	prop propID
	v    Value
}

// exprProps lists the expression-valued properties of a constraint record.
func exprProps(c Constraints) []exprProp {
	all := [...]exprProp{
		{propWidth, c.Width}, {propHeight, c.Height},
		{propMinWidth, c.MinWidth}, {propMinHeight, c.MinHeight},
		{propMaxWidth, c.MaxWidth}, {propMaxHeight, c.MaxHeight},
		{propDisplay, c.Display},
	}
	var out []exprProp
	for _, e := range all {
		if e.v.IsExpr() {
			out = append(out, e)
		}
	}
	return out
}

// buildGraph walks the tree, registers ids, creates one graph node per
// expression-valued property, and resolves every reference. Resolution
// faults (unknown function, bad metric, unknown or ambiguous id,
// aggregation misuse) surface here, before any value is computed.
func buildGraph(root Node) (*graph, error) {
	g := &graph{
		nodes:   make(map[propKey]*graphNode),
		byID:    make(map[string][]Node),
		parents: make(map[Node]Node),
	}
	g.index(root, nil)

	// Create vertices first so edges can point at them in a second sweep.
	var walk func(n Node)
	walk = func(n Node) {
		for _, e := range exprProps(n.Constraints()) {
			gn := &graphNode{
				key:    propKey{node: n, prop: e.prop},
				parsed: e.v.Expr,
			}
			g.nodes[gn.key] = gn
			g.order = append(g.order, gn)
		}
		for _, child := range n.Children() {
			walk(child)
		}
	}
	walk(root)

	for _, gn := range g.order {
		if err := g.resolve(gn); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *graph) index(n Node, parent Node) {
	g.parents[n] = parent
	if id := n.ID(); id != "" {
		g.byID[id] = append(g.byID[id], n)
	}
	for _, child := range n.Children() {
		g.index(child, n)
	}
}

// resolve validates one expression tree and records dependency edges.
func (g *graph) resolve(gn *graphNode) error {
	return g.resolveNode(gn, gn.parsed.Root, false)
}

func (g *graph) resolveNode(gn *graphNode, n expr.Node, inAggregation bool) error {
	fault := func(format string, args ...any) error {
		return &InvalidConstraintError{
			Source:  gn.parsed.Source,
			Message: fmt.Sprintf(format, args...),
		}
	}

	switch e := n.(type) {
	case *expr.Literal:
		return nil

	case *expr.Unary:
		return g.resolveNode(gn, e.X, inAggregation)

	case *expr.Binary:
		if err := g.resolveNode(gn, e.X, inAggregation); err != nil {
			return err
		}
		return g.resolveNode(gn, e.Y, inAggregation)

	case *expr.Ternary:
		for _, sub := range [...]expr.Node{e.Cond, e.Then, e.Else} {
			if err := g.resolveNode(gn, sub, inAggregation); err != nil {
				return err
			}
		}
		return nil

	case *expr.Pair:
		// Pairs are consumed by the steps(...) case below; a pair anywhere
		// else is malformed usage.
		return fault("threshold:value pairs are only valid inside steps(...)")

	case *expr.Call:
		arity, known := knownFuncs[e.Name]
		if !known {
			return fault("unknown function %q", e.Name)
		}
		if arity >= 0 && len(e.Args) != arity {
			return fault("%s expects %d arguments, got %d", e.Name, arity, len(e.Args))
		}
		switch e.Name {
		case "min", "max":
			if len(e.Args) < 2 {
				return fault("%s expects at least 2 arguments, got %d", e.Name, len(e.Args))
			}
		case "steps":
			if len(e.Args) < 2 {
				return fault("steps expects a value and at least one threshold:value pair")
			}
			if _, ok := e.Args[0].(*expr.Pair); ok {
				return fault("the first steps argument is the input value, not a pair")
			}
			if err := g.resolveNode(gn, e.Args[0], inAggregation); err != nil {
				return err
			}
			for _, arg := range e.Args[1:] {
				pair, ok := arg.(*expr.Pair)
				if !ok {
					return fault("steps buckets must be threshold:value pairs")
				}
				if err := g.resolveNode(gn, pair.Threshold, inAggregation); err != nil {
					return err
				}
				if err := g.resolveNode(gn, pair.Value, inAggregation); err != nil {
					return err
				}
			}
			return nil
		case "max_sibling", "sum_sibling":
			ref, ok := e.Args[0].(*expr.Ref)
			if !ok || ref.Space != expr.RefSibling {
				return fault("%s expects a #id reference argument", e.Name)
			}
			return g.resolveNode(gn, ref, true)
		}
		for _, arg := range e.Args {
			if err := g.resolveNode(gn, arg, inAggregation); err != nil {
				return err
			}
		}
		return nil

	case *expr.Ref:
		switch e.Space {
		case expr.RefUnknown:
			return fault("unknown reference %q", e.ID)
		case expr.RefParent, expr.RefViewport, expr.RefIntrinsic:
			if e.Metric != "w" && e.Metric != "h" {
				return fault("unknown metric %q on %s", e.Metric, e.ID)
			}
			return nil
		case expr.RefSibling:
			switch e.Metric {
			case "w", "h", "min_w", "min_h":
			default:
				return fault("unknown metric %q on #%s", e.Metric, e.ID)
			}
			targets := g.byID[e.ID]
			if len(targets) == 0 {
				return fault("no node with id %q", e.ID)
			}
			if !inAggregation && len(targets) > 1 {
				return fault("id %q is shared by %d nodes; use max_sibling or sum_sibling", e.ID, len(targets))
			}
			for _, target := range targets {
				g.addMetricEdges(gn, target, e.Metric)
			}
			return nil
		}
		return fault("unresolvable reference")

	default:
		return fault("unsupported expression form")
	}
}

// addMetricEdges links gn to the expression properties its sibling metric
// depends on. Hiddenness always matters (hidden nodes read as zero), so an
// expression-valued display is a dependency for any metric.
func (g *graph) addMetricEdges(gn *graphNode, target Node, metric string) {
	if dep, ok := g.nodes[propKey{node: target, prop: propDisplay}]; ok {
		gn.deps = append(gn.deps, dep)
	}
	var prop propID
	switch metric {
	case "w":
		prop = propWidth
	case "h":
		prop = propHeight
	default:
		return // min_w/min_h read intrinsic content, not a property
	}
	if dep, ok := g.nodes[propKey{node: target, prop: prop}]; ok {
		gn.deps = append(gn.deps, dep)
	}
}

// checkCycles runs a deterministic depth-first traversal over dependency
// edges before any value is computed. Any cycle fails the entire pass.
func (g *graph) checkCycles() error {
	var path []string
	var visit func(gn *graphNode) *CircularConstraintError
	visit = func(gn *graphNode) *CircularConstraintError {
		switch gn.color {
		case 2:
			return nil
		case 1:
			return &CircularConstraintError{Path: append(path[:len(path):len(path)], g.label(gn))}
		}
		gn.color = 1
		path = append(path, g.label(gn))
		for _, dep := range gn.deps {
			if err := visit(dep); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		gn.color = 2
		return nil
	}

	for _, gn := range g.order {
		if err := visit(gn); err != nil {
			// Trim the path to start at the cycle's first participant.
			closing := err.Path[len(err.Path)-1]
			for i, label := range err.Path {
				if label == closing {
					err.Path = err.Path[i:]
					break
				}
			}
			return err
		}
	}
	return nil
}

// label names a graph node for fault messages: "id.prop", or "kind.prop"
// for anonymous nodes.
func (g *graph) label(gn *graphNode) string {
	owner := gn.key.node.ID()
	if owner == "" {
		owner = gn.key.node.Kind().String()
	}
	return owner + "." + gn.key.prop.String()
}
