package layout

import (
	"fmt"
	"math"
	"sort"

	"github.com/flexcell/flexcell/internal/expr"
)

// exprValue returns the evaluated value of a graph node, computing it on
// first demand and memoizing. Demand recursion visits dependencies in
// post-order, so with cycles excluded up front every graph node is
// evaluated exactly once per pass, in topological order.
//
// Every input an expression can read is pinned to the owning node:
// parent.* resolves against the owner's own parent through parentBasis,
// never against whatever bounds happened to be in scope at the consult
// site. The memoized value is therefore the same no matter which part of
// the pass demands it first.
func (p *pass) exprValue(node Node, prop propID) (float64, error) {
	gn, ok := p.graph.nodes[propKey{node: node, prop: prop}]
	if !ok {
		// Property is not expression-valued; caller bug.
		return 0, fmt.Errorf("layout: no graph node for %s.%s", node.Kind(), prop)
	}
	if gn.evaluated {
		return gn.value, nil
	}
	// Cycle detection covers property-to-property edges; a dependency that
	// loops back through intrinsic measurement or the parent basis (a
	// parent sized by content whose child reads the parent's width) only
	// shows up here.
	if gn.evaluating {
		return 0, &InvalidConstraintError{
			Source:  gn.parsed.Source,
			Message: "depends on its own value through measurement",
		}
	}
	gn.evaluating = true
	value, err := p.evalExpr(gn.parsed, gn.parsed.Root, node)
	gn.evaluating = false
	if err != nil {
		return 0, err
	}
	gn.value = value
	gn.evaluated = true
	return value, nil
}

func (p *pass) evalExpr(parsed *expr.Parsed, n expr.Node, owner Node) (float64, error) {
	switch e := n.(type) {
	case *expr.Literal:
		return e.Value, nil

	case *expr.Unary:
		v, err := p.evalExpr(parsed, e.X, owner)
		if err != nil {
			return 0, err
		}
		return -v, nil

	case *expr.Binary:
		x, err := p.evalExpr(parsed, e.X, owner)
		if err != nil {
			return 0, err
		}
		y, err := p.evalExpr(parsed, e.Y, owner)
		if err != nil {
			return 0, err
		}
		return applyBinary(e.Op, x, y), nil

	case *expr.Ternary:
		cond, err := p.evalExpr(parsed, e.Cond, owner)
		if err != nil {
			return 0, err
		}
		if cond > 0 {
			return p.evalExpr(parsed, e.Then, owner)
		}
		return p.evalExpr(parsed, e.Else, owner)

	case *expr.Ref:
		return p.evalRef(e, owner)

	case *expr.Call:
		return p.evalCall(parsed, e, owner)

	default:
		// Pairs never reach here; resolution pinned them to steps(...).
		return 0, &InvalidConstraintError{Source: parsed.Source, Message: "unsupported expression form"}
	}
}

func (p *pass) evalRef(ref *expr.Ref, owner Node) (float64, error) {
	switch ref.Space {
	case expr.RefParent:
		basis, err := p.parentBasis(owner)
		if err != nil {
			return 0, err
		}
		if ref.Metric == "w" {
			return float64(basis.Width), nil
		}
		return float64(basis.Height), nil

	case expr.RefViewport:
		if ref.Metric == "w" {
			return float64(p.viewport.Width), nil
		}
		return float64(p.viewport.Height), nil

	case expr.RefIntrinsic:
		// Content-driven size only. Going through the node's own size
		// properties here would make the expression its own input.
		size, err := p.contentIntrinsic(owner)
		if err != nil {
			return 0, err
		}
		if ref.Metric == "w" {
			return float64(size.Width), nil
		}
		return float64(size.Height), nil

	case expr.RefSibling:
		// Resolution guaranteed exactly one target for direct references.
		target := p.graph.byID[ref.ID][0]
		return p.siblingMetric(target, ref.Metric)

	default:
		return 0, &InvalidConstraintError{Source: ref.ID, Message: "unresolvable reference"}
	}
}

// siblingMetric reads one metric from a referenced node. Nodes excluded
// from layout still resolve — to zero — so references to conditionally
// hidden siblings never dangle.
func (p *pass) siblingMetric(target Node, metric string) (float64, error) {
	hidden, err := p.isHidden(target)
	if err != nil {
		return 0, err
	}
	if hidden {
		return 0, nil
	}

	c := target.Constraints()
	switch metric {
	case "w":
		if c.Width.IsExpr() {
			return p.exprValue(target, propWidth)
		}
	case "h":
		if c.Height.IsExpr() {
			return p.exprValue(target, propHeight)
		}
	}

	// min_w/min_h read the content minimum, never the size properties.
	if metric == "min_w" || metric == "min_h" {
		size, err := p.contentIntrinsic(target)
		if err != nil {
			return 0, err
		}
		if metric == "min_w" {
			return float64(size.Width), nil
		}
		return float64(size.Height), nil
	}

	size, err := p.intrinsic(target)
	if err != nil {
		return 0, err
	}
	if metric == "w" {
		return float64(size.Width), nil
	}
	return float64(size.Height), nil
}

func (p *pass) evalCall(parsed *expr.Parsed, call *expr.Call, owner Node) (float64, error) {
	evalArgs := func(args []expr.Node) ([]float64, error) {
		out := make([]float64, len(args))
		for i, arg := range args {
			v, err := p.evalExpr(parsed, arg, owner)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	switch call.Name {
	case "clamp":
		// Argument order is pinned min-first: clamp(min, value, max).
		args, err := evalArgs(call.Args)
		if err != nil {
			return 0, err
		}
		lo, v, hi := args[0], args[1], args[2]
		if hi >= lo && v > hi {
			v = hi
		}
		if v < lo {
			v = lo
		}
		return v, nil

	case "min":
		args, err := evalArgs(call.Args)
		if err != nil {
			return 0, err
		}
		out := args[0]
		for _, v := range args[1:] {
			out = math.Min(out, v)
		}
		return out, nil

	case "max":
		args, err := evalArgs(call.Args)
		if err != nil {
			return 0, err
		}
		out := args[0]
		for _, v := range args[1:] {
			out = math.Max(out, v)
		}
		return out, nil

	case "floor", "ceil", "round", "abs":
		args, err := evalArgs(call.Args)
		if err != nil {
			return 0, err
		}
		switch call.Name {
		case "floor":
			return math.Floor(args[0]), nil
		case "ceil":
			return math.Ceil(args[0]), nil
		case "round":
			return math.Round(args[0]), nil
		default:
			return math.Abs(args[0]), nil
		}

	case "if":
		cond, err := p.evalExpr(parsed, call.Args[0], owner)
		if err != nil {
			return 0, err
		}
		if cond > 0 {
			return p.evalExpr(parsed, call.Args[1], owner)
		}
		return p.evalExpr(parsed, call.Args[2], owner)

	case "steps":
		return p.evalSteps(parsed, call, owner)

	case "max_sibling", "sum_sibling":
		ref := call.Args[0].(*expr.Ref)
		targets := p.graph.byID[ref.ID]
		var sum, best float64
		for i, target := range targets {
			v, err := p.siblingMetric(target, ref.Metric)
			if err != nil {
				return 0, err
			}
			sum += v
			if i == 0 || v > best {
				best = v
			}
		}
		if call.Name == "sum_sibling" {
			return sum, nil
		}
		return best, nil

	default:
		return 0, &InvalidConstraintError{Source: parsed.Source, Message: fmt.Sprintf("unknown function %q", call.Name)}
	}
}

// evalSteps returns the value of the bucket with the greatest threshold
// <= the input, or the lowest bucket's value when the input is below every
// threshold.
func (p *pass) evalSteps(parsed *expr.Parsed, call *expr.Call, owner Node) (float64, error) {
	input, err := p.evalExpr(parsed, call.Args[0], owner)
	if err != nil {
		return 0, err
	}

	type bucket struct{ threshold, value float64 }
	buckets := make([]bucket, 0, len(call.Args)-1)
	for _, arg := range call.Args[1:] {
		pair := arg.(*expr.Pair)
		t, err := p.evalExpr(parsed, pair.Threshold, owner)
		if err != nil {
			return 0, err
		}
		v, err := p.evalExpr(parsed, pair.Value, owner)
		if err != nil {
			return 0, err
		}
		buckets = append(buckets, bucket{threshold: t, value: v})
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].threshold < buckets[j].threshold
	})

	result := buckets[0].value // below every threshold: lowest bucket
	for _, b := range buckets {
		if b.threshold <= input {
			result = b.value
		}
	}
	return result, nil
}

// applyBinary evaluates one arithmetic or comparison operator. Comparisons
// yield 1 or 0; division by zero yields 0 so integer snapping never sees
// NaN or infinity.
func applyBinary(op expr.BinOp, x, y float64) float64 {
	switch op {
	case expr.OpAdd:
		return x + y
	case expr.OpSub:
		return x - y
	case expr.OpMul:
		return x * y
	case expr.OpDiv:
		if y == 0 {
			return 0
		}
		return x / y
	case expr.OpLT:
		return boolToFloat(x < y)
	case expr.OpLE:
		return boolToFloat(x <= y)
	case expr.OpGT:
		return boolToFloat(x > y)
	case expr.OpGE:
		return boolToFloat(x >= y)
	case expr.OpEQ:
		return boolToFloat(x == y)
	default: // OpNE
		return boolToFloat(x != y)
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// isHidden resolves a node's display constraint, memoized per pass.
// A node is hidden when the value resolves <= 0.
func (p *pass) isHidden(node Node) (bool, error) {
	if hidden, ok := p.hidden[node]; ok {
		return hidden, nil
	}
	c := node.Constraints()
	var hidden bool
	switch c.Display.Unit {
	case UnitAuto:
		hidden = false
	case UnitExpr:
		v, err := p.exprValue(node, propDisplay)
		if err != nil {
			return false, err
		}
		hidden = v <= 0
	default:
		hidden = c.Display.Amount <= 0
	}
	p.hidden[node] = hidden
	return hidden, nil
}
