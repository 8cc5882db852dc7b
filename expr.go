package flexcell

import (
	"fmt"
	"strconv"

	"github.com/flexcell/flexcell/internal/expr"
	"github.com/flexcell/flexcell/internal/layout"
)

// Expr parses a constraint expression into a Value. The source is parsed
// once and shared across every Value built from the same text.
//
//	w, err := flexcell.Expr("clamp(20, parent.w * 0.3, 60)")
func Expr(source string) (Value, error) {
	parsed, err := expr.Intern(source)
	if err != nil {
		return Value{}, err
	}
	return layout.FromExpr(parsed), nil
}

// MustExpr is Expr but panics on a syntax error. Use for expression
// literals known to be valid at compile time.
func MustExpr(source string) Value {
	v, err := Expr(source)
	if err != nil {
		panic(err)
	}
	return v
}

// PercentOfParent returns an expression Value for a fraction of the
// parent's width ("w") or height ("h"). Unlike Percent it participates in
// the constraint graph, so siblings can reference the result.
func PercentOfParent(metric string, pct float64) Value {
	return MustExpr(fmt.Sprintf("parent.%s * %s", metric, formatAmount(pct/100)))
}

// ViewportAtLeast returns an expression Value that tracks a viewport
// dimension but never drops below min cells.
func ViewportAtLeast(metric string, min int) Value {
	return MustExpr(fmt.Sprintf("max(viewport.%s, %d)", metric, min))
}

// ClampedIntrinsic returns an expression Value for the node's own content
// size on the given axis, clamped to [lo, hi].
func ClampedIntrinsic(metric string, lo, hi int) Value {
	return MustExpr(fmt.Sprintf("clamp(%d, intrinsic.%s, %d)", lo, metric, hi))
}

// MaxOfSiblings returns an expression Value equal to the largest value of
// the metric across every node sharing the given id.
func MaxOfSiblings(id, metric string) Value {
	return MustExpr(fmt.Sprintf("max_sibling(#%s.%s)", id, metric))
}

// SumOfSiblings returns an expression Value equal to the sum of the metric
// across every node sharing the given id.
func SumOfSiblings(id, metric string) Value {
	return MustExpr(fmt.Sprintf("sum_sibling(#%s.%s)", id, metric))
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
