package layout

import (
	"math"

	"github.com/flexcell/flexcell/internal/expr"
)

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content/flex
	UnitFixed               // Absolute terminal cells
	UnitPercent             // Percentage of parent's available space
	UnitExpr                // Constraint expression, resolved by the graph evaluator
)

// Value represents a dimension that can be fixed, percentage, auto, or an
// expression.
type Value struct {
	Amount float64
	Unit   Unit
	Expr   *expr.Parsed // non-nil iff Unit == UnitExpr
}

// Auto returns a Value that is computed from content/flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of terminal cells.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space on a
// 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// FromExpr returns a Value backed by a parsed constraint expression.
func FromExpr(parsed *expr.Parsed) Value {
	return Value{Unit: UnitExpr, Expr: parsed}
}

// Resolve computes the actual integer value given available space.
// Percentages use floor(available * amount / 100). Expression values are
// resolved by the constraint evaluator before layout consults Resolve, so
// UnitExpr falls back like UnitAuto here.
func (v Value) Resolve(available, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount)
	case UnitPercent:
		return int(math.Floor(float64(available) * v.Amount / 100.0))
	default:
		return fallback
	}
}

// IsAuto returns true if this value is computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsExpr returns true if this value is expression-backed.
func (v Value) IsExpr() bool {
	return v.Unit == UnitExpr
}

// Source returns the expression source text, or "" for non-expression
// values. Used by signatures and faults.
func (v Value) Source() string {
	if v.Expr != nil {
		return v.Expr.Source
	}
	return ""
}
