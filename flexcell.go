// flexcell.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flexcell

import "github.com/flexcell/flexcell/internal/layout"

// Direction specifies the main axis for laying out stack children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// Position selects normal flow or absolute positioning.
type Position = layout.Position

const (
	PositionStatic   = layout.PositionStatic
	PositionAbsolute = layout.PositionAbsolute
)

// Kind identifies what a node renders as.
type Kind = layout.Kind

const (
	KindBox    = layout.KindBox
	KindText   = layout.KindText
	KindButton = layout.KindButton
	KindInput  = layout.KindInput
	KindSpacer = layout.KindSpacer
)

// Value represents a dimension value (fixed, percent, auto, or expression).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
	UnitExpr    = layout.UnitExpr
)

// Constraints holds the layout properties for a node.
type Constraints = layout.Constraints

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// EdgeSpec builds Edges from all/per-axis/per-side components.
type EdgeSpec = layout.EdgeSpec

// Size represents a width/height pair.
type Size = layout.Size

// Node is the interface layout trees are built from.
type Node = layout.Node

// MeasureFunc computes the content size of a leaf node.
type MeasureFunc = layout.MeasureFunc

// Result holds the computed geometry of a layout pass.
type Result = layout.Result

// Overflow describes content exceeding a node's content rect.
type Overflow = layout.Overflow

// Engine computes layout passes over node trees.
type Engine = layout.Engine

// Stats counts the work an Engine has done.
type Stats = layout.Stats

// Option configures an Engine.
type Option = layout.Option

// Track is a column or row definition in a grid container.
type Track = layout.Track

// TrackKind identifies how a grid track is sized.
type TrackKind = layout.TrackKind

const (
	TrackFixed = layout.TrackFixed
	TrackAuto  = layout.TrackAuto
	TrackFr    = layout.TrackFr
)

// Inset holds the optional offsets of an absolutely positioned node.
type Inset = layout.Inset

// InvalidPropsError reports a constraint that fails validation.
type InvalidPropsError = layout.InvalidPropsError

// InvalidConstraintError reports an expression that references something
// that does not exist or misuses a function.
type InvalidConstraintError = layout.InvalidConstraintError

// CircularConstraintError reports a dependency cycle between expressions.
type CircularConstraintError = layout.CircularConstraintError

// ErrReentrantPass is returned when Layout is called from within a pass.
var ErrReentrantPass = layout.ErrReentrantPass

// Fixed creates a Value with a fixed cell count.
func Fixed(n int) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// DefaultConstraints returns Constraints with default values.
func DefaultConstraints() Constraints {
	return layout.DefaultConstraints()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Sides creates an EdgeSpec applying n to all four sides.
func Sides(n int) EdgeSpec {
	return layout.Sides(n)
}

// SidesXY creates an EdgeSpec with horizontal and vertical components.
func SidesXY(x, y int) EdgeSpec {
	return layout.SidesXY(x, y)
}

// FixedTrack returns a grid track of an absolute number of cells.
func FixedTrack(cells int) Track {
	return layout.FixedTrack(cells)
}

// AutoTrack returns a grid track sized to its largest item.
func AutoTrack() Track {
	return layout.AutoTrack()
}

// FrTrack returns a fractional grid track with the given weight.
func FrTrack(weight float64) Track {
	return layout.FrTrack(weight)
}

// Offset returns a pointer to n, for use in Inset fields.
func Offset(n int) *int {
	return layout.Offset(n)
}

// WithMeasurer sets the content measurer used for leaf nodes.
func WithMeasurer(fn MeasureFunc) Option {
	return layout.WithMeasurer(fn)
}

// NewEngine returns an Engine that measures text with DefaultMeasurer
// unless overridden with WithMeasurer.
func NewEngine(opts ...Option) *Engine {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, layout.WithMeasurer(DefaultMeasurer))
	all = append(all, opts...)
	return layout.NewEngine(all...)
}
