package layout

// Direction specifies the main axis for laying out stack children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

// Position selects normal flow or absolute positioning.
type Position uint8

const (
	PositionStatic   Position = iota // In-flow (default)
	PositionAbsolute                 // Placed against the parent's content rect
)

// TrackKind identifies how a grid track is sized.
type TrackKind uint8

const (
	TrackFixed TrackKind = iota // Absolute cell count
	TrackAuto                   // Sized to the largest item in the track
	TrackFr                     // Fraction of the space left after fixed/auto
)

// Track is a column or row definition in a grid container.
type Track struct {
	Kind   TrackKind
	Amount float64 // cells for TrackFixed, weight for TrackFr
}

// FixedTrack returns a track of an absolute number of cells.
func FixedTrack(cells int) Track {
	return Track{Kind: TrackFixed, Amount: float64(cells)}
}

// AutoTrack returns a track sized to its largest item.
func AutoTrack() Track {
	return Track{Kind: TrackAuto}
}

// FrTrack returns a fractional track with the given weight.
func FrTrack(weight float64) Track {
	return Track{Kind: TrackFr, Amount: weight}
}

// Inset holds the optional top/right/bottom/left offsets of an absolutely
// positioned node. A nil field means "not set".
type Inset struct {
	Top, Right, Bottom, Left *int
}

// Offset is a convenience for taking the address of an offset literal.
func Offset(n int) *int {
	return &n
}

// Constraints contains every layout property a node can carry. Containers
// and leaves share the record; irrelevant fields are simply ignored for a
// given kind.
type Constraints struct {
	// Sizing. Width/Height/Min*/Max* and Display may be expression-valued.
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// AspectRatio derives the unset axis from the set one when > 0.
	// Ignored when both axes are already resolved.
	AspectRatio float64

	// Stack container properties.
	Direction Direction
	Justify   Justify
	Align     Align
	Wrap      bool
	Gap       int

	// Grid container properties. A non-empty Columns list makes the node a
	// grid container; Rows may be empty, in which case auto rows are grown
	// as needed by auto-flow.
	Columns []Track
	Rows    []Track

	// Grid item placement, 1-based. Zero means auto-placed.
	GridColumn int
	GridRow    int
	ColSpan    int // default 1 when zero
	RowSpan    int // default 1 when zero

	// Flex item properties.
	FlexGrow   float64
	FlexShrink float64
	FlexBasis  Value
	AlignSelf  *Align // nil inherits the container's Align

	// Spacing. Margin may be negative; padding must not be.
	Padding EdgeSpec
	Margin  EdgeSpec
	Border  bool // one-cell border inside the margin, outside the padding

	// Positioning.
	Position Position
	Offsets  Inset

	// Display excludes the node from layout when it resolves <= 0.
	// The zero value (auto) means visible.
	Display Value

	// Scroll offsets for overflow metadata, clamped to the scrollable range.
	ScrollX, ScrollY int
}

// DefaultConstraints returns a Constraints with the engine's defaults:
// auto sizing, stretch alignment, flex-shrink 1.
func DefaultConstraints() Constraints {
	return Constraints{
		Width:      Auto(),
		Height:     Auto(),
		MinWidth:   Auto(),
		MinHeight:  Auto(),
		MaxWidth:   Auto(),
		MaxHeight:  Auto(),
		Align:      AlignStretch,
		FlexShrink: 1.0,
	}
}

// colSpan returns the effective column span (minimum 1).
func (c Constraints) colSpan() int {
	if c.ColSpan < 1 {
		return 1
	}
	return c.ColSpan
}

// rowSpan returns the effective row span (minimum 1).
func (c Constraints) rowSpan() int {
	if c.RowSpan < 1 {
		return 1
	}
	return c.RowSpan
}

// isGrid reports whether the node lays out children on grid tracks.
func (c Constraints) isGrid() bool {
	return len(c.Columns) > 0
}
