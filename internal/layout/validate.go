package layout

import (
	"fmt"
	"math"
)

// Cell coordinates are 32-bit. Fields are Go ints for arithmetic comfort,
// but every supplied value must fit the int32 range; validation rejects the
// rest before layout begins.
const (
	maxCellValue = math.MaxInt32
	minCellValue = math.MinInt32
)

// validateTree walks the committed tree and rejects contract violations.
// It runs before signatures, graph building, and layout, so no partial
// geometry can ever be produced from invalid props.
func validateTree(root Node) error {
	return validateNode(root, nil)
}

func validateNode(node Node, parent Node) error {
	c := node.Constraints()
	fail := func(field, format string, args ...any) error {
		return &InvalidPropsError{
			NodeID:  node.ID(),
			Field:   field,
			Message: fmt.Sprintf(format, args...),
		}
	}

	// Sizes: expressions are allowed, fixed amounts must be in range.
	for _, sv := range [...]struct {
		name string
		v    Value
	}{
		{"width", c.Width}, {"height", c.Height},
		{"minWidth", c.MinWidth}, {"minHeight", c.MinHeight},
		{"maxWidth", c.MaxWidth}, {"maxHeight", c.MaxHeight},
		{"display", c.Display},
	} {
		if err := checkValueRange(sv.v); err != nil {
			return fail(sv.name, "%v", err)
		}
	}

	// FlexBasis feeds the distributor directly and does not accept
	// expressions.
	if c.FlexBasis.IsExpr() {
		return fail("flexBasis", "expressions are not supported on this property")
	}
	if err := checkValueRange(c.FlexBasis); err != nil {
		return fail("flexBasis", "%v", err)
	}

	if c.Gap < 0 {
		return fail("gap", "must not be negative, got %d", c.Gap)
	}
	if c.Gap > maxCellValue {
		return fail("gap", "out of range: %d", c.Gap)
	}
	if pad := c.Padding.minValue(); pad < 0 {
		return fail("padding", "must not be negative, got %d", pad)
	}
	if err := checkEdgeRange(c.Padding); err != nil {
		return fail("padding", "%v", err)
	}
	// Margins may be negative but still must fit cell range.
	if err := checkEdgeRange(c.Margin); err != nil {
		return fail("margin", "%v", err)
	}

	if c.FlexGrow < 0 {
		return fail("flexGrow", "must not be negative, got %g", c.FlexGrow)
	}
	if c.FlexShrink < 0 {
		return fail("flexShrink", "must not be negative, got %g", c.FlexShrink)
	}
	if c.AspectRatio < 0 {
		return fail("aspectRatio", "must not be negative, got %g", c.AspectRatio)
	}
	if c.ScrollX < 0 || c.ScrollY < 0 {
		return fail("scroll", "offsets must not be negative, got (%d, %d)", c.ScrollX, c.ScrollY)
	}

	for _, off := range [...]struct {
		name string
		p    *int
	}{
		{"top", c.Offsets.Top}, {"right", c.Offsets.Right},
		{"bottom", c.Offsets.Bottom}, {"left", c.Offsets.Left},
	} {
		if off.p != nil && (*off.p > maxCellValue || *off.p < minCellValue) {
			return fail(off.name, "out of range: %d", *off.p)
		}
	}
	if !c.Offsets.isZero() && c.Position != PositionAbsolute {
		return fail("position", "top/right/bottom/left require position: absolute")
	}

	// Grid container tracks.
	for _, tracks := range [...]struct {
		name string
		list []Track
	}{{"columns", c.Columns}, {"rows", c.Rows}} {
		for i, tr := range tracks.list {
			switch tr.Kind {
			case TrackFixed:
				if tr.Amount < 0 || tr.Amount > maxCellValue {
					return fail(tracks.name, "track %d: fixed size out of range: %g", i, tr.Amount)
				}
			case TrackFr:
				if tr.Amount <= 0 {
					return fail(tracks.name, "track %d: fr weight must be positive, got %g", i, tr.Amount)
				}
			case TrackAuto:
				// nothing to check
			default:
				return fail(tracks.name, "track %d: unknown track kind", i)
			}
		}
	}

	// Grid item placement.
	if c.GridColumn < 0 || c.GridRow < 0 {
		return fail("grid", "placement indices must not be negative")
	}
	if c.ColSpan < 0 || c.RowSpan < 0 {
		return fail("grid", "spans must not be negative")
	}
	if parent != nil {
		pc := parent.Constraints()
		if pc.isGrid() && c.GridColumn > len(pc.Columns) {
			return fail("grid", "column %d exceeds the container's %d tracks", c.GridColumn, len(pc.Columns))
		}
		if pc.isGrid() && len(pc.Rows) > 0 && c.GridRow > len(pc.Rows) {
			return fail("grid", "row %d exceeds the container's %d tracks", c.GridRow, len(pc.Rows))
		}
	}

	for _, child := range node.Children() {
		if err := validateNode(child, node); err != nil {
			return err
		}
	}
	return nil
}

// checkValueRange rejects fixed and percent amounts outside the cell range.
func checkValueRange(v Value) error {
	switch v.Unit {
	case UnitFixed:
		if v.Amount > maxCellValue || v.Amount < minCellValue {
			return fmt.Errorf("out of range: %g", v.Amount)
		}
	case UnitPercent:
		if v.Amount < 0 {
			return fmt.Errorf("percentage must not be negative, got %g", v.Amount)
		}
	}
	return nil
}

func checkEdgeRange(s EdgeSpec) error {
	e := s.Resolve()
	for _, v := range [...]int{e.Top, e.Right, e.Bottom, e.Left} {
		if v > maxCellValue || v < minCellValue {
			return fmt.Errorf("out of range: %d", v)
		}
	}
	return nil
}

// isZero reports whether no offset side is set.
func (in Inset) isZero() bool {
	return in.Top == nil && in.Right == nil && in.Bottom == nil && in.Left == nil
}
