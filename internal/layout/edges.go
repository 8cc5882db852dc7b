package layout

// Edges holds resolved spacing for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}

// IsZero returns true if all edge values are zero.
func (e Edges) IsZero() bool {
	return e == Edges{}
}

// edgeSet flags which granularities of an EdgeSpec were set explicitly.
type edgeSet uint8

const (
	edgeSetAll edgeSet = 1 << iota
	edgeSetX
	edgeSetY
	edgeSetTop
	edgeSetRight
	edgeSetBottom
	edgeSetLeft
)

// EdgeSpec records spacing at three granularities — all sides, per axis,
// and per side — and resolves them with per-side > per-axis > all-sides
// precedence. The zero EdgeSpec resolves to zero on every side.
type EdgeSpec struct {
	all                      int
	x, y                     int
	top, right, bottom, left int
	set                      edgeSet
}

// Sides creates an EdgeSpec applying n to all four sides.
func Sides(n int) EdgeSpec {
	return EdgeSpec{all: n, set: edgeSetAll}
}

// SidesXY creates an EdgeSpec with horizontal and vertical values.
func SidesXY(x, y int) EdgeSpec {
	return EdgeSpec{x: x, y: y, set: edgeSetX | edgeSetY}
}

// WithX returns a copy with the horizontal (left/right) value set.
func (s EdgeSpec) WithX(n int) EdgeSpec {
	s.x = n
	s.set |= edgeSetX
	return s
}

// WithY returns a copy with the vertical (top/bottom) value set.
func (s EdgeSpec) WithY(n int) EdgeSpec {
	s.y = n
	s.set |= edgeSetY
	return s
}

// WithTop returns a copy with the top side set.
func (s EdgeSpec) WithTop(n int) EdgeSpec {
	s.top = n
	s.set |= edgeSetTop
	return s
}

// WithRight returns a copy with the right side set.
func (s EdgeSpec) WithRight(n int) EdgeSpec {
	s.right = n
	s.set |= edgeSetRight
	return s
}

// WithBottom returns a copy with the bottom side set.
func (s EdgeSpec) WithBottom(n int) EdgeSpec {
	s.bottom = n
	s.set |= edgeSetBottom
	return s
}

// WithLeft returns a copy with the left side set.
func (s EdgeSpec) WithLeft(n int) EdgeSpec {
	s.left = n
	s.set |= edgeSetLeft
	return s
}

// IsZero returns true if nothing was set.
func (s EdgeSpec) IsZero() bool {
	return s.set == 0
}

// Resolve collapses the spec into concrete per-side values.
func (s EdgeSpec) Resolve() Edges {
	e := Edges{}
	if s.set&edgeSetAll != 0 {
		e = EdgeAll(s.all)
	}
	if s.set&edgeSetX != 0 {
		e.Left, e.Right = s.x, s.x
	}
	if s.set&edgeSetY != 0 {
		e.Top, e.Bottom = s.y, s.y
	}
	if s.set&edgeSetTop != 0 {
		e.Top = s.top
	}
	if s.set&edgeSetRight != 0 {
		e.Right = s.right
	}
	if s.set&edgeSetBottom != 0 {
		e.Bottom = s.bottom
	}
	if s.set&edgeSetLeft != 0 {
		e.Left = s.left
	}
	return e
}

// minValue returns the smallest value across all set granularities, used by
// validation to reject negative padding.
func (s EdgeSpec) minValue() int {
	e := s.Resolve()
	m := e.Top
	for _, v := range [...]int{e.Right, e.Bottom, e.Left} {
		if v < m {
			m = v
		}
	}
	return m
}
